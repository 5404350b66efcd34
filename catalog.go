package pharmacy

import (
	"fmt"
	"iter"
)

// Catalog holds every product and bundle of the store, in the order they
// were first recorded.
type Catalog struct {
	products []*Product
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Find returns the first product whose id or exact name matches the
// identifier, in insertion order, or nil. Id and name share one namespace:
// when a name collides with another product's id the first inserted wins.
func (c *Catalog) Find(identifier string) *Product {
	for _, p := range c.products {
		if p.id == identifier || p.name == identifier {
			return p
		}
	}
	return nil
}

// Add appends a product loaded from a record.
func (c *Catalog) Add(p *Product) {
	c.products = append(c.products, p)
}

// AddOrUpdate overwrites the price and prescription flag of the product with
// that name, or appends a new plain product under the next id.
//
// Bundles holding the updated product as a component keep the price they
// were built with. New ids are P<catalog size + 1>.
func (c *Catalog) AddOrUpdate(name string, price Money, prescription bool) (*Product, error) {
	for _, p := range c.products {
		if p.name != name {
			continue
		}
		if p.kind == Bundle {
			return nil, fmt.Errorf("%s is a bundle and cannot be updated: %w", name, ErrInvalidProduct)
		}
		p.price = price
		p.prescription = prescription
		return p, nil
	}
	p := NewProduct(fmt.Sprintf("P%d", len(c.products)+1), name, price, prescription)
	c.products = append(c.products, p)
	return p, nil
}

// All iterates over products in insertion order.
func (c *Catalog) All() iter.Seq[*Product] {
	return func(yield func(*Product) bool) {
		for _, p := range c.products {
			if !yield(p) {
				return
			}
		}
	}
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int { return len(c.products) }
