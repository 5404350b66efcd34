package pharmacy

import "fmt"

// Kind identifies a catalog entry as a plain product or a bundle.
type Kind int

const (
	// Plain is a single product with its own price.
	Plain Kind = iota
	// Bundle is a composite product priced from its components.
	Bundle
)

// bundleRate is the fraction of the summed component prices a bundle costs.
const bundleRate Rate = 0.8

// Product is a catalog entry. Bundles snapshot their price and prescription
// flag at construction; later changes to a component do not touch them.
type Product struct {
	id           string
	name         string
	price        Money
	prescription bool
	kind         Kind
	components   []string // component product ids, bundles only
}

// NewProduct creates a plain product.
func NewProduct(id, name string, price Money, prescription bool) *Product {
	return &Product{id: id, name: name, price: price, prescription: prescription, kind: Plain}
}

// NewBundle creates a bundle from already-resolved components.
//
// The price is 80% of the summed component prices and the prescription flag
// is set if any component requires one. Both are derived once, here, from
// the components' current state.
func NewBundle(id, name string, components []*Product) (*Product, error) {
	if len(components) == 0 {
		return nil, fmt.Errorf("bundle %s has no components: %w", id, ErrInvalidProduct)
	}
	sum := M(0)
	prescription := false
	ids := make([]string, 0, len(components))
	for _, c := range components {
		if c == nil {
			return nil, fmt.Errorf("bundle %s has an unresolvable component: %w", id, ErrInvalidProduct)
		}
		sum = sum.Add(c.price)
		prescription = prescription || c.prescription
		ids = append(ids, c.id)
	}
	return &Product{
		id:           id,
		name:         name,
		price:        sum.Fraction(bundleRate),
		prescription: prescription,
		kind:         Bundle,
		components:   ids,
	}, nil
}

func (p *Product) ID() string   { return p.id }
func (p *Product) Name() string { return p.name }
func (p *Product) Price() Money { return p.price }
func (p *Product) Kind() Kind   { return p.kind }

// RequiresPrescription reports whether the product can only be sold against
// a doctor's prescription.
func (p *Product) RequiresPrescription() bool { return p.prescription }

// Components returns the component product ids of a bundle, nil for plain
// products.
func (p *Product) Components() []string { return p.components }
