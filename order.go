package pharmacy

// Line is one (product, quantity) pair of a cart. Quantities are validated
// positive before an order is built.
type Line struct {
	Product  *Product
	Quantity int
}

// Order is a transient cart: a customer and the lines being purchased. It is
// discarded once the receipt and journal entry are produced.
type Order struct {
	Customer *Customer
	Lines    []Line
}

// Quote is the pricing of an order before loyalty redemption.
type Quote struct {
	Original Money
	Discount Money
	Final    Money
	Reward   int
}

// Cost prices the order.
//
// VIP customers get their discount off the original cost and accrue points
// on the discounted cost; Basic customers pay the original cost and accrue
// points on it. Pure: neither the customer nor the catalog is modified.
func (o Order) Cost() Quote {
	original := M(0)
	for _, l := range o.Lines {
		original = original.Add(l.Product.Price().Times(l.Quantity))
	}

	discount := o.Customer.Discount(original)
	final := original.Sub(discount)
	return Quote{
		Original: original,
		Discount: discount,
		Final:    final,
		Reward:   o.Customer.Reward(final),
	}
}

// NeedsPrescription reports whether any line of the order requires a
// doctor's prescription.
func (o Order) NeedsPrescription() bool {
	for _, l := range o.Lines {
		if l.Product.RequiresPrescription() {
			return true
		}
	}
	return false
}
