package pharmacy

import (
	"iter"
	"time"
)

// EntryLine is one (product, quantity) pair of a completed purchase,
// referenced by product id.
type EntryLine struct {
	ProductID string
	Quantity  int
}

// Entry is one completed purchase in the order journal. Immutable once
// appended.
type Entry struct {
	CustomerID string
	Lines      []EntryLine
	Total      Money // final cost actually charged, after any redemption
	Reward     int   // points earned by this purchase
	Stamp      time.Time
}

// Journal is the append-only record of completed purchases, in
// chronological order.
type Journal struct {
	entries []Entry
}

// NewJournal creates an empty order journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Append records a completed purchase.
func (j *Journal) Append(e Entry) {
	j.entries = append(j.entries, e)
}

// ByCustomer returns the customer's purchases in chronological order.
func (j *Journal) ByCustomer(customerID string) []Entry {
	var out []Entry
	for _, e := range j.entries {
		if e.CustomerID == customerID {
			out = append(out, e)
		}
	}
	return out
}

// All iterates over every purchase in chronological order.
func (j *Journal) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range j.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Len returns the number of recorded purchases.
func (j *Journal) Len() int { return len(j.entries) }
