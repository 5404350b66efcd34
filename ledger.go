package pharmacy

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Ledger holds every customer known to the store, in the order they were
// first recorded.
//
// The ledger owns the single RewardRates cell its customers share.
type Ledger struct {
	customers []*Customer
	rates     *RewardRates
}

// NewLedger creates an empty customer ledger with default reward rates.
func NewLedger() *Ledger {
	return &Ledger{rates: NewRewardRates()}
}

// Find returns the first customer whose id or exact name matches the
// identifier, in insertion order, or nil.
func (l *Ledger) Find(identifier string) *Customer {
	for _, c := range l.customers {
		if c.id == identifier || c.name == identifier {
			return c
		}
	}
	return nil
}

// AddBasic appends a Basic customer loaded from a record.
func (l *Ledger) AddBasic(id, name string, points int) *Customer {
	c := &Customer{id: id, name: name, points: points, tier: Basic, rates: l.rates}
	l.customers = append(l.customers, c)
	return c
}

// AddVIP appends a VIP customer loaded from a record.
func (l *Ledger) AddVIP(id, name string, points int, discount Rate) *Customer {
	c := &Customer{id: id, name: name, points: points, tier: VIP, discountRate: discount, rates: l.rates}
	l.customers = append(l.customers, c)
	return c
}

// NextBasicID derives the id for the next walk-in customer.
//
// It reads the numeric suffix of the LAST customer in insertion order, not a
// true maximum over all ids. Ids have always been handed out monotonically,
// so both agree; if they ever diverge this will re-issue ids.
func (l *Ledger) NextBasicID() string {
	if len(l.customers) == 0 {
		return "B1"
	}
	last := l.customers[len(l.customers)-1].id
	return fmt.Sprintf("B%d", numericSuffix(last)+1)
}

// numericSuffix extracts the trailing number of an id like "B12" or "P3".
func numericSuffix(id string) int {
	i := strings.IndexFunc(id, func(r rune) bool { return r >= '0' && r <= '9' })
	if i < 0 {
		return 0
	}
	n, err := strconv.Atoi(id[i:])
	if err != nil {
		return 0
	}
	return n
}

// NewBasic registers a walk-in customer under the next Basic id, with an
// empty reward balance.
func (l *Ledger) NewBasic(name string) *Customer {
	return l.AddBasic(l.NextBasicID(), name, 0)
}

// SetRewardRate overwrites the shared reward rate of a tier. The change is
// retroactive for every customer of that tier, existing or future.
func (l *Ledger) SetRewardRate(t Tier, r Rate) {
	l.rates.Set(t, r)
}

// RewardRate returns the current shared reward rate of a tier.
func (l *Ledger) RewardRate(t Tier) Rate {
	return l.rates.Rate(t)
}

// All iterates over customers in insertion order.
func (l *Ledger) All() iter.Seq[*Customer] {
	return func(yield func(*Customer) bool) {
		for _, c := range l.customers {
			if !yield(c) {
				return
			}
		}
	}
}

// Len returns the number of customers in the ledger.
func (l *Ledger) Len() int { return len(l.customers) }
