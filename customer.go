package pharmacy

import "fmt"

// Tier identifies the reward tier of a customer.
type Tier int

const (
	// Basic customers accrue reward points on the original cost.
	Basic Tier = iota
	// VIP customers get a discount first and accrue points on the
	// discounted cost.
	VIP
)

func (t Tier) String() string {
	switch t {
	case Basic:
		return "basic"
	case VIP:
		return "vip"
	default:
		return "unknown"
	}
}

// RewardRates holds the authoritative reward rate of each tier.
//
// There is exactly one instance per ledger and every customer keeps a
// pointer to it, so changing a tier's rate is retroactive: it is immediately
// visible to all existing customers of that tier.
type RewardRates struct {
	basic Rate
	vip   Rate
}

// NewRewardRates returns the default rates, one point per unit of cost.
func NewRewardRates() *RewardRates {
	return &RewardRates{basic: 1.0, vip: 1.0}
}

// Rate returns the current reward rate of a tier.
func (r *RewardRates) Rate(t Tier) Rate {
	if t == VIP {
		return r.vip
	}
	return r.basic
}

// Set overwrites the reward rate of a tier.
func (r *RewardRates) Set(t Tier, rate Rate) {
	if t == VIP {
		r.vip = rate
		return
	}
	r.basic = rate
}

// Customer is one customer of the store. The zero value is not usable;
// customers are created through the Ledger so they share its rate cell.
type Customer struct {
	id           string
	name         string
	points       int
	tier         Tier
	discountRate Rate // VIP only
	rates        *RewardRates
}

func (c *Customer) ID() string    { return c.id }
func (c *Customer) Name() string  { return c.name }
func (c *Customer) Points() int   { return c.points }
func (c *Customer) Tier() Tier    { return c.tier }
func (c *Customer) IsVIP() bool   { return c.tier == VIP }

// RewardRate returns the shared reward rate of the customer's tier.
func (c *Customer) RewardRate() Rate { return c.rates.Rate(c.tier) }

// DiscountRate returns the customer's discount rate, zero for Basic customers.
func (c *Customer) DiscountRate() Rate {
	if c.tier != VIP {
		return 0
	}
	return c.discountRate
}

// Reward converts a cost into loyalty points: round(cost × reward rate),
// half away from zero.
func (c *Customer) Reward(cost Money) int {
	return cost.Fraction(c.RewardRate()).Points()
}

// Discount returns the price reduction for this customer on the given cost.
// Basic customers get none.
func (c *Customer) Discount(cost Money) Money {
	if c.tier != VIP {
		return M(0)
	}
	return cost.Fraction(c.discountRate)
}

// AddPoints accrues earned reward points.
func (c *Customer) AddPoints(n int) {
	c.points += n
	if c.points < 0 {
		c.points = 0
	}
}

// SetDiscountRate overwrites the per-customer discount rate of a VIP.
func (c *Customer) SetDiscountRate(r Rate) error {
	if c.tier != VIP {
		return fmt.Errorf("customer %s is not a VIP: %w", c.id, ErrInvalidRate)
	}
	c.discountRate = r
	return nil
}
