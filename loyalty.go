package pharmacy

// Loyalty redemption: every full 100 accumulated points is worth a 10 unit
// deduction off the cost of a purchase.
const (
	redeemUnit  = 100
	redeemValue = 10
)

// Redeem converts the customer's accumulated points into a price deduction
// and returns the reduced final cost and the deduction taken.
//
// It runs once per purchase, against the balance accumulated BEFORE this
// purchase: the caller accrues the purchase's own points afterwards. Below
// 100 points nothing happens. The remaining balance is points mod 100, and
// the final cost never goes below zero.
func Redeem(c *Customer, final Money) (Money, Money) {
	if c.points < redeemUnit {
		return final, M(0)
	}
	deduction := M((c.points / redeemUnit) * redeemValue)
	c.points = c.points % redeemUnit
	final = final.Sub(deduction)
	if final.IsNegative() {
		final = M(0)
	}
	return final, deduction
}
