package pharmacy

import (
	"fmt"
	"strconv"
)

// Rate is a fraction of a cost (0.08 means 8%). It is used both for reward
// rates and for VIP discount rates.
type Rate float64

func (r Rate) Equal(q Rate) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := r - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (r Rate) IsPositive() bool { return r > 0 }

// String renders the rate as a percentage, the way listings display it.
func (r Rate) String() string {
	return fmt.Sprintf("%.0f%%", float64(r)*100)
}

// Record returns the fractional representation used in record files ("0.08").
func (r Rate) Record() string {
	return strconv.FormatFloat(float64(r), 'g', -1, 64)
}

// ParseRate parses a fractional rate from a record field or user input.
func ParseRate(s string) (Rate, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return Rate(f), nil
}
