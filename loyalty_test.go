package pharmacy

import "testing"

func TestRedeem(t *testing.T) {
	testCases := []struct {
		name          string
		points        int
		final         Money
		wantFinal     Money
		wantDeduction Money
		wantPoints    int
	}{
		{
			name:          "250 points are worth a 20 dollar deduction",
			points:        250,
			final:         M(100.00),
			wantFinal:     M(80.00),
			wantDeduction: M(20.00),
			wantPoints:    50,
		},
		{
			name:          "below the threshold nothing happens",
			points:        99,
			final:         M(100.00),
			wantFinal:     M(100.00),
			wantDeduction: M(0),
			wantPoints:    99,
		},
		{
			name:          "exactly one full unit",
			points:        100,
			final:         M(15.00),
			wantFinal:     M(5.00),
			wantDeduction: M(10.00),
			wantPoints:    0,
		},
		{
			name:          "the final cost never goes below zero",
			points:        1000,
			final:         M(50.00),
			wantFinal:     M(0),
			wantDeduction: M(100.00),
			wantPoints:    0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ledger := NewLedger()
			customer := ledger.AddBasic("B1", "Alex", tc.points)

			final, deduction := Redeem(customer, tc.final)

			if !final.Equal(tc.wantFinal) {
				t.Errorf("final = %s, want %s", final.Record(), tc.wantFinal.Record())
			}
			if !deduction.Equal(tc.wantDeduction) {
				t.Errorf("deduction = %s, want %s", deduction.Record(), tc.wantDeduction.Record())
			}
			if customer.Points() != tc.wantPoints {
				t.Errorf("points = %d, want %d", customer.Points(), tc.wantPoints)
			}
		})
	}
}

func TestRedeem_OncePerCall(t *testing.T) {
	ledger := NewLedger()
	customer := ledger.AddBasic("B1", "Alex", 250)

	Redeem(customer, M(100.00))
	// The remainder is below the threshold: a second call is a no-op.
	final, deduction := Redeem(customer, M(80.00))

	if !final.Equal(M(80.00)) || !deduction.IsZero() {
		t.Errorf("second Redeem = (%s, %s), want (80.00, 0.00)", final.Record(), deduction.Record())
	}
	if customer.Points() != 50 {
		t.Errorf("points = %d, want 50", customer.Points())
	}
}
