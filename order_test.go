package pharmacy

import "testing"

func TestOrder_Cost(t *testing.T) {
	ledger := NewLedger()
	basic := ledger.AddBasic("B1", "Alex", 0)
	vip := ledger.AddVIP("V1", "Taylor", 0, 0.08)

	paracetamol := NewProduct("P1", "Paracetamol", M(15.00), false)
	insulin := NewProduct("P2", "Insulin", M(100.00), true)

	testCases := []struct {
		name         string
		order        Order
		wantOriginal Money
		wantDiscount Money
		wantFinal    Money
		wantReward   int
	}{
		{
			name:         "basic customer pays the original cost",
			order:        Order{Customer: basic, Lines: []Line{{paracetamol, 2}}},
			wantOriginal: M(30.00),
			wantDiscount: M(0),
			wantFinal:    M(30.00),
			wantReward:   30,
		},
		{
			name:         "vip discount before reward accrual",
			order:        Order{Customer: vip, Lines: []Line{{insulin, 1}}},
			wantOriginal: M(100.00),
			wantDiscount: M(8.00),
			wantFinal:    M(92.00),
			wantReward:   92,
		},
		{
			name:         "multi line cart sums all lines",
			order:        Order{Customer: basic, Lines: []Line{{paracetamol, 2}, {insulin, 1}}},
			wantOriginal: M(130.00),
			wantDiscount: M(0),
			wantFinal:    M(130.00),
			wantReward:   130,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.order.Cost()
			if !got.Original.Equal(tc.wantOriginal) {
				t.Errorf("Original = %s, want %s", got.Original.Record(), tc.wantOriginal.Record())
			}
			if !got.Discount.Equal(tc.wantDiscount) {
				t.Errorf("Discount = %s, want %s", got.Discount.Record(), tc.wantDiscount.Record())
			}
			if !got.Final.Equal(tc.wantFinal) {
				t.Errorf("Final = %s, want %s", got.Final.Record(), tc.wantFinal.Record())
			}
			if got.Reward != tc.wantReward {
				t.Errorf("Reward = %d, want %d", got.Reward, tc.wantReward)
			}
		})
	}
}

func TestOrder_Cost_SharedRateIsRetroactive(t *testing.T) {
	ledger := NewLedger()
	existing := ledger.AddBasic("B1", "Alex", 0)

	product := NewProduct("P1", "Bandage", M(10.00), false)
	order := Order{Customer: existing, Lines: []Line{{product, 1}}}

	if got := order.Cost().Reward; got != 10 {
		t.Fatalf("Reward before rate change = %d, want 10", got)
	}

	// The rate lives in one shared cell: changing it must affect customers
	// created before AND after the change.
	ledger.SetRewardRate(Basic, 0.5)

	if got := order.Cost().Reward; got != 5 {
		t.Errorf("Reward after rate change = %d, want 5", got)
	}
	later := ledger.NewBasic("Robin")
	if got := later.Reward(M(10.00)); got != 5 {
		t.Errorf("Reward of later customer = %d, want 5", got)
	}
}

func TestOrder_Cost_IsPure(t *testing.T) {
	ledger := NewLedger()
	customer := ledger.AddBasic("B1", "Alex", 42)
	product := NewProduct("P1", "Bandage", M(10.00), false)

	Order{Customer: customer, Lines: []Line{{product, 3}}}.Cost()

	if customer.Points() != 42 {
		t.Errorf("Cost mutated the customer's points: got %d, want 42", customer.Points())
	}
}

func TestOrder_NeedsPrescription(t *testing.T) {
	free := NewProduct("P1", "Bandage", M(5.00), false)
	gated := NewProduct("P2", "Insulin", M(100.00), true)

	order := Order{Lines: []Line{{free, 1}}}
	if order.NeedsPrescription() {
		t.Error("NeedsPrescription() = true for prescription-free cart")
	}
	order.Lines = append(order.Lines, Line{gated, 1})
	if !order.NeedsPrescription() {
		t.Error("NeedsPrescription() = false with a gated product in the cart")
	}
}
