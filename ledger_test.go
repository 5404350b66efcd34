package pharmacy

import "testing"

func TestLedger_Find(t *testing.T) {
	ledger := NewLedger()
	ledger.AddBasic("B1", "Alex", 0)
	ledger.AddVIP("V1", "Taylor", 10, 0.08)

	if got := ledger.Find("B1"); got == nil || got.Name() != "Alex" {
		t.Errorf("Find(B1) = %v, want Alex", got)
	}
	if got := ledger.Find("Taylor"); got == nil || got.ID() != "V1" {
		t.Errorf("Find(Taylor) = %v, want V1", got)
	}
	if got := ledger.Find("Zara"); got != nil {
		t.Errorf("Find(Zara) = %v, want nil", got)
	}
}

func TestLedger_NextBasicID(t *testing.T) {
	testCases := []struct {
		name string
		ids  []string
		want string
	}{
		{
			name: "empty ledger starts at B1",
			ids:  nil,
			want: "B1",
		},
		{
			name: "monotonic ids",
			ids:  []string{"B1", "B2", "B3"},
			want: "B4",
		},
		{
			name: "vip ids count too",
			ids:  []string{"B1", "V7"},
			want: "B8",
		},
		{
			// The id comes from the LAST entry in insertion order, not a
			// true maximum. This mirrors how ids have always been issued.
			name: "non monotonic ids follow the last entry",
			ids:  []string{"B5", "B2"},
			want: "B3",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ledger := NewLedger()
			for _, id := range tc.ids {
				ledger.AddBasic(id, "x", 0)
			}
			if got := ledger.NextBasicID(); got != tc.want {
				t.Errorf("NextBasicID() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestLedger_NewBasic(t *testing.T) {
	ledger := NewLedger()
	ledger.AddBasic("B1", "Alex", 30)

	got := ledger.NewBasic("Zara")
	if got.ID() != "B2" || got.Name() != "Zara" || got.Points() != 0 {
		t.Errorf("NewBasic() = %s %s %d, want B2 Zara 0", got.ID(), got.Name(), got.Points())
	}
	if ledger.Find("Zara") != got {
		t.Error("new customer is not registered in the ledger")
	}
	if got.Tier() != Basic {
		t.Errorf("Tier() = %v, want Basic", got.Tier())
	}
}

func TestLedger_SetRewardRate(t *testing.T) {
	ledger := NewLedger()
	basic := ledger.AddBasic("B1", "Alex", 0)
	vip := ledger.AddVIP("V1", "Taylor", 0, 0.08)

	ledger.SetRewardRate(Basic, 0.5)

	if got := basic.RewardRate(); !got.Equal(0.5) {
		t.Errorf("basic RewardRate() = %v, want 0.5", got)
	}
	// The VIP tier keeps its own cell.
	if got := vip.RewardRate(); !got.Equal(1.0) {
		t.Errorf("vip RewardRate() = %v, want 1.0", got)
	}
}

func TestCustomer_SetDiscountRate(t *testing.T) {
	ledger := NewLedger()
	basic := ledger.AddBasic("B1", "Alex", 0)
	vip := ledger.AddVIP("V1", "Taylor", 0, 0.08)

	if err := vip.SetDiscountRate(0.10); err != nil {
		t.Fatalf("SetDiscountRate() error: %v", err)
	}
	if got := vip.Discount(M(100.00)); !got.Equal(M(10.00)) {
		t.Errorf("Discount(100) = %s, want 10.00", got.Record())
	}
	if err := basic.SetDiscountRate(0.10); err == nil {
		t.Error("SetDiscountRate() on a Basic customer: want error")
	}
	if got := basic.Discount(M(100.00)); !got.IsZero() {
		t.Errorf("basic Discount(100) = %s, want 0", got.Record())
	}
}
