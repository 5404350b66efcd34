package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/rxledger/pharmacy"
)

func TestCustomersMarkdown(t *testing.T) {
	ledger := pharmacy.NewLedger()
	ledger.AddBasic("B1", "Alex", 30)
	ledger.AddVIP("V1", "Taylor", 120, 0.08)

	got := CustomersMarkdown(ledger)

	for _, want := range []string{"Existing Customers", "B1", "Alex", "100%", "---", "V1", "Taylor", "8%", "120"} {
		if !strings.Contains(got, want) {
			t.Errorf("CustomersMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestProductsMarkdown(t *testing.T) {
	catalog := pharmacy.NewCatalog()
	catalog.Add(pharmacy.NewProduct("P1", "Aspirin", pharmacy.M(10.00), false))
	catalog.Add(pharmacy.NewProduct("P2", "Insulin", pharmacy.M(20.00), true))
	bundle, err := NewTestBundle(catalog)
	if err != nil {
		t.Fatal(err)
	}
	catalog.Add(bundle)

	got := ProductsMarkdown(catalog)

	for _, want := range []string{"Existing Products", "Aspirin", "NO", "Insulin", "YES", "P1, P2", "24.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("ProductsMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

// NewTestBundle builds the P1+P2 bundle used across renderer tests.
func NewTestBundle(catalog *pharmacy.Catalog) (*pharmacy.Product, error) {
	return pharmacy.NewBundle("B1", "Starter Pack", []*pharmacy.Product{
		catalog.Find("P1"),
		catalog.Find("P2"),
	})
}

func TestReceiptMarkdown(t *testing.T) {
	records := pharmacy.NewRecords()
	customer := records.Ledger.AddVIP("V1", "Taylor", 0, 0.08)
	product := pharmacy.NewProduct("P1", "Insulin", pharmacy.M(100.00), true)
	records.Catalog.Add(product)

	receipt := records.Commit(pharmacy.Order{
		Customer: customer,
		Lines:    []pharmacy.Line{{Product: product, Quantity: 1}},
	}, time.Date(2024, 5, 12, 10, 30, 0, 0, time.Local))

	got := ReceiptMarkdown(&receipt)

	for _, want := range []string{"Receipt", "Taylor", "Insulin", "100.00", "8.00", "92.00", "92"} {
		if !strings.Contains(got, want) {
			t.Errorf("ReceiptMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestOrdersMarkdown(t *testing.T) {
	entries := []pharmacy.Entry{
		{
			CustomerID: "B1",
			Lines:      []pharmacy.EntryLine{{ProductID: "P1", Quantity: 2}},
			Total:      pharmacy.M(20.00),
			Reward:     20,
			Stamp:      time.Date(2024, 5, 12, 10, 30, 0, 0, time.Local),
		},
	}

	got := OrdersMarkdown("All Orders", entries)
	for _, want := range []string{"All Orders", "B1", "P1 x2", "20.00", "12/05/2024 10:30:00"} {
		if !strings.Contains(got, want) {
			t.Errorf("OrdersMarkdown() missing %q in:\n%s", want, got)
		}
	}

	if empty := OrdersMarkdown("All Orders", nil); !strings.Contains(empty, "No orders recorded.") {
		t.Errorf("OrdersMarkdown(nil) missing empty message:\n%s", empty)
	}
}
