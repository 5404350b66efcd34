package pharmacy

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"
)

// Records composes the product catalog, the customer ledger and the order
// journal, and owns loading them from and persisting them to their record
// files. It is the only owner of the canonical collections; orders and
// receipts hold non-owning references into them.
type Records struct {
	Catalog *Catalog
	Ledger  *Ledger
	Journal *Journal
}

// NewRecords creates an empty record store.
func NewRecords() *Records {
	return &Records{
		Catalog: NewCatalog(),
		Ledger:  NewLedger(),
		Journal: NewJournal(),
	}
}

// LoadCustomers reads the customer file into the ledger. A missing or
// malformed file is an error; the caller treats it as fatal.
func (r *Records) LoadCustomers(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("load error: cannot open customer file %q: %w", filename, err)
	}
	defer f.Close()
	return DecodeCustomers(filename, f, r.Ledger)
}

// LoadProducts reads the product file into the catalog. A missing or
// malformed file is an error; the caller treats it as fatal.
func (r *Records) LoadProducts(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("load error: cannot open product file %q: %w", filename, err)
	}
	defer f.Close()
	return DecodeProducts(filename, f, r.Catalog)
}

// LoadOrders reads the order history file into the journal. Unlike the
// other two, a missing file is not an error: the store starts with an empty
// journal and logs a warning. Customers and products must be loaded first
// so history rows can resolve their references.
func (r *Records) LoadOrders(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("warning: order history file %q not found, starting with an empty journal", filename)
			return nil
		}
		return fmt.Errorf("load error: cannot open order file %q: %w", filename, err)
	}
	defer f.Close()
	return DecodeOrders(filename, f, r.Catalog, r.Ledger, r.Journal)
}

// PersistCustomers overwrites the customer file with the current ledger.
func (r *Records) PersistCustomers(filename string) error {
	return persist(filename, func(f *os.File) error { return EncodeCustomers(f, r.Ledger) })
}

// PersistProducts overwrites the product file with the current catalog.
func (r *Records) PersistProducts(filename string) error {
	return persist(filename, func(f *os.File) error { return EncodeProducts(f, r.Catalog) })
}

// PersistOrders overwrites the order history file with the current journal.
func (r *Records) PersistOrders(filename string) error {
	return persist(filename, func(f *os.File) error { return EncodeOrders(f, r.Journal) })
}

func persist(filename string, encode func(*os.File) error) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("persist error: cannot create file %q: %w", filename, err)
	}
	defer f.Close()
	log.Printf("persist file=%q", filename)
	return encode(f)
}

// Receipt describes one completed purchase.
type Receipt struct {
	Customer  *Customer
	Lines     []Line
	Quote     Quote
	Deduction Money // loyalty redemption taken off the final cost
	Total     Money // amount actually charged
	Stamp     time.Time
}

// Commit settles an order: it prices the cart, redeems the customer's
// accumulated points, accrues the points earned by this purchase and
// appends the result to the journal.
//
// The ordering matters: redemption consumes the balance accumulated before
// this purchase, then the newly earned points are added.
func (r *Records) Commit(o Order, now time.Time) Receipt {
	quote := o.Cost()
	total, deduction := Redeem(o.Customer, quote.Final)
	o.Customer.AddPoints(quote.Reward)

	lines := make([]EntryLine, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, EntryLine{ProductID: l.Product.ID(), Quantity: l.Quantity})
	}
	r.Journal.Append(Entry{
		CustomerID: o.Customer.ID(),
		Lines:      lines,
		Total:      total,
		Reward:     quote.Reward,
		Stamp:      now,
	})

	return Receipt{
		Customer:  o.Customer,
		Lines:     o.Lines,
		Quote:     quote,
		Deduction: deduction,
		Total:     total,
		Stamp:     now,
	}
}
