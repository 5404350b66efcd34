package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/rxledger/pharmacy"
)

// Run is the whole program behind the thin rxpos main: argument handling,
// loading, the interactive session, and persistence on graceful exit.
// It returns the process exit code.
func Run(args []string) int {
	// Shell completion for the positional record file arguments. Returns
	// immediately unless invoked by the shell's completion machinery.
	completion := complete.Command{Args: predict.Files("*.txt")}
	completion.Complete("rxpos")

	cfg := LoadConfig()
	switch len(args) {
	case 0:
		// defaults from the environment
	case 2:
		cfg.CustomersFile, cfg.ProductsFile = args[0], args[1]
	case 3:
		cfg.CustomersFile, cfg.ProductsFile, cfg.OrdersFile = args[0], args[1], args[2]
	default:
		usage(os.Stderr)
		return 2
	}

	// A failed load is fatal and must not touch the record files.
	records := pharmacy.NewRecords()
	if err := records.LoadCustomers(cfg.CustomersFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := records.LoadProducts(cfg.ProductsFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := records.LoadOrders(cfg.OrdersFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	NewApp(records, os.Stdin, os.Stdout).Run()

	// Graceful exit: full overwrite of the three record files.
	for _, p := range []struct {
		filename string
		persist  func(string) error
	}{
		{cfg.CustomersFile, records.PersistCustomers},
		{cfg.ProductsFile, records.PersistProducts},
		{cfg.OrdersFile, records.PersistOrders},
	} {
		if err := p.persist(p.filename); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: rxpos [<customer_file> <product_file> [<order_file>]]")
}
