package cmd

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the record file locations for one session.
type Config struct {
	CustomersFile string
	ProductsFile  string
	OrdersFile    string
}

// LoadConfig resolves the default record file locations from the
// environment, reading an optional .env file first. Positional arguments
// override these defaults.
func LoadConfig() Config {
	_ = godotenv.Load()
	return Config{
		CustomersFile: getenv("RXPOS_CUSTOMERS_FILE", "customers.txt"),
		ProductsFile:  getenv("RXPOS_PRODUCTS_FILE", "products.txt"),
		OrdersFile:    getenv("RXPOS_ORDERS_FILE", "orders.txt"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
