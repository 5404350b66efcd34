// Package cmd implements the interactive point-of-sale application.
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/rxledger/pharmacy"
	"github.com/rxledger/pharmacy/docs"
	"github.com/rxledger/pharmacy/renderer"
)

// App is one interactive counter session over a loaded record store.
type App struct {
	records *pharmacy.Records
	in      *bufio.Scanner
	out     io.Writer
	eof     bool
}

// NewApp creates a session reading prompts from in and writing to out.
func NewApp(records *pharmacy.Records, in io.Reader, out io.Writer) *App {
	return &App{records: records, in: bufio.NewScanner(in), out: out}
}

// readLine prints the prompt and returns the next input line. Once the
// input is exhausted it returns false forever, which ends the session.
func (a *App) readLine(prompt string) (string, bool) {
	if a.eof {
		return "", false
	}
	fmt.Fprint(a.out, prompt)
	if !a.in.Scan() {
		a.eof = true
		fmt.Fprintln(a.out)
		return "", false
	}
	return a.in.Text(), true
}

// ask prompts until validate accepts the input or the input ends.
func ask[T any](a *App, prompt string, validate func(string) (T, error)) (T, bool) {
	for {
		line, ok := a.readLine(prompt)
		if !ok {
			var zero T
			return zero, false
		}
		v, err := validate(line)
		if err != nil {
			fmt.Fprintln(a.out, err)
			continue
		}
		return v, true
	}
}

// Run drives the numbered menu until the user exits or input ends.
// Persistence is the caller's job, after Run returns.
func (a *App) Run() {
	fmt.Fprintln(a.out, "Welcome to the pharmacy!")

	for {
		a.showMenu()
		choice, ok := a.readLine("Choose one option: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			a.makePurchase()
		case "2":
			printMarkdown(a.out, renderer.CustomersMarkdown(a.records.Ledger))
		case "3":
			printMarkdown(a.out, renderer.ProductsMarkdown(a.records.Catalog))
		case "4":
			a.addOrUpdateProduct()
		case "5":
			a.setBasicRewardRate()
		case "6":
			a.setVIPDiscountRate()
		case "7":
			a.listAllOrders()
		case "8":
			a.listCustomerOrders()
		case "h", "H":
			a.showHelp()
		case "0":
			fmt.Fprintln(a.out, "Exiting, writing records back...")
			return
		default:
			fmt.Fprintln(a.out, "Invalid choice, choose one of the listed options.")
		}
	}
}

func (a *App) showMenu() {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "You can choose from the following options:")
	fmt.Fprintln(a.out, "  1: Make a purchase")
	fmt.Fprintln(a.out, "  2: Display existing customers")
	fmt.Fprintln(a.out, "  3: Display existing products")
	fmt.Fprintln(a.out, "  4: Add or update a product")
	fmt.Fprintln(a.out, "  5: Set the Basic customer reward rate")
	fmt.Fprintln(a.out, "  6: Set a VIP customer's discount rate")
	fmt.Fprintln(a.out, "  7: Display all orders")
	fmt.Fprintln(a.out, "  8: Display one customer's orders")
	fmt.Fprintln(a.out, "  h: Help")
	fmt.Fprintln(a.out, "  0: Exit and save")
}

func (a *App) showHelp() {
	doc, err := docs.GetTopics("readme", "menu")
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	printMarkdown(a.out, doc)
}

// promptCustomer resolves an existing customer, or returns the validated
// name of a new one (customer nil). Unknown non-alphabetic input re-prompts.
func (a *App) promptCustomer() (customer *pharmacy.Customer, name string, ok bool) {
	for {
		line, ok := a.readLine("Enter the customer name or ID: ")
		if !ok {
			return nil, "", false
		}
		if c := a.records.Ledger.Find(line); c != nil {
			return c, line, true
		}
		if err := pharmacy.ValidateName(line); err != nil {
			fmt.Fprintln(a.out, err)
			continue
		}
		return nil, line, true
	}
}

// promptLines collects the cart: product and quantity pairs until an empty
// product line. At least one line is required.
func (a *App) promptLines() ([]pharmacy.Line, bool) {
	var lines []pharmacy.Line
	for {
		ref, ok := a.readLine("Enter the product name or ID (empty line to finish): ")
		if !ok {
			return nil, false
		}
		if ref == "" {
			if len(lines) == 0 {
				fmt.Fprintln(a.out, "Add at least one product.")
				continue
			}
			return lines, true
		}
		product := a.records.Catalog.Find(ref)
		if product == nil {
			fmt.Fprintln(a.out, pharmacy.ErrInvalidProduct)
			continue
		}
		qty, ok := ask(a, "Enter the quantity (a positive integer): ", pharmacy.ValidateQuantity)
		if !ok {
			return nil, false
		}
		lines = append(lines, pharmacy.Line{Product: product, Quantity: qty})
	}
}

func (a *App) makePurchase() {
	customer, name, ok := a.promptCustomer()
	if !ok {
		return
	}
	if customer != nil {
		if customer.IsVIP() {
			fmt.Fprintf(a.out, "\nWelcome our VIP customer %s\n", customer.Name())
		} else {
			fmt.Fprintf(a.out, "\nWelcome our Basic customer %s\n", customer.Name())
		}
	}

	lines, ok := a.promptLines()
	if !ok {
		return
	}

	order := pharmacy.Order{Customer: customer, Lines: lines}
	if order.NeedsPrescription() {
		answer, ok := ask(a, "This product requires a doctor's prescription, do you have one? [y/n] ",
			pharmacy.ValidatePrescriptionAnswer)
		if !ok {
			return
		}
		if !answer {
			fmt.Fprintln(a.out, "Sorry, this product cannot be purchased without a doctor's prescription.")
			return
		}
	}

	// A new customer account is only opened once the purchase goes through.
	if customer == nil {
		customer = a.records.Ledger.NewBasic(name)
		order.Customer = customer
		fmt.Fprintf(a.out, "\nOpened a new Basic account %s for %s\n", customer.ID(), customer.Name())
	}

	receipt := a.records.Commit(order, time.Now())
	printMarkdown(a.out, renderer.ReceiptMarkdown(&receipt))
}

func (a *App) addOrUpdateProduct() {
	name, ok := a.readLine("Enter the product name: ")
	if !ok {
		return
	}
	if name == "" {
		fmt.Fprintln(a.out, pharmacy.ErrInvalidProduct)
		return
	}
	price, ok := ask(a, "Enter the price: ", pharmacy.ValidatePrice)
	if !ok {
		return
	}
	prescription, ok := ask(a, "Does it require a doctor's prescription? [y/n] ",
		pharmacy.ValidatePrescriptionAnswer)
	if !ok {
		return
	}
	product, err := a.records.Catalog.AddOrUpdate(name, price, prescription)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	fmt.Fprintf(a.out, "Saved product %s (%s) at %s\n", product.Name(), product.ID(), product.Price())
}

func (a *App) setBasicRewardRate() {
	rate, ok := ask(a, "Enter the new Basic reward rate (e.g. 1 or 0.5): ", pharmacy.ValidateRate)
	if !ok {
		return
	}
	a.records.Ledger.SetRewardRate(pharmacy.Basic, rate)
	fmt.Fprintf(a.out, "Basic reward rate is now %s for all Basic customers\n", rate)
}

func (a *App) setVIPDiscountRate() {
	for {
		line, ok := a.readLine("Enter the VIP customer name or ID: ")
		if !ok {
			return
		}
		customer := a.records.Ledger.Find(line)
		if customer == nil || !customer.IsVIP() {
			fmt.Fprintln(a.out, pharmacy.ErrInvalidName)
			continue
		}
		rate, ok := ask(a, "Enter the new discount rate (e.g. 0.08): ", pharmacy.ValidateRate)
		if !ok {
			return
		}
		if err := customer.SetDiscountRate(rate); err != nil {
			fmt.Fprintln(a.out, err)
			return
		}
		fmt.Fprintf(a.out, "Discount rate of %s is now %s\n", customer.Name(), rate)
		return
	}
}

func (a *App) listAllOrders() {
	var entries []pharmacy.Entry
	for e := range a.records.Journal.All() {
		entries = append(entries, e)
	}
	printMarkdown(a.out, renderer.OrdersMarkdown("All Orders", entries))
}

func (a *App) listCustomerOrders() {
	for {
		line, ok := a.readLine("Enter the customer name or ID: ")
		if !ok {
			return
		}
		customer := a.records.Ledger.Find(line)
		if customer == nil {
			fmt.Fprintln(a.out, pharmacy.ErrInvalidName)
			continue
		}
		entries := a.records.Journal.ByCustomer(customer.ID())
		printMarkdown(a.out, renderer.OrdersMarkdown("Orders of "+customer.Name(), entries))
		return
	}
}
