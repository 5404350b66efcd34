// Package renderer turns store state and receipts into markdown, ready for
// terminal rendering by the cmd package.
package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/rxledger/pharmacy"
)

// ReceiptMarkdown renders the receipt of a completed purchase.
func ReceiptMarkdown(r *pharmacy.Receipt) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Receipt")
	doc.PlainText(fmt.Sprintf("Customer: %s (%s)", r.Customer.Name(), r.Customer.ID()))

	items := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Product", "Qty", "Unit Price"},
	}
	for _, l := range r.Lines {
		items.Rows = append(items.Rows, []string{
			l.Product.Name(),
			fmt.Sprintf("%d", l.Quantity),
			l.Product.Price().String(),
		})
	}
	doc.Table(items)

	totals := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", ""},
	}
	if r.Customer.IsVIP() {
		totals.Rows = append(totals.Rows,
			[]string{"Original cost", r.Quote.Original.String()},
			[]string{"Discount", r.Quote.Discount.String()},
		)
	}
	if !r.Deduction.IsZero() {
		totals.Rows = append(totals.Rows, []string{"Reward redemption", "-" + r.Deduction.String()})
	}
	totals.Rows = append(totals.Rows,
		[]string{md.Bold("Total cost"), md.Bold(r.Total.String())},
		[]string{"Earned reward", fmt.Sprintf("%d", r.Quote.Reward)},
		[]string{"Reward balance", fmt.Sprintf("%d", r.Customer.Points())},
	)
	doc.Table(totals)

	return doc.String()
}

// CustomersMarkdown renders the customer listing.
func CustomersMarkdown(l *pharmacy.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Existing Customers")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Customer ID", "Name", "Reward Rate", "Discount Rate", "Reward"},
	}
	for c := range l.All() {
		discount := "---"
		if c.IsVIP() {
			discount = c.DiscountRate().String()
		}
		table.Rows = append(table.Rows, []string{
			c.ID(),
			c.Name(),
			c.RewardRate().String(),
			discount,
			fmt.Sprintf("%d", c.Points()),
		})
	}
	doc.Table(table)

	return doc.String()
}

// ProductsMarkdown renders the product listing.
func ProductsMarkdown(c *pharmacy.Catalog) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Existing Products")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"Product ID", "Name", "Price", "Prescription", "Components"},
	}
	for p := range c.All() {
		prescription := "NO"
		if p.RequiresPrescription() {
			prescription = "YES"
		}
		components := "--"
		if len(p.Components()) > 0 {
			components = strings.Join(p.Components(), ", ")
		}
		table.Rows = append(table.Rows, []string{
			p.ID(),
			p.Name(),
			p.Price().String(),
			prescription,
			components,
		})
	}
	doc.Table(table)

	return doc.String()
}

// OrdersMarkdown renders a list of journal entries under the given title.
func OrdersMarkdown(title string, entries []pharmacy.Entry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(entries) == 0 {
		doc.PlainText("No orders recorded.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Customer", "Items", "Total", "Earned", "Date"},
	}
	for _, e := range entries {
		items := make([]string, 0, len(e.Lines))
		for _, l := range e.Lines {
			items = append(items, fmt.Sprintf("%s x%d", l.ProductID, l.Quantity))
		}
		table.Rows = append(table.Rows, []string{
			e.CustomerID,
			strings.Join(items, ", "),
			e.Total.String(),
			fmt.Sprintf("%d", e.Reward),
			pharmacy.FormatStamp(e.Stamp),
		})
	}
	doc.Table(table)

	return doc.String()
}
