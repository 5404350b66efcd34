package pharmacy

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// This file contains the codecs for the three record files. All of them are
// line-oriented, comma-space separated text, human-readable and diff-friendly.
//
// Decode reads a stream line by line and appends to the in-memory
// collections; any structural problem is reported with file and line number
// and aborts the load. Encode is a full overwrite of the stream in insertion
// order, never an append or a merge.

// fieldSep separates fields when encoding a record line.
const fieldSep = ", "

// splitRecord breaks a record line into trimmed fields.
func splitRecord(line string) []string {
	parts := strings.Split(line, ",")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		fields = append(fields, strings.TrimSpace(p))
	}
	return fields
}

// DecodeCustomers reads customer records into the ledger.
//
// A row has 4 fields for a Basic customer (id, name, reward rate, points)
// and 5 for a VIP (with the discount rate fourth). The reward rate field
// feeds the tier's single shared cell, so the last row of a tier wins.
// filename is for error messages only.
func DecodeCustomers(filename string, r io.Reader, ledger *Ledger) error {
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := splitRecord(line)
		if len(fields) != 4 && len(fields) != 5 {
			return fmt.Errorf("parse error %s:%d: expected 4 or 5 fields, got %d", filename, i, len(fields))
		}

		id, name := fields[0], fields[1]
		rate, err := ParseRate(fields[2])
		if err != nil {
			return fmt.Errorf("parse error %s:%d: reward rate: %w", filename, i, err)
		}
		points, err := strconv.Atoi(fields[len(fields)-1])
		if err != nil {
			return fmt.Errorf("parse error %s:%d: reward points: %w", filename, i, err)
		}

		if len(fields) == 5 {
			discount, err := ParseRate(fields[3])
			if err != nil {
				return fmt.Errorf("parse error %s:%d: discount rate: %w", filename, i, err)
			}
			ledger.AddVIP(id, name, points, discount)
			ledger.SetRewardRate(VIP, rate)
		} else {
			ledger.AddBasic(id, name, points)
			ledger.SetRewardRate(Basic, rate)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read error %s: %w", filename, err)
	}
	return nil
}

// EncodeCustomers writes every customer of the ledger, in insertion order.
func EncodeCustomers(w io.Writer, ledger *Ledger) error {
	for c := range ledger.All() {
		fields := []string{c.ID(), c.Name(), c.RewardRate().Record()}
		if c.IsVIP() {
			fields = append(fields, c.DiscountRate().Record())
		}
		fields = append(fields, strconv.Itoa(c.Points()))
		if _, err := fmt.Fprintln(w, strings.Join(fields, fieldSep)); err != nil {
			return fmt.Errorf("persist error: cannot write customer %s: %w", c.ID(), err)
		}
	}
	return nil
}

// DecodeProducts reads product and bundle records into the catalog.
//
// A plain row is id, name, price, y|n. A bundle row starts with a 'B' id and
// lists component ids or names, which must already be loaded: bundles only
// reference products above them in the file.
func DecodeProducts(filename string, r io.Reader, catalog *Catalog) error {
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := splitRecord(line)

		if strings.HasPrefix(fields[0], "B") {
			if len(fields) < 3 {
				return fmt.Errorf("parse error %s:%d: bundle needs at least one component", filename, i)
			}
			components := make([]*Product, 0, len(fields)-2)
			for _, ref := range fields[2:] {
				components = append(components, catalog.Find(ref))
			}
			bundle, err := NewBundle(fields[0], fields[1], components)
			if err != nil {
				return fmt.Errorf("parse error %s:%d: %w", filename, i, err)
			}
			catalog.Add(bundle)
			continue
		}

		if len(fields) != 4 {
			return fmt.Errorf("parse error %s:%d: expected 4 fields, got %d", filename, i, len(fields))
		}
		price, err := ParseMoney(fields[2])
		if err != nil {
			return fmt.Errorf("parse error %s:%d: price: %w", filename, i, err)
		}
		prescription, err := ValidatePrescriptionAnswer(fields[3])
		if err != nil {
			return fmt.Errorf("parse error %s:%d: prescription flag: %w", filename, i, err)
		}
		catalog.Add(NewProduct(fields[0], fields[1], price, prescription))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read error %s: %w", filename, err)
	}
	return nil
}

// EncodeProducts writes every product of the catalog, in insertion order.
// Bundles persist only their component id list; price and prescription are
// re-derived on the next load.
func EncodeProducts(w io.Writer, catalog *Catalog) error {
	for p := range catalog.All() {
		var fields []string
		if p.Kind() == Bundle {
			fields = append([]string{p.ID(), p.Name()}, p.Components()...)
		} else {
			flag := "n"
			if p.RequiresPrescription() {
				flag = "y"
			}
			fields = []string{p.ID(), p.Name(), p.Price().Record(), flag}
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, fieldSep)); err != nil {
			return fmt.Errorf("persist error: cannot write product %s: %w", p.ID(), err)
		}
	}
	return nil
}

// DecodeOrders reads order history records into the journal.
//
// A row is customer, one or more (product, quantity) pairs, total cost,
// earned rewards, timestamp. Customer and products may be referenced by id
// or name and are re-resolved against the ledger and catalog; an
// unresolvable reference aborts the load. The customer's persisted point
// balance already accounts for recorded purchases, so replay does not
// re-apply earned rewards.
func DecodeOrders(filename string, r io.Reader, catalog *Catalog, ledger *Ledger, journal *Journal) error {
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := splitRecord(line)
		// customer + k pairs + total, earned, stamp
		if len(fields) < 6 || len(fields)%2 != 0 {
			return fmt.Errorf("parse error %s:%d: malformed order row", filename, i)
		}

		customer := ledger.Find(fields[0])
		if customer == nil {
			return fmt.Errorf("parse error %s:%d: unknown customer %q", filename, i, fields[0])
		}

		pairs := fields[1 : len(fields)-3]
		lines := make([]EntryLine, 0, len(pairs)/2)
		for k := 0; k < len(pairs); k += 2 {
			product := catalog.Find(pairs[k])
			if product == nil {
				return fmt.Errorf("parse error %s:%d: unknown product %q", filename, i, pairs[k])
			}
			qty, err := ValidateQuantity(pairs[k+1])
			if err != nil {
				return fmt.Errorf("parse error %s:%d: %w", filename, i, err)
			}
			lines = append(lines, EntryLine{ProductID: product.ID(), Quantity: qty})
		}

		total, err := ParseMoney(fields[len(fields)-3])
		if err != nil {
			return fmt.Errorf("parse error %s:%d: total cost: %w", filename, i, err)
		}
		reward, err := strconv.Atoi(fields[len(fields)-2])
		if err != nil {
			return fmt.Errorf("parse error %s:%d: earned rewards: %w", filename, i, err)
		}
		stamp, err := ParseStamp(fields[len(fields)-1])
		if err != nil {
			return fmt.Errorf("parse error %s:%d: timestamp: %w", filename, i, err)
		}

		journal.Append(Entry{
			CustomerID: customer.ID(),
			Lines:      lines,
			Total:      total,
			Reward:     reward,
			Stamp:      stamp,
		})
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read error %s: %w", filename, err)
	}
	return nil
}

// EncodeOrders writes every journal entry, in chronological order.
func EncodeOrders(w io.Writer, journal *Journal) error {
	for e := range journal.All() {
		fields := []string{e.CustomerID}
		for _, l := range e.Lines {
			fields = append(fields, l.ProductID, strconv.Itoa(l.Quantity))
		}
		fields = append(fields, e.Total.Record(), strconv.Itoa(e.Reward), FormatStamp(e.Stamp))
		if _, err := fmt.Fprintln(w, strings.Join(fields, fieldSep)); err != nil {
			return fmt.Errorf("persist error: cannot write order for %s: %w", e.CustomerID, err)
		}
	}
	return nil
}
