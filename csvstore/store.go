// Package csvstore persists menu and inventory snapshots as CSV. The format
// is fixed: a header line, then one comma-separated row per entry, prices
// with exactly two decimal digits, commas inside names replaced by spaces.
// Loading a missing file is a no-op; I/O failures are reported to the caller
// and never corrupt in-memory state.
package csvstore

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"cafe-ops/domain"

	"github.com/shopspring/decimal"
)

const (
	menuHeader      = "id,name,price"
	inventoryHeader = "id,name,stock,threshold"
)

func sanitizeName(name string) string {
	return strings.ReplaceAll(name, ",", " ")
}

// SaveMenu writes the menu items to path, overwriting any existing file.
func SaveMenu(path string, items []domain.MenuItem) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save menu: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, menuHeader)
	for _, mi := range items {
		fmt.Fprintf(w, "%d,%s,%s\n", mi.ID, sanitizeName(mi.Name), mi.Price.StringFixed(2))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("save menu: %w", err)
	}
	return nil
}

// LoadMenu reads menu items from path. A missing file yields no items and
// no error. Malformed rows are skipped.
func LoadMenu(path string) ([]domain.MenuItem, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}

	var items []domain.MenuItem
	for _, line := range lines {
		parts := strings.SplitN(line, ",", 3)
		if len(parts) < 3 {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			continue
		}
		price, err := decimal.NewFromString(strings.TrimSpace(parts[2]))
		if err != nil {
			continue
		}
		items = append(items, domain.MenuItem{
			ID:    id,
			Name:  strings.TrimSpace(parts[1]),
			Price: price,
		})
	}
	return items, nil
}

// SaveInventory writes the inventory entries to path, overwriting any
// existing file.
func SaveInventory(path string, items []domain.InventoryItem) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save inventory: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, inventoryHeader)
	for _, it := range items {
		fmt.Fprintf(w, "%d,%s,%d,%d\n", it.ID, sanitizeName(it.Name), it.Stock, it.ReorderThreshold)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("save inventory: %w", err)
	}
	return nil
}

// LoadInventory reads inventory entries from path. A missing file yields no
// entries and no error. Malformed rows are skipped.
func LoadInventory(path string) ([]domain.InventoryItem, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}

	var items []domain.InventoryItem
	for _, line := range lines {
		parts := strings.SplitN(line, ",", 4)
		if len(parts) < 4 {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			continue
		}
		stock, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			continue
		}
		threshold, err := strconv.Atoi(strings.TrimSpace(parts[3]))
		if err != nil {
			continue
		}
		items = append(items, domain.InventoryItem{
			ID:               id,
			Name:             strings.TrimSpace(parts[1]),
			Stock:            stock,
			ReorderThreshold: threshold,
		})
	}
	return items, nil
}

// readLines returns the data rows of the file, skipping the header line.
// A missing file yields nil, nil.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	first := true
	for scanner.Scan() {
		if first {
			first = false // header
			continue
		}
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
