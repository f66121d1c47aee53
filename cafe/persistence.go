package cafe

import (
	"log/slog"

	"cafe-ops/csvstore"
)

// Save snapshots the menu and inventory to the given CSV paths. A failure
// is reported but leaves the in-memory structures untouched and usable.
func (d *Dispatcher) Save(menuPath, inventoryPath string) error {
	d.mu.Lock()
	menuItems := d.menu.All()
	invItems := d.stock.InOrder()
	d.mu.Unlock()

	if err := csvstore.SaveMenu(menuPath, menuItems); err != nil {
		d.log.Error("save failed", slog.String("path", menuPath), slog.Any("error", err))
		return err
	}
	if err := csvstore.SaveInventory(inventoryPath, invItems); err != nil {
		d.log.Error("save failed", slog.String("path", inventoryPath), slog.Any("error", err))
		return err
	}
	return nil
}

// Load merges CSV snapshots into the menu and inventory. Missing files are
// a no-op; a read failure leaves whatever loaded so far in place.
func (d *Dispatcher) Load(menuPath, inventoryPath string) error {
	menuItems, err := csvstore.LoadMenu(menuPath)
	if err != nil {
		d.log.Error("load failed", slog.String("path", menuPath), slog.Any("error", err))
		return err
	}
	invItems, err := csvstore.LoadInventory(inventoryPath)
	if err != nil {
		d.log.Error("load failed", slog.String("path", inventoryPath), slog.Any("error", err))
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for _, mi := range menuItems {
		d.menu.Insert(mi.ID, mi.Name, mi.Price)
	}
	for _, it := range invItems {
		d.stock.Insert(it)
	}
	return nil
}
