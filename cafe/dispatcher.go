package cafe

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"cafe-ops/domain"
	"cafe-ops/inventory"
	"cafe-ops/menu"
	"cafe-ops/queue"
	"cafe-ops/reservation"

	"github.com/shopspring/decimal"
)

// TaxRate is the flat tax applied to every bill.
var TaxRate = decimal.RequireFromString("0.08")

// Clock supplies order timestamps. Injected so tests stay deterministic.
type Clock func() time.Time

// Dispatcher wires the cafe structures together: it validates orders against
// the menu table and inventory tree, routes them into the normal or priority
// queue, and on processing bills the order and deducts stock.
//
// The core is designed for one logical actor; the mutex extends that to
// concurrent callers by making every operation, including the pop + bill +
// deduct sequence of ProcessNext, a single atomic unit.
type Dispatcher struct {
	mu sync.Mutex

	menu     *menu.Table
	stock    *inventory.Tree
	normal   *queue.FIFO
	priority *queue.Heap
	tables   *reservation.Ledger

	clock Clock
	log   *slog.Logger
}

// New creates a dispatcher with empty structures. A nil logger falls back to
// slog.Default(); a nil clock falls back to time.Now.
func New(logger *slog.Logger, clock Clock) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	if clock == nil {
		clock = time.Now
	}
	return &Dispatcher{
		menu:     menu.NewTable(menu.DefaultCapacity),
		stock:    inventory.NewTree(),
		normal:   queue.NewFIFO(),
		priority: queue.NewHeap(),
		tables:   reservation.NewLedger(),
		clock:    clock,
		log:      logger,
	}
}

// ---- Menu facade ----

// InsertMenuItem adds or updates a menu item.
func (d *Dispatcher) InsertMenuItem(id int, name string, price decimal.Decimal) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.menu.Insert(id, name, price)
}

// FindMenuItem looks up a menu item by id.
func (d *Dispatcher) FindMenuItem(id int) (domain.MenuItem, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.menu.Search(id)
}

// RemoveMenuItem deletes a menu item, reporting whether one existed.
func (d *Dispatcher) RemoveMenuItem(id int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.menu.Delete(id)
}

// ListMenuItems returns the menu sorted by id.
func (d *Dispatcher) ListMenuItems() []domain.MenuItem {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.menu.All()
}

// ---- Inventory facade ----

// SetInventory adds or replaces an inventory entry.
func (d *Dispatcher) SetInventory(id int, name string, stock, threshold int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stock.Insert(domain.InventoryItem{ID: id, Name: name, Stock: stock, ReorderThreshold: threshold})
}

// FindInventory looks up an inventory entry by id.
func (d *Dispatcher) FindInventory(id int) (domain.InventoryItem, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stock.Search(id)
}

// RemoveInventory deletes an inventory entry; absent ids are a no-op.
func (d *Dispatcher) RemoveInventory(id int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stock.Delete(id)
}

// ListInventory returns the inventory sorted by id.
func (d *Dispatcher) ListInventory() []domain.InventoryItem {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stock.InOrder()
}

// LowStockAlerts returns the inventory entries at or below their reorder
// threshold.
func (d *Dispatcher) LowStockAlerts() []domain.InventoryItem {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stock.LowStock()
}

// ---- Orders ----

// PlaceOrder validates every line against the menu and inventory, then
// queues the order: into the priority heap when a priority rank is given,
// into the FIFO queue otherwise. Validation is all-or-nothing: when any
// line fails, no order is created and no queue is touched.
func (d *Dispatcher) PlaceOrder(orderID int, customer string, lines []domain.OrderLine, priority *int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, line := range lines {
		if line.Quantity <= 0 {
			return &InvalidQuantityError{ItemID: line.ItemID, Quantity: line.Quantity}
		}
		mi, ok := d.menu.Search(line.ItemID)
		if !ok {
			return &ItemNotFoundError{ItemID: line.ItemID}
		}
		inv, ok := d.stock.Search(line.ItemID)
		if !ok {
			return &InsufficientStockError{ItemID: line.ItemID, Requested: line.Quantity}
		}
		if inv.Stock < line.Quantity {
			return &InsufficientStockError{
				ItemID:    line.ItemID,
				Name:      mi.Name,
				Requested: line.Quantity,
				Available: inv.Stock,
			}
		}
	}

	order := domain.NewOrder(orderID, customer, lines, priority != nil, d.clock())
	if priority != nil {
		d.priority.Push(order, *priority)
		d.log.Info("order queued",
			slog.Int("order_id", orderID),
			slog.String("customer", customer),
			slog.Int("priority", *priority))
	} else {
		d.normal.Enqueue(order)
		d.log.Info("order queued",
			slog.Int("order_id", orderID),
			slog.String("customer", customer))
	}
	return nil
}

// ProcessNext pops the next order, priority queue first, and returns its
// bill. Returns false when both queues are empty; that is a normal outcome,
// not an error.
//
// Stock is not re-validated here: levels may have dropped since placement,
// and deduction clamps at zero rather than rejecting the order. This matches
// the placement-time-only validation contract.
func (d *Dispatcher) ProcessNext() (*domain.Bill, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	order, ok := d.nextOrder()
	if !ok {
		return nil, false
	}

	bill := d.buildBill(order)
	d.deductStock(order)

	d.log.Info("order processed",
		slog.Int("order_id", order.ID),
		slog.String("customer", order.Customer),
		slog.String("total", bill.Total.StringFixed(2)))
	return bill, true
}

// nextOrder drains the sources in urgency order: priority heap, then FIFO.
func (d *Dispatcher) nextOrder() (*domain.Order, bool) {
	for _, src := range []queue.Source{d.priority, d.normal} {
		if order, ok := src.Next(); ok {
			return order, true
		}
	}
	return nil, false
}

// buildBill prices the order at current menu prices. Subtotal and total are
// rounded half-up to two decimal places; tax is computed on the unrounded
// subtotal.
func (d *Dispatcher) buildBill(order *domain.Order) *domain.Bill {
	subtotal := decimal.Zero
	lines := make([]string, 0, len(order.Lines))
	for _, line := range order.Lines {
		mi, ok := d.menu.Search(line.ItemID)
		if !ok {
			// The item was removed between placement and processing; bill
			// what is still known, at zero.
			lines = append(lines, fmt.Sprintf("item %d x%d", line.ItemID, line.Quantity))
			continue
		}
		subtotal = subtotal.Add(mi.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		lines = append(lines, fmt.Sprintf("%s x%d", mi.Name, line.Quantity))
	}

	total := subtotal.Add(subtotal.Mul(TaxRate))
	return &domain.Bill{
		OrderID:  order.ID,
		Customer: order.Customer,
		Lines:    lines,
		Subtotal: subtotal.Round(2),
		Total:    total.Round(2),
	}
}

// deductStock subtracts each line's quantity from inventory, floored at
// zero, and writes the entry back into the tree.
func (d *Dispatcher) deductStock(order *domain.Order) {
	for _, line := range order.Lines {
		inv, ok := d.stock.Search(line.ItemID)
		if !ok {
			continue
		}
		inv.Stock -= line.Quantity
		if inv.Stock < 0 {
			inv.Stock = 0
		}
		d.stock.Insert(inv)
		if inv.LowStock() {
			d.log.Warn("low stock",
				slog.Int("item_id", inv.ID),
				slog.String("name", inv.Name),
				slog.Int("stock", inv.Stock),
				slog.Int("threshold", inv.ReorderThreshold))
		}
	}
}

// PendingOrders returns the number of queued orders across both queues.
func (d *Dispatcher) PendingOrders() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.priority.Len() + d.normal.Len()
}

// ---- Reservations ----

// BookTable reserves [start, end) on the table for the customer, lazily
// creating the table's interval tree. Returns false on conflict; conflicts
// are expected outcomes, not errors.
func (d *Dispatcher) BookTable(tableID, start, end int, customer string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	ok := d.tables.Book(tableID, start, end, customer)
	if !ok {
		d.log.Info("booking conflict",
			slog.Int("table", tableID),
			slog.Int("start", start),
			slog.Int("end", end))
	}
	return ok
}

// Overlaps returns the reservations on the table overlapping [start, end).
func (d *Dispatcher) Overlaps(tableID, start, end int) []domain.Reservation {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.tables.Overlaps(tableID, start, end)
}
