package main

import (
	"fmt"

	"cafe-ops/cafe"
	"cafe-ops/domain"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func demoCmd() *cobra.Command {
	var menuCSV, inventoryCSV string
	var save bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Seed sample data and run the full order/reservation flow",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(menuCSV, inventoryCSV, save)
		},
	}
	cmd.Flags().StringVar(&menuCSV, "menu-csv", "menu.csv", "menu snapshot path")
	cmd.Flags().StringVar(&inventoryCSV, "inventory-csv", "inventory.csv", "inventory snapshot path")
	cmd.Flags().BoolVar(&save, "save", true, "save CSV snapshots at the end")
	return cmd
}

func seedSampleData(d *cafe.Dispatcher) {
	// Menu ids align with inventory ids for simplicity.
	d.InsertMenuItem(1, "Espresso", decimal.RequireFromString("350.00"))
	d.InsertMenuItem(2, "Cappuccino", decimal.RequireFromString("450.00"))
	d.InsertMenuItem(3, "Latte", decimal.RequireFromString("500.00"))
	d.InsertMenuItem(4, "Blueberry Muffin", decimal.RequireFromString("300.00"))
	d.InsertMenuItem(5, "Chocolate Croissant", decimal.RequireFromString("320.00"))

	d.SetInventory(1, "Espresso Beans", 50, 10)
	d.SetInventory(2, "Milk", 40, 8)
	d.SetInventory(3, "Latte Mix", 30, 5)
	d.SetInventory(4, "Muffins", 20, 5)
	d.SetInventory(5, "Croissants", 15, 5)
}

func runDemo(menuCSV, inventoryCSV string, save bool) error {
	d := cafe.New(nil, nil)
	seedSampleData(d)

	fmt.Println("=== MENU ===")
	for _, mi := range d.ListMenuItems() {
		fmt.Printf("%02d | %-22s Rs %s\n", mi.ID, mi.Name, mi.Price.StringFixed(2))
	}

	fmt.Println("\n=== RESERVATIONS ===")
	printBooking(d, 1, 9*60, 10*60, "Ayesha")
	printBooking(d, 1, 9*60+50, 10*60+30, "Bilal")
	printBooking(d, 1, 10*60+30, 11*60+30, "Danish")

	fmt.Println("\n=== PLACE ORDERS ===")
	placeDemoOrder(d, 101, "Fatima", []domain.OrderLine{{ItemID: 1, Quantity: 2}, {ItemID: 4, Quantity: 1}}, nil)
	placeDemoOrder(d, 102, "Hassan", []domain.OrderLine{{ItemID: 2, Quantity: 1}, {ItemID: 3, Quantity: 1}}, intp(0))
	placeDemoOrder(d, 103, "Iram", []domain.OrderLine{{ItemID: 5, Quantity: 2}}, intp(1))
	placeDemoOrder(d, 104, "Javed", []domain.OrderLine{{ItemID: 1, Quantity: 1}, {ItemID: 2, Quantity: 1}}, nil)

	fmt.Println("\n=== PROCESSING ORDERS (priority first) ===")
	for {
		bill, ok := d.ProcessNext()
		if !ok {
			break
		}
		fmt.Printf("Bill for Order #%d (%s)\n", bill.OrderID, bill.Customer)
		for _, line := range bill.Lines {
			fmt.Printf("  - %s\n", line)
		}
		fmt.Printf("Subtotal: Rs %s\n", bill.Subtotal.StringFixed(2))
		fmt.Printf("TOTAL (incl. tax): Rs %s\n", bill.Total.StringFixed(2))
		fmt.Println("--------------------------------")
	}

	fmt.Println("\n=== LOW STOCK ALERTS ===")
	for _, it := range d.LowStockAlerts() {
		fmt.Printf("[ALERT] %s stock=%d threshold=%d\n", it.Name, it.Stock, it.ReorderThreshold)
	}

	if save {
		if err := d.Save(menuCSV, inventoryCSV); err != nil {
			fmt.Printf("Save failed: %v\n", err)
		} else {
			fmt.Println("\nData saved.")
		}
	}
	fmt.Println("Demo complete.")
	return nil
}

func printBooking(d *cafe.Dispatcher, table, start, end int, customer string) {
	result := "Conflict"
	if d.BookTable(table, start, end, customer) {
		result = "OK"
	}
	fmt.Printf("Book T%d %02d:%02d-%02d:%02d -> %s\n",
		table, start/60, start%60, end/60, end%60, result)
}

func placeDemoOrder(d *cafe.Dispatcher, id int, customer string, lines []domain.OrderLine, priority *int) {
	if err := d.PlaceOrder(id, customer, lines, priority); err != nil {
		fmt.Printf("Order #%d rejected: %v\n", id, err)
		return
	}
	fmt.Printf("Order #%d placed for %s\n", id, customer)
}

func intp(v int) *int { return &v }
