package main

import (
	"fmt"
	"math/rand"
	"time"

	"cafe-ops/cafe"
	"cafe-ops/domain"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func benchCmd() *cobra.Command {
	var orders, reservations int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Exercise the structures under synthetic load and print throughput",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(orders, reservations)
		},
	}
	cmd.Flags().IntVar(&orders, "orders", 100000, "number of orders to place and process")
	cmd.Flags().IntVar(&reservations, "reservations", 50000, "number of reservation attempts")
	return cmd
}

func runBench(orders, reservations int) error {
	d := cafe.New(nil, nil)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Wide catalog so lookups touch many buckets and tree paths.
	for id := 1; id <= 500; id++ {
		d.InsertMenuItem(id, fmt.Sprintf("item-%d", id), decimal.NewFromInt(int64(50+id)))
		d.SetInventory(id, fmt.Sprintf("stock-%d", id), orders, 10)
	}

	fmt.Printf("placing and processing %d orders...\n", orders)
	start := time.Now()
	for i := 0; i < orders; i++ {
		lines := []domain.OrderLine{{ItemID: 1 + rng.Intn(500), Quantity: 1 + rng.Intn(3)}}
		var priority *int
		if i%4 == 0 {
			p := rng.Intn(3)
			priority = &p
		}
		if err := d.PlaceOrder(i, "bench", lines, priority); err != nil {
			return err
		}
	}
	placed := time.Since(start)

	start = time.Now()
	processed := 0
	for {
		if _, ok := d.ProcessNext(); !ok {
			break
		}
		processed++
	}
	drained := time.Since(start)

	fmt.Printf("  place:   %v (%.0f orders/sec)\n", placed, float64(orders)/placed.Seconds())
	fmt.Printf("  process: %v (%.0f orders/sec)\n", drained, float64(processed)/drained.Seconds())

	fmt.Printf("booking %d reservations across 50 tables...\n", reservations)
	start = time.Now()
	booked := 0
	for i := 0; i < reservations; i++ {
		s := rng.Intn(24 * 60)
		if d.BookTable(1+rng.Intn(50), s, s+15+rng.Intn(90), "bench") {
			booked++
		}
	}
	elapsed := time.Since(start)
	fmt.Printf("  booked %d/%d (%.0f attempts/sec)\n",
		booked, reservations, float64(reservations)/elapsed.Seconds())

	low := d.LowStockAlerts()
	fmt.Printf("low stock entries after run: %d\n", len(low))
	return nil
}
