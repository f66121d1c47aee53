package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	root := &cobra.Command{
		Use:   "cafe-ops",
		Short: "Cafe operations simulator: menu, inventory, orders, reservations",
	}
	root.AddCommand(demoCmd())
	root.AddCommand(benchCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
