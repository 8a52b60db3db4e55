package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/orderline-io/orderline/internal/interfaces/cli/migrate"
	"github.com/orderline-io/orderline/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orderline",
		Short: "Orderline - order management service",
		Long:  `Orderline is an order management service with a built-in HTTP server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
