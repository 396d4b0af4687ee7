package main

import (
	"os"

	"github.com/spf13/cobra"

	"wagate/internal/interfaces/cli/admin"
	"wagate/internal/interfaces/cli/migrate"
	"wagate/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wagate",
		Short: "WhatsApp manual-payment gateway",
		Long:  `wagate accepts checkout hand-offs from the host shop, parks orders on hold and generates pre-filled WhatsApp deep links so customers can arrange payment with the merchant.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		admin.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
