package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/castellan-host/castellan/internal/interfaces/cli/migrate"
	"github.com/castellan-host/castellan/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "castellan",
		Short: "Castellan - bot hosting subscription backend",
		Long:  `Castellan manages paid bot subscriptions, customer entitlements and castle configuration access for a bot hosting service.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
