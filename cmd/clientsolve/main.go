package main

import (
	"os"

	"github.com/spf13/cobra"

	"clientsolve/internal/interfaces/cli/admin"
	"clientsolve/internal/interfaces/cli/migrate"
	"clientsolve/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clientsolve",
		Short: "ClientSolve - a small helpdesk and CRM",
		Long:  `ClientSolve manages a client directory, user accounts, and a support ticket store with email notifications.`,
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
