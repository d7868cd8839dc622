package main

import (
	"os"

	"github.com/spf13/cobra"

	"warden/internal/interfaces/cli/bootstrap"
	"warden/internal/interfaces/cli/migrate"
	"warden/internal/interfaces/cli/sessions"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "warden",
		Short: "Warden - identity, credential and session audit management",
		Long:  `Warden manages administrator accounts, credential policy, and the login session audit trail backing a records-management deployment.`,
	}

	rootCmd.AddCommand(
		migrate.NewCommand(),
		bootstrap.NewCommand(),
		sessions.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
