// Command ksa is the operator CLI of the knowledge-sharing backend.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kamrul-CSE-official/ksa-backend/internal/app"
	"github.com/kamrul-CSE-official/ksa-backend/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "ksa",
		Short:   "Knowledge-sharing portal backend",
		Version: app.BuildVersion(),
		Long: `ksa serves the knowledge-sharing portal API and carries the operator
tooling around it: database migrations and reference token inspection.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.MigrateCmd())
	rootCmd.AddCommand(cli.TokenCmd())

	if err := rootCmd.Execute(); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
