package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/kamrul-CSE-official/ksa-backend/migrations"
)

// MigrateCmd applies and inspects the embedded goose migrations.
func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect database migrations",
		Long: `Apply or inspect the SQL migrations compiled into the binary.

Examples:
  ksa migrate up       # apply every pending migration
  ksa migrate down     # roll back the latest migration
  ksa migrate status   # list migrations and their state`,
	}

	cmd.AddCommand(
		migrateSubCmd("up", "Apply all pending migrations", migrateUp),
		migrateSubCmd("down", "Roll back the latest migration", migrateDown),
		migrateSubCmd("status", "Show the state of every migration", migrateStatus),
	)
	return cmd
}

type migrateFunc func(ctx context.Context, w io.Writer, p *goose.Provider) error

func migrateSubCmd(use, short string, run migrateFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := sql.Open("pgx", cfg.Database.DSN)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer db.Close()

			p, err := newProvider(db)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cmd.OutOrStdout(), p)
		},
	}
}

func newProvider(db *sql.DB) (*goose.Provider, error) {
	p, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return nil, fmt.Errorf("goose provider: %w", err)
	}
	return p, nil
}

func migrateUp(ctx context.Context, w io.Writer, p *goose.Provider) error {
	results, err := p.Up(ctx)
	for _, r := range results {
		printResult(w, r)
	}
	if err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	printf(w, okColor, "%s applied\n", plural(len(results), "migration"))
	return nil
}

func migrateDown(ctx context.Context, w io.Writer, p *goose.Provider) error {
	r, err := p.Down(ctx)
	if r != nil {
		printResult(w, r)
	}
	if err != nil {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}

func migrateStatus(ctx context.Context, w io.Writer, p *goose.Provider) error {
	statuses, err := p.Status(ctx)
	if err != nil {
		return fmt.Errorf("migrate status: %w", err)
	}

	fmt.Fprintln(w, "Version  State    Applied at           File")
	fmt.Fprintln(w, "───────────────────────────────────────────────────────────")
	for _, s := range statuses {
		applied := s.State == goose.StateApplied
		at := "-"
		if applied {
			at = s.AppliedAt.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(w, "%-8d %s  %-20s %s\n", s.Source.Version, statusLabel(applied), at, s.Source.Path)
	}
	return nil
}

func printResult(w io.Writer, r *goose.MigrationResult) {
	if r.Error != nil {
		printf(w, failColor, "FAIL %s %s: %v\n", r.Direction, r.Source.Path, r.Error)
		return
	}
	printf(w, okColor, "OK   %s %s (%s)\n", r.Direction, r.Source.Path, r.Duration)
}
