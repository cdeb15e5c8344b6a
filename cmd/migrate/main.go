package main

import (
	"context"
	"fmt"
	"os"

	"housnkuh/internal/infra/db"
	"housnkuh/internal/infra/migrate"
	"housnkuh/internal/pkg/config"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "housnkuh schema migration tool",
	}

	rootCmd.AddCommand(upCmd(), downCmd(), statusCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func withMigrator(fn func(ctx context.Context, m *migrate.Migrator) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()

	return fn(ctx, migrate.NewMigrator(pool))
}

func upCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(ctx context.Context, m *migrate.Migrator) error {
				if err := m.Up(ctx); err != nil {
					return err
				}
				fmt.Println("migrations applied")
				return nil
			})
		},
	}
}

func downCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back the last applied migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(ctx context.Context, m *migrate.Migrator) error {
				if err := m.Down(ctx); err != nil {
					return err
				}
				fmt.Println("last migration rolled back")
				return nil
			})
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(ctx context.Context, m *migrate.Migrator) error {
				status, err := m.Status(ctx)
				if err != nil {
					return err
				}
				for _, mig := range migrate.All() {
					state := "pending"
					if status[mig.Version] {
						state = "applied"
					}
					fmt.Printf("%s  %-24s %s\n", mig.Version, mig.Name, state)
				}
				return nil
			})
		},
	}
}
