package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/onabhani/SimpleDashboard/internal/config"
	"github.com/onabhani/SimpleDashboard/internal/database"
	"github.com/onabhani/SimpleDashboard/internal/logger"
	"github.com/onabhani/SimpleDashboard/internal/repository"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var env string

func main() {
	rootCmd := &cobra.Command{
		Use:           "dashctl",
		Short:         "Administer the dashboard database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "logging environment")

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(userCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	log, err := logger.NewLogger(env)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return log, nil
}

// withRepo connects to the database and hands fn a repository. The pool is
// closed when fn returns.
func withRepo(ctx context.Context, fn func(*repository.Repository) error) error {
	db, err := config.LoadDB()
	if err != nil {
		return err
	}
	pool, err := database.Connect(ctx, db)
	if err != nil {
		return err
	}
	defer pool.Close()
	return fn(repository.NewRepository(pool))
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger()
			if err != nil {
				return err
			}
			defer log.Sync()

			db, err := config.LoadDB()
			if err != nil {
				return err
			}
			return database.Migrate(db.DSN, log)
		},
	}
}
