package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"warden/internal/infrastructure/config"
	"warden/internal/infrastructure/database"
	"warden/internal/infrastructure/migration"
	"warden/internal/shared/logger"
)

var (
	configPath string
	steps      int
	strategy   string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage the credential store schema: apply pending migrations, roll back, and inspect the current version.`,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config directory (default: ./configs)")
	cmd.PersistentFlags().StringVarP(&strategy, "strategy", "s", "goose", "Migration strategy (goose, golang-migrate)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func initEnv() (*config.Config, string, logger.Interface, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, "", nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return nil, "", nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to get scripts path: %w", err)
	}

	return cfg, scriptsPath, log, nil
}

func gooseDialect(driver string) string {
	if driver == "mysql" {
		return "mysql"
	}
	return "sqlite3"
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, scriptsPath, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "driver", cfg.Database.Driver, "strategy", strategy)

	if strategy == "golang-migrate" {
		if cfg.Database.Driver != "mysql" {
			return fmt.Errorf("golang-migrate strategy requires the mysql driver")
		}
		gm := migration.NewGolangMigrateStrategy(scriptsPath, log)
		if err := gm.Migrate(database.Get()); err != nil {
			log.Errorw("migration failed", "error", err)
			return fmt.Errorf("migration failed: %w", err)
		}
		log.Infow("migrations completed successfully")
		return nil
	}

	goose := migration.NewGooseStrategy(scriptsPath, gooseDialect(cfg.Database.Driver), log)
	if err := goose.Migrate(database.Get()); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	cfg, scriptsPath, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running down migrations", "steps", steps)

	goose := migration.NewGooseStrategy(scriptsPath, gooseDialect(cfg.Database.Driver), log)
	if err := goose.MigrateDown(database.Get(), steps); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, scriptsPath, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	goose := migration.NewGooseStrategy(scriptsPath, gooseDialect(cfg.Database.Driver), log)

	version, err := goose.GetVersion(database.Get())
	if err != nil {
		log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	fmt.Printf("\nMigration Status:\n")
	fmt.Printf("  Driver:          %s\n", cfg.Database.Driver)
	fmt.Printf("  Current Version: %d\n", version)

	if err := goose.Status(database.Get()); err != nil {
		log.Errorw("failed to get detailed status", "error", err)
		return fmt.Errorf("failed to get detailed status: %w", err)
	}

	return nil
}
