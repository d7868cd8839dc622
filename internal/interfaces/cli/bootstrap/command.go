package bootstrap

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"warden/internal/application/account/dto"
	"warden/internal/application/account/usecases"
	"warden/internal/application/auth"
	"warden/internal/domain/account"
	infraauth "warden/internal/infrastructure/auth"
	"warden/internal/infrastructure/config"
	"warden/internal/infrastructure/database"
	"warden/internal/infrastructure/migration"
	"warden/internal/infrastructure/repository"
	"warden/internal/shared/logger"
)

var (
	configPath  string
	username    string
	displayName string
)

// NewCommand returns the bootstrap command. It seeds the first primary
// administrator so a fresh install has someone who can sign in.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Create the first primary administrator",
		Long:  `Create the initial PRIMARY_ADMIN account on a fresh install. Refuses to run when a primary administrator already exists.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config directory (default: ./configs)")
	cmd.Flags().StringVarP(&username, "username", "u", "", "Username for the administrator (required)")
	cmd.Flags().StringVarP(&displayName, "display-name", "d", "", "Display name, defaults to the username")
	cmd.MarkFlagRequired("username")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	// Fresh installs usually run bootstrap before any migration, so make
	// sure the tables exist.
	if err := database.Get().AutoMigrate(migration.AutoMigrateModels()...); err != nil {
		return fmt.Errorf("failed to prepare schema: %w", err)
	}

	accountRepo := repository.NewAccountRepository(database.Get(), log)

	existing, err := accountRepo.ListByRole(cmd.Context(), account.RolePrimaryAdmin)
	if err != nil {
		return fmt.Errorf("failed to check existing administrators: %w", err)
	}
	if len(existing) > 0 {
		return fmt.Errorf("a primary administrator already exists; bootstrap is only for fresh installs")
	}

	password, confirm, err := promptPassword()
	if err != nil {
		return err
	}

	hasher := infraauth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	createUC := usecases.NewCreateAccountUseCase(accountRepo, hasher, auth.NewSessionContext(), log)

	acct, err := createUC.Execute(cmd.Context(), dto.CreateAccountRequest{
		Role:            account.RolePrimaryAdmin.String(),
		Username:        username,
		Password:        password,
		ConfirmPassword: confirm,
		DisplayName:     displayName,
	})
	if err != nil {
		return fmt.Errorf("failed to create administrator: %w", err)
	}

	fmt.Printf("Created primary administrator %q (id %d)\n", acct.Username(), acct.ID())
	return nil
}

func promptPassword() (string, string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Fprint(os.Stderr, "Confirm password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", "", fmt.Errorf("failed to read password confirmation: %w", err)
	}

	return string(password), string(confirm), nil
}
