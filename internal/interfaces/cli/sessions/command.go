package sessions

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"warden/internal/application/audit/usecases"
	"warden/internal/infrastructure/config"
	"warden/internal/infrastructure/database"
	"warden/internal/infrastructure/repository"
	"warden/internal/shared/logger"
)

var (
	configPath string
	search     string
)

// NewCommand returns the sessions command, a text rendering of the login
// audit trail.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Print the session audit trail",
		Long:  `List login sessions most recent first, with logout time, duration, and ACTIVE/LOGGED_OUT summary counts.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config directory (default: ./configs)")
	cmd.Flags().StringVarP(&search, "search", "q", "", "Case-insensitive substring match on username or display name")

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

	sessionRepo := repository.NewSessionLogRepository(database.Get(), log)
	listUC := usecases.NewListSessionsUseCase(sessionRepo, log)

	result, err := listUC.Execute(cmd.Context(), usecases.ListSessionsQuery{Search: search})
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tNAME\tLOGIN\tLOGOUT\tDURATION\tORIGIN\tSTATUS")
	for _, s := range result.Sessions {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			s.ID, s.Username, s.DisplayName, s.LoginAt, s.LogoutAt, s.Duration, s.Origin, s.Status)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nTotal: %d  Active: %d  Logged out: %d\n", result.Total, result.Active, result.LoggedOut)
	return nil
}
