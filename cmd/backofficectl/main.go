package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/agriformation/backoffice/internal/auth"
	"github.com/agriformation/backoffice/internal/config"
	"github.com/agriformation/backoffice/internal/database"
	"github.com/agriformation/backoffice/internal/repository"
	"github.com/agriformation/backoffice/internal/service"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	dbConnString string
	verbose      bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", "", "Database connection string (overrides DATABASE_URL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	resetPasswordCmd.Flags().StringP("password", "p", "", "New password (at least 8 characters)")
	resetPasswordCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedSuperadminCmd)
	rootCmd.AddCommand(resetPasswordCmd)
	rootCmd.AddCommand(issueTokenCmd)
}

var rootCmd = &cobra.Command{
	Use:   "backofficectl",
	Short: "Operator tooling for the back office",
	Long:  `backofficectl runs schema migrations and account maintenance against the back office database.`,
}

// connect loads configuration, applies the --db override and opens the database.
func connect(ctx context.Context) (*config.Config, *gorm.DB, error) {
	cfg := config.Load()
	if dbConnString != "" {
		cfg.Database.URL = dbConnString
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	db, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

func accountService(cfg *config.Config, db *gorm.DB) *service.AccountService {
	return service.NewAccountService(
		repository.NewAccountRepository(db),
		auth.NewPasswordHasher(),
		auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod),
		service.NewAuditService(repository.NewAuditLogRepository(db)),
		cfg,
	)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		_, db, err := connect(ctx)
		if err != nil {
			return err
		}
		if err := repository.Migrate(ctx, db); err != nil {
			return fmt.Errorf("failed to migrate: %w", err)
		}
		fmt.Println("Schema is up to date")
		return nil
	},
}

var seedSuperadminCmd = &cobra.Command{
	Use:   "seed-superadmin",
	Short: "Create the bootstrap superadmin if none exists",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, db, err := connect(ctx)
		if err != nil {
			return err
		}
		created, err := accountService(cfg, db).EnsureSuperadmin(ctx)
		if err != nil {
			return err
		}
		if created {
			fmt.Printf("Created superadmin %s\n", cfg.Superadmin.Email)
		} else {
			fmt.Println("A superadmin already exists, nothing to do")
		}
		return nil
	},
}

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password [email]",
	Short: "Set a new password for an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		password, _ := cmd.Flags().GetString("password")

		cfg, db, err := connect(ctx)
		if err != nil {
			return err
		}
		if err := accountService(cfg, db).ResetPassword(ctx, args[0], password); err != nil {
			return err
		}
		fmt.Printf("Password updated for %s\n", args[0])
		return nil
	},
}

var issueTokenCmd = &cobra.Command{
	Use:   "issue-token [email]",
	Short: "Mint a bearer token for an active account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, db, err := connect(ctx)
		if err != nil {
			return err
		}
		token, err := accountService(cfg, db).IssueToken(ctx, args[0])
		if err != nil {
			return err
		}
		if verbose {
			fmt.Printf("Token for %s (valid %s):\n", args[0], cfg.JWT.ExpiryPeriod)
		}
		fmt.Println(token)
		return nil
	},
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
