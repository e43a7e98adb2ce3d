package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/talenthive/resume-screener/internal/config"
	"github.com/talenthive/resume-screener/internal/db"
)

var (
	seedAdminEmail    string
	seedAdminName     string
	seedAdminPassword string
)

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Create the initial super admin account",
	RunE:  runSeedAdmin,
}

func init() {
	seedAdminCmd.Flags().StringVar(&seedAdminEmail, "email", "", "Super admin email (required)")
	seedAdminCmd.Flags().StringVar(&seedAdminName, "name", "Super Admin", "Display name")
	seedAdminCmd.Flags().StringVar(&seedAdminPassword, "password", "", "Password (required)")
	rootCmd.AddCommand(seedAdminCmd)
}

func runSeedAdmin(cmd *cobra.Command, _ []string) error {
	if seedAdminEmail == "" || seedAdminPassword == "" {
		return fmt.Errorf("--email and --password are required")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	passwords, err := config.NewPasswordConfig()
	if err != nil {
		return err
	}
	hash, err := passwords.HashPassword(seedAdminPassword)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	existing, err := database.GetUserByEmail(ctx, seedAdminEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("account %s already exists", seedAdminEmail)
	}

	admin, err := database.CreateSuperAdmin(ctx, seedAdminEmail, seedAdminName, hash)
	if err != nil {
		return err
	}

	log.Printf("Seeded super admin %s (%s)", admin.Email, admin.ID)
	return nil
}
