// cmd/motorlot/main.go
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/dangerclosesec/motorlot/internal/auth"
	"github.com/dangerclosesec/motorlot/internal/config"
	"github.com/dangerclosesec/motorlot/internal/migration"
	"github.com/dangerclosesec/motorlot/internal/model"
	"github.com/dangerclosesec/motorlot/internal/repository"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	email    string
	password string
	fullName string
	orgName  string
	orgEmail string
)

func init() {
	createSuperuserCmd.Flags().StringVar(&email, "email", "", "Email address for the account")
	createSuperuserCmd.Flags().StringVar(&password, "password", "", "Password for the account")
	createSuperuserCmd.Flags().StringVar(&fullName, "full-name", "", "Display name for the account")
	createSuperuserCmd.MarkFlagRequired("email")
	createSuperuserCmd.MarkFlagRequired("password")

	createOrgCmd.Flags().StringVar(&orgName, "name", "", "Organization name")
	createOrgCmd.Flags().StringVar(&email, "owner-email", "", "Email of the owning user")
	createOrgCmd.Flags().StringVar(&orgEmail, "email", "", "Primary contact email for the organization")
	createOrgCmd.MarkFlagRequired("name")
	createOrgCmd.MarkFlagRequired("owner-email")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(createSuperuserCmd)
	rootCmd.AddCommand(createOrgCmd)
}

var rootCmd = &cobra.Command{
	Use:   "motorlot",
	Short: "Motorlot is the operations CLI for the motorlot API",
	Long:  `Motorlot manages schema migrations and bootstrap records (superusers, organizations) for the motorlot API.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()

		db, err := sql.Open("pgx", dsn(cfg))
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := migration.Run(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}

		fmt.Println("Migrations applied")
	},
}

var createSuperuserCmd = &cobra.Command{
	Use:   "create-superuser",
	Short: "Create a superuser account",
	Run: func(cmd *cobra.Command, args []string) {
		db := openGorm()
		userRepo := repository.NewUserRepository(db)

		hashed, err := auth.NewPasswordHasher().Hash(password)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		user := &model.User{
			Email:          email,
			HashedPassword: hashed,
			FullName:       fullName,
			IsActive:       true,
			IsSuperuser:    true,
		}

		if err := userRepo.Create(context.Background(), user); err != nil {
			log.Fatalf("Failed to create superuser: %v", err)
		}

		fmt.Printf("Superuser %s created (%s)\n", user.Email, user.ID)
	},
}

var createOrgCmd = &cobra.Command{
	Use:   "create-org",
	Short: "Create an organization owned by an existing user",
	Run: func(cmd *cobra.Command, args []string) {
		db := openGorm()
		ctx := context.Background()

		userRepo := repository.NewUserRepository(db)
		orgRepo := repository.NewOrganizationRepository(db)
		contactRepo := repository.NewContactRepository(db)

		owner, err := userRepo.FindByEmail(ctx, email)
		if err != nil {
			log.Fatalf("Failed to resolve owner: %v", err)
		}

		org := &model.Organization{
			Name:    orgName,
			OwnerID: owner.ID,
		}

		if err := orgRepo.Create(ctx, org); err != nil {
			log.Fatalf("Failed to create organization: %v", err)
		}

		if orgEmail != "" {
			contact := &model.Email{
				Address:        orgEmail,
				IsPrimary:      true,
				OrganizationID: &org.ID,
			}
			if err := contactRepo.CreateEmail(ctx, contact); err != nil {
				log.Fatalf("Failed to create contact email: %v", err)
			}
		}

		fmt.Printf("Organization %q created (%s)\n", org.Name, org.ID)
	},
}

func dsn(cfg *config.Config) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)
}

func openGorm() *gorm.DB {
	cfg := config.Load()
	db, err := gorm.Open(postgres.Open(dsn(cfg)), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
