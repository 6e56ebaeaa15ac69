package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"
)

var (
	dbConnString string
	verbose      bool
)

// Statements run in order inside a single transaction. Everything is
// written to be re-runnable against an already-initialized database.
var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS citext`,

	`DO $$ BEGIN
		CREATE TYPE org_status AS ENUM ('PENDING', 'ACTIVE', 'SUSPENDED');
	EXCEPTION WHEN duplicate_object THEN NULL; END $$`,

	`DO $$ BEGIN
		CREATE TYPE account_status AS ENUM ('PENDING', 'ACTIVE', 'SUSPENDED');
	EXCEPTION WHEN duplicate_object THEN NULL; END $$`,

	`CREATE TABLE IF NOT EXISTS organizations (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		name citext NOT NULL UNIQUE,
		email citext NOT NULL UNIQUE,
		phone text,
		address text,
		city text,
		state text,
		country text,
		zip_code text,
		status org_status NOT NULL DEFAULT 'PENDING',
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS org_admins (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		email citext NOT NULL UNIQUE,
		fullname text NOT NULL,
		phone text,
		password text NOT NULL,
		role text NOT NULL DEFAULT 'organizationAdmin',
		status account_status NOT NULL DEFAULT 'PENDING',
		primary_admin boolean NOT NULL DEFAULT false,
		organization_id uuid NOT NULL REFERENCES organizations(id),
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS practitioners (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		email citext NOT NULL UNIQUE,
		fullname text NOT NULL,
		phone text,
		password text NOT NULL,
		role text NOT NULL,
		status account_status NOT NULL DEFAULT 'PENDING',
		practice_number citext NOT NULL UNIQUE,
		affiliation text,
		address text,
		city text,
		state text,
		country text,
		zip_code text,
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS org_practitioners (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		email citext NOT NULL UNIQUE,
		fullname text NOT NULL,
		phone text,
		password text NOT NULL,
		role text NOT NULL,
		status account_status NOT NULL DEFAULT 'PENDING',
		organization_id uuid NOT NULL REFERENCES organizations(id),
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS patients (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		mrn text NOT NULL UNIQUE,
		fullname text NOT NULL,
		email citext,
		practitioner_id uuid REFERENCES practitioners(id),
		org_practitioner_id uuid REFERENCES org_practitioners(id),
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_org_admins_organization_id ON org_admins(organization_id)`,
	`CREATE INDEX IF NOT EXISTS idx_org_practitioners_organization_id ON org_practitioners(organization_id)`,
	`CREATE INDEX IF NOT EXISTS idx_patients_practitioner_id ON patients(practitioner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_patients_org_practitioner_id ON patients(org_practitioner_id)`,
}

var accountTables = []string{"organizations", "org_admins", "practitioners", "org_practitioners", "patients"}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", "", "Database connection string")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(statusCmd)
}

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "migrate manages the identity database schema",
	Long:  `migrate initializes and inspects the account-collection schema used by the identity service.`,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the database schema",
	Long:  `Create the extensions, enum types, and account tables. Safe to run repeatedly.`,
	Run: func(cmd *cobra.Command, args []string) {
		db := openDatabase()
		defer db.Close()

		tx, err := db.Begin()
		if err != nil {
			log.Fatalf("Failed to begin transaction: %v", err)
		}

		for _, stmt := range schemaStatements {
			if _, err := tx.Exec(stmt); err != nil {
				tx.Rollback()
				log.Fatalf("Failed to apply statement: %v\n%s", err, stmt)
			}
		}

		if err := tx.Commit(); err != nil {
			log.Fatalf("Failed to commit schema: %v", err)
		}

		fmt.Println("Schema initialized successfully")
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which account tables exist and their row counts",
	Run: func(cmd *cobra.Command, args []string) {
		db := openDatabase()
		defer db.Close()

		for _, table := range accountTables {
			var exists bool
			err := db.QueryRow(
				`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)`,
				table,
			).Scan(&exists)
			if err != nil {
				log.Fatalf("Failed to check table %s: %v", table, err)
			}

			if !exists {
				fmt.Printf("%-20s missing\n", table)
				continue
			}

			var count int64
			if err := db.QueryRow(fmt.Sprintf(`SELECT count(*) FROM %s`, table)).Scan(&count); err != nil {
				log.Fatalf("Failed to count rows in %s: %v", table, err)
			}
			fmt.Printf("%-20s %d rows\n", table, count)
		}
	},
}

func openDatabase() *sql.DB {
	if dbConnString == "" {
		dbConnString = os.Getenv("DATABASE_URL")
	}
	if dbConnString == "" {
		log.Fatal("Database connection string is required")
	}

	db, err := sql.Open("pgx", dbConnString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	return db
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
