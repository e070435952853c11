// cmd/pelycan/main.go
package main

import (
	"database/sql"
	"fmt"
	"log"
	"sort"

	pelycan "github.com/pelycan/api"
	"github.com/pelycan/api/internal/config"
	"github.com/pelycan/api/internal/server"
	"github.com/spf13/cobra"

	_ "github.com/lib/pq"
)

var dbConnString string

func init() {
	migrateCmd.Flags().StringVarP(&dbConnString, "db", "d", "", "Database connection string (defaults to env configuration)")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(serveCmd)
}

var rootCmd = &cobra.Command{
	Use:   "pelycan",
	Short: "Pelycan coordination service",
	Long:  `Management CLI for the Pelycan backend: schema migrations and the API server.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the API server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := server.Run(); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	Long:  `Apply the embedded SQL migrations that have not been applied yet, in order.`,
	Run: func(cmd *cobra.Command, args []string) {
		dsn := dbConnString
		if dsn == "" {
			dsn = config.Load().DSN()
		}

		db, err := sql.Open("postgres", dsn)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			log.Fatalf("Failed to ping database: %v", err)
		}

		applied, err := runMigrations(db)
		if err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		if applied == 0 {
			fmt.Println("No pending migrations.")
			return
		}
		fmt.Printf("Applied %d migration(s).\n", applied)
	},
}

func runMigrations(db *sql.DB) (int, error) {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS schema_migrations (
		filename TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`)
	if err != nil {
		return 0, fmt.Errorf("creating migration table: %w", err)
	}

	entries, err := pelycan.MigrationFS.ReadDir("migrations")
	if err != nil {
		return 0, fmt.Errorf("reading embedded migrations: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	applied := 0
	for _, name := range names {
		var exists bool
		err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE filename = $1)`, name).Scan(&exists)
		if err != nil {
			return applied, fmt.Errorf("checking migration %s: %w", name, err)
		}
		if exists {
			continue
		}

		content, err := pelycan.MigrationFS.ReadFile("migrations/" + name)
		if err != nil {
			return applied, fmt.Errorf("reading migration %s: %w", name, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return applied, fmt.Errorf("starting transaction for %s: %w", name, err)
		}
		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback()
			return applied, fmt.Errorf("applying %s: %w", name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations (filename) VALUES ($1)`, name); err != nil {
			tx.Rollback()
			return applied, fmt.Errorf("recording %s: %w", name, err)
		}
		if err := tx.Commit(); err != nil {
			return applied, fmt.Errorf("committing %s: %w", name, err)
		}

		fmt.Printf("Applied %s\n", name)
		applied++
	}

	return applied, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
