package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

const rollbackSuffix = "_rollback.sql"

const createMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version VARCHAR(32) PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

func main() {
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	migrationsDir := flag.String("dir", "migrations", "Directory holding the .sql migrations")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(createMigrationsTable); err != nil {
		log.Fatalf("failed to create schema_migrations: %v", err)
	}

	if *rollback {
		name, err := rollbackLast(db, *migrationsDir)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Successfully rolled back migration: %s\n", name)
		return
	}

	entries, err := os.ReadDir(*migrationsDir)
	if err != nil {
		log.Fatalf("failed to read migrations directory: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	for _, file := range forwardMigrations(names) {
		applied, err := apply(db, *migrationsDir, file)
		if err != nil {
			log.Fatal(err)
		}
		if applied {
			fmt.Printf("Successfully applied migration: %s\n", file)
		} else {
			fmt.Printf("Migration already applied: %s\n", file)
		}
	}

	fmt.Println("All migrations applied successfully.")
}

// forwardMigrations returns the .sql files to apply, in order, skipping rollback scripts
func forwardMigrations(names []string) []string {
	var files []string
	for _, name := range names {
		if filepath.Ext(name) == ".sql" && !strings.HasSuffix(name, rollbackSuffix) {
			files = append(files, name)
		}
	}
	sort.Strings(files)
	return files
}

// migrationVersion extracts the version from VERSION_NAME.sql
func migrationVersion(file string) string {
	return strings.SplitN(file, "_", 2)[0]
}

// rollbackFile returns the rollback script paired with a forward migration
func rollbackFile(file string) string {
	return strings.TrimSuffix(file, ".sql") + rollbackSuffix
}

func apply(db *sql.DB, dir, file string) (bool, error) {
	version := migrationVersion(file)

	var applied bool
	if err := db.QueryRow("SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)", version).Scan(&applied); err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	if applied {
		return false, nil
	}

	content, err := os.ReadFile(filepath.Join(dir, file))
	if err != nil {
		return false, fmt.Errorf("failed to read migration %s: %w", file, err)
	}

	tx, err := db.Begin()
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	if _, err := tx.Exec(string(content)); err != nil {
		tx.Rollback()
		return false, fmt.Errorf("failed to apply migration %s: %w", file, err)
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version, name) VALUES ($1, $2)", version, file); err != nil {
		tx.Rollback()
		return false, fmt.Errorf("failed to record migration: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit migration: %w", err)
	}
	return true, nil
}

func rollbackLast(db *sql.DB, dir string) (string, error) {
	var version, name string
	err := db.QueryRow("SELECT version, name FROM schema_migrations ORDER BY applied_at DESC, version DESC LIMIT 1").
		Scan(&version, &name)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("no migrations to rollback")
	}
	if err != nil {
		return "", fmt.Errorf("failed to get last migration: %w", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, rollbackFile(name)))
	if err != nil {
		return "", fmt.Errorf("failed to read rollback file: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	if _, err := tx.Exec(string(content)); err != nil {
		tx.Rollback()
		return "", fmt.Errorf("failed to execute rollback: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM schema_migrations WHERE version = $1", version); err != nil {
		tx.Rollback()
		return "", fmt.Errorf("failed to remove migration record: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit rollback: %w", err)
	}
	return name, nil
}
