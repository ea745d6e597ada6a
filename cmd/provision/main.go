// Command provision applies the schema SQL files statement by statement,
// reporting success or failure for each one. Unlike cmd/migrate it does not
// track versions: "already exists" errors are reported and skipped, so the
// command is safe to rerun against a partially provisioned database.
// Usage: go run ./cmd/provision
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"voyago/internal/config"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := sqlx.Connect("pgx", cfg.DB.DSN())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	files, err := filepath.Glob("db/migrations/*.up.sql")
	if err != nil {
		return fmt.Errorf("glob migration files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no migration files found in db/migrations")
	}
	sort.Strings(files)

	ctx := context.Background()
	var applied, skipped, failed int

	for _, path := range files {
		data, rerr := os.ReadFile(path)
		if rerr != nil {
			return fmt.Errorf("read %s: %w", path, rerr)
		}

		for _, stmt := range splitStatements(string(data)) {
			label := statementLabel(stmt)
			_, xerr := db.ExecContext(ctx, stmt)
			switch {
			case xerr == nil:
				applied++
				log.Printf("OK    %s: %s", filepath.Base(path), label)
			case isAlreadyExists(xerr):
				skipped++
				log.Printf("SKIP  %s: %s (already exists)", filepath.Base(path), label)
			default:
				failed++
				log.Printf("FAIL  %s: %s: %v", filepath.Base(path), label, xerr)
			}
		}
	}

	log.Printf("provision complete: %d applied, %d skipped, %d failed", applied, skipped, failed)
	if failed > 0 {
		return fmt.Errorf("%d statements failed", failed)
	}
	return nil
}

// splitStatements breaks a SQL file into individual statements. The schema
// files keep semicolons strictly as statement terminators; comment-only
// fragments are dropped.
func splitStatements(s string) []string {
	var stmts []string
	for _, part := range strings.Split(s, ";") {
		var lines []string
		for _, line := range strings.Split(part, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "--") {
				continue
			}
			lines = append(lines, line)
		}
		if len(lines) == 0 {
			continue
		}
		stmts = append(stmts, strings.TrimSpace(strings.Join(lines, "\n")))
	}
	return stmts
}

// statementLabel returns a short description of a statement for logging,
// e.g. "CREATE TABLE countries" or "CREATE POLICY tour_bookings_owner".
func statementLabel(stmt string) string {
	fields := strings.Fields(stmt)
	n := len(fields)
	if n > 6 {
		n = 6
	}
	label := strings.Join(fields[:n], " ")
	label = strings.TrimSuffix(label, "(")
	if idx := strings.IndexAny(label, "(\n"); idx > 0 {
		label = label[:idx]
	}
	return strings.TrimSpace(label)
}

func isAlreadyExists(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "already exists") || strings.Contains(msg, "duplicate")
}
