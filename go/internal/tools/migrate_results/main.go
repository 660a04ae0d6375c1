package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mcdev12/lettersoup/go/internal/dbconfig"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS match_results (
        match_id    TEXT PRIMARY KEY,
        draw        BOOLEAN NOT NULL DEFAULT FALSE,
        winner      TEXT,
        ranking     JSONB,
        recorded_at TIMESTAMPTZ
    )`,
	`CREATE INDEX IF NOT EXISTS match_results_recorded_at_idx ON match_results (recorded_at DESC)`,
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to ping %s: %v\n", cfg.Redacted(), err)
		os.Exit(1)
	}

	for i, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			fmt.Fprintf(os.Stderr, "statement %d failed: %v\n", i+1, err)
			os.Exit(1)
		}
	}

	var rows int64
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM match_results`).Scan(&rows); err != nil {
		fmt.Fprintf(os.Stderr, "count match_results: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("match_results ready on %s: statements=%d rows=%d\n", cfg.Redacted(), len(statements), rows)
}
