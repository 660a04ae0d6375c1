package dbconfig

import (
	"testing"

	"github.com/matryer/is"
)

func TestDSN(t *testing.T) {
	is := is.New(t)
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_USER", "soup")
	t.Setenv("DB_PASSWORD", "p@ss")
	t.Setenv("DB_NAME", "")

	cfg := NewConfigFromEnv()
	is.Equal(cfg.Database, "lettersoup")
	is.Equal(cfg.DSN(), "postgres://soup:p%40ss@db:6543/lettersoup?sslmode=disable")
	is.Equal(cfg.Redacted(), "postgres://soup@db:6543/lettersoup?sslmode=disable")
}

func TestInvalidPortFallsBack(t *testing.T) {
	is := is.New(t)
	t.Setenv("DB_PORT", "not-a-port")
	is.Equal(NewConfigFromEnv().Port, 5432)
}
