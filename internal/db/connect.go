package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

func init() {
	// modernc registers as "sqlite", which sqlx does not know by default
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// ParseDriver maps common aliases onto a Driver.
func ParseDriver(s string) (Driver, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sqlite", "sqlite3":
		return DriverSQLite, nil
	case "postgres", "pg", "pgx", "pgsql":
		return DriverPostgres, nil
	}
	return "", fmt.Errorf("unsupported driver: %s", s)
}

// Open opens a DB and ensures the curve schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*sqlx.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:reductionlab.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/reductionlab?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sqlx.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		// single writer
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := ensureSchema(ctx, db.DB, driver); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB, driver Driver) error {
	var schema string
	switch driver {
	case DriverSQLite:
		schema = schemaSQLite
	case DriverPostgres:
		schema = schemaPostgres
	}
	_, err := db.ExecContext(ctx, schema)
	return err
}

const schemaSQLite = `
PRAGMA foreign_keys=ON;

CREATE TABLE IF NOT EXISTS curves (
  id TEXT PRIMARY KEY,
  steps_per_unit INTEGER NOT NULL,
  x_max INTEGER NOT NULL,
  points INTEGER NOT NULL,
  created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS curve_samples (
  curve_id TEXT NOT NULL REFERENCES curves(id) ON DELETE CASCADE,
  idx INTEGER NOT NULL,
  efficiency REAL NOT NULL,
  reduction REAL NOT NULL,
  PRIMARY KEY (curve_id, idx)
);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS curves (
  id TEXT PRIMARY KEY,
  steps_per_unit INTEGER NOT NULL,
  x_max INTEGER NOT NULL,
  points INTEGER NOT NULL,
  created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS curve_samples (
  curve_id TEXT NOT NULL REFERENCES curves(id) ON DELETE CASCADE,
  idx INTEGER NOT NULL,
  efficiency DOUBLE PRECISION NOT NULL,
  reduction DOUBLE PRECISION NOT NULL,
  PRIMARY KEY (curve_id, idx)
);
`
