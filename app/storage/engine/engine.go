// Package engine provides a thin wrapper around sqlx with support for sqlite
// and postgres backends. It keeps the database type next to the connection so
// stores can pick dialect-specific queries and locking strategies.
package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"    // postgres driver loaded here
	_ "modernc.org/sqlite"   // sqlite driver loaded here
)

// Type is a type of database engine
type Type string

// enum of supported database engines
const (
	Unknown  Type = ""
	Sqlite   Type = "sqlite"
	Postgres Type = "postgres"
)

// SQL is a wrapper for sqlx.DB with type.
// Type allows distinguishing between different database engines.
type SQL struct {
	sqlx.DB
	gid    string // group id, to allow per-instance storage in the same database
	dbType Type   // type of the database engine
}

// NewSqlite creates a new sqlite database
func NewSqlite(file, gid string) (*SQL, error) {
	db, err := sqlx.Connect("sqlite", file)
	if err != nil {
		return &SQL{}, err
	}
	return &SQL{DB: *db, gid: gid, dbType: Sqlite}, nil
}

// NewPostgres creates a new postgres database connection
func NewPostgres(ctx context.Context, connURL, gid string) (*SQL, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", connURL)
	if err != nil {
		return &SQL{}, err
	}
	return &SQL{DB: *db, gid: gid, dbType: Postgres}, nil
}

// GID returns the group id
func (e *SQL) GID() string {
	return e.gid
}

// Type returns the database engine type
func (e *SQL) Type() Type {
	return e.dbType
}

// MakeLock creates a new lock for the database engine
func (e *SQL) MakeLock() RWLocker {
	if e.dbType == Sqlite {
		return new(sync.RWMutex) // sqlite needs locking
	}
	return &NoopLocker{} // other engines don't need locking
}

// Adopt translates a query written with sqlite-style ? placeholders to the
// placeholder style of the current engine.
func (e *SQL) Adopt(query string) string {
	if e.dbType != Postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// TableConfig describes a table managed through InitTable
type TableConfig struct {
	Name          string
	CreateTable   DBCmd
	CreateIndexes DBCmd
	QueriesMap    *QueryMap
	MigrateFunc   func(ctx context.Context, tx *sqlx.Tx, gid string) error
}

// InitTable creates the table and indexes if they don't exist yet and runs the
// migration function for pre-existing tables, all in a single transaction.
func InitTable(ctx context.Context, db *SQL, cfg TableConfig) error {
	if db == nil {
		return fmt.Errorf("db connection is nil")
	}

	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	exists, err := tableExists(ctx, tx, db, cfg.Name)
	if err != nil {
		return fmt.Errorf("failed to check for %s table existence: %w", cfg.Name, err)
	}

	if !exists {
		createSchema, err := cfg.QueriesMap.Pick(db.Type(), cfg.CreateTable)
		if err != nil {
			return fmt.Errorf("failed to get create table query: %w", err)
		}
		if _, err = tx.ExecContext(ctx, createSchema); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	if exists && cfg.MigrateFunc != nil {
		if err = cfg.MigrateFunc(ctx, tx, db.GID()); err != nil {
			return fmt.Errorf("failed to migrate %s: %w", cfg.Name, err)
		}
	}

	createIndexes, err := cfg.QueriesMap.Pick(db.Type(), cfg.CreateIndexes)
	if err != nil {
		return fmt.Errorf("failed to get create indexes query: %w", err)
	}
	if _, err = tx.ExecContext(ctx, createIndexes); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func tableExists(ctx context.Context, tx *sqlx.Tx, db *SQL, name string) (bool, error) {
	var count int
	switch db.Type() {
	case Sqlite:
		err := tx.GetContext(ctx, &count, "SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", name)
		return count > 0, err
	case Postgres:
		err := tx.GetContext(ctx, &count,
			"SELECT COUNT(*) FROM information_schema.tables WHERE table_schema='public' AND table_name=$1", name)
		return count > 0, err
	default:
		return false, fmt.Errorf("unsupported database type %q", db.Type())
	}
}
