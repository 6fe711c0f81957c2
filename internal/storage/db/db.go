package db

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"sync"

	"github.com/jackc/pgx/v5"

	"tariff_tracker/internal/config"
)

// DB is a single lazily opened database connection.
// The connection is established on the first Query/Execute and reused afterwards.
// Statements from concurrent callers are serialized on it.
type DB struct {
	dsn  string
	log  *slog.Logger
	mu   sync.Mutex
	conn *pgx.Conn
}

// Option configures DB.
type Option func(*DB)

// WithLogger sets the logger used for connection events.
func WithLogger(log *slog.Logger) Option {
	return func(d *DB) {
		if log != nil {
			d.log = log
		}
	}
}

// New creates a handle for the given connection string without connecting.
func New(dsn string, opts ...Option) *DB {
	d := &DB{
		dsn: dsn,
		log: slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// BuildDSN builds a postgres URL from the pg section of the config.
func BuildDSN(pg config.PgConfig) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(pg.User, pg.Password),
		Host:   pg.Host + ":" + strconv.Itoa(pg.Port),
		Path:   "/" + pg.Db,
	}
	if pg.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {pg.SSLMode}}.Encode()
	}
	return u.String()
}

// withConn runs fn on the connection holding d.mu, opening the connection
// on first use. A pgx.Conn serves one statement at a time.
func (d *DB) withConn(ctx context.Context, fn func(*pgx.Conn) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.conn == nil {
		conn, err := pgx.Connect(ctx, d.dsn)
		if err != nil {
			return fmt.Errorf("connect: %w", err)
		}
		d.log.Debug("database connection opened")
		d.conn = conn
	}
	return fn(d.conn)
}

// bindArgs returns pgx arguments for params. Statements without params go
// through the simple protocol so they need no placeholders.
func bindArgs(params []any) []any {
	if len(params) == 0 {
		return []any{pgx.QueryExecModeSimpleProtocol}
	}
	return params
}

// Query runs sql and returns every row as a column name -> value map.
func (d *DB) Query(ctx context.Context, sql string, params ...any) ([]map[string]any, error) {
	var out []map[string]any
	err := d.withConn(ctx, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, sql, bindArgs(params)...)
		if err != nil {
			return fmt.Errorf("query: %w", err)
		}
		out, err = pgx.CollectRows(rows, pgx.RowToMap)
		if err != nil {
			return fmt.Errorf("collect rows: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Execute runs sql and returns the number of rows affected or matched
// as reported by the command tag.
func (d *DB) Execute(ctx context.Context, sql string, params ...any) (int64, error) {
	var n int64
	err := d.withConn(ctx, func(conn *pgx.Conn) error {
		tag, err := conn.Exec(ctx, sql, bindArgs(params)...)
		if err != nil {
			return fmt.Errorf("execute: %w", err)
		}
		n = tag.RowsAffected()
		return nil
	})
	return n, err
}

// Close closes the connection if it was opened.
func (d *DB) Close(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.conn == nil {
		return nil
	}
	err := d.conn.Close(ctx)
	d.conn = nil
	return err
}
