// Package database opens PostgreSQL connections for the database pool.
// Each pooled Client owns exactly one connection.
package database

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/ourchat/ourchat/internal/dbx"
	"github.com/ourchat/ourchat/internal/pool"
	"github.com/ourchat/ourchat/internal/server/config"
	"github.com/samber/oops"
	"github.com/sethvargo/go-retry"
)

const closeTimeout = 5 * time.Second

// Conn is the part of *pgx.Conn a Client needs.
type Conn interface {
	dbx.DBTX
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Client is a pooled database handle.
type Client struct {
	conn Conn
}

func NewClient(conn Conn) *Client {
	return &Client{conn: conn}
}

func (c *Client) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return c.conn.Exec(ctx, sql, args...)
}

func (c *Client) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return c.conn.QueryRow(ctx, sql, args...)
}

func (c *Client) Ping(ctx context.Context) error {
	return c.conn.Ping(ctx)
}

func (c *Client) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	return c.conn.Close(ctx)
}

// DSN renders cfg as a PostgreSQL connection URL.
func DSN(cfg config.DatabaseConfig) string {
	q := url.Values{}
	if cfg.SSLMode != "" {
		q.Set("sslmode", cfg.SSLMode)
	}
	if cfg.ConnectTimeout > 0 {
		q.Set("connect_timeout", strconv.Itoa(int(cfg.ConnectTimeout/time.Second)))
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.Username, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     "/" + cfg.Database,
		RawQuery: q.Encode(),
	}
	return u.String()
}

// dial is a seam for testing pgx.Connect.
var dial = func(ctx context.Context, dsn string) (Conn, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Connect opens one connection, retrying transient failures with
// exponential backoff. Authentication and unknown-database errors are
// returned immediately.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*Client, error) {
	dsn := DSN(cfg)
	backoff := retry.WithMaxRetries(uint64(max(cfg.ConnectRetries, 0)), retry.NewExponential(100*time.Millisecond))

	var conn Conn
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attemptCtx := ctx
		if cfg.ConnectTimeout > 0 {
			var cancel context.CancelFunc
			attemptCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
			defer cancel()
		}

		c, err := dial(attemptCtx, dsn)
		if err != nil {
			if isPermanent(err) {
				return err
			}
			return retry.RetryableError(err)
		}
		conn = c
		return nil
	})
	if err != nil {
		return nil, oops.In("database").
			With("host", cfg.Host, "port", cfg.Port, "database", cfg.Database).
			Wrapf(err, "connect")
	}
	return NewClient(conn), nil
}

// Connector adapts Connect for pool.New.
func Connector(cfg config.DatabaseConfig) pool.Connector[*Client] {
	return func(ctx context.Context) (*Client, error) {
		return Connect(ctx, cfg)
	}
}

// OpenSQL returns a database/sql handle for tools that need one, such as
// schema migrations.
func OpenSQL(cfg config.DatabaseConfig) (*sql.DB, error) {
	connConfig, err := pgx.ParseConfig(DSN(cfg))
	if err != nil {
		return nil, oops.In("database").Wrapf(err, "parse dsn")
	}
	return stdlib.OpenDB(*connConfig), nil
}

func isPermanent(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgerrcode.IsInvalidAuthorizationSpecification(pgErr.Code) ||
		pgErr.Code == pgerrcode.InvalidCatalogName
}
