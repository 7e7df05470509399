package database

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ourchat/ourchat/internal/server/config"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.DatabaseConfig {
	var c config.Config
	c.LoadDefaults()
	return c.Database
}

func withDial(t *testing.T, fn func(ctx context.Context, dsn string) (Conn, error)) {
	t.Helper()
	orig := dial
	dial = fn
	t.Cleanup(func() { dial = orig })
}

func TestDSN(t *testing.T) {
	cfg := testConfig()
	cfg.Host = "db.internal"
	cfg.Password = "p@ss"

	u, err := url.Parse(DSN(cfg))
	require.NoError(t, err)

	assert.Equal(t, "postgres", u.Scheme)
	assert.Equal(t, "db.internal:5432", u.Host)
	assert.Equal(t, "/ourchat", u.Path)
	pw, _ := u.User.Password()
	assert.Equal(t, "p@ss", pw)
	assert.Equal(t, "disable", u.Query().Get("sslmode"))
	assert.Equal(t, "10", u.Query().Get("connect_timeout"))
}

func TestClient_PingAndClose(t *testing.T) {
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)

	mock.ExpectPing()
	mock.ExpectPing().WillReturnError(errors.New("connection reset"))
	mock.ExpectClose()

	c := NewClient(mock)
	assert.NoError(t, c.Ping(context.Background()))
	assert.Error(t, c.Ping(context.Background()))
	assert.NoError(t, c.Close())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_DelegatesQueries(t *testing.T) {
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(context.Background())

	mock.ExpectExec("DELETE FROM im_user").WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectQuery("SELECT 1").WillReturnRows(pgxmock.NewRows([]string{"n"}).AddRow(1))

	c := NewClient(mock)
	tag, err := c.Exec(context.Background(), "DELETE FROM im_user WHERE id = $1", int64(1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), tag.RowsAffected())

	var n int
	require.NoError(t, c.QueryRow(context.Background(), "SELECT 1").Scan(&n))
	assert.Equal(t, 1, n)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConnect_RetriesTransientFailures(t *testing.T) {
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)

	calls := 0
	withDial(t, func(ctx context.Context, dsn string) (Conn, error) {
		calls++
		if calls < 3 {
			return nil, errors.New("dial tcp: connection refused")
		}
		return mock, nil
	})

	cfg := testConfig()
	cfg.ConnectTimeout = time.Second
	c, err := Connect(context.Background(), cfg)
	require.NoError(t, err)
	assert.NotNil(t, c)
	assert.Equal(t, 3, calls)
}

func TestConnect_GivesUpAfterRetries(t *testing.T) {
	calls := 0
	withDial(t, func(ctx context.Context, dsn string) (Conn, error) {
		calls++
		return nil, errors.New("dial tcp: connection refused")
	})

	cfg := testConfig()
	cfg.ConnectRetries = 1
	_, err := Connect(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, 2, calls)
}

func TestConnect_AuthFailureIsNotRetried(t *testing.T) {
	calls := 0
	withDial(t, func(ctx context.Context, dsn string) (Conn, error) {
		calls++
		return nil, &pgconn.PgError{Code: pgerrcode.InvalidPassword, Message: "password authentication failed"}
	})

	_, err := Connect(context.Background(), testConfig())
	require.Error(t, err)
	assert.Equal(t, 1, calls)

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(err, &pgErr))
}

func TestConnector_ProducesClients(t *testing.T) {
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	withDial(t, func(ctx context.Context, dsn string) (Conn, error) { return mock, nil })

	c, err := Connector(testConfig())(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestOpenSQL(t *testing.T) {
	db, err := OpenSQL(testConfig())
	require.NoError(t, err)
	assert.NoError(t, db.Close())
}
