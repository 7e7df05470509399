package server

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ourchat/ourchat/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	var c config.Config
	c.LoadDefaults()
	c.Server.Address = "127.0.0.1:0"
	c.Metrics.Address = "127.0.0.1:0"
	c.Log.Level = "error"
	c.Database.Host = "127.0.0.1"
	c.Database.Port = 1
	c.Database.ConnectRetries = 0
	c.Database.ConnectTimeout = time.Second
	c.Database.AutoMigrate = false
	c.Database.PoolSize = 1
	c.Cache.Host = mr.Host()
	c.Cache.Port = port
	c.Cache.PoolSize = 2
	return &c
}

func TestNewApp_StartsWithUnreachableDatabase(t *testing.T) {
	c := testConfig(t)

	app, err := NewApp(context.Background(), c)
	require.NoError(t, err)

	assert.Equal(t, 0, app.dbPool.Size())
	assert.Equal(t, 2, app.cachePool.Size())
	assert.False(t, app.ready())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
	assert.Equal(t, 0, app.cachePool.Size(), "pools are closed on shutdown")
}

func TestNewApp_MigrationFailureIsNotFatal(t *testing.T) {
	c := testConfig(t)
	c.Database.AutoMigrate = true

	app, err := NewApp(context.Background(), c)
	require.NoError(t, err)
	t.Cleanup(func() { app.close(context.Background()) })

	assert.Equal(t, 0, app.dbPool.Size())
	assert.Equal(t, 2, app.cachePool.Size())
}

func TestNewApp_RejectsBadSettings(t *testing.T) {
	c := testConfig(t)
	c.Log.Format = "xml"
	_, err := NewApp(context.Background(), c)
	assert.Error(t, err)

	c = testConfig(t)
	c.Auth.PasswordScheme = "md5"
	_, err = NewApp(context.Background(), c)
	assert.Error(t, err)
}

func TestPoolConfig(t *testing.T) {
	pc := poolConfig("cache", config.PoolConfig{PoolSize: 4, AcquireTimeout: time.Second, SweepInterval: time.Minute, ProbeTimeout: time.Second})

	assert.Equal(t, "cache", pc.Name)
	assert.Equal(t, 4, pc.Size)
	assert.Equal(t, time.Second, pc.AcquireTimeout)
	assert.Equal(t, time.Minute, pc.SweepInterval)
}
