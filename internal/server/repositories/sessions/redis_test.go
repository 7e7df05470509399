package sessions

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ourchat/ourchat/internal/server/cache"
	"github.com/ourchat/ourchat/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (*RedisRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	c, err := cache.Connect(context.Background(), config.CacheConfig{Host: mr.Host(), Port: port})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return NewRedisRepository(c), mr
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "token:abc", TokenKey("abc"))
	assert.Equal(t, "user_token:42", UserTokenKey(42))
}

func TestSave_WritesBothMappings(t *testing.T) {
	repo, mr := newRepo(t)

	require.NoError(t, repo.Save(context.Background(), "tok", 1, 24*time.Hour))

	v, err := mr.Get("token:tok")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
	v, err = mr.Get("user_token:1")
	require.NoError(t, err)
	assert.Equal(t, "tok", v)

	assert.Equal(t, 24*time.Hour, mr.TTL("token:tok"))
	assert.Equal(t, 24*time.Hour, mr.TTL("user_token:1"))
}

func TestSave_OverwritesUserToken(t *testing.T) {
	repo, mr := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "old", 1, time.Hour))
	require.NoError(t, repo.Save(ctx, "new", 1, time.Hour))

	v, _ := mr.Get("user_token:1")
	assert.Equal(t, "new", v)
	assert.True(t, mr.Exists("token:old"))
	assert.True(t, mr.Exists("token:new"))
}

func TestDeleteUserToken(t *testing.T) {
	repo, mr := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "tok", 1, time.Hour))
	require.NoError(t, repo.DeleteUserToken(ctx, 1))

	assert.False(t, mr.Exists("user_token:1"))
	assert.True(t, mr.Exists("token:tok"))

	require.NoError(t, repo.DeleteUserToken(ctx, 99))
}

type failingCommands struct {
	setCalls int
	err      error
}

func (f *failingCommands) SetEx(context.Context, string, string, time.Duration) error {
	f.setCalls++
	return f.err
}

func (f *failingCommands) Get(context.Context, string) (string, error) { return "", f.err }

func (f *failingCommands) Del(context.Context, ...string) (int64, error) { return 0, f.err }

func TestSave_StopsAtFirstFailure(t *testing.T) {
	boom := errors.New("boom")
	f := &failingCommands{err: boom}
	repo := NewRedisRepository(f)

	err := repo.Save(context.Background(), "tok", 1, time.Hour)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, f.setCalls)

	assert.ErrorIs(t, repo.DeleteUserToken(context.Background(), 1), boom)
}
