// Package sessions stores issued tokens in the cache under two keys:
// token:<token> holds the user id and user_token:<user_id> holds the token.
package sessions

import (
	"context"
	"strconv"
	"time"

	"github.com/ourchat/ourchat/internal/common"
	"github.com/ourchat/ourchat/internal/server/cache"
)

type RedisRepository struct {
	cmd cache.Commands
}

func NewRedisRepository(cmd cache.Commands) *RedisRepository {
	return &RedisRepository{cmd: cmd}
}

func TokenKey(token string) string {
	return common.TokenKeyPrefix + token
}

func UserTokenKey(userID int64) string {
	return common.UserTokenKeyPrefix + strconv.FormatInt(userID, 10)
}

// Save writes both mappings with the same ttl. The first failure is
// returned and the second write is skipped.
func (r *RedisRepository) Save(ctx context.Context, token string, userID int64, ttl time.Duration) error {
	if err := r.cmd.SetEx(ctx, TokenKey(token), strconv.FormatInt(userID, 10), ttl); err != nil {
		return err
	}
	return r.cmd.SetEx(ctx, UserTokenKey(userID), token, ttl)
}

// DeleteUserToken removes user_token:<id>. Any token:<t> entry is left to expire.
func (r *RedisRepository) DeleteUserToken(ctx context.Context, userID int64) error {
	_, err := r.cmd.Del(ctx, UserTokenKey(userID))
	return err
}
