package sessions

import (
	"context"
	"time"
)

type Repository interface {
	Save(ctx context.Context, token string, userID int64, ttl time.Duration) error
	DeleteUserToken(ctx context.Context, userID int64) error
}
