package users

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ourchat/ourchat/internal/common"
	"github.com/ourchat/ourchat/internal/dbx"
	"github.com/ourchat/ourchat/internal/server/models"
	"github.com/samber/oops"
)

type PostgresRepository struct {
	db  dbx.DBTX
	now func() time.Time
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db, now: time.Now}
}

// Create inserts user and fills in its id and timestamps. A taken username
// yields common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO im_user (username, password_hash, email, create_time, update_time)
         VALUES ($1, $2, $3, $4, $5)
		 RETURNING id
		 `

	now := r.now().Unix()

	err := r.db.QueryRow(ctx, query,
		user.UserName, user.PasswordHash, user.Email, now, now).Scan(&user.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, oops.In("users").With("username", user.UserName).Wrap(common.ErrorAlreadyExists)
		}
		return nil, oops.In("users").With("operation", "create user").Wrapf(err, "db error")
	}

	user.CreatedAt = time.Unix(now, 0)
	user.UpdatedAt = user.CreatedAt
	return user, nil
}

func (r *PostgresRepository) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	query :=
		`SELECT id, username, password_hash, email, create_time, update_time FROM im_user
		 WHERE username = $1
		 `

	user := &models.User{}
	var created, updated int64
	err := r.db.QueryRow(ctx, query, userName).Scan(&user.ID, &user.UserName, &user.PasswordHash, &user.Email, &created, &updated)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, oops.In("users").With("operation", "get user by login").Wrapf(err, "db error")
	}

	user.CreatedAt = time.Unix(created, 0)
	user.UpdatedAt = time.Unix(updated, 0)
	return user, nil
}
