package models

import "time"

// User is a row of the im_user table. Timestamps are stored as Unix seconds.
type User struct {
	ID           int64
	UserName     string
	PasswordHash string
	Email        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
