package models

// Session is the result of a successful login.
type Session struct {
	UserID int64
	Token  string
}
