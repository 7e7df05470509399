package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/ourchat/ourchat/internal/client/client"
	"github.com/ourchat/ourchat/internal/common"
)

// AuthClient is the part of client.GRPCClient the commands use.
type AuthClient interface {
	Register(ctx context.Context, username, password, email string) (int64, error)
	Login(ctx context.Context, username, password string) (int64, string, error)
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) (string, error)
	Validate(ctx context.Context, token string) (int64, error)
	SetSession(userID int64, token string)
	Close() error
}

// Indirections swapped in tests.
var (
	askLine     = promptLine
	askPassword = promptPassword
	dial        = func(addr string) (AuthClient, error) { return client.NewGRPCClient(addr) }
)

func promptIfEmpty(value string, in io.Reader, prompt string, w io.Writer) (string, error) {
	if value != "" {
		return value, nil
	}
	return askLine(in, w, prompt)
}

func register(ctx context.Context, c AuthClient, in io.Reader, w io.Writer, username, email string) error {
	username, err := promptIfEmpty(username, in, "Username", w)
	if err != nil {
		return err
	}

	password, err := askPassword(w)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	id, err := c.Register(ctx, username, string(password), email)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Registered %s with user id %d\n", username, id)
	return nil
}

func login(ctx context.Context, c AuthClient, in io.Reader, w io.Writer, username string) error {
	username, err := promptIfEmpty(username, in, "Username", w)
	if err != nil {
		return err
	}

	password, err := askPassword(w)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	id, token, err := c.Login(ctx, username, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "user_id: %d\ntoken: %s\n", id, token)
	return nil
}

func logout(ctx context.Context, c AuthClient, w io.Writer, userID int64, token string) error {
	c.SetSession(userID, token)
	if err := c.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(w, "Logged out")
	return nil
}

func refresh(ctx context.Context, c AuthClient, w io.Writer, userID int64, token string) error {
	c.SetSession(userID, token)
	newToken, err := c.Refresh(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "token: %s\n", newToken)
	return nil
}

func validate(ctx context.Context, c AuthClient, w io.Writer, token string) error {
	id, err := c.Validate(ctx, token)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "user_id: %d\n", id)
	return nil
}
