package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/ourchat/ourchat/internal/client/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	addr string

	regUser, regPass, regEmail string
	loginUser, loginPass       string
	sessionID                  int64
	sessionToken               string
	validated                  string

	err    error
	closed bool
}

func (f *fakeClient) Register(_ context.Context, username, password, email string) (int64, error) {
	f.regUser, f.regPass, f.regEmail = username, password, email
	return 7, f.err
}

func (f *fakeClient) Login(_ context.Context, username, password string) (int64, string, error) {
	f.loginUser, f.loginPass = username, password
	return 7, "tok-7", f.err
}

func (f *fakeClient) Logout(context.Context) error { return f.err }

func (f *fakeClient) Refresh(context.Context) (string, error) { return "tok-8", f.err }

func (f *fakeClient) Validate(_ context.Context, token string) (int64, error) {
	f.validated = token
	return 7, f.err
}

func (f *fakeClient) SetSession(userID int64, token string) {
	f.sessionID, f.sessionToken = userID, token
}

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

func stubClient(t *testing.T, f *fakeClient) {
	t.Helper()
	orig := dial
	dial = func(addr string) (AuthClient, error) {
		f.addr = addr
		return f, nil
	}
	t.Cleanup(func() { dial = orig })
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := askPassword
	askPassword = func(io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { askPassword = orig })
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRegister_PromptsForMissingUsername(t *testing.T) {
	f := &fakeClient{}
	stubClient(t, f)
	stubPassword(t, "secret1")

	out, err := run(t, "alice\n", "register", "--email", "a@x", "--addr", "chat:1")
	require.NoError(t, err)

	assert.Equal(t, "chat:1", f.addr)
	assert.Equal(t, "alice", f.regUser)
	assert.Equal(t, "secret1", f.regPass)
	assert.Equal(t, "a@x", f.regEmail)
	assert.Contains(t, out, "Registered alice with user id 7")
	assert.True(t, f.closed)
}

func TestLogin_PrintsSession(t *testing.T) {
	f := &fakeClient{}
	stubClient(t, f)
	stubPassword(t, "secret1")

	out, err := run(t, "", "login", "-u", "alice")
	require.NoError(t, err)

	assert.Equal(t, "alice", f.loginUser)
	assert.Equal(t, "secret1", f.loginPass)
	assert.Contains(t, out, "user_id: 7\ntoken: tok-7\n")
	assert.Equal(t, defaultAddr, f.addr)
}

func TestLogin_ErrorIsReturned(t *testing.T) {
	f := &fakeClient{err: client.ErrRejected}
	stubClient(t, f)
	stubPassword(t, "bad")

	_, err := run(t, "", "login", "-u", "alice")
	assert.ErrorIs(t, err, client.ErrRejected)
	assert.True(t, f.closed)
}

func TestLogoutAndRefresh_UseSessionFlags(t *testing.T) {
	f := &fakeClient{}
	stubClient(t, f)

	out, err := run(t, "", "logout", "--user-id", "7", "--token", "tok-7")
	require.NoError(t, err)
	assert.Equal(t, int64(7), f.sessionID)
	assert.Equal(t, "tok-7", f.sessionToken)
	assert.Contains(t, out, "Logged out")

	out, err = run(t, "", "refresh", "--user-id", "7", "-t", "tok-7")
	require.NoError(t, err)
	assert.Contains(t, out, "token: tok-8")
}

func TestLogout_RequiresToken(t *testing.T) {
	stubClient(t, &fakeClient{})

	_, err := run(t, "", "logout", "--user-id", "7")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	f := &fakeClient{}
	stubClient(t, f)

	out, err := run(t, "", "validate", "tok-7")
	require.NoError(t, err)
	assert.Equal(t, "tok-7", f.validated)
	assert.Contains(t, out, "user_id: 7")

	_, err = run(t, "", "validate")
	assert.Error(t, err)
}

func TestDialError(t *testing.T) {
	orig := dial
	dial = func(string) (AuthClient, error) { return nil, errors.New("bad target") }
	t.Cleanup(func() { dial = orig })

	_, err := run(t, "", "validate", "tok")
	assert.EqualError(t, err, "bad target")
}

func TestPromptIfEmpty(t *testing.T) {
	orig := askLine
	t.Cleanup(func() { askLine = orig })
	askLine = func(io.Reader, io.Writer, string) (string, error) {
		return "", io.ErrUnexpectedEOF
	}

	got, err := promptIfEmpty("bob", strings.NewReader(""), "Username", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "bob", got)

	_, err = promptIfEmpty("", strings.NewReader(""), "Username", io.Discard)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
