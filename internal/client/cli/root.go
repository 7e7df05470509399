package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"
)

const (
	defaultAddr    = "localhost:50051"
	defaultTimeout = 10 * time.Second
)

type rootOptions struct {
	addr    string
	timeout time.Duration
}

// NewRootCmd builds the ourchat-cli command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "ourchat-cli",
		Short:         "Command-line client for the OurChat user service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.addr, "addr", defaultAddr, "server address")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", defaultTimeout, "per-call timeout")

	cmd.AddCommand(
		newRegisterCmd(opts),
		newLoginCmd(opts),
		newLogoutCmd(opts),
		newRefreshCmd(opts),
		newValidateCmd(opts),
	)
	return cmd
}

// withClient dials the server, runs fn under the call timeout and closes
// the connection.
func (o *rootOptions) withClient(cmd *cobra.Command, fn func(ctx context.Context, c AuthClient) error) error {
	c, err := dial(o.addr)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	return errors.Join(fn(ctx, c), c.Close())
}

func newRegisterCmd(opts *rootOptions) *cobra.Command {
	var username, email string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withClient(cmd, func(ctx context.Context, c AuthClient) error {
				return register(ctx, c, cmd.InOrStdin(), cmd.OutOrStdout(), username, email)
			})
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "account name (prompted when empty)")
	cmd.Flags().StringVar(&email, "email", "", "contact email")
	return cmd
}

func newLoginCmd(opts *rootOptions) *cobra.Command {
	var username string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withClient(cmd, func(ctx context.Context, c AuthClient) error {
				return login(ctx, c, cmd.InOrStdin(), cmd.OutOrStdout(), username)
			})
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "account name (prompted when empty)")
	return cmd
}

func sessionFlags(cmd *cobra.Command, userID *int64, token *string) {
	cmd.Flags().Int64Var(userID, "user-id", 0, "user id printed by login")
	cmd.Flags().StringVarP(token, "token", "t", "", "session token printed by login")
	_ = cmd.MarkFlagRequired("token")
}

func newLogoutCmd(opts *rootOptions) *cobra.Command {
	var (
		userID int64
		token  string
	)
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "End a session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withClient(cmd, func(ctx context.Context, c AuthClient) error {
				return logout(ctx, c, cmd.OutOrStdout(), userID, token)
			})
		},
	}
	sessionFlags(cmd, &userID, &token)
	return cmd
}

func newRefreshCmd(opts *rootOptions) *cobra.Command {
	var (
		userID int64
		token  string
	)
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Exchange a token for a new one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withClient(cmd, func(ctx context.Context, c AuthClient) error {
				return refresh(ctx, c, cmd.OutOrStdout(), userID, token)
			})
		},
	}
	sessionFlags(cmd, &userID, &token)
	return cmd
}

func newValidateCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <token>",
		Short: "Print the user a token belongs to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, c AuthClient) error {
				return validate(ctx, c, cmd.OutOrStdout(), args[0])
			})
		},
	}
	return cmd
}
