package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/ourchat/ourchat/internal/common"
	pb "github.com/ourchat/ourchat/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	users       *pb.UserServiceClient

	mu     sync.RWMutex
	userID int64
	token  string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if _, token := s.Session(); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient creates a client for endpointURL. The connection is
// established lazily on the first call. Extra options are appended after
// the defaults.
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(pb.Codec{})),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.users = pb.NewUserServiceClient(conn)
	return c, nil
}

// Session returns the user id and token remembered from the last Login or
// Refresh.
func (s *GRPCClient) Session() (int64, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID, s.token
}

// SetSession restores a session obtained earlier, e.g. from a CLI flag.
func (s *GRPCClient) SetSession(userID int64, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID, s.token = userID, token
}

func (s *GRPCClient) Register(ctx context.Context, username, password, email string) (int64, error) {
	resp, err := s.users.Register(ctx, &pb.RegisterRequest{Username: username, Password: password, Email: email})
	if err != nil {
		return 0, s.mapError(err)
	}
	if !resp.GetSuccess() {
		return 0, rejected(resp.GetMessage())
	}
	return resp.GetUserId(), nil
}

// Login authenticates and remembers the returned session.
func (s *GRPCClient) Login(ctx context.Context, username, password string) (int64, string, error) {
	resp, err := s.users.Login(ctx, &pb.LoginRequest{Username: username, Password: password})
	if err != nil {
		return 0, "", s.mapError(err)
	}
	if !resp.GetSuccess() {
		return 0, "", rejected(resp.GetMessage())
	}

	s.SetSession(resp.GetUserId(), resp.GetToken())
	return resp.GetUserId(), resp.GetToken(), nil
}

// Logout ends the current session and forgets it locally even when the
// call fails.
func (s *GRPCClient) Logout(ctx context.Context) error {
	userID, token := s.Session()
	if token == "" {
		return ErrNoSession
	}
	defer s.SetSession(0, "")

	resp, err := s.users.Logout(ctx, &pb.LogoutRequest{UserId: userID, Token: token})
	if err != nil {
		return s.mapError(err)
	}
	if !resp.GetSuccess() {
		return rejected(resp.GetMessage())
	}
	return nil
}

// Refresh exchanges the current token for a new one.
func (s *GRPCClient) Refresh(ctx context.Context) (string, error) {
	userID, token := s.Session()
	if token == "" {
		return "", ErrNoSession
	}

	resp, err := s.users.RefreshToken(ctx, &pb.RefreshTokenRequest{UserId: userID, Token: token})
	if err != nil {
		return "", s.mapError(err)
	}
	if !resp.GetSuccess() {
		return "", fmt.Errorf("%w: %s", ErrUnauthorized, resp.GetMessage())
	}

	s.SetSession(userID, resp.GetToken())
	return resp.GetToken(), nil
}

// Validate asks the server which user token belongs to.
func (s *GRPCClient) Validate(ctx context.Context, token string) (int64, error) {
	resp, err := s.users.ValidateToken(ctx, &pb.ValidateTokenRequest{Token: token})
	if err != nil {
		return 0, s.mapError(err)
	}
	if !resp.GetSuccess() {
		return 0, ErrUnauthorized
	}
	return resp.GetUserId(), nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func rejected(msg string) error {
	return fmt.Errorf("%w: %s", ErrRejected, msg)
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
