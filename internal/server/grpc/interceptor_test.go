package grpc

import (
	"context"
	"testing"

	"github.com/ourchat/ourchat/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// helper to build server
func newTestServer(token string, userID int64) *GRPCServer {
	return NewGRPCServer(testServerConfig(), nopLogger{}, &fakeAuth{}, fakeVerifier{token: token, userID: userID})
}

func TestInterceptor_UserService_AllowsWithoutToken(t *testing.T) {
	s := newTestServer("good", 1)

	info := &grpc.UnaryServerInfo{FullMethod: "/im.UserService/Login"}
	handlerCalled := false

	h := func(ctx context.Context, req any) (any, error) {
		handlerCalled = true
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !handlerCalled {
		t.Fatal("handler was not called")
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
}

func TestInterceptor_Guarded_MissingToken(t *testing.T) {
	s := newTestServer("good", 1)

	info := &grpc.UnaryServerInfo{FullMethod: "/im.MessageService/SendMessage"}

	h := func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
}

func TestInterceptor_Guarded_InvalidToken(t *testing.T) {
	s := newTestServer("good", 1)

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.AccessTokenHeaderName, "forged"))
	info := &grpc.UnaryServerInfo{FullMethod: "/im.GroupService/CreateGroup"}

	h := func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler should not be called with invalid token")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(ctx, nil, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
}

func TestInterceptor_Guarded_ValidToken_SetsUserID(t *testing.T) {
	s := newTestServer("good", 42)

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.AccessTokenHeaderName, "good"))
	info := &grpc.UnaryServerInfo{FullMethod: "/im.SessionService/GetFriends"}

	var got int64
	h := func(ctx context.Context, req any) (any, error) {
		id, ok := UserIDFromContext(ctx)
		if !ok {
			t.Fatal("user id missing from context")
		}
		got = id
		return "ok", nil
	}

	if _, err := s.accessTokenInterceptor(ctx, nil, info, h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Fatalf("got user %d, want 42", got)
	}
}

func TestRecoveryInterceptor_TurnsPanicIntoInternal(t *testing.T) {
	s := newTestServer("good", 1)
	info := &grpc.UnaryServerInfo{FullMethod: "/im.GroupService/CreateGroup"}

	resp, err := s.recoveryInterceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
		panic("nil map")
	})
	if resp != nil {
		t.Fatalf("expected nil response, got %v", resp)
	}
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", err)
	}
}

func TestLoggingInterceptor_PassesThrough(t *testing.T) {
	s := newTestServer("good", 1)
	info := &grpc.UnaryServerInfo{FullMethod: "/im.UserService/Login"}
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(requestIDHeader, "req-1"))

	resp, err := s.loggingInterceptor(ctx, nil, info, func(context.Context, any) (any, error) {
		return "ok", status.Error(codes.NotFound, "x")
	})
	if resp != "ok" || status.Code(err) != codes.NotFound {
		t.Fatalf("unexpected result: %v, %v", resp, err)
	}
}
