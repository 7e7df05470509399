package grpc

import (
	"context"
	"errors"

	"github.com/ourchat/ourchat/internal/common"
	"github.com/ourchat/ourchat/internal/logging"
	pb "github.com/ourchat/ourchat/internal/proto"
)

const (
	msgDatabaseFailed     = "Database connection failed"
	msgRegistrationFailed = "Username already exists or database error"
	msgInvalidCredentials = "Invalid credentials"
	msgInvalidToken       = "Invalid token"
	msgInternal           = "Internal error"
)

// userHandler serves im.UserService. Outcomes travel in the success and
// message fields; the RPC status is always OK.
type userHandler struct {
	auth   AuthService
	logger logging.Logger
}

func (h *userHandler) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	h.logger.Info(ctx, "Registration request", "username", req.Username)

	id, err := h.auth.Register(ctx, req.Username, req.Password, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrorUnavailable) {
			return &pb.RegisterResponse{Message: msgDatabaseFailed}, nil
		}
		return &pb.RegisterResponse{Message: msgRegistrationFailed}, nil
	}

	h.logger.Info(ctx, "Registered", "username", req.Username, "user_id", id)
	return &pb.RegisterResponse{Success: true, UserId: id}, nil
}

func (h *userHandler) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	h.logger.Info(ctx, "Login request", "username", req.Username)

	sess, err := h.auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthorized):
			return &pb.LoginResponse{Message: msgInvalidCredentials}, nil
		case errors.Is(err, common.ErrorUnavailable):
			return &pb.LoginResponse{Message: msgDatabaseFailed}, nil
		default:
			return &pb.LoginResponse{Message: msgInternal}, nil
		}
	}

	h.logger.Info(ctx, "Logged in", "username", req.Username, "user_id", sess.UserID)
	return &pb.LoginResponse{Success: true, UserId: sess.UserID, Token: sess.Token}, nil
}

func (h *userHandler) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	h.logger.Info(ctx, "Logout request", "user_id", req.UserId)
	_ = h.auth.Logout(ctx, req.UserId)
	return &pb.LogoutResponse{Success: true}, nil
}

func (h *userHandler) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	token, err := h.auth.RefreshToken(ctx, req.Token)
	if err != nil {
		return &pb.RefreshTokenResponse{Message: msgInvalidToken}, nil
	}
	return &pb.RefreshTokenResponse{Success: true, Token: token}, nil
}

func (h *userHandler) ValidateToken(ctx context.Context, req *pb.ValidateTokenRequest) (*pb.ValidateTokenResponse, error) {
	id, err := h.auth.ValidateToken(ctx, req.Token)
	if err != nil {
		return &pb.ValidateTokenResponse{}, nil
	}
	return &pb.ValidateTokenResponse{Success: true, UserId: id}, nil
}
