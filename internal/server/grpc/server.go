package grpc

import (
	"context"
	"net"

	"github.com/ourchat/ourchat/internal/logging"
	pb "github.com/ourchat/ourchat/internal/proto"
	"github.com/ourchat/ourchat/internal/server/config"
	"github.com/ourchat/ourchat/internal/server/models"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
)

// AuthService is the account workflow behind im.UserService.
type AuthService interface {
	Register(ctx context.Context, username, password, email string) (int64, error)
	Login(ctx context.Context, username, password string) (*models.Session, error)
	Logout(ctx context.Context, userID int64) error
	RefreshToken(ctx context.Context, token string) (string, error)
	ValidateToken(ctx context.Context, token string) (int64, error)
}

// TokenVerifier checks access tokens presented in request metadata.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

type GRPCServer struct {
	cfg      config.ServerConfig
	auth     AuthService
	tokens   TokenVerifier
	logger   logging.Logger
	requests *prometheus.CounterVec
}

func NewGRPCServer(cfg config.ServerConfig, l logging.Logger, as AuthService, tv TokenVerifier) *GRPCServer {
	return &GRPCServer{
		cfg:    cfg,
		auth:   as,
		tokens: tv,
		logger: l.With("module", "grpc_server"),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ourchat_rpc_requests_total",
			Help: "RPC requests handled, by method and status code.",
		}, []string{"method", "code"}),
	}
}

// RequestCounter exposes the per-method request counter for registration.
func (s *GRPCServer) RequestCounter() prometheus.Collector {
	return s.requests
}

func (s *GRPCServer) newServer() *grpc.Server {
	opts := []grpc.ServerOption{
		grpc.ForceServerCodec(pb.Codec{}),
		grpc.ChainUnaryInterceptor(
			s.loggingInterceptor,
			s.recoveryInterceptor,
			s.accessTokenInterceptor,
		),
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    s.cfg.KeepaliveTime,
			Timeout: s.cfg.KeepaliveTimeout,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             s.cfg.KeepaliveTime / 2,
			PermitWithoutStream: true,
		}),
	}
	if s.cfg.MaxMessageSize > 0 {
		opts = append(opts,
			grpc.MaxRecvMsgSize(s.cfg.MaxMessageSize),
			grpc.MaxSendMsgSize(s.cfg.MaxMessageSize))
	}

	srv := grpc.NewServer(opts...)

	pb.RegisterUserServiceServer(srv, &userHandler{auth: s.auth, logger: s.logger})
	pb.RegisterGroupServiceServer(srv, &groupHandler{logger: s.logger})
	pb.RegisterMessageServiceServer(srv, &messageHandler{logger: s.logger})
	pb.RegisterPresenceServiceServer(srv, &presenceHandler{logger: s.logger})
	pb.RegisterSessionServiceServer(srv, &sessionHandler{logger: s.logger})

	return srv
}

// Run listens on the configured address and serves until ctx is canceled.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is canceled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv := s.newServer()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String(), "service", s.cfg.ServiceName)

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}
	<-stopped

	return nil
}
