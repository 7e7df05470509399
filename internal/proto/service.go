package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// unary builds a method descriptor whose handler decodes the request,
// runs the interceptor chain and dispatches to call.
func unary[Req any, Resp any](service, method string, call func(srv any, ctx context.Context, req *Req) (Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + service + "/" + method
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return call(srv, ctx, req.(*Req))
			})
		},
	}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts ...grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

const UserServiceName = "im.UserService"

const (
	UserService_Register_FullMethodName      = "/im.UserService/Register"
	UserService_Login_FullMethodName         = "/im.UserService/Login"
	UserService_Logout_FullMethodName        = "/im.UserService/Logout"
	UserService_RefreshToken_FullMethodName  = "/im.UserService/RefreshToken"
	UserService_ValidateToken_FullMethodName = "/im.UserService/ValidateToken"
)

type UserServiceServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	Logout(context.Context, *LogoutRequest) (*LogoutResponse, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error)
	ValidateToken(context.Context, *ValidateTokenRequest) (*ValidateTokenResponse, error)
}

// UnimplementedUserServiceServer answers every method with codes.Unimplemented.
type UnimplementedUserServiceServer struct{}

func (UnimplementedUserServiceServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}

func (UnimplementedUserServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}

func (UnimplementedUserServiceServer) Logout(context.Context, *LogoutRequest) (*LogoutResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Logout not implemented")
}

func (UnimplementedUserServiceServer) RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RefreshToken not implemented")
}

func (UnimplementedUserServiceServer) ValidateToken(context.Context, *ValidateTokenRequest) (*ValidateTokenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ValidateToken not implemented")
}

var UserService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: UserServiceName,
	HandlerType: (*UserServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(UserServiceName, "Register", func(srv any, ctx context.Context, in *RegisterRequest) (*RegisterResponse, error) {
			return srv.(UserServiceServer).Register(ctx, in)
		}),
		unary(UserServiceName, "Login", func(srv any, ctx context.Context, in *LoginRequest) (*LoginResponse, error) {
			return srv.(UserServiceServer).Login(ctx, in)
		}),
		unary(UserServiceName, "Logout", func(srv any, ctx context.Context, in *LogoutRequest) (*LogoutResponse, error) {
			return srv.(UserServiceServer).Logout(ctx, in)
		}),
		unary(UserServiceName, "RefreshToken", func(srv any, ctx context.Context, in *RefreshTokenRequest) (*RefreshTokenResponse, error) {
			return srv.(UserServiceServer).RefreshToken(ctx, in)
		}),
		unary(UserServiceName, "ValidateToken", func(srv any, ctx context.Context, in *ValidateTokenRequest) (*ValidateTokenResponse, error) {
			return srv.(UserServiceServer).ValidateToken(ctx, in)
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "im.proto",
}

func RegisterUserServiceServer(s grpc.ServiceRegistrar, srv UserServiceServer) {
	s.RegisterService(&UserService_ServiceDesc, srv)
}

type UserServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewUserServiceClient(cc grpc.ClientConnInterface) *UserServiceClient {
	return &UserServiceClient{cc: cc}
}

func (c *UserServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return invoke[RegisterResponse](ctx, c.cc, UserService_Register_FullMethodName, in, opts...)
}

func (c *UserServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, UserService_Login_FullMethodName, in, opts...)
}

func (c *UserServiceClient) Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error) {
	return invoke[LogoutResponse](ctx, c.cc, UserService_Logout_FullMethodName, in, opts...)
}

func (c *UserServiceClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error) {
	return invoke[RefreshTokenResponse](ctx, c.cc, UserService_RefreshToken_FullMethodName, in, opts...)
}

func (c *UserServiceClient) ValidateToken(ctx context.Context, in *ValidateTokenRequest, opts ...grpc.CallOption) (*ValidateTokenResponse, error) {
	return invoke[ValidateTokenResponse](ctx, c.cc, UserService_ValidateToken_FullMethodName, in, opts...)
}

const GroupServiceName = "im.GroupService"

const (
	GroupService_CreateGroup_FullMethodName  = "/im.GroupService/CreateGroup"
	GroupService_GetGroupInfo_FullMethodName = "/im.GroupService/GetGroupInfo"
)

type GroupServiceServer interface {
	CreateGroup(context.Context, *CreateGroupRequest) (*CreateGroupResponse, error)
	GetGroupInfo(context.Context, *GetGroupInfoRequest) (*GetGroupInfoResponse, error)
}

// UnimplementedGroupServiceServer answers every method with codes.Unimplemented.
type UnimplementedGroupServiceServer struct{}

func (UnimplementedGroupServiceServer) CreateGroup(context.Context, *CreateGroupRequest) (*CreateGroupResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateGroup not implemented")
}

func (UnimplementedGroupServiceServer) GetGroupInfo(context.Context, *GetGroupInfoRequest) (*GetGroupInfoResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetGroupInfo not implemented")
}

var GroupService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: GroupServiceName,
	HandlerType: (*GroupServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(GroupServiceName, "CreateGroup", func(srv any, ctx context.Context, in *CreateGroupRequest) (*CreateGroupResponse, error) {
			return srv.(GroupServiceServer).CreateGroup(ctx, in)
		}),
		unary(GroupServiceName, "GetGroupInfo", func(srv any, ctx context.Context, in *GetGroupInfoRequest) (*GetGroupInfoResponse, error) {
			return srv.(GroupServiceServer).GetGroupInfo(ctx, in)
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "im.proto",
}

func RegisterGroupServiceServer(s grpc.ServiceRegistrar, srv GroupServiceServer) {
	s.RegisterService(&GroupService_ServiceDesc, srv)
}

type GroupServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewGroupServiceClient(cc grpc.ClientConnInterface) *GroupServiceClient {
	return &GroupServiceClient{cc: cc}
}

func (c *GroupServiceClient) CreateGroup(ctx context.Context, in *CreateGroupRequest, opts ...grpc.CallOption) (*CreateGroupResponse, error) {
	return invoke[CreateGroupResponse](ctx, c.cc, GroupService_CreateGroup_FullMethodName, in, opts...)
}

func (c *GroupServiceClient) GetGroupInfo(ctx context.Context, in *GetGroupInfoRequest, opts ...grpc.CallOption) (*GetGroupInfoResponse, error) {
	return invoke[GetGroupInfoResponse](ctx, c.cc, GroupService_GetGroupInfo_FullMethodName, in, opts...)
}

const MessageServiceName = "im.MessageService"

const (
	MessageService_SendMessage_FullMethodName = "/im.MessageService/SendMessage"
	MessageService_GetMessages_FullMethodName = "/im.MessageService/GetMessages"
)

type MessageServiceServer interface {
	SendMessage(context.Context, *SendMessageRequest) (*SendMessageResponse, error)
	GetMessages(context.Context, *GetMessagesRequest) (*GetMessagesResponse, error)
}

// UnimplementedMessageServiceServer answers every method with codes.Unimplemented.
type UnimplementedMessageServiceServer struct{}

func (UnimplementedMessageServiceServer) SendMessage(context.Context, *SendMessageRequest) (*SendMessageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SendMessage not implemented")
}

func (UnimplementedMessageServiceServer) GetMessages(context.Context, *GetMessagesRequest) (*GetMessagesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMessages not implemented")
}

var MessageService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: MessageServiceName,
	HandlerType: (*MessageServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MessageServiceName, "SendMessage", func(srv any, ctx context.Context, in *SendMessageRequest) (*SendMessageResponse, error) {
			return srv.(MessageServiceServer).SendMessage(ctx, in)
		}),
		unary(MessageServiceName, "GetMessages", func(srv any, ctx context.Context, in *GetMessagesRequest) (*GetMessagesResponse, error) {
			return srv.(MessageServiceServer).GetMessages(ctx, in)
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "im.proto",
}

func RegisterMessageServiceServer(s grpc.ServiceRegistrar, srv MessageServiceServer) {
	s.RegisterService(&MessageService_ServiceDesc, srv)
}

type MessageServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMessageServiceClient(cc grpc.ClientConnInterface) *MessageServiceClient {
	return &MessageServiceClient{cc: cc}
}

func (c *MessageServiceClient) SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageResponse, error) {
	return invoke[SendMessageResponse](ctx, c.cc, MessageService_SendMessage_FullMethodName, in, opts...)
}

func (c *MessageServiceClient) GetMessages(ctx context.Context, in *GetMessagesRequest, opts ...grpc.CallOption) (*GetMessagesResponse, error) {
	return invoke[GetMessagesResponse](ctx, c.cc, MessageService_GetMessages_FullMethodName, in, opts...)
}

const PresenceServiceName = "im.PresenceService"

const (
	PresenceService_SetOnline_FullMethodName       = "/im.PresenceService/SetOnline"
	PresenceService_GetOnlineStatus_FullMethodName = "/im.PresenceService/GetOnlineStatus"
)

type PresenceServiceServer interface {
	SetOnline(context.Context, *SetOnlineRequest) (*SetOnlineResponse, error)
	GetOnlineStatus(context.Context, *GetOnlineStatusRequest) (*GetOnlineStatusResponse, error)
}

// UnimplementedPresenceServiceServer answers every method with codes.Unimplemented.
type UnimplementedPresenceServiceServer struct{}

func (UnimplementedPresenceServiceServer) SetOnline(context.Context, *SetOnlineRequest) (*SetOnlineResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetOnline not implemented")
}

func (UnimplementedPresenceServiceServer) GetOnlineStatus(context.Context, *GetOnlineStatusRequest) (*GetOnlineStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetOnlineStatus not implemented")
}

var PresenceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: PresenceServiceName,
	HandlerType: (*PresenceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(PresenceServiceName, "SetOnline", func(srv any, ctx context.Context, in *SetOnlineRequest) (*SetOnlineResponse, error) {
			return srv.(PresenceServiceServer).SetOnline(ctx, in)
		}),
		unary(PresenceServiceName, "GetOnlineStatus", func(srv any, ctx context.Context, in *GetOnlineStatusRequest) (*GetOnlineStatusResponse, error) {
			return srv.(PresenceServiceServer).GetOnlineStatus(ctx, in)
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "im.proto",
}

func RegisterPresenceServiceServer(s grpc.ServiceRegistrar, srv PresenceServiceServer) {
	s.RegisterService(&PresenceService_ServiceDesc, srv)
}

type PresenceServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPresenceServiceClient(cc grpc.ClientConnInterface) *PresenceServiceClient {
	return &PresenceServiceClient{cc: cc}
}

func (c *PresenceServiceClient) SetOnline(ctx context.Context, in *SetOnlineRequest, opts ...grpc.CallOption) (*SetOnlineResponse, error) {
	return invoke[SetOnlineResponse](ctx, c.cc, PresenceService_SetOnline_FullMethodName, in, opts...)
}

func (c *PresenceServiceClient) GetOnlineStatus(ctx context.Context, in *GetOnlineStatusRequest, opts ...grpc.CallOption) (*GetOnlineStatusResponse, error) {
	return invoke[GetOnlineStatusResponse](ctx, c.cc, PresenceService_GetOnlineStatus_FullMethodName, in, opts...)
}

const SessionServiceName = "im.SessionService"

const (
	SessionService_GetFriends_FullMethodName = "/im.SessionService/GetFriends"
	SessionService_AddFriend_FullMethodName  = "/im.SessionService/AddFriend"
)

type SessionServiceServer interface {
	GetFriends(context.Context, *GetFriendsRequest) (*GetFriendsResponse, error)
	AddFriend(context.Context, *AddFriendRequest) (*AddFriendResponse, error)
}

// UnimplementedSessionServiceServer answers every method with codes.Unimplemented.
type UnimplementedSessionServiceServer struct{}

func (UnimplementedSessionServiceServer) GetFriends(context.Context, *GetFriendsRequest) (*GetFriendsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetFriends not implemented")
}

func (UnimplementedSessionServiceServer) AddFriend(context.Context, *AddFriendRequest) (*AddFriendResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddFriend not implemented")
}

var SessionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: SessionServiceName,
	HandlerType: (*SessionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(SessionServiceName, "GetFriends", func(srv any, ctx context.Context, in *GetFriendsRequest) (*GetFriendsResponse, error) {
			return srv.(SessionServiceServer).GetFriends(ctx, in)
		}),
		unary(SessionServiceName, "AddFriend", func(srv any, ctx context.Context, in *AddFriendRequest) (*AddFriendResponse, error) {
			return srv.(SessionServiceServer).AddFriend(ctx, in)
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "im.proto",
}

func RegisterSessionServiceServer(s grpc.ServiceRegistrar, srv SessionServiceServer) {
	s.RegisterService(&SessionService_ServiceDesc, srv)
}

type SessionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSessionServiceClient(cc grpc.ClientConnInterface) *SessionServiceClient {
	return &SessionServiceClient{cc: cc}
}

func (c *SessionServiceClient) GetFriends(ctx context.Context, in *GetFriendsRequest, opts ...grpc.CallOption) (*GetFriendsResponse, error) {
	return invoke[GetFriendsResponse](ctx, c.cc, SessionService_GetFriends_FullMethodName, in, opts...)
}

func (c *SessionServiceClient) AddFriend(ctx context.Context, in *AddFriendRequest, opts ...grpc.CallOption) (*AddFriendResponse, error) {
	return invoke[AddFriendResponse](ctx, c.cc, SessionService_AddFriend_FullMethodName, in, opts...)
}
