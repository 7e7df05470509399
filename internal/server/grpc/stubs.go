package grpc

import (
	"context"

	"github.com/ourchat/ourchat/internal/logging"
	pb "github.com/ourchat/ourchat/internal/proto"
)

// Placeholder services. They log the request and return fixed replies
// until groups, messaging, presence and friends have a backing store.

const placeholderID = 1001

type groupHandler struct {
	logger logging.Logger
}

func (h *groupHandler) CreateGroup(ctx context.Context, req *pb.CreateGroupRequest) (*pb.CreateGroupResponse, error) {
	h.logger.Info(ctx, "CreateGroup", "name", req.GroupName, "owner_id", req.OwnerId)
	return &pb.CreateGroupResponse{Success: true, GroupId: placeholderID}, nil
}

func (h *groupHandler) GetGroupInfo(ctx context.Context, req *pb.GetGroupInfoRequest) (*pb.GetGroupInfoResponse, error) {
	h.logger.Info(ctx, "GetGroupInfo", "group_id", req.GroupId)
	return &pb.GetGroupInfoResponse{}, nil
}

type messageHandler struct {
	logger logging.Logger
}

func (h *messageHandler) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	h.logger.Info(ctx, "SendMessage", "from", req.SenderId, "to", req.ReceiverId)
	return &pb.SendMessageResponse{Success: true, MessageId: placeholderID}, nil
}

func (h *messageHandler) GetMessages(ctx context.Context, req *pb.GetMessagesRequest) (*pb.GetMessagesResponse, error) {
	h.logger.Info(ctx, "GetMessages", "user_id", req.UserId, "peer_id", req.PeerId)
	return &pb.GetMessagesResponse{}, nil
}

type presenceHandler struct {
	logger logging.Logger
}

func (h *presenceHandler) SetOnline(ctx context.Context, req *pb.SetOnlineRequest) (*pb.SetOnlineResponse, error) {
	h.logger.Info(ctx, "SetOnline", "user_id", req.UserId, "status", int32(req.OnlineStatus))
	return &pb.SetOnlineResponse{Success: true}, nil
}

func (h *presenceHandler) GetOnlineStatus(ctx context.Context, req *pb.GetOnlineStatusRequest) (*pb.GetOnlineStatusResponse, error) {
	h.logger.Info(ctx, "GetOnlineStatus", "user_count", len(req.UserIds))
	return &pb.GetOnlineStatusResponse{}, nil
}

type sessionHandler struct {
	logger logging.Logger
}

func (h *sessionHandler) GetFriends(ctx context.Context, req *pb.GetFriendsRequest) (*pb.GetFriendsResponse, error) {
	h.logger.Info(ctx, "GetFriends", "user_id", req.UserId)
	return &pb.GetFriendsResponse{}, nil
}

func (h *sessionHandler) AddFriend(ctx context.Context, req *pb.AddFriendRequest) (*pb.AddFriendResponse, error) {
	h.logger.Info(ctx, "AddFriend", "user_id", req.UserId, "friend_id", req.FriendId)
	return &pb.AddFriendResponse{Success: true}, nil
}
