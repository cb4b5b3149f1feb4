// Package handler exposes the chat delivery service over gRPC.
package handler

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "socialfeed/api/v1/chat"
	"socialfeed/internal/chat/presence"
	"socialfeed/internal/chat/service"
	"socialfeed/internal/dbmongo"
)

// sendBuffer bounds how far a slow subscriber may lag before live
// pushes to it are dropped in favor of the durable notification.
const sendBuffer = 16

var errSubscriberBusy = errors.New("subscriber send buffer full")

type ChatHandler struct {
	pb.UnimplementedChatServer
	chatService service.ChatService
	presence    *presence.Registry
	logger      *slog.Logger
}

func NewChatHandler(chatService service.ChatService, registry *presence.Registry, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		presence:    registry,
		logger:      logger,
	}
}

func (h *ChatHandler) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	msg, err := h.chatService.SendMessage(ctx, req.GetText(), req.GetUserId(), req.GetTargetUserId())
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		h.logger.Error("send message failed", "error", err)
		return nil, status.Error(codes.Internal, "error sending message")
	}

	return &pb.SendMessageResponse{
		Success:   true,
		MessageId: msg.ID,
	}, nil
}

func (h *ChatHandler) GetMessageHistory(ctx context.Context, req *pb.MessageHistoryRequest) (*pb.MessageHistoryResponse, error) {
	messages, err := h.chatService.MessageHistory(ctx, req.GetUserId(), req.GetTargetUserId())
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		h.logger.Error("message history failed", "error", err)
		return nil, status.Error(codes.Internal, "error fetching message history")
	}

	resp := &pb.MessageHistoryResponse{Messages: make([]*pb.Message, 0, len(messages))}
	for _, msg := range messages {
		resp.Messages = append(resp.Messages, toProto(msg))
	}
	return resp, nil
}

// SubscribeToMessages registers the caller for live delivery and
// streams messages until the client cancels or the connection drops.
// Deregistration happens before the handler returns, so a closed
// subscription is never a live-push target again.
func (h *ChatHandler) SubscribeToMessages(req *pb.SubscribeRequest, stream pb.Chat_SubscribeToMessagesServer) error {
	userID := req.GetUserId()
	if userID == "" {
		return status.Error(codes.InvalidArgument, "user ID cannot be empty")
	}

	sub := newSubscription()
	h.presence.Register(userID, sub)
	defer h.presence.Unregister(userID, sub)

	h.logger.Info("subscription opened", "user_id", userID)
	defer h.logger.Info("subscription closed", "user_id", userID)

	ctx := stream.Context()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-sub.ch:
			if err := stream.Send(toProto(msg)); err != nil {
				return err
			}
		}
	}
}

// subscription adapts a gRPC server stream to the presence registry.
// Send is non-blocking: when the buffer is full the push is dropped and
// the recipient falls back to the durable notification record.
type subscription struct {
	ch chan *dbmongo.Message
}

func newSubscription() *subscription {
	return &subscription{ch: make(chan *dbmongo.Message, sendBuffer)}
}

func (s *subscription) Send(msg *dbmongo.Message) error {
	select {
	case s.ch <- msg:
		return nil
	default:
		return errSubscriberBusy
	}
}

func toProto(msg *dbmongo.Message) *pb.Message {
	return &pb.Message{
		Id:        msg.ID,
		Text:      msg.Text,
		UserId:    msg.UserID,
		Timestamp: timestamppb.New(msg.Timestamp),
	}
}
