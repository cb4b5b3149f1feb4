package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "socialfeed/api/v1/chat"
	"socialfeed/internal/chat/handler/mocks"
	"socialfeed/internal/chat/presence"
	"socialfeed/internal/chat/service"
	"socialfeed/internal/dbmongo"
)

func TestChatHandler_SendMessage(t *testing.T) {
	tests := []struct {
		name       string
		req        *pb.SendMessageRequest
		mockSetup  func(svc *mocks.MockChatService)
		expectCode codes.Code
		expectID   string
	}{
		{
			name: "successful send",
			req:  &pb.SendMessageRequest{Text: "hi", UserId: "u1", TargetUserId: "u2"},
			mockSetup: func(svc *mocks.MockChatService) {
				svc.EXPECT().
					SendMessage(gomock.Any(), "hi", "u1", "u2").
					Return(&dbmongo.Message{ID: "msg-1", Text: "hi", UserID: "u1", TargetUserID: "u2"}, nil).
					Times(1)
			},
			expectCode: codes.OK,
			expectID:   "msg-1",
		},
		{
			name: "validation error maps to InvalidArgument",
			req:  &pb.SendMessageRequest{Text: "", UserId: "u1", TargetUserId: "u2"},
			mockSetup: func(svc *mocks.MockChatService) {
				svc.EXPECT().
					SendMessage(gomock.Any(), "", "u1", "u2").
					Return(nil, fmt.Errorf("%w: text cannot be empty", service.ErrValidation)).
					Times(1)
			},
			expectCode: codes.InvalidArgument,
		},
		{
			name: "storage error maps to Internal",
			req:  &pb.SendMessageRequest{Text: "hi", UserId: "u1", TargetUserId: "u2"},
			mockSetup: func(svc *mocks.MockChatService) {
				svc.EXPECT().
					SendMessage(gomock.Any(), "hi", "u1", "u2").
					Return(nil, errors.New("database connection failed")).
					Times(1)
			},
			expectCode: codes.Internal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockChatService(ctrl)
			tt.mockSetup(mockService)

			h := NewChatHandler(mockService, presence.NewRegistry(), slog.Default())
			resp, err := h.SendMessage(context.Background(), tt.req)

			if tt.expectCode == codes.OK {
				require.NoError(t, err)
				assert.True(t, resp.GetSuccess())
				assert.Equal(t, tt.expectID, resp.GetMessageId())
				return
			}

			require.Error(t, err)
			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, tt.expectCode, st.Code())
			assert.Nil(t, resp)
		})
	}
}

func TestChatHandler_GetMessageHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockChatService(ctrl)

	mockService.EXPECT().
		MessageHistory(gomock.Any(), "u1", "u2").
		Return([]*dbmongo.Message{
			{ID: "m1", Text: "hey", UserID: "u1", TargetUserID: "u2"},
			{ID: "m2", Text: "hello", UserID: "u2", TargetUserID: "u1"},
		}, nil).
		Times(1)

	h := NewChatHandler(mockService, presence.NewRegistry(), slog.Default())
	resp, err := h.GetMessageHistory(context.Background(), &pb.MessageHistoryRequest{UserId: "u1", TargetUserId: "u2"})

	require.NoError(t, err)
	require.Len(t, resp.GetMessages(), 2)
	assert.Equal(t, "m1", resp.GetMessages()[0].GetId())
	assert.Equal(t, "hello", resp.GetMessages()[1].GetText())
}

func TestChatHandler_GetMessageHistory_MissingUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockChatService(ctrl)

	mockService.EXPECT().
		MessageHistory(gomock.Any(), "", "u2").
		Return(nil, fmt.Errorf("%w: both user IDs are required", service.ErrValidation)).
		Times(1)

	h := NewChatHandler(mockService, presence.NewRegistry(), slog.Default())
	_, err := h.GetMessageHistory(context.Background(), &pb.MessageHistoryRequest{TargetUserId: "u2"})

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}

func TestSubscription_SendIsNonBlocking(t *testing.T) {
	sub := newSubscription()

	for i := 0; i < sendBuffer; i++ {
		require.NoError(t, sub.Send(&dbmongo.Message{ID: "m"}))
	}

	// Buffer full: the push is dropped instead of blocking the sender.
	err := sub.Send(&dbmongo.Message{ID: "overflow"})
	assert.ErrorIs(t, err, errSubscriberBusy)
}
