package app

import (
	"context"
	"testing"
	"time"

	"gigconnect_client/internal/chat/domain"
	errprocess "gigconnect_client/pkg/err"
	"gigconnect_client/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func viewDeps(msgRepo *MockMessageRepository, socket *FakeSocket) ViewDeps {
	return ViewDeps{
		MsgRepo: msgRepo,
		Socket:  socket,
		Claims:  &token.Claims{UserID: "buyer-1", Role: string(token.RoleBuyer)},
		Bearer:  "token-buyer-1",
	}
}

func TestOpenViewLoadsGateHistoryAndJoins(t *testing.T) {
	msgRepo := new(MockMessageRepository)
	msgRepo.On("ConversationExists", mock.Anything, "seller-1").
		Return(&domain.ExistsResult{Exists: true, BookingID: "bk-1"}, nil)
	msgRepo.On("History", mock.Anything, "seller-1", 0, 0).
		Return([]domain.Message{{ID: "m-1", SenderID: "seller-1", ReceiverID: "buyer-1", Content: "old", CreatedAt: time.Now()}}, nil)

	socket := NewFakeSocket()
	view, err := OpenView(context.Background(), viewDeps(msgRepo, socket), "seller-1", "")
	assert.NoError(t, err)
	defer view.Close()

	assert.True(t, view.Policy.CanCompose)
	assert.Len(t, view.Client.Messages(), 1)
	assert.Equal(t, domain.MessageConfirmed, view.Client.Messages()[0].Status)

	joins := socket.WrittenOf(domain.EventJoinConversation)
	assert.Len(t, joins, 1)
	assert.Equal(t, "bk-1", joins[0].ConversationID, "gate 查到的 booking 要拿來當 room")
}

func TestOpenViewHistoryFailureLeavesNoConnection(t *testing.T) {
	msgRepo := new(MockMessageRepository)
	msgRepo.On("ConversationExists", mock.Anything, "seller-1").
		Return(&domain.ExistsResult{Exists: true}, nil)
	msgRepo.On("History", mock.Anything, "seller-1", 0, 0).
		Return(nil, errprocess.SetKind(errprocess.KindFetch, "boom", nil))

	view, err := OpenView(context.Background(), viewDeps(msgRepo, NewFakeSocket()), "seller-1", "")
	assert.Error(t, err)
	assert.Nil(t, view)
}

func TestSendFileUploadFailureAbortsSend(t *testing.T) {
	msgRepo := new(MockMessageRepository)
	msgRepo.On("ConversationExists", mock.Anything, "seller-1").
		Return(&domain.ExistsResult{Exists: true}, nil)
	msgRepo.On("History", mock.Anything, "seller-1", 0, 0).
		Return([]domain.Message{}, nil)
	msgRepo.On("Upload", mock.Anything, "cv.pdf", "application/pdf", mock.Anything).
		Return(nil, errprocess.SetKind(errprocess.KindUpload, "file upload failed", nil))

	socket := NewFakeSocket()
	view, err := OpenView(context.Background(), viewDeps(msgRepo, socket), "seller-1", "")
	assert.NoError(t, err)
	defer view.Close()

	_, err = view.SendFile(context.Background(), "cv.pdf", "application/pdf", []byte("%PDF"), "my cv")
	assert.Error(t, err)
	assert.Equal(t, errprocess.KindUpload, errprocess.KindOf(err))

	assert.Empty(t, socket.WrittenOf(domain.EventSendMessage), "上傳失敗不能送出任何事件，文字也不補送")
	assert.Empty(t, view.Client.Messages())
}

func TestSendFileSuccessCarriesReference(t *testing.T) {
	msgRepo := new(MockMessageRepository)
	msgRepo.On("ConversationExists", mock.Anything, "seller-1").
		Return(&domain.ExistsResult{Exists: true}, nil)
	msgRepo.On("History", mock.Anything, "seller-1", 0, 0).
		Return([]domain.Message{}, nil)
	msgRepo.On("Upload", mock.Anything, "pic.png", "image/png", mock.Anything).
		Return(&domain.FileRef{URL: "https://cdn.test/pic.png", MimeType: "image/png", FileName: "pic.png"}, nil)

	socket := NewFakeSocket()
	view, err := OpenView(context.Background(), viewDeps(msgRepo, socket), "seller-1", "")
	assert.NoError(t, err)
	defer view.Close()

	msg, err := view.SendFile(context.Background(), "pic.png", "image/png", []byte{1, 2}, "")
	assert.NoError(t, err)
	assert.True(t, msg.IsFile)

	sends := socket.WrittenOf(domain.EventSendMessage)
	assert.Len(t, sends, 1)
	assert.Equal(t, "https://cdn.test/pic.png", sends[0].FileURL)
}

func TestViewBlocksComposeWhenGateDenies(t *testing.T) {
	msgRepo := new(MockMessageRepository)
	msgRepo.On("ConversationExists", mock.Anything, "buyer-9").
		Return(&domain.ExistsResult{Exists: false}, nil)
	msgRepo.On("History", mock.Anything, "buyer-9", 0, 0).
		Return([]domain.Message{}, nil)

	deps := viewDeps(msgRepo, NewFakeSocket())
	deps.Claims = &token.Claims{UserID: "seller-1", Role: string(token.RoleSeller)}

	view, err := OpenView(context.Background(), deps, "buyer-9", "")
	assert.NoError(t, err)
	defer view.Close()

	assert.False(t, view.Policy.CanCompose)
	_, err = view.Send("hi")
	assert.Error(t, err)
	assert.Equal(t, errprocess.KindAuthorization, errprocess.KindOf(err))
}
