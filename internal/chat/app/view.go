package app

import (
	"context"

	"gigconnect_client/internal/chat/domain"
	"gigconnect_client/internal/chat/repository"
	errprocess "gigconnect_client/pkg/err"
	"gigconnect_client/pkg/token"
)

func composerDisabledErr() error {
	return errprocess.SetKind(errprocess.KindAuthorization, SellerGateNotice, nil)
}

// ConversationView everything a conversation screen needs for its lifetime:
// the gating verdict taken at load, the seeded message list, and the live
// sync client. Created on mount, closed on unmount.
type ConversationView struct {
	Policy *ComposerPolicy
	Client *SyncClient

	msgRepo repository.MessageRepository
	conv    *Conversation
}

// ViewDeps dependencies for opening a view
type ViewDeps struct {
	MsgRepo  repository.MessageRepository
	Socket   repository.ChatSocket
	Claims   *token.Claims
	Bearer   string
	Handlers Handlers
}

// OpenView loads one conversation screen end to end:
//
//  1. gating check (once, point-in-time)
//  2. history fetch, seeded as confirmed
//  3. realtime connect and room join
//
// 任一步失敗都會回傳錯誤並且不留下半開的連線。
func OpenView(ctx context.Context, deps ViewDeps, counterpartID, bookingID string) (*ConversationView, error) {
	gate := NewComposerGate(deps.MsgRepo)
	policy, err := gate.Check(ctx, token.RoleType(deps.Claims.Role), counterpartID)
	if err != nil {
		return nil, err
	}

	key := domain.ConversationKey{
		SelfID:        deps.Claims.UserID,
		CounterpartID: counterpartID,
		BookingID:     bookingID,
	}
	if key.BookingID == "" {
		key.BookingID = policy.BookingID
	}

	history, err := deps.MsgRepo.History(ctx, counterpartID, 0, 0)
	if err != nil {
		return nil, err
	}
	conv := NewConversation(key, history)

	client := NewSyncClient(deps.Socket, deps.Claims.UserID, deps.Bearer, deps.Handlers)
	if err := client.Connect(ctx); err != nil {
		return nil, err
	}
	if err := client.OpenConversation(conv); err != nil {
		client.Close()
		return nil, err
	}

	return &ConversationView{
		Policy:  policy,
		Client:  client,
		msgRepo: deps.MsgRepo,
		conv:    conv,
	}, nil
}

// Send text through the live client, honoring the load-time gate.
func (v *ConversationView) Send(content string) (domain.Message, error) {
	if !v.Policy.CanCompose {
		return domain.Message{}, composerDisabledErr()
	}
	return v.Client.Send(content, nil)
}

// SendFile uploads first, then emits the send event carrying the returned
// reference. An upload failure aborts the whole send; no message appears.
func (v *ConversationView) SendFile(ctx context.Context, fileName, mimeType string, data []byte, caption string) (domain.Message, error) {
	if !v.Policy.CanCompose {
		return domain.Message{}, composerDisabledErr()
	}
	ref, err := v.msgRepo.Upload(ctx, fileName, mimeType, data)
	if err != nil {
		return domain.Message{}, err
	}
	return v.Client.Send(caption, ref)
}

// Close tears the screen down.
func (v *ConversationView) Close() {
	v.Client.Close()
}
