package repository

import (
	"context"
	"fmt"
	"net/url"

	"gigconnect_client/internal/chat/domain"
	errprocess "gigconnect_client/pkg/err"
	"gigconnect_client/pkg/httpclient"
)

// MessageRepository messaging REST surface
type MessageRepository interface {
	// History returns the stored thread with the counterpart, ascending by
	// creation time.
	History(ctx context.Context, otherID string, limit, offset int) ([]domain.Message, error)
	// ConversationExists is the point-in-time gating check.
	ConversationExists(ctx context.Context, otherID string) (*domain.ExistsResult, error)
	// Upload pushes an attachment out-of-band before the send event.
	Upload(ctx context.Context, fileName, mimeType string, data []byte) (*domain.FileRef, error)
}

type restMessageRepository struct {
	http *httpclient.Client
}

// NewRESTMessageRepository create message repository over the REST API
func NewRESTMessageRepository(http *httpclient.Client) MessageRepository {
	return &restMessageRepository{http: http}
}

func (r *restMessageRepository) History(ctx context.Context, otherID string, limit, offset int) ([]domain.Message, error) {
	if limit <= 0 {
		limit = 50
	}
	path := fmt.Sprintf("/api/messages/conversation/%s?limit=%d&offset=%d",
		url.PathEscape(otherID), limit, offset)

	var messages []domain.Message
	if err := r.http.Get(ctx, path, &messages); err != nil {
		return nil, err
	}
	// history entries are server-issued by definition
	for i := range messages {
		messages[i].Status = domain.MessageConfirmed
	}
	return messages, nil
}

func (r *restMessageRepository) ConversationExists(ctx context.Context, otherID string) (*domain.ExistsResult, error) {
	path := fmt.Sprintf("/api/messages/conversation/%s/exists", url.PathEscape(otherID))

	result := new(domain.ExistsResult)
	if err := r.http.Get(ctx, path, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *restMessageRepository) Upload(ctx context.Context, fileName, mimeType string, data []byte) (*domain.FileRef, error) {
	if len(data) == 0 {
		return nil, errprocess.SetKind(errprocess.KindValidation, "empty file", nil)
	}

	ref := new(domain.FileRef)
	if err := r.http.PostMultipart(ctx, "/api/messages/upload", "file", fileName, mimeType, data, ref); err != nil {
		// 上傳失敗 → 整筆傳送中止，文字不另外送出
		return nil, errprocess.SetKind(errprocess.KindUpload, "file upload failed", err)
	}
	return ref, nil
}
