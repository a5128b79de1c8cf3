package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TempIDPrefix marks identifiers issued locally for optimistic entries,
// distinguishable from anything the server hands out.
const TempIDPrefix = "temp-"

// MessageStatus local delivery state of a message entry
type MessageStatus string

const (
	// MessagePending optimistic entry, not yet confirmed by the server echo
	MessagePending MessageStatus = "pending"
	// MessageConfirmed server-issued entry
	MessageConfirmed MessageStatus = "confirmed"
	// MessageFailed the send errored; the entry stays visible and marked
	MessageFailed MessageStatus = "failed"
)

// FileRef 已上傳檔案的引用
type FileRef struct {
	URL      string `json:"url"`
	MimeType string `json:"mime_type"`
	FileName string `json:"file_name"`
}

// Message 表示一則聊天訊息
type Message struct {
	ID         string     `json:"id"`
	SenderID   string     `json:"sender_id"`
	ReceiverID string     `json:"receiver_id"`
	Content    string     `json:"content"`
	IsFile     bool       `json:"is_file,omitempty"`
	FileURL    string     `json:"file_url,omitempty"`
	MimeType   string     `json:"mime_type,omitempty"`
	FileName   string     `json:"file_name,omitempty"`
	BookingID  string     `json:"booking_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	ReadAt     *time.Time `json:"read_at,omitempty"`

	// Status is client-side only and never crosses the wire.
	Status MessageStatus `json:"-"`
}

// IsTemp reports whether the message still carries a locally generated id.
func (m Message) IsTemp() bool {
	return strings.HasPrefix(m.ID, TempIDPrefix)
}

// Unread true while no read receipt arrived
func (m Message) Unread() bool {
	return m.ReadAt == nil
}

// NewTempID 產生 optimistic entry 的暫時識別碼
func NewTempID() string {
	return TempIDPrefix + uuid.New().String()
}

// ExistsResult gating check 回應
type ExistsResult struct {
	Exists    bool   `json:"exists"`
	BookingID string `json:"booking_id,omitempty"`
}
