package domain

// EventType websocket event name
type EventType string

const (
	// EventJoinConversation websocket event join_conversation
	EventJoinConversation EventType = "join_conversation"
	// EventSendMessage websocket event send_message
	EventSendMessage EventType = "send_message"
	// EventMarkRead websocket event mark_read
	EventMarkRead EventType = "mark_read"
	// EventTyping websocket event typing (both directions)
	EventTyping EventType = "typing"

	// EventConnected server ack after the authenticated handshake
	EventConnected EventType = "connected"
	// EventNewMessage server push: a stored message (echo or counterpart's)
	EventNewMessage EventType = "new_message"
	// EventMessagesRead server push: read receipt
	EventMessagesRead EventType = "messages_read"
	// EventNotification server push: out-of-room badge notification
	EventNotification EventType = "notification"
	// EventBookingUpdated server push: booking status changed
	EventBookingUpdated EventType = "booking_updated"
	// EventError server push: request refused
	EventError EventType = "error"
)

// ClientEvent websocket Request
type ClientEvent struct {
	Event          string `json:"event"`
	ConversationID string `json:"conversation_id,omitempty"`
	ReceiverID     string `json:"receiver_id,omitempty"`
	Content        string `json:"content,omitempty"`
	BookingID      string `json:"booking_id,omitempty"`
	IsFile         bool   `json:"is_file,omitempty"`
	FileURL        string `json:"file_url,omitempty"`
	MimeType       string `json:"mime_type,omitempty"`
	FileName       string `json:"file_name,omitempty"`
	MessageID      string `json:"message_id,omitempty"`
	// TempID correlates the server echo back to the optimistic entry.
	TempID string `json:"temp_id,omitempty"`
}

// ServerEvent websocket Response
type ServerEvent struct {
	Event     string   `json:"event"`
	Message   *Message `json:"message,omitempty"`
	TempID    string   `json:"temp_id,omitempty"`
	MessageID string   `json:"message_id,omitempty"`
	BookingID string   `json:"booking_id,omitempty"`
	SenderID  string   `json:"sender_id,omitempty"`
	UserID    string   `json:"user_id,omitempty"`
	Content   string   `json:"content,omitempty"`
	Status    string   `json:"status,omitempty"`
	UpdatedBy string   `json:"updated_by,omitempty"`
}
