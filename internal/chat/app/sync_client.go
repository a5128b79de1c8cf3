package app

import (
	"context"
	"strings"
	"sync"
	"time"

	"gigconnect_client/internal/chat/domain"
	"gigconnect_client/internal/chat/repository"
	errprocess "gigconnect_client/pkg/err"
	"gigconnect_client/pkg/logger"

	"go.uber.org/zap"
)

// SyncState connection lifecycle of one conversation view
type SyncState string

const (
	// StateDisconnected no connection; also the terminal state after retries exhaust
	StateDisconnected SyncState = "disconnected"
	// StateConnecting transport handshake (or bounded redial) in progress
	StateConnecting SyncState = "connecting"
	// StateJoining connected, waiting for room membership
	StateJoining SyncState = "joining"
	// StateIdle joined, ready to send and receive
	StateIdle SyncState = "idle"
	// StateSending an outgoing event is being produced
	StateSending SyncState = "sending"
	// StateReceiving an inbound event is being merged
	StateReceiving SyncState = "receiving"
	// StateClosed view torn down; every later callback is a no-op
	StateClosed SyncState = "closed"
)

// Handlers view-layer callbacks. 所有 callback 都在 client 的內部事件流程
// 呼叫，不持有內部鎖。Nil entries are skipped.
type Handlers struct {
	OnChange        func()                            // message list changed
	OnTyping        func(active bool)                 // counterpart typing flag flipped
	OnNotification  func(content string)              // out-of-room badge
	OnBookingUpdate func(bookingID, status string)    // booking status push
	OnError         func(err error)                   // surfaced, never fatal
}

// SyncClient keeps the local message list of one open conversation consistent
// with the server-authoritative stream, while optimistic sends give the local
// user immediate feedback.
//
// The connection is owned by the view that created the client: opened on
// mount, closed on unmount, never shared through package state.
type SyncClient struct {
	mu sync.Mutex

	socket   repository.ChatSocket
	token    string
	selfID   string
	handlers Handlers

	conv      *Conversation
	state     SyncState
	joined    string // currently joined room, "" before the first join
	closed    bool
	emitter   *TypingEmitter
	indicator *TypingIndicator
}

// SyncOption tweak construction
type SyncOption func(*SyncClient)

// WithTypingWindows override the debounce / expiry defaults
func WithTypingWindows(debounce, expiry time.Duration) SyncOption {
	return func(s *SyncClient) {
		s.emitter = NewTypingEmitter(debounce)
		s.indicator = NewTypingIndicator(expiry, s.typingChanged)
	}
}

// NewSyncClient create client bound to an authenticated identity
func NewSyncClient(socket repository.ChatSocket, selfID, bearer string, handlers Handlers, opts ...SyncOption) *SyncClient {
	s := &SyncClient{
		socket:   socket,
		token:    bearer,
		selfID:   selfID,
		handlers: handlers,
		state:    StateDisconnected,
	}
	s.emitter = NewTypingEmitter(DefaultTypingDebounce)
	s.indicator = NewTypingIndicator(DefaultTypingExpiry, s.typingChanged)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SyncClient) typingChanged(active bool) {
	s.mu.Lock()
	cb := s.handlers.OnTyping
	s.mu.Unlock()
	if cb != nil {
		cb(active)
	}
}

// State current lifecycle state
func (s *SyncClient) State() SyncState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Connect dials the transport (bounded retries live in the socket) and
// starts the receive loop. If a conversation is already open, its room is
// re-joined so scoped delivery resumes.
func (s *SyncClient) Connect(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return errprocess.SetKind(errprocess.KindConnection, "client already closed", nil)
	}
	s.state = StateConnecting
	s.mu.Unlock()

	if err := s.socket.Dial(ctx, s.token); err != nil {
		s.mu.Lock()
		s.state = StateDisconnected
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	room := s.joined
	s.state = StateIdle
	if room != "" {
		s.state = StateJoining
	}
	s.mu.Unlock()

	if room != "" {
		if err := s.writeJoin(room); err != nil {
			return err
		}
	}

	go s.readLoop(ctx)
	return nil
}

// OpenConversation binds the view's conversation and joins its room.
func (s *SyncClient) OpenConversation(conv *Conversation) error {
	s.mu.Lock()
	s.conv = conv
	s.mu.Unlock()
	return s.Join(conv.Key.RoomID())
}

// Join requests room membership. Re-joining the already joined room is a
// no-op; only one room is held at a time, so a new room replaces the old
// room context.
func (s *SyncClient) Join(roomID string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return errprocess.SetKind(errprocess.KindConnection, "client already closed", nil)
	}
	if s.joined == roomID {
		s.mu.Unlock()
		return nil
	}
	s.joined = roomID
	s.state = StateJoining
	s.mu.Unlock()

	return s.writeJoin(roomID)
}

func (s *SyncClient) writeJoin(roomID string) error {
	err := s.socket.WriteEvent(&domain.ClientEvent{
		Event:          string(domain.EventJoinConversation),
		ConversationID: roomID,
	})

	s.mu.Lock()
	if err == nil && s.state == StateJoining {
		s.state = StateIdle
	}
	s.mu.Unlock()
	return err
}

// Send pushes text and/or an already-uploaded file reference. With neither,
// the send is rejected locally before any network traffic. The optimistic
// entry appears immediately with a temporary identifier and pending status;
// a write failure flips it to failed but leaves it visible.
func (s *SyncClient) Send(content string, file *domain.FileRef) (domain.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" && file == nil {
		return domain.Message{}, errprocess.SetKind(errprocess.KindValidation, "message needs text or a file", nil)
	}

	s.mu.Lock()
	if s.closed || s.conv == nil {
		s.mu.Unlock()
		return domain.Message{}, errprocess.SetKind(errprocess.KindConnection, "no open conversation", nil)
	}
	conv := s.conv
	s.state = StateSending

	msg := domain.Message{
		ID:         domain.NewTempID(),
		SenderID:   s.selfID,
		ReceiverID: conv.Key.CounterpartID,
		Content:    content,
		BookingID:  conv.Key.BookingID,
		CreatedAt:  time.Now(),
		Status:     domain.MessagePending,
	}
	if file != nil {
		msg.IsFile = true
		msg.FileURL = file.URL
		msg.MimeType = file.MimeType
		msg.FileName = file.FileName
	}
	conv.Append(msg)
	s.mu.Unlock()

	s.notifyChange()

	ev := &domain.ClientEvent{
		Event:      string(domain.EventSendMessage),
		ReceiverID: msg.ReceiverID,
		Content:    msg.Content,
		BookingID:  msg.BookingID,
		TempID:     msg.ID,
	}
	if file != nil {
		ev.IsFile = true
		ev.FileURL = file.URL
		ev.MimeType = file.MimeType
		ev.FileName = file.FileName
	}

	err := s.socket.WriteEvent(ev)

	s.mu.Lock()
	if s.state == StateSending {
		s.state = StateIdle
	}
	if err != nil {
		conv.MarkFailed(msg.ID)
	}
	s.mu.Unlock()

	if err != nil {
		s.notifyChange()
		return msg, err
	}
	return msg, nil
}

// SignalTyping emits at most one typing signal per debounce window while the
// draft is non-empty. The draft is passed in explicitly on every keystroke.
func (s *SyncClient) SignalTyping(draft string) error {
	s.mu.Lock()
	if s.closed || s.conv == nil {
		s.mu.Unlock()
		return nil
	}
	conv := s.conv
	s.mu.Unlock()

	if !s.emitter.ShouldEmit(conv.Key.RoomID(), draft) {
		return nil
	}
	return s.socket.WriteEvent(&domain.ClientEvent{
		Event:      string(domain.EventTyping),
		ReceiverID: conv.Key.CounterpartID,
	})
}

// Messages snapshot of the open conversation, empty when none is open.
func (s *SyncClient) Messages() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conv == nil {
		return nil
	}
	return s.conv.Messages()
}

// CounterpartTyping current transient typing flag
func (s *SyncClient) CounterpartTyping() bool {
	return s.indicator.Active()
}

// Close tears the view down: best-effort socket close, timers stopped,
// handlers detached. Safe to call more than once; anything still in flight
// resolves into a no-op.
func (s *SyncClient) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.state = StateClosed
	s.handlers = Handlers{}
	s.mu.Unlock()

	s.indicator.Stop()
	if err := s.socket.Close(); err != nil {
		logger.Log.Infof("socket close:", err)
	}
}

// readLoop consumes server events until the socket dies or the view closes.
// A dropped connection triggers one bounded redial pass; if that exhausts,
// the failure surfaces through OnError and the view stays up in a degraded
// state.
func (s *SyncClient) readLoop(ctx context.Context) {
	for {
		ev, err := s.socket.ReadEvent()
		if err != nil {
			s.mu.Lock()
			closed := s.closed
			s.state = StateConnecting
			if closed {
				s.state = StateClosed
			}
			s.mu.Unlock()
			if closed {
				return
			}

			logger.Log.Warn("connection dropped, redialling", zap.Error(err))
			if derr := s.socket.Dial(ctx, s.token); derr != nil {
				s.mu.Lock()
				s.state = StateDisconnected
				onError := s.handlers.OnError
				s.mu.Unlock()
				if onError != nil {
					onError(derr)
				}
				return
			}

			// 重連成功 → 重新加入目前的 room
			s.mu.Lock()
			room := s.joined
			s.state = StateIdle
			s.mu.Unlock()
			if room != "" {
				if jerr := s.writeJoin(room); jerr != nil {
					logger.Log.Warn("rejoin failed", zap.String("room", room), zap.Error(jerr))
				}
			}
			continue
		}

		s.handleEvent(ev)
	}
}

func (s *SyncClient) handleEvent(ev *domain.ServerEvent) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.state = StateReceiving
	// Close 會在鎖內清掉 handlers，callback 只能用鎖內快照
	handlers := s.handlers
	s.mu.Unlock()

	switch domain.EventType(ev.Event) {
	case domain.EventNewMessage:
		s.handleNewMessage(ev)
	case domain.EventMessagesRead:
		s.handleMessagesRead(ev)
	case domain.EventTyping:
		s.handleTyping(ev)
	case domain.EventNotification:
		if handlers.OnNotification != nil {
			handlers.OnNotification(ev.Content)
		}
	case domain.EventBookingUpdated:
		if handlers.OnBookingUpdate != nil {
			handlers.OnBookingUpdate(ev.BookingID, ev.Status)
		}
	case domain.EventError:
		s.handleServerError(ev)
	case domain.EventConnected:
		logger.Log.Debug("realtime connected", zap.String("user_id", ev.UserID))
	default:
		logger.Log.Debug("unknown event skipped", zap.String("event", ev.Event))
	}

	s.mu.Lock()
	if s.state == StateReceiving {
		s.state = StateIdle
	}
	s.mu.Unlock()
}

func (s *SyncClient) handleNewMessage(ev *domain.ServerEvent) {
	if ev.Message == nil {
		return
	}
	msg := *ev.Message
	msg.Status = domain.MessageConfirmed

	s.mu.Lock()
	conv := s.conv
	if conv == nil || !conv.Key.Involves(msg.SenderID, msg.ReceiverID) {
		// 不屬於目前開啟的對話 → 忽略
		s.mu.Unlock()
		return
	}

	changed := false
	if ev.TempID != "" && conv.Reconcile(ev.TempID, msg) {
		changed = true
	} else {
		changed = conv.Append(msg)
	}

	ackNeeded := changed && msg.ReceiverID == s.selfID && msg.Unread()
	bookingID := conv.Key.BookingID
	s.mu.Unlock()

	if ackNeeded {
		// 收到寄給自己的未讀訊息 → 回送已讀
		if err := s.socket.WriteEvent(&domain.ClientEvent{
			Event:     string(domain.EventMarkRead),
			MessageID: msg.ID,
			BookingID: bookingID,
		}); err != nil {
			logger.Log.Warn("mark_read not delivered", zap.String("message_id", msg.ID), zap.Error(err))
		}
	}
	if changed {
		s.notifyChange()
	}
}

func (s *SyncClient) handleMessagesRead(ev *domain.ServerEvent) {
	now := time.Now()

	s.mu.Lock()
	conv := s.conv
	changed := false
	if conv != nil {
		if ev.MessageID != "" {
			changed = conv.MarkRead(ev.MessageID, now)
		} else if ev.BookingID != "" && ev.BookingID == conv.Key.BookingID {
			changed = conv.MarkSentRead(now) > 0
		}
	}
	s.mu.Unlock()

	if changed {
		s.notifyChange()
	}
}

func (s *SyncClient) handleTyping(ev *domain.ServerEvent) {
	s.mu.Lock()
	conv := s.conv
	s.mu.Unlock()
	if conv == nil || ev.SenderID != conv.Key.CounterpartID {
		return
	}
	s.indicator.Signal()
}

// handleServerError — 伺服器拒絕永遠是 authoritative，即使本地 gate 放行
func (s *SyncClient) handleServerError(ev *domain.ServerEvent) {
	s.mu.Lock()
	onError := s.handlers.OnError
	changed := ev.TempID != "" && s.conv != nil && s.conv.MarkFailed(ev.TempID)
	s.mu.Unlock()

	if changed {
		s.notifyChange()
	}
	if onError != nil {
		onError(errprocess.SetKind(errprocess.KindAuthorization, ev.Content, nil))
	}
}

func (s *SyncClient) notifyChange() {
	s.mu.Lock()
	cb := s.handlers.OnChange
	s.mu.Unlock()
	if cb != nil {
		cb()
	}
}
