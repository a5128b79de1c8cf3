package app

import (
	"context"
	"sync"

	"gigconnect_client/internal/chat/domain"
	errprocess "gigconnect_client/pkg/err"

	"github.com/stretchr/testify/mock"
)

// MockMessageRepository Mock MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

// History moke fetch thread history
func (m *MockMessageRepository) History(ctx context.Context, otherID string, limit, offset int) ([]domain.Message, error) {
	args := m.Called(ctx, otherID, limit, offset)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Message), args.Error(1)
	}
	return nil, args.Error(1)
}

// ConversationExists moke gate check
func (m *MockMessageRepository) ConversationExists(ctx context.Context, otherID string) (*domain.ExistsResult, error) {
	args := m.Called(ctx, otherID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.ExistsResult), args.Error(1)
	}
	return nil, args.Error(1)
}

// Upload moke attachment upload
func (m *MockMessageRepository) Upload(ctx context.Context, fileName, mimeType string, data []byte) (*domain.FileRef, error) {
	args := m.Called(ctx, fileName, mimeType, data)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.FileRef), args.Error(1)
	}
	return nil, args.Error(1)
}

// FakeSocket scriptable ChatSocket; server events are pushed through Inject
// and read back by the client's read loop.
type FakeSocket struct {
	mu      sync.Mutex
	inbox   chan *domain.ServerEvent
	written []domain.ClientEvent

	DialErr  error
	WriteErr error
	closed   bool
}

// NewFakeSocket create fake socket
func NewFakeSocket() *FakeSocket {
	return &FakeSocket{inbox: make(chan *domain.ServerEvent, 16)}
}

// Dial moke dial
func (f *FakeSocket) Dial(ctx context.Context, token string) error {
	return f.DialErr
}

// ReadEvent blocks until Inject or Close.
func (f *FakeSocket) ReadEvent() (*domain.ServerEvent, error) {
	ev, ok := <-f.inbox
	if !ok {
		return nil, errprocess.SetKind(errprocess.KindConnection, "connection closed", nil)
	}
	return ev, nil
}

// WriteEvent records the outgoing event.
func (f *FakeSocket) WriteEvent(ev *domain.ClientEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.WriteErr != nil {
		return f.WriteErr
	}
	f.written = append(f.written, *ev)
	return nil
}

// Close ends the read loop.
func (f *FakeSocket) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.closed {
		f.closed = true
		close(f.inbox)
	}
	return nil
}

// Inject pushes a server event into the read loop.
func (f *FakeSocket) Inject(ev *domain.ServerEvent) {
	f.inbox <- ev
}

// Written snapshot of recorded client events.
func (f *FakeSocket) Written() []domain.ClientEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.ClientEvent, len(f.written))
	copy(out, f.written)
	return out
}

// WrittenOf recorded events filtered by type.
func (f *FakeSocket) WrittenOf(event domain.EventType) []domain.ClientEvent {
	var out []domain.ClientEvent
	for _, ev := range f.Written() {
		if ev.Event == string(event) {
			out = append(out, ev)
		}
	}
	return out
}
