package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
	"time"

	"gigconnect_client/internal/chat/domain"
	errprocess "gigconnect_client/pkg/err"
	"gigconnect_client/pkg/logger"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Connection definition dial retry setting
type Connection struct {
	RetryCount    int
	RetryInterval time.Duration
}

// ChatSocket 定義 duplex connection 行為
type ChatSocket interface {
	// Dial opens the connection, passing the bearer credential at handshake
	// time. Retries up to the configured bounded count.
	Dial(ctx context.Context, token string) error
	ReadEvent() (*domain.ServerEvent, error)
	WriteEvent(ev *domain.ClientEvent) error
	Close() error
}

// WebsocketSocket ChatSocket over gorilla websocket
type WebsocketSocket struct {
	rawURL string
	retry  Connection

	mu      sync.Mutex // guards conn and writes
	conn    *websocket.Conn
	dialer  *websocket.Dialer
}

// NewWebsocketSocket create websocket transport
func NewWebsocketSocket(rawURL string, retry Connection) *WebsocketSocket {
	if retry.RetryCount <= 0 {
		retry.RetryCount = 3
	}
	if retry.RetryInterval <= 0 {
		retry.RetryInterval = time.Second
	}
	return &WebsocketSocket{
		rawURL: rawURL,
		retry:  retry,
		dialer: websocket.DefaultDialer,
	}
}

// Dial 建立連線，失敗時依設定重試
func (s *WebsocketSocket) Dial(ctx context.Context, token string) error {
	u, err := url.Parse(s.rawURL)
	if err != nil {
		return errprocess.SetKind(errprocess.KindConnection, "parse socket url", err)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()

	var lastErr error
	for attempt := 1; attempt <= s.retry.RetryCount; attempt++ {
		conn, _, err := s.dialer.DialContext(ctx, u.String(), nil)
		if err == nil {
			s.mu.Lock()
			s.conn = conn
			s.mu.Unlock()
			logger.Log.Info("websocket connected", zap.String("url", s.rawURL), zap.Int("attempt", attempt))
			return nil
		}
		lastErr = err
		logger.Log.Warn("websocket dial failed",
			zap.Int("attempt", attempt),
			zap.Int("max", s.retry.RetryCount),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return errprocess.SetKind(errprocess.KindConnection, "dial cancelled", ctx.Err())
		case <-time.After(s.retry.RetryInterval):
		}
	}
	return errprocess.SetKind(errprocess.KindConnection,
		fmt.Sprintf("connection failed after %d attempts", s.retry.RetryCount), lastErr)
}

// ReadEvent 讀取下一個 server event (blocking)
func (s *WebsocketSocket) ReadEvent() (*domain.ServerEvent, error) {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn == nil {
		return nil, errprocess.SetKind(errprocess.KindConnection, "socket not connected", nil)
	}

	_, raw, err := conn.ReadMessage()
	if err != nil {
		if websocket.IsCloseError(err,
			websocket.CloseNormalClosure,
			websocket.CloseGoingAway,
			websocket.CloseNoStatusReceived,
		) {
			return nil, &errprocess.ClientError{Kind: errprocess.KindConnection, Msg: "connection closed", Err: err}
		}
		return nil, &errprocess.ClientError{Kind: errprocess.KindConnection, Msg: "websocket read", Err: err}
	}

	var ev domain.ServerEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		// 不認識的 payload 不算致命，留給上層跳過
		logger.Log.Warn("websocket decode failed", zap.Error(err))
		return &domain.ServerEvent{Event: string(domain.EventError), Content: "undecodable event"}, nil
	}
	return &ev, nil
}

// WriteEvent 發送 client event
func (s *WebsocketSocket) WriteEvent(ev *domain.ClientEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return errprocess.SetKind(errprocess.KindConnection, "socket not connected", nil)
	}

	b, err := json.Marshal(ev)
	if err != nil {
		return errprocess.SetKind(errprocess.KindValidation, "encode event", err)
	}
	if err := s.conn.WriteMessage(websocket.TextMessage, b); err != nil {
		return &errprocess.ClientError{Kind: errprocess.KindConnection, Msg: "websocket write", Err: err}
	}
	return nil
}

// Close 盡力關閉連線；view unmount 時呼叫，失敗不致命
func (s *WebsocketSocket) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return nil
	}
	if err := s.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "client closing"),
		time.Now().Add(time.Second),
	); err != nil {
		logger.Log.Infof("close message not delivered:", err)
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}
