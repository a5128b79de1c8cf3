package testtool

import (
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"

	chatdomain "gigconnect_client/internal/chat/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// FakeBackend 測試用的 in-process GigConnect 後端，只實作 client 會碰到的
// HTTP/WebSocket 合約。Listens on an ephemeral port; never ships.
type FakeBackend struct {
	App   *fiber.App
	URL   string // http://127.0.0.1:<port>
	WSURL string // ws://127.0.0.1:<port>/ws

	// FailUploads 打開後 /api/messages/upload 一律回 500
	FailUploads bool
	// RejectSends 打開後 send_message 一律回 error event
	RejectSends bool

	mu       sync.Mutex
	ln       net.Listener
	messages []chatdomain.Message
	conns    map[string]*wsPeer // user id → live conn
	rooms    map[string]string  // user id → joined room
	nextID   int
}

// wsPeer 序列化對同一條連線的寫入；多個 handler goroutine 會互相轉送
type wsPeer struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (p *wsPeer) writeJSON(v interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.conn.WriteJSON(v)
}

// StartFakeBackend boots the fake server and waits until it accepts.
func StartFakeBackend() (*FakeBackend, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}

	b := &FakeBackend{
		App:   fiber.New(fiber.Config{DisableStartupMessage: true}),
		URL:   "http://" + ln.Addr().String(),
		WSURL: "ws://" + ln.Addr().String() + "/ws",
		ln:    ln,
		conns: make(map[string]*wsPeer),
		rooms: make(map[string]string),
	}
	b.routes()

	go func() {
		_ = b.App.Listener(ln)
	}()
	time.Sleep(100 * time.Millisecond)
	return b, nil
}

// Shutdown stops the server.
func (b *FakeBackend) Shutdown() {
	_ = b.App.Shutdown()
}

// Seed preloads stored history.
func (b *FakeBackend) Seed(messages ...chatdomain.Message) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.messages = append(b.messages, messages...)
}

// Messages snapshot of the stored list.
func (b *FakeBackend) Messages() []chatdomain.Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]chatdomain.Message, len(b.messages))
	copy(out, b.messages)
	return out
}

func (b *FakeBackend) routes() {
	b.App.Post("/api/auth/login", func(c *fiber.Ctx) error {
		var creds struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.BodyParser(&creds); err != nil || creds.Email == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email and password are required"})
		}
		// token 即 user id，夠測試 client 的 bearer 流程
		return c.JSON(fiber.Map{
			"token": creds.Email,
			"user":  fiber.Map{"id": creds.Email, "email": creds.Email, "role": "buyer"},
		})
	})

	b.App.Get("/api/messages/conversation/:other/exists", func(c *fiber.Ctx) error {
		self := bearerUser(c)
		other := c.Params("other")

		b.mu.Lock()
		defer b.mu.Unlock()
		for _, m := range b.messages {
			if (m.SenderID == self && m.ReceiverID == other) || (m.SenderID == other && m.ReceiverID == self) {
				return c.JSON(fiber.Map{"exists": true, "booking_id": m.BookingID})
			}
		}
		return c.JSON(fiber.Map{"exists": false})
	})

	b.App.Get("/api/messages/conversation/:other", func(c *fiber.Ctx) error {
		self := bearerUser(c)
		other := c.Params("other")

		b.mu.Lock()
		defer b.mu.Unlock()
		thread := []chatdomain.Message{}
		for _, m := range b.messages {
			if (m.SenderID == self && m.ReceiverID == other) || (m.SenderID == other && m.ReceiverID == self) {
				thread = append(thread, m)
			}
		}
		return c.JSON(thread)
	})

	b.App.Post("/api/messages/upload", func(c *fiber.Ctx) error {
		if b.FailUploads {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "storage unavailable"})
		}
		file, err := c.FormFile("file")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file field is required"})
		}
		return c.JSON(fiber.Map{
			"url":       "https://cdn.test/" + file.Filename,
			"mime_type": file.Header.Get("Content-Type"),
			"file_name": file.Filename,
		})
	})

	b.App.Get("/ws", websocket.New(b.handleSocket))
}

func bearerUser(c *fiber.Ctx) string {
	auth := c.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) > len(prefix) {
		return auth[len(prefix):]
	}
	return ""
}

func (b *FakeBackend) handleSocket(c *websocket.Conn) {
	userID := c.Query("token")
	if userID == "" {
		_ = c.WriteJSON(fiber.Map{"event": "error", "content": "missing token"})
		_ = c.Close()
		return
	}
	peer := &wsPeer{conn: c}

	b.mu.Lock()
	b.conns[userID] = peer
	b.mu.Unlock()
	_ = peer.writeJSON(fiber.Map{"event": "connected", "user_id": userID})

	defer func() {
		b.mu.Lock()
		if b.conns[userID] == peer {
			delete(b.conns, userID)
			delete(b.rooms, userID)
		}
		b.mu.Unlock()
		_ = c.Close()
	}()

	for {
		_, raw, err := c.ReadMessage()
		if err != nil {
			return
		}
		var ev chatdomain.ClientEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			_ = peer.writeJSON(fiber.Map{"event": "error", "content": "bad payload"})
			continue
		}
		b.dispatch(userID, peer, &ev)
	}
}

func (b *FakeBackend) dispatch(userID string, c *wsPeer, ev *chatdomain.ClientEvent) {
	switch chatdomain.EventType(ev.Event) {
	case chatdomain.EventJoinConversation:
		b.mu.Lock()
		b.rooms[userID] = ev.ConversationID
		b.mu.Unlock()

	case chatdomain.EventSendMessage:
		if b.RejectSends {
			_ = c.writeJSON(fiber.Map{"event": "error", "content": "send rejected", "temp_id": ev.TempID})
			return
		}

		b.mu.Lock()
		b.nextID++
		msg := chatdomain.Message{
			ID:         fmt.Sprintf("m-%d", b.nextID),
			SenderID:   userID,
			ReceiverID: ev.ReceiverID,
			Content:    ev.Content,
			IsFile:     ev.IsFile,
			FileURL:    ev.FileURL,
			MimeType:   ev.MimeType,
			FileName:   ev.FileName,
			BookingID:  ev.BookingID,
			CreatedAt:  time.Now(),
		}
		b.messages = append(b.messages, msg)
		receiver := b.conns[ev.ReceiverID]
		b.mu.Unlock()

		// echo 給 sender 帶 temp_id，轉送給 receiver 不帶
		_ = c.writeJSON(fiber.Map{"event": "new_message", "message": msg, "temp_id": ev.TempID})
		if receiver != nil {
			_ = receiver.writeJSON(fiber.Map{"event": "new_message", "message": msg})
			_ = receiver.writeJSON(fiber.Map{"event": "notification", "content": "New message from " + userID})
		}

	case chatdomain.EventMarkRead:
		now := time.Now()
		b.mu.Lock()
		var sender *wsPeer
		for i := range b.messages {
			if b.messages[i].ID == ev.MessageID && b.messages[i].ReadAt == nil {
				b.messages[i].ReadAt = &now
				sender = b.conns[b.messages[i].SenderID]
			}
		}
		b.mu.Unlock()
		if sender != nil {
			_ = sender.writeJSON(fiber.Map{"event": "messages_read", "message_id": ev.MessageID, "booking_id": ev.BookingID})
		}

	case chatdomain.EventTyping:
		b.mu.Lock()
		receiver := b.conns[ev.ReceiverID]
		b.mu.Unlock()
		if receiver != nil {
			_ = receiver.writeJSON(fiber.Map{"event": "typing", "sender_id": userID})
		}

	default:
		_ = c.writeJSON(fiber.Map{"event": "error", "content": "unknown event " + ev.Event})
	}
}
