package domain

import (
	"fmt"
	"strings"
	"time"
)

// TicketPriority low | medium | high
type TicketPriority string

const (
	// PriorityLow 低優先
	PriorityLow TicketPriority = "low"
	// PriorityMedium 中優先
	PriorityMedium TicketPriority = "medium"
	// PriorityHigh 高優先
	PriorityHigh TicketPriority = "high"
)

// TicketStatus open | resolved | closed
type TicketStatus string

const (
	// TicketOpen 尚未處理
	TicketOpen TicketStatus = "open"
	// TicketResolved 使用者自行標記解決
	TicketResolved TicketStatus = "resolved"
	// TicketClosed 管理員關閉
	TicketClosed TicketStatus = "closed"
)

// Ticket support ticket
type Ticket struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	Subject     string         `json:"subject"`
	Description string         `json:"description"`
	Priority    TicketPriority `json:"priority"`
	Status      TicketStatus   `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Reply one message inside a ticket thread
type Reply struct {
	ID        string    `json:"id"`
	TicketID  string    `json:"ticket_id"`
	AuthorID  string    `json:"author_id"`
	IsStaff   bool      `json:"is_staff"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Thread ticket plus its replies in creation order
type Thread struct {
	Ticket  Ticket  `json:"ticket"`
	Replies []Reply `json:"replies"`
}

// CreateParams new ticket input
type CreateParams struct {
	Subject     string         `json:"subject"`
	Description string         `json:"description"`
	Priority    TicketPriority `json:"priority"`
}

// Validate 與後端相同的欄位規則，先在本地擋掉
func (p *CreateParams) Validate() error {
	if len(strings.TrimSpace(p.Subject)) < 5 {
		return fmt.Errorf("subject must be at least 5 characters")
	}
	if len(strings.TrimSpace(p.Description)) < 20 {
		return fmt.Errorf("description must be at least 20 characters")
	}
	switch p.Priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
	default:
		return fmt.Errorf("priority must be low, medium or high")
	}
	return nil
}

// CanResolve 只有 open 的票可以由使用者標記解決
func (t *Ticket) CanResolve() bool {
	return t.Status == TicketOpen
}
