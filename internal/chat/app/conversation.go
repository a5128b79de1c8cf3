package app

import (
	"time"

	"gigconnect_client/internal/chat/domain"
)

// Conversation 每個對話視圖的本地訊息狀態
//
// Holds the ordered message list for one thread. Entries keep their arrival
// order; the only permitted mutations of a stored entry are the read receipt
// and the in-place reconciliation of an optimistic entry. Not safe for
// concurrent use on its own — the owning SyncClient serializes every access,
// the same way a UI event loop would.
type Conversation struct {
	Key domain.ConversationKey

	messages []domain.Message
	index    map[string]int // id → position
}

// NewConversation seed a conversation with fetched history
func NewConversation(key domain.ConversationKey, history []domain.Message) *Conversation {
	c := &Conversation{
		Key:   key,
		index: make(map[string]int, len(history)),
	}
	for _, msg := range history {
		msg.Status = domain.MessageConfirmed
		c.append(msg)
	}
	return c
}

func (c *Conversation) append(msg domain.Message) bool {
	if _, dup := c.index[msg.ID]; dup {
		return false
	}
	c.index[msg.ID] = len(c.messages)
	c.messages = append(c.messages, msg)
	return true
}

// Append adds a message in arrival order, deduplicating by identifier.
// Reprocessing a duplicate delivery leaves length and ordering unchanged.
func (c *Conversation) Append(msg domain.Message) bool {
	return c.append(msg)
}

// Reconcile replaces the optimistic entry carrying tempID with the confirmed
// server message, preserving its list position. When the confirmed id is
// already present (echo raced ahead), the stale temp entry is dropped instead.
func (c *Conversation) Reconcile(tempID string, confirmed domain.Message) bool {
	pos, ok := c.index[tempID]
	if !ok {
		return false
	}
	confirmed.Status = domain.MessageConfirmed

	if _, dup := c.index[confirmed.ID]; dup {
		c.removeAt(pos)
		delete(c.index, tempID)
		return true
	}

	c.messages[pos] = confirmed
	delete(c.index, tempID)
	c.index[confirmed.ID] = pos
	return true
}

func (c *Conversation) removeAt(pos int) {
	c.messages = append(c.messages[:pos], c.messages[pos+1:]...)
	for i := pos; i < len(c.messages); i++ {
		c.index[c.messages[i].ID] = i
	}
}

// MarkRead sets the read timestamp on the entry with the given identifier
// and no other.
func (c *Conversation) MarkRead(messageID string, at time.Time) bool {
	pos, ok := c.index[messageID]
	if !ok {
		return false
	}
	if c.messages[pos].ReadAt != nil {
		return false
	}
	t := at
	c.messages[pos].ReadAt = &t
	return true
}

// MarkSentRead applies a thread-level receipt: every unread message sent by
// the local user is stamped. Returns how many entries changed.
func (c *Conversation) MarkSentRead(at time.Time) int {
	n := 0
	for i := range c.messages {
		if c.messages[i].SenderID == c.Key.SelfID && c.messages[i].ReadAt == nil {
			t := at
			c.messages[i].ReadAt = &t
			n++
		}
	}
	return n
}

// MarkFailed flags an optimistic entry after a send error. The entry stays
// in place so the sender can see what did not go out.
func (c *Conversation) MarkFailed(tempID string) bool {
	pos, ok := c.index[tempID]
	if !ok {
		return false
	}
	c.messages[pos].Status = domain.MessageFailed
	return true
}

// Messages returns a snapshot copy of the list.
func (c *Conversation) Messages() []domain.Message {
	out := make([]domain.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len message count
func (c *Conversation) Len() int {
	return len(c.messages)
}
