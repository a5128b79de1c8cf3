package app

import (
	"testing"
	"time"

	"gigconnect_client/internal/chat/domain"

	"github.com/stretchr/testify/assert"
)

func testKey() domain.ConversationKey {
	return domain.ConversationKey{SelfID: "buyer-1", CounterpartID: "seller-1", BookingID: "bk-1"}
}

func confirmedMsg(id, sender, receiver, content string) domain.Message {
	return domain.Message{
		ID:         id,
		SenderID:   sender,
		ReceiverID: receiver,
		Content:    content,
		CreatedAt:  time.Now(),
		Status:     domain.MessageConfirmed,
	}
}

func TestAppendDeduplicates(t *testing.T) {
	conv := NewConversation(testKey(), nil)

	msg := confirmedMsg("m-1", "seller-1", "buyer-1", "hello")
	assert.True(t, conv.Append(msg))
	assert.False(t, conv.Append(msg), "重複投遞必須是 no-op")

	assert.Equal(t, 1, conv.Len())
	assert.Equal(t, "hello", conv.Messages()[0].Content)
}

func TestAppendKeepsArrivalOrder(t *testing.T) {
	conv := NewConversation(testKey(), nil)
	conv.Append(confirmedMsg("m-1", "buyer-1", "seller-1", "first"))
	conv.Append(confirmedMsg("m-2", "seller-1", "buyer-1", "second"))
	conv.Append(confirmedMsg("m-3", "buyer-1", "seller-1", "third"))

	messages := conv.Messages()
	assert.Equal(t, []string{"m-1", "m-2", "m-3"}, []string{messages[0].ID, messages[1].ID, messages[2].ID})
}

func TestHistorySeededAsConfirmed(t *testing.T) {
	history := []domain.Message{
		{ID: "m-1", SenderID: "buyer-1", ReceiverID: "seller-1", Content: "old"},
	}
	conv := NewConversation(testKey(), history)

	assert.Equal(t, domain.MessageConfirmed, conv.Messages()[0].Status)
}

func TestReconcilePreservesPosition(t *testing.T) {
	conv := NewConversation(testKey(), nil)
	conv.Append(confirmedMsg("m-1", "seller-1", "buyer-1", "before"))

	temp := domain.Message{ID: domain.NewTempID(), SenderID: "buyer-1", ReceiverID: "seller-1", Content: "mine", Status: domain.MessagePending}
	conv.Append(temp)
	conv.Append(confirmedMsg("m-2", "seller-1", "buyer-1", "after"))

	confirmed := confirmedMsg("m-9", "buyer-1", "seller-1", "mine")
	assert.True(t, conv.Reconcile(temp.ID, confirmed))

	messages := conv.Messages()
	assert.Equal(t, 3, conv.Len())
	assert.Equal(t, "m-9", messages[1].ID, "確認後的訊息必須留在原本的位置")
	assert.Equal(t, domain.MessageConfirmed, messages[1].Status)
}

func TestReconcileDropsTempWhenEchoRacedAhead(t *testing.T) {
	conv := NewConversation(testKey(), nil)

	temp := domain.Message{ID: domain.NewTempID(), SenderID: "buyer-1", ReceiverID: "seller-1", Content: "mine", Status: domain.MessagePending}
	conv.Append(temp)

	// 確認訊息先以 Append 進來，之後才配對到 temp id
	confirmed := confirmedMsg("m-9", "buyer-1", "seller-1", "mine")
	conv.Append(confirmed)

	assert.True(t, conv.Reconcile(temp.ID, confirmed))
	assert.Equal(t, 1, conv.Len(), "不能出現同一筆訊息兩份")
	assert.Equal(t, "m-9", conv.Messages()[0].ID)
}

func TestReconcileUnknownTempID(t *testing.T) {
	conv := NewConversation(testKey(), nil)
	assert.False(t, conv.Reconcile("temp-nope", confirmedMsg("m-1", "a", "b", "x")))
}

func TestMarkReadTouchesOnlyMatchingID(t *testing.T) {
	conv := NewConversation(testKey(), nil)
	conv.Append(confirmedMsg("m-1", "buyer-1", "seller-1", "one"))
	conv.Append(confirmedMsg("m-2", "buyer-1", "seller-1", "two"))

	now := time.Now()
	assert.True(t, conv.MarkRead("m-1", now))

	messages := conv.Messages()
	assert.NotNil(t, messages[0].ReadAt)
	assert.Nil(t, messages[1].ReadAt, "只有 id 對上的那筆可以被標記")

	// 已讀過的不再改
	assert.False(t, conv.MarkRead("m-1", now.Add(time.Hour)))
}

func TestMarkSentReadStampsOwnUnreadOnly(t *testing.T) {
	conv := NewConversation(testKey(), nil)
	conv.Append(confirmedMsg("m-1", "buyer-1", "seller-1", "mine"))
	conv.Append(confirmedMsg("m-2", "seller-1", "buyer-1", "theirs"))
	conv.Append(confirmedMsg("m-3", "buyer-1", "seller-1", "mine too"))

	n := conv.MarkSentRead(time.Now())
	assert.Equal(t, 2, n)

	messages := conv.Messages()
	assert.NotNil(t, messages[0].ReadAt)
	assert.Nil(t, messages[1].ReadAt, "對方寄來的不動")
	assert.NotNil(t, messages[2].ReadAt)
}

func TestMarkFailedKeepsEntryVisible(t *testing.T) {
	conv := NewConversation(testKey(), nil)
	temp := domain.Message{ID: domain.NewTempID(), SenderID: "buyer-1", ReceiverID: "seller-1", Content: "lost", Status: domain.MessagePending}
	conv.Append(temp)

	assert.True(t, conv.MarkFailed(temp.ID))
	assert.Equal(t, 1, conv.Len())
	assert.Equal(t, domain.MessageFailed, conv.Messages()[0].Status)
}
