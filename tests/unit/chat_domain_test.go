package unit

import (
	"strings"
	"testing"

	"gigconnect_client/internal/chat/domain"

	"github.com/stretchr/testify/assert"
)

func TestRoomIDPrefersBooking(t *testing.T) {
	key := domain.ConversationKey{SelfID: "a", CounterpartID: "b", BookingID: "bk-1"}
	assert.Equal(t, "bk-1", key.RoomID())
}

func TestRoomIDDirectPairIsOrderIndependent(t *testing.T) {
	ab := domain.ConversationKey{SelfID: "a", CounterpartID: "b"}
	ba := domain.ConversationKey{SelfID: "b", CounterpartID: "a"}
	assert.Equal(t, ab.RoomID(), ba.RoomID(), "同一對使用者必須得到同一個 room")
}

func TestInvolvesMembershipOnly(t *testing.T) {
	key := domain.ConversationKey{SelfID: "a", CounterpartID: "b"}
	assert.True(t, key.Involves("a", "b"))
	assert.True(t, key.Involves("b", "a"))
	assert.False(t, key.Involves("a", "c"))
}

func TestTempIDShape(t *testing.T) {
	id := domain.NewTempID()
	assert.True(t, strings.HasPrefix(id, domain.TempIDPrefix))
	assert.NotEqual(t, id, domain.NewTempID())

	msg := domain.Message{ID: id}
	assert.True(t, msg.IsTemp())
	assert.False(t, domain.Message{ID: "m-1"}.IsTemp())
}
