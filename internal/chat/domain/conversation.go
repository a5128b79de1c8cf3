package domain

import "strings"

// ConversationKey identifies a thread: the unordered pair of participants,
// or an explicit booking id when the thread belongs to a booking.
type ConversationKey struct {
	SelfID        string
	CounterpartID string
	BookingID     string
}

// RoomID 轉成 server-side room 名稱
//
// Booking threads use the booking id directly; direct threads use the sorted
// participant pair so both ends derive the same room.
func (k ConversationKey) RoomID() string {
	if k.BookingID != "" {
		return k.BookingID
	}
	a, b := k.SelfID, k.CounterpartID
	if b < a {
		a, b = b, a
	}
	return "dm:" + a + ":" + b
}

// Involves reports whether an event between sender and receiver belongs to
// this conversation. Events for any other pair are dropped by the client.
func (k ConversationKey) Involves(senderID, receiverID string) bool {
	return (senderID == k.SelfID && receiverID == k.CounterpartID) ||
		(senderID == k.CounterpartID && receiverID == k.SelfID)
}

// Valid both参与者必須存在
func (k ConversationKey) Valid() bool {
	return strings.TrimSpace(k.SelfID) != "" && strings.TrimSpace(k.CounterpartID) != ""
}
