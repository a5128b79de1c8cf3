package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEmitterAtMostOncePerWindow(t *testing.T) {
	now := time.Now()
	emitter := NewTypingEmitter(500 * time.Millisecond)
	emitter.now = func() time.Time { return now }

	assert.True(t, emitter.ShouldEmit("room-1", "he"))
	assert.False(t, emitter.ShouldEmit("room-1", "hel"))

	now = now.Add(300 * time.Millisecond)
	assert.False(t, emitter.ShouldEmit("room-1", "hell"), "視窗內第二次不能再發")

	now = now.Add(250 * time.Millisecond)
	assert.True(t, emitter.ShouldEmit("room-1", "hello"), "視窗過了才能再發")
}

func TestEmitterEmptyDraftNeverEmits(t *testing.T) {
	emitter := NewTypingEmitter(500 * time.Millisecond)
	assert.False(t, emitter.ShouldEmit("room-1", ""))
	assert.False(t, emitter.ShouldEmit("room-1", "   "))
}

func TestEmitterWindowsArePerConversation(t *testing.T) {
	now := time.Now()
	emitter := NewTypingEmitter(500 * time.Millisecond)
	emitter.now = func() time.Time { return now }

	assert.True(t, emitter.ShouldEmit("room-1", "a"))
	assert.True(t, emitter.ShouldEmit("room-2", "b"))
}

func TestIndicatorExpiresAfterWindow(t *testing.T) {
	changes := make(chan bool, 4)
	indicator := NewTypingIndicator(50*time.Millisecond, func(active bool) { changes <- active })

	indicator.Signal()
	assert.True(t, indicator.Active())
	assert.True(t, <-changes)

	select {
	case active := <-changes:
		assert.False(t, active)
	case <-time.After(time.Second):
		t.Fatal("typing flag did not expire")
	}
	assert.False(t, indicator.Active())
}

func TestIndicatorSignalRearmsExpiry(t *testing.T) {
	indicator := NewTypingIndicator(80*time.Millisecond, nil)

	indicator.Signal()
	time.Sleep(50 * time.Millisecond)
	indicator.Signal()
	time.Sleep(50 * time.Millisecond)

	// 第二次 Signal 重新計時，此刻還沒過期
	assert.True(t, indicator.Active())

	time.Sleep(100 * time.Millisecond)
	assert.False(t, indicator.Active())
}

func TestIndicatorStopMakesLateFiresNoOps(t *testing.T) {
	fired := make(chan bool, 4)
	indicator := NewTypingIndicator(30*time.Millisecond, func(active bool) { fired <- active })

	indicator.Signal()
	<-fired
	indicator.Stop()

	select {
	case active := <-fired:
		t.Fatalf("callback after Stop: %v", active)
	case <-time.After(100 * time.Millisecond):
	}
	assert.False(t, indicator.Active())
}
