package app

import (
	"strings"
	"sync"
	"time"
)

// DefaultTypingDebounce at most one outgoing typing signal per window
const DefaultTypingDebounce = 500 * time.Millisecond

// DefaultTypingExpiry counterpart typing flag self-clears after this
const DefaultTypingExpiry = 3 * time.Second

// TypingEmitter rate-limits outgoing typing signals, keyed by conversation.
// The current draft is an explicit parameter so nothing closes over stale
// input state.
type TypingEmitter struct {
	mu       sync.Mutex
	window   time.Duration
	lastEmit map[string]time.Time
	now      func() time.Time
}

// NewTypingEmitter create emitter with the given debounce window
func NewTypingEmitter(window time.Duration) *TypingEmitter {
	if window <= 0 {
		window = DefaultTypingDebounce
	}
	return &TypingEmitter{
		window:   window,
		lastEmit: make(map[string]time.Time),
		now:      time.Now,
	}
}

// ShouldEmit reports whether a typing signal may go out now for the given
// conversation. Empty drafts never emit; within the window at most one call
// returns true.
func (t *TypingEmitter) ShouldEmit(conversationID, draft string) bool {
	if strings.TrimSpace(draft) == "" {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	if last, ok := t.lastEmit[conversationID]; ok && now.Sub(last) < t.window {
		return false
	}
	t.lastEmit[conversationID] = now
	return true
}

// TypingIndicator transient "counterpart is typing" flag with a fixed expiry.
// 純本地計時，不需要 server round trip。
type TypingIndicator struct {
	mu       sync.Mutex
	expiry   time.Duration
	active   bool
	stopped  bool
	timer    *time.Timer
	onChange func(active bool)
}

// NewTypingIndicator create indicator; onChange may be nil
func NewTypingIndicator(expiry time.Duration, onChange func(bool)) *TypingIndicator {
	if expiry <= 0 {
		expiry = DefaultTypingExpiry
	}
	return &TypingIndicator{expiry: expiry, onChange: onChange}
}

// Signal marks the counterpart as typing and (re)arms the expiry timer.
func (t *TypingIndicator) Signal() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	changed := !t.active
	t.active = true
	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.expiry, t.expire)
	cb := t.onChange
	t.mu.Unlock()

	if changed && cb != nil {
		cb(true)
	}
}

func (t *TypingIndicator) expire() {
	t.mu.Lock()
	if t.stopped || !t.active {
		t.mu.Unlock()
		return
	}
	t.active = false
	cb := t.onChange
	t.mu.Unlock()

	if cb != nil {
		cb(false)
	}
}

// Active current flag
func (t *TypingIndicator) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Stop detaches the indicator; late timer fires become no-ops.
func (t *TypingIndicator) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	t.active = false
	if t.timer != nil {
		t.timer.Stop()
	}
}
