// ABOUTME: Helper copies field text to the clipboard and raises a transient copied flag that resets itself.
// ABOUTME: Write failures are logged and swallowed; Close cancels pending resets on teardown.
package clipboard

import (
	"context"
	"sync"
	"time"

	"github.com/2389-research/pxrem/convert"
	"go.uber.org/zap"
)

// DefaultWindow is how long a field stays acknowledged as copied.
const DefaultWindow = 2 * time.Second

// Option configures a Helper.
type Option func(*Helper)

// WithWindow overrides DefaultWindow. Non-positive durations are ignored.
func WithWindow(d time.Duration) Option {
	return func(h *Helper) {
		if d > 0 {
			h.window = d
		}
	}
}

// WithLogger sets the logger used for swallowed write failures.
func WithLogger(l *zap.Logger) Option {
	return func(h *Helper) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithNotify registers a callback invoked whenever a field's copied flag
// changes. It runs outside the helper's lock, on the timer goroutine for resets.
func WithNotify(fn func(field convert.Field, copied bool)) Option {
	return func(h *Helper) {
		h.notify = fn
	}
}

// Helper writes text to a clipboard and manages the copied acknowledgment
// for each field. It is safe for concurrent use.
type Helper struct {
	writer Writer
	logger *zap.Logger
	window time.Duration
	notify func(field convert.Field, copied bool)

	mu     sync.Mutex
	flags  *Flags
	timers map[convert.Field]*time.Timer
}

// NewHelper returns a Helper writing through w.
func NewHelper(w Writer, opts ...Option) *Helper {
	h := &Helper{
		writer: w,
		logger: zap.NewNop(),
		window: DefaultWindow,
		flags:  NewFlags(),
		timers: make(map[convert.Field]*time.Timer),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Window returns how long a copied flag stays raised.
func (h *Helper) Window() time.Duration {
	return h.window
}

// Copy writes text to the clipboard for field. On success the field's flag is
// raised and scheduled to reset after the window, replacing any reset already
// pending for that field. On failure the error is logged and the flag stays
// idle. The result reports whether the copy was acknowledged.
func (h *Helper) Copy(ctx context.Context, field convert.Field, text string) bool {
	if err := h.writer.WriteText(ctx, text); err != nil {
		h.logger.Warn("clipboard write failed",
			zap.Stringer("field", field),
			zap.Error(err),
		)
		return false
	}

	h.mu.Lock()
	tok := h.flags.Raise(field)
	if tok == 0 {
		h.mu.Unlock()
		return false
	}
	if t, ok := h.timers[field]; ok {
		t.Stop()
	}
	h.timers[field] = time.AfterFunc(h.window, func() {
		h.expire(field, tok)
	})
	h.mu.Unlock()

	h.logger.Debug("copied to clipboard", zap.Stringer("field", field), zap.String("text", text))
	h.emit(field, true)
	return true
}

// expire resets field if tok is still current. A reset racing a newer Copy or
// Close loses and does nothing.
func (h *Helper) expire(field convert.Field, tok Token) {
	h.mu.Lock()
	changed := h.flags.Expire(field, tok)
	if changed {
		delete(h.timers, field)
	}
	h.mu.Unlock()

	if changed {
		h.emit(field, false)
	}
}

// Copied reports whether field is currently acknowledged as copied.
func (h *Helper) Copied(field convert.Field) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.flags.Copied(field)
}

// Close stops every pending reset and invalidates outstanding tokens. Copies
// after Close still write to the clipboard but are never acknowledged.
func (h *Helper) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for field, t := range h.timers {
		t.Stop()
		delete(h.timers, field)
	}
	h.flags.Close()
}

func (h *Helper) emit(field convert.Field, copied bool) {
	if h.notify != nil {
		h.notify(field, copied)
	}
}
