// ABOUTME: Per-field "copied" acknowledgment state machine with token-based cancellation of pending resets.
// ABOUTME: A reset only applies if its token is still current, so stale timers never clobber newer state.
package clipboard

import "github.com/2389-research/pxrem/convert"

// Token identifies one raise of a copy flag. The zero Token is never issued.
type Token uint64

// Flags tracks which fields are currently acknowledged as copied. Each field
// moves idle -> copied on Raise and back to idle on Expire with the token that
// Raise returned. A second Raise supersedes the first token, and Close
// invalidates every token for good. Flags is not safe for concurrent use.
type Flags struct {
	next   Token
	active map[convert.Field]Token
	closed bool
}

// NewFlags returns flags with every field idle.
func NewFlags() *Flags {
	return &Flags{active: make(map[convert.Field]Token)}
}

// Raise moves field to the copied state and returns the token its reset must
// present. After Close it returns the zero Token and changes nothing.
func (f *Flags) Raise(field convert.Field) Token {
	if f.closed {
		return 0
	}
	f.next++
	f.active[field] = f.next
	return f.next
}

// Expire moves field back to idle if tok is still the field's current token.
// It reports whether the state changed.
func (f *Flags) Expire(field convert.Field, tok Token) bool {
	if f.closed || tok == 0 {
		return false
	}
	if cur, ok := f.active[field]; !ok || cur != tok {
		return false
	}
	delete(f.active, field)
	return true
}

// Copied reports whether field is in the copied state.
func (f *Flags) Copied(field convert.Field) bool {
	_, ok := f.active[field]
	return ok
}

// Close tears the flags down: all fields go idle and outstanding tokens stop
// matching.
func (f *Flags) Close() {
	f.closed = true
	clear(f.active)
}

// Closed reports whether Close has been called.
func (f *Flags) Closed() bool {
	return f.closed
}
