package collection

import "sync/atomic"

// Token marks a load the caller may lose interest in.
// A nil Token is never superseded.
type Token struct {
	superseded atomic.Bool
}

// NewToken returns a live token
func NewToken() *Token {
	return &Token{}
}

// Supersede tells the loader to drop its result. Safe to call at any time.
func (t *Token) Supersede() {
	if t != nil {
		t.superseded.Store(true)
	}
}

// Superseded reports whether the result should be discarded
func (t *Token) Superseded() bool {
	return t != nil && t.superseded.Load()
}
