package app

import (
	"sync/atomic"
)

// Liveness ties in-flight work to the lifetime of the consuming view. When the
// view goes away the token is closed and any result that resumes afterwards is
// dropped instead of being applied to stale state. Closing never aborts the
// in-flight collaborator call itself.
type Liveness struct {
	closed atomic.Bool
}

// NewLiveness creates an open liveness token
func NewLiveness() *Liveness {
	return &Liveness{}
}

// Close marks the consuming view as gone
func (l *Liveness) Close() {
	if l != nil {
		l.closed.Store(true)
	}
}

// Alive reports whether results may still be applied. A nil token is treated
// as always alive so call sites without view scoping need no special casing.
func (l *Liveness) Alive() bool {
	return l == nil || !l.closed.Load()
}
