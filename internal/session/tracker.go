package session

import (
	"context"
	"errors"
	"sync"
)

// ErrSuperseded is the cancellation cause recorded on a request context when
// a newer request for the same key begins.
var ErrSuperseded = errors.New("superseded by a newer request")

type entry struct {
	seq    uint64
	cancel context.CancelCauseFunc
}

// Tracker issues per-key sequence numbers. It is safe for concurrent use and
// starts no goroutines.
//
// A key is only remembered while a request for it is in flight, so the
// sequence for a key that has gone idle starts again at 1.
type Tracker struct {
	mu      sync.Mutex
	current map[string]*entry
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{
		current: make(map[string]*entry),
	}
}

// Ticket identifies one request within its key's sequence.
type Ticket struct {
	tracker *Tracker
	key     string
	seq     uint64
	entry   *entry
	cancel  context.CancelCauseFunc
	once    sync.Once
}

// Begin starts a new request for key. The returned context is cancelled with
// ErrSuperseded when a later Begin for the same key happens before Done.
//
// An empty key is untracked: the ticket always reports Current and the
// context is only derived from ctx.
func (t *Tracker) Begin(ctx context.Context, key string) (context.Context, *Ticket) {
	reqCtx, cancel := context.WithCancelCause(ctx)
	ticket := &Ticket{tracker: t, key: key, cancel: cancel}

	if key == "" {
		return reqCtx, ticket
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	var seq uint64
	if prev, ok := t.current[key]; ok {
		prev.cancel(ErrSuperseded)
		seq = prev.seq
	}

	ticket.seq = seq + 1
	ticket.entry = &entry{seq: ticket.seq, cancel: cancel}
	t.current[key] = ticket.entry

	return reqCtx, ticket
}

// Sequence returns the ticket's position in its key's sequence, starting at
// 1. Untracked tickets return 0.
func (tk *Ticket) Sequence() uint64 {
	return tk.seq
}

// Current reports whether no later request for the same key has begun. A
// ticket stops being current once it is Done.
func (tk *Ticket) Current() bool {
	if tk.key == "" {
		return true
	}

	tk.tracker.mu.Lock()
	defer tk.tracker.mu.Unlock()
	return tk.tracker.current[tk.key] == tk.entry
}

// Done releases the ticket's context. It is safe to call more than once.
func (tk *Ticket) Done() {
	tk.once.Do(func() {
		tk.cancel(context.Canceled)

		if tk.key == "" {
			return
		}

		tk.tracker.mu.Lock()
		defer tk.tracker.mu.Unlock()
		if tk.tracker.current[tk.key] == tk.entry {
			delete(tk.tracker.current, tk.key)
		}
	})
}

// Active returns the number of keys with a request in flight. It is also the
// number of keys the Tracker remembers.
func (t *Tracker) Active() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.current)
}
