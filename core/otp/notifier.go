// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.

package otp

import "time"

// DefaultDebounce is the quiescence window before a burst of cell mutations
// is evaluated.
const DefaultDebounce = 100 * time.Millisecond

// Mode selects when the notifier reports a change to the host.
type Mode int

const (
	// EmitOnValidityChange reports only when aggregate validity flips.
	EmitOnValidityChange Mode = iota
	// EmitOnEveryChange reports every distinct value.
	EmitOnEveryChange
)

// ModeFor maps the host's emitWhenValidityChanged switch to a Mode.
func ModeFor(emitWhenValidityChanged bool) Mode {
	if emitWhenValidityChanged {
		return EmitOnValidityChange
	}
	return EmitOnEveryChange
}

func (m Mode) String() string {
	switch m {
	case EmitOnValidityChange:
		return "validity-change"
	case EmitOnEveryChange:
		return "every-change"
	default:
		return "unknown"
	}
}

// Change is what the host receives.
type Change struct {
	Value string
	Valid bool
}

// Ticket identifies one pushed mutation. The debounce timer hands it back to
// Settle; only the newest ticket of the live subscription drains the queue.
type Ticket struct {
	generation uint64
	seq        uint64
}

// Debouncer is a single-slot mutation queue. Every push replaces the queued
// snapshot and invalidates earlier tickets.
type Debouncer struct {
	generation uint64
	seq        uint64
	pending    Snapshot
	queued     bool
	live       bool
}

// Reset releases the current subscription and opens a fresh one.
func (d *Debouncer) Reset() {
	d.generation++
	d.seq, d.queued, d.live = 0, false, true
}

// Release drops the subscription; pushes are refused until the next Reset.
func (d *Debouncer) Release() {
	d.generation++
	d.seq, d.queued, d.live = 0, false, false
}

func (d *Debouncer) Push(s Snapshot) (Ticket, bool) {
	if !d.live {
		return Ticket{}, false
	}
	d.seq++
	d.pending, d.queued = s, true
	return Ticket{generation: d.generation, seq: d.seq}, true
}

// Drain returns the queued snapshot if t is the newest ticket of the live
// subscription.
func (d *Debouncer) Drain(t Ticket) (Snapshot, bool) {
	if !d.live || !d.queued || t.generation != d.generation || t.seq != d.seq {
		return Snapshot{}, false
	}
	d.queued = false
	return d.pending, true
}

type filterState struct {
	delivered bool
	last      string
	lastValid bool
}

// filter deduplicates by value and applies the emission policy. lastValid
// follows every evaluated snapshot, emitted or not.
func filter(st filterState, s Snapshot, mode Mode) (filterState, Change, bool) {
	if st.delivered && st.last == s.Value {
		return st, Change{}, false
	}
	st.delivered, st.last = true, s.Value

	emit := mode == EmitOnEveryChange || st.lastValid != s.Valid
	st.lastValid = s.Valid
	return st, Change{Value: s.Value, Valid: s.Valid}, emit
}

// Notifier turns cell mutations into host notifications: debounce, project
// to the aggregate value, dedupe, then the edge policy of its Mode.
type Notifier struct {
	mode  Mode
	queue Debouncer
	state filterState
}

// NewNotifier returns a notifier with a live subscription.
func NewNotifier(mode Mode) *Notifier {
	n := &Notifier{mode: mode}
	n.Subscribe()
	return n
}

func (n *Notifier) Mode() Mode        { return n.mode }
func (n *Notifier) SetMode(mode Mode) { n.mode = mode }

// LastValid is the validity seen by the most recent evaluation.
func (n *Notifier) LastValid() bool { return n.state.lastValid }

// Subscribe replaces the current subscription. Pending mutations of the old
// one are dropped and dedupe starts over; the validity edge is kept so a
// reconfiguration away from a valid code is still reported.
func (n *Notifier) Subscribe() {
	n.queue.Reset()
	n.state.delivered, n.state.last = false, ""
}

// Unsubscribe releases the subscription for good.
func (n *Notifier) Unsubscribe() {
	n.queue.Release()
}

func (n *Notifier) Push(s Snapshot) (Ticket, bool) {
	return n.queue.Push(s)
}

// Settle evaluates the queued snapshot once its debounce window elapsed.
func (n *Notifier) Settle(t Ticket) (Change, bool) {
	s, ok := n.queue.Drain(t)
	if !ok {
		return Change{}, false
	}

	var (
		change Change
		emit   bool
	)
	n.state, change, emit = filter(n.state, s, n.mode)
	return change, emit
}
