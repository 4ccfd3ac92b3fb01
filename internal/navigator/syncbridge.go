package navigator

import (
	"sync"
	"time"

	"versemate/internal/domain"
)

// IdentitySink is the host router's write side. The bridge publishes the
// final identity of a swipe run here after the debounce delay.
type IdentitySink interface {
	SetCurrentIdentity(id domain.Identity)
}

// Bridge reconciles the controller's internal position with the host-owned
// current identity, in both directions.
//
// Outbound transitions restart a single timer, so rapid successive swipes
// coalesce into one notification carrying only the final identity. The delay
// exists to let the pager's settle animation finish before the host reacts,
// preventing two overlapping animations.
//
// Inbound updates are dropped while an outbound timer is pending (our own
// change echoing back early) and when they match the last processed identity
// (our own change echoing back late). Without both guards an outbound
// notification would round-trip into a redundant re-center: the snap-back
// defect this design exists to prevent.
type Bridge struct {
	mu     sync.Mutex
	ctrl   *Controller
	sink   IdentitySink
	delay  time.Duration
	timer  *time.Timer
	queued domain.Identity
	armed  bool
	last   domain.Identity
	seen   bool
	closed bool
}

// NewBridge wires a controller to the host router write side. The delay is
// on the order of tens of milliseconds; it comes from config so slow hosts
// can stretch it.
func NewBridge(ctrl *Controller, sink IdentitySink, delay time.Duration) *Bridge {
	return &Bridge{ctrl: ctrl, sink: sink, delay: delay}
}

// ScheduleOutbound starts or restarts the debounce timer for an identity.
// Only the latest pending identity is ever published.
func (b *Bridge) ScheduleOutbound(id domain.Identity) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.queued = id
	b.armed = true
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.delay, b.fire)
}

func (b *Bridge) fire() {
	b.mu.Lock()
	if b.closed || !b.armed {
		b.mu.Unlock()
		return
	}
	id := b.queued
	b.armed = false
	b.last = id
	b.seen = true
	sink := b.sink
	b.mu.Unlock()

	// The sink publishes on the event bus; call it outside the lock so the
	// echo cannot deadlock against HandleInbound.
	if sink != nil {
		sink.SetCurrentIdentity(id)
	}
}

// HandleInbound processes a host-owned identity change. Suppressed echoes
// and already-visible identities produce no controller transition; anything
// else is delivered as an external jump.
func (b *Bridge) HandleInbound(id domain.Identity) {
	b.mu.Lock()
	if b.closed || b.armed {
		// A pending timer means we originated the change now echoing back.
		b.mu.Unlock()
		return
	}
	if b.seen && id == b.last {
		b.mu.Unlock()
		return
	}
	b.last = id
	b.seen = true
	ctrl := b.ctrl
	b.mu.Unlock()

	// ExternalJump no-ops when the identity is already visible at the
	// selected slot, wrap-aware.
	ctrl.ExternalJump(id)
}

// Pending reports whether an outbound notification is waiting on the timer.
func (b *Bridge) Pending() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.armed
}

// Close cancels any pending timer. Must be called when the navigator
// unmounts so the callback never runs against a destroyed instance.
func (b *Bridge) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.armed = false
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
