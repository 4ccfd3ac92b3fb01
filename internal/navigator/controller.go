package navigator

import (
	"log"

	"versemate/internal/catalog"
	"versemate/internal/domain"
	"versemate/internal/eventbus"
)

// Phase is the controller's current position in the settle state machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSettling
	PhaseRecentering
)

// PagerHost is the gesture/pager collaborator. The controller issues slot
// movement commands; the host reports settled positions back through
// HandleSettle.
type PagerHost interface {
	// SnapTo moves the pager to a slot with no animation.
	SnapTo(slot int)
	// AnimateTo moves the pager to a slot with the settle animation.
	AnimateTo(slot int)
}

// Outbound receives the resolved identity after every accepted transition,
// debounced before it reaches the host router. Implemented by Bridge.
type Outbound interface {
	ScheduleOutbound(id domain.Identity)
}

// Controller owns one navigator instance's state: the window, the selected
// slot, and the absolute index at the center slot. All methods must be called
// from the UI event loop; the controller is not goroutine-safe by design
// (spec: one single-threaded navigator per pager).
type Controller struct {
	name   string
	bus    eventbus.EventBus
	window *Window

	cat         *catalog.Catalog // nil while the catalog is still loading
	centerIndex int
	selected    int
	phase       Phase

	pending  domain.Identity // requested identity while loading
	pager    PagerHost
	out      Outbound
	feedback func() // haptic stand-in, fired synchronously on settle
}

// New creates a controller with an unbound window. Wire collaborators with
// the setters, then call Init.
func New(name string, windowSize int, bus eventbus.EventBus) *Controller {
	w := NewWindow(windowSize)
	return &Controller{
		name:     name,
		bus:      bus,
		window:   w,
		selected: w.Center(),
	}
}

// SetPager wires the gesture/pager host.
func (c *Controller) SetPager(p PagerHost) { c.pager = p }

// SetOutbound wires the sync bridge's outbound path.
func (c *Controller) SetOutbound(o Outbound) { c.out = o }

// SetFeedback wires the settle feedback callback. It fires synchronously on
// every accepted settle, decoupled from the debounced route update, so
// perceived responsiveness never waits on the host.
func (c *Controller) SetFeedback(fn func()) { c.feedback = fn }

// Init positions the navigator on an initial identity. A nil catalog puts the
// controller in single-slot loading mode: the initial identity is displayed
// and all windowing math is deferred until SetCatalog.
func (c *Controller) Init(initial domain.Identity, cat *catalog.Catalog) {
	c.pending = initial
	if cat == nil {
		c.cat = nil
		return
	}
	c.cat = cat
	idx, ok := cat.IndexOf(initial)
	if !ok {
		log.Printf("navigator %s: initial identity %v not in catalog, starting at 0", c.name, initial)
		idx = 0
	}
	c.recenter(idx, false)
}

// SetCatalog upgrades a loading navigator (or swaps the catalog snapshot),
// re-deriving the center index from the identity currently displayed so the
// visible page does not change.
func (c *Controller) SetCatalog(cat *catalog.Catalog) {
	if cat == nil {
		return
	}
	current := c.pending
	if c.cat != nil {
		if id, ok := c.VisibleIdentity(); ok {
			current = id
		}
	}
	c.cat = cat
	idx, ok := cat.IndexOf(current)
	if !ok {
		idx = 0
	}
	c.recenter(idx, false)
}

// Loading reports whether the controller is in single-slot loading mode.
func (c *Controller) Loading() bool { return c.cat == nil }

// Catalog returns the active catalog snapshot, nil while loading.
func (c *Controller) Catalog() *catalog.Catalog { return c.cat }

// Window returns the slot window.
func (c *Controller) Window() *Window { return c.window }

// Selected returns the selected slot position.
func (c *Controller) Selected() int { return c.selected }

// CenterIndex returns the absolute index bound to the center slot.
func (c *Controller) CenterIndex() int { return c.centerIndex }

// Phase returns the state machine phase. Outside a transition it is always
// PhaseIdle; the other phases are visible to re-entrant collaborators only.
func (c *Controller) Phase() Phase { return c.phase }

// VisibleIndex returns the absolute index at the selected slot.
func (c *Controller) VisibleIndex() int {
	if c.cat == nil {
		return 0
	}
	return c.cat.Normalize(c.centerIndex + (c.selected - c.window.Center()))
}

// VisibleIdentity returns the identity the user is looking at. In loading
// mode that is the initially requested identity.
func (c *Controller) VisibleIdentity() (domain.Identity, bool) {
	if c.cat == nil {
		return c.pending, !c.pending.Zero()
	}
	return c.cat.Resolve(c.VisibleIndex())
}

// HandleSettle processes a physically settled slot position reported by the
// gesture layer. This is the swipe-settle transition of the state machine:
// boundary swipes snap back, interior settles just move the selection, and
// edge settles shift the window's coordinate origin without changing what is
// on screen.
func (c *Controller) HandleSettle(p int) {
	if c.cat == nil || p < 0 || p >= c.window.Size() {
		return
	}
	center := c.window.Center()
	if p == c.selected {
		// Settling on the slot already selected is the pager echoing a
		// snap we issued; nothing changed.
		c.phase = PhaseIdle
		return
	}
	c.phase = PhaseSettling
	target := c.centerIndex + (p - center)

	if _, ok := c.cat.Resolve(target); !ok {
		// Boundary rejection: the user cannot swipe past the first or last
		// chapter. Snap back with no animation, no index change, no sync.
		c.selected = center
		c.phase = PhaseIdle
		if c.pager != nil {
			c.pager.SnapTo(center)
		}
		c.publish(domain.BoundaryRejectedEvent{Navigator: c.name, Slot: p})
		return
	}

	c.selected = p
	if c.feedback != nil {
		c.feedback()
	}

	if p == 0 || p == c.window.Size()-1 {
		// True edge: shift the coordinate origin. The page the user is
		// looking at keeps its bound identity, just at the center slot now.
		c.recenter(target, false)
	} else {
		// Interior settle: selection moves, center stays. Re-centering only
		// on edges is what avoids every-other-swipe jank.
		c.phase = PhaseIdle
	}

	id, ok := c.VisibleIdentity()
	if !ok {
		return
	}
	c.publish(domain.PageSettledEvent{Navigator: c.name, Identity: id, Slot: c.selected})
	if c.out != nil {
		c.out.ScheduleOutbound(id)
	}
}

// StepNext advances one page, as a next-chapter button would.
func (c *Controller) StepNext() { c.step(1) }

// StepPrevious goes back one page.
func (c *Controller) StepPrevious() { c.step(-1) }

// step moves the selection relative to its current value, not a hardcoded
// center, so it composes after manual swipes. A step outside the window is a
// silent no-op on linear catalogs and wraps the underlying index on circular
// ones.
func (c *Controller) step(d int) {
	if c.cat == nil {
		return
	}
	p := c.selected + d
	if p < 0 || p >= c.window.Size() {
		if !c.cat.Circular() {
			return
		}
		c.recenter(c.VisibleIndex()+d, false)
		if id, ok := c.VisibleIdentity(); ok {
			c.publish(domain.PageSettledEvent{Navigator: c.name, Identity: id, Slot: c.selected})
			if c.out != nil {
				c.out.ScheduleOutbound(id)
			}
		}
		return
	}
	if c.pager != nil {
		c.pager.AnimateTo(p)
	}
	c.HandleSettle(p)
}

// ExternalJump applies an identity change that originated outside the
// navigator (deep link, bookmark, back button). Already-visible identities
// are a no-op, which is half of the snap-back loop suppression; everything
// else is a hard jump that resets page scroll.
func (c *Controller) ExternalJump(id domain.Identity) {
	if c.cat == nil {
		c.pending = id
		return
	}
	idx, ok := c.cat.IndexOf(id)
	if !ok {
		// Unknown group or offset: never throw into the render path.
		log.Printf("navigator %s: ignoring jump to unknown identity %v", c.name, id)
		return
	}
	if c.cat.Normalize(idx) == c.VisibleIndex() {
		return
	}
	c.recenter(idx, true)
}

// recenter shifts the window's coordinate origin to a new center index and
// synchronously resets the selection to the center slot with no animation.
// hard marks jumps whose page renderers must reset scroll; a soft edge
// re-center must not, since visually nothing moved.
func (c *Controller) recenter(target int, hard bool) {
	c.phase = PhaseRecentering
	c.centerIndex = c.cat.Normalize(target)
	c.window.Rebind(c.centerIndex, c.cat)
	c.selected = c.window.Center()
	if c.pager != nil {
		c.pager.SnapTo(c.selected)
	}
	c.phase = PhaseIdle
	c.publish(domain.RecenteredEvent{Navigator: c.name, CenterIndex: c.centerIndex, HardJump: hard})
}

func (c *Controller) publish(e domain.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(e)
	}
}
