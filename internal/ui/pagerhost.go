package ui

// slotPager adapts the TUI to the navigator's pager interface. A
// terminal has no swipe animation, so AnimateTo and SnapTo both move
// the displayed slot immediately; SnapTo additionally marks the move
// as hard so the view resets its scroll offset.
type slotPager struct {
	slot int
	hard bool
}

func (p *slotPager) SnapTo(slot int) {
	p.slot = slot
	p.hard = true
}

func (p *slotPager) AnimateTo(slot int) {
	p.slot = slot
}

// takeHard reports whether the last move was a snap and clears the
// flag.
func (p *slotPager) takeHard() bool {
	h := p.hard
	p.hard = false
	return h
}
