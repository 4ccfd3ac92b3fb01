// Package navigator implements the sliding-window pager core: a fixed set of
// slots bound to catalog identities, the settle/re-center state machine, and
// the debounced bridge that keeps the window in sync with the host router.
package navigator

import (
	"fmt"

	"versemate/internal/catalog"
	"versemate/internal/domain"
)

// Slot is one of the window's fixed positions. Slots are allocated once and
// never reallocated; only the bound identity changes, which is what makes
// re-centering cheap and flicker-free.
type Slot struct {
	Position int
	Key      string // stable key for the life of the window: "slot-0"...
	Identity domain.Identity
	Index    int  // absolute index the slot is bound to
	Bound    bool // false: boundary placeholder past a linear catalog edge
}

// Window holds WindowSize slots centered on an absolute index.
type Window struct {
	size   int
	center int
	slots  []Slot
}

// NewWindow allocates a window. Size must be odd so a center slot exists;
// even or too-small sizes are normalized rather than rejected since they can
// only come from a hand-edited config file.
func NewWindow(size int) *Window {
	if size < 3 {
		size = 3
	}
	if size%2 == 0 {
		size++
	}
	w := &Window{
		size:   size,
		center: size / 2,
		slots:  make([]Slot, size),
	}
	for p := range w.slots {
		w.slots[p] = Slot{Position: p, Key: fmt.Sprintf("slot-%d", p)}
	}
	return w
}

// Size returns the slot count.
func (w *Window) Size() int { return w.size }

// Center returns the center slot position, floor(size/2).
func (w *Window) Center() int { return w.center }

// Slots returns the slot array in position order.
func (w *Window) Slots() []Slot { return w.slots }

// Slot returns the slot at a position.
func (w *Window) Slot(p int) Slot { return w.slots[p] }

// Rebind recomputes every slot's identity around a new center index. Linear
// catalogs leave out-of-range slots unbound (boundary placeholders) instead
// of clamping, so an edge never shows the same chapter twice.
func (w *Window) Rebind(centerIndex int, cat *catalog.Catalog) {
	for p := range w.slots {
		target := centerIndex + (p - w.center)
		id, ok := cat.Resolve(target)
		w.slots[p].Index = target
		w.slots[p].Identity = id
		w.slots[p].Bound = ok
	}
}

// Hot reports whether a slot must render full content: the selected slot and
// its immediate neighbors. Cold slots defer expensive rendering.
func Hot(slotPos, selected int) bool {
	d := slotPos - selected
	return d >= -1 && d <= 1
}
