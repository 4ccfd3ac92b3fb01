package navigator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"versemate/internal/domain"
)

// fakePager records the movement commands the controller issues.
type fakePager struct {
	snaps    []int
	animates []int
}

func (f *fakePager) SnapTo(slot int)    { f.snaps = append(f.snaps, slot) }
func (f *fakePager) AnimateTo(slot int) { f.animates = append(f.animates, slot) }

// fakeOutbound records debounce scheduling without any timer.
type fakeOutbound struct {
	scheduled []domain.Identity
}

func (f *fakeOutbound) ScheduleOutbound(id domain.Identity) {
	f.scheduled = append(f.scheduled, id)
}

func newTestController(t *testing.T, size int, circular bool) (*Controller, *fakePager, *fakeOutbound) {
	t.Helper()
	ctrl := New("test", size, nil)
	pager := &fakePager{}
	out := &fakeOutbound{}
	ctrl.SetPager(pager)
	ctrl.SetOutbound(out)
	ctrl.Init(domain.Identity{Group: "1", Offset: 3}, testCatalog(t, circular))
	pager.snaps = nil // Init re-centers once; tests care about what follows
	return ctrl, pager, out
}

func TestInitCentersOnInitialIdentity(t *testing.T) {
	ctrl, _, _ := newTestController(t, 5, false)

	assert.Equal(t, 2, ctrl.Selected())
	assert.Equal(t, 2, ctrl.CenterIndex())
	id, ok := ctrl.VisibleIdentity()
	require.True(t, ok)
	assert.Equal(t, domain.Identity{Group: "1", Offset: 3}, id)
}

func TestInteriorSettleDoesNotRecenter(t *testing.T) {
	ctrl, _, out := newTestController(t, 5, false)
	center := ctrl.CenterIndex()

	ctrl.HandleSettle(3)

	assert.Equal(t, center, ctrl.CenterIndex(), "no-jank: interior settles keep the coordinate origin")
	assert.Equal(t, 3, ctrl.Selected())
	id, ok := ctrl.VisibleIdentity()
	require.True(t, ok)
	assert.Equal(t, domain.Identity{Group: "1", Offset: 4}, id)
	require.Len(t, out.scheduled, 1)
	assert.Equal(t, id, out.scheduled[0])
}

func TestEdgeSettleRecentersKeepingVisibleIdentity(t *testing.T) {
	ctrl, pager, _ := newTestController(t, 5, false)

	wantID := ctrl.Window().Slot(4).Identity
	ctrl.HandleSettle(4)

	assert.Equal(t, 2, ctrl.Selected(), "selection resets to center synchronously")
	id, ok := ctrl.VisibleIdentity()
	require.True(t, ok)
	assert.Equal(t, wantID, id, "the page on screen keeps its identity across a re-center")
	assert.Equal(t, []int{2}, pager.snaps, "reset is a snap, never animated")
}

func TestSettleBackToCenterSyncs(t *testing.T) {
	ctrl, _, out := newTestController(t, 5, false)

	ctrl.HandleSettle(3)
	ctrl.HandleSettle(2) // swipe back to where we started

	assert.Equal(t, 2, ctrl.Selected())
	id, ok := ctrl.VisibleIdentity()
	require.True(t, ok)
	assert.Equal(t, domain.Identity{Group: "1", Offset: 3}, id)
	assert.Len(t, out.scheduled, 2, "the swipe back is a transition like any other")

	// A repeated settle on the selected slot is the pager echoing us.
	ctrl.HandleSettle(2)
	assert.Len(t, out.scheduled, 2)
}

func TestRecenterOnlyAtTrueEdges(t *testing.T) {
	// Window size 7, center slot 3: settling at 4 then 5 must not re-center;
	// only reaching slot 6 shifts the origin.
	ctrl := New("test", 7, nil)
	ctrl.Init(domain.Identity{Group: "1", Offset: 4}, testCatalog(t, false))
	origin := ctrl.CenterIndex()

	ctrl.HandleSettle(4)
	assert.Equal(t, origin, ctrl.CenterIndex())
	ctrl.HandleSettle(5)
	assert.Equal(t, origin, ctrl.CenterIndex())
	ctrl.HandleSettle(6)
	assert.NotEqual(t, origin, ctrl.CenterIndex())
	assert.Equal(t, 3, ctrl.Selected())
}

func TestBoundaryRejectionSnapsBack(t *testing.T) {
	ctrl := New("test", 5, nil)
	pager := &fakePager{}
	out := &fakeOutbound{}
	ctrl.SetPager(pager)
	ctrl.SetOutbound(out)
	ctrl.Init(domain.Identity{Group: "1", Offset: 1}, testCatalog(t, false))
	pager.snaps = nil

	ctrl.HandleSettle(1) // one slot before the first chapter

	assert.Equal(t, 2, ctrl.Selected())
	assert.Equal(t, 0, ctrl.CenterIndex(), "boundary snap-back never moves the index")
	assert.Empty(t, out.scheduled, "snap-backs are never synced to the host")
	assert.Equal(t, []int{2}, pager.snaps)
}

func TestCircularSettleWrapsInsteadOfRejecting(t *testing.T) {
	ctrl := New("test", 5, nil)
	out := &fakeOutbound{}
	ctrl.SetOutbound(out)
	ctrl.Init(domain.Identity{Group: "1", Offset: 1}, testCatalog(t, true))

	ctrl.HandleSettle(1)

	id, ok := ctrl.VisibleIdentity()
	require.True(t, ok)
	assert.Equal(t, domain.Identity{Group: "2", Offset: 3}, id, "wraps to the last unit")
	assert.Len(t, out.scheduled, 1)
}

func TestFeedbackFiresOnSettleNotOnSnapBack(t *testing.T) {
	ctrl := New("test", 5, nil)
	fired := 0
	ctrl.SetFeedback(func() { fired++ })
	ctrl.Init(domain.Identity{Group: "1", Offset: 1}, testCatalog(t, false))

	ctrl.HandleSettle(1) // boundary snap-back
	assert.Equal(t, 0, fired)

	ctrl.HandleSettle(3) // accepted settle
	assert.Equal(t, 1, fired)
}

func TestStepComposesWithCurrentSelection(t *testing.T) {
	ctrl, pager, _ := newTestController(t, 7, false)

	ctrl.HandleSettle(4) // manual swipe first
	ctrl.StepNext()      // must move from 4 to 5, not from center

	assert.Equal(t, 5, ctrl.Selected())
	assert.Contains(t, pager.animates, 5)
	id, ok := ctrl.VisibleIdentity()
	require.True(t, ok)
	assert.Equal(t, domain.Identity{Group: "1", Offset: 5}, id)
}

func TestStepAtLinearEndIsNoOp(t *testing.T) {
	ctrl := New("test", 5, nil)
	out := &fakeOutbound{}
	ctrl.SetOutbound(out)
	ctrl.Init(domain.Identity{Group: "2", Offset: 3}, testCatalog(t, false))

	before, _ := ctrl.VisibleIdentity()
	ctrl.StepNext() // edge slot would resolve past the end: snap-back path
	after, _ := ctrl.VisibleIdentity()

	assert.Equal(t, before, after, "already at the edge is a legitimate state, not a fault")
	assert.Empty(t, out.scheduled)
}

func TestStepCircularWrapsAround(t *testing.T) {
	ctrl := New("test", 5, nil)
	ctrl.Init(domain.Identity{Group: "2", Offset: 3}, testCatalog(t, true))

	ctrl.StepNext()

	id, ok := ctrl.VisibleIdentity()
	require.True(t, ok)
	assert.Equal(t, domain.Identity{Group: "1", Offset: 1}, id)
}

func TestExternalJumpRecentersHard(t *testing.T) {
	ctrl, pager, out := newTestController(t, 5, false)
	pager.snaps = nil

	ctrl.ExternalJump(domain.Identity{Group: "2", Offset: 2})

	assert.Equal(t, 2, ctrl.Selected())
	id, ok := ctrl.VisibleIdentity()
	require.True(t, ok)
	assert.Equal(t, domain.Identity{Group: "2", Offset: 2}, id)
	assert.Equal(t, []int{2}, pager.snaps)
	assert.Empty(t, out.scheduled, "external changes are never echoed back outbound")
}

func TestExternalJumpToVisibleIdentityIsNoOp(t *testing.T) {
	ctrl, pager, _ := newTestController(t, 5, false)
	pager.snaps = nil
	visible, _ := ctrl.VisibleIdentity()

	ctrl.ExternalJump(visible)

	assert.Empty(t, pager.snaps, "jump to what is already on screen must not re-center")
}

func TestExternalJumpUnknownGroupIgnored(t *testing.T) {
	ctrl, _, _ := newTestController(t, 5, false)
	before, _ := ctrl.VisibleIdentity()

	ctrl.ExternalJump(domain.Identity{Group: "99", Offset: 1})

	after, _ := ctrl.VisibleIdentity()
	assert.Equal(t, before, after)
}

func TestLoadingModeDefersWindowing(t *testing.T) {
	ctrl := New("test", 5, nil)
	out := &fakeOutbound{}
	ctrl.SetOutbound(out)
	initial := domain.Identity{Group: "1", Offset: 4}
	ctrl.Init(initial, nil)

	assert.True(t, ctrl.Loading())
	id, ok := ctrl.VisibleIdentity()
	require.True(t, ok)
	assert.Equal(t, initial, id, "single placeholder page shows the requested identity")

	ctrl.HandleSettle(4)
	ctrl.StepNext()
	assert.Empty(t, out.scheduled, "no transitions while the catalog loads")

	// Jumps while loading replace the pending identity.
	ctrl.ExternalJump(domain.Identity{Group: "2", Offset: 1})

	ctrl.SetCatalog(testCatalog(t, false))
	assert.False(t, ctrl.Loading())
	id, ok = ctrl.VisibleIdentity()
	require.True(t, ok)
	assert.Equal(t, domain.Identity{Group: "2", Offset: 1}, id)
	assert.Equal(t, 5, ctrl.CenterIndex(), "center re-derived from the displayed identity")
}

func TestSetCatalogKeepsVisibleIdentity(t *testing.T) {
	ctrl, _, _ := newTestController(t, 5, false)
	ctrl.HandleSettle(3)
	visible, _ := ctrl.VisibleIdentity()

	// Same content, fresh snapshot (e.g. seed database replaced on disk).
	ctrl.SetCatalog(testCatalog(t, false))

	after, ok := ctrl.VisibleIdentity()
	require.True(t, ok)
	assert.Equal(t, visible, after)
	assert.Equal(t, 2, ctrl.Selected())
}
