package cascade_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"roombook/internal/cascade"
	"roombook/internal/domain"
)

func newCoordinator(backend *fakeBackend, onApplied func()) *cascade.Coordinator {
	return cascade.NewCoordinator(backend, backend, zap.NewNop(), onApplied)
}

func TestScan_CampusCollectsWholeSubtree(t *testing.T) {
	backend := campusFixture()
	c := newCoordinator(backend, nil)

	plan, err := c.Scan(context.Background(), "c1", cascade.KindCampus)
	require.NoError(t, err)

	require.Equal(t, []string{"a1", "a2"}, plan.AreaIDs)
	require.Equal(t, []string{"r1", "r2", "r3"}, plan.RoomIDs)
	require.Equal(t, []string{"s1", "s2", "s3", "s4"}, plan.SlotIDs)
	require.Equal(t, 9, plan.ChildCount())
	require.True(t, plan.Cascading())
}

func TestScan_AreaExcludesSiblings(t *testing.T) {
	backend := campusFixture()
	c := newCoordinator(backend, nil)

	plan, err := c.Scan(context.Background(), "a1", cascade.KindArea)
	require.NoError(t, err)

	require.Equal(t, []string{"a1"}, plan.AreaIDs)
	require.Equal(t, []string{"r1", "r2"}, plan.RoomIDs)
	// r3 lives in a2; its slot s4 must not appear.
	require.Equal(t, []string{"s1", "s2", "s3"}, plan.SlotIDs)
	// Area itself is not a child.
	require.Equal(t, 5, plan.ChildCount())
}

func TestScan_RoomTypeCrossesAreasButNotIntoThem(t *testing.T) {
	backend := campusFixture()
	c := newCoordinator(backend, nil)

	plan, err := c.Scan(context.Background(), "t1", cascade.KindRoomType)
	require.NoError(t, err)

	require.Empty(t, plan.AreaIDs)
	require.Equal(t, []string{"r1", "r3"}, plan.RoomIDs)
	require.Equal(t, []string{"s1", "s2", "s4"}, plan.SlotIDs)
}

func TestScan_RoomOnlyOwnSlots(t *testing.T) {
	backend := campusFixture()
	c := newCoordinator(backend, nil)

	plan, err := c.Scan(context.Background(), "r1", cascade.KindRoom)
	require.NoError(t, err)

	require.Empty(t, plan.AreaIDs)
	require.Equal(t, []string{"r1"}, plan.RoomIDs)
	require.Equal(t, []string{"s1", "s2"}, plan.SlotIDs)
	require.Equal(t, 2, plan.ChildCount())
}

func TestScan_UnknownKind(t *testing.T) {
	c := newCoordinator(campusFixture(), nil)
	_, err := c.Scan(context.Background(), "x", cascade.Kind("Booking"))
	require.Error(t, err)
}

func TestScan_IsIdempotent(t *testing.T) {
	backend := campusFixture()
	c := newCoordinator(backend, nil)

	first, err := c.Scan(context.Background(), "c1", cascade.KindCampus)
	require.NoError(t, err)
	second, err := c.Scan(context.Background(), "c1", cascade.KindCampus)
	require.NoError(t, err)

	require.Equal(t, first, second)
	// Each scan re-fetched all three lists.
	require.Equal(t, 6, backend.listCalls)
}

// phaseIndex maps a recorded call to its phase rank for order checks.
func phaseIndex(call string) int {
	switch {
	case strings.HasPrefix(call, "slot:"):
		return 0
	case strings.HasPrefix(call, "room:"):
		return 1
	case strings.HasPrefix(call, "area:"):
		return 2
	default:
		return 3 // target (campus/roomtype or the final room/area)
	}
}

func TestExecute_StrictPhaseOrdering(t *testing.T) {
	backend := campusFixture()
	c := newCoordinator(backend, nil)

	plan, err := c.Scan(context.Background(), "c1", cascade.KindCampus)
	require.NoError(t, err)
	require.NoError(t, c.Execute(context.Background(), plan))

	calls := backend.recorded()
	require.Len(t, calls, 4+3+2+1) // slots, rooms, areas, campus

	last := 0
	for _, call := range calls {
		phase := phaseIndex(call)
		require.GreaterOrEqual(t, phase, last, "call %s arrived after phase %d started", call, last)
		last = phase
	}
	require.Equal(t, "campus:c1", calls[len(calls)-1])
}

func TestExecute_RoomTargetSkipsRoomPhase(t *testing.T) {
	backend := campusFixture()
	c := newCoordinator(backend, nil)

	plan, err := c.Scan(context.Background(), "r1", cascade.KindRoom)
	require.NoError(t, err)
	require.NoError(t, c.Execute(context.Background(), plan))

	calls := backend.recorded()
	// Two slot deletes then exactly one room delete: the target itself.
	require.Len(t, calls, 3)
	require.Equal(t, "room:r1", calls[2])
}

func TestExecute_ZeroDependentsGoesStraightToTarget(t *testing.T) {
	backend := campusFixture()
	backend.rooms = append(backend.rooms, domain.Room{ID: "r7", AreaID: "a2", RoomTypeID: "t2"})
	c := newCoordinator(backend, nil)

	plan, err := c.Scan(context.Background(), "r7", cascade.KindRoom)
	require.NoError(t, err)
	require.False(t, plan.Cascading())

	require.NoError(t, c.Execute(context.Background(), plan))
	require.Equal(t, []string{"room:r7"}, backend.recorded())
}

func TestExecute_FailureAbortsLaterPhases(t *testing.T) {
	backend := campusFixture()
	backend.failOn = "room:r2"
	c := newCoordinator(backend, nil)

	plan, err := c.Scan(context.Background(), "c1", cascade.KindCampus)
	require.NoError(t, err)

	err = c.Execute(context.Background(), plan)
	require.Error(t, err)
	require.Contains(t, err.Error(), "delete rooms")

	// No area or campus delete was dispatched after the failed phase.
	for _, call := range backend.recorded() {
		require.NotContains(t, call, "area:")
		require.NotContains(t, call, "campus:")
	}
}

func TestRun_DeclinedConfirmationDeletesNothing(t *testing.T) {
	backend := campusFixture()
	c := newCoordinator(backend, nil)

	err := c.Run(context.Background(), "c1", cascade.KindCampus, declineAll{})
	require.ErrorIs(t, err, cascade.ErrAborted)
	require.Empty(t, backend.recorded())
}

func TestRun_AppliedHookFiresOnlyOnSuccess(t *testing.T) {
	backend := campusFixture()
	applied := 0
	c := newCoordinator(backend, func() { applied++ })

	require.NoError(t, c.Run(context.Background(), "a1", cascade.KindArea, approveAll{}))
	require.Equal(t, 1, applied)

	backend2 := campusFixture()
	backend2.failOn = "slot:s4"
	applied2 := 0
	c2 := newCoordinator(backend2, func() { applied2++ })
	require.Error(t, c2.Run(context.Background(), "c1", cascade.KindCampus, approveAll{}))
	require.Zero(t, applied2)
}
