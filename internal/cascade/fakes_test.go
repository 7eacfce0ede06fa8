package cascade_test

import (
	"context"
	"fmt"
	"sync"

	"roombook/internal/cascade"
	"roombook/internal/domain"
)

// fakeBackend is an in-memory stand-in for the facility service: it
// serves the three entity lists and records every delete call in arrival
// order, so tests can assert phase ordering.
type fakeBackend struct {
	mu    sync.Mutex
	areas []domain.Area
	rooms []domain.Room
	slots []domain.RoomSlot

	calls []string // e.g. "slot:s1", "room:r1", "campus:c1"

	listCalls int

	// failOn makes the matching delete call fail.
	failOn string
}

func (f *fakeBackend) ListAllAreas(ctx context.Context) ([]domain.Area, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	return append([]domain.Area(nil), f.areas...), nil
}

func (f *fakeBackend) ListAllRooms(ctx context.Context) ([]domain.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	return append([]domain.Room(nil), f.rooms...), nil
}

func (f *fakeBackend) ListAllRoomSlots(ctx context.Context) ([]domain.RoomSlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	return append([]domain.RoomSlot(nil), f.slots...), nil
}

func (f *fakeBackend) record(kind, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	call := kind + ":" + id
	f.calls = append(f.calls, call)
	if f.failOn == call {
		return fmt.Errorf("injected failure for %s", call)
	}
	return nil
}

func (f *fakeBackend) DeleteCampus(ctx context.Context, id string) error {
	return f.record("campus", id)
}

func (f *fakeBackend) DeleteArea(ctx context.Context, id string) error {
	return f.record("area", id)
}

func (f *fakeBackend) DeleteRoomType(ctx context.Context, id string) error {
	return f.record("roomtype", id)
}

func (f *fakeBackend) DeleteRoom(ctx context.Context, id string) error {
	return f.record("room", id)
}

func (f *fakeBackend) DeleteRoomSlot(ctx context.Context, id string) error {
	return f.record("slot", id)
}

func (f *fakeBackend) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// campusFixture builds the dataset used across scope tests:
// Campus c1 -> Areas a1, a2; a1 -> Rooms r1, r2; a2 -> Room r3.
// Another campus c2 -> Area a9 -> Room r9.
// Slots: r1 has s1, s2; r2 has s3; r3 has s4; r9 has s9.
// RoomType t1 is used by r1 and r3 (different areas), t2 by r2 and r9.
func campusFixture() *fakeBackend {
	return &fakeBackend{
		areas: []domain.Area{
			{ID: "a1", CampusID: "c1"},
			{ID: "a2", CampusID: "c1"},
			{ID: "a9", CampusID: "c2"},
		},
		rooms: []domain.Room{
			{ID: "r1", AreaID: "a1", RoomTypeID: "t1"},
			{ID: "r2", AreaID: "a1", RoomTypeID: "t2"},
			{ID: "r3", AreaID: "a2", RoomTypeID: "t1"},
			{ID: "r9", AreaID: "a9", RoomTypeID: "t2"},
		},
		slots: []domain.RoomSlot{
			{ID: "s1", RoomID: "r1"},
			{ID: "s2", RoomID: "r1"},
			{ID: "s3", RoomID: "r2"},
			{ID: "s4", RoomID: "r3"},
			{ID: "s9", RoomID: "r9"},
		},
	}
}

// approveAll is a Confirmer that always says yes.
type approveAll struct{}

func (approveAll) ConfirmDelete(_ *cascade.Plan) (bool, error) { return true, nil }

// declineAll is a Confirmer that always says no.
type declineAll struct{}

func (declineAll) ConfirmDelete(_ *cascade.Plan) (bool, error) { return false, nil }
