// Package cascade computes and applies client-side cascading deletes for
// the facility hierarchy. The backend has no server-side cascade and no
// filtered listing, so the coordinator scans complete entity lists,
// resolves the transitive child set, and deletes bottom-up:
// slots -> rooms -> areas -> target.
package cascade

import (
	"context"
	"fmt"

	"roombook/internal/domain"
)

// Kind is the entity type targeted for deletion.
type Kind string

const (
	KindCampus   Kind = "Campus"
	KindArea     Kind = "Area"
	KindRoomType Kind = "RoomType"
	KindRoom     Kind = "Room"
)

// ParseKind maps a user-supplied entity name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindCampus, KindArea, KindRoomType, KindRoom:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown entity kind %q (want Campus, Area, RoomType or Room)", s)
}

// Directory lists complete entity collections. The coordinator only sees
// this interface, so a backend that grows server-side filtering (or true
// cascade) slots in without touching the algorithm.
type Directory interface {
	ListAllAreas(ctx context.Context) ([]domain.Area, error)
	ListAllRooms(ctx context.Context) ([]domain.Room, error)
	ListAllRoomSlots(ctx context.Context) ([]domain.RoomSlot, error)
}

// Deleter issues single-entity deletes.
type Deleter interface {
	DeleteCampus(ctx context.Context, id string) error
	DeleteArea(ctx context.Context, id string) error
	DeleteRoomType(ctx context.Context, id string) error
	DeleteRoom(ctx context.Context, id string) error
	DeleteRoomSlot(ctx context.Context, id string) error
}

// Plan is the resolved child set for one delete target. IDs keep the
// backend's listing order; Scan is pure with respect to the fetched
// snapshots, so two scans without intervening mutation are identical.
type Plan struct {
	TargetID string
	Kind     Kind

	AreaIDs []string
	RoomIDs []string
	SlotIDs []string
}

// ChildCount is how many dependent entities the cascade would remove,
// excluding the target itself. Areas only count toward a Campus target:
// for an Area target the single entry in AreaIDs is the target.
func (p *Plan) ChildCount() int {
	switch p.Kind {
	case KindCampus:
		return len(p.AreaIDs) + len(p.RoomIDs) + len(p.SlotIDs)
	case KindArea, KindRoomType:
		return len(p.RoomIDs) + len(p.SlotIDs)
	case KindRoom:
		return len(p.SlotIDs)
	}
	return 0
}

// Cascading reports whether the delete would remove anything beyond the
// target. Callers word their confirmation prompt on this.
func (p *Plan) Cascading() bool {
	return p.ChildCount() > 0
}

// resolve filters the fetched snapshots down to the affected id sets.
func resolve(targetID string, kind Kind, areas []domain.Area, rooms []domain.Room, slots []domain.RoomSlot) *Plan {
	plan := &Plan{TargetID: targetID, Kind: kind}

	switch kind {
	case KindCampus:
		for _, a := range areas {
			if a.CampusID == targetID {
				plan.AreaIDs = append(plan.AreaIDs, a.ID)
			}
		}
		affected := idSet(plan.AreaIDs)
		for _, r := range rooms {
			if affected[r.AreaID] {
				plan.RoomIDs = append(plan.RoomIDs, r.ID)
			}
		}
	case KindArea:
		plan.AreaIDs = []string{targetID}
		for _, r := range rooms {
			if r.AreaID == targetID {
				plan.RoomIDs = append(plan.RoomIDs, r.ID)
			}
		}
	case KindRoomType:
		// RoomType and Area are independent parents of Room: a room-type
		// cascade touches rooms and their slots, never areas.
		for _, r := range rooms {
			if r.RoomTypeID == targetID {
				plan.RoomIDs = append(plan.RoomIDs, r.ID)
			}
		}
	case KindRoom:
		plan.RoomIDs = []string{targetID}
	}

	affectedRooms := idSet(plan.RoomIDs)
	for _, s := range slots {
		if affectedRooms[s.RoomID] {
			plan.SlotIDs = append(plan.SlotIDs, s.ID)
		}
	}
	return plan
}

func idSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
