package cascade

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"roombook/internal/domain"
)

// ErrAborted is returned by Run when the confirmer declines.
var ErrAborted = errors.New("delete aborted")

// Confirmer approves or declines a scanned delete before anything is
// issued. Deletion never proceeds without this answer.
type Confirmer interface {
	ConfirmDelete(plan *Plan) (bool, error)
}

// Coordinator scans dependencies and applies cascades. It holds no state
// between invocations; every Run re-fetches fresh lists.
type Coordinator struct {
	dir    Directory
	del    Deleter
	logger *zap.Logger

	// onApplied fires after a fully successful cascade, for cache
	// invalidation on the caller's side. A failed cascade never fires it.
	onApplied func()
}

// NewCoordinator wires a Coordinator. onApplied may be nil.
func NewCoordinator(dir Directory, del Deleter, logger *zap.Logger, onApplied func()) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{dir: dir, del: del, logger: logger, onApplied: onApplied}
}

// Scan fetches the three entity lists concurrently and resolves the
// affected child set for the target. Any fetch failure aborts the scan;
// no partial plan is ever returned.
func (c *Coordinator) Scan(ctx context.Context, targetID string, kind Kind) (*Plan, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}

	var (
		areas []domain.Area
		rooms []domain.Room
		slots []domain.RoomSlot
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		areas, err = c.dir.ListAllAreas(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		rooms, err = c.dir.ListAllRooms(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		slots, err = c.dir.ListAllRoomSlots(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scan dependencies of %s %s: %w", kind, targetID, err)
	}

	plan := resolve(targetID, kind, areas, rooms, slots)
	c.logger.Info("dependency scan complete",
		zap.String("kind", string(kind)),
		zap.String("target_id", targetID),
		zap.Int("areas", len(plan.AreaIDs)),
		zap.Int("rooms", len(plan.RoomIDs)),
		zap.Int("slots", len(plan.SlotIDs)),
	)
	return plan, nil
}

// Execute applies a plan bottom-up in strict phases: all slot deletes
// complete before any room delete is dispatched, rooms before areas,
// areas before the target. Deletes inside a phase run concurrently in
// arbitrary order. The first failure aborts the remaining phases;
// already-deleted children stay deleted (no compensation), which leaves
// the backend partially cascaded until the caller re-runs the delete.
func (c *Coordinator) Execute(ctx context.Context, plan *Plan) error {
	if err := c.deletePhase(ctx, plan.SlotIDs, c.del.DeleteRoomSlot); err != nil {
		return fmt.Errorf("delete slots: %w", err)
	}

	// When the target is itself a Room, RoomIDs holds only the target,
	// which the final phase deletes.
	if plan.Kind != KindRoom {
		if err := c.deletePhase(ctx, plan.RoomIDs, c.del.DeleteRoom); err != nil {
			return fmt.Errorf("delete rooms: %w", err)
		}
	}

	// Areas fall only with their Campus; an Area target is handled as
	// "the target itself" below.
	if plan.Kind == KindCampus {
		if err := c.deletePhase(ctx, plan.AreaIDs, c.del.DeleteArea); err != nil {
			return fmt.Errorf("delete areas: %w", err)
		}
	}

	var err error
	switch plan.Kind {
	case KindCampus:
		err = c.del.DeleteCampus(ctx, plan.TargetID)
	case KindArea:
		err = c.del.DeleteArea(ctx, plan.TargetID)
	case KindRoomType:
		err = c.del.DeleteRoomType(ctx, plan.TargetID)
	case KindRoom:
		err = c.del.DeleteRoom(ctx, plan.TargetID)
	default:
		err = fmt.Errorf("unknown entity kind %q", plan.Kind)
	}
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", plan.Kind, plan.TargetID, err)
	}

	c.logger.Info("cascade applied",
		zap.String("kind", string(plan.Kind)),
		zap.String("target_id", plan.TargetID),
		zap.Int("children", plan.ChildCount()),
	)
	if c.onApplied != nil {
		c.onApplied()
	}
	return nil
}

// Run is the full user-facing flow: scan, confirm, execute.
func (c *Coordinator) Run(ctx context.Context, targetID string, kind Kind, confirm Confirmer) error {
	plan, err := c.Scan(ctx, targetID, kind)
	if err != nil {
		return err
	}
	ok, err := confirm.ConfirmDelete(plan)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAborted
	}
	return c.Execute(ctx, plan)
}

// deletePhase fires one delete per id concurrently and waits for the
// whole phase. An empty phase issues no calls.
func (c *Coordinator) deletePhase(ctx context.Context, ids []string, del func(context.Context, string) error) error {
	if len(ids) == 0 {
		return nil
	}
	g, gctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			return del(gctx, id)
		})
	}
	return g.Wait()
}
