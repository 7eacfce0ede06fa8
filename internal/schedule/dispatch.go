package schedule

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"roombook/internal/domain"
)

// SlotCreator issues one create-slot call.
type SlotCreator interface {
	CreateRoomSlot(ctx context.Context, req domain.RoomSlotCreateRequest) error
}

// Dispatch fires one create per payload, all concurrently, and waits for
// the batch. The first rejection fails the whole dispatch; slots already
// created by then stay created (no compensation) — re-running the same
// generation after a partial failure will duplicate them, so the caller
// should inspect the backend before retrying.
func Dispatch(ctx context.Context, creator SlotCreator, payloads []domain.RoomSlotCreateRequest, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(payloads) == 0 {
		return ErrNoMatchingDates
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, p := range payloads {
		p := p
		g.Go(func() error {
			if err := creator.CreateRoomSlot(gctx, p); err != nil {
				return fmt.Errorf("create slot %s %s: %w", p.RoomID, p.StartTime, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("slot batch created",
		zap.Int("count", len(payloads)),
		zap.String("room_id", payloads[0].RoomID),
	)
	return nil
}
