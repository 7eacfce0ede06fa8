// Package booking wraps the booking endpoints. Approval and slot
// availability rules live server-side; this side only submits and lists.
package booking

import (
	"context"
	"fmt"

	"roombook/internal/api"
	"roombook/internal/domain"
)

// Service typed operations over /Booking.
type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// List GET /Booking?page&size — bookings of the signed-in user (or all,
// for admins; the backend decides from the token).
func (s *Service) List(ctx context.Context, params api.ListParams) (*api.Paginated[domain.Booking], error) {
	var out api.Paginated[domain.Booking]
	if err := s.client.GetList(ctx, "/Booking", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create POST /Booking — request a slot. Lands as Pending.
func (s *Service) Create(ctx context.Context, req domain.BookingCreateRequest) (*domain.Booking, error) {
	var out domain.Booking
	if err := s.client.Post(ctx, "/Booking", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStatus PUT /Booking/{id}/status
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	body := map[string]domain.BookingStatus{"status": status}
	return s.client.Put(ctx, fmt.Sprintf("/Booking/%s/status", id), body, nil)
}

// Cancel marks a booking cancelled (soft delete).
func (s *Service) Cancel(ctx context.Context, id string) error {
	return s.UpdateStatus(ctx, id, domain.BookingStatusCancelled)
}

// Delete DELETE /Booking/{id} — hard delete.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/Booking/"+id)
}
