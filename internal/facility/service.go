package facility

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"roombook/internal/api"
	"roombook/internal/domain"
)

// DefaultListPageSize bounds one list request. The backend has no
// unbounded listing, so "fetch all" pages at this size until a short
// page comes back.
const DefaultListPageSize = 1000

// Service is the typed surface over the facility endpoints. Every method
// maps to exactly one backend call shape; no client-side state.
type Service struct {
	client   *api.Client
	pageSize int
	logger   *zap.Logger
}

// NewService wires a Service over the gateway client. pageSize <= 0
// falls back to DefaultListPageSize.
func NewService(client *api.Client, pageSize int, logger *zap.Logger) *Service {
	if pageSize <= 0 {
		pageSize = DefaultListPageSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, pageSize: pageSize, logger: logger}
}

// --- Campus ---

// ListCampuses GET /Campus. Campus is the one endpoint whose data is a
// bare array rather than a paginated wrapper.
func (s *Service) ListCampuses(ctx context.Context) ([]domain.Campus, error) {
	var items []domain.Campus
	if err := s.client.Get(ctx, "/Campus", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateCampus POST /Campus
func (s *Service) CreateCampus(ctx context.Context, req domain.CampusCreateRequest) (*domain.Campus, error) {
	var out domain.Campus
	if err := s.client.Post(ctx, "/Campus", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCampus PUT /Campus/{id}
func (s *Service) UpdateCampus(ctx context.Context, id string, req domain.CampusCreateRequest) error {
	return s.client.Put(ctx, "/Campus/"+id, req, nil)
}

// DeleteCampus DELETE /Campus/{id}
func (s *Service) DeleteCampus(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/Campus/"+id)
}

// --- Area ---

// ListAreas GET /Area?page&size
func (s *Service) ListAreas(ctx context.Context, params api.ListParams) (*api.Paginated[domain.Area], error) {
	var out api.Paginated[domain.Area]
	if err := s.client.GetList(ctx, "/Area", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAllAreas pages through /Area until exhausted.
func (s *Service) ListAllAreas(ctx context.Context) ([]domain.Area, error) {
	return listAll(ctx, s.pageSize, func(ctx context.Context, p api.ListParams) (*api.Paginated[domain.Area], error) {
		return s.ListAreas(ctx, p)
	})
}

// CreateArea POST /Area
func (s *Service) CreateArea(ctx context.Context, req domain.AreaCreateRequest) (*domain.Area, error) {
	var out domain.Area
	if err := s.client.Post(ctx, "/Area", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateArea PUT /Area/{id}
func (s *Service) UpdateArea(ctx context.Context, id string, req domain.AreaCreateRequest) error {
	return s.client.Put(ctx, "/Area/"+id, req, nil)
}

// DeleteArea DELETE /Area/{id}
func (s *Service) DeleteArea(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/Area/"+id)
}

// --- RoomType ---

// ListRoomTypes GET /RoomType?page&size
func (s *Service) ListRoomTypes(ctx context.Context, params api.ListParams) (*api.Paginated[domain.RoomType], error) {
	var out api.Paginated[domain.RoomType]
	if err := s.client.GetList(ctx, "/RoomType", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAllRoomTypes pages through /RoomType until exhausted.
func (s *Service) ListAllRoomTypes(ctx context.Context) ([]domain.RoomType, error) {
	return listAll(ctx, s.pageSize, func(ctx context.Context, p api.ListParams) (*api.Paginated[domain.RoomType], error) {
		return s.ListRoomTypes(ctx, p)
	})
}

// CreateRoomType POST /RoomType
func (s *Service) CreateRoomType(ctx context.Context, req domain.RoomTypeCreateRequest) (*domain.RoomType, error) {
	var out domain.RoomType
	if err := s.client.Post(ctx, "/RoomType", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRoomType PUT /RoomType/{id}
func (s *Service) UpdateRoomType(ctx context.Context, id string, req domain.RoomTypeCreateRequest) error {
	return s.client.Put(ctx, "/RoomType/"+id, req, nil)
}

// DeleteRoomType DELETE /RoomType/{id}
func (s *Service) DeleteRoomType(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/RoomType/"+id)
}

// --- Room ---

// ListRooms GET /Room?page&size
func (s *Service) ListRooms(ctx context.Context, params api.ListParams) (*api.Paginated[domain.Room], error) {
	var out api.Paginated[domain.Room]
	if err := s.client.GetList(ctx, "/Room", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAllRooms pages through /Room until exhausted.
func (s *Service) ListAllRooms(ctx context.Context) ([]domain.Room, error) {
	return listAll(ctx, s.pageSize, func(ctx context.Context, p api.ListParams) (*api.Paginated[domain.Room], error) {
		return s.ListRooms(ctx, p)
	})
}

// CreateRoom POST /Room
func (s *Service) CreateRoom(ctx context.Context, req domain.RoomCreateRequest) (*domain.Room, error) {
	var out domain.Room
	if err := s.client.Post(ctx, "/Room", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRoom PUT /Room/{id}
func (s *Service) UpdateRoom(ctx context.Context, id string, req domain.RoomCreateRequest) error {
	return s.client.Put(ctx, "/Room/"+id, req, nil)
}

// DeleteRoom DELETE /Room/{id}
func (s *Service) DeleteRoom(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/Room/"+id)
}

// --- RoomSlot ---

// ListRoomSlots GET /RoomSlot?page&size
func (s *Service) ListRoomSlots(ctx context.Context, params api.ListParams) (*api.Paginated[domain.RoomSlot], error) {
	var out api.Paginated[domain.RoomSlot]
	if err := s.client.GetList(ctx, "/RoomSlot", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAllRoomSlots pages through /RoomSlot until exhausted.
func (s *Service) ListAllRoomSlots(ctx context.Context) ([]domain.RoomSlot, error) {
	return listAll(ctx, s.pageSize, func(ctx context.Context, p api.ListParams) (*api.Paginated[domain.RoomSlot], error) {
		return s.ListRoomSlots(ctx, p)
	})
}

// CreateRoomSlot POST /RoomSlot
func (s *Service) CreateRoomSlot(ctx context.Context, req domain.RoomSlotCreateRequest) error {
	return s.client.Post(ctx, "/RoomSlot", req, nil)
}

// UpdateRoomSlot PUT /RoomSlot/{id}
func (s *Service) UpdateRoomSlot(ctx context.Context, id string, req domain.RoomSlotCreateRequest) error {
	return s.client.Put(ctx, "/RoomSlot/"+id, req, nil)
}

// DeleteRoomSlot DELETE /RoomSlot/{id}
func (s *Service) DeleteRoomSlot(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/RoomSlot/"+id)
}

// listAll drains a paginated endpoint page by page. The backend caps
// page size, so a single size=1000 request cannot be trusted to mean
// "everything"; a short (or empty) page is the stop condition.
func listAll[T any](
	ctx context.Context,
	pageSize int,
	fetch func(context.Context, api.ListParams) (*api.Paginated[T], error),
) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		out, err := fetch(ctx, api.ListParams{Page: page, Size: pageSize})
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}
		all = append(all, out.Items...)
		if len(out.Items) < pageSize {
			return all, nil
		}
		// Some backend builds always fill the page; totals are the
		// only stop signal then.
		if out.TotalItems > 0 && len(all) >= out.TotalItems {
			return all, nil
		}
	}
}
