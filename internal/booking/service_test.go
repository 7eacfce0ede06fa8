package booking_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"roombook/internal/api"
	"roombook/internal/booking"
	"roombook/internal/domain"
)

func newService(t *testing.T, handler http.Handler) *booking.Service {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := api.New(server.URL, 5*time.Second, api.NewSession(""), zap.NewNop())
	return booking.NewService(client)
}

func TestCancel_SendsNumericStatus(t *testing.T) {
	var gotPath string
	var body map[string]any
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		json.NewEncoder(w).Encode(map[string]any{"errorCode": 0})
	}))

	require.NoError(t, svc.Cancel(context.Background(), "b1"))
	require.Equal(t, "/Booking/b1/status", gotPath)
	require.Equal(t, float64(domain.BookingStatusCancelled), body["status"])
}

func TestList_DecodesStringStatuses(t *testing.T) {
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/Booking", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"errorCode": 0,
			"data": map[string]any{
				"totalItems": 1,
				"items": []map[string]any{{
					"id":            "b1",
					"roomName":      "Physics Lab",
					"startTime":     "2025-03-03T07:00:00",
					"endTime":       "2025-03-03T09:00:00",
					"slotType":      "Block10",
					"bookingStatus": "Pending",
				}},
			},
		})
	}))

	out, err := svc.List(context.Background(), api.ListParams{Page: 1, Size: 10})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	require.Equal(t, domain.BookingStatusPending, out.Items[0].BookingStatus)
	require.Equal(t, domain.SlotTypeBlock10, out.Items[0].SlotType)
}
