// Package schedule materializes room-slot creation payloads: one ad-hoc
// slot, or a whole semester of recurring weekly slots expanded into
// individual calendar dates.
package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"roombook/internal/domain"
)

// Mode selects how a Request is expanded.
type Mode string

const (
	// ModeSingle emits exactly one payload from an explicit start/end pair.
	ModeSingle Mode = "single"
	// ModeSemester enumerates every selected weekday inside a date range.
	ModeSemester Mode = "semester"
)

// ErrNoMatchingDates means the semester expansion selected zero dates
// (empty weekday set, or range start after range end). Creating nothing
// is an error, not an empty success.
var ErrNoMatchingDates = errors.New("no matching dates in range")

// TimeOfDay is a wall-clock time within a day.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q (want HH:MM)", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return TimeOfDay{}, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid minute in %q", s)
	}
	return TimeOfDay{Hour: h, Minute: m}, nil
}

func (t TimeOfDay) on(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, day.Location())
}

// Request carries one generation order. Mode decides which of the field
// groups applies.
type Request struct {
	Mode     Mode
	RoomID   string
	SlotType domain.SlotType
	Status   domain.SlotStatus

	// ModeSingle: the exact interval.
	Start time.Time
	End   time.Time

	// ModeSemester: inclusive date range, daily window, weekday picks.
	RangeStart time.Time
	RangeEnd   time.Time
	DayStart   TimeOfDay
	DayEnd     TimeOfDay
	Weekdays   map[time.Weekday]bool
}

// Generate expands the request into slot-creation payloads. Pure: no
// I/O, deterministic for the same request. Timestamps are rendered as
// local wall-clock strings; no UTC normalization at any point.
//
// There is deliberately no cap on the number of semester payloads: a
// long range with every weekday selected is a legitimate order.
func (r Request) Generate() ([]domain.RoomSlotCreateRequest, error) {
	if r.RoomID == "" {
		return nil, errors.New("generate slots: room id is required")
	}
	switch r.Mode {
	case ModeSingle:
		return r.generateSingle()
	case ModeSemester:
		return r.generateSemester()
	}
	return nil, fmt.Errorf("generate slots: unknown mode %q", r.Mode)
}

func (r Request) generateSingle() ([]domain.RoomSlotCreateRequest, error) {
	if r.Start.IsZero() || r.End.IsZero() {
		return nil, errors.New("generate slots: start and end are required")
	}
	if !r.End.After(r.Start) {
		return nil, errors.New("generate slots: end must be after start")
	}
	return []domain.RoomSlotCreateRequest{{
		RoomID:    r.RoomID,
		SlotType:  r.SlotType,
		Status:    r.Status,
		StartTime: domain.FormatLocal(r.Start),
		EndTime:   domain.FormatLocal(r.End),
	}}, nil
}

func (r Request) generateSemester() ([]domain.RoomSlotCreateRequest, error) {
	if r.RangeStart.IsZero() || r.RangeEnd.IsZero() {
		return nil, errors.New("generate slots: date range is required")
	}

	var payloads []domain.RoomSlotCreateRequest
	first := truncateToDay(r.RangeStart)
	last := truncateToDay(r.RangeEnd)
	// Both endpoints are whole days, inclusive.
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		if !r.Weekdays[day.Weekday()] {
			continue
		}
		payloads = append(payloads, domain.RoomSlotCreateRequest{
			RoomID:    r.RoomID,
			SlotType:  r.SlotType,
			Status:    r.Status,
			StartTime: domain.FormatLocal(r.DayStart.on(day)),
			EndTime:   domain.FormatLocal(r.DayEnd.on(day)),
		})
	}
	if len(payloads) == 0 {
		return nil, ErrNoMatchingDates
	}
	return payloads, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
