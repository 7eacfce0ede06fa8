package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"roombook/internal/domain"
	"roombook/internal/schedule"
)

func TestGenerate_SingleModeKeepsWallClock(t *testing.T) {
	// A zone far from UTC: any accidental UTC conversion shifts the hour.
	loc := time.FixedZone("ICT", 7*3600)
	req := schedule.Request{
		Mode:     schedule.ModeSingle,
		RoomID:   "r1",
		SlotType: domain.SlotTypeBlock3,
		Status:   domain.SlotStatusAvailable,
		Start:    time.Date(2025, 3, 10, 7, 0, 0, 0, loc),
		End:      time.Date(2025, 3, 10, 9, 0, 0, 0, loc),
	}

	payloads, err := req.Generate()
	require.NoError(t, err)
	require.Len(t, payloads, 1)
	require.Equal(t, "2025-03-10T07:00:00", payloads[0].StartTime)
	require.Equal(t, "2025-03-10T09:00:00", payloads[0].EndTime)
	require.Equal(t, "r1", payloads[0].RoomID)
}

func TestGenerate_SingleModeRejectsInvertedInterval(t *testing.T) {
	req := schedule.Request{
		Mode:   schedule.ModeSingle,
		RoomID: "r1",
		Start:  time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local),
		End:    time.Date(2025, 3, 10, 7, 0, 0, 0, time.Local),
	}
	_, err := req.Generate()
	require.Error(t, err)
}

func semesterReq(t *testing.T, from, to string, days ...time.Weekday) schedule.Request {
	t.Helper()
	start, err := time.ParseInLocation("2006-01-02", from, time.Local)
	require.NoError(t, err)
	end, err := time.ParseInLocation("2006-01-02", to, time.Local)
	require.NoError(t, err)

	picked := map[time.Weekday]bool{}
	for _, d := range days {
		picked[d] = true
	}
	return schedule.Request{
		Mode:       schedule.ModeSemester,
		RoomID:     "r1",
		SlotType:   domain.SlotTypeBlock10,
		Status:     domain.SlotStatusAvailable,
		RangeStart: start,
		RangeEnd:   end,
		DayStart:   schedule.TimeOfDay{Hour: 7},
		DayEnd:     schedule.TimeOfDay{Hour: 9},
		Weekdays:   picked,
	}
}

func TestGenerate_SemesterModeIsDeterministic(t *testing.T) {
	// 2025-03-03 is a Monday, 2025-03-09 a Sunday.
	req := semesterReq(t, "2025-03-03", "2025-03-09", time.Monday, time.Wednesday)

	payloads, err := req.Generate()
	require.NoError(t, err)
	require.Len(t, payloads, 2)
	require.Equal(t, "2025-03-03T07:00:00", payloads[0].StartTime)
	require.Equal(t, "2025-03-03T09:00:00", payloads[0].EndTime)
	require.Equal(t, "2025-03-05T07:00:00", payloads[1].StartTime)
	require.Equal(t, "2025-03-05T09:00:00", payloads[1].EndTime)
}

func TestGenerate_SemesterModeIncludesBothEndpoints(t *testing.T) {
	// Range is Mon..Sun; every Monday and Sunday selected.
	req := semesterReq(t, "2025-03-03", "2025-03-09", time.Monday, time.Sunday)

	payloads, err := req.Generate()
	require.NoError(t, err)
	require.Len(t, payloads, 2)
	require.Equal(t, "2025-03-03T07:00:00", payloads[0].StartTime)
	require.Equal(t, "2025-03-09T07:00:00", payloads[1].StartTime)
}

func TestGenerate_SemesterModeEveryDay(t *testing.T) {
	req := semesterReq(t, "2025-03-01", "2025-03-31",
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday)

	payloads, err := req.Generate()
	require.NoError(t, err)
	// No cap: a full month expands to every calendar day.
	require.Len(t, payloads, 31)
}

func TestGenerate_EmptyWeekdaySelectionIsAnError(t *testing.T) {
	req := semesterReq(t, "2025-03-03", "2025-03-09")
	_, err := req.Generate()
	require.ErrorIs(t, err, schedule.ErrNoMatchingDates)
}

func TestGenerate_InvertedRangeIsAnError(t *testing.T) {
	req := semesterReq(t, "2025-03-09", "2025-03-03", time.Monday)
	_, err := req.Generate()
	require.ErrorIs(t, err, schedule.ErrNoMatchingDates)
}

func TestGenerate_MissingRoomID(t *testing.T) {
	req := semesterReq(t, "2025-03-03", "2025-03-09", time.Monday)
	req.RoomID = ""
	_, err := req.Generate()
	require.Error(t, err)
}
