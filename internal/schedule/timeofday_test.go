package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"roombook/internal/schedule"
)

func TestParseTimeOfDay(t *testing.T) {
	tod, err := schedule.ParseTimeOfDay("07:00")
	require.NoError(t, err)
	require.Equal(t, schedule.TimeOfDay{Hour: 7, Minute: 0}, tod)

	tod, err = schedule.ParseTimeOfDay("23:59")
	require.NoError(t, err)
	require.Equal(t, schedule.TimeOfDay{Hour: 23, Minute: 59}, tod)
}

func TestParseTimeOfDay_Invalid(t *testing.T) {
	for _, s := range []string{"", "7", "24:00", "12:60", "ab:cd", "12-30"} {
		_, err := schedule.ParseTimeOfDay(s)
		require.Error(t, err, "input %q", s)
	}
}
