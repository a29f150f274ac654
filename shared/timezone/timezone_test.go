package timezone_test

import (
	"hotelops/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { timezone.Init("UTC") })

	timezone.Init("Asia/Jakarta")
	assert.Equal(t, "Asia/Jakarta", timezone.GetLocation().String())

	timezone.Init("Not/AZone")
	assert.Equal(t, time.UTC, timezone.GetLocation())

	timezone.Init("")
	assert.Equal(t, time.UTC, timezone.GetLocation())
}

func TestToday(t *testing.T) {
	today := timezone.Today()

	assert.Zero(t, today.Hour())
	assert.Zero(t, today.Minute())
	assert.Equal(t, timezone.Now().Day(), today.Day())
}

func TestParseDate(t *testing.T) {
	parsed, err := timezone.ParseDate("2024-03-09")

	assert.NoError(t, err)
	assert.Equal(t, "2024-03-09", timezone.FormatDate(parsed))

	_, err = timezone.ParseDate("09/03/2024")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "", timezone.Format(time.Time{}, time.RFC3339))
	assert.Equal(t, "", timezone.FormatDate(time.Time{}))
	assert.Equal(t, "2024-01-01 12:00", timezone.Format(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), "2006-01-02 15:04"))
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "single night", start: "2024-01-01", end: "2024-01-02", want: 1},
		{name: "across month end", start: "2024-01-30", end: "2024-02-02", want: 3},
		{name: "leap day", start: "2024-02-28", end: "2024-03-01", want: 2},
		{name: "same day", start: "2024-05-05", end: "2024-05-05", want: 0},
		{name: "reversed", start: "2024-05-06", end: "2024-05-05", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _ := timezone.ParseDate(tt.start)
			end, _ := timezone.ParseDate(tt.end)

			assert.Equal(t, tt.want, timezone.DaysBetween(start, end))
		})
	}
}
