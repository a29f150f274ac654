package model_test

import (
	"hotelops/internal/domains/booking/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	day := func(value string) time.Time {
		parsed, _ := time.Parse(time.DateOnly, value)

		return parsed
	}

	tests := []struct {
		name       string
		checkIn    string
		checkOut   string
		rate       float64
		wantNights int
		wantTotal  float64
	}{
		{name: "single night", checkIn: "2026-03-01", checkOut: "2026-03-02", rate: 99.99, wantNights: 1, wantTotal: 99.99},
		{name: "across month end", checkIn: "2026-02-27", checkOut: "2026-03-02", rate: 100, wantNights: 3, wantTotal: 300},
		{name: "rounds to cents", checkIn: "2026-05-01", checkOut: "2026-05-04", rate: 33.333, wantNights: 3, wantTotal: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nights, total := model.Quote(day(tt.checkIn), day(tt.checkOut), tt.rate)

			assert.Equal(t, tt.wantNights, nights)
			assert.InDelta(t, tt.wantTotal, total, 0.0001)
		})
	}
}
