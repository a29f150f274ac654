package repository_test

import (
	"hotelops/internal/domains/booking/repository"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlapFilter(t *testing.T) {
	checkIn := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 8, 4, 0, 0, 0, 0, time.UTC)

	t.Run("new booking", func(t *testing.T) {
		filter := repository.OverlapFilter("101", checkIn, checkOut, "")

		where, args := filter.GetWhereClause()

		assert.Equal(t, "(bookings.room_number = :room_number AND bookings.status != :excluded_status AND "+
			"bookings.check_in_date < :range_end AND bookings.check_out_date > :range_start)", where)
		assert.Equal(t, checkOut, args["range_end"])
		assert.Equal(t, checkIn, args["range_start"])
		assert.Equal(t, "cancelled", args["excluded_status"])
	})

	t.Run("update excludes itself", func(t *testing.T) {
		filter := repository.OverlapFilter("101", checkIn, checkOut, "b-1")

		where, args := filter.GetWhereClause()

		assert.Contains(t, where, "bookings.id != :excluded_id")
		assert.Equal(t, "b-1", args["excluded_id"])
	})
}
