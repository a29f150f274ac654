package repository_test

import (
	"hotelops/internal/domains/task/model"
	"hotelops/internal/domains/task/repository"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverdueFilter(t *testing.T) {
	today := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	filter := repository.OverdueFilter(today)

	where, args := filter.GetWhereClause()

	assert.Contains(t, where, "tasks.status IN (:open_status_0, :open_status_1)")
	assert.Contains(t, where, "tasks.due_date < :today")
	assert.Equal(t, model.StatusPending, args["open_status_0"])
	assert.Equal(t, model.StatusInProgress, args["open_status_1"])
	assert.Equal(t, today, args["today"])
	assert.NotContains(t, args, model.FieldStatus)
}
