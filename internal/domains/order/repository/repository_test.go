package repository_test

import (
	"hotelops/internal/domains/order/repository"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemsFilter(t *testing.T) {
	filter := repository.ItemsFilter("o-1", "o-2")

	where, args := filter.GetWhereClause()

	assert.Contains(t, where, "order_items.order_id IN (:order_id_0, :order_id_1)")
	assert.Equal(t, "o-1", args["order_id_0"])
	assert.Equal(t, "o-2", args["order_id_1"])
}
