package model_test

import (
	"hotelops/internal/domains/order/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotals(t *testing.T) {
	items := []model.OrderItem{
		model.Line("o-1", "m-1", "Pancakes", 7.5, 2),
		model.Line("o-1", "m-2", "Coffee", 3.33, 3),
	}

	tests := []struct {
		name         string
		senior       bool
		wantSubtotal float64
		wantDiscount float64
		wantTotal    float64
	}{
		{name: "regular", wantSubtotal: 24.99, wantTotal: 24.99},
		{name: "senior citizen", senior: true, wantSubtotal: 24.99, wantDiscount: 5, wantTotal: 19.99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subtotal, discount, total := model.Totals(items, tt.senior)

			assert.InDelta(t, tt.wantSubtotal, subtotal, 0.0001)
			assert.InDelta(t, tt.wantDiscount, discount, 0.0001)
			assert.InDelta(t, tt.wantTotal, total, 0.0001)
		})
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{model.StatusPending, model.StatusPreparing, true},
		{model.StatusPreparing, model.StatusServed, true},
		{model.StatusServed, model.StatusCompleted, true},
		{model.StatusPending, model.StatusCancelled, true},
		{model.StatusPreparing, model.StatusCancelled, true},
		{model.StatusServed, model.StatusCancelled, false},
		{model.StatusPending, model.StatusCompleted, false},
		{model.StatusCompleted, model.StatusPending, false},
		{model.StatusCancelled, model.StatusPreparing, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CanTransition(tt.from, tt.to))
		})
	}
}
