package repository

import (
	"context"
	"errors"
	otelMocks "hotelops/infras/otel/mocks"
	"hotelops/shared/failure"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

type stockRow struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	SupplierName string `db:"supplier_name" table:"suppliers" column:"name"`
	Ignored      string
}

func TestConstraintField(t *testing.T) {
	tests := []struct {
		table      string
		constraint string
		want       string
	}{
		{table: "rooms", constraint: "rooms_room_number_key", want: "room_number"},
		{table: "schedules", constraint: "schedules_shift_date_key", want: "shift_date"},
		{table: "bookings", constraint: "bookings_room_number_fkey", want: "room_number"},
		{table: "tasks", constraint: "tasks_due_date_idx", want: "due_date"},
		{table: "bookings", constraint: "bookings_check_in_date_excl", want: "check_in_date"},
		{table: "menu_items", constraint: "custom_name", want: "custom_name"},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			assert.Equal(t, tt.want, ConstraintField(tt.table, tt.constraint))
		})
	}
}

func TestRepository_constraintError(t *testing.T) {
	repo := NewRepository[stockRow]("inventory item", "inventory_items", "id", nil, otelMocks.NewOtel())

	tests := []struct {
		name       string
		err        error
		wantNil    bool
		wantCode   int
		wantFields map[string]string
	}{
		{
			name:    "not a postgres error",
			err:     errors.New("boom"),
			wantNil: true,
		},
		{
			name:       "unique violation",
			err:        &pq.Error{Code: "23505", Constraint: "inventory_items_name_key"},
			wantCode:   http.StatusConflict,
			wantFields: map[string]string{"name": "Name already exists"},
		},
		{
			name:       "missing reference",
			err:        &pq.Error{Code: "23503", Constraint: "inventory_items_supplier_id_fkey", Message: "insert or update on table"},
			wantCode:   http.StatusBadRequest,
			wantFields: map[string]string{"supplier_id": "Supplier id does not exist"},
		},
		{
			name:     "still referenced",
			err:      &pq.Error{Code: "23503", Constraint: "bookings_room_number_fkey", Message: "update or delete on table"},
			wantCode: http.StatusConflict,
		},
		{
			name:       "exclusion violation",
			err:        &pq.Error{Code: "23P01", Constraint: "inventory_items_name_excl"},
			wantCode:   http.StatusConflict,
			wantFields: map[string]string{"name": "Name overlaps an existing inventory item"},
		},
		{
			name:    "other postgres error",
			err:     &pq.Error{Code: "42601"},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repo.constraintError(tt.err)

			if tt.wantNil {
				assert.NoError(t, got)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(got))

			if tt.wantFields != nil {
				assert.Equal(t, tt.wantFields, failure.GetFields(got))
			}
		})
	}
}

func TestRepository_getSelectQuery(t *testing.T) {
	repo := NewRepository[stockRow]("inventory item", "inventory_items", "id", nil, otelMocks.NewOtel())

	assert.Equal(t,
		"inventory_items.id, inventory_items.name, suppliers.name AS supplier_name",
		repo.getSelectQuery(context.Background()),
	)
	assert.Equal(t, "inventory_items.id", repo.getSelectQuery(context.Background(), "id"))
	assert.Equal(t, []string{"id", "name"}, repo.InsertColumns)
}
