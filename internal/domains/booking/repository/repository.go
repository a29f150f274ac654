package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/internal/domains/booking/model"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	gRepo "hotelops/shared/repository"
	"time"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	Overlapping(ctx context.Context, roomNumber string, checkIn, checkOut time.Time, excludeID string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// Overlapping reports whether a live booking of the room intersects [checkIn, checkOut). A guest
// checking out on the day another checks in is not a conflict.
func (r *repositoryImpl) Overlapping(ctx context.Context, roomNumber string, checkIn, checkOut time.Time, excludeID string) (bool, error) {
	return r.Exist(ctx, OverlapFilter(roomNumber, checkIn, checkOut, excludeID)) //nolint:wrapcheck
}

func OverlapFilter(roomNumber string, checkIn, checkOut time.Time, excludeID string) gDto.FilterGroup {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldRoomNumber, Operator: gDto.FilterOperatorEq, Value: roomNumber, Table: model.TableName},
			gDto.Filter{
				ArgName:  "excluded_status",
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorNotEq,
				Value:    model.StatusCancelled,
				Table:    model.TableName,
			},
			gDto.Filter{ArgName: "range_end", Field: model.FieldCheckInDate, Operator: gDto.FilterOperatorLess, Value: checkOut, Table: model.TableName},
			gDto.Filter{ArgName: "range_start", Field: model.FieldCheckOutDate, Operator: gDto.FilterOperatorGreater, Value: checkIn, Table: model.TableName},
		},
	}

	if excludeID != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			ArgName:  "excluded_id",
			Field:    model.FieldID,
			Operator: gDto.FilterOperatorNotEq,
			Value:    excludeID,
			Table:    model.TableName,
		})
	}

	return filter
}
