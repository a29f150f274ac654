package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/internal/domains/order/model"
	gDto "hotelops/shared/dto"
	gRepo "hotelops/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Order interface {
	Create(ctx context.Context, order model.Order, items []model.OrderItem) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Order, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Order, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Items(ctx context.Context, orderIDs ...string) ([]model.OrderItem, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Order]
	items gRepo.Repository[model.OrderItem]
}

func New(db *postgres.Connection, otel otel.Otel) Order {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Order](model.EntityName, model.TableName, model.FieldID, db, otel),
		items:      gRepo.NewRepository[model.OrderItem](model.ItemEntity, model.ItemTableName, model.FieldID, db, otel),
	}
}

// Create writes the order and its lines in one transaction.
func (r *repositoryImpl) Create(ctx context.Context, order model.Order, items []model.OrderItem) error {
	return r.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := r.InsertTx(ctx, tx, order); err != nil {
			return err //nolint:wrapcheck
		}

		return r.items.InsertBulkTx(ctx, tx, items) //nolint:wrapcheck
	})
}

// Items returns the lines of the given orders.
func (r *repositoryImpl) Items(ctx context.Context, orderIDs ...string) ([]model.OrderItem, error) {
	if len(orderIDs) == 0 {
		return []model.OrderItem{}, nil
	}

	return r.items.GetAll(ctx, gDto.QueryParams{}, ItemsFilter(orderIDs...)) //nolint:wrapcheck
}

func ItemsFilter(orderIDs ...string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldOrderID, Operator: gDto.FilterOperatorIn, Value: orderIDs, Table: model.ItemTableName},
		},
	}
}
