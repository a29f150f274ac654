package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/internal/domains/supplier/model"
	gDto "hotelops/shared/dto"
	gRepo "hotelops/shared/repository"
)

type Supplier interface {
	Insert(ctx context.Context, model model.Supplier) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Supplier, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Supplier, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Supplier]
}

func New(db *postgres.Connection, otel otel.Otel) Supplier {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Supplier](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
