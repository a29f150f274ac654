package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/internal/domains/feedback/model"
	gDto "hotelops/shared/dto"
	gRepo "hotelops/shared/repository"
)

type Feedback interface {
	Insert(ctx context.Context, model model.Feedback) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Feedback, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Feedback, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	RatingCounts(ctx context.Context) ([]model.RatingCount, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Feedback]
}

func New(db *postgres.Connection, otel otel.Otel) Feedback {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Feedback](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) RatingCounts(ctx context.Context) ([]model.RatingCount, error) {
	counts := []model.RatingCount{}

	err := r.Aggregate(ctx, &counts, "rating, COUNT(id) AS total", gDto.FilterGroup{}, model.FieldRating)

	return counts, err //nolint:wrapcheck
}
