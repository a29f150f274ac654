package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/internal/domains/task/model"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	gRepo "hotelops/shared/repository"
	"hotelops/shared/timezone"
	"time"
)

const (
	argOpenStatus = "open_status"
	argToday      = "today"
)

type Task interface {
	Insert(ctx context.Context, model model.Task) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Task, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Task, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	MarkOverdue(ctx context.Context, today time.Time) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Task]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Task {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Task](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// MarkOverdue moves open tasks due before today to overdue and returns how many changed.
func (r *repositoryImpl) MarkOverdue(ctx context.Context, today time.Time) (int64, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".task.MarkOverdue")
	defer scope.End()

	return r.UpdateCount(ctx, map[string]any{
		model.FieldStatus:        model.StatusOverdue,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: constant.ContextSystem,
	}, OverdueFilter(today))
}

// OverdueFilter matches open tasks whose due date is before today. Arg names are distinct from the
// updated columns so the SET and WHERE values do not collide.
func OverdueFilter(today time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				ArgName:  argOpenStatus,
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    model.OpenStatuses,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  argToday,
				Field:    model.FieldDueDate,
				Operator: gDto.FilterOperatorLess,
				Value:    today,
				Table:    model.TableName,
			},
		},
	}
}
