package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelops/infras/otel"
	"hotelops/internal/domains/activity/model/dto"
	"hotelops/internal/domains/activity/repository"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/event"
	"hotelops/shared/failure"
	"net/http"

	"github.com/rs/zerolog/log"
)

type Activity interface {
	Record(ctx context.Context, evt event.Event) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetActivitiesResponse, error)
}

type serviceImpl struct {
	repo repository.Activity
	otel otel.Otel
}

func New(repo repository.Activity, otel otel.Otel) Activity {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Record stores an event once. A redelivered event is ignored.
func (s *serviceImpl) Record(ctx context.Context, evt event.Event) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".activity.Record")
	defer scope.End()
	defer scope.TraceIfError(err)

	if evt.ID == constant.Empty || evt.Name == constant.Empty {
		return failure.BadRequestFromString("event has no id or name")
	}

	activity, err := dto.FromEvent(evt)
	if err != nil {
		return err
	}

	if err = s.repo.Insert(ctx, activity); err != nil {
		if failure.GetCode(err) == http.StatusConflict {
			log.Debug().Str("event_id", evt.ID).Msg("event already recorded")

			return nil
		}

		log.Error().Err(err).Str("event", evt.Name).Msg("failed to record activity")

		return err
	}

	return nil
}

// GetAll is not cached; the worker writes to this table from another process.
func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetActivitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".activity.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count activities")

		return res, fmt.Errorf("failed to count activities: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get activities")

		return res, fmt.Errorf("failed to get activities: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}
