package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelops/config"
	"hotelops/infras/otel"
	"hotelops/internal/domains/feedback/model"
	"hotelops/internal/domains/feedback/model/dto"
	"hotelops/internal/domains/feedback/repository"
	"hotelops/shared"
	"hotelops/shared/cache"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/event"
	"hotelops/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllFeedback = "feedback:get_all"
	cacheCountFeedback  = "feedback:count"
	cacheSummary        = "feedback:summary"
)

type Feedback interface {
	Create(ctx context.Context, req dto.CreateFeedbackRequest) (dto.FeedbackResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetFeedbackResponse, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context) (dto.SummaryResponse, error)
}

type serviceImpl struct {
	repo      repository.Feedback
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	publisher event.Publisher
}

func New(repo repository.Feedback, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, publisher event.Publisher) Feedback {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		publisher: publisher,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateFeedbackRequest) (res dto.FeedbackResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".feedback.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := shared.Actor(ctx)
	feedback := req.ToModel(user)

	if err = s.repo.Insert(ctx, feedback); err != nil {
		log.Error().Err(err).Msg("failed to create feedback")

		return res, err
	}

	res.FromModel(feedback)

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c)

		if err := s.publisher.Publish(c, event.New(model.EntityName, event.ActionCreated, feedback.ID, user, res)); err != nil {
			log.Error().Err(err).Msg("failed to publish feedback event")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetFeedbackResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".feedback.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllFeedback, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	feedback, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get feedback")

		return res, err
	}

	res.FromModels(feedback, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save feedback to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountFeedback, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &total); err == nil {
		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count feedback")

		return total, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save feedback count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".feedback.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check feedback existence")

		return err
	}

	if !exist {
		return failure.NotFound("feedback not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete feedback")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c)

		if err := s.publisher.Publish(c, event.New(model.EntityName, event.ActionDeleted, id, shared.Actor(c), nil)); err != nil {
			log.Error().Err(err).Msg("failed to publish feedback event")
		}
	}()

	return nil
}

// Summary reports the number of reviews, the mean rating and how often each rating was given.
func (s *serviceImpl) Summary(ctx context.Context) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".feedback.Summary")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.cache.Get(ctx, cacheSummary, &res); err == nil {
		return res, nil
	}

	counts, err := s.repo.RatingCounts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to summarise feedback")

		return res, fmt.Errorf("failed to summarise feedback: %w", err)
	}

	res.FromCounts(counts)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheSummary, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save feedback summary to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, cacheSummary); err != nil {
		log.Error().Err(err).Msg("failed to delete feedback summary cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllFeedback)
	shared.InvalidateCaches(ctx, s.cache, cacheCountFeedback)
}
