package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"hotelops/config"
	"hotelops/infras/otel"
	"hotelops/infras/stripe"
	"hotelops/internal/domains/payment/model/dto"
	"hotelops/shared"
	"hotelops/shared/constant"
	"hotelops/shared/event"
	"hotelops/shared/failure"

	"github.com/rs/zerolog/log"
)

const entityPaymentIntent = "payment_intent"

type Payment interface {
	CreateIntent(ctx context.Context, req dto.PaymentIntentRequest) (dto.PaymentIntentResponse, error)
}

type serviceImpl struct {
	gateway   stripe.Gateway
	cfg       *config.Config
	otel      otel.Otel
	publisher event.Publisher
}

func New(gateway stripe.Gateway, cfg *config.Config, otel otel.Otel, publisher event.Publisher) Payment {
	return &serviceImpl{
		gateway:   gateway,
		cfg:       cfg,
		otel:      otel,
		publisher: publisher,
	}
}

func (s *serviceImpl) CreateIntent(ctx context.Context, req dto.PaymentIntentRequest) (res dto.PaymentIntentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.CreateIntent")
	defer scope.End()
	defer scope.TraceIfError(err)

	amount := req.MinorUnits()
	if amount <= 0 {
		return res, failure.FieldError(dto.FieldAmount, "Amount must be at least 0.01")
	}

	intent, err := s.gateway.CreatePaymentIntent(ctx, amount, req.CurrencyOr(s.cfg.External.Stripe.Currency), req.Metadata())
	if err != nil {
		return res, err
	}

	res.FromIntent(intent)

	user := shared.Actor(ctx)

	go func() {
		c := context.WithoutCancel(ctx)

		evt := event.New(entityPaymentIntent, event.ActionCreated, intent.ID, user, req.Metadata())
		if err := s.publisher.Publish(c, evt); err != nil {
			log.Error().Err(err).Msg("failed to publish payment event")
		}
	}()

	return res, nil
}
