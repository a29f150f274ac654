package stripe

//go:generate go run go.uber.org/mock/mockgen -source=./stripe.go -destination=./mocks/stripe_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hotelops/config"
	"hotelops/infras/otel"
	"hotelops/shared/constant"
	"hotelops/shared/failure"

	"github.com/rs/zerolog/log"
	stripeGo "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

const (
	otelAttrAmount   = "payment.amount"
	otelAttrCurrency = "payment.currency"
)

type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       string
}

type Gateway interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (PaymentIntent, error)
}

type gatewayImpl struct {
	client paymentintent.Client
	config *config.Config
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) Gateway {
	if config.External.Stripe.SecretKey == "" {
		log.Warn().Msg("Stripe secret key is not configured, payment intents will fail")
	}

	return &gatewayImpl{
		client: paymentintent.Client{
			B:   stripeGo.GetBackend(stripeGo.APIBackend),
			Key: config.External.Stripe.SecretKey,
		},
		config: config,
		otel:   otel,
	}
}

// CreatePaymentIntent creates an intent for amount minor units with automatic payment methods.
func (g *gatewayImpl) CreatePaymentIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (res PaymentIntent, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".stripe.CreatePaymentIntent")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		otelAttrAmount:   int(amount),
		otelAttrCurrency: currency,
	})

	params := &stripeGo.PaymentIntentParams{
		Amount:   stripeGo.Int64(amount),
		Currency: stripeGo.String(currency),
		AutomaticPaymentMethods: &stripeGo.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripeGo.Bool(true),
		},
	}
	params.Context = ctx

	for key, value := range metadata {
		params.AddMetadata(key, value)
	}

	intent, err := g.client.New(params)
	if err != nil {
		log.Error().Err(err).Int64("amount", amount).Str("currency", currency).Msg("failed to create payment intent")

		var stripeErr *stripeGo.Error
		if errors.As(err, &stripeErr) {
			if stripeErr.HTTPStatusCode >= 400 && stripeErr.HTTPStatusCode < 500 && stripeErr.Type == stripeGo.ErrorTypeInvalidRequest {
				return res, failure.BadRequestFromString(stripeErr.Msg)
			}

			return res, failure.BadGateway(fmt.Sprintf("payment provider error: %s", stripeErr.Msg))
		}

		return res, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       string(intent.Status),
	}, nil
}
