package payment

import (
	"hotelops/infras/otel"
	"hotelops/internal/domains/payment/model/dto"
	"hotelops/internal/domains/payment/service"
	"hotelops/shared/constant"
	"hotelops/shared/validator"
	"hotelops/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/create-payment-intent", handler.CreatePaymentIntent)
}

// CreatePaymentIntent starts a card payment with the payment provider.
// @Summary Create a payment intent
// @Description Amount is in major units and converted to cents. Currency defaults to the configured one.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.PaymentIntentRequest true "Payment"
// @Success 200 {object} dto.PaymentIntentResponse
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /api/create-payment-intent [post]
// @Security ApiKeyAuth
func (handler *Handler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePaymentIntent")
	defer scope.End()

	req := dto.PaymentIntentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateIntent(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create payment intent")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
