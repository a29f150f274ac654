package activity

import (
	"hotelops/infras/otel"
	"hotelops/internal/domains/activity/model"
	"hotelops/internal/domains/activity/model/dto"
	"hotelops/internal/domains/activity/service"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Activity
	otel    otel.Otel
}

func New(service service.Activity, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/activities", handler.GetActivities)
}

// GetActivities returns the audit feed, newest first.
// @Summary Get activities
// @Tags Activity
// @Produce json
// @Param event query string false "Filter by event name"
// @Param entity query string false "Filter by entity"
// @Param entity_id query string false "Filter by entity ID"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} dto.GetActivitiesResponse
// @Failure 500 {object} response.Error
// @Router /api/activities [get]
// @Security ApiKeyAuth
func (handler *Handler) GetActivities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActivities")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if queryParams.SortBy == constant.Empty {
		queryParams.SortBy = model.FieldOccurredAt
	}

	queryParams.Sortable(model.TableName, model.SortableFields...)

	filterGroup := dto.FilterFromQuery(r.URL.Query())

	activities, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get activities")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, activities)
}
