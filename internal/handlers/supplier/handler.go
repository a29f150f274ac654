package supplier

import (
	"hotelops/infras/otel"
	"hotelops/internal/domains/supplier/model"
	"hotelops/internal/domains/supplier/model/dto"
	"hotelops/internal/domains/supplier/service"
	"hotelops/shared"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/validator"
	"hotelops/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Supplier
	otel    otel.Otel
}

func New(service service.Supplier, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/suppliers", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateSupplier)
		routerGroup.Get("/", handler.GetSuppliers)
		routerGroup.Get("/{id}", handler.GetSupplierByID)
		routerGroup.Put("/{id}", handler.UpdateSupplier)
		routerGroup.Delete("/{id}", handler.DeleteSupplier)
	})
}

// CreateSupplier handles the creation of a new supplier.
// @Summary Create a supplier
// @Tags Supplier
// @Accept json
// @Produce json
// @Param request body dto.CreateSupplierRequest true "Create Supplier Request"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/suppliers [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSupplier")
	defer scope.End()

	req := dto.CreateSupplierRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create supplier")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Supplier created successfully by user " + shared.Actor(ctx))

	response.WithJSON(w, http.StatusCreated, res)
}

// GetSuppliers lists suppliers.
// @Summary List suppliers
// @Tags Supplier
// @Produce json
// @Param name query string false "Filter by name"
// @Param category query string false "Filter by category"
// @Param status query string false "active or inactive"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param sort_by query string false "Sort column"
// @Param sort_dir query string false "ASC or DESC"
// @Success 200 {object} dto.GetSuppliersResponse
// @Failure 500 {object} response.Error
// @Router /api/suppliers [get]
func (handler *Handler) GetSuppliers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSuppliers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.Sortable(model.TableName, model.SortableFields...)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name := r.URL.Query().Get(model.FieldName); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	for _, field := range []string{model.FieldCategory, model.FieldStatus} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	suppliers, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get suppliers")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, suppliers)
}

// GetSupplierByID retrieves a supplier.
// @Summary Get a supplier by ID
// @Tags Supplier
// @Produce json
// @Param id path string true "Supplier ID"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/suppliers/{id} [get]
func (handler *Handler) GetSupplierByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSupplierByID")
	defer scope.End()

	supplier, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get supplier by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, supplier)
}

// UpdateSupplier replaces a supplier.
// @Summary Update a supplier
// @Tags Supplier
// @Accept json
// @Produce json
// @Param id path string true "Supplier ID"
// @Param request body dto.UpdateSupplierRequest true "Update Supplier Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /api/suppliers/{id} [put]
// @Security ApiKeyAuth
func (handler *Handler) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSupplier")
	defer scope.End()

	req := dto.UpdateSupplierRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update supplier")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Supplier updated successfully by user " + shared.Actor(ctx))

	response.WithMessage(w, http.StatusOK, "Supplier updated successfully")
}

// DeleteSupplier deletes a supplier.
// @Summary Delete a supplier
// @Tags Supplier
// @Produce json
// @Param id path string true "Supplier ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /api/suppliers/{id} [delete]
// @Security ApiKeyAuth
func (handler *Handler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSupplier")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete supplier")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Supplier deleted successfully by user " + shared.Actor(ctx))

	response.WithMessage(w, http.StatusOK, "Supplier deleted successfully")
}
