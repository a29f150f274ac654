package inventory

import (
	"hotelops/infras/otel"
	"hotelops/internal/domains/inventory/model"
	"hotelops/internal/domains/inventory/model/dto"
	"hotelops/internal/domains/inventory/service"
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
	service service.Inventory
	otel    otel.Otel
}

func New(service service.Inventory, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/inventory", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateInventory)
		routerGroup.Get("/", handler.GetInventory)
		routerGroup.Get("/{id}", handler.GetInventoryByID)
		routerGroup.Put("/{id}", handler.UpdateInventory)
		routerGroup.Delete("/{id}", handler.DeleteInventory)
	})
}

// CreateInventory handles the creation of a new inventory item.
// @Summary Create an inventory item
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body dto.CreateInventoryRequest true "Create Inventory Request"
// @Success 201 {object} dto.InventoryResponse
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/inventory [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateInventory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateInventory")
	defer scope.End()

	req := dto.CreateInventoryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create inventory item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inventory item created successfully by user " + shared.Actor(ctx))

	response.WithJSON(w, http.StatusCreated, res)
}

// GetInventory lists inventory items.
// @Summary List inventory
// @Tags Inventory
// @Produce json
// @Param item_name query string false "Filter by item name"
// @Param category query string false "Filter by category"
// @Param supplier_id query string false "Filter by supplier"
// @Param low_stock query bool false "Only items at or below their minimum stock level"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param sort_by query string false "Sort column"
// @Param sort_dir query string false "ASC or DESC"
// @Success 200 {object} dto.GetInventoryResponse
// @Failure 500 {object} response.Error
// @Router /api/inventory [get]
func (handler *Handler) GetInventory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInventory")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.Sortable(model.TableName, model.SortableFields...)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	query := r.URL.Query()

	if name := query.Get(model.FieldItemName); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldItemName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	for _, field := range []string{model.FieldCategory, model.FieldSupplierID} {
		if value := query.Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	if lowStock := shared.ConvertStringToBool(query.Get(model.FieldLowStock)); lowStock != nil && *lowStock {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Operator: gDto.FilterPlainQuery,
			Value:    model.LowStockCondition,
		})
	}

	inventory, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inventory")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, inventory)
}

// GetInventoryByID retrieves an inventory item.
// @Summary Get an inventory item by ID
// @Tags Inventory
// @Produce json
// @Param id path string true "Inventory ID"
// @Success 200 {object} dto.InventoryResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/inventory/{id} [get]
func (handler *Handler) GetInventoryByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInventoryByID")
	defer scope.End()

	inventoryItem, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inventory item by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, inventoryItem)
}

// UpdateInventory replaces an inventory item.
// @Summary Update an inventory item
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path string true "Inventory ID"
// @Param request body dto.UpdateInventoryRequest true "Update Inventory Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /api/inventory/{id} [put]
// @Security ApiKeyAuth
func (handler *Handler) UpdateInventory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateInventory")
	defer scope.End()

	req := dto.UpdateInventoryRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update inventory item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inventory item updated successfully by user " + shared.Actor(ctx))

	response.WithMessage(w, http.StatusOK, "Inventory item updated successfully")
}

// DeleteInventory deletes an inventory item.
// @Summary Delete an inventory item
// @Tags Inventory
// @Produce json
// @Param id path string true "Inventory ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /api/inventory/{id} [delete]
// @Security ApiKeyAuth
func (handler *Handler) DeleteInventory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteInventory")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete inventory item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inventory item deleted successfully by user " + shared.Actor(ctx))

	response.WithMessage(w, http.StatusOK, "Inventory item deleted successfully")
}
