package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/verdantis/nursery-system/internal/core/ports"
)

// PlantHandler handles HTTP requests for catalog and inventory operations.
type PlantHandler struct {
	service ports.CatalogService
}

func NewPlantHandler(service ports.CatalogService) *PlantHandler {
	return &PlantHandler{service: service}
}

// Create handles POST /v1/plants.
//
// @Summary      Add a plant to the catalog
// @Tags         plants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPlantRequest  true  "Plant details"
// @Success      201   {object}  plantResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/plants [post]
func (h *PlantHandler) Create(c echo.Context) error {
	var req createPlantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	plant, err := h.service.CreatePlant(c.Request().Context(), ports.CreatePlantInput{
		SKU:               req.SKU,
		Name:              req.Name,
		Species:           req.Species,
		Category:          req.Category,
		Price:             req.Price,
		Stock:             req.Stock,
		LowStockThreshold: req.LowStockThreshold,
		CareNotes:         req.CareNotes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toPlantResponse(plant))
}

// Update handles PUT /v1/plants/:sku.
//
// @Summary      Update a catalog entry
// @Tags         plants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        sku   path      string              true  "Plant SKU"
// @Param        body  body      updatePlantRequest  true  "Fields to update"
// @Success      200   {object}  plantResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/plants/{sku} [put]
func (h *PlantHandler) Update(c echo.Context) error {
	var req updatePlantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	plant, err := h.service.UpdatePlant(c.Request().Context(), c.Param("sku"), ports.UpdatePlantInput{
		Name:              req.Name,
		Species:           req.Species,
		Category:          req.Category,
		Price:             req.Price,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPlantResponse(plant))
}

// Get handles GET /v1/plants/:sku.
//
// @Summary      Get a plant by SKU
// @Tags         plants
// @Produce      json
// @Security     BearerAuth
// @Param        sku  path      string  true  "Plant SKU"
// @Success      200  {object}  plantResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/plants/{sku} [get]
func (h *PlantHandler) Get(c echo.Context) error {
	plant, err := h.service.GetPlant(c.Request().Context(), c.Param("sku"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPlantResponse(plant))
}

// List handles GET /v1/plants.
//
// @Summary      List catalog entries
// @Tags         plants
// @Produce      json
// @Security     BearerAuth
// @Param        category  query     string  false  "Filter by category"
// @Param        search    query     string  false  "Partial match on name or species"
// @Param        page      query     int     false  "Page number (1-based)"
// @Param        limit     query     int     false  "Rows per page (max 100)"
// @Success      200       {object}  listPlantsResponse
// @Router       /v1/plants [get]
func (h *PlantHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.ListPlants(c.Request().Context(), ports.ListPlantsInput{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return err
	}

	data := make([]plantResponse, 0, len(result.Items))
	for _, p := range result.Items {
		data = append(data, toPlantResponse(p))
	}

	return c.JSON(http.StatusOK, listPlantsResponse{
		Data: data,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// AdjustStock handles PATCH /v1/plants/:sku/stock.
//
// @Summary      Adjust plant stock
// @Tags         plants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        sku   path      string              true  "Plant SKU"
// @Param        body  body      adjustStockRequest  true  "Stock delta (negative to remove)"
// @Success      200   {object}  plantResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/plants/{sku}/stock [patch]
func (h *PlantHandler) AdjustStock(c echo.Context) error {
	var req adjustStockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	plant, err := h.service.AdjustStock(c.Request().Context(), c.Param("sku"), req.Delta)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPlantResponse(plant))
}

// LowStock handles GET /v1/plants/low-stock.
//
// @Summary      List plants at or below their low-stock threshold
// @Tags         plants
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  plantResponse
// @Router       /v1/plants/low-stock [get]
func (h *PlantHandler) LowStock(c echo.Context) error {
	plants, err := h.service.ListLowStock(c.Request().Context())
	if err != nil {
		return err
	}

	data := make([]plantResponse, 0, len(plants))
	for _, p := range plants {
		data = append(data, toPlantResponse(p))
	}
	return c.JSON(http.StatusOK, data)
}

// UpdateCareNotes handles PUT /v1/plants/:sku/care-notes.
//
// @Summary      Update a plant's care notes
// @Tags         plants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        sku   path      string            true  "Plant SKU"
// @Param        body  body      careNotesRequest  true  "Care notes"
// @Success      200   {object}  plantResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/plants/{sku}/care-notes [put]
func (h *PlantHandler) UpdateCareNotes(c echo.Context) error {
	var req careNotesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	plant, err := h.service.UpdateCareNotes(c.Request().Context(), c.Param("sku"), req.CareNotes)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPlantResponse(plant))
}
