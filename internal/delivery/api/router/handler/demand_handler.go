package handler

import (
	"log/slog"
	"net/http"

	"harvest/internal/delivery/api/middleware"
	"harvest/internal/delivery/api/response"
	"harvest/internal/delivery/api/validator"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// DemandHandlerParams holds dependencies for DemandHandler, injected by Fx.
type DemandHandlerParams struct {
	fx.In

	DemandUC usecase.DemandUsecase
	Logger   *slog.Logger
}

// DemandHandler serves buyer demands.
type DemandHandler struct {
	demandUC usecase.DemandUsecase
	logger   *slog.Logger
}

// NewDemandHandler is the constructor for DemandHandler
func NewDemandHandler(params DemandHandlerParams) *DemandHandler {
	return &DemandHandler{
		demandUC: params.DemandUC,
		logger:   params.Logger,
	}
}

// CreateDemandRequest represents the request body for posting a demand.
type CreateDemandRequest struct {
	ProductName     string           `json:"product_name" validate:"required,max=100"`
	DesiredQuantity decimal.Decimal  `json:"desired_quantity" validate:"gt=0"`
	Unit            string           `json:"unit" validate:"required,max=20"`
	DesiredPrice    *decimal.Decimal `json:"desired_price" validate:"omitempty,gte=0"`
	Latitude        *float64         `json:"latitude" validate:"omitempty,latitude"`
	Longitude       *float64         `json:"longitude" validate:"omitempty,longitude"`
}

// CreateDemand handles POST /api/v1/demands. The response lists matching
// listings nearest first.
func (h *DemandHandler) CreateDemand(c echo.Context) error {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateDemandRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid demand input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Details(err))
	}

	result, err := h.demandUC.CreateDemand(c.Request().Context(), buyerID, &usecase.CreateDemandInput{
		ProductName:     req.ProductName,
		DesiredQuantity: req.DesiredQuantity,
		Unit:            req.Unit,
		DesiredPrice:    req.DesiredPrice,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	matches := make([]*RankedListingResponse, 0, len(result.Matches))
	for _, m := range result.Matches {
		matches = append(matches, &RankedListingResponse{
			Listing:    toListingResponse(m.Listing),
			DistanceKm: m.DistanceKm,
		})
	}

	return response.Success(c, http.StatusCreated, &CreateDemandResponse{
		Demand:  toDemandResponse(result.Demand),
		Matches: matches,
	})
}

// ListMyDemands handles GET /api/v1/demands/mine
func (h *DemandHandler) ListMyDemands(c echo.Context) error {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	demands, err := h.demandUC.ListBuyerDemands(c.Request().Context(), buyerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*DemandResponse, 0, len(demands))
	for _, d := range demands {
		out = append(out, toDemandResponse(d))
	}

	return response.Success(c, http.StatusOK, out)
}

// DeleteDemand handles DELETE /api/v1/demands/:id
func (h *DemandHandler) DeleteDemand(c echo.Context) error {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	demandID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid demand ID")
	}

	if err := h.demandUC.DeleteDemand(c.Request().Context(), buyerID, demandID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ProductOptions handles GET /api/v1/demands/products
func (h *DemandHandler) ProductOptions(c echo.Context) error {
	products, err := h.demandUC.ProductOptions(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}
