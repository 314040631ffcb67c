package handler

import (
	"log/slog"
	"net/http"
	"time"

	"harvest/internal/delivery/api/middleware"
	"harvest/internal/delivery/api/response"
	"harvest/internal/delivery/api/validator"
	"harvest/internal/domain/entity"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	ListingUC usecase.ListingUsecase
	Logger    *slog.Logger
}

// ListingHandler serves seller listings and market prices.
type ListingHandler struct {
	listingUC usecase.ListingUsecase
	logger    *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	return &ListingHandler{
		listingUC: params.ListingUC,
		logger:    params.Logger,
	}
}

// CreateListingRequest represents the request body for posting produce.
type CreateListingRequest struct {
	ProductName  string          `json:"product_name" validate:"required,max=100"`
	Grade        *string         `json:"grade" validate:"omitempty,max=20"`
	Description  *string         `json:"description" validate:"omitempty,max=1000"`
	Quantity     decimal.Decimal `json:"quantity" validate:"gt=0"`
	PricePerUnit decimal.Decimal `json:"price_per_unit" validate:"gt=0"`
	PickupDate   string          `json:"pickup_date" validate:"required,datetime=2006-01-02"`
	Latitude     *float64        `json:"latitude" validate:"omitempty,latitude"`
	Longitude    *float64        `json:"longitude" validate:"omitempty,longitude"`
}

// UpdateListingRequest carries the fields a seller may change. Changing the
// total quantity restocks the listing.
type UpdateListingRequest struct {
	Grade         *string          `json:"grade" validate:"omitempty,max=20"`
	Description   *string          `json:"description" validate:"omitempty,max=1000"`
	QuantityTotal *decimal.Decimal `json:"quantity_total" validate:"omitempty,gt=0"`
	PricePerUnit  *decimal.Decimal `json:"price_per_unit" validate:"omitempty,gt=0"`
	PickupDate    *string          `json:"pickup_date" validate:"omitempty,datetime=2006-01-02"`
}

// CreateListing handles POST /api/v1/listings
func (h *ListingHandler) CreateListing(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Details(err))
	}

	pickupDate, _ := time.Parse(pickupDateLayout, req.PickupDate)

	listing, err := h.listingUC.CreateListing(c.Request().Context(), sellerID, &usecase.CreateListingInput{
		ProductName:  req.ProductName,
		Grade:        req.Grade,
		Description:  req.Description,
		Quantity:     req.Quantity,
		PricePerUnit: req.PricePerUnit,
		PickupDate:   pickupDate,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toListingResponse(listing))
}

// UpdateListing handles PATCH /api/v1/listings/:id
func (h *ListingHandler) UpdateListing(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	var req UpdateListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Details(err))
	}

	input := &usecase.UpdateListingInput{
		Grade:         req.Grade,
		Description:   req.Description,
		QuantityTotal: req.QuantityTotal,
		PricePerUnit:  req.PricePerUnit,
	}
	if req.PickupDate != nil {
		pickupDate, _ := time.Parse(pickupDateLayout, *req.PickupDate)
		input.PickupDate = &pickupDate
	}

	listing, err := h.listingUC.UpdateListing(c.Request().Context(), sellerID, listingID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toListingResponse(listing))
}

// DeleteListing handles DELETE /api/v1/listings/:id
func (h *ListingHandler) DeleteListing(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	if err := h.listingUC.DeleteListing(c.Request().Context(), sellerID, listingID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetListing handles GET /api/v1/listings/:id
func (h *ListingHandler) GetListing(c echo.Context) error {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	listing, err := h.listingUC.GetListing(c.Request().Context(), listingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toListingResponse(listing))
}

// ListListings handles GET /api/v1/listings?product=&status=
func (h *ListingHandler) ListListings(c echo.Context) error {
	filter := entity.ListingFilter{
		ProductName: c.QueryParam("product"),
		Status:      entity.ListingStatus(c.QueryParam("status")),
	}
	switch filter.Status {
	case "", entity.ListingStatusAvailable, entity.ListingStatusSoldOut:
	default:
		return response.BadRequest(c, "INVALID_STATUS", "status must be available or sold_out")
	}

	listings, err := h.listingUC.ListListings(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toListingResponses(listings))
}

// ListMyListings handles GET /api/v1/listings/mine
func (h *ListingHandler) ListMyListings(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listings, err := h.listingUC.ListSellerListings(c.Request().Context(), sellerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toListingResponses(listings))
}

// SuggestPrice handles GET /api/v1/listings/price-suggestion?product=
func (h *ListingHandler) SuggestPrice(c echo.Context) error {
	suggestion, err := h.listingUC.SuggestPrice(c.Request().Context(), c.QueryParam("product"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &PriceSuggestionResponse{
		ProductName: suggestion.ProductName,
		Days:        suggestion.Days,
		Count:       suggestion.Count,
		Average:     suggestion.Average,
		Low:         suggestion.Low,
		High:        suggestion.High,
	})
}
