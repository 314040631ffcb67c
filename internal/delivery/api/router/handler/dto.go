package handler

import (
	"time"

	"harvest/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/shopspring/decimal"
)

const pickupDateLayout = time.DateOnly

// CoordinateResponse is a point on the map.
type CoordinateResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func toCoordinate(p *orb.Point) *CoordinateResponse {
	if p == nil {
		return nil
	}

	return &CoordinateResponse{Latitude: p.Lat(), Longitude: p.Lon()}
}

// ListingResponse is the public view of a listing.
type ListingResponse struct {
	ID                uuid.UUID            `json:"id"`
	SellerID          uuid.UUID            `json:"seller_id"`
	ProductName       string               `json:"product_name"`
	Grade             *string              `json:"grade,omitempty"`
	Description       *string              `json:"description,omitempty"`
	QuantityTotal     decimal.Decimal      `json:"quantity_total"`
	QuantityAvailable decimal.Decimal      `json:"quantity_available"`
	PricePerUnit      decimal.Decimal      `json:"price_per_unit"`
	PickupDate        string               `json:"pickup_date"`
	Status            entity.ListingStatus `json:"status"`
	Location          *CoordinateResponse  `json:"location,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

func toListingResponse(l *entity.Listing) *ListingResponse {
	return &ListingResponse{
		ID:                l.ID,
		SellerID:          l.SellerID,
		ProductName:       l.ProductName,
		Grade:             l.Grade,
		Description:       l.Description,
		QuantityTotal:     l.QuantityTotal,
		QuantityAvailable: l.QuantityAvailable,
		PricePerUnit:      l.PricePerUnit,
		PickupDate:        l.PickupDate.Format(pickupDateLayout),
		Status:            l.Status,
		Location:          toCoordinate(l.Location),
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         l.UpdatedAt,
	}
}

func toListingResponses(listings []*entity.Listing) []*ListingResponse {
	out := make([]*ListingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, toListingResponse(l))
	}

	return out
}

// RankedListingResponse is a match candidate. DistanceKm is null when unknown.
type RankedListingResponse struct {
	Listing    *ListingResponse `json:"listing"`
	DistanceKm *float64         `json:"distance_km"`
}

// DemandResponse is the public view of a demand.
type DemandResponse struct {
	ID              uuid.UUID           `json:"id"`
	BuyerID         uuid.UUID           `json:"buyer_id"`
	ProductName     string              `json:"product_name"`
	DesiredQuantity decimal.Decimal     `json:"desired_quantity"`
	Unit            string              `json:"unit"`
	DesiredPrice    *decimal.Decimal    `json:"desired_price,omitempty"`
	Status          entity.DemandStatus `json:"status"`
	Location        *CoordinateResponse `json:"location,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
}

func toDemandResponse(d *entity.Demand) *DemandResponse {
	return &DemandResponse{
		ID:              d.ID,
		BuyerID:         d.BuyerID,
		ProductName:     d.ProductName,
		DesiredQuantity: d.DesiredQuantity,
		Unit:            d.Unit,
		DesiredPrice:    d.DesiredPrice,
		Status:          d.Status,
		Location:        toCoordinate(d.Location),
		CreatedAt:       d.CreatedAt,
	}
}

// CreateDemandResponse carries the stored demand and its ranked matches.
type CreateDemandResponse struct {
	Demand  *DemandResponse          `json:"demand"`
	Matches []*RankedListingResponse `json:"matches"`
}

// OrderResponse is an order as seen by one of its parties. The confirmation
// code is only shown to the buyer.
type OrderResponse struct {
	ID               uuid.UUID          `json:"id"`
	ListingID        uuid.UUID          `json:"listing_id"`
	BuyerID          uuid.UUID          `json:"buyer_id"`
	SellerID         uuid.UUID          `json:"seller_id"`
	QuantityOrdered  decimal.Decimal    `json:"quantity_ordered"`
	TotalPrice       decimal.Decimal    `json:"total_price"`
	Status           entity.OrderStatus `json:"status"`
	ConfirmationCode string             `json:"confirmation_code,omitempty"`
	PickupSlot       string             `json:"pickup_slot"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

func toOrderResponse(o *entity.Order, viewer uuid.UUID) *OrderResponse {
	resp := &OrderResponse{
		ID:              o.ID,
		ListingID:       o.ListingID,
		BuyerID:         o.BuyerID,
		SellerID:        o.SellerID,
		QuantityOrdered: o.QuantityOrdered,
		TotalPrice:      o.TotalPrice,
		Status:          o.Status,
		PickupSlot:      o.PickupSlot,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	if viewer == o.BuyerID {
		resp.ConfirmationCode = o.ConfirmationCode
	}

	return resp
}

func toOrderResponses(orders []*entity.Order, viewer uuid.UUID) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o, viewer))
	}

	return out
}

// PriceSuggestionResponse summarizes recent unit prices. Price fields are
// null when there is no history.
type PriceSuggestionResponse struct {
	ProductName string           `json:"product_name"`
	Days        int              `json:"days"`
	Count       int              `json:"count"`
	Average     *decimal.Decimal `json:"average"`
	Low         *decimal.Decimal `json:"low"`
	High        *decimal.Decimal `json:"high"`
}

// DeviceResponse is a registered push endpoint. The token itself is not echoed.
type DeviceResponse struct {
	ID             uuid.UUID             `json:"id"`
	InstallationID string                `json:"installation_id"`
	Platform       entity.DevicePlatform `json:"platform"`
	IsActive       bool                  `json:"is_active"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

func toDeviceResponse(d *entity.Device) *DeviceResponse {
	return &DeviceResponse{
		ID:             d.ID,
		InstallationID: d.InstallationID,
		Platform:       d.Platform,
		IsActive:       d.IsActive,
		UpdatedAt:      d.UpdatedAt,
	}
}
