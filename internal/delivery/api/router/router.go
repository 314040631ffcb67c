// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"harvest/config"
	"harvest/internal/delivery/api/middleware"
	"harvest/internal/delivery/api/realtime"
	"harvest/internal/delivery/api/router/handler"
	"harvest/internal/domain/entity"
	"harvest/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler       *handler.HealthHandler
	ListingHandler      *handler.ListingHandler
	DemandHandler       *handler.DemandHandler
	OrderHandler        *handler.OrderHandler
	NotificationHandler *handler.NotificationHandler
	DeviceHandler       *handler.DeviceHandler
	RealtimeHandler     *realtime.Handler
	AuthMiddleware      *middleware.AuthMiddleware
	Metrics             *metrics.Metrics `optional:"true"`
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler       *handler.HealthHandler
	listingHandler      *handler.ListingHandler
	demandHandler       *handler.DemandHandler
	orderHandler        *handler.OrderHandler
	notificationHandler *handler.NotificationHandler
	deviceHandler       *handler.DeviceHandler
	realtimeHandler     *realtime.Handler
	authMiddleware      *middleware.AuthMiddleware
	metrics             *metrics.Metrics
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:       params.HealthHandler,
		listingHandler:      params.ListingHandler,
		demandHandler:       params.DemandHandler,
		orderHandler:        params.OrderHandler,
		notificationHandler: params.NotificationHandler,
		deviceHandler:       params.DeviceHandler,
		realtimeHandler:     params.RealtimeHandler,
		authMiddleware:      params.AuthMiddleware,
		metrics:             params.Metrics,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	if r.metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	// The websocket authenticates with its first frame, not a header.
	e.GET("/ws", r.realtimeHandler.Serve)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	seller := r.authMiddleware.RequireRole(entity.RoleSeller)
	buyer := r.authMiddleware.RequireRole(entity.RoleBuyer)

	listings := apiV1.Group("/listings")
	{
		listings.GET("", r.listingHandler.ListListings)
		listings.GET("/price-suggestion", r.listingHandler.SuggestPrice)
		listings.GET("/mine", r.listingHandler.ListMyListings, seller)
		listings.GET("/:id", r.listingHandler.GetListing)
		listings.POST("", r.listingHandler.CreateListing, seller)
		listings.PATCH("/:id", r.listingHandler.UpdateListing, seller)
		listings.DELETE("/:id", r.listingHandler.DeleteListing, seller)
	}

	demands := apiV1.Group("/demands")
	{
		demands.GET("/products", r.demandHandler.ProductOptions)
		demands.POST("", r.demandHandler.CreateDemand, buyer)
		demands.GET("/mine", r.demandHandler.ListMyDemands, buyer)
		demands.DELETE("/:id", r.demandHandler.DeleteDemand, buyer)
	}

	orders := apiV1.Group("/orders")
	{
		orders.POST("", r.orderHandler.CreateOrder, buyer)
		orders.GET("/purchases", r.orderHandler.PurchaseHistory, buyer)
		orders.GET("/sales", r.orderHandler.SalesHistory, seller)
		orders.GET("/:id/qrcode", r.orderHandler.PickupQRCode, buyer)
		orders.POST("/:id/confirm", r.orderHandler.ConfirmPickup, seller)
	}

	apiV1.GET("/notifications", r.notificationHandler.ListNotifications)

	devices := apiV1.Group("/devices")
	{
		devices.POST("", r.deviceHandler.RegisterDevice)
		devices.GET("", r.deviceHandler.ListDevices)
		devices.PUT("/:id/token", r.deviceHandler.RefreshPushToken)
		devices.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}
