// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"veggiemarket/internal/delivery/http/middleware"
	"veggiemarket/internal/delivery/http/router/handler"
	"veggiemarket/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	ProductHandler  *handler.ProductHandler
	CartHandler     *handler.CartHandler
	WishlistHandler *handler.WishlistHandler
	OrderHandler    *handler.OrderHandler
	ProfileHandler  *handler.ProfileHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	productHandler  *handler.ProductHandler
	cartHandler     *handler.CartHandler
	wishlistHandler *handler.WishlistHandler
	orderHandler    *handler.OrderHandler
	profileHandler  *handler.ProfileHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		productHandler:  params.ProductHandler,
		cartHandler:     params.CartHandler,
		wishlistHandler: params.WishlistHandler,
		orderHandler:    params.OrderHandler,
		profileHandler:  params.ProfileHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	adminRole := entity.RoleAdmin.String()

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Catalog browsing is public; catalog management is admin only.
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.productHandler.List)
		productGroup.GET("/:id", r.productHandler.Get)
	}
	productAdminGroup := e.Group("/products")
	productAdminGroup.Use(r.authMiddleware.Authenticate)
	productAdminGroup.Use(r.authMiddleware.RequireRole(adminRole))
	{
		productAdminGroup.POST("", r.productHandler.Create)
		productAdminGroup.PUT("/:id", r.productHandler.Update)
		productAdminGroup.DELETE("/:id", r.productHandler.Delete)
	}

	// Cart and wishlist follow the active session identity, so guests
	// may use them without authenticating.
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.Get)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:productID", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:productID", r.cartHandler.RemoveItem)
		cartGroup.DELETE("", r.cartHandler.Clear)
	}

	wishlistGroup := e.Group("/wishlist")
	{
		wishlistGroup.GET("", r.wishlistHandler.Get)
		wishlistGroup.POST("/items", r.wishlistHandler.Add)
		wishlistGroup.DELETE("/items/:productID", r.wishlistHandler.Remove)
		wishlistGroup.GET("/items/:productID", r.wishlistHandler.Contains)
		wishlistGroup.DELETE("", r.wishlistHandler.Clear)
	}

	// Order routes require authentication
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("/checkout", r.orderHandler.Checkout)
		orderGroup.GET("", r.orderHandler.List)
		orderGroup.GET("/:id", r.orderHandler.Get)
		orderGroup.POST("/:id/cancel", r.orderHandler.Cancel)
		orderGroup.GET("/:id/receipt-qr", r.orderHandler.ReceiptQR)
	}

	orderAdminGroup := e.Group("/orders")
	orderAdminGroup.Use(r.authMiddleware.Authenticate)
	orderAdminGroup.Use(r.authMiddleware.RequireRole(adminRole))
	{
		orderAdminGroup.PUT("/:id/status", r.orderHandler.UpdateStatus)
	}

	// Profile routes require authentication
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.Get)
		profileGroup.PUT("", r.profileHandler.Update)
	}

	// Admin routes require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(adminRole))
	{
		adminGroup.GET("/users", r.profileHandler.ListUsers)
	}
}
