package handler

import (
	"log/slog"
	"net/http"

	"veggiemarket/internal/delivery/http/response"
	"veggiemarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for shopping cart handlers.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddCartItemRequest represents the request body for adding a cart item.
type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest represents the request body for setting a line quantity.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// Get returns the active identity's cart.
func (h *CartHandler) Get(c echo.Context) error {
	cart, err := h.cartUC.GetCart(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart retrieved successfully")
}

// AddItem puts a product into the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.cartUC.AddItem(c.Request().Context(), usecase.AddCartItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}); err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.cartUC.GetCart(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item added to cart")
}

// UpdateQuantity sets the absolute quantity of a cart line.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := h.cartUC.UpdateQuantity(c.Request().Context(), usecase.UpdateCartQuantityInput{
		ProductID: c.Param("productID"),
		Quantity:  req.Quantity,
	}); err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.cartUC.GetCart(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart updated")
}

// RemoveItem deletes a line from the cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	if err := h.cartUC.RemoveItem(c.Request().Context(), c.Param("productID")); err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.cartUC.GetCart(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item removed from cart")
}

// Clear empties the cart.
func (h *CartHandler) Clear(c echo.Context) error {
	if err := h.cartUC.Clear(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Cart cleared"}, "Cart cleared")
}
