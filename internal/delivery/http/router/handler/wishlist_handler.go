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

// WishlistHandlerParams holds dependencies for WishlistHandler, injected by Fx.
type WishlistHandlerParams struct {
	fx.In

	WishlistUC usecase.WishlistUsecase
	Logger     *slog.Logger
}

// WishlistHandler holds dependencies for wishlist handlers.
type WishlistHandler struct {
	wishlistUC usecase.WishlistUsecase
	logger     *slog.Logger
}

// NewWishlistHandler is the constructor for WishlistHandler.
func NewWishlistHandler(params WishlistHandlerParams) *WishlistHandler {
	return &WishlistHandler{
		wishlistUC: params.WishlistUC,
		logger:     params.Logger,
	}
}

// AddWishlistItemRequest represents the request body for adding a wishlist item.
type AddWishlistItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// Get returns the active identity's wishlist.
func (h *WishlistHandler) Get(c echo.Context) error {
	wishlist, err := h.wishlistUC.GetWishlist(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, wishlist, "Wishlist retrieved successfully")
}

// Add puts a product on the wishlist.
func (h *WishlistHandler) Add(c echo.Context) error {
	var req AddWishlistItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wishlist input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	added, err := h.wishlistUC.Add(c.Request().Context(), req.ProductID)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Item added to wishlist"
	if !added {
		message = "Item already on wishlist"
	}

	wishlist, err := h.wishlistUC.GetWishlist(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, wishlist, message)
}

// Remove takes a product off the wishlist.
func (h *WishlistHandler) Remove(c echo.Context) error {
	if err := h.wishlistUC.Remove(c.Request().Context(), c.Param("productID")); err != nil {
		return errors.WithStack(err)
	}

	wishlist, err := h.wishlistUC.GetWishlist(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, wishlist, "Item removed from wishlist")
}

// Contains reports whether a product is on the wishlist.
func (h *WishlistHandler) Contains(c echo.Context) error {
	present, err := h.wishlistUC.Contains(c.Request().Context(), c.Param("productID"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"in_wishlist": present}, "Wishlist checked")
}

// Clear empties the wishlist.
func (h *WishlistHandler) Clear(c echo.Context) error {
	if err := h.wishlistUC.Clear(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Wishlist cleared"}, "Wishlist cleared")
}
