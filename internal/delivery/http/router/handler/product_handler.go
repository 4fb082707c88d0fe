package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"veggiemarket/internal/delivery/http/response"
	"veggiemarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// ProductRequest represents the request body for creating or updating a product.
type ProductRequest struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Organic     bool     `json:"organic"`
	Unit        string   `json:"unit"`
	Discount    *float64 `json:"discount,omitempty"`
	Featured    bool     `json:"featured"`
}

// List handles catalog listing with optional query filters.
func (h *ProductHandler) List(c echo.Context) error {
	input := usecase.ListProductsInput{
		Query:    c.QueryParam("q"),
		Category: c.QueryParam("category"),
	}

	if raw := c.QueryParam("min_price"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "min_price must be a number")
		}
		input.MinPrice = &value
	}
	if raw := c.QueryParam("max_price"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "max_price must be a number")
		}
		input.MaxPrice = &value
	}
	if raw := c.QueryParam("organic"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "organic must be a boolean")
		}
		input.Organic = &value
	}
	if raw := c.QueryParam("featured"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "featured must be a boolean")
		}
		input.Featured = &value
	}

	products, err := h.productUC.ListProducts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// Get handles fetching a single product by UUID or legacy slug.
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.productUC.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// Create handles adding a catalog product. Admin only.
func (h *ProductHandler) Create(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Image:       req.Image,
		Category:    req.Category,
		Organic:     req.Organic,
		Unit:        req.Unit,
		Discount:    req.Discount,
		Featured:    req.Featured,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// Update handles modifying a catalog product. Admin only.
func (h *ProductHandler) Update(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), usecase.UpdateProductInput{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Image:       req.Image,
		Category:    req.Category,
		Organic:     req.Organic,
		Unit:        req.Unit,
		Discount:    req.Discount,
		Featured:    req.Featured,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// Delete handles removing a catalog product. Admin only.
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.productUC.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted"}, "Product deleted successfully")
}
