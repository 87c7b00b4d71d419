package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/visualapp/storefront-api/internal/api/middleware"
	"github.com/visualapp/storefront-api/internal/errors"
	"github.com/visualapp/storefront-api/internal/models"
	service "github.com/visualapp/storefront-api/internal/services"
	"github.com/visualapp/storefront-api/internal/utils"
	"github.com/visualapp/storefront-api/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService, validator: validator.New()}
}

// ListProducts godoc
//	@Summary		List products
//	@Description	Retrieves the storefront catalog with optional filters and pagination.
//	@Tags			Products
//	@Produce		json
//	@Param			category	query		string					false	"Category slug"
//	@Param			gender		query		string					false	"MENINO, MENINA or UNISSEX"
//	@Param			search		query		string					false	"Free-text search over name and tags"
//	@Param			featured	query		bool					false	"Only featured products"
//	@Param			minPrice	query		number					false	"Minimum price"
//	@Param			maxPrice	query		number					false	"Maximum price"
//	@Param			page		query		int						false	"Page number (default 1)"
//	@Param			pageSize	query		int						false	"Page size (default 12, max 100)"
//	@Success		200			{object}	models.PaginatedResponse
//	@Failure		500			{object}	response.ErrorResponse	"Internal server error"
//	@Router			/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		query := r.URL.Query()

		filter := &models.ProductFilter{
			CategorySlug: query.Get("category"),
			Gender:       models.Gender(query.Get("gender")),
			Search:       query.Get("search"),
		}

		filter.Featured, _ = strconv.ParseBool(query.Get("featured"))
		filter.MinPrice, _ = strconv.ParseFloat(query.Get("minPrice"), 64)
		filter.MaxPrice, _ = strconv.ParseFloat(query.Get("maxPrice"), 64)
		filter.Page, _ = strconv.Atoi(query.Get("page"))
		filter.PageSize, _ = strconv.Atoi(query.Get("pageSize"))

		products, total, err := h.productService.ListProducts(r.Context(), filter)
		if err != nil {
			logger.Error("Failed to list products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     products,
			Total:    total,
			Page:     filter.Page,
			PageSize: filter.PageSize,
		})
	}
}

// GetProduct godoc
//	@Summary		Get a product by slug
//	@Description	Retrieves one product with its category, in-stock sizes and ordered images.
//	@Tags			Products
//	@Produce		json
//	@Param			slug	path		string					true	"Product slug"
//	@Success		200		{object}	models.Product
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Router			/products/{slug} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		slug := r.PathValue("slug")
		if slug == "" {
			response.Error(w, errors.BadRequestError("Product slug is required"))
			return
		}

		product, err := h.productService.GetProductBySlug(r.Context(), slug)
		if err != nil {
			logger.Warn("Product lookup failed", slog.String("slug", slug), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create product input")
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create product", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product created", slog.String("productId", product.ID.String()))
		response.Success(w, http.StatusCreated, product)
	}
}

func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update product input")
			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update product", slog.String("productId", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product updated", slog.String("productId", product.ID.String()))
		response.Success(w, http.StatusOK, product)
	}
}
