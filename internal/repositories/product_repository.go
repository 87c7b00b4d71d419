package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/visualapp/storefront-api/internal/models"
	"github.com/visualapp/storefront-api/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	ListProducts(ctx context.Context, filter *models.ProductFilter) ([]*models.Product, int, error)
	// ListActiveProducts returns up to limit active products with category,
	// in-stock sizes and primary image; the recommendation candidate set.
	ListActiveProducts(ctx context.Context, limit int) ([]*models.Product, error)
	GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Product, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `p.id, p.category_id, p.name, p.slug, p.description, p.price, p.compare_price,
		p.gender, p.age_min, p.age_max, p.tags, p.colors, p.featured, p.active, p.created_at, p.updated_at,
		c.id, c.name, c.slug, c."order", c.active`

func scanProduct(scanner interface{ Scan(...any) error }) (*models.Product, error) {

	product := &models.Product{}
	category := &models.Category{}

	err := scanner.Scan(&product.ID, &product.CategoryID, &product.Name, &product.Slug, &product.Description,
		&product.Price, &product.ComparePrice, &product.Gender, &product.AgeMin, &product.AgeMax,
		pq.Array(&product.Tags), pq.Array(&product.Colors), &product.Featured, &product.Active,
		&product.CreatedAt, &product.UpdatedAt,
		&category.ID, &category.Name, &category.Slug, &category.Order, &category.Active)

	if err != nil {
		return nil, err
	}

	product.Category = category

	return product, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO products (id, category_id, name, slug, description, price, compare_price,
		                      gender, age_min, age_max, tags, colors, featured, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		RETURNING created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query,
		product.ID, product.CategoryID, product.Name, product.Slug, product.Description, product.Price,
		product.ComparePrice, product.Gender, product.AgeMin, product.AgeMax,
		pq.Array(product.Tags), pq.Array(product.Colors), product.Featured, product.Active).
		Scan(&product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	if err := r.attachDetails(dbCtx, []*models.Product{product}, false); err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.slug = $1 AND p.active = TRUE`

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, slug))
	if err != nil {
		return nil, err
	}

	if err := r.attachDetails(dbCtx, []*models.Product{product}, false); err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products
		SET category_id = $1, name = $2, description = $3, price = $4, compare_price = $5,
		    gender = $6, age_min = $7, age_max = $8, tags = $9, colors = $10,
		    featured = $11, active = $12, updated_at = NOW()
		WHERE id = $13
		RETURNING updated_at`

	return r.DB.QueryRowContext(dbCtx, query,
		product.CategoryID, product.Name, product.Description, product.Price, product.ComparePrice,
		product.Gender, product.AgeMin, product.AgeMax, pq.Array(product.Tags), pq.Array(product.Colors),
		product.Featured, product.Active, product.ID).
		Scan(&product.UpdatedAt)
}

func (r *productRepository) ListProducts(ctx context.Context, filter *models.ProductFilter) ([]*models.Product, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	where := []string{"p.active = TRUE"}
	args := []any{}

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.CategorySlug != "" {
		where = append(where, "c.slug = "+arg(filter.CategorySlug))
	}

	if filter.Gender != "" {
		where = append(where, "p.gender = "+arg(string(filter.Gender)))
	}

	if filter.Search != "" {
		p := arg("%" + filter.Search + "%")
		t := arg(filter.Search)
		where = append(where, "(p.name ILIKE "+p+" OR p.description ILIKE "+p+" OR "+t+" = ANY(p.tags))")
	}

	if filter.Featured {
		where = append(where, "p.featured = TRUE")
	}

	if filter.MinPrice > 0 {
		where = append(where, "p.price >= "+arg(filter.MinPrice))
	}

	if filter.MaxPrice > 0 {
		where = append(where, "p.price <= "+arg(filter.MaxPrice))
	}

	whereClause := strings.Join(where, " AND ")

	var total int

	countQuery := `SELECT COUNT(*) FROM products p JOIN categories c ON c.id = p.category_id WHERE ` + whereClause

	if err := r.DB.QueryRowContext(dbCtx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PageSize

	query := `
		SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE ` + whereClause + `
		ORDER BY p.featured DESC, p.created_at DESC
		LIMIT ` + arg(filter.PageSize) + ` OFFSET ` + arg(offset)

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	products, err := collectProducts(rows)
	if err != nil {
		return nil, 0, err
	}

	if err := r.attachDetails(dbCtx, products, true); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *productRepository) ListActiveProducts(ctx context.Context, limit int) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.active = TRUE
		ORDER BY p.created_at DESC
		LIMIT $1`

	rows, err := r.DB.QueryContext(dbCtx, query, limit)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	products, err := collectProducts(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachDetails(dbCtx, products, true); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Product, error) {

	if len(ids) == 0 {
		return nil, nil
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	idStrings := make([]string, len(ids))
	for i, id := range ids {
		idStrings[i] = id.String()
	}

	query := `
		SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = ANY($1::uuid[])`

	rows, err := r.DB.QueryContext(dbCtx, query, pq.Array(idStrings))
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	products, err := collectProducts(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachDetails(dbCtx, products, false); err != nil {
		return nil, err
	}

	return products, nil
}

func collectProducts(rows *sql.Rows) ([]*models.Product, error) {

	var products []*models.Product

	for rows.Next() {

		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

// attachDetails batch-loads sizes and images for the given products.
// primaryOnly limits images to the primary one (listing views).
func (r *productRepository) attachDetails(ctx context.Context, products []*models.Product, primaryOnly bool) error {

	if len(products) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*models.Product, len(products))
	idStrings := make([]string, 0, len(products))

	for _, p := range products {
		byID[p.ID] = p
		idStrings = append(idStrings, p.ID.String())
	}

	sizesQuery := `
		SELECT id, product_id, size, stock
		FROM product_sizes
		WHERE product_id = ANY($1::uuid[]) AND stock > 0
		ORDER BY size`

	rows, err := r.DB.QueryContext(ctx, sizesQuery, pq.Array(idStrings))
	if err != nil {
		return fmt.Errorf("failed to load product sizes: %w", err)
	}

	for rows.Next() {

		var size models.ProductSize

		if err := rows.Scan(&size.ID, &size.ProductID, &size.Size, &size.Stock); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan product size: %w", err)
		}

		if p, ok := byID[size.ProductID]; ok {
			p.Sizes = append(p.Sizes, size)
		}
	}

	rows.Close()

	if err := rows.Err(); err != nil {
		return err
	}

	imagesQuery := `
		SELECT id, product_id, url, is_primary, "order"
		FROM product_images
		WHERE product_id = ANY($1::uuid[])`

	if primaryOnly {
		imagesQuery += ` AND is_primary = TRUE`
	}

	imagesQuery += ` ORDER BY is_primary DESC, "order"`

	rows, err = r.DB.QueryContext(ctx, imagesQuery, pq.Array(idStrings))
	if err != nil {
		return fmt.Errorf("failed to load product images: %w", err)
	}

	defer rows.Close()

	for rows.Next() {

		var image models.ProductImage

		if err := rows.Scan(&image.ID, &image.ProductID, &image.URL, &image.IsPrimary, &image.Order); err != nil {
			return fmt.Errorf("failed to scan product image: %w", err)
		}

		if p, ok := byID[image.ProductID]; ok {
			p.Images = append(p.Images, image)
		}
	}

	return rows.Err()
}
