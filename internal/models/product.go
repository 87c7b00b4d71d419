package models

import (
	"time"

	"github.com/google/uuid"
)

// Gender values follow the storefront catalog: boys, girls, unisex.
type Gender string

const (
	GenderBoy    Gender = "MENINO"
	GenderGirl   Gender = "MENINA"
	GenderUnisex Gender = "UNISSEX"
)

type Category struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Slug   string    `json:"slug"`
	Order  int       `json:"order"`
	Active bool      `json:"active"`
}

type ProductSize struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Size      string    `json:"size"`
	Stock     int       `json:"stock"`
}

type ProductImage struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	URL       string    `json:"url"`
	IsPrimary bool      `json:"is_primary"`
	Order     int       `json:"order"`
}

type Product struct {
	ID           uuid.UUID      `json:"id"`
	CategoryID   uuid.UUID      `json:"category_id"`
	Name         string         `json:"name"`
	Slug         string         `json:"slug"`
	Description  string         `json:"description"`
	Price        float64        `json:"price"`
	ComparePrice *float64       `json:"compare_price,omitempty"`
	Gender       Gender         `json:"gender"`
	AgeMin       int            `json:"age_min"` // months
	AgeMax       int            `json:"age_max"` // months
	Tags         []string       `json:"tags"`
	Colors       []string       `json:"colors"`
	Featured     bool           `json:"featured"`
	Active       bool           `json:"active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	Category     *Category      `json:"category,omitempty"`
	Sizes        []ProductSize  `json:"sizes,omitempty"`
	Images       []ProductImage `json:"images,omitempty"`
}

// InAgeRange reports whether a child of the given age in months falls inside
// the product's [AgeMin, AgeMax] window.
func (p *Product) InAgeRange(ageMonths int) bool {
	return p.AgeMin <= ageMonths && p.AgeMax >= ageMonths
}

type CreateProductRequest struct {
	CategoryID  uuid.UUID `json:"category_id" validate:"required"`
	Name        string    `json:"name" validate:"required,min=3,max=200"`
	Slug        string    `json:"slug" validate:"required,min=3,max=200"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Gender      Gender    `json:"gender" validate:"required,oneof=MENINO MENINA UNISSEX"`
	AgeMin      int       `json:"age_min" validate:"gte=0"`
	AgeMax      int       `json:"age_max" validate:"gtefield=AgeMin"`
	Tags        []string  `json:"tags,omitempty"`
	Colors      []string  `json:"colors,omitempty"`
	Featured    bool      `json:"featured,omitempty"`
}

type UpdateProductRequest struct {
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	Name        *string    `json:"name,omitempty" validate:"omitempty,min=3,max=200"`
	Description *string    `json:"description,omitempty"`
	Price       *float64   `json:"price,omitempty" validate:"omitempty,gt=0"`
	Gender      *Gender    `json:"gender,omitempty" validate:"omitempty,oneof=MENINO MENINA UNISSEX"`
	AgeMin      *int       `json:"age_min,omitempty" validate:"omitempty,gte=0"`
	AgeMax      *int       `json:"age_max,omitempty" validate:"omitempty,gte=0"`
	Tags        []string   `json:"tags,omitempty"`
	Colors      []string   `json:"colors,omitempty"`
	Featured    *bool      `json:"featured,omitempty"`
	Active      *bool      `json:"active,omitempty"`
}

// ProductFilter carries the storefront listing filters.
type ProductFilter struct {
	CategorySlug string
	Gender       Gender
	Search       string
	Featured     bool
	MinPrice     float64
	MaxPrice     float64
	Page         int
	PageSize     int
}
