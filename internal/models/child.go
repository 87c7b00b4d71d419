package models

import (
	"time"

	"github.com/google/uuid"
)

// Child profiles are soft-deleted (Active=false), never physically removed.
type Child struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Name          string    `json:"name"`
	BirthDate     time.Time `json:"birth_date"`
	Gender        Gender    `json:"gender"`
	ClothingSize  string    `json:"clothing_size"`
	ShoeSize      *string   `json:"shoe_size,omitempty"`
	Height        *float64  `json:"height,omitempty"`
	Weight        *float64  `json:"weight,omitempty"`
	StylePrefs    []string  `json:"style_prefs"`
	OccasionPrefs []string  `json:"occasion_prefs"`
	ColorPrefs    []string  `json:"color_prefs"`
	Notes         *string   `json:"notes,omitempty"`
	Avatar        *string   `json:"avatar,omitempty"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AgeInMonths computes the child's age in whole months at the given instant.
// Month granularity matches the catalog age-range fields; the day of month is
// deliberately ignored.
func (c *Child) AgeInMonths(at time.Time) int {
	return (at.Year()-c.BirthDate.Year())*12 + int(at.Month()) - int(c.BirthDate.Month())
}

type CreateChildRequest struct {
	Name          string   `json:"name" validate:"required,min=2,max=60"`
	BirthDate     string   `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Gender        Gender   `json:"gender" validate:"required,oneof=MENINO MENINA UNISSEX"`
	ClothingSize  string   `json:"clothing_size" validate:"required"`
	ShoeSize      *string  `json:"shoe_size,omitempty"`
	Height        *float64 `json:"height,omitempty" validate:"omitempty,gt=0"`
	Weight        *float64 `json:"weight,omitempty" validate:"omitempty,gt=0"`
	StylePrefs    []string `json:"style_prefs"`
	OccasionPrefs []string `json:"occasion_prefs"`
	ColorPrefs    []string `json:"color_prefs"`
	Notes         *string  `json:"notes,omitempty"`
	Avatar        *string  `json:"avatar,omitempty"`
}

type UpdateChildRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=2,max=60"`
	BirthDate     *string  `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender        *Gender  `json:"gender,omitempty" validate:"omitempty,oneof=MENINO MENINA UNISSEX"`
	ClothingSize  *string  `json:"clothing_size,omitempty"`
	ShoeSize      *string  `json:"shoe_size,omitempty"`
	Height        *float64 `json:"height,omitempty" validate:"omitempty,gt=0"`
	Weight        *float64 `json:"weight,omitempty" validate:"omitempty,gt=0"`
	StylePrefs    []string `json:"style_prefs,omitempty"`
	OccasionPrefs []string `json:"occasion_prefs,omitempty"`
	ColorPrefs    []string `json:"color_prefs,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
	Avatar        *string  `json:"avatar,omitempty"`
}
