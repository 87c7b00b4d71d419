package models

import (
	"time"

	"github.com/google/uuid"
)

// Recommendation is unique per (child, product); a later scoring run
// overwrites score and reason for the same pair.
type Recommendation struct {
	ID        uuid.UUID `json:"id"`
	ChildID   uuid.UUID `json:"child_id"`
	ProductID uuid.UUID `json:"product_id"`
	Score     float64   `json:"score"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Product   *Product  `json:"product,omitempty"`
}

type RecommendRequest struct {
	ChildID uuid.UUID `json:"child_id" validate:"required"`
}

// ScoredEntry is one entry of the oracle's ranked list. The oracle is
// untrusted input; entries are validated against the candidate set before
// anything is persisted.
type ScoredEntry struct {
	ProductID string  `json:"productId"`
	Score     float64 `json:"score"`
	Reason    string  `json:"reason"`
}

type RecommendationEntry struct {
	ProductID uuid.UUID `json:"product_id"`
	Score     float64   `json:"score"`
	Reason    string    `json:"reason"`
	Product   *Product  `json:"product,omitempty"`
}

type RecommendationsResponse struct {
	Recommendations []RecommendationEntry `json:"recommendations"`
}
