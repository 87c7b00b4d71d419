package models_test

import (
	"testing"
	"time"

	"github.com/visualapp/storefront-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAgeInMonths(t *testing.T) {
	at := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		birthDate time.Time
		expected  int
	}{
		{
			name:      "exactly four years",
			birthDate: time.Date(2022, time.August, 15, 0, 0, 0, 0, time.UTC),
			expected:  48,
		},
		{
			name:      "day of month is ignored",
			birthDate: time.Date(2022, time.August, 31, 0, 0, 0, 0, time.UTC),
			expected:  48,
		},
		{
			name:      "month delta can be negative",
			birthDate: time.Date(2022, time.December, 1, 0, 0, 0, 0, time.UTC),
			expected:  44,
		},
		{
			name:      "newborn",
			birthDate: time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
			expected:  0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			child := &models.Child{BirthDate: tc.birthDate}
			assert.Equal(t, tc.expected, child.AgeInMonths(at))
		})
	}
}

func TestInAgeRange(t *testing.T) {
	product := &models.Product{AgeMin: 36, AgeMax: 72}

	assert.True(t, product.InAgeRange(36))
	assert.True(t, product.InAgeRange(48))
	assert.True(t, product.InAgeRange(72))
	assert.False(t, product.InAgeRange(35))
	assert.False(t, product.InAgeRange(73))
}
