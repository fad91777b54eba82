package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NGanna24/mi-gban-sub000/models"
)

func strPtr(s string) *string     { return &s }
func int64Ptr(n int64) *int64     { return &n }
func floatPtr(f float64) *float64 { return &f }

func TestValidateCriteria_EmptyAlertRejected(t *testing.T) {
	msg := validateCriteria(models.AlertCriteria{})
	assert.NotEmpty(t, msg)

	// Max bounds alone do not discriminate.
	msg = validateCriteria(models.AlertCriteria{PriceMax: int64Ptr(500000)})
	assert.NotEmpty(t, msg)
}

func TestValidateCriteria_SingleDiscriminatorAccepted(t *testing.T) {
	assert.Empty(t, validateCriteria(models.AlertCriteria{City: strPtr("Dakar")}))
	assert.Empty(t, validateCriteria(models.AlertCriteria{District: strPtr("Plateau")}))
	assert.Empty(t, validateCriteria(models.AlertCriteria{PropertyType: strPtr("villa")}))
	assert.Empty(t, validateCriteria(models.AlertCriteria{PriceMin: int64Ptr(100000)}))
	assert.Empty(t, validateCriteria(models.AlertCriteria{SurfaceMin: floatPtr(40)}))
}

func TestValidateCriteria_ContradictoryBounds(t *testing.T) {
	msg := validateCriteria(models.AlertCriteria{
		City:     strPtr("Dakar"),
		PriceMin: int64Ptr(500000),
		PriceMax: int64Ptr(100000),
	})
	assert.NotEmpty(t, msg)

	msg = validateCriteria(models.AlertCriteria{
		City:       strPtr("Dakar"),
		SurfaceMin: floatPtr(100),
		SurfaceMax: floatPtr(50),
	})
	assert.NotEmpty(t, msg)
}

func TestValidateCriteria_InvalidTransaction(t *testing.T) {
	msg := validateCriteria(models.AlertCriteria{
		City:        strPtr("Dakar"),
		Transaction: strPtr("lease"),
	})
	assert.NotEmpty(t, msg)

	assert.Empty(t, validateCriteria(models.AlertCriteria{
		City:        strPtr("Dakar"),
		Transaction: strPtr("rent"),
	}))
}

func TestAlertRoundTrip(t *testing.T) {
	criteria := models.AlertCriteria{
		PropertyType: strPtr("appartement"),
		Transaction:  strPtr("rent"),
		City:         strPtr("Dakar"),
		PriceMin:     int64Ptr(100000),
		PriceMax:     int64Ptr(300000),
		Amenities:    []string{"piscine"},
	}

	alert := toDataAlert(criteria)
	back := toModelAlert(alert)

	assert.Equal(t, criteria.PropertyType, back.Criteria.PropertyType)
	assert.Equal(t, criteria.Transaction, back.Criteria.Transaction)
	assert.Equal(t, criteria.City, back.Criteria.City)
	assert.Equal(t, criteria.PriceMin, back.Criteria.PriceMin)
	assert.Equal(t, criteria.PriceMax, back.Criteria.PriceMax)
	assert.Equal(t, []string{"piscine"}, back.Criteria.Amenities)
}
