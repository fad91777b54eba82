package matchers

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/NGanna24/mi-gban-sub000/data"
	"github.com/NGanna24/mi-gban-sub000/enums"
)

func strPtr(s string) *string                                 { return &s }
func int64Ptr(n int64) *int64                                 { return &n }
func intPtr(n int) *int                                       { return &n }
func floatPtr(f float64) *float64                             { return &f }
func timePtr(t time.Time) *time.Time                          { return &t }
func transPtr(t enums.TransactionType) *enums.TransactionType { return &t }

func testListing(now time.Time) data.Listing {
	return data.Listing{
		ID:           1,
		City:         "Dakar",
		District:     "Plateau",
		PropertyType: "appartement",
		Transaction:  enums.TransactionRent,
		Price:        250000,
		Status:       enums.ListingStatusAvailable,
		CreatedAt:    now.Add(-time.Hour),
		Attributes: []data.ListingAttribute{
			{Nom: AttrSurface, Valeur: 85},
			{Nom: AttrBedrooms, Valeur: 3},
			{Nom: AttrBathrooms, Valeur: 2},
		},
	}
}

func testAlert() data.Alert {
	return data.Alert{
		ID:           1,
		Name:         "Appart Dakar",
		PropertyType: strPtr("appartement"),
		Transaction:  transPtr(enums.TransactionRent),
		City:         strPtr("dakar"),
		District:     strPtr("plateau"),
		PriceMin:     int64Ptr(100000),
		PriceMax:     int64Ptr(300000),
		SurfaceMin:   floatPtr(50),
		MinBedrooms:  intPtr(2),
		MinBathrooms: intPtr(1),
		Frequency:    enums.FrequencyDaily,
	}
}

func TestMatchesCriteria_AllCriteriaSatisfied(t *testing.T) {
	now := time.Now()
	assert.True(t, MatchesCriteria(testAlert(), testListing(now)))
}

func TestMatchesCriteria_AbsentCriteriaAreWildcards(t *testing.T) {
	now := time.Now()
	alert := data.Alert{City: strPtr("dakar")}
	assert.True(t, MatchesCriteria(alert, testListing(now)))
}

func TestMatchesCriteria_SingleFieldFlip(t *testing.T) {
	now := time.Now()
	listing := testListing(now)

	flips := map[string]func(*data.Alert){
		"property type": func(a *data.Alert) { a.PropertyType = strPtr("villa") },
		"transaction":   func(a *data.Alert) { a.Transaction = transPtr(enums.TransactionSale) },
		"city":          func(a *data.Alert) { a.City = strPtr("Thies") },
		"district":      func(a *data.Alert) { a.District = strPtr("Almadies") },
		"price min":     func(a *data.Alert) { a.PriceMin = int64Ptr(260000) },
		"price max":     func(a *data.Alert) { a.PriceMax = int64Ptr(200000) },
		"surface min":   func(a *data.Alert) { a.SurfaceMin = floatPtr(100) },
		"bedrooms":      func(a *data.Alert) { a.MinBedrooms = intPtr(4) },
		"bathrooms":     func(a *data.Alert) { a.MinBathrooms = intPtr(3) },
	}

	for name, flip := range flips {
		alert := testAlert()
		flip(&alert)
		assert.False(t, MatchesCriteria(alert, listing), "flipping %s should break the match", name)
	}
}

func TestMatchesCriteria_CitySubstringCaseInsensitive(t *testing.T) {
	now := time.Now()
	listing := testListing(now)
	listing.City = "Grand Dakar"

	alert := data.Alert{City: strPtr("DAKAR")}
	assert.True(t, MatchesCriteria(alert, listing))

	alert.City = strPtr("Thies")
	assert.False(t, MatchesCriteria(alert, listing))
}

func TestMatchesCriteria_MissingAttributeFailsClause(t *testing.T) {
	now := time.Now()
	listing := testListing(now)
	listing.Attributes = nil

	alert := data.Alert{City: strPtr("dakar"), SurfaceMin: floatPtr(10)}
	assert.False(t, MatchesCriteria(alert, listing))

	alert = data.Alert{City: strPtr("dakar"), MinBedrooms: intPtr(1)}
	assert.False(t, MatchesCriteria(alert, listing))
}

func TestMatchesCriteria_Amenities(t *testing.T) {
	now := time.Now()
	listing := testListing(now)
	listing.Attributes = append(listing.Attributes, data.ListingAttribute{Nom: "piscine", Valeur: 1})

	alert := data.Alert{City: strPtr("dakar"), Amenities: []string{"piscine"}}
	assert.True(t, MatchesCriteria(alert, listing))

	alert.Amenities = []string{"piscine", "garage"}
	assert.False(t, MatchesCriteria(alert, listing))
}

func TestMatches_NewSinceLastNotified(t *testing.T) {
	now := time.Now()
	alert := testAlert()
	alert.LastNotifiedAt = timePtr(now.Add(-30 * time.Minute))

	old := testListing(now) // created an hour ago
	assert.False(t, Matches(alert, old, now))

	fresh := testListing(now)
	fresh.CreatedAt = now.Add(-10 * time.Minute)
	assert.True(t, Matches(alert, fresh, now))
}

func TestMatches_NeverNotifiedUsesLookback(t *testing.T) {
	now := time.Now()
	alert := testAlert()

	inside := testListing(now)
	inside.CreatedAt = now.Add(-6 * 24 * time.Hour)
	assert.True(t, Matches(alert, inside, now))

	outside := testListing(now)
	outside.CreatedAt = now.Add(-8 * 24 * time.Hour)
	assert.False(t, Matches(alert, outside, now))
}

func TestFilterMatches_CapAndOrder(t *testing.T) {
	now := time.Now()
	alert := data.Alert{City: strPtr("dakar")}

	listings := make([]data.Listing, 0, 30)
	for i := 0; i < 30; i++ {
		l := testListing(now)
		l.ID = i + 1
		l.CreatedAt = now.Add(-time.Duration(i+1) * time.Minute)
		listings = append(listings, l)
	}

	matched := FilterMatches(alert, listings, now)
	assert.Len(t, matched, MaxMatches)
	for i := 1; i < len(matched); i++ {
		assert.True(t, matched[i-1].CreatedAt.After(matched[i].CreatedAt),
			fmt.Sprintf("match %d should be newer than match %d", i-1, i))
	}
	assert.Equal(t, 1, matched[0].ID)
}

func TestDue_Daily(t *testing.T) {
	now := time.Now()
	alert := data.Alert{Frequency: enums.FrequencyDaily}

	alert.LastNotifiedAt = timePtr(now.Add(-23 * time.Hour))
	assert.False(t, Due(alert, now))

	alert.LastNotifiedAt = timePtr(now.Add(-25 * time.Hour))
	assert.True(t, Due(alert, now))
}

func TestDue_Weekly(t *testing.T) {
	now := time.Now()
	alert := data.Alert{Frequency: enums.FrequencyWeekly}

	alert.LastNotifiedAt = timePtr(now.Add(-2 * time.Hour))
	assert.False(t, Due(alert, now))

	alert.LastNotifiedAt = timePtr(now.Add(-169 * time.Hour))
	assert.True(t, Due(alert, now))
}

func TestDue_Monthly(t *testing.T) {
	now := time.Now()
	alert := data.Alert{Frequency: enums.FrequencyMonthly}

	alert.LastNotifiedAt = timePtr(now.Add(-719 * time.Hour))
	assert.False(t, Due(alert, now))

	alert.LastNotifiedAt = timePtr(now.Add(-721 * time.Hour))
	assert.True(t, Due(alert, now))
}

func TestDue_NeverNotified(t *testing.T) {
	alert := data.Alert{Frequency: enums.FrequencyMonthly}
	assert.True(t, Due(alert, time.Now()))
}
