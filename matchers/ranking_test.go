package matchers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/NGanna24/mi-gban-sub000/data"
	"github.com/NGanna24/mi-gban-sub000/enums"
)

func rankListing(id int, city, propertyType string, price int64, views int, created time.Time) data.Listing {
	return data.Listing{
		ID:           id,
		City:         city,
		PropertyType: propertyType,
		Price:        price,
		ViewCount:    views,
		CreatedAt:    created,
	}
}

func TestScore_PreferredCity(t *testing.T) {
	profile := &data.PreferenceProfile{Cities: []string{"Abidjan"}}
	now := time.Now()

	assert.Equal(t, 40, Score(rankListing(1, "Abidjan", "villa", 900000, 0, now), profile))
	assert.Equal(t, 0, Score(rankListing(2, "Bouake", "villa", 900000, 0, now), profile))
}

func TestScore_Additive(t *testing.T) {
	budget := int64(500000)
	profile := &data.PreferenceProfile{
		Cities:        []string{"Abidjan"},
		PropertyTypes: []string{"appartement"},
		BudgetCeiling: &budget,
	}
	now := time.Now()

	assert.Equal(t, 90, Score(rankListing(1, "Abidjan", "appartement", 400000, 0, now), profile))
	assert.Equal(t, 70, Score(rankListing(2, "Abidjan", "villa", 400000, 0, now), profile))
	assert.Equal(t, 20, Score(rankListing(3, "Bouake", "villa", 400000, 0, now), profile))
}

func TestScore_NilProfile(t *testing.T) {
	assert.Equal(t, 0, Score(rankListing(1, "Abidjan", "villa", 1, 0, time.Now()), nil))
}

func TestLabel_Thresholds(t *testing.T) {
	assert.Equal(t, enums.RelevanceHigh, Label(40))
	assert.Equal(t, enums.RelevanceHigh, Label(90))
	assert.Equal(t, enums.RelevanceMedium, Label(20))
	assert.Equal(t, enums.RelevanceMedium, Label(39))
	assert.Equal(t, enums.RelevanceStandard, Label(19))
	assert.Equal(t, enums.RelevanceStandard, Label(0))
}

func TestRank_PreferredCityFirst(t *testing.T) {
	now := time.Now()
	profile := &data.PreferenceProfile{Cities: []string{"Abidjan"}}

	listings := []data.Listing{
		rankListing(1, "Bouake", "villa", 100000, 0, now),
		rankListing(2, "Abidjan", "villa", 100000, 0, now),
	}

	ranked := Rank(listings, profile)
	assert.Equal(t, 2, ranked[0].ID)
	assert.Equal(t, 1, ranked[1].ID)
	assert.Equal(t, enums.RelevanceHigh, ranked[0].Relevance)
	assert.Equal(t, enums.RelevanceStandard, ranked[1].Relevance)
}

func TestRank_TieBreakByViewsThenRecency(t *testing.T) {
	now := time.Now()
	profile := &data.PreferenceProfile{Cities: []string{"Abidjan"}}

	listings := []data.Listing{
		rankListing(1, "Abidjan", "villa", 100000, 5, now.Add(-2*time.Hour)),
		rankListing(2, "Abidjan", "villa", 100000, 10, now.Add(-3*time.Hour)),
		rankListing(3, "Abidjan", "villa", 100000, 5, now.Add(-time.Hour)),
	}

	ranked := Rank(listings, profile)
	assert.Equal(t, 2, ranked[0].ID)
	assert.Equal(t, 3, ranked[1].ID)
	assert.Equal(t, 1, ranked[2].ID)
}

func TestRank_EmptyProfileFallsBackToPopularity(t *testing.T) {
	now := time.Now()
	listings := []data.Listing{
		rankListing(1, "Abidjan", "villa", 100000, 3, now.Add(-time.Hour)),
		rankListing(2, "Bouake", "studio", 50000, 9, now.Add(-2*time.Hour)),
	}

	empty := &data.PreferenceProfile{}
	ranked := Rank(listings, empty)

	popular := RankPopular(listings)
	assert.Len(t, ranked, len(listings))
	for i := range ranked {
		assert.Equal(t, popular[i].ID, ranked[i].ID)
		assert.Equal(t, enums.RelevanceStandard, ranked[i].Relevance)
	}
}

func TestRank_NilProfileNeverEmpty(t *testing.T) {
	now := time.Now()
	listings := []data.Listing{
		rankListing(1, "Abidjan", "villa", 100000, 0, now),
		rankListing(2, "Bouake", "studio", 50000, 0, now.Add(-time.Minute)),
	}

	ranked := Rank(listings, nil)
	assert.Len(t, ranked, 2)
}

func TestRankRecent(t *testing.T) {
	now := time.Now()
	listings := []data.Listing{
		rankListing(1, "Abidjan", "villa", 100000, 0, now.Add(-2*time.Hour)),
		rankListing(2, "Bouake", "studio", 50000, 0, now),
	}

	recent := RankRecent(listings)
	assert.Equal(t, 2, recent[0].ID)
	assert.Equal(t, 1, recent[1].ID)
}

func TestHasDiscriminators(t *testing.T) {
	assert.False(t, HasDiscriminators(nil))
	assert.False(t, HasDiscriminators(&data.PreferenceProfile{}))
	assert.True(t, HasDiscriminators(&data.PreferenceProfile{Cities: []string{"Abidjan"}}))
	assert.True(t, HasDiscriminators(&data.PreferenceProfile{PropertyTypes: []string{"villa"}}))

	project := enums.ProjectRent
	assert.True(t, HasDiscriminators(&data.PreferenceProfile{Project: &project}))
}
