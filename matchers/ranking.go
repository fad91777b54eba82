package matchers

import (
	"sort"
	"strings"

	"github.com/NGanna24/mi-gban-sub000/data"
	"github.com/NGanna24/mi-gban-sub000/enums"
)

const (
	ScorePreferredCity = 40
	ScorePreferredType = 30
	ScoreWithinBudget  = 20
)

// RankedListing annotates a search result with its relevance score. The
// annotation is derived at query time, never persisted.
type RankedListing struct {
	data.Listing
	Score     int
	Relevance enums.Relevance
}

// Score computes the additive preference score for a listing. A nil
// profile scores zero.
func Score(listing data.Listing, profile *data.PreferenceProfile) int {
	if profile == nil {
		return 0
	}

	score := 0
	if containsAnyFold(profile.Cities, listing.City) {
		score += ScorePreferredCity
	}
	if containsAnyFold(profile.PropertyTypes, listing.PropertyType) {
		score += ScorePreferredType
	}
	if profile.BudgetCeiling != nil && listing.Price <= *profile.BudgetCeiling {
		score += ScoreWithinBudget
	}
	return score
}

func Label(score int) enums.Relevance {
	switch {
	case score >= 40:
		return enums.RelevanceHigh
	case score >= 20:
		return enums.RelevanceMedium
	default:
		return enums.RelevanceStandard
	}
}

// HasDiscriminators reports whether the profile carries anything the
// ranker can act on.
func HasDiscriminators(profile *data.PreferenceProfile) bool {
	if profile == nil {
		return false
	}
	return len(profile.Cities) > 0 || len(profile.PropertyTypes) > 0 || profile.Project != nil
}

// Rank orders listings by preference score, with view count and recency
// as tie-breaks. Profiles without usable discriminators fall back to the
// non-personalized popularity order. The result always contains exactly
// the input listings.
func Rank(listings []data.Listing, profile *data.PreferenceProfile) []RankedListing {
	ranked := make([]RankedListing, 0, len(listings))

	if !HasDiscriminators(profile) {
		for _, l := range RankPopular(listings) {
			ranked = append(ranked, RankedListing{Listing: l, Relevance: enums.RelevanceStandard})
		}
		return ranked
	}

	for _, l := range listings {
		score := Score(l, profile)
		ranked = append(ranked, RankedListing{
			Listing:   l,
			Score:     score,
			Relevance: Label(score),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if ranked[i].ViewCount != ranked[j].ViewCount {
			return ranked[i].ViewCount > ranked[j].ViewCount
		}
		return ranked[i].CreatedAt.After(ranked[j].CreatedAt)
	})

	return ranked
}

// RankPopular orders by view count descending, recency as tie-break.
func RankPopular(listings []data.Listing) []data.Listing {
	out := make([]data.Listing, len(listings))
	copy(out, listings)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ViewCount != out[j].ViewCount {
			return out[i].ViewCount > out[j].ViewCount
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// RankRecent is the final fallback: plain recency order.
func RankRecent(listings []data.Listing) []data.Listing {
	out := make([]data.Listing, len(listings))
	copy(out, listings)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func containsAnyFold(set []string, value string) bool {
	for _, s := range set {
		if strings.EqualFold(s, value) {
			return true
		}
	}
	return false
}
