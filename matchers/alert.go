package matchers

import (
	"sort"
	"strings"
	"time"

	"github.com/NGanna24/mi-gban-sub000/data"
)

// MaxMatches caps how many listings a single sweep reports per alert.
const MaxMatches = 20

// NeverNotifiedLookback bounds the candidate window for alerts that have
// never produced a notification.
const NeverNotifiedLookback = 7 * 24 * time.Hour

const (
	AttrSurface   = "superficie"
	AttrBedrooms  = "chambres"
	AttrBathrooms = "salles_bain"
)

// Cutoff returns the creation time a listing must be newer than to count
// as "new since last check" for the alert.
func Cutoff(alert data.Alert, now time.Time) time.Time {
	if alert.LastNotifiedAt != nil {
		return *alert.LastNotifiedAt
	}
	return now.Add(-NeverNotifiedLookback)
}

// Due reports whether enough time has passed since the alert's last
// notification for its frequency. Never-notified alerts are always due.
func Due(alert data.Alert, now time.Time) bool {
	if alert.LastNotifiedAt == nil {
		return true
	}
	return now.Sub(*alert.LastNotifiedAt) >= alert.Frequency.MinInterval()
}

// MatchesCriteria evaluates the alert's specified criteria against the
// listing. Absent criteria are wildcards; specified ones are AND-ed.
func MatchesCriteria(alert data.Alert, listing data.Listing) bool {
	if alert.PropertyType != nil && listing.PropertyType != *alert.PropertyType {
		return false
	}
	if alert.Transaction != nil && listing.Transaction != *alert.Transaction {
		return false
	}
	if alert.City != nil && !ContainsFold(listing.City, *alert.City) {
		return false
	}
	if alert.District != nil && !ContainsFold(listing.District, *alert.District) {
		return false
	}
	if alert.PriceMin != nil && listing.Price < *alert.PriceMin {
		return false
	}
	if alert.PriceMax != nil && listing.Price > *alert.PriceMax {
		return false
	}
	if alert.SurfaceMin != nil && !attributeAtLeast(listing, AttrSurface, *alert.SurfaceMin) {
		return false
	}
	if alert.SurfaceMax != nil && !attributeAtMost(listing, AttrSurface, *alert.SurfaceMax) {
		return false
	}
	if alert.MinBedrooms != nil && !attributeAtLeast(listing, AttrBedrooms, float64(*alert.MinBedrooms)) {
		return false
	}
	if alert.MinBathrooms != nil && !attributeAtLeast(listing, AttrBathrooms, float64(*alert.MinBathrooms)) {
		return false
	}
	for _, amenity := range alert.Amenities {
		if _, ok := attribute(listing, amenity); !ok {
			return false
		}
	}
	return true
}

// Matches combines the new-since gate with the criteria predicate.
func Matches(alert data.Alert, listing data.Listing, now time.Time) bool {
	if !listing.CreatedAt.After(Cutoff(alert, now)) {
		return false
	}
	return MatchesCriteria(alert, listing)
}

// FilterMatches returns up to MaxMatches matching listings, most recent
// first.
func FilterMatches(alert data.Alert, listings []data.Listing, now time.Time) []data.Listing {
	matched := make([]data.Listing, 0)
	for _, l := range listings {
		if Matches(alert, l, now) {
			matched = append(matched, l)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if len(matched) > MaxMatches {
		matched = matched[:MaxMatches]
	}
	return matched
}

// ContainsFold reports whether s contains substr, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func attribute(listing data.Listing, nom string) (float64, bool) {
	for _, a := range listing.Attributes {
		if strings.EqualFold(a.Nom, nom) {
			return a.Valeur, true
		}
	}
	return 0, false
}

// A listing lacking the attribute fails the threshold clause.
func attributeAtLeast(listing data.Listing, nom string, min float64) bool {
	v, ok := attribute(listing, nom)
	return ok && v >= min
}

func attributeAtMost(listing data.Listing, nom string, max float64) bool {
	v, ok := attribute(listing, nom)
	return ok && v <= max
}
