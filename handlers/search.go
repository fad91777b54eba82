package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/NGanna24/mi-gban-sub000/data"
	"github.com/NGanna24/mi-gban-sub000/data/repos"
	"github.com/NGanna24/mi-gban-sub000/matchers"
	"github.com/NGanna24/mi-gban-sub000/models"
)

type SearchHandler struct {
	listings    *repos.ListingRepo
	preferences *repos.PreferenceRepo
}

func NewSearchHandler(listings *repos.ListingRepo, preferences *repos.PreferenceRepo) *SearchHandler {
	return &SearchHandler{listings: listings, preferences: preferences}
}

// Search filters by the explicit criteria, then orders the results by the
// caller's preference profile. Personalization failures degrade to the
// popularity order, never to an error or an empty result.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) Result {
	q := r.URL.Query()

	filter := repos.SearchFilter{
		Query:       strings.TrimSpace(q.Get("q")),
		Transaction: q.Get("transactionType"),
	}
	if cities := q.Get("cities"); cities != "" {
		filter.Cities = splitList(cities)
	}
	if types := q.Get("types"); types != "" {
		filter.Types = splitList(types)
	}
	if v := q.Get("priceMin"); v != "" {
		min, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return BadRequest("Invalid priceMin.")
		}
		filter.PriceMin = &min
	}
	if v := q.Get("priceMax"); v != "" {
		max, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return BadRequest("Invalid priceMax.")
		}
		filter.PriceMax = &max
	}
	if filter.PriceMin != nil && filter.PriceMax != nil && *filter.PriceMin > *filter.PriceMax {
		return BadRequest("Minimum price cannot exceed maximum price.")
	}
	if v := q.Get("limit"); v != "" {
		filter.Limit, _ = strconv.Atoi(v)
	}

	listings, err := h.listings.Search(filter)
	if err != nil {
		return InternalError(err, "search listings: ")
	}

	var profile *data.PreferenceProfile
	if user, ok := r.Context().Value("user").(data.User); ok {
		profile, err = h.preferences.GetProfile(user.ID)
		if err != nil {
			// Ranking degrades instead of failing the search.
			slog.Error("search: load preference profile", "userID", user.ID, "error", err)
			profile = nil
		}
	}

	ranked := matchers.Rank(listings, profile)

	res := models.SearchResponse{
		Results: make([]models.SearchResult, 0, len(ranked)),
		Total:   len(ranked),
	}
	for _, rl := range ranked {
		res.Results = append(res.Results, models.SearchResult{
			Listing:   ToModelListing(rl.Listing, nil),
			Score:     rl.Score,
			Relevance: string(rl.Relevance),
		})
	}

	return Ok(res)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) > 20 {
		out = out[:20]
	}
	return out
}
