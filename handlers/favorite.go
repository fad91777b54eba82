package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/NGanna24/mi-gban-sub000/data"
	"github.com/NGanna24/mi-gban-sub000/data/repos"
	"github.com/NGanna24/mi-gban-sub000/models"
)

type FavoriteHandler struct {
	favorites *repos.FavoriteRepo
	listings  *repos.ListingRepo
}

func NewFavoriteHandler(favorites *repos.FavoriteRepo, listings *repos.ListingRepo) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites, listings: listings}
}

func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) Result {
	user := r.Context().Value("user").(data.User)

	var req models.AddFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}
	if req.ListingID <= 0 {
		return BadRequest("Listing ID is required.")
	}

	listing, err := h.listings.GetListingByID(req.ListingID)
	if err != nil {
		return InternalError(err, "add favorite: get listing: ")
	}
	if listing == nil {
		return NotFound("Listing not found.")
	}

	id, err := h.favorites.AddFavorite(user.ID, req.ListingID)
	if err != nil {
		if errors.Is(err, repos.ErrDuplicateFavorite) {
			return Conflict("Listing is already in favorites.")
		}
		return InternalError(err, "add favorite: ")
	}

	return Created(id)
}

func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) Result {
	user := r.Context().Value("user").(data.User)

	listingID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid listing ID.")
	}

	if err := h.favorites.RemoveFavorite(user.ID, listingID); err != nil {
		return InternalError(err, "remove favorite: ")
	}

	return Ok(nil)
}

func (h *FavoriteHandler) GetFavorites(w http.ResponseWriter, r *http.Request) Result {
	user := r.Context().Value("user").(data.User)

	listings, err := h.favorites.GetFavoriteListings(user.ID)
	if err != nil {
		return InternalError(err, "get favorites: ")
	}

	res := models.GetFavoritesResponse{Listings: make([]models.Listing, 0, len(listings))}
	for _, l := range listings {
		res.Listings = append(res.Listings, ToModelListing(l, nil))
	}

	return Ok(res)
}
