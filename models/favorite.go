package models

type AddFavoriteRequest struct {
	ListingID int `json:"listingId"`
}

type GetFavoritesResponse struct {
	Listings []Listing `json:"listings"`
}
