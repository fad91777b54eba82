package models

type ContactAgencyRequest struct {
	ListingID int    `json:"listingId"`
	Message   string `json:"message"`
}
