package models

import "time"

type CreateReservationRequest struct {
	ListingID int    `json:"listingId"`
	VisitDate string `json:"visitDate"`
	TimeSlot  string `json:"timeSlot"`
}

type Reservation struct {
	ID        int       `json:"id"`
	ListingID int       `json:"listingId"`
	VisitDate string    `json:"visitDate"`
	TimeSlot  string    `json:"timeSlot"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type GetReservationsResponse struct {
	Reservations []Reservation `json:"reservations"`
}

type AvailabilityResponse struct {
	ListingID int      `json:"listingId"`
	Date      string   `json:"date"`
	Available []string `json:"available"`
}
