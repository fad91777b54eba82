package models

import "time"

type CreatePaymentRequest struct {
	ListingID int    `json:"listingId"`
	Amount    int64  `json:"amount"`
	Method    string `json:"method"`
	Reference string `json:"reference"`
}

type Payment struct {
	ID        int       `json:"id"`
	ListingID int       `json:"listingId"`
	Amount    int64     `json:"amount"`
	Method    string    `json:"method"`
	Reference string    `json:"reference"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type GetPaymentsResponse struct {
	Payments []Payment `json:"payments"`
}
