package models

import "time"

// AlertCriteria is the explicit shape of a saved search. Every field is
// optional; an alert with none of the discriminating ones set is rejected.
type AlertCriteria struct {
	PropertyType *string  `json:"propertyType,omitempty"`
	Transaction  *string  `json:"transactionType,omitempty"`
	City         *string  `json:"city,omitempty"`
	District     *string  `json:"district,omitempty"`
	PriceMin     *int64   `json:"priceMin,omitempty"`
	PriceMax     *int64   `json:"priceMax,omitempty"`
	SurfaceMin   *float64 `json:"surfaceMin,omitempty"`
	SurfaceMax   *float64 `json:"surfaceMax,omitempty"`
	MinBedrooms  *int     `json:"minBedrooms,omitempty"`
	MinBathrooms *int     `json:"minBathrooms,omitempty"`
	Amenities    []string `json:"amenities,omitempty"`
}

type CreateAlertRequest struct {
	Name      string        `json:"name"`
	Criteria  AlertCriteria `json:"criteria"`
	Frequency string        `json:"frequency"`
}

type UpdateAlertRequest struct {
	Name      string        `json:"name"`
	Criteria  AlertCriteria `json:"criteria"`
	Frequency string        `json:"frequency"`
	Active    bool          `json:"active"`
}

type Alert struct {
	ID                int           `json:"id"`
	Name              string        `json:"name"`
	Criteria          AlertCriteria `json:"criteria"`
	Frequency         string        `json:"frequency"`
	Active            bool          `json:"active"`
	LastNotifiedAt    *time.Time    `json:"lastNotifiedAt,omitempty"`
	NotificationCount int           `json:"notificationCount"`
	LastMatchCount    int           `json:"lastMatchCount"`
	CreatedAt         time.Time     `json:"createdAt"`
}

type GetAlertsResponse struct {
	Alerts []Alert `json:"alerts"`
}
