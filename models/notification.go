package models

import "time"

type Notification struct {
	ID         int       `json:"id"`
	AlertID    int       `json:"alertId"`
	MatchCount int       `json:"matchCount"`
	ListingIDs []int64   `json:"listingIds"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

type GetNotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
	Total         int            `json:"total"`
	Page          int            `json:"page"`
	PerPage       int            `json:"perPage"`
}

type UpdateNotificationRequest struct {
	Status string `json:"status"`
}
