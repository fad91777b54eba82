package models

import (
	"time"

	"github.com/google/uuid"
)

type CreateListingRequest struct {
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	City          string             `json:"city"`
	District      string             `json:"district"`
	PropertyType  string             `json:"propertyType"`
	Transaction   string             `json:"transactionType"`
	Price         int64              `json:"price"`
	BillingPeriod *string            `json:"billingPeriod,omitempty"`
	Attributes    map[string]float64 `json:"attributes,omitempty"`
	Media         []MediaItem        `json:"media,omitempty"`
}

type UpdateListingRequest struct {
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	City          string             `json:"city"`
	District      string             `json:"district"`
	PropertyType  string             `json:"propertyType"`
	Transaction   string             `json:"transactionType"`
	Price         int64              `json:"price"`
	BillingPeriod *string            `json:"billingPeriod,omitempty"`
	Attributes    map[string]float64 `json:"attributes,omitempty"`
}

type MediaItem struct {
	URL        string `json:"url"`
	PreviewURL string `json:"previewUrl,omitempty"`
	PublicID   string `json:"publicId,omitempty"`
}

type Listing struct {
	ID            int                `json:"id"`
	OwnerID       uuid.UUID          `json:"ownerId"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	Language      string             `json:"language"`
	City          string             `json:"city"`
	District      string             `json:"district"`
	PropertyType  string             `json:"propertyType"`
	Transaction   string             `json:"transactionType"`
	Price         int64              `json:"price"`
	BillingPeriod *string            `json:"billingPeriod,omitempty"`
	Status        string             `json:"status"`
	ViewCount     int                `json:"viewCount"`
	Attributes    map[string]float64 `json:"attributes,omitempty"`
	Media         []MediaItem        `json:"media,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
}
