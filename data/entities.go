package data

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/NGanna24/mi-gban-sub000/enums"
)

type User struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	DisplayName string    `db:"display_name"`
	Email       string    `db:"email"`
	Avatar      string    `db:"avatar"`
	Active      bool      `db:"active"`
	PushToken   *string   `db:"push_token"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type Listing struct {
	ID            int                   `db:"id"`
	OwnerID       uuid.UUID             `db:"owner_id"`
	Title         string                `db:"title"`
	Description   string                `db:"description"`
	Language      string                `db:"language"`
	City          string                `db:"city"`
	District      string                `db:"district"`
	PropertyType  string                `db:"property_type"`
	Transaction   enums.TransactionType `db:"transaction_type"`
	Price         int64                 `db:"price"`
	BillingPeriod *string               `db:"billing_period"`
	Status        enums.ListingStatus   `db:"status"`
	ViewCount     int                   `db:"view_count"`
	CreatedAt     time.Time             `db:"created_at"`
	UpdatedAt     time.Time             `db:"updated_at"`

	Attributes []ListingAttribute `db:"-"`
}

// ListingAttribute is a named numeric property of a listing, e.g.
// "superficie", "chambres" or "salles_bain".
type ListingAttribute struct {
	ID        int     `db:"id"`
	ListingID int     `db:"listing_id"`
	Nom       string  `db:"nom"`
	Valeur    float64 `db:"valeur"`
}

type ListingMedia struct {
	ID         int       `db:"id"`
	ListingID  int       `db:"listing_id"`
	URL        string    `db:"url"`
	PreviewURL string    `db:"preview_url"`
	PublicID   string    `db:"public_id"`
	IsMain     bool      `db:"is_main"`
	Position   int       `db:"position"`
	CreatedAt  time.Time `db:"created_at"`
}

// Alert is a saved search. All criteria fields are optional; a nil field
// matches any listing. An alert with no discriminating criterion at all is
// rejected at creation.
type Alert struct {
	ID                int                    `db:"id"`
	UserID            uuid.UUID              `db:"user_id"`
	Name              string                 `db:"name"`
	PropertyType      *string                `db:"property_type"`
	Transaction       *enums.TransactionType `db:"transaction_type"`
	City              *string                `db:"city"`
	District          *string                `db:"district"`
	PriceMin          *int64                 `db:"price_min"`
	PriceMax          *int64                 `db:"price_max"`
	SurfaceMin        *float64               `db:"surface_min"`
	SurfaceMax        *float64               `db:"surface_max"`
	MinBedrooms       *int                   `db:"min_bedrooms"`
	MinBathrooms      *int                   `db:"min_bathrooms"`
	Amenities         pq.StringArray         `db:"amenities"`
	Active            bool                   `db:"active"`
	Frequency         enums.Frequency        `db:"frequency"`
	LastNotifiedAt    *time.Time             `db:"last_notified_at"`
	NotificationCount int                    `db:"notification_count"`
	LastMatchCount    int                    `db:"last_match_count"`
	CreatedAt         time.Time              `db:"created_at"`
	UpdatedAt         time.Time              `db:"updated_at"`
}

// NotificationEntry is an append-only record of the matches found for an
// alert during one sweep.
type NotificationEntry struct {
	ID         int                      `db:"id"`
	AlertID    int                      `db:"alert_id"`
	MatchCount int                      `db:"match_count"`
	ListingIDs pq.Int64Array            `db:"listing_ids"`
	Status     enums.NotificationStatus `db:"status"`
	CreatedAt  time.Time                `db:"created_at"`
}

type Reservation struct {
	ID        int                     `db:"id"`
	ListingID int                     `db:"listing_id"`
	VisitorID uuid.UUID               `db:"visitor_id"`
	VisitDate string                  `db:"visit_date"`
	TimeSlot  string                  `db:"time_slot"`
	Status    enums.ReservationStatus `db:"status"`
	CreatedAt time.Time               `db:"created_at"`
}

// PreferenceProfile drives ranking only, never pass/fail filtering.
type PreferenceProfile struct {
	UserID        uuid.UUID      `db:"user_id"`
	Cities        pq.StringArray `db:"cities"`
	PropertyTypes pq.StringArray `db:"property_types"`
	BudgetCeiling *int64         `db:"budget_ceiling"`
	Project       *enums.Project `db:"project"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

type Favorite struct {
	ID        int       `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	ListingID int       `db:"listing_id"`
	CreatedAt time.Time `db:"created_at"`
}

type Payment struct {
	ID        int       `db:"id"`
	PayerID   uuid.UUID `db:"payer_id"`
	ListingID int       `db:"listing_id"`
	Amount    int64     `db:"amount"`
	Method    string    `db:"method"`
	Reference string    `db:"reference"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}
