package data

import (
	"time"

	"github.com/google/uuid"
)

// SweepAlert joins an alert with its owner's push destination for the
// notification sweep.
type SweepAlert struct {
	Alert
	OwnerEmail string `db:"owner_email"`
	OwnerToken string `db:"owner_token"`
}

// SweepItem is the per-alert outcome of one sweep pass.
type SweepItem struct {
	AlertID    int
	UserID     uuid.UUID
	Skipped    bool
	MatchCount int
	ListingIDs []int
	Err        error
}

// SweepResult summarizes one full pass over the active alerts.
type SweepResult struct {
	StartedAt time.Time
	Checked   int
	Skipped   int
	Notified  int
	Failed    int
	Items     []SweepItem
}
