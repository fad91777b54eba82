package repos

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/NGanna24/mi-gban-sub000/data"
	"github.com/NGanna24/mi-gban-sub000/enums"
)

var (
	// ErrSlotTaken means a confirmed reservation already occupies the
	// exact (listing, date, time) triple.
	ErrSlotTaken = errors.New("slot already taken")

	// ErrListingUnavailable means the listing is not in "available"
	// status, so it cannot be reserved.
	ErrListingUnavailable = errors.New("listing not available")

	ErrListingNotFound = errors.New("listing not found")
)

type ReservationRepo struct {
	db *sqlx.DB
}

func NewReservationRepo(db *sqlx.DB) *ReservationRepo {
	return &ReservationRepo{db}
}

// CreateReservation books a visit slot as one atomic unit: the slot check,
// the listing status check, the reservation insert and the status flip all
// commit or roll back together.
func (r *ReservationRepo) CreateReservation(res data.Reservation) (int, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, fmt.Errorf("begin create reservation: %w", err)
	}
	defer tx.Rollback()

	var status enums.ListingStatus
	err = tx.Get(&status, `SELECT status FROM listings WHERE id = $1 FOR UPDATE`, res.ListingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrListingNotFound
		}
		return 0, fmt.Errorf("lock listing: %w", err)
	}
	if status != enums.ListingStatusAvailable {
		return 0, ErrListingUnavailable
	}

	var taken bool
	err = tx.Get(&taken, `
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE listing_id = $1 AND visit_date = $2 AND time_slot = $3
			AND status = $4
		)`, res.ListingID, res.VisitDate, res.TimeSlot, enums.ReservationConfirmed)
	if err != nil {
		return 0, fmt.Errorf("check slot availability: %w", err)
	}
	if taken {
		return 0, ErrSlotTaken
	}

	var id int
	err = tx.Get(&id, `
		INSERT INTO reservations (listing_id, visitor_id, visit_date, time_slot, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		res.ListingID, res.VisitorID, res.VisitDate, res.TimeSlot, enums.ReservationPending)
	if err != nil {
		return 0, fmt.Errorf("insert reservation: %w", err)
	}

	_, err = tx.Exec(`UPDATE listings SET status = $1, updated_at = now() WHERE id = $2`,
		enums.ListingStatusReserved, res.ListingID)
	if err != nil {
		return 0, fmt.Errorf("flip listing status: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit create reservation: %w", err)
	}

	return id, nil
}

// GetTakenSlots returns the confirmed slots for a listing on a date.
func (r *ReservationRepo) GetTakenSlots(listingID int, date string) ([]string, error) {
	slots := make([]string, 0)
	query := `
		SELECT time_slot FROM reservations
		WHERE listing_id = $1 AND visit_date = $2 AND status = $3
		ORDER BY time_slot`

	err := r.db.Select(&slots, query, listingID, date, enums.ReservationConfirmed)
	if err != nil {
		return nil, fmt.Errorf("get taken slots: %w", err)
	}

	return slots, nil
}

func (r *ReservationRepo) GetReservationsByVisitor(visitorID uuid.UUID) ([]data.Reservation, error) {
	var reservations []data.Reservation
	query := `
		SELECT * FROM reservations
		WHERE visitor_id = $1
		ORDER BY visit_date DESC, time_slot DESC`

	err := r.db.Select(&reservations, query, visitorID)
	if err != nil {
		return nil, fmt.Errorf("get reservations by visitor: %w", err)
	}

	return reservations, nil
}
