package repos

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/NGanna24/mi-gban-sub000/data"
)

// ErrDuplicateFavorite means the user already bookmarked the listing.
var ErrDuplicateFavorite = errors.New("listing already in favorites")

type FavoriteRepo struct {
	db *sqlx.DB
}

func NewFavoriteRepo(db *sqlx.DB) *FavoriteRepo {
	return &FavoriteRepo{db}
}

func (r *FavoriteRepo) AddFavorite(userID uuid.UUID, listingID int) (int, error) {
	query := `
		INSERT INTO favorites (user_id, listing_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, listing_id) DO NOTHING
		RETURNING id`

	var id int
	rows, err := r.db.Queryx(query, userID, listingID)
	if err != nil {
		return 0, fmt.Errorf("add favorite: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return 0, ErrDuplicateFavorite
	}
	if err = rows.Scan(&id); err != nil {
		return 0, fmt.Errorf("scan returned id: %w", err)
	}

	return id, nil
}

func (r *FavoriteRepo) RemoveFavorite(userID uuid.UUID, listingID int) error {
	query := "DELETE FROM favorites WHERE user_id = $1 AND listing_id = $2"
	_, err := r.db.Exec(query, userID, listingID)
	if err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}

	return nil
}

func (r *FavoriteRepo) GetFavoriteListings(userID uuid.UUID) ([]data.Listing, error) {
	var listings []data.Listing
	query := `
		SELECT l.* FROM listings l
		JOIN favorites f ON f.listing_id = l.id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC`

	err := r.db.Select(&listings, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get favorite listings: %w", err)
	}

	return listings, nil
}
