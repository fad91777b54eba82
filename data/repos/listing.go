package repos

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/NGanna24/mi-gban-sub000/data"
	"github.com/NGanna24/mi-gban-sub000/enums"
)

type ListingRepo struct {
	db *sqlx.DB
}

func NewListingRepo(db *sqlx.DB) *ListingRepo {
	return &ListingRepo{db}
}

// SearchFilter holds the explicit search criteria. List fields are bound
// with sqlx.In, never interpolated.
type SearchFilter struct {
	Query       string
	Cities      []string
	Types       []string
	Transaction string
	PriceMin    *int64
	PriceMax    *int64
	Limit       int
}

// CreateListing inserts the listing, its attributes and its media rows in
// one transaction.
func (r *ListingRepo) CreateListing(listing data.Listing, media []data.ListingMedia) (int, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, fmt.Errorf("begin create listing: %w", err)
	}
	defer tx.Rollback()

	var id int
	query := `
		INSERT INTO listings (owner_id, title, description, language, city, district,
			property_type, transaction_type, price, billing_period, status)
		VALUES (:owner_id, :title, :description, :language, :city, :district,
			:property_type, :transaction_type, :price, :billing_period, :status)
		RETURNING id`

	rows, err := tx.NamedQuery(query, listing)
	if err != nil {
		return 0, fmt.Errorf("insert listing: %w", err)
	}
	if rows.Next() {
		if err = rows.Scan(&id); err != nil {
			rows.Close()
			return 0, fmt.Errorf("scan returned id: %w", err)
		}
	}
	rows.Close()

	for _, attr := range listing.Attributes {
		_, err = tx.Exec(`
			INSERT INTO listing_attributes (listing_id, nom, valeur)
			VALUES ($1, $2, $3)`, id, attr.Nom, attr.Valeur)
		if err != nil {
			return 0, fmt.Errorf("insert listing attribute %q: %w", attr.Nom, err)
		}
	}

	for i, m := range media {
		_, err = tx.Exec(`
			INSERT INTO listing_media (listing_id, url, preview_url, public_id, is_main, position)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			id, m.URL, m.PreviewURL, m.PublicID, i == 0, i)
		if err != nil {
			return 0, fmt.Errorf("insert listing media: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit create listing: %w", err)
	}

	return id, nil
}

func (r *ListingRepo) GetListingByID(id int) (*data.Listing, error) {
	var listing data.Listing
	query := "SELECT * FROM listings WHERE id = $1"
	err := r.db.Get(&listing, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get listing by id: %w", err)
	}

	if err = r.attachAttributes([]*data.Listing{&listing}); err != nil {
		return nil, err
	}

	return &listing, nil
}

func (r *ListingRepo) GetMedia(listingID int) ([]data.ListingMedia, error) {
	var media []data.ListingMedia
	query := `
		SELECT id, listing_id, url, preview_url, public_id, is_main, position, created_at
		FROM listing_media
		WHERE listing_id = $1
		ORDER BY position`

	err := r.db.Select(&media, query, listingID)
	if err != nil {
		return nil, fmt.Errorf("get listing media: %w", err)
	}

	return media, nil
}

// GetListingsCreatedAfter returns available listings newer than the
// cutoff, attributes attached, most recent first.
func (r *ListingRepo) GetListingsCreatedAfter(cutoff time.Time) ([]data.Listing, error) {
	var listings []data.Listing
	query := `
		SELECT * FROM listings
		WHERE created_at > $1 AND status = $2
		ORDER BY created_at DESC`

	err := r.db.Select(&listings, query, cutoff, enums.ListingStatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("get listings created after: %w", err)
	}

	refs := make([]*data.Listing, len(listings))
	for i := range listings {
		refs[i] = &listings[i]
	}
	if err = r.attachAttributes(refs); err != nil {
		return nil, err
	}

	return listings, nil
}

// Search runs the explicit filters; ordering is left to the ranker.
func (r *ListingRepo) Search(filter SearchFilter) ([]data.Listing, error) {
	query := `SELECT * FROM listings WHERE status = ?`
	args := []interface{}{string(enums.ListingStatusAvailable)}

	if filter.Query != "" {
		query += ` AND (title ILIKE ? OR description ILIKE ?)`
		pattern := "%" + filter.Query + "%"
		args = append(args, pattern, pattern)
	}
	if len(filter.Cities) > 0 {
		query += ` AND LOWER(city) IN (?)`
		args = append(args, lowerAll(filter.Cities))
	}
	if len(filter.Types) > 0 {
		query += ` AND property_type IN (?)`
		args = append(args, filter.Types)
	}
	if filter.Transaction != "" {
		query += ` AND transaction_type = ?`
		args = append(args, filter.Transaction)
	}
	if filter.PriceMin != nil {
		query += ` AND price >= ?`
		args = append(args, *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query += ` AND price <= ?`
		args = append(args, *filter.PriceMax)
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	query, inArgs, err := sqlx.In(query, args...)
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}
	query = r.db.Rebind(query)

	var listings []data.Listing
	if err = r.db.Select(&listings, query, inArgs...); err != nil {
		return nil, fmt.Errorf("search listings: %w", err)
	}

	return listings, nil
}

func (r *ListingRepo) UpdateListing(listing data.Listing) error {
	query := `
		UPDATE listings
		SET title = :title, description = :description, language = :language,
			city = :city, district = :district, property_type = :property_type,
			transaction_type = :transaction_type, price = :price,
			billing_period = :billing_period, updated_at = now()
		WHERE id = :id AND owner_id = :owner_id`

	res, err := r.db.NamedExec(query, listing)
	if err != nil {
		return fmt.Errorf("update listing: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update listing rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *ListingRepo) UpdateStatus(id int, status enums.ListingStatus) error {
	query := `UPDATE listings SET status = $1, updated_at = now() WHERE id = $2`
	_, err := r.db.Exec(query, status, id)
	if err != nil {
		return fmt.Errorf("update listing status: %w", err)
	}

	return nil
}

func (r *ListingRepo) DeleteListing(id int, ownerID uuid.UUID) error {
	query := "DELETE FROM listings WHERE id = $1 AND owner_id = $2"
	_, err := r.db.Exec(query, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}

	return nil
}

// RecordView bumps the view counter unless the same viewer or the same IP
// was already counted inside the dedup window.
func (r *ListingRepo) RecordView(listingID int, viewerID *uuid.UUID, ip string, userWindow, ipWindow time.Duration) error {
	var seen bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM listing_views
			WHERE listing_id = $1
			AND ((viewer_id IS NOT NULL AND viewer_id = $2 AND seen_at > $3)
				OR (ip = $4 AND seen_at > $5))
		)`

	err := r.db.Get(&seen, query, listingID, viewerID,
		time.Now().Add(-userWindow), ip, time.Now().Add(-ipWindow))
	if err != nil {
		return fmt.Errorf("check recent view: %w", err)
	}
	if seen {
		return nil
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("begin record view: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO listing_views (listing_id, viewer_id, ip) VALUES ($1, $2, $3)`,
		listingID, viewerID, ip)
	if err != nil {
		return fmt.Errorf("insert listing view: %w", err)
	}

	_, err = tx.Exec(`UPDATE listings SET view_count = view_count + 1 WHERE id = $1`, listingID)
	if err != nil {
		return fmt.Errorf("increment view count: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit record view: %w", err)
	}

	return nil
}

func (r *ListingRepo) attachAttributes(listings []*data.Listing) error {
	if len(listings) == 0 {
		return nil
	}

	ids := make([]int, 0, len(listings))
	byID := make(map[int]*data.Listing, len(listings))
	for _, l := range listings {
		ids = append(ids, l.ID)
		byID[l.ID] = l
	}

	query, args, err := sqlx.In(`
		SELECT id, listing_id, nom, valeur
		FROM listing_attributes
		WHERE listing_id IN (?)`, ids)
	if err != nil {
		return fmt.Errorf("build attach attributes: %w", err)
	}
	query = r.db.Rebind(query)

	var attrs []data.ListingAttribute
	if err = r.db.Select(&attrs, query, args...); err != nil {
		return fmt.Errorf("attach attributes: %w", err)
	}

	for _, a := range attrs {
		if l, ok := byID[a.ListingID]; ok {
			l.Attributes = append(l.Attributes, a)
		}
	}

	return nil
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}
