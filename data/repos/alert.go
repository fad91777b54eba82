package repos

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/NGanna24/mi-gban-sub000/data"
)

type AlertRepo struct {
	db *sqlx.DB
}

func NewAlertRepo(db *sqlx.DB) *AlertRepo {
	return &AlertRepo{db}
}

func (r *AlertRepo) CreateAlert(alert data.Alert) (int, error) {
	query := `
		INSERT INTO alerts (user_id, name, property_type, transaction_type, city, district,
			price_min, price_max, surface_min, surface_max, min_bedrooms, min_bathrooms,
			amenities, active, frequency)
		VALUES (:user_id, :name, :property_type, :transaction_type, :city, :district,
			:price_min, :price_max, :surface_min, :surface_max, :min_bedrooms, :min_bathrooms,
			:amenities, :active, :frequency)
		RETURNING id`

	rows, err := r.db.NamedQuery(query, alert)
	if err != nil {
		return 0, fmt.Errorf("create alert: %w", err)
	}
	defer rows.Close()

	var id int
	if rows.Next() {
		if err = rows.Scan(&id); err != nil {
			return 0, fmt.Errorf("scan returned id: %w", err)
		}
	}

	return id, nil
}

func (r *AlertRepo) GetAlertsByUserID(userID uuid.UUID) ([]data.Alert, error) {
	var alerts []data.Alert
	query := `
		SELECT * FROM alerts
		WHERE user_id = $1
		ORDER BY created_at DESC`

	err := r.db.Select(&alerts, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get alerts by user id: %w", err)
	}

	return alerts, nil
}

func (r *AlertRepo) GetAlertByID(id int, userID uuid.UUID) (*data.Alert, error) {
	var alert data.Alert
	query := "SELECT * FROM alerts WHERE id = $1 AND user_id = $2"

	err := r.db.Get(&alert, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alert by id: %w", err)
	}

	return &alert, nil
}

// GetSweepAlerts returns every active alert whose owner is active and has
// a registered push destination.
func (r *AlertRepo) GetSweepAlerts() ([]data.SweepAlert, error) {
	var alerts []data.SweepAlert
	query := `
		SELECT a.*, u.email AS owner_email, u.push_token AS owner_token
		FROM alerts a
		JOIN users u ON u.id = a.user_id
		WHERE a.active = true AND u.active = true AND u.push_token IS NOT NULL
		ORDER BY a.id`

	err := r.db.Select(&alerts, query)
	if err != nil {
		return nil, fmt.Errorf("get sweep alerts: %w", err)
	}

	return alerts, nil
}

func (r *AlertRepo) UpdateAlert(alert data.Alert) error {
	query := `
		UPDATE alerts
		SET name = :name, property_type = :property_type, transaction_type = :transaction_type,
			city = :city, district = :district, price_min = :price_min, price_max = :price_max,
			surface_min = :surface_min, surface_max = :surface_max,
			min_bedrooms = :min_bedrooms, min_bathrooms = :min_bathrooms,
			amenities = :amenities, active = :active, frequency = :frequency,
			updated_at = now()
		WHERE id = :id AND user_id = :user_id`

	res, err := r.db.NamedExec(query, alert)
	if err != nil {
		return fmt.Errorf("update alert: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update alert rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// MarkNotified records a successful sweep hit: bump the notification
// counter, remember the match count, and reset the throttle clock.
func (r *AlertRepo) MarkNotified(id int, matchCount int, notifiedAt time.Time) error {
	query := `
		UPDATE alerts
		SET last_notified_at = $1,
			notification_count = notification_count + 1,
			last_match_count = $2,
			updated_at = now()
		WHERE id = $3`

	_, err := r.db.Exec(query, notifiedAt, matchCount, id)
	if err != nil {
		return fmt.Errorf("mark alert notified: %w", err)
	}

	return nil
}

func (r *AlertRepo) DeleteAlert(id int, userID uuid.UUID) error {
	query := "DELETE FROM alerts WHERE id = $1 AND user_id = $2"
	_, err := r.db.Exec(query, id, userID)
	if err != nil {
		return fmt.Errorf("delete alert: %w", err)
	}

	return nil
}
