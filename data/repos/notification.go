package repos

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/NGanna24/mi-gban-sub000/data"
	"github.com/NGanna24/mi-gban-sub000/enums"
)

type NotificationRepo struct {
	db *sqlx.DB
}

func NewNotificationRepo(db *sqlx.DB) *NotificationRepo {
	return &NotificationRepo{db}
}

func (r *NotificationRepo) CreateEntry(entry data.NotificationEntry) (int, error) {
	query := `
		INSERT INTO notification_entries (alert_id, match_count, listing_ids, status)
		VALUES (:alert_id, :match_count, :listing_ids, :status)
		RETURNING id`

	rows, err := r.db.NamedQuery(query, entry)
	if err != nil {
		return 0, fmt.Errorf("create notification entry: %w", err)
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

func (r *NotificationRepo) GetEntriesByUserID(userID uuid.UUID, limit, offset int) ([]data.NotificationEntry, int, error) {
	var entries []data.NotificationEntry
	query := `
		SELECT n.id, n.alert_id, n.match_count, n.listing_ids, n.status, n.created_at
		FROM notification_entries n
		JOIN alerts a ON a.id = n.alert_id
		WHERE a.user_id = $1
		ORDER BY n.created_at DESC
		LIMIT $2 OFFSET $3`

	err := r.db.Select(&entries, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("get notification entries: %w", err)
	}

	var total int
	countQuery := `
		SELECT COUNT(*)
		FROM notification_entries n
		JOIN alerts a ON a.id = n.alert_id
		WHERE a.user_id = $1`

	if err = r.db.Get(&total, countQuery, userID); err != nil {
		return nil, 0, fmt.Errorf("count notification entries: %w", err)
	}

	return entries, total, nil
}

// SetStatus flips an entry to read or ignored, scoped to the owning user.
func (r *NotificationRepo) SetStatus(id int, userID uuid.UUID, status enums.NotificationStatus) (bool, error) {
	query := `
		UPDATE notification_entries n
		SET status = $1
		FROM alerts a
		WHERE n.id = $2 AND a.id = n.alert_id AND a.user_id = $3`

	res, err := r.db.Exec(query, status, id, userID)
	if err != nil {
		return false, fmt.Errorf("set notification status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("set notification status rows affected: %w", err)
	}

	return affected > 0, nil
}
