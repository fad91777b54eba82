package repos

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/NGanna24/mi-gban-sub000/data"
)

type PreferenceRepo struct {
	db *sqlx.DB
}

func NewPreferenceRepo(db *sqlx.DB) *PreferenceRepo {
	return &PreferenceRepo{db}
}

func (r *PreferenceRepo) GetProfile(userID uuid.UUID) (*data.PreferenceProfile, error) {
	var profile data.PreferenceProfile
	query := "SELECT * FROM preference_profiles WHERE user_id = $1"

	err := r.db.Get(&profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get preference profile: %w", err)
	}

	return &profile, nil
}

func (r *PreferenceRepo) UpsertProfile(profile data.PreferenceProfile) error {
	query := `
		INSERT INTO preference_profiles (user_id, cities, property_types, budget_ceiling, project)
		VALUES (:user_id, :cities, :property_types, :budget_ceiling, :project)
		ON CONFLICT (user_id) DO UPDATE
		SET cities = EXCLUDED.cities,
			property_types = EXCLUDED.property_types,
			budget_ceiling = EXCLUDED.budget_ceiling,
			project = EXCLUDED.project,
			updated_at = now()`

	_, err := r.db.NamedExec(query, profile)
	if err != nil {
		return fmt.Errorf("upsert preference profile: %w", err)
	}

	return nil
}
