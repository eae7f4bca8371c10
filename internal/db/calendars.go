package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/lifecal/backend/internal/model"
)

func (db *Postgres) CreateCalendar(ctx context.Context, userID, name string, description *string, color string, isDefault bool) (*model.Calendar, error) {
	query := `
		INSERT INTO calendars (id, user_id, name, description, color, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, user_id, name, description, color, is_default, created_at, updated_at
	`
	var cal model.Calendar
	err := db.Pool.QueryRow(ctx, query, uuid.NewString(), userID, name, description, color, isDefault).Scan(
		&cal.ID,
		&cal.UserID,
		&cal.Name,
		&cal.Description,
		&cal.Color,
		&cal.IsDefault,
		&cal.CreatedAt,
		&cal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cal, nil
}

// GetDefaultCalendar returns the user's default calendar, created for
// every account at registration time.
func (db *Postgres) GetDefaultCalendar(ctx context.Context, userID string) (*model.Calendar, error) {
	query := `
		SELECT id, user_id, name, description, color, is_default, created_at, updated_at
		FROM calendars
		WHERE user_id = $1 AND is_default = TRUE
		LIMIT 1
	`
	var cal model.Calendar
	err := db.Pool.QueryRow(ctx, query, userID).Scan(
		&cal.ID,
		&cal.UserID,
		&cal.Name,
		&cal.Description,
		&cal.Color,
		&cal.IsDefault,
		&cal.CreatedAt,
		&cal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cal, nil
}
