package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lifecal/backend/internal/model"
)

const eventColumns = `id, calendar_id, title, description, start_time, end_time, all_day,
	event_type, importance_level, metadata, template_id, gps_location, created_at, updated_at`

func scanEvent(row interface{ Scan(dest ...any) error }, e *model.Event) error {
	return row.Scan(
		&e.ID,
		&e.CalendarID,
		&e.Title,
		&e.Description,
		&e.StartTime,
		&e.EndTime,
		&e.AllDay,
		&e.EventType,
		&e.ImportanceLevel,
		&e.Metadata,
		&e.TemplateID,
		&e.GPSLocation,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
}

// ListEvents returns the calendar's events ordered by start time,
// optionally narrowed by a date range and an event type.
func (db *Postgres) ListEvents(ctx context.Context, calendarID string, filter model.EventFilter) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE calendar_id = $1`
	args := []any{calendarID}

	if !filter.StartDate.IsZero() && !filter.EndDate.IsZero() {
		query += fmt.Sprintf(" AND start_time >= $%d AND start_time <= $%d", len(args)+1, len(args)+2)
		args = append(args, filter.StartDate, filter.EndDate)
	}
	if filter.EventType != "" {
		query += fmt.Sprintf(" AND event_type = $%d", len(args)+1)
		args = append(args, filter.EventType)
	}
	query += " ORDER BY start_time ASC"

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Event
	for rows.Next() {
		var e model.Event
		if err := scanEvent(rows, &e); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if list == nil {
		list = []model.Event{}
	}
	return list, nil
}

func (db *Postgres) CreateEvent(ctx context.Context, calendarID string, req model.CreateEventRequest) (*model.Event, error) {
	query := `
		INSERT INTO events (id, calendar_id, title, description, start_time, end_time, all_day,
			event_type, importance_level, metadata, template_id, gps_location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING ` + eventColumns
	var e model.Event
	row := db.Pool.QueryRow(ctx, query,
		uuid.NewString(),
		calendarID,
		req.Title,
		req.Description,
		req.StartTime,
		req.EndTime,
		req.AllDay,
		req.EventType,
		req.ImportanceLevel,
		req.Metadata,
		req.TemplateID,
		req.GPSLocation,
	)
	if err := scanEvent(row, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// GetEventForUser resolves an event only when it lives in a calendar
// owned by the given user.
func (db *Postgres) GetEventForUser(ctx context.Context, eventID, userID string) (*model.Event, error) {
	query := `
		SELECT e.id, e.calendar_id, e.title, e.description, e.start_time, e.end_time, e.all_day,
			e.event_type, e.importance_level, e.metadata, e.template_id, e.gps_location, e.created_at, e.updated_at
		FROM events e
		JOIN calendars c ON c.id = e.calendar_id
		WHERE e.id = $1 AND c.user_id = $2
	`
	var e model.Event
	row := db.Pool.QueryRow(ctx, query, eventID, userID)
	if err := scanEvent(row, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// UpdateEvent applies a partial update; nil fields keep their stored value.
func (db *Postgres) UpdateEvent(ctx context.Context, eventID string, req model.UpdateEventRequest) (*model.Event, error) {
	query := `
		UPDATE events
		SET
			title = COALESCE($1, title),
			description = COALESCE($2, description),
			start_time = COALESCE($3, start_time),
			end_time = COALESCE($4, end_time),
			all_day = COALESCE($5, all_day),
			event_type = COALESCE($6, event_type),
			importance_level = COALESCE($7, importance_level),
			metadata = COALESCE($8, metadata),
			gps_location = COALESCE($9, gps_location),
			updated_at = NOW()
		WHERE id = $10
		RETURNING ` + eventColumns
	var e model.Event
	row := db.Pool.QueryRow(ctx, query,
		req.Title,
		req.Description,
		req.StartTime,
		req.EndTime,
		req.AllDay,
		req.EventType,
		req.ImportanceLevel,
		req.Metadata,
		req.GPSLocation,
		eventID,
	)
	if err := scanEvent(row, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (db *Postgres) DeleteEvent(ctx context.Context, eventID string) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, eventID)
	return err
}
