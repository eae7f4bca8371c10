package service

import (
	"context"
	"errors"
	"strings"

	"github.com/lifecal/backend/internal/db"
	"github.com/lifecal/backend/internal/model"
)

var (
	ErrNoCalendar    = errors.New("no calendar found for user")
	ErrEventNotFound = errors.New("event not found or access denied")
)

// CalendarRepository is the persistence surface the calendar service
// needs; *db.Postgres implements it.
type CalendarRepository interface {
	GetDefaultCalendar(ctx context.Context, userID string) (*model.Calendar, error)
	ListEvents(ctx context.Context, calendarID string, filter model.EventFilter) ([]model.Event, error)
	CreateEvent(ctx context.Context, calendarID string, req model.CreateEventRequest) (*model.Event, error)
	GetEventForUser(ctx context.Context, eventID, userID string) (*model.Event, error)
	UpdateEvent(ctx context.Context, eventID string, req model.UpdateEventRequest) (*model.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
	ListActiveTemplates(ctx context.Context) ([]model.EventTemplate, error)
	CountTemplates(ctx context.Context) (int, error)
	InsertTemplate(ctx context.Context, name, eventType string, defaultDuration int, defaultMetadata map[string]any) error
}

type CalendarService struct {
	repo CalendarRepository
}

func NewCalendarService(repo CalendarRepository) *CalendarService {
	return &CalendarService{repo: repo}
}

// ListEvents returns the events on the user's default calendar,
// narrowed by the filter and annotated with type colors.
func (s *CalendarService) ListEvents(ctx context.Context, userID string, filter model.EventFilter) ([]model.Event, error) {
	cal, err := s.defaultCalendar(ctx, userID)
	if err != nil {
		return nil, err
	}

	events, err := s.repo.ListEvents(ctx, cal.ID, filter)
	if err != nil {
		return nil, err
	}

	for i := range events {
		events[i].Color = model.EventTypeColors[events[i].EventType]
	}
	return events, nil
}

func (s *CalendarService) CreateEvent(ctx context.Context, userID string, req model.CreateEventRequest) (*model.Event, error) {
	cal, err := s.defaultCalendar(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.ImportanceLevel == "" {
		req.ImportanceLevel = model.ImportanceMedium
	}

	event, err := s.repo.CreateEvent(ctx, cal.ID, req)
	if err != nil {
		return nil, err
	}

	event.Color = model.EventTypeColors[event.EventType]
	return event, nil
}

func (s *CalendarService) UpdateEvent(ctx context.Context, userID, eventID string, req model.UpdateEventRequest) (*model.Event, error) {
	if _, err := s.repo.GetEventForUser(ctx, eventID, userID); err != nil {
		if db.IsNoRows(err) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	event, err := s.repo.UpdateEvent(ctx, eventID, req)
	if err != nil {
		return nil, err
	}

	event.Color = model.EventTypeColors[event.EventType]
	return event, nil
}

func (s *CalendarService) DeleteEvent(ctx context.Context, userID, eventID string) error {
	if _, err := s.repo.GetEventForUser(ctx, eventID, userID); err != nil {
		if db.IsNoRows(err) {
			return ErrEventNotFound
		}
		return err
	}

	return s.repo.DeleteEvent(ctx, eventID)
}

func (s *CalendarService) ListTemplates(ctx context.Context) ([]model.EventTemplate, error) {
	templates, err := s.repo.ListActiveTemplates(ctx)
	if err != nil {
		return nil, err
	}

	for i := range templates {
		templates[i].Color = model.EventTypeColors[templates[i].EventType]
	}
	return templates, nil
}

// EventTypes lists every event type with its color and a display name
// derived from the type constant (WORK_SCHEDULE -> "Work Schedule").
func (s *CalendarService) EventTypes() []model.EventTypeInfo {
	list := make([]model.EventTypeInfo, 0, len(model.EventTypes))
	for _, eventType := range model.EventTypes {
		list = append(list, model.EventTypeInfo{
			Type:        eventType,
			Color:       model.EventTypeColors[eventType],
			DisplayName: displayName(eventType),
		})
	}
	return list
}

func (s *CalendarService) defaultCalendar(ctx context.Context, userID string) (*model.Calendar, error) {
	cal, err := s.repo.GetDefaultCalendar(ctx, userID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNoCalendar
		}
		return nil, err
	}
	return cal, nil
}

func displayName(eventType string) string {
	words := strings.Split(eventType, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
