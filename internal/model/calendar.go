package model

import "time"

// Event types supported by the calendar, each with a fixed display color.
const (
	EventTypeAppointment     = "APPOINTMENT"
	EventTypeBillDue         = "BILL_DUE"
	EventTypeMedication      = "MEDICATION"
	EventTypeMaintenanceAuto = "MAINTENANCE_AUTO"
	EventTypeMaintenanceHome = "MAINTENANCE_HOME"
	EventTypeWorkSchedule    = "WORK_SCHEDULE"
	EventTypePersonal        = "PERSONAL"
	EventTypeAcademic        = "ACADEMIC"
	EventTypeHealth          = "HEALTH"
	EventTypeSocial          = "SOCIAL"
	EventTypeLifeSkills      = "LIFE_SKILLS"
	EventTypeFinancial       = "FINANCIAL"
	EventTypeSelfCare        = "SELF_CARE"
	EventTypeTransportation  = "TRANSPORTATION"
)

// EventTypes lists every supported type in display order.
var EventTypes = []string{
	EventTypeAppointment,
	EventTypeBillDue,
	EventTypeMedication,
	EventTypeMaintenanceAuto,
	EventTypeMaintenanceHome,
	EventTypeWorkSchedule,
	EventTypePersonal,
	EventTypeAcademic,
	EventTypeHealth,
	EventTypeSocial,
	EventTypeLifeSkills,
	EventTypeFinancial,
	EventTypeSelfCare,
	EventTypeTransportation,
}

// EventTypeColors maps every event type to its display color.
var EventTypeColors = map[string]string{
	EventTypeAppointment:     "#4A90E2",
	EventTypeBillDue:         "#E74C3C",
	EventTypeMedication:      "#27AE60",
	EventTypeMaintenanceAuto: "#F39C12",
	EventTypeMaintenanceHome: "#8B4513",
	EventTypeWorkSchedule:    "#9B59B6",
	EventTypePersonal:        "#1ABC9C",
	EventTypeAcademic:        "#3498DB",
	EventTypeHealth:          "#2ECC71",
	EventTypeSocial:          "#E67E22",
	EventTypeLifeSkills:      "#95A5A6",
	EventTypeFinancial:       "#F1C40F",
	EventTypeSelfCare:        "#E91E63",
	EventTypeTransportation:  "#34495E",
}

const (
	ImportanceLow      = "LOW"
	ImportanceMedium   = "MEDIUM"
	ImportanceHigh     = "HIGH"
	ImportanceCritical = "CRITICAL"
)

type Calendar struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Color       string    `json:"color"`
	IsDefault   bool      `json:"isDefault"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Event struct {
	ID              string         `json:"id"`
	CalendarID      string         `json:"calendarId"`
	Title           string         `json:"title"`
	Description     *string        `json:"description"`
	StartTime       time.Time      `json:"startTime"`
	EndTime         time.Time      `json:"endTime"`
	AllDay          bool           `json:"allDay"`
	EventType       string         `json:"eventType"`
	ImportanceLevel string         `json:"importanceLevel"`
	Metadata        map[string]any `json:"metadata"`
	TemplateID      *string        `json:"templateId"`
	GPSLocation     *string        `json:"gpsLocation"`
	Color           string         `json:"color"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

type EventTemplate struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	EventType       string         `json:"eventType"`
	DefaultDuration int            `json:"defaultDuration"`
	DefaultMetadata map[string]any `json:"defaultMetadata"`
	IsActive        bool           `json:"isActive"`
	Color           string         `json:"color"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

type CreateEventRequest struct {
	Title           string         `json:"title"`
	Description     *string        `json:"description"`
	StartTime       time.Time      `json:"startTime"`
	EndTime         time.Time      `json:"endTime"`
	AllDay          bool           `json:"allDay"`
	EventType       string         `json:"eventType"`
	ImportanceLevel string         `json:"importanceLevel"`
	Metadata        map[string]any `json:"metadata"`
	TemplateID      *string        `json:"templateId"`
	GPSLocation     *string        `json:"gpsLocation"`
}

// UpdateEventRequest carries a partial update; nil fields are left unchanged.
type UpdateEventRequest struct {
	Title           *string        `json:"title"`
	Description     *string        `json:"description"`
	StartTime       *time.Time     `json:"startTime"`
	EndTime         *time.Time     `json:"endTime"`
	AllDay          *bool          `json:"allDay"`
	EventType       *string        `json:"eventType"`
	ImportanceLevel *string        `json:"importanceLevel"`
	Metadata        map[string]any `json:"metadata"`
	GPSLocation     *string        `json:"gpsLocation"`
}

// EventFilter narrows the event listing. Zero time bounds mean no range
// filter; an empty EventType means all types.
type EventFilter struct {
	StartDate time.Time
	EndDate   time.Time
	EventType string
}

// EventTypeInfo is one entry of the static event-type listing.
type EventTypeInfo struct {
	Type        string `json:"type"`
	Color       string `json:"color"`
	DisplayName string `json:"displayName"`
}
