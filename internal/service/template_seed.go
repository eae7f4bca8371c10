package service

import (
	"context"

	"github.com/lifecal/backend/internal/model"
	"github.com/rs/zerolog/log"
)

type templateSeed struct {
	name            string
	eventType       string
	defaultDuration int
	defaultMetadata map[string]any
}

// Built-in templates inserted on first startup. Durations are minutes;
// zero means an all-day event. reminder_times are minutes before start.
var defaultTemplates = []templateSeed{
	{
		name:            "Study Session",
		eventType:       model.EventTypeAcademic,
		defaultDuration: 120,
		defaultMetadata: map[string]any{
			"subject":          "",
			"location":         "Library",
			"reminder_times":   []int{60, 15},
			"importance_level": "medium",
		},
	},
	{
		name:            "Assignment Due",
		eventType:       model.EventTypeAcademic,
		defaultDuration: 0,
		defaultMetadata: map[string]any{
			"course":           "",
			"assignment_type":  "homework",
			"reminder_times":   []int{2880, 1440, 60},
			"importance_level": "high",
		},
	},
	{
		name:            "Exam",
		eventType:       model.EventTypeAcademic,
		defaultDuration: 180,
		defaultMetadata: map[string]any{
			"course":           "",
			"exam_type":        "midterm",
			"location":         "",
			"reminder_times":   []int{10080, 2880, 1440, 60},
			"importance_level": "critical",
		},
	},
	{
		name:            "Doctor Appointment",
		eventType:       model.EventTypeAppointment,
		defaultDuration: 60,
		defaultMetadata: map[string]any{
			"doctor_type":      "general",
			"location":         "",
			"reminder_times":   []int{1440, 60},
			"importance_level": "high",
		},
	},
	{
		name:            "Therapy Session",
		eventType:       model.EventTypeHealth,
		defaultDuration: 60,
		defaultMetadata: map[string]any{
			"therapist_name":   "",
			"session_type":     "individual",
			"location":         "",
			"reminder_times":   []int{1440, 60},
			"importance_level": "high",
		},
	},
	{
		name:            "Medication Reminder",
		eventType:       model.EventTypeMedication,
		defaultDuration: 5,
		defaultMetadata: map[string]any{
			"medication_name":  "",
			"dosage":           "",
			"with_food":        false,
			"reminder_times":   []int{15, 5, 0},
			"importance_level": "critical",
		},
	},
	{
		name:            "Exercise/Gym",
		eventType:       model.EventTypeHealth,
		defaultDuration: 90,
		defaultMetadata: map[string]any{
			"workout_type":     "cardio",
			"location":         "Gym",
			"reminder_times":   []int{30, 10},
			"importance_level": "medium",
		},
	},
	{
		name:            "Social Event",
		eventType:       model.EventTypeSocial,
		defaultDuration: 180,
		defaultMetadata: map[string]any{
			"event_type":       "party",
			"location":         "",
			"anxiety_prep_time": 30,
			"reminder_times":   []int{1440, 120, 30},
			"importance_level": "medium",
		},
	},
	{
		name:            "Family Time",
		eventType:       model.EventTypeSocial,
		defaultDuration: 120,
		defaultMetadata: map[string]any{
			"activity":         "dinner",
			"location":         "Home",
			"reminder_times":   []int{60, 15},
			"importance_level": "medium",
		},
	},
	{
		name:            "Laundry Day",
		eventType:       model.EventTypeLifeSkills,
		defaultDuration: 180,
		defaultMetadata: map[string]any{
			"load_count":       2,
			"detergent_needed": true,
			"reminder_times":   []int{60},
			"importance_level": "low",
		},
	},
	{
		name:            "Meal Prep",
		eventType:       model.EventTypeLifeSkills,
		defaultDuration: 120,
		defaultMetadata: map[string]any{
			"meals_count":         5,
			"grocery_list_needed": true,
			"reminder_times":      []int{1440, 60},
			"importance_level":    "medium",
		},
	},
	{
		name:            "Cleaning Schedule",
		eventType:       model.EventTypeLifeSkills,
		defaultDuration: 90,
		defaultMetadata: map[string]any{
			"room":             "bedroom",
			"deep_clean":       false,
			"reminder_times":   []int{60},
			"importance_level": "low",
		},
	},
	{
		name:            "Bill Due",
		eventType:       model.EventTypeBillDue,
		defaultDuration: 0,
		defaultMetadata: map[string]any{
			"amount":           0,
			"company":          "",
			"auto_pay":         false,
			"reminder_times":   []int{4320, 1440, 60},
			"importance_level": "high",
		},
	},
	{
		name:            "Payday",
		eventType:       model.EventTypeFinancial,
		defaultDuration: 0,
		defaultMetadata: map[string]any{
			"amount":           0,
			"employer":         "",
			"direct_deposit":   true,
			"reminder_times":   []int{0},
			"importance_level": "medium",
		},
	},
	{
		name:            "Work Shift",
		eventType:       model.EventTypeWorkSchedule,
		defaultDuration: 480,
		defaultMetadata: map[string]any{
			"shift_type":       "regular",
			"location":         "Office",
			"break_times":      []string{"12:00", "15:00"},
			"reminder_times":   []int{60, 15},
			"importance_level": "high",
		},
	},
	{
		name:            "Oil Change",
		eventType:       model.EventTypeMaintenanceAuto,
		defaultDuration: 60,
		defaultMetadata: map[string]any{
			"vehicle":          "",
			"mileage":          0,
			"service_location": "",
			"reminder_times":   []int{1440, 60},
			"importance_level": "medium",
		},
	},
	{
		name:            "Car Registration",
		eventType:       model.EventTypeTransportation,
		defaultDuration: 120,
		defaultMetadata: map[string]any{
			"vehicle":          "",
			"location":         "DMV",
			"documents_needed": []string{"insurance", "inspection"},
			"reminder_times":   []int{10080, 1440},
			"importance_level": "high",
		},
	},
	{
		name:            "Air Filter Replacement",
		eventType:       model.EventTypeMaintenanceHome,
		defaultDuration: 30,
		defaultMetadata: map[string]any{
			"filter_size":      "",
			"location":         "HVAC unit",
			"reminder_times":   []int{1440},
			"importance_level": "low",
		},
	},
	{
		name:            "Quiet Time",
		eventType:       model.EventTypeSelfCare,
		defaultDuration: 60,
		defaultMetadata: map[string]any{
			"activity":         "meditation",
			"location":         "Bedroom",
			"reminder_times":   []int{15},
			"importance_level": "medium",
		},
	},
	{
		name:            "Digital Detox",
		eventType:       model.EventTypeSelfCare,
		defaultDuration: 240,
		defaultMetadata: map[string]any{
			"devices_off":          []string{"phone", "computer"},
			"alternative_activity": "reading",
			"reminder_times":       []int{30},
			"importance_level":     "low",
		},
	},
}

// SeedTemplates inserts the built-in template set when the table is
// empty. Re-running against a seeded database is a no-op.
func (s *CalendarService) SeedTemplates(ctx context.Context) error {
	count, err := s.repo.CountTemplates(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, tpl := range defaultTemplates {
		if err := s.repo.InsertTemplate(ctx, tpl.name, tpl.eventType, tpl.defaultDuration, tpl.defaultMetadata); err != nil {
			return err
		}
	}

	log.Info().Int("count", len(defaultTemplates)).Msg("seeded event templates")
	return nil
}
