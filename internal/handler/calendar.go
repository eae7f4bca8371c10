package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lifecal/backend/internal/model"
	"github.com/lifecal/backend/internal/service"
	"github.com/rs/zerolog/log"
)

type CalendarHandler struct {
	svc *service.CalendarService
}

func NewCalendarHandler(svc *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{svc: svc}
}

// GetEvents godoc
// @Summary List events on the caller's default calendar
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Range start (RFC3339 or YYYY-MM-DD)"
// @Param endDate query string false "Range end"
// @Param eventType query string false "Event type filter"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.Response
// @Failure 404 {object} model.Response
// @Failure 500 {object} model.Response
// @Router /api/calendar/events [get]
func (h *CalendarHandler) GetEvents(c *gin.Context) {
	user := GetAuthUser(c)

	var filter model.EventFilter
	filter.EventType = c.Query("eventType")

	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	if startDate != "" && endDate != "" {
		start, err := parseDate(startDate)
		if err != nil {
			writeError(c, http.StatusBadRequest, "Invalid startDate")
			return
		}
		end, err := parseDate(endDate)
		if err != nil {
			writeError(c, http.StatusBadRequest, "Invalid endDate")
			return
		}
		filter.StartDate = start
		filter.EndDate = end
	}

	events, err := h.svc.ListEvents(c.Request.Context(), user.UserID, filter)
	if err != nil {
		if errors.Is(err, service.ErrNoCalendar) {
			writeError(c, http.StatusNotFound, "No calendar found for user")
			return
		}
		log.Error().Err(err).Msg("failed to fetch events")
		writeError(c, http.StatusInternalServerError, "Failed to fetch events")
		return
	}

	count := len(events)
	c.JSON(http.StatusOK, model.Response{
		Success: true,
		Data:    events,
		Count:   &count,
	})
}

// CreateEvent godoc
// @Summary Create an event on the caller's default calendar
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateEventRequest true "Event data"
// @Success 201 {object} model.Response
// @Failure 400 {object} model.Response
// @Failure 404 {object} model.Response
// @Failure 500 {object} model.Response
// @Router /api/calendar/events [post]
func (h *CalendarHandler) CreateEvent(c *gin.Context) {
	user := GetAuthUser(c)

	var req model.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Title == "" || req.StartTime.IsZero() || req.EndTime.IsZero() || req.EventType == "" {
		writeError(c, http.StatusBadRequest, "Missing required fields: title, startTime, endTime, eventType")
		return
	}
	if _, ok := model.EventTypeColors[req.EventType]; !ok {
		writeError(c, http.StatusBadRequest, "Invalid event type")
		return
	}

	event, err := h.svc.CreateEvent(c.Request.Context(), user.UserID, req)
	if err != nil {
		if errors.Is(err, service.ErrNoCalendar) {
			writeError(c, http.StatusNotFound, "No calendar found for user")
			return
		}
		log.Error().Err(err).Msg("failed to create event")
		writeError(c, http.StatusInternalServerError, "Failed to create event")
		return
	}

	c.JSON(http.StatusCreated, model.Response{
		Success: true,
		Message: "Event created successfully",
		Data:    event,
	})
}

// UpdateEvent godoc
// @Summary Update an event
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body model.UpdateEventRequest true "Fields to change"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.Response
// @Failure 404 {object} model.Response
// @Failure 500 {object} model.Response
// @Router /api/calendar/events/{id} [put]
func (h *CalendarHandler) UpdateEvent(c *gin.Context) {
	user := GetAuthUser(c)
	eventID := c.Param("id")

	var req model.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.EventType != nil {
		if _, ok := model.EventTypeColors[*req.EventType]; !ok {
			writeError(c, http.StatusBadRequest, "Invalid event type")
			return
		}
	}

	event, err := h.svc.UpdateEvent(c.Request.Context(), user.UserID, eventID, req)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			writeError(c, http.StatusNotFound, "Event not found or access denied")
			return
		}
		log.Error().Err(err).Msg("failed to update event")
		writeError(c, http.StatusInternalServerError, "Failed to update event")
		return
	}

	c.JSON(http.StatusOK, model.Response{
		Success: true,
		Message: "Event updated successfully",
		Data:    event,
	})
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} model.Response
// @Failure 404 {object} model.Response
// @Failure 500 {object} model.Response
// @Router /api/calendar/events/{id} [delete]
func (h *CalendarHandler) DeleteEvent(c *gin.Context) {
	user := GetAuthUser(c)
	eventID := c.Param("id")

	if err := h.svc.DeleteEvent(c.Request.Context(), user.UserID, eventID); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			writeError(c, http.StatusNotFound, "Event not found or access denied")
			return
		}
		log.Error().Err(err).Msg("failed to delete event")
		writeError(c, http.StatusInternalServerError, "Failed to delete event")
		return
	}

	c.JSON(http.StatusOK, model.Response{
		Success: true,
		Message: "Event deleted successfully",
	})
}

// GetTemplates godoc
// @Summary List active event templates
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Response
// @Failure 500 {object} model.Response
// @Router /api/calendar/templates [get]
func (h *CalendarHandler) GetTemplates(c *gin.Context) {
	templates, err := h.svc.ListTemplates(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch templates")
		writeError(c, http.StatusInternalServerError, "Failed to fetch templates")
		return
	}

	count := len(templates)
	c.JSON(http.StatusOK, model.Response{
		Success: true,
		Data:    templates,
		Count:   &count,
	})
}

// GetEventTypes godoc
// @Summary List event types with display colors
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Response
// @Router /api/calendar/event-types [get]
func (h *CalendarHandler) GetEventTypes(c *gin.Context) {
	c.JSON(http.StatusOK, model.Response{
		Success: true,
		Data:    h.svc.EventTypes(),
	})
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
