package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/deniz/technexus/internal/app/models"
	"github.com/deniz/technexus/internal/app/models/dto"
	"github.com/deniz/technexus/internal/app/repositories"
	"github.com/deniz/technexus/internal/app/services"
	"github.com/deniz/technexus/internal/middleware"
	"github.com/deniz/technexus/internal/pkg/apperrors"
	"github.com/deniz/technexus/internal/pkg/helpers"
)

// EventController handles tech event endpoints
type EventController struct {
	eventService services.IEventService
	logger       zerolog.Logger
}

// NewEventController creates a new EventController
func NewEventController(eventService services.IEventService, logger zerolog.Logger) *EventController {
	return &EventController{
		eventService: eventService,
		logger:       logger,
	}
}

// optionalPageSize reads skip/limit when present, leaving zero values when
// absent so searches stay unpaginated by default.
func optionalPageSize(ctx *gin.Context) (skip, limit int) {
	if v := ctx.Query("skip"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			skip = parsed
		}
	}
	if v := ctx.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	return skip, limit
}

// List returns a sorted page of events
// @Summary List events
// @Tags events
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(20)
// @Param sort_by query string false "Sort field: start_date, created_at or likes" default(start_date)
// @Param sort_order query string false "asc or desc" default(asc)
// @Success 200 {array} models.TechEvent "Events"
// @Failure 400 {object} dto.ErrorResponse "Unknown sort field or order"
// @Router /events/ [get]
func (c *EventController) List(ctx *gin.Context) {
	skip, limit := helpers.ParseSkipLimit(ctx)
	sortBy := ctx.DefaultQuery("sort_by", "start_date")
	sortOrder := ctx.DefaultQuery("sort_order", "asc")

	events, err := c.eventService.List(ctx.Request.Context(), skip, limit, sortBy, sortOrder)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// Get returns a single event
// @Summary Get an event
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} models.TechEvent "Event"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [get]
func (c *EventController) Get(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	event, err := c.eventService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// Create stores a new event
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EventRequest true "Event payload"
// @Success 201 {object} models.TechEvent "Created event"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Could not validate credentials"
// @Router /events/ [post]
func (c *EventController) Create(ctx *gin.Context) {
	var req dto.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid event payload")
		middleware.HandleValidationError(ctx, err)
		return
	}

	event, err := c.eventService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, event)
}

// Update replaces an event's content fields
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body dto.EventRequest true "Event payload"
// @Success 200 {object} models.TechEvent "Updated event"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Could not validate credentials"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [put]
func (c *EventController) Update(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid event payload")
		middleware.HandleValidationError(ctx, err)
		return
	}

	event, err := c.eventService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// Delete removes an event
// @Summary Delete an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.MessageResponse "Deletion confirmation"
// @Failure 401 {object} dto.ErrorResponse "Could not validate credentials"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [delete]
func (c *EventController) Delete(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.eventService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Event deleted"})
}

// Search returns events matching all supplied filters
// @Summary Search events
// @Tags events
// @Produce json
// @Param query query string false "Substring match on title, description or organization"
// @Param location query string false "Substring match on location"
// @Param type query string false "Exact event type"
// @Param virtual query bool false "Virtual events only"
// @Param start_date_after query string false "RFC 3339 lower bound on start date"
// @Param end_date_before query string false "RFC 3339 upper bound on end date"
// @Param tech_stack query []string false "Technologies the event must cover" collectionFormat(multi)
// @Param tags query []string false "Tags the event must carry" collectionFormat(multi)
// @Success 200 {array} models.TechEvent "Matching events, soonest first"
// @Failure 400 {object} dto.ErrorResponse "Unparseable filter value"
// @Router /events/search/ [get]
func (c *EventController) Search(ctx *gin.Context) {
	filter := repositories.EventFilter{
		Query:     helpers.OptionalString(ctx, "query"),
		Location:  helpers.OptionalString(ctx, "location"),
		TechStack: ctx.QueryArray("tech_stack"),
		Tags:      ctx.QueryArray("tags"),
	}
	filter.Skip, filter.Limit = optionalPageSize(ctx)

	if v := helpers.OptionalString(ctx, "type"); v != nil {
		eventType := models.EventType(*v)
		filter.Type = &eventType
	}

	virtual, ok := helpers.OptionalBool(ctx, "virtual")
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid virtual parameter"))
		return
	}
	filter.Virtual = virtual

	startAfter, ok := helpers.OptionalTime(ctx, "start_date_after")
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid start_date_after parameter"))
		return
	}
	filter.StartDateAfter = startAfter

	endBefore, ok := helpers.OptionalTime(ctx, "end_date_before")
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid end_date_before parameter"))
		return
	}
	filter.EndDateBefore = endBefore

	events, err := c.eventService.Search(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// Stats aggregates counters over all events
// @Summary Event statistics
// @Tags events
// @Produce json
// @Success 200 {object} models.EventStats "Aggregated counters"
// @Router /events/stats/ [get]
func (c *EventController) Stats(ctx *gin.Context) {
	stats, err := c.eventService.Stats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// Like increments an event's like counter
// @Summary Like an event
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} dto.LikeResponse "New like count"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id}/like [post]
func (c *EventController) Like(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	likes, err := c.eventService.Like(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LikeResponse{Message: "Event liked successfully", Likes: likes})
}

// Register increments an event's attendee counter
// @Summary Register for an event
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} dto.RegisterResponse "New attendee count"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id}/register [post]
func (c *EventController) Register(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	attendees, err := c.eventService.Register(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RegisterResponse{Message: "Successfully registered for event", Attendees: attendees})
}
