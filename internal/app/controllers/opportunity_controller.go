package controllers

import (
	"net/http"

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

// OpportunityController handles research opportunity endpoints
type OpportunityController struct {
	opportunityService services.IOpportunityService
	logger             zerolog.Logger
}

// NewOpportunityController creates a new OpportunityController
func NewOpportunityController(opportunityService services.IOpportunityService, logger zerolog.Logger) *OpportunityController {
	return &OpportunityController{
		opportunityService: opportunityService,
		logger:             logger,
	}
}

// List returns a sorted page of opportunities
// @Summary List opportunities
// @Tags opportunities
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(20)
// @Param sort_by query string false "Sort field: deadline, created_at or likes" default(deadline)
// @Param sort_order query string false "asc or desc" default(asc)
// @Success 200 {array} models.ResearchOpportunity "Opportunities"
// @Failure 400 {object} dto.ErrorResponse "Unknown sort field or order"
// @Router /opportunities/ [get]
func (c *OpportunityController) List(ctx *gin.Context) {
	skip, limit := helpers.ParseSkipLimit(ctx)
	sortBy := ctx.DefaultQuery("sort_by", "deadline")
	sortOrder := ctx.DefaultQuery("sort_order", "asc")

	opportunities, err := c.opportunityService.List(ctx.Request.Context(), skip, limit, sortBy, sortOrder)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, opportunities)
}

// Get returns a single opportunity
// @Summary Get an opportunity
// @Tags opportunities
// @Produce json
// @Param id path int true "Opportunity ID"
// @Success 200 {object} models.ResearchOpportunity "Opportunity"
// @Failure 404 {object} dto.ErrorResponse "Opportunity not found"
// @Router /opportunities/{id} [get]
func (c *OpportunityController) Get(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	opportunity, err := c.opportunityService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, opportunity)
}

// Create stores a new opportunity
// @Summary Create an opportunity
// @Tags opportunities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.OpportunityRequest true "Opportunity payload"
// @Success 201 {object} models.ResearchOpportunity "Created opportunity"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Could not validate credentials"
// @Router /opportunities/ [post]
func (c *OpportunityController) Create(ctx *gin.Context) {
	var req dto.OpportunityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid opportunity payload")
		middleware.HandleValidationError(ctx, err)
		return
	}

	opportunity, err := c.opportunityService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, opportunity)
}

// Update replaces an opportunity's content fields
// @Summary Update an opportunity
// @Tags opportunities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Opportunity ID"
// @Param request body dto.OpportunityRequest true "Opportunity payload"
// @Success 200 {object} models.ResearchOpportunity "Updated opportunity"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Could not validate credentials"
// @Failure 404 {object} dto.ErrorResponse "Opportunity not found"
// @Router /opportunities/{id} [put]
func (c *OpportunityController) Update(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.OpportunityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid opportunity payload")
		middleware.HandleValidationError(ctx, err)
		return
	}

	opportunity, err := c.opportunityService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, opportunity)
}

// Delete removes an opportunity
// @Summary Delete an opportunity
// @Tags opportunities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Opportunity ID"
// @Success 200 {object} dto.MessageResponse "Deletion confirmation"
// @Failure 401 {object} dto.ErrorResponse "Could not validate credentials"
// @Failure 404 {object} dto.ErrorResponse "Opportunity not found"
// @Router /opportunities/{id} [delete]
func (c *OpportunityController) Delete(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.opportunityService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Opportunity deleted"})
}

// Search returns opportunities matching all supplied filters
// @Summary Search opportunities
// @Tags opportunities
// @Produce json
// @Param query query string false "Substring match on title, description or organization"
// @Param location query string false "Substring match on location"
// @Param type query string false "Exact opportunity type"
// @Param virtual query bool false "Virtual opportunities only"
// @Param deadline_after query string false "RFC 3339 lower bound on deadline"
// @Param fields query []string false "Research fields the opportunity must cover" collectionFormat(multi)
// @Param tags query []string false "Tags the opportunity must carry" collectionFormat(multi)
// @Success 200 {array} models.ResearchOpportunity "Matching opportunities, nearest deadline first"
// @Failure 400 {object} dto.ErrorResponse "Unparseable filter value"
// @Router /opportunities/search/ [get]
func (c *OpportunityController) Search(ctx *gin.Context) {
	filter := repositories.OpportunityFilter{
		Query:    helpers.OptionalString(ctx, "query"),
		Location: helpers.OptionalString(ctx, "location"),
		Fields:   ctx.QueryArray("fields"),
		Tags:     ctx.QueryArray("tags"),
	}
	filter.Skip, filter.Limit = optionalPageSize(ctx)

	if v := helpers.OptionalString(ctx, "type"); v != nil {
		oppType := models.OpportunityType(*v)
		filter.Type = &oppType
	}

	virtual, ok := helpers.OptionalBool(ctx, "virtual")
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid virtual parameter"))
		return
	}
	filter.Virtual = virtual

	deadlineAfter, ok := helpers.OptionalTime(ctx, "deadline_after")
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid deadline_after parameter"))
		return
	}
	filter.DeadlineAfter = deadlineAfter

	opportunities, err := c.opportunityService.Search(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, opportunities)
}

// Stats aggregates counters over all opportunities
// @Summary Opportunity statistics
// @Tags opportunities
// @Produce json
// @Success 200 {object} models.OpportunityStats "Aggregated counters"
// @Router /opportunities/stats/ [get]
func (c *OpportunityController) Stats(ctx *gin.Context) {
	stats, err := c.opportunityService.Stats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// Like increments an opportunity's like counter
// @Summary Like an opportunity
// @Tags opportunities
// @Produce json
// @Param id path int true "Opportunity ID"
// @Success 200 {object} dto.LikeResponse "New like count"
// @Failure 404 {object} dto.ErrorResponse "Opportunity not found"
// @Router /opportunities/{id}/like [post]
func (c *OpportunityController) Like(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	likes, err := c.opportunityService.Like(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LikeResponse{Message: "Like recorded", Likes: likes})
}

// Apply increments an opportunity's application counter
// @Summary Apply to an opportunity
// @Tags opportunities
// @Produce json
// @Param id path int true "Opportunity ID"
// @Success 200 {object} dto.ApplyResponse "New application count"
// @Failure 404 {object} dto.ErrorResponse "Opportunity not found"
// @Router /opportunities/{id}/apply [post]
func (c *OpportunityController) Apply(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	applications, err := c.opportunityService.Apply(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ApplyResponse{Message: "Application recorded", Applications: applications})
}
