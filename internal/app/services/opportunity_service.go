package services

import (
	"context"
	"fmt"

	"github.com/deniz/technexus/internal/app/models"
	"github.com/deniz/technexus/internal/app/models/dto"
	"github.com/deniz/technexus/internal/app/repositories"
	"github.com/deniz/technexus/internal/pkg/apperrors"
)

// opportunitySortColumns is the allow-list mapping API sort keys to
// columns.
var opportunitySortColumns = map[string]string{
	"deadline":   "deadline",
	"created_at": "created_at",
	"likes":      "likes",
}

// OpportunityService implements research opportunity operations
type OpportunityService struct {
	opportunityRepo repositories.IOpportunityRepository
}

// NewOpportunityService creates a new OpportunityService
func NewOpportunityService(opportunityRepo repositories.IOpportunityRepository) *OpportunityService {
	return &OpportunityService{opportunityRepo: opportunityRepo}
}

// List returns a page of opportunities sorted by a validated column
func (s *OpportunityService) List(ctx context.Context, skip, limit int, sortBy, order string) ([]models.ResearchOpportunity, error) {
	column, desc, err := resolveSort(opportunitySortColumns, sortBy, order)
	if err != nil {
		return nil, err
	}
	return s.opportunityRepo.List(ctx, skip, limit, column, desc)
}

// Get returns a single opportunity by ID
func (s *OpportunityService) Get(ctx context.Context, id int64) (*models.ResearchOpportunity, error) {
	return s.opportunityRepo.GetByID(ctx, id)
}

func validateOpportunityType(oppType models.OpportunityType) error {
	if !oppType.IsValid() {
		return apperrors.NewValidationError(fmt.Sprintf("Invalid opportunity type %q", oppType))
	}
	return nil
}

// Create stores a new opportunity with server-assigned identity and
// counters
func (s *OpportunityService) Create(ctx context.Context, req *dto.OpportunityRequest) (*models.ResearchOpportunity, error) {
	if err := validateOpportunityType(req.Type); err != nil {
		return nil, err
	}

	opportunity := req.ToModel()
	if err := s.opportunityRepo.Create(ctx, opportunity); err != nil {
		return nil, err
	}
	return opportunity, nil
}

// Update replaces the admin-managed fields of an existing opportunity
func (s *OpportunityService) Update(ctx context.Context, id int64, req *dto.OpportunityRequest) (*models.ResearchOpportunity, error) {
	if err := validateOpportunityType(req.Type); err != nil {
		return nil, err
	}

	opportunity := req.ToModel()
	opportunity.ID = id
	if err := s.opportunityRepo.Update(ctx, opportunity); err != nil {
		return nil, err
	}
	return opportunity, nil
}

// Delete removes an opportunity
func (s *OpportunityService) Delete(ctx context.Context, id int64) error {
	return s.opportunityRepo.Delete(ctx, id)
}

// Search returns opportunities matching all criteria of the filter
func (s *OpportunityService) Search(ctx context.Context, filter repositories.OpportunityFilter) ([]models.ResearchOpportunity, error) {
	if filter.Type != nil && !filter.Type.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("Invalid opportunity type %q", *filter.Type))
	}
	return s.opportunityRepo.Search(ctx, filter)
}

// Stats aggregates counters over all opportunities
func (s *OpportunityService) Stats(ctx context.Context) (*models.OpportunityStats, error) {
	return s.opportunityRepo.Stats(ctx)
}

// Like increments the like counter and returns the new value
func (s *OpportunityService) Like(ctx context.Context, id int64) (int64, error) {
	return s.opportunityRepo.IncrementLikes(ctx, id)
}

// Apply increments the application counter and returns the new value
func (s *OpportunityService) Apply(ctx context.Context, id int64) (int64, error) {
	return s.opportunityRepo.IncrementApplications(ctx, id)
}
