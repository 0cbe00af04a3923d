package services

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/deniz/technexus/internal/app/models"
	"github.com/deniz/technexus/internal/app/repositories"
	"github.com/deniz/technexus/internal/pkg/apperrors"
)

// In-memory repository fakes. They mirror the behavior the pg-backed
// repositories promise: sentinel errors on missing rows and unique
// violations as pgconn errors.

type fakeAdminRepo struct {
	admins map[string]*models.Admin
	nextID int64
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]*models.Admin), nextID: 1}
}

func (f *fakeAdminRepo) Create(_ context.Context, admin *models.Admin) error {
	if _, exists := f.admins[admin.Username]; exists {
		return &pgconn.PgError{Code: "23505", ConstraintName: "admins_username_key"}
	}
	admin.ID = f.nextID
	f.nextID++
	stored := *admin
	f.admins[admin.Username] = &stored
	return nil
}

func (f *fakeAdminRepo) GetByUsername(_ context.Context, username string) (*models.Admin, error) {
	admin, ok := f.admins[username]
	if !ok {
		return nil, apperrors.ErrAdminNotFound
	}
	copied := *admin
	return &copied, nil
}

func (f *fakeAdminRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	_, ok := f.admins[username]
	return ok, nil
}

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User), nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
		}
		if u.Username == user.Username {
			return &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
		}
	}
	user.ID = f.nextID
	f.nextID++
	user.IsActive = true
	user.Interests = []string{}
	user.SavedEvents = []int64{}
	user.SavedOpportunities = []int64{}
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	copied.SavedEvents = append([]int64(nil), user.SavedEvents...)
	copied.SavedOpportunities = append([]int64(nil), user.SavedOpportunities...)
	return &copied, nil
}

func (f *fakeUserRepo) GetByUsernameOrEmail(_ context.Context, identifier string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == identifier || u.Email == identifier {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) EmailExists(_ context.Context, email string, excludeID int64) (bool, error) {
	for _, u := range f.users {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, u := range f.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, user *models.User) error {
	stored, ok := f.users[user.ID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	stored.Email = user.Email
	stored.FullName = user.FullName
	stored.Bio = user.Bio
	stored.Interests = user.Interests
	stored.ProfileImage = user.ProfileImage
	return nil
}

func toggle(list []int64, id int64) ([]int64, bool) {
	for i, v := range list {
		if v == id {
			return append(list[:i:i], list[i+1:]...), false
		}
	}
	return append(list, id), true
}

func (f *fakeUserRepo) ToggleSavedEvent(_ context.Context, userID, eventID int64) (bool, error) {
	user, ok := f.users[userID]
	if !ok {
		return false, apperrors.ErrUserNotFound
	}
	var saved bool
	user.SavedEvents, saved = toggle(user.SavedEvents, eventID)
	return saved, nil
}

func (f *fakeUserRepo) ToggleSavedOpportunity(_ context.Context, userID, opportunityID int64) (bool, error) {
	user, ok := f.users[userID]
	if !ok {
		return false, apperrors.ErrUserNotFound
	}
	var saved bool
	user.SavedOpportunities, saved = toggle(user.SavedOpportunities, opportunityID)
	return saved, nil
}

type fakeEventRepo struct {
	events map[int64]*models.TechEvent
	nextID int64

	lastSortColumn string
	lastSortDesc   bool
	lastFilter     repositories.EventFilter
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[int64]*models.TechEvent), nextID: 1}
}

func (f *fakeEventRepo) List(_ context.Context, skip, limit int, sortColumn string, desc bool) ([]models.TechEvent, error) {
	f.lastSortColumn = sortColumn
	f.lastSortDesc = desc
	out := make([]models.TechEvent, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id int64) (*models.TechEvent, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	copied := *event
	return &copied, nil
}

func (f *fakeEventRepo) GetByIDs(_ context.Context, ids []int64) ([]models.TechEvent, error) {
	out := make([]models.TechEvent, 0, len(ids))
	for _, e := range f.events {
		for _, id := range ids {
			if e.ID == id {
				out = append(out, *e)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeEventRepo) Create(_ context.Context, event *models.TechEvent) error {
	event.ID = f.nextID
	f.nextID++
	stored := *event
	f.events[event.ID] = &stored
	return nil
}

func (f *fakeEventRepo) Update(_ context.Context, event *models.TechEvent) error {
	stored, ok := f.events[event.ID]
	if !ok {
		return apperrors.ErrEventNotFound
	}
	event.Attendees = stored.Attendees
	event.Likes = stored.Likes
	*stored = *event
	return nil
}

func (f *fakeEventRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.events[id]; !ok {
		return apperrors.ErrEventNotFound
	}
	delete(f.events, id)
	return nil
}

func (f *fakeEventRepo) Search(_ context.Context, filter repositories.EventFilter) ([]models.TechEvent, error) {
	f.lastFilter = filter
	out := make([]models.TechEvent, 0)
	for _, e := range f.events {
		if filter.Query != nil {
			q := strings.ToLower(*filter.Query)
			if !strings.Contains(strings.ToLower(e.Title), q) &&
				!strings.Contains(strings.ToLower(e.Description), q) &&
				!strings.Contains(strings.ToLower(e.Organization), q) {
				continue
			}
		}
		if filter.Type != nil && e.Type != *filter.Type {
			continue
		}
		if !containsAll(e.TechStack, filter.TechStack) || !containsAll(e.Tags, filter.Tags) {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func containsAll(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (f *fakeEventRepo) Stats(_ context.Context) (*models.EventStats, error) {
	return &models.EventStats{
		Types:             map[string]int64{},
		VirtualVsPhysical: map[string]int64{"virtual": 0, "physical": 0},
	}, nil
}

func (f *fakeEventRepo) IncrementLikes(_ context.Context, id int64) (int64, error) {
	event, ok := f.events[id]
	if !ok {
		return 0, apperrors.ErrEventNotFound
	}
	event.Likes++
	return event.Likes, nil
}

func (f *fakeEventRepo) IncrementAttendees(_ context.Context, id int64) (int64, error) {
	event, ok := f.events[id]
	if !ok {
		return 0, apperrors.ErrEventNotFound
	}
	event.Attendees++
	return event.Attendees, nil
}

type fakeOpportunityRepo struct {
	opportunities map[int64]*models.ResearchOpportunity
	nextID        int64
}

func newFakeOpportunityRepo() *fakeOpportunityRepo {
	return &fakeOpportunityRepo{opportunities: make(map[int64]*models.ResearchOpportunity), nextID: 1}
}

func (f *fakeOpportunityRepo) List(_ context.Context, skip, limit int, sortColumn string, desc bool) ([]models.ResearchOpportunity, error) {
	out := make([]models.ResearchOpportunity, 0, len(f.opportunities))
	for _, o := range f.opportunities {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOpportunityRepo) GetByID(_ context.Context, id int64) (*models.ResearchOpportunity, error) {
	opp, ok := f.opportunities[id]
	if !ok {
		return nil, apperrors.ErrOpportunityNotFound
	}
	copied := *opp
	return &copied, nil
}

func (f *fakeOpportunityRepo) GetByIDs(_ context.Context, ids []int64) ([]models.ResearchOpportunity, error) {
	out := make([]models.ResearchOpportunity, 0, len(ids))
	for _, o := range f.opportunities {
		for _, id := range ids {
			if o.ID == id {
				out = append(out, *o)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeOpportunityRepo) Create(_ context.Context, opportunity *models.ResearchOpportunity) error {
	opportunity.ID = f.nextID
	f.nextID++
	stored := *opportunity
	f.opportunities[opportunity.ID] = &stored
	return nil
}

func (f *fakeOpportunityRepo) Update(_ context.Context, opportunity *models.ResearchOpportunity) error {
	stored, ok := f.opportunities[opportunity.ID]
	if !ok {
		return apperrors.ErrOpportunityNotFound
	}
	opportunity.Applications = stored.Applications
	opportunity.Likes = stored.Likes
	*stored = *opportunity
	return nil
}

func (f *fakeOpportunityRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.opportunities[id]; !ok {
		return apperrors.ErrOpportunityNotFound
	}
	delete(f.opportunities, id)
	return nil
}

func (f *fakeOpportunityRepo) Search(_ context.Context, filter repositories.OpportunityFilter) ([]models.ResearchOpportunity, error) {
	out := make([]models.ResearchOpportunity, 0, len(f.opportunities))
	for _, o := range f.opportunities {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOpportunityRepo) Stats(_ context.Context) (*models.OpportunityStats, error) {
	return &models.OpportunityStats{
		Types:             map[string]int64{},
		VirtualVsPhysical: map[string]int64{"virtual": 0, "physical": 0},
	}, nil
}

func (f *fakeOpportunityRepo) IncrementLikes(_ context.Context, id int64) (int64, error) {
	opp, ok := f.opportunities[id]
	if !ok {
		return 0, apperrors.ErrOpportunityNotFound
	}
	opp.Likes++
	return opp.Likes, nil
}

func (f *fakeOpportunityRepo) IncrementApplications(_ context.Context, id int64) (int64, error) {
	opp, ok := f.opportunities[id]
	if !ok {
		return 0, apperrors.ErrOpportunityNotFound
	}
	opp.Applications++
	return opp.Applications, nil
}
