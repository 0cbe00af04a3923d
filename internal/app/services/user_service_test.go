package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/deniz/technexus/internal/app/models"
	"github.com/deniz/technexus/internal/app/models/dto"
	"github.com/deniz/technexus/internal/pkg/apperrors"
)

func newTestUserService(t *testing.T) (*UserService, *fakeUserRepo, *fakeEventRepo, *fakeOpportunityRepo, *models.User) {
	t.Helper()

	userRepo := newFakeUserRepo()
	eventRepo := newFakeEventRepo()
	opportunityRepo := newFakeOpportunityRepo()
	svc := NewUserService(userRepo, eventRepo, opportunityRepo)

	user := &models.User{
		Email:          "ada@example.com",
		Username:       "ada",
		HashedPassword: "irrelevant",
		FullName:       "Ada Lovelace",
	}
	if err := userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	return svc, userRepo, eventRepo, opportunityRepo, user
}

func seedEvent(t *testing.T, repo *fakeEventRepo, title string) *models.TechEvent {
	t.Helper()
	event := &models.TechEvent{
		Title:        title,
		Organization: "Org",
		Description:  "desc",
		Type:         models.EventConference,
		StartDate:    time.Now().Add(24 * time.Hour),
		EndDate:      time.Now().Add(48 * time.Hour),
	}
	if err := repo.Create(context.Background(), event); err != nil {
		t.Fatalf("seeding event: %v", err)
	}
	return event
}

func TestToggleSavedEventRoundTrip(t *testing.T) {
	svc, userRepo, eventRepo, _, user := newTestUserService(t)
	ctx := context.Background()
	event := seedEvent(t, eventRepo, "GopherCon EU")

	saved, err := svc.ToggleSavedEvent(ctx, models.UserTypeUser, user.ID, event.ID)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !saved {
		t.Error("first toggle returned saved=false")
	}

	saved, err = svc.ToggleSavedEvent(ctx, models.UserTypeUser, user.ID, event.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if saved {
		t.Error("second toggle returned saved=true")
	}

	stored, err := userRepo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(stored.SavedEvents) != 0 {
		t.Errorf("saved list after round trip = %v, want empty", stored.SavedEvents)
	}
}

func TestToggleSavedEventMissingEntity(t *testing.T) {
	svc, _, _, _, user := newTestUserService(t)
	_, err := svc.ToggleSavedEvent(context.Background(), models.UserTypeUser, user.ID, 404)
	if !errors.Is(err, apperrors.ErrEventNotFound) {
		t.Errorf("toggle missing event error = %v, want ErrEventNotFound", err)
	}
}

func TestSavedEventsPreserveOrderAndDropDeleted(t *testing.T) {
	svc, _, eventRepo, _, user := newTestUserService(t)
	ctx := context.Background()

	first := seedEvent(t, eventRepo, "First")
	second := seedEvent(t, eventRepo, "Second")
	third := seedEvent(t, eventRepo, "Third")

	for _, id := range []int64{third.ID, first.ID, second.ID} {
		if _, err := svc.ToggleSavedEvent(ctx, models.UserTypeUser, user.ID, id); err != nil {
			t.Fatalf("toggle %d: %v", id, err)
		}
	}

	// Deleting an entity must not break the saved list, its id is simply
	// skipped when resolving.
	if err := eventRepo.Delete(ctx, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	events, err := svc.SavedEvents(ctx, models.UserTypeUser, user.ID)
	if err != nil {
		t.Fatalf("SavedEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("saved events = %d, want 2", len(events))
	}
	if events[0].ID != third.ID || events[1].ID != second.ID {
		t.Errorf("saved order = [%d %d], want [%d %d]", events[0].ID, events[1].ID, third.ID, second.ID)
	}
}

func TestAdminBlockedFromProfileEndpoints(t *testing.T) {
	svc, _, _, _, _ := newTestUserService(t)
	ctx := context.Background()

	if _, err := svc.GetProfile(ctx, models.UserTypeAdmin, 0); !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("GetProfile as admin = %v, want ErrBadRequest", err)
	}
	if _, err := svc.UpdateProfile(ctx, models.UserTypeAdmin, 0, &dto.UpdateUserRequest{}); !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("UpdateProfile as admin = %v, want ErrBadRequest", err)
	}
	if _, err := svc.ToggleSavedEvent(ctx, models.UserTypeAdmin, 0, 1); !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("ToggleSavedEvent as admin = %v, want ErrBadRequest", err)
	}
	if _, err := svc.SavedEvents(ctx, models.UserTypeAdmin, 0); !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("SavedEvents as admin = %v, want ErrBadRequest", err)
	}
}

func TestUpdateProfilePartialFields(t *testing.T) {
	svc, userRepo, _, _, user := newTestUserService(t)
	ctx := context.Background()

	bio := "Mathematician"
	updated, err := svc.UpdateProfile(ctx, models.UserTypeUser, user.ID, &dto.UpdateUserRequest{Bio: &bio})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Bio == nil || *updated.Bio != bio {
		t.Errorf("bio = %v, want %q", updated.Bio, bio)
	}
	if updated.Email != user.Email {
		t.Errorf("email changed unexpectedly to %q", updated.Email)
	}

	stored, _ := userRepo.GetByID(ctx, user.ID)
	if stored.Bio == nil || *stored.Bio != bio {
		t.Errorf("stored bio = %v, want %q", stored.Bio, bio)
	}
}

func TestUpdateProfileEmailConflict(t *testing.T) {
	svc, userRepo, _, _, user := newTestUserService(t)
	ctx := context.Background()

	other := &models.User{
		Email:          "taken@example.com",
		Username:       "other",
		HashedPassword: "irrelevant",
		FullName:       "Other",
	}
	if err := userRepo.Create(ctx, other); err != nil {
		t.Fatalf("seeding second user: %v", err)
	}

	taken := "taken@example.com"
	_, err := svc.UpdateProfile(ctx, models.UserTypeUser, user.ID, &dto.UpdateUserRequest{Email: &taken})
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Errorf("conflicting email error = %v, want ErrEmailAlreadyExists", err)
	}

	// Re-submitting the caller's own email is not a conflict
	own := user.Email
	if _, err := svc.UpdateProfile(ctx, models.UserTypeUser, user.ID, &dto.UpdateUserRequest{Email: &own}); err != nil {
		t.Errorf("own email resubmission: %v", err)
	}
}
