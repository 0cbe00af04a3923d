package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/deniz/technexus/internal/app/models"
	"github.com/deniz/technexus/internal/app/models/dto"
	"github.com/deniz/technexus/internal/app/repositories"
	"github.com/deniz/technexus/internal/pkg/apperrors"
)

func eventRequest(title string) *dto.EventRequest {
	return &dto.EventRequest{
		Title:            title,
		Organization:     "GopherCon",
		Description:      "Three days of Go talks",
		Venue:            "Berlin Congress Center",
		RegistrationLink: "https://example.com/register",
		StartDate:        time.Now().Add(24 * time.Hour),
		EndDate:          time.Now().Add(72 * time.Hour),
		Location:         "Berlin, Germany",
		Type:             models.EventConference,
		TechStack:        []string{"Go"},
	}
}

func TestEventListSortAllowList(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)
	ctx := context.Background()

	if _, err := svc.List(ctx, 0, 20, "start_date", "asc"); err != nil {
		t.Fatalf("List with valid sort: %v", err)
	}
	if repo.lastSortColumn != "start_date" || repo.lastSortDesc {
		t.Errorf("repo received sort %q desc=%v, want start_date asc", repo.lastSortColumn, repo.lastSortDesc)
	}

	if _, err := svc.List(ctx, 0, 20, "likes", "desc"); err != nil {
		t.Fatalf("List with likes desc: %v", err)
	}
	if repo.lastSortColumn != "likes" || !repo.lastSortDesc {
		t.Errorf("repo received sort %q desc=%v, want likes desc", repo.lastSortColumn, repo.lastSortDesc)
	}

	// Field names outside the allow-list must never reach the repository
	_, err := svc.List(ctx, 0, 20, "hashed_password", "asc")
	if !errors.Is(err, apperrors.ErrInvalidSortField) {
		t.Errorf("unknown sort field error = %v, want ErrInvalidSortField", err)
	}

	_, err = svc.List(ctx, 0, 20, "start_date", "sideways")
	if !errors.Is(err, apperrors.ErrInvalidSortOrder) {
		t.Errorf("unknown sort order error = %v, want ErrInvalidSortOrder", err)
	}
}

func TestEventCreateValidatesType(t *testing.T) {
	svc := NewEventService(newFakeEventRepo())
	ctx := context.Background()

	req := eventRequest("GopherCon EU")
	req.Type = models.EventType("Rave")
	if _, err := svc.Create(ctx, req); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("invalid type error = %v, want ErrValidationFailed", err)
	}

	// "Tech Talk" carries a space on the wire
	req.Type = models.EventTechTalk
	event, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if event.ID == 0 {
		t.Error("expected created event to receive an id")
	}
}

func TestEventLikeAndRegisterDelegation(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)
	ctx := context.Background()

	event, err := svc.Create(ctx, eventRequest("GopherCon EU"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for i := int64(1); i <= 3; i++ {
		likes, err := svc.Like(ctx, event.ID)
		if err != nil {
			t.Fatalf("Like: %v", err)
		}
		if likes != i {
			t.Errorf("likes after %d calls = %d", i, likes)
		}
	}

	attendees, err := svc.Register(ctx, event.ID)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if attendees != 1 {
		t.Errorf("attendees = %d, want 1", attendees)
	}

	if _, err := svc.Like(ctx, 999); !errors.Is(err, apperrors.ErrEventNotFound) {
		t.Errorf("like missing event error = %v, want ErrEventNotFound", err)
	}
}

func TestEventSearchRequiresAllListValues(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)
	ctx := context.Background()

	full := eventRequest("Cloud Summit")
	full.TechStack = []string{"React", "AWS"}
	if _, err := svc.Create(ctx, full); err != nil {
		t.Fatalf("Create: %v", err)
	}
	partial := eventRequest("Frontend Days")
	partial.TechStack = []string{"React"}
	if _, err := svc.Create(ctx, partial); err != nil {
		t.Fatalf("Create: %v", err)
	}

	results, err := svc.Search(ctx, repositories.EventFilter{TechStack: []string{"React", "AWS"}})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Title != "Cloud Summit" {
		t.Errorf("search results = %+v, want only Cloud Summit", results)
	}
}

func TestEventSearchRejectsUnknownType(t *testing.T) {
	svc := NewEventService(newFakeEventRepo())
	badType := models.EventType("Festival")
	_, err := svc.Search(context.Background(), repositories.EventFilter{Type: &badType})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("unknown type error = %v, want ErrValidationFailed", err)
	}
}

func TestEventUpdateAndDeleteMissing(t *testing.T) {
	svc := NewEventService(newFakeEventRepo())
	ctx := context.Background()

	if _, err := svc.Update(ctx, 42, eventRequest("Ghost")); !errors.Is(err, apperrors.ErrEventNotFound) {
		t.Errorf("update missing error = %v, want ErrEventNotFound", err)
	}
	if err := svc.Delete(ctx, 42); !errors.Is(err, apperrors.ErrEventNotFound) {
		t.Errorf("delete missing error = %v, want ErrEventNotFound", err)
	}
}
