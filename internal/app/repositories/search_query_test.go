package repositories

import (
	"strings"
	"testing"
	"time"

	"github.com/deniz/technexus/internal/app/models"
)

func TestBuildEventSearchQueryNoFilters(t *testing.T) {
	sql, args, err := buildEventSearchQuery(EventFilter{})
	if err != nil {
		t.Fatalf("buildEventSearchQuery: %v", err)
	}
	if strings.Contains(sql, "WHERE") {
		t.Errorf("empty filter produced a WHERE clause: %s", sql)
	}
	if !strings.Contains(sql, "ORDER BY start_date ASC") {
		t.Errorf("missing default ordering: %s", sql)
	}
	if strings.Contains(sql, "LIMIT") || strings.Contains(sql, "OFFSET") {
		t.Errorf("unpaginated search gained LIMIT/OFFSET: %s", sql)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestBuildEventSearchQueryFreeText(t *testing.T) {
	q := "gopher"
	sql, args, err := buildEventSearchQuery(EventFilter{Query: &q})
	if err != nil {
		t.Fatalf("buildEventSearchQuery: %v", err)
	}
	for _, column := range []string{"title ILIKE", "description ILIKE", "organization ILIKE"} {
		if !strings.Contains(sql, column) {
			t.Errorf("missing %q in: %s", column, sql)
		}
	}
	if !strings.Contains(sql, " OR ") {
		t.Errorf("free text columns not ORed: %s", sql)
	}
	for _, arg := range args {
		if arg != "%gopher%" {
			t.Errorf("arg = %v, want %%gopher%%", arg)
		}
	}
}

func TestBuildEventSearchQueryContainmentPerValue(t *testing.T) {
	sql, args, err := buildEventSearchQuery(EventFilter{
		TechStack: []string{"React", "AWS"},
		Tags:      []string{"cloud"},
	})
	if err != nil {
		t.Fatalf("buildEventSearchQuery: %v", err)
	}
	// One containment predicate per supplied value, ANDed
	if got := strings.Count(sql, "tech_stack @>"); got != 2 {
		t.Errorf("tech_stack predicates = %d, want 2: %s", got, sql)
	}
	if got := strings.Count(sql, "tags @>"); got != 1 {
		t.Errorf("tags predicates = %d, want 1: %s", got, sql)
	}
	if len(args) != 3 {
		t.Errorf("args = %v, want 3 single-element arrays", args)
	}
}

func TestBuildEventSearchQueryAllFilters(t *testing.T) {
	q := "ai"
	location := "Berlin"
	eventType := models.EventConference
	virtual := true
	after := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	before := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	sql, args, err := buildEventSearchQuery(EventFilter{
		Query:          &q,
		Location:       &location,
		Type:           &eventType,
		Virtual:        &virtual,
		StartDateAfter: &after,
		EndDateBefore:  &before,
		Skip:           10,
		Limit:          5,
	})
	if err != nil {
		t.Fatalf("buildEventSearchQuery: %v", err)
	}

	for _, fragment := range []string{
		"location ILIKE", "type =", "virtual =",
		"start_date >=", "end_date <=",
		"LIMIT 5", "OFFSET 10",
	} {
		if !strings.Contains(sql, fragment) {
			t.Errorf("missing %q in: %s", fragment, sql)
		}
	}
	if len(args) == 0 {
		t.Error("expected bound arguments")
	}
}

func TestBuildOpportunitySearchQuery(t *testing.T) {
	oppType := models.OpportunityResearch
	after := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	sql, _, err := buildOpportunitySearchQuery(OpportunityFilter{
		Type:          &oppType,
		DeadlineAfter: &after,
		Fields:        []string{"ML", "NLP"},
	})
	if err != nil {
		t.Fatalf("buildOpportunitySearchQuery: %v", err)
	}
	if !strings.Contains(sql, "deadline >=") {
		t.Errorf("missing deadline bound: %s", sql)
	}
	if got := strings.Count(sql, "fields @>"); got != 2 {
		t.Errorf("fields predicates = %d, want 2: %s", got, sql)
	}
	if !strings.Contains(sql, "ORDER BY deadline ASC") {
		t.Errorf("missing deadline ordering: %s", sql)
	}
}

func TestSearchQueriesUseDollarPlaceholders(t *testing.T) {
	q := "go"
	sql, _, err := buildEventSearchQuery(EventFilter{Query: &q})
	if err != nil {
		t.Fatalf("buildEventSearchQuery: %v", err)
	}
	if !strings.Contains(sql, "$1") {
		t.Errorf("expected dollar placeholders: %s", sql)
	}
	if strings.Contains(sql, "?") {
		t.Errorf("unconverted placeholders remain: %s", sql)
	}
}
