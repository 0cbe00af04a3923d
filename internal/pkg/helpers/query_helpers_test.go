package helpers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func contextWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParseSkipLimit(t *testing.T) {
	cases := []struct {
		name      string
		query     string
		wantSkip  int
		wantLimit int
	}{
		{"defaults", "", 0, DefaultLimit},
		{"explicit", "skip=30&limit=50", 30, 50},
		{"negative skip", "skip=-5", 0, DefaultLimit},
		{"zero limit", "limit=0", 0, DefaultLimit},
		{"over max limit", "limit=1000", 0, DefaultLimit},
		{"garbage", "skip=abc&limit=xyz", 0, DefaultLimit},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			skip, limit := ParseSkipLimit(contextWithQuery(tc.query))
			if skip != tc.wantSkip || limit != tc.wantLimit {
				t.Errorf("ParseSkipLimit(%q) = %d, %d, want %d, %d",
					tc.query, skip, limit, tc.wantSkip, tc.wantLimit)
			}
		})
	}
}

func TestOptionalString(t *testing.T) {
	if got := OptionalString(contextWithQuery("q=golang"), "q"); got == nil || *got != "golang" {
		t.Errorf("OptionalString present = %v, want golang", got)
	}
	if got := OptionalString(contextWithQuery(""), "q"); got != nil {
		t.Errorf("OptionalString absent = %v, want nil", got)
	}
	if got := OptionalString(contextWithQuery("q="), "q"); got != nil {
		t.Errorf("OptionalString empty = %v, want nil", got)
	}
}

func TestOptionalBool(t *testing.T) {
	value, ok := OptionalBool(contextWithQuery("virtual=true"), "virtual")
	if !ok || value == nil || !*value {
		t.Errorf("OptionalBool(true) = %v, %v", value, ok)
	}

	value, ok = OptionalBool(contextWithQuery(""), "virtual")
	if !ok || value != nil {
		t.Errorf("OptionalBool absent = %v, %v, want nil, true", value, ok)
	}

	if _, ok := OptionalBool(contextWithQuery("virtual=maybe"), "virtual"); ok {
		t.Error("OptionalBool accepted an unparseable value")
	}
}

func TestOptionalTime(t *testing.T) {
	value, ok := OptionalTime(contextWithQuery("after=2026-03-01T10:00:00Z"), "after")
	if !ok || value == nil {
		t.Fatalf("OptionalTime RFC3339 = %v, %v", value, ok)
	}
	if !value.Equal(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("parsed time = %v", value)
	}

	// Date-only values are accepted too
	value, ok = OptionalTime(contextWithQuery("after=2026-03-01"), "after")
	if !ok || value == nil || value.Day() != 1 {
		t.Errorf("OptionalTime date-only = %v, %v", value, ok)
	}

	if _, ok := OptionalTime(contextWithQuery("after=next-tuesday"), "after"); ok {
		t.Error("OptionalTime accepted an unparseable value")
	}

	value, ok = OptionalTime(contextWithQuery(""), "after")
	if !ok || value != nil {
		t.Errorf("OptionalTime absent = %v, %v, want nil, true", value, ok)
	}
}
