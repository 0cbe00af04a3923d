package helpers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ParseSkipLimit extracts offset/limit paging parameters from the request.
// Invalid or out-of-range values fall back to the defaults.
func ParseSkipLimit(c *gin.Context) (skip, limit int) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))
	if err != nil || limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}

	return skip, limit
}

// OptionalString returns a pointer to the query parameter value, or nil when
// the parameter is absent or empty.
func OptionalString(c *gin.Context, name string) *string {
	if v := c.Query(name); v != "" {
		return &v
	}
	return nil
}

// OptionalBool parses an optional boolean query parameter. The ok result is
// false when the parameter is present but unparseable.
func OptionalBool(c *gin.Context, name string) (value *bool, ok bool) {
	v := c.Query(name)
	if v == "" {
		return nil, true
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return nil, false
	}
	return &parsed, true
}

// OptionalTime parses an optional RFC 3339 or date-only query parameter.
func OptionalTime(c *gin.Context, name string) (value *time.Time, ok bool) {
	v := c.Query(name)
	if v == "" {
		return nil, true
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if parsed, err := time.Parse(layout, v); err == nil {
			return &parsed, true
		}
	}
	return nil, false
}
