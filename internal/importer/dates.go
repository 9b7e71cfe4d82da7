package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// DateFormat is the layout opening dates are written with.
const DateFormat = "2006-01-02 15:04:05 -0700"

// ParseDate parses a free-text opening date. Dates without a zone are read as UTC.
func ParseDate(text string) (time.Time, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, fmt.Errorf("parsing date %q: empty", text)
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", text, err)
	}
	return t, nil
}
