package id

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ErrEmpty is returned when an account or owner ID is blank.
var ErrEmpty = errors.New("empty id")

// New returns a generated account ID for accounts opened without one.
func New() string {
	return uuid.NewString()
}

// Normalize trims an ID read from a file. Numeric IDs lose leading zeros so
// "0042" and "42" refer to the same record.
func Normalize(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrEmpty
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return strconv.FormatInt(n, 10), nil
	}
	return s, nil
}
