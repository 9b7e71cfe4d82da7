package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"1999-12-31 23:59:59 -0200", time.Date(2000, 1, 1, 1, 59, 59, 0, time.UTC)},
		{"2016-01-01", time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2014-04-26 13:13:43", time.Date(2014, 4, 26, 13, 13, 43, 0, time.UTC)},
		{" 2010-12-21 12:21:12 -0800 ", time.Date(2010, 12, 21, 20, 21, 12, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.input)
		require.NoError(t, err, "input: %q", tt.input)
		assert.True(t, tt.want.Equal(got), "ParseDate(%q) = %s", tt.input, got)
	}
}

func TestParseDate_Errors(t *testing.T) {
	for _, input := range []string{"", "   ", "not a date"} {
		_, err := ParseDate(input)
		assert.Error(t, err, "input: %q", input)
	}
}
