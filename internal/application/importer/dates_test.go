package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWorkbookDate(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
		wantErr  bool
	}{
		{"15/03/2024", time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), false},
		{"5/3/2024", time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), false},
		{"2024-03-15", time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), false},
		{"15-03-2024", time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), false},
		{"45366", time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), false}, // Excel serial
		{" 15/03/2024 ", time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), false},
		{"", time.Time{}, true},
		{"not a date", time.Time{}, true},
		{"-5", time.Time{}, true},
	}

	for _, tt := range tests {
		got, err := ParseWorkbookDate(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
		} else {
			require.NoError(t, err, "input %q", tt.input)
			assert.True(t, got.Equal(tt.expected), "input %q: got %v, want %v", tt.input, got, tt.expected)
		}
	}
}
