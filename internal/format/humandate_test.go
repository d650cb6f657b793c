package format

import (
	"strings"
	"testing"
	"time"
)

func TestRelative(t *testing.T) {
	// Fixed "now": midday UTC so day boundaries are unambiguous.
	now := time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt string
		loc       *time.Location
		expected  string
	}{
		{
			name:      "same calendar day",
			createdAt: "2024-05-15T01:00:00Z",
			loc:       time.UTC,
			expected:  "Today",
		},
		{
			name:      "one day earlier",
			createdAt: "2024-05-14T23:59:59Z",
			loc:       time.UTC,
			expected:  "Yesterday",
		},
		{
			name:      "three days earlier",
			createdAt: "2024-05-12T08:00:00Z",
			loc:       time.UTC,
			expected:  "3 days ago",
		},
		{
			name:      "seven days is still relative",
			createdAt: "2024-05-08T08:00:00Z",
			loc:       time.UTC,
			expected:  "7 days ago",
		},
		{
			name:      "ten days earlier is absolute",
			createdAt: "2024-05-05T08:00:00Z",
			loc:       time.UTC,
			expected:  "05 May 2024",
		},
		{
			name:      "future timestamp is absolute",
			createdAt: "2024-05-20T08:00:00Z",
			loc:       time.UTC,
			expected:  "20 May 2024",
		},
		{
			name:      "timezone shifts the day boundary",
			createdAt: "2024-05-13T16:00:00Z", // already May 14 at UTC+9
			loc:       time.FixedZone("UTC+9", 9*60*60),
			expected:  "Yesterday",
		},
		{
			name:      "unparseable timestamp passes through",
			createdAt: "not-a-timestamp",
			loc:       time.UTC,
			expected:  "not-a-timestamp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Relative(tt.createdAt, tt.loc, now)
			if got != tt.expected {
				t.Errorf("Relative(%q) = %q, want %q", tt.createdAt, got, tt.expected)
			}
		})
	}
}

func TestRelative_timezoneBoundary(t *testing.T) {
	// Late UTC on the 14th is already the 15th at UTC+9; an event a few
	// hours before it lands on the same local day.
	loc := time.FixedZone("UTC+9", 9*60*60)
	now := time.Date(2024, time.May, 14, 23, 0, 0, 0, time.UTC)

	got := Relative("2024-05-14T16:00:00Z", loc, now)
	if got != "Today" {
		t.Errorf("Relative = %q, want Today across the UTC day boundary", got)
	}
}

func TestLocation(t *testing.T) {
	tests := []struct {
		name         string
		tz           string
		expectedZone string
		expectWarn   bool
	}{
		{
			name:         "empty defaults to UTC with warning",
			tz:           "",
			expectedZone: "UTC",
			expectWarn:   true,
		},
		{
			name:         "invalid falls back to UTC with warning",
			tz:           "Not/AZone",
			expectedZone: "UTC",
			expectWarn:   true,
		},
		{
			name:         "valid zone resolves silently",
			tz:           "UTC",
			expectedZone: "UTC",
			expectWarn:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var warnings strings.Builder
			loc := Location(tt.tz, &warnings)
			if loc.String() != tt.expectedZone {
				t.Errorf("Location(%q) = %q, want %q", tt.tz, loc.String(), tt.expectedZone)
			}
			if tt.expectWarn && warnings.Len() == 0 {
				t.Errorf("Location(%q) expected a warning, got none", tt.tz)
			}
			if !tt.expectWarn && warnings.Len() != 0 {
				t.Errorf("Location(%q) unexpected warning: %s", tt.tz, warnings.String())
			}
		})
	}
}
