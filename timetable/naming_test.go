package timetable

import (
	"regexp"
	"testing"
)

var safeBase = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

func TestFileBase(t *testing.T) {
	tests := []struct {
		name     string
		page     Page
		expected string
	}{
		{
			name:     "second of two pages",
			page:     Page{RouteName: "482", AgencyName: "City Transit", PageIndex: 2, PageCount: 2},
			expected: "482-City_Transit-page-2",
		},
		{
			name:     "single page has no suffix",
			page:     Page{RouteName: "482", AgencyName: "City Transit", PageIndex: 1, PageCount: 1},
			expected: "482-City_Transit",
		},
		{
			name:     "cohort id included when present",
			page:     Page{RouteName: "N1", AgencyName: "Metro", ServiceID: "WKD", PageIndex: 1, PageCount: 1},
			expected: "N1-Metro-WKD",
		},
		{
			name:     "illegal characters stripped",
			page:     Page{RouteName: `4/8*2?`, AgencyName: `City "Transit"`, PageIndex: 1, PageCount: 1},
			expected: "482-City_Transit",
		},
		{
			name:     "route id fallback",
			page:     Page{RouteID: "r001", PageIndex: 1, PageCount: 1},
			expected: "r001",
		},
		{
			name:     "everything sanitized away",
			page:     Page{RouteName: "***", AgencyName: "???", PageIndex: 1, PageCount: 1},
			expected: "timetable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.page.FileBase()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
			if !safeBase.MatchString(got) {
				t.Errorf("base name %q contains unsafe characters", got)
			}
		})
	}
}
