package timetable

import (
	"strings"

	"github.com/theoremus-urban-solutions/gtfs-to-timetable/gtfs"
)

// dayNames is the canonical Monday-first weekday order used everywhere a
// calendar is phrased.
var dayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// summarizeService resolves a cohort's calendar entry into display text.
// Calendar data is optional; an absent entry yields empty fields, never an
// error.
func summarizeService(idx *gtfs.Index, serviceID string) ServiceSummary {
	cal, ok := idx.CalendarForService(serviceID)
	if !ok {
		return ServiceSummary{}
	}
	return ServiceSummary{
		DateRange: formatDateRange(cal.StartDate, cal.EndDate),
		Days:      formatDays(cal.Weekdays()),
	}
}

// formatDateRange reformats a YYYYMMDD pair as "DD/MM/YYYY - DD/MM/YYYY".
// Both dates must be present and exactly 8 characters; anything else
// yields the empty string.
func formatDateRange(start, end string) string {
	from := formatDate(start)
	to := formatDate(end)
	if from == "" || to == "" {
		return ""
	}
	return from + " - " + to
}

func formatDate(d string) string {
	if len(d) != 8 {
		return ""
	}
	return d[6:8] + "/" + d[4:6] + "/" + d[0:4]
}

// formatDays phrases the active weekday set:
//
//	none               -> ""
//	all seven          -> "every day"
//	one run of >= 2    -> "from Monday to Friday"
//	exactly one        -> "on Sunday"
//	anything else      -> "Monday, Wednesday"
func formatDays(active [7]bool) string {
	var days []int
	for i, on := range active {
		if on {
			days = append(days, i)
		}
	}
	switch {
	case len(days) == 0:
		return ""
	case len(days) == 7:
		return "every day"
	case len(days) >= 2 && days[len(days)-1]-days[0] == len(days)-1:
		return "from " + dayNames[days[0]] + " to " + dayNames[days[len(days)-1]]
	case len(days) == 1:
		return "on " + dayNames[days[0]]
	}
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = dayNames[d]
	}
	return strings.Join(names, ", ")
}
