package timetable

import "errors"

// DefaultMaxTripsPerPage is the trip-column budget of one printable page.
const DefaultMaxTripsPerPage = 8

// StopColumnLabel heads the stop-name column of every timetable.
const StopColumnLabel = "Stop"

// ErrNoTimetables is returned when no route matched the filter or no trip
// in the feed carries stop-time data. The run aborts; nothing is rendered.
var ErrNoTimetables = errors.New("no matching timetables")

// Options configures timetable construction. The zero value is usable:
// no route filter, default page size, heuristic major-stop detection.
type Options struct {
	// RouteFilter selects routes by exact id or short name. Empty keeps all.
	RouteFilter string
	// MaxTripsPerPage caps the trip columns per page; values < 1 fall back
	// to DefaultMaxTripsPerPage.
	MaxTripsPerPage int
	// MajorStops lists stop names or ids to emphasize, matched trimmed and
	// case-insensitively. Empty enables the uppercase-name heuristic.
	MajorStops []string
}

func (o Options) maxTrips() int {
	if o.MaxTripsPerPage < 1 {
		return DefaultMaxTripsPerPage
	}
	return o.MaxTripsPerPage
}

// ServiceSummary is the human-readable validity of one service cohort.
type ServiceSummary struct {
	// DateRange is "DD/MM/YYYY - DD/MM/YYYY", or "" when the calendar entry
	// is absent or its dates are not 8-character YYYYMMDD values.
	DateRange string
	// Days phrases the active weekdays: "every day", "from Monday to
	// Friday", "on Sunday", or a comma-joined list.
	Days string
}

// Page is one printable timetable unit: at most maxTrips trip columns of a
// single service cohort of a single route.
type Page struct {
	RouteID string
	// RouteName is the route's short name, or its id when no short name
	// exists; RouteLongName may add the spelled-out destination line.
	RouteName     string
	RouteLongName string
	AgencyName    string

	// ServiceID identifies the cohort, populated only when the route has
	// more than one distinct cohort.
	ServiceID string

	// Headers holds StopColumnLabel followed by one headsign-or-trip-id
	// per trip column.
	Headers []string
	// Rows holds one row per canonical stop: stop name first, then one
	// formatted time cell per trip column (blank when a trip skips the stop).
	Rows [][]string
	// StopIDs aligns a stop id to each row for classification.
	StopIDs []string
	// MajorStops is the resolved membership set over StopIDs.
	MajorStops map[string]bool

	Summary ServiceSummary

	// PageIndex is 1-based within the cohort; PageCount is the cohort total.
	PageIndex int
	PageCount int
}
