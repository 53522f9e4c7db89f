package timetable

import (
	"sort"

	"github.com/theoremus-urban-solutions/gtfs-to-timetable/gtfs"
)

// Build runs the whole pipeline: route filtering, service-cohort grouping,
// trip ordering, pagination and row building. Pages come out in route feed
// order, then cohort first-appearance order, then page order. A run that
// produces no page at all fails with ErrNoTimetables.
func Build(idx *gtfs.Index, opts Options) ([]*Page, error) {
	major := NewMajorStopSet(opts.MajorStops)
	var pages []*Page
	for _, route := range idx.Routes() {
		if opts.RouteFilter != "" && route.ID != opts.RouteFilter && route.ShortName != opts.RouteFilter {
			continue
		}
		pages = append(pages, buildRoute(idx, route, opts, major)...)
	}
	if len(pages) == 0 {
		return nil, ErrNoTimetables
	}
	return pages, nil
}

// cohort is one service-calendar bucket of a route's trips.
type cohort struct {
	serviceID string
	trips     []gtfs.Trip
}

func buildRoute(idx *gtfs.Index, route gtfs.Route, opts Options, major *MajorStopSet) []*Page {
	// trips without stop-time rows have no published sequence and are
	// dropped before grouping
	var trips []gtfs.Trip
	for _, t := range idx.TripsForRoute(route.ID) {
		if len(idx.StopTimesForTrip(t.ID)) > 0 {
			trips = append(trips, t)
		}
	}
	if len(trips) == 0 {
		return nil
	}

	cohorts := groupByService(trips)
	labelled := len(cohorts) > 1

	var pages []*Page
	for _, c := range cohorts {
		summary := summarizeService(idx, c.serviceID)
		ordered := orderByStart(idx, c.trips)
		chunks := paginate(ordered, opts.maxTrips())
		for i, chunk := range chunks {
			p := buildPage(idx, route, chunk, major)
			p.Summary = summary
			p.PageIndex = i + 1
			p.PageCount = len(chunks)
			if labelled {
				p.ServiceID = c.serviceID
			}
			pages = append(pages, p)
		}
	}
	return pages
}

// groupByService buckets trips by service id in first-appearance order.
// Trips without a service reference share one fallback bucket.
func groupByService(trips []gtfs.Trip) []cohort {
	byService := map[string]int{}
	var cohorts []cohort
	for _, t := range trips {
		i, ok := byService[t.ServiceID]
		if !ok {
			i = len(cohorts)
			byService[t.ServiceID] = i
			cohorts = append(cohorts, cohort{serviceID: t.ServiceID})
		}
		cohorts[i].trips = append(cohorts[i].trips, t)
	}
	return cohorts
}

// orderByStart sorts trips ascending by the minute of their first
// departure, falling back to arrival, falling back to 0 for unparsable
// values. The zero fallback is a stable-sort tie-break, not a claim about
// when the trip actually starts; feed order wins among equal keys.
func orderByStart(idx *gtfs.Index, trips []gtfs.Trip) []gtfs.Trip {
	ordered := make([]gtfs.Trip, len(trips))
	copy(ordered, trips)
	sort.SliceStable(ordered, func(i, j int) bool {
		return startMinute(idx, ordered[i]) < startMinute(idx, ordered[j])
	})
	return ordered
}

func startMinute(idx *gtfs.Index, t gtfs.Trip) int {
	times := idx.StopTimesForTrip(t.ID)
	if len(times) == 0 {
		return 0
	}
	first := times[0]
	if m, ok := ParseClock(first.DepartureTime); ok {
		return m
	}
	if m, ok := ParseClock(first.ArrivalTime); ok {
		return m
	}
	return 0
}

// paginate splits sorted trips into consecutive chunks of at most maxTrips.
func paginate(trips []gtfs.Trip, maxTrips int) [][]gtfs.Trip {
	var chunks [][]gtfs.Trip
	for start := 0; start < len(trips); start += maxTrips {
		end := start + maxTrips
		if end > len(trips) {
			end = len(trips)
		}
		chunks = append(chunks, trips[start:end])
	}
	return chunks
}

// buildPage lays out one page. The canonical stop order is the stop
// sequence of the page's earliest trip, taken verbatim: a trip revisiting
// a stop contributes one row per visit.
func buildPage(idx *gtfs.Index, route gtfs.Route, trips []gtfs.Trip, major *MajorStopSet) *Page {
	p := &Page{
		RouteID:       route.ID,
		RouteName:     route.DisplayName(),
		RouteLongName: route.LongName,
		AgencyName:    idx.AgencyName(route.AgencyID),
		Headers:       make([]string, 0, len(trips)+1),
		MajorStops:    map[string]bool{},
	}

	p.Headers = append(p.Headers, StopColumnLabel)
	for _, t := range trips {
		if t.Headsign != "" {
			p.Headers = append(p.Headers, t.Headsign)
		} else {
			p.Headers = append(p.Headers, t.ID)
		}
	}

	for _, canonical := range idx.StopTimesForTrip(trips[0].ID) {
		name := idx.StopName(canonical.StopID)
		row := make([]string, 0, len(trips)+1)
		row = append(row, name)
		for _, t := range trips {
			row = append(row, cellFor(idx, t, canonical.StopID))
		}
		p.Rows = append(p.Rows, row)
		p.StopIDs = append(p.StopIDs, canonical.StopID)
		if major.IsMajor(name, canonical.StopID) {
			p.MajorStops[canonical.StopID] = true
		}
	}
	return p
}

// cellFor formats the time a trip serves a stop: first matching stop-time
// in the trip's own order, departure before arrival, blank when the trip
// does not call there. Blank cells are expected when trips on one page run
// different stopping patterns.
func cellFor(idx *gtfs.Index, t gtfs.Trip, stopID string) string {
	for _, st := range idx.StopTimesForTrip(t.ID) {
		if st.StopID != stopID {
			continue
		}
		if s := FormatClock(st.DepartureTime); s != "" {
			return s
		}
		return FormatClock(st.ArrivalTime)
	}
	return ""
}
