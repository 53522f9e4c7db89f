package gtfs

import "sort"

// Index stores the joined feed tables for fast lookups. It is built in one
// pass and never mutated afterwards; consumers only see accessor methods.
type Index struct {
	stopNames  map[string]string
	routes     map[string]Route
	routeOrder []string
	routeTrips map[string][]Trip
	tripTimes  map[string][]StopTime
	calendars  map[string]Calendar
	agencies   map[string]string
	soleAgency string
}

// NewIndex builds the join index from a loaded feed.
func NewIndex(f *Feed) *Index {
	x := &Index{
		stopNames:  map[string]string{},
		routes:     map[string]Route{},
		routeTrips: map[string][]Trip{},
		tripTimes:  map[string][]StopTime{},
		calendars:  map[string]Calendar{},
		agencies:   map[string]string{},
	}
	for _, s := range f.Stops {
		// last write wins on duplicate ids
		x.stopNames[s.ID] = s.Name
	}
	for _, r := range f.Routes {
		if _, ok := x.routes[r.ID]; !ok {
			x.routeOrder = append(x.routeOrder, r.ID)
		}
		x.routes[r.ID] = r
	}
	for _, t := range f.Trips {
		x.routeTrips[t.RouteID] = append(x.routeTrips[t.RouteID], t)
	}
	for _, st := range f.StopTimes {
		x.tripTimes[st.TripID] = append(x.tripTimes[st.TripID], st)
	}
	for id := range x.tripTimes {
		times := x.tripTimes[id]
		sort.SliceStable(times, func(i, j int) bool {
			return times[i].Sequence < times[j].Sequence
		})
	}
	for _, c := range f.Calendar {
		x.calendars[c.ServiceID] = c
	}
	for _, a := range f.Agencies {
		x.agencies[a.ID] = a.Name
	}
	if len(f.Agencies) == 1 {
		x.soleAgency = f.Agencies[0].Name
	}
	return x
}

// StopName returns the display name for a stop id, or "" when unknown.
func (x *Index) StopName(stopID string) string { return x.stopNames[stopID] }

// Route returns the route record for an id.
func (x *Index) Route(routeID string) (Route, bool) {
	r, ok := x.routes[routeID]
	return r, ok
}

// Routes returns all routes in feed order.
func (x *Index) Routes() []Route {
	out := make([]Route, 0, len(x.routeOrder))
	for _, id := range x.routeOrder {
		out = append(out, x.routes[id])
	}
	return out
}

// TripsForRoute returns a route's trips in feed order, including trips
// without stop-time rows; callers decide whether those matter.
func (x *Index) TripsForRoute(routeID string) []Trip { return x.routeTrips[routeID] }

// StopTimesForTrip returns a trip's stop-times sorted ascending by
// sequence number, ties kept in feed order. A trip with no rows yields nil
// and is excluded from all downstream processing.
func (x *Index) StopTimesForTrip(tripID string) []StopTime { return x.tripTimes[tripID] }

// CalendarForService returns the calendar entry for a service id.
func (x *Index) CalendarForService(serviceID string) (Calendar, bool) {
	c, ok := x.calendars[serviceID]
	return c, ok
}

// AgencyName resolves a route's agency reference to a display name. Routes
// without a reference inherit the agency name when the feed declares
// exactly one agency.
func (x *Index) AgencyName(agencyID string) string {
	if agencyID == "" {
		return x.soleAgency
	}
	if name, ok := x.agencies[agencyID]; ok {
		return name
	}
	return x.soleAgency
}
