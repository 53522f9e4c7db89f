package gtfs

// Route is one published line of the network.
type Route struct {
	ID          string `csv:"route_id"`
	AgencyID    string `csv:"agency_id"`
	ShortName   string `csv:"route_short_name"`
	LongName    string `csv:"route_long_name"`
	Description string `csv:"route_desc"`
}

// DisplayName returns the name to print for the route: the short name when
// present, the raw id otherwise.
func (r Route) DisplayName() string {
	if r.ShortName != "" {
		return r.ShortName
	}
	return r.ID
}

// Trip is one scheduled run of a route.
type Trip struct {
	ID        string `csv:"trip_id"`
	RouteID   string `csv:"route_id"`
	ServiceID string `csv:"service_id"`
	Headsign  string `csv:"trip_headsign"`
}

// Stop is a boarding location referenced by stop_times.
type Stop struct {
	ID   string `csv:"stop_id"`
	Name string `csv:"stop_name"`
}

// StopTime is the atomic schedule unit: a trip visiting a stop at a time.
// Times stay textual (H:MM or HH:MM:SS, hours may exceed 24 for overnight
// service); the timetable package owns their interpretation.
type StopTime struct {
	TripID        string `csv:"trip_id"`
	ArrivalTime   string `csv:"arrival_time"`
	DepartureTime string `csv:"departure_time"`
	StopID        string `csv:"stop_id"`
	Sequence      CSVInt `csv:"stop_sequence"`
}

// Calendar describes the days a service runs. Dates stay textual YYYYMMDD.
type Calendar struct {
	ServiceID string  `csv:"service_id"`
	Monday    CSVBool `csv:"monday"`
	Tuesday   CSVBool `csv:"tuesday"`
	Wednesday CSVBool `csv:"wednesday"`
	Thursday  CSVBool `csv:"thursday"`
	Friday    CSVBool `csv:"friday"`
	Saturday  CSVBool `csv:"saturday"`
	Sunday    CSVBool `csv:"sunday"`
	StartDate string  `csv:"start_date"`
	EndDate   string  `csv:"end_date"`
}

// Weekdays returns the active flags in canonical Monday-first order.
func (c Calendar) Weekdays() [7]bool {
	return [7]bool{
		bool(c.Monday), bool(c.Tuesday), bool(c.Wednesday), bool(c.Thursday),
		bool(c.Friday), bool(c.Saturday), bool(c.Sunday),
	}
}

// Agency is the operator publishing the feed.
type Agency struct {
	ID   string `csv:"agency_id"`
	Name string `csv:"agency_name"`
}
