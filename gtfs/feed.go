package gtfs

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
	"go.uber.org/zap"
)

// Tables are consumed in a fixed order so that routes and trips are known
// before stop_times rows are streamed through the trip filter.
var tableOrder = []string{
	"agency.txt",
	"stops.txt",
	"routes.txt",
	"trips.txt",
	"calendar.txt",
	"stop_times.txt",
}

var requiredTables = map[string]bool{
	"routes.txt":     true,
	"trips.txt":      true,
	"stops.txt":      true,
	"stop_times.txt": true,
}

// MissingTablesError reports required feed tables absent from the source.
type MissingTablesError struct {
	Tables []string
}

func (e *MissingTablesError) Error() string {
	return "feed is missing required tables: " + strings.Join(e.Tables, ", ")
}

// Feed holds the materialized tables of one GTFS static feed.
//
// stop_times is the only table that can be huge; its rows are streamed
// through a callback and only rows belonging to known (and, when a route
// filter is set, relevant) trips are kept in memory.
type Feed struct {
	Agencies  []Agency
	Routes    []Route
	Trips     []Trip
	Stops     []Stop
	StopTimes []StopTime
	Calendar  []Calendar

	logger      *zap.Logger
	routeFilter string
	knownTrips  map[string]bool
	seen        map[string]bool
}

// NewFeed creates an empty feed. The logger must not be nil.
func NewFeed(logger *zap.Logger) *Feed {
	gocsv.SetCSVReader(lenientCSVReader)
	return &Feed{
		logger:     logger,
		knownTrips: map[string]bool{},
		seen:       map[string]bool{},
	}
}

// SetRouteFilter restricts the stop_times rows kept in memory to trips of
// routes matching the given id or short name. An empty filter keeps rows
// for every trip declared in trips.txt.
func (f *Feed) SetRouteFilter(filter string) {
	f.routeFilter = strings.TrimSpace(filter)
}

// Load reads the feed from an http(s) URL, a local zip archive, or a
// directory of .txt tables, then verifies the required tables were present.
func (f *Feed) Load(ctx context.Context, source string) error {
	var err error
	switch {
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		err = f.loadFromURL(ctx, source)
	case strings.HasSuffix(strings.ToLower(source), ".zip"):
		err = f.loadFromZip(source)
	default:
		err = f.loadFromDir(source)
	}
	if err != nil {
		return err
	}
	return f.checkRequired()
}

func (f *Feed) loadFromURL(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("feed download failed: %s", resp.Status)
	}
	tmp, err := os.CreateTemp("", "gtfs-*.zip")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	f.logger.Info("feed downloaded", zap.String("url", url))
	return f.loadFromZip(tmp.Name())
}

func (f *Feed) loadFromZip(path string) error {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return err
	}
	defer zr.Close()

	files := map[string]*zip.File{}
	for _, zf := range zr.File {
		files[strings.ToLower(filepath.Base(zf.Name))] = zf
	}
	for _, name := range tableOrder {
		zf, ok := files[name]
		if !ok {
			continue
		}
		r, err := zf.Open()
		if err != nil {
			return err
		}
		err = f.consume(name, r)
		r.Close()
		if err != nil {
			return fmt.Errorf("parsing %s: %w", name, err)
		}
	}
	return nil
}

func (f *Feed) loadFromDir(path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return err
	}
	files := map[string]string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files[strings.ToLower(e.Name())] = filepath.Join(path, e.Name())
	}
	for _, name := range tableOrder {
		p, ok := files[name]
		if !ok {
			continue
		}
		fh, err := os.Open(p)
		if err != nil {
			return err
		}
		err = f.consume(name, fh)
		fh.Close()
		if err != nil {
			return fmt.Errorf("parsing %s: %w", name, err)
		}
	}
	return nil
}

func (f *Feed) consume(name string, r io.Reader) error {
	f.seen[name] = true
	switch name {
	case "agency.txt":
		return gocsv.Unmarshal(r, &f.Agencies)
	case "stops.txt":
		return gocsv.Unmarshal(r, &f.Stops)
	case "routes.txt":
		return gocsv.Unmarshal(r, &f.Routes)
	case "trips.txt":
		if err := gocsv.Unmarshal(r, &f.Trips); err != nil {
			return err
		}
		f.indexRelevantTrips()
		return nil
	case "calendar.txt":
		return gocsv.Unmarshal(r, &f.Calendar)
	case "stop_times.txt":
		kept := 0
		err := gocsv.UnmarshalToCallback(r, func(st StopTime) {
			if !f.knownTrips[st.TripID] {
				return
			}
			f.StopTimes = append(f.StopTimes, st)
			kept++
		})
		if err != nil {
			return err
		}
		f.logger.Debug("stop_times loaded", zap.Int("kept", kept))
		return nil
	}
	return nil
}

// indexRelevantTrips marks the trips whose stop_times rows are worth
// keeping. Requires routes and trips to be loaded.
func (f *Feed) indexRelevantTrips() {
	matchRoute := map[string]bool{}
	for _, r := range f.Routes {
		if f.routeFilter == "" || r.ID == f.routeFilter || r.ShortName == f.routeFilter {
			matchRoute[r.ID] = true
		}
	}
	for _, t := range f.Trips {
		if matchRoute[t.RouteID] {
			f.knownTrips[t.ID] = true
		}
	}
}

func (f *Feed) checkRequired() error {
	var missing []string
	for name := range requiredTables {
		if !f.seen[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &MissingTablesError{Tables: missing}
	}
	return nil
}
