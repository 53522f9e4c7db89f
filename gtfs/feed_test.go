package gtfs_test

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/gtfs-to-timetable/gtfs"
)

var feedFixture = map[string]string{
	"agency.txt": "agency_id,agency_name\na1,City Transit\n",
	"routes.txt": "route_id,agency_id,route_short_name,route_long_name\n" +
		"r1,a1,482,Downtown Loop\n" +
		"r2,a1,483,Crosstown\n",
	"trips.txt": "trip_id,route_id,service_id,trip_headsign\n" +
		"t1,r1,wkd,Downtown\n" +
		"t2,r2,wkd,Crosstown\n",
	"stops.txt": "stop_id,stop_name\ns1,First Street\ns2,CENTRAL STATION\n",
	"stop_times.txt": "trip_id,arrival_time,departure_time,stop_id,stop_sequence\n" +
		"t1,08:00:00,08:00:00,s1,1\n" +
		"t1,08:10:00,,s2,2\n" +
		"t2,09:00:00,09:00:00,s1,1\n" +
		"unknown,10:00:00,10:00:00,s1,1\n",
	"calendar.txt": "service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday,start_date,end_date\n" +
		"wkd,1,1,1,1,1,0,0,20240101,20241231\n",
}

func writeFeedDir(t *testing.T, tables map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range tables {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func TestFeedLoadFromDir(t *testing.T) {
	dir := writeFeedDir(t, feedFixture)

	feed := gtfs.NewFeed(zap.NewNop())
	require.NoError(t, feed.Load(context.Background(), dir))

	assert.Len(t, feed.Routes, 2)
	assert.Len(t, feed.Trips, 2)
	assert.Len(t, feed.Stops, 2)
	assert.Len(t, feed.Calendar, 1)
	// the row for an undeclared trip is not materialized
	assert.Len(t, feed.StopTimes, 3)

	require.Len(t, feed.Agencies, 1)
	assert.Equal(t, "City Transit", feed.Agencies[0].Name)
	assert.Equal(t, gtfs.CSVInt(2), feed.StopTimes[1].Sequence)
	assert.True(t, bool(feed.Calendar[0].Monday))
	assert.False(t, bool(feed.Calendar[0].Sunday))
}

func TestFeedRouteFilterLimitsStopTimes(t *testing.T) {
	dir := writeFeedDir(t, feedFixture)

	feed := gtfs.NewFeed(zap.NewNop())
	feed.SetRouteFilter("482")
	require.NoError(t, feed.Load(context.Background(), dir))

	require.Len(t, feed.StopTimes, 2)
	for _, st := range feed.StopTimes {
		assert.Equal(t, "t1", st.TripID)
	}
}

func TestFeedMissingRequiredTables(t *testing.T) {
	tables := map[string]string{}
	for name, body := range feedFixture {
		tables[name] = body
	}
	delete(tables, "stop_times.txt")
	delete(tables, "calendar.txt") // optional, absence must not matter
	dir := writeFeedDir(t, tables)

	feed := gtfs.NewFeed(zap.NewNop())
	err := feed.Load(context.Background(), dir)

	var missing *gtfs.MissingTablesError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"stop_times.txt"}, missing.Tables)
}

func TestFeedOptionalTablesAbsent(t *testing.T) {
	tables := map[string]string{}
	for name, body := range feedFixture {
		tables[name] = body
	}
	delete(tables, "calendar.txt")
	delete(tables, "agency.txt")
	dir := writeFeedDir(t, tables)

	feed := gtfs.NewFeed(zap.NewNop())
	require.NoError(t, feed.Load(context.Background(), dir))
	assert.Empty(t, feed.Calendar)
	assert.Empty(t, feed.Agencies)
}

func TestFeedLoadFromZip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "feed.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for name, body := range feedFixture {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	feed := gtfs.NewFeed(zap.NewNop())
	require.NoError(t, feed.Load(context.Background(), path))
	assert.Len(t, feed.Routes, 2)
	assert.Len(t, feed.StopTimes, 3)
}
