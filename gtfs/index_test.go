package gtfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/gtfs-to-timetable/gtfs"
)

func TestIndexSortsStopTimesBySequence(t *testing.T) {
	feed := &gtfs.Feed{
		StopTimes: []gtfs.StopTime{
			{TripID: "t1", StopID: "s3", Sequence: 30},
			{TripID: "t1", StopID: "s1", Sequence: 10},
			{TripID: "t1", StopID: "s2", Sequence: 20},
		},
	}
	idx := gtfs.NewIndex(feed)

	times := idx.StopTimesForTrip("t1")
	require.Len(t, times, 3)
	assert.Equal(t, "s1", times[0].StopID)
	assert.Equal(t, "s2", times[1].StopID)
	assert.Equal(t, "s3", times[2].StopID)

	// already-sorted input must come out identically
	sorted := &gtfs.Feed{StopTimes: []gtfs.StopTime{times[0], times[1], times[2]}}
	again := gtfs.NewIndex(sorted).StopTimesForTrip("t1")
	assert.Equal(t, times, again)
}

func TestIndexStableOnDuplicateSequences(t *testing.T) {
	feed := &gtfs.Feed{
		StopTimes: []gtfs.StopTime{
			{TripID: "t1", StopID: "first-in", Sequence: 5},
			{TripID: "t1", StopID: "second-in", Sequence: 5},
		},
	}
	times := gtfs.NewIndex(feed).StopTimesForTrip("t1")
	require.Len(t, times, 2)
	assert.Equal(t, "first-in", times[0].StopID)
	assert.Equal(t, "second-in", times[1].StopID)
}

func TestIndexLastStopNameWins(t *testing.T) {
	feed := &gtfs.Feed{
		Stops: []gtfs.Stop{
			{ID: "s1", Name: "Old Name"},
			{ID: "s1", Name: "New Name"},
		},
	}
	assert.Equal(t, "New Name", gtfs.NewIndex(feed).StopName("s1"))
}

func TestIndexRoutesKeepFeedOrder(t *testing.T) {
	feed := &gtfs.Feed{
		Routes: []gtfs.Route{{ID: "b"}, {ID: "a"}, {ID: "c"}},
	}
	routes := gtfs.NewIndex(feed).Routes()
	require.Len(t, routes, 3)
	assert.Equal(t, "b", routes[0].ID)
	assert.Equal(t, "a", routes[1].ID)
	assert.Equal(t, "c", routes[2].ID)
}

func TestIndexAgencyResolution(t *testing.T) {
	single := gtfs.NewIndex(&gtfs.Feed{
		Agencies: []gtfs.Agency{{ID: "a1", Name: "City Transit"}},
	})
	assert.Equal(t, "City Transit", single.AgencyName("a1"))
	// a lone agency is the default for routes without a reference
	assert.Equal(t, "City Transit", single.AgencyName(""))

	multi := gtfs.NewIndex(&gtfs.Feed{
		Agencies: []gtfs.Agency{{ID: "a1", Name: "First"}, {ID: "a2", Name: "Second"}},
	})
	assert.Equal(t, "Second", multi.AgencyName("a2"))
	assert.Empty(t, multi.AgencyName(""))

	none := gtfs.NewIndex(&gtfs.Feed{})
	assert.Empty(t, none.AgencyName("a1"))
}

func TestIndexTripWithoutStopTimes(t *testing.T) {
	feed := &gtfs.Feed{
		Trips: []gtfs.Trip{{ID: "ghost", RouteID: "r1"}},
	}
	idx := gtfs.NewIndex(feed)
	assert.Empty(t, idx.StopTimesForTrip("ghost"))
	assert.Len(t, idx.TripsForRoute("r1"), 1)
}
