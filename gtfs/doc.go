/*
Package gtfs provides GTFS static feed loading and indexing.

A Feed materializes the relational tables of one feed from a directory, a
local zip archive, or an http(s) URL. stop_times rows are streamed and kept
only for trips that survive the optional route filter, which bounds memory
on large feeds.

An Index joins the loaded tables into lookup structures built in a single
pass: stop id to name, route id to record, route to trips, trip to ordered
stop-times, plus calendar and agency resolution. The index is immutable
after construction and safe for concurrent reads.

	feed := gtfs.NewFeed(logger)
	if err := feed.Load(ctx, "gtfs.zip"); err != nil {
	    // a *MissingTablesError names absent required tables
	}
	idx := gtfs.NewIndex(feed)
	name := idx.StopName("stop_456")
*/
package gtfs
