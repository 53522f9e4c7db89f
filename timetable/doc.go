/*
Package timetable turns an indexed GTFS feed into printable timetable
pages.

The pipeline is pure and synchronous: routes pass the optional filter,
their trips are bucketed into service cohorts, each cohort's trips are
ordered by first departure and split into pages of at most
MaxTripsPerPage columns, and each page gets one row per stop of its
earliest trip with one time cell per trip. Pages carry the service
validity summary, the major-stop membership set, and a deterministic
file base name for the rendering backends.

Every page is a pure function of the index and options; pages never share
mutable state, so callers may process them concurrently.
*/
package timetable
