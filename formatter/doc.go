// Package formatter renders finished timetable pages.
//
// This package is organized into:
// - html.go: standalone HTML documents plus the index page
// - pdf.go: paginated A4 landscape PDFs via go-pdf/fpdf
//
// HTML is built manually with strings.Builder and explicit escaping for
// precise control over the output.
package formatter
