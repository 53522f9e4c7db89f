package formatter

import (
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/gtfs-to-timetable/timetable"
)

// BuildHTML serializes one timetable page to a standalone HTML document.
func BuildHTML(p *timetable.Page) []byte {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>")
	b.WriteString(htmlEscape(pageTitle(p)))
	b.WriteString("</title>\n")
	b.WriteString("<style>\n")
	b.WriteString("body{font-family:sans-serif;margin:2em}\n")
	b.WriteString("table{border-collapse:collapse}\n")
	b.WriteString("th,td{border:1px solid #999;padding:0.3em 0.6em;text-align:left}\n")
	b.WriteString("thead th{background:#eee}\n")
	b.WriteString("tr.major td{font-weight:bold;background:#f5f5f5}\n")
	b.WriteString("p.meta{color:#444}\n")
	b.WriteString("</style>\n</head>\n<body>\n")

	b.WriteString("<h1>")
	b.WriteString(htmlEscape(pageTitle(p)))
	b.WriteString("</h1>\n")
	if p.RouteLongName != "" {
		b.WriteString("<h2>")
		b.WriteString(htmlEscape(p.RouteLongName))
		b.WriteString("</h2>\n")
	}
	writeMeta(&b, p)

	b.WriteString("<table>\n<thead>\n<tr>")
	for _, h := range p.Headers {
		b.WriteString("<th>")
		b.WriteString(htmlEscape(h))
		b.WriteString("</th>")
	}
	b.WriteString("</tr>\n</thead>\n<tbody>\n")
	for i, row := range p.Rows {
		if p.MajorStops[p.StopIDs[i]] {
			b.WriteString("<tr class=\"major\">")
		} else {
			b.WriteString("<tr>")
		}
		for _, cell := range row {
			b.WriteString("<td>")
			b.WriteString(htmlEscape(cell))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>\n</body>\n</html>\n")
	return []byte(b.String())
}

// BuildIndexHTML serializes a table of contents linking every generated
// page by file base name.
func BuildIndexHTML(pages []*timetable.Page) []byte {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>Timetables</title>\n</head>\n<body>\n<h1>Timetables</h1>\n<ul>\n")
	for _, p := range pages {
		base := p.FileBase()
		b.WriteString("<li><a href=\"")
		b.WriteString(htmlEscape(base))
		b.WriteString(".html\">")
		b.WriteString(htmlEscape(pageTitle(p)))
		b.WriteString("</a></li>\n")
	}
	b.WriteString("</ul>\n</body>\n</html>\n")
	return []byte(b.String())
}

func pageTitle(p *timetable.Page) string {
	var parts []string
	parts = append(parts, p.RouteName)
	if p.AgencyName != "" {
		parts = append(parts, p.AgencyName)
	}
	if p.ServiceID != "" {
		parts = append(parts, "service "+p.ServiceID)
	}
	if p.PageCount > 1 {
		parts = append(parts, "page "+strconv.Itoa(p.PageIndex)+" of "+strconv.Itoa(p.PageCount))
	}
	return strings.Join(parts, " - ")
}

func writeMeta(b *strings.Builder, p *timetable.Page) {
	if p.Summary.DateRange != "" {
		b.WriteString("<p class=\"meta\">Valid ")
		b.WriteString(htmlEscape(p.Summary.DateRange))
		b.WriteString("</p>\n")
	}
	if p.Summary.Days != "" {
		b.WriteString("<p class=\"meta\">Runs ")
		b.WriteString(htmlEscape(p.Summary.Days))
		b.WriteString("</p>\n")
	}
}

func htmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&#39;",
	)
	return replacer.Replace(s)
}
