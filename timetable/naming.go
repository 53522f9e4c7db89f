package timetable

import (
	"fmt"
	"strings"
)

// defaultFileBase is used when sanitization empties every name component.
const defaultFileBase = "timetable"

// illegal strips everything unsafe in a file name across platforms.
var illegal = strings.NewReplacer(
	"/", "", "\\", "", ":", "", "*", "", "?", "",
	"\"", "", "<", "", ">", "", "|", "",
)

// FileBase derives the deterministic, filesystem-safe base name of a page:
// route short name or id, agency name, cohort id when the route has more
// than one cohort, and a page-N suffix when the cohort spans pages. Each
// component is sanitized independently, empty components drop out, and the
// rest join with hyphens.
func (p *Page) FileBase() string {
	components := []string{routeNameComponent(p), p.AgencyName, p.ServiceID}
	if p.PageCount > 1 {
		components = append(components, fmt.Sprintf("page-%d", p.PageIndex))
	}
	var kept []string
	for _, c := range components {
		if s := sanitizeComponent(c); s != "" {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return defaultFileBase
	}
	return strings.Join(kept, "-")
}

func routeNameComponent(p *Page) string {
	if p.RouteName != "" {
		return p.RouteName
	}
	return p.RouteID
}

// sanitizeComponent strips illegal characters, collapses whitespace runs
// to single underscores, and trims leading and trailing underscores.
func sanitizeComponent(s string) string {
	s = illegal.Replace(s)
	s = strings.Join(strings.Fields(s), "_")
	return strings.Trim(s, "_")
}
