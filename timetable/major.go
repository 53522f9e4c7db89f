package timetable

import "strings"

// MajorStopSet decides which stops a timetable emphasizes.
//
// With an explicit set, a stop is major when its display name or its id is
// in the set (trimmed, case-insensitive). Without one, a convention-based
// heuristic applies: feeds commonly capitalize the names of major
// interchanges, so a non-empty name equal to its own upper-casing counts.
type MajorStopSet struct {
	explicit map[string]bool
}

// NewMajorStopSet normalizes the configured names or ids. A nil or empty
// list enables the heuristic.
func NewMajorStopSet(entries []string) *MajorStopSet {
	s := &MajorStopSet{}
	for _, e := range entries {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if s.explicit == nil {
			s.explicit = map[string]bool{}
		}
		s.explicit[e] = true
	}
	return s
}

// IsMajor classifies one stop by display name and id.
func (s *MajorStopSet) IsMajor(name, id string) bool {
	if s.explicit != nil {
		return s.explicit[strings.ToLower(strings.TrimSpace(name))] ||
			s.explicit[strings.ToLower(strings.TrimSpace(id))]
	}
	trimmed := strings.TrimSpace(name)
	return trimmed != "" && trimmed == strings.ToUpper(trimmed)
}
