package config

// FeedConfig names the GTFS feed source: a directory, a local zip, or an
// http(s) URL. Path wins when both are set.
type FeedConfig struct {
	Path string `yaml:"path"`
	URL  string `yaml:"url" validate:"omitempty,url"`
}

// Source returns the effective feed source string.
func (f FeedConfig) Source() string {
	if f.Path != "" {
		return f.Path
	}
	return f.URL
}

// OutputConfig controls where and in which formats timetables are written.
type OutputConfig struct {
	Dir     string   `yaml:"dir"`
	Formats []string `yaml:"formats" validate:"dive,oneof=html pdf"`
}

// TimetableConfig carries the core construction options.
type TimetableConfig struct {
	RouteFilter     string   `yaml:"routeFilter"`
	MaxTripsPerPage int      `yaml:"maxTripsPerPage" validate:"gte=0"`
	MajorStops      []string `yaml:"majorStops"`
}

// ServerConfig configures the preview server.
type ServerConfig struct {
	Port int `yaml:"port" validate:"gte=0"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Feed      FeedConfig      `yaml:"feed"`
	Output    OutputConfig    `yaml:"output"`
	Timetable TimetableConfig `yaml:"timetable"`
	Server    ServerConfig    `yaml:"server"`
}
