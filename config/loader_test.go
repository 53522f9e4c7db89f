package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/gtfs-to-timetable/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
feed:
  path: ./testdata/feed
output:
  dir: out
  formats: [html]
timetable:
  routeFilter: "482"
  maxTripsPerPage: 6
  majorStops: [CENTRAL STATION, s42]
server:
  port: 9000
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "./testdata/feed", cfg.Feed.Source())
	assert.Equal(t, "out", cfg.Output.Dir)
	assert.Equal(t, []string{"html"}, cfg.Output.Formats)
	assert.Equal(t, "482", cfg.Timetable.RouteFilter)
	assert.Equal(t, 6, cfg.Timetable.MaxTripsPerPage)
	assert.Equal(t, []string{"CENTRAL STATION", "s42"}, cfg.Timetable.MajorStops)
	assert.Equal(t, 9000, cfg.Server.Port)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
feed:
  url: https://example.com/gtfs.zip
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/gtfs.zip", cfg.Feed.Source())
	assert.Equal(t, config.DefaultOutputDir, cfg.Output.Dir)
	assert.Equal(t, []string{"html", "pdf"}, cfg.Output.Formats)
	assert.Equal(t, config.DefaultPort, cfg.Server.Port)
	assert.Zero(t, cfg.Timetable.MaxTripsPerPage)
}

func TestLoadRejectsBadValues(t *testing.T) {
	_, err := config.Load(writeConfig(t, "feed:\n  url: not-a-url\n"))
	assert.Error(t, err)

	_, err = config.Load(writeConfig(t, "output:\n  formats: [docx]\n"))
	assert.Error(t, err)
}

func TestLoadExplicitPathMustExist(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

func TestFeedSourcePrefersPath(t *testing.T) {
	f := config.FeedConfig{Path: "feed-dir", URL: "https://example.com/gtfs.zip"}
	assert.Equal(t, "feed-dir", f.Source())
}
