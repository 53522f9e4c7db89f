package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/gtfs-to-timetable/config"
	"github.com/theoremus-urban-solutions/gtfs-to-timetable/formatter"
	"github.com/theoremus-urban-solutions/gtfs-to-timetable/gtfs"
	"github.com/theoremus-urban-solutions/gtfs-to-timetable/timetable"
)

func main() {
	configPath := flag.String("config", "", "path to config.yml")
	feedSource := flag.String("feed", "", "GTFS feed: directory, zip file, or URL (overrides config)")
	route := flag.String("route", "", "route filter: route_id or route_short_name (overrides config)")
	maxTrips := flag.Int("maxTrips", 0, "max trip columns per page (overrides config)")
	outDir := flag.String("out", "", "output directory (overrides config)")
	formats := flag.String("formats", "", "comma-separated output formats: html,pdf (overrides config)")
	majorStops := flag.String("majorStops", "", "comma-separated major stop names or ids (overrides config)")
	mode := flag.String("mode", "generate", "generate|serve")
	port := flag.Int("port", 0, "preview server port (overrides config)")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("loading config", zap.Error(err))
	}
	if *feedSource != "" {
		cfg.Feed = config.FeedConfig{Path: *feedSource}
	}
	if *route != "" {
		cfg.Timetable.RouteFilter = *route
	}
	if *maxTrips > 0 {
		cfg.Timetable.MaxTripsPerPage = *maxTrips
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if *formats != "" {
		cfg.Output.Formats = splitList(*formats)
	}
	if *majorStops != "" {
		cfg.Timetable.MajorStops = splitList(*majorStops)
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if cfg.Feed.Source() == "" {
		logger.Fatal("no feed source configured; pass -feed or set feed.path/feed.url in config.yml")
	}

	pages := generate(logger, cfg)
	logger.Info("timetables written",
		zap.Int("pages", len(pages)),
		zap.String("dir", cfg.Output.Dir),
	)

	switch *mode {
	case "generate":
	case "serve":
		serve(logger, cfg.Output.Dir, cfg.Server.Port)
	default:
		logger.Fatal("unknown mode", zap.String("mode", *mode))
	}
}

func generate(logger *zap.Logger, cfg config.AppConfig) []*timetable.Page {
	feed := gtfs.NewFeed(logger)
	feed.SetRouteFilter(cfg.Timetable.RouteFilter)
	if err := feed.Load(context.Background(), cfg.Feed.Source()); err != nil {
		logger.Fatal("loading feed", zap.Error(err))
	}
	idx := gtfs.NewIndex(feed)

	pages, err := timetable.Build(idx, timetable.Options{
		RouteFilter:     cfg.Timetable.RouteFilter,
		MaxTripsPerPage: cfg.Timetable.MaxTripsPerPage,
		MajorStops:      cfg.Timetable.MajorStops,
	})
	if err != nil {
		logger.Fatal("building timetables", zap.Error(err))
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		logger.Fatal("creating output directory", zap.Error(err))
	}
	wantHTML := hasFormat(cfg.Output.Formats, "html")
	wantPDF := hasFormat(cfg.Output.Formats, "pdf")
	for _, p := range pages {
		base := p.FileBase()
		if wantHTML {
			writeOutput(logger, cfg.Output.Dir, base+".html", formatter.BuildHTML(p))
		}
		if wantPDF {
			buf, err := formatter.BuildPDF(p)
			if err != nil {
				logger.Fatal("rendering pdf", zap.String("page", base), zap.Error(err))
			}
			writeOutput(logger, cfg.Output.Dir, base+".pdf", buf)
		}
	}
	if wantHTML {
		writeOutput(logger, cfg.Output.Dir, "index.html", formatter.BuildIndexHTML(pages))
	}
	return pages
}

func writeOutput(logger *zap.Logger, dir, name string, data []byte) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.Fatal("writing output", zap.String("path", path), zap.Error(err))
	}
	logger.Info("wrote", zap.String("path", path))
}

func hasFormat(formats []string, want string) bool {
	for _, f := range formats {
		if strings.EqualFold(strings.TrimSpace(f), want) {
			return true
		}
	}
	return false
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
