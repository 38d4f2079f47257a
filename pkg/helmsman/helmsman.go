// Package helmsman provides navigation state for stack-based user
// interfaces: a route made of nested segments, views that find their place
// in it by nesting level, and a router that animates deep jumps one level at
// a time.
//
// The route and router subpackages hold the core. This package wires them to
// logging, configuration, localized titles and hardware back buttons.
package helmsman

import (
	"log/slog"
	"time"

	"github.com/BrandonKowalski/helmsman/pkg/helmsman/input"
	"github.com/BrandonKowalski/helmsman/pkg/helmsman/internal"
	"github.com/BrandonKowalski/helmsman/pkg/helmsman/router"
	"github.com/BrandonKowalski/helmsman/pkg/helmsman/titles"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/text/language"
)

// Options configures helmsman. Most fields can be loaded from a file with LoadOptions.
type Options struct {
	StageDelay             time.Duration         // Delay between staged activation steps (default 550ms)
	CancelStagedOnOverride bool                  // Pop and Reset cancel staged activations in flight
	LogPath                string                // Full path for log file including filename (creates parent directories)
	LogLevel               string                // Application log level: debug, info, warn, error
	InternalLogLevel       string                // Router/input log level, errors only when empty
	Registerer             prometheus.Registerer // Registers router metrics when set; not loaded from files
	BackButton             input.BackButtonConfig
	Titles                 TitleOptions
}

// TitleOptions configures the title catalog.
type TitleOptions struct {
	Fallback string   // Language used when a title is missing in the requested one (default "en")
	Files    []string // Message files, language taken from the file name (e.g. "titles.fr.toml")
}

// Init sets up logging. Call it before creating routers so they pick up the
// configured log path.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	if options.InternalLogLevel != "" {
		internal.SetInternalLogLevel(internal.ParseLevel(options.InternalLogLevel))
	}
}

// Close releases the log file.
func Close() {
	internal.CloseLogger()
}

// NewRouter creates a Router on scheduler configured from options.
func NewRouter(scheduler router.Scheduler, options Options) *router.Router {
	return router.New(scheduler, router.Options{
		StageDelay:             options.StageDelay,
		CancelStagedOnOverride: options.CancelStagedOnOverride,
		Registerer:             options.Registerer,
	})
}

// NewBackButton opens the configured back button device for r.
// Returns nil without error when no device is configured.
func NewBackButton(r *router.Router, options Options) (*input.BackButton, error) {
	if options.BackButton.DevicePath == "" {
		return nil, nil
	}
	return input.OpenBackButton(options.BackButton, r)
}

// NewTitleCatalog creates a title catalog and loads the configured files.
func NewTitleCatalog(options Options) (*titles.Catalog, error) {
	fallback := language.English
	if options.Titles.Fallback != "" {
		tag, err := language.Parse(options.Titles.Fallback)
		if err != nil {
			return nil, NewConfigError("parse_fallback_language", err)
		}
		fallback = tag
	}

	catalog := titles.NewCatalog(fallback)
	for _, path := range options.Titles.Files {
		if err := catalog.LoadMessageFile(path); err != nil {
			return nil, NewConfigError("load_titles", err)
		}
	}
	return catalog, nil
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() or any logger use to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetInternalLogLevel sets the log level of routers, loops and input handling.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}
