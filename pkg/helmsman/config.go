package helmsman

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BrandonKowalski/helmsman/pkg/helmsman/input"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Supported options file formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// optionsFile is the on-disk shape of Options. Durations are strings such
// as "550ms".
//
//	stage_delay = "550ms"
//	log_level = "info"
//
//	[back_button]
//	device = "/dev/input/event1"
//	repeat_delay = "500ms"
//
//	[titles]
//	fallback = "en"
//	files = ["titles/en.toml", "titles/fr.toml"]
type optionsFile struct {
	StageDelay             string `toml:"stage_delay" yaml:"stage_delay"`
	CancelStagedOnOverride bool   `toml:"cancel_staged_on_override" yaml:"cancel_staged_on_override"`
	LogPath                string `toml:"log_path" yaml:"log_path"`
	LogLevel               string `toml:"log_level" yaml:"log_level"`
	InternalLogLevel       string `toml:"internal_log_level" yaml:"internal_log_level"`

	BackButton struct {
		Device         string   `toml:"device" yaml:"device"`
		KeyCodes       []uint16 `toml:"key_codes" yaml:"key_codes"`
		RepeatDelay    string   `toml:"repeat_delay" yaml:"repeat_delay"`
		RepeatInterval string   `toml:"repeat_interval" yaml:"repeat_interval"`
	} `toml:"back_button" yaml:"back_button"`

	Titles struct {
		Fallback string   `toml:"fallback" yaml:"fallback"`
		Files    []string `toml:"files" yaml:"files"`
	} `toml:"titles" yaml:"titles"`
}

// LoadOptions reads options from a TOML (.toml) or YAML (.yaml, .yml) file.
// Relative title file paths are resolved against the options file's directory.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, NewConfigError("read", err)
	}

	var format string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		format = FormatTOML
	case ".yaml", ".yml":
		format = FormatYAML
	default:
		return Options{}, NewConfigError("detect_format", ErrUnsupportedFormat)
	}

	options, err := DecodeOptions(data, format)
	if err != nil {
		return Options{}, err
	}

	dir := filepath.Dir(path)
	for i, file := range options.Titles.Files {
		if !filepath.IsAbs(file) {
			options.Titles.Files[i] = filepath.Join(dir, file)
		}
	}
	return options, nil
}

// DecodeOptions decodes options in the given format (FormatTOML or FormatYAML).
func DecodeOptions(data []byte, format string) (Options, error) {
	var file optionsFile

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &file); err != nil {
			return Options{}, NewConfigError("decode_toml", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return Options{}, NewConfigError("decode_yaml", err)
		}
	default:
		return Options{}, NewConfigError("decode", ErrUnsupportedFormat)
	}

	return file.options()
}

func (f optionsFile) options() (Options, error) {
	stageDelay, err := parseDuration("stage_delay", f.StageDelay)
	if err != nil {
		return Options{}, err
	}
	repeatDelay, err := parseDuration("back_button.repeat_delay", f.BackButton.RepeatDelay)
	if err != nil {
		return Options{}, err
	}
	repeatInterval, err := parseDuration("back_button.repeat_interval", f.BackButton.RepeatInterval)
	if err != nil {
		return Options{}, err
	}

	return Options{
		StageDelay:             stageDelay,
		CancelStagedOnOverride: f.CancelStagedOnOverride,
		LogPath:                f.LogPath,
		LogLevel:               f.LogLevel,
		InternalLogLevel:       f.InternalLogLevel,
		BackButton: input.BackButtonConfig{
			DevicePath:     f.BackButton.Device,
			KeyCodes:       f.BackButton.KeyCodes,
			RepeatDelay:    repeatDelay,
			RepeatInterval: repeatInterval,
		},
		Titles: TitleOptions{
			Fallback: f.Titles.Fallback,
			Files:    f.Titles.Files,
		},
	}, nil
}

func parseDuration(field, raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, NewConfigError("parse_"+strings.ReplaceAll(field, ".", "_"), err)
	}
	return d, nil
}
