// =============================================================================
// XML Table Converter - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file.
//
// CONFIGURATION FILE (xmltable.yaml):
//
//   output_dir: ~/exports          # where exports are written
//   output_name_format: "{name}"   # see utils.OutputFileName
//   export_format: json            # json or xlsx
//   page_size: 10                  # rows per preview page
//   max_cell_width: 30             # preview column width cap
//   default_preview_columns: 6     # columns shown when a selection is empty
//   log_level: info                # debug, info, warn, error
//
// Every key is optional. The default file may be absent; an explicitly
// requested file must exist.
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/xmltable/pkg/utils"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "xmltable.yaml"

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// =========================================================================
	// EXPORT SETTINGS
	// =========================================================================

	// OutputDir is the directory exports are written to.
	// A leading "~" expands to the home directory.
	// Default: the user's desktop, or the working directory
	OutputDir string `yaml:"output_dir"`

	// OutputNameFormat is the export file name format, without extension.
	// Default: "{name}"
	OutputNameFormat string `yaml:"output_name_format"`

	// ExportFormat is the default export format: "json" or "xlsx".
	// Default: "json"
	ExportFormat string `yaml:"export_format"`

	// =========================================================================
	// PREVIEW SETTINGS
	// =========================================================================

	// PageSize is the number of rows per preview page.
	// Default: 10
	PageSize int `yaml:"page_size"`

	// MaxCellWidth caps the width of preview columns.
	// Default: 30
	MaxCellWidth int `yaml:"max_cell_width"`

	// DefaultPreviewColumns is how many columns the preview falls back to
	// when the requested selection matches nothing.
	// Default: 6
	DefaultPreviewColumns int `yaml:"default_preview_columns"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn" (or "warning"), "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns a Config with every default applied.
func Default() *Config {
	var config Config
	applyDefaults(&config)
	return &config
}

// Load loads the configuration from a YAML file.
//
// PARAMETERS:
//   - path: The path to the configuration file.
//   - required: When false, a missing file yields the defaults.
//
// RETURNS:
//   - A pointer to the Config struct.
//   - An error if the file cannot be read, parsed or validated.
func Load(path string, required bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse parses YAML configuration data, then applies defaults and validates.
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyDefaults sets default values for any unset configuration options.
// OutputDir is resolved lazily by ResolvedOutputDir.
func applyDefaults(config *Config) {
	if config.OutputNameFormat == "" {
		config.OutputNameFormat = "{name}"
	}
	if config.ExportFormat == "" {
		config.ExportFormat = "json"
	}
	if config.PageSize == 0 {
		config.PageSize = 10
	}
	if config.MaxCellWidth == 0 {
		config.MaxCellWidth = 30
	}
	if config.DefaultPreviewColumns == 0 {
		config.DefaultPreviewColumns = 6
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
}

// validate checks value ranges and enumerations.
func validate(config *Config) error {
	if config.PageSize < 0 {
		return fmt.Errorf("page_size must be positive, got %d", config.PageSize)
	}
	if config.MaxCellWidth < 0 {
		return fmt.Errorf("max_cell_width must be positive, got %d", config.MaxCellWidth)
	}
	if config.DefaultPreviewColumns < 0 {
		return fmt.Errorf("default_preview_columns must be positive, got %d", config.DefaultPreviewColumns)
	}

	switch strings.ToLower(config.ExportFormat) {
	case "json", "xlsx":
	default:
		return fmt.Errorf("export_format must be json or xlsx, got %q", config.ExportFormat)
	}

	switch strings.ToLower(config.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn or error, got %q", config.LogLevel)
	}

	return nil
}

// ExpandHome replaces a leading "~" in path with the home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// ResolvedOutputDir returns the directory exports go to: OutputDir with "~"
// expanded, or the user's desktop when OutputDir is unset.
func (c *Config) ResolvedOutputDir() string {
	if strings.TrimSpace(c.OutputDir) == "" {
		return utils.DesktopDir()
	}
	return ExpandHome(c.OutputDir)
}
