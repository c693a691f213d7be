package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/sweqa/scoreagg/schema"
)

// Config holds the runtime configuration for an aggregation run.
// This struct remains the "final, validated" config.
type Config struct {
	// InputPath is the scores file in single-file mode. Empty in
	// multi-trajectory mode.
	InputPath string

	// BasePath and TargetFile select multi-trajectory mode. Both are empty
	// in single-file mode.
	BasePath   string
	TargetFile string

	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	UseEmojis bool // Enable emojis in console notices
	UseColors bool // Enable colored labels in console notices
}

// MultiTrajectory reports whether the config selects the multi-trajectory path.
func (c *Config) MultiTrajectory() bool {
	return c.BasePath != ""
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	Args []string

	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Width            int    `mapstructure:"width"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`
	Emoji            string `mapstructure:"emoji"`
	Color            string `mapstructure:"color"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processPositionalArgs(cfg, input); err != nil {
		return err
	}

	// Colored output is resolved once here so every downstream label helper
	// behaves consistently.
	color.NoColor = !cfg.UseColors

	return nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Width Validation ---
	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	// --- 2. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", input.Output)
	}

	// --- 3. History Backend Validation ---
	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.HistoryBackend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
	}
	cfg.HistoryDBConnect = input.HistoryDBConnect
	if err := ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
		return err
	}

	return nil
}

// processPositionalArgs resolves the one- and two-argument invocation shapes.
// One argument selects single-file mode; two arguments select
// multi-trajectory mode with a base path and a target filename.
func processPositionalArgs(cfg *Config, input *ConfigRawInput) error {
	switch len(input.Args) {
	case 1:
		inputPath := filepath.Clean(input.Args[0])
		info, err := os.Stat(inputPath)
		if err != nil {
			return fmt.Errorf("cannot access scores file %s: %w", inputPath, err)
		}
		if info.IsDir() {
			return fmt.Errorf("scores file %s is a directory; pass a base path and a target filename for multi-trajectory mode", inputPath)
		}
		cfg.InputPath = inputPath

	case 2:
		basePath := filepath.Clean(input.Args[0])
		info, err := os.Stat(basePath)
		if err != nil {
			return fmt.Errorf("cannot access base path %s: %w", basePath, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("base path %s is not a directory", basePath)
		}
		targetFile := strings.TrimSpace(input.Args[1])
		if targetFile == "" || strings.ContainsRune(targetFile, os.PathSeparator) {
			return fmt.Errorf("target filename %q must be a bare filename", input.Args[1])
		}
		cfg.BasePath = basePath
		cfg.TargetFile = targetFile

	default:
		return fmt.Errorf("expected 1 or 2 positional arguments (received %d)", len(input.Args))
	}

	return nil
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL history backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}
