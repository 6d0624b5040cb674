// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/jeranaias/pocketkit/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete pocketkit configuration.
type Config struct {
	Calc     CalcConfig     `toml:"calc" json:"calc"`
	Currency CurrencyConfig `toml:"currency" json:"currency"`
	RPS      RPSConfig      `toml:"rps" json:"rps"`
	UI       UIConfig       `toml:"ui" json:"ui"`
	Log      LogConfig      `toml:"log" json:"log"`
}

// CalcConfig contains calculator settings.
type CalcConfig struct {
	// EntryMaxLen caps the number of characters the entry field accepts.
	EntryMaxLen int `toml:"entry_max_len" json:"entry_max_len"`

	// Margin is the number of columns kept free when fitting the display.
	Margin int `toml:"margin" json:"margin"`
}

// CurrencyConfig contains exchange-rate API settings.
type CurrencyConfig struct {
	BaseURL         string `toml:"base_url" json:"base_url"`
	APIKey          string `toml:"api_key" json:"api_key"`
	TimeoutSecs     int    `toml:"timeout_secs" json:"timeout_secs"`
	RequestsPerHour int    `toml:"requests_per_hour" json:"requests_per_hour"`
}

// Timeout returns the request timeout as a duration.
func (c CurrencyConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSecs) * time.Second
}

// RPSConfig contains Rock-Paper-Scissors settings.
type RPSConfig struct {
	// Seed fixes the computer's move sequence. Zero means random.
	Seed int64 `toml:"seed" json:"seed"`
}

// UIConfig contains terminal UI settings.
type UIConfig struct {
	Theme     string `toml:"theme" json:"theme"`
	AltScreen bool   `toml:"alt_screen" json:"alt_screen"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `toml:"level" json:"level"`
}

// Accepted values for ui.theme and log.level.
var (
	validThemes    = []string{"dark", "light", "auto"}
	validLogLevels = []string{"trace", "debug", "info", "warn", "error"}
)

// Default returns a Config with built-in default values.
func Default() *Config {
	return &Config{
		Calc: CalcConfig{
			EntryMaxLen: 16,
			Margin:      4,
		},
		Currency: CurrencyConfig{
			BaseURL:         "https://free.currconv.com/",
			TimeoutSecs:     10,
			RequestsPerHour: 100,
		},
		UI: UIConfig{
			Theme:     "auto",
			AltScreen: true,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the pocketkit configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".pocketkit"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the default location.
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	for _, pathFn := range []func() (string, error){ConfigPathTOML, ConfigPathJSON} {
		path, err := pathFn()
		if err != nil {
			continue
		}
		if _, statErr := os.Stat(path); statErr == nil {
			return LoadFromPath(path)
		}
	}
	return finish(Default())
}

// LoadFromPath loads configuration from a specific file. Files ending in
// ".json" are decoded as JSON, everything else as TOML.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	return finish(cfg)
}

// LoadTOML decodes a TOML file over cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	fillDefaults(cfg)
	return nil
}

// LoadJSON decodes a JSON file over cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	fillDefaults(cfg)
	return nil
}

// LoadRaw loads defaults plus the file at path, without environment
// overrides or validation. A missing file yields the defaults. This is the
// view "config set" edits, so values from the environment never end up
// written to disk.
func LoadRaw(path string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if strings.HasSuffix(path, ".json") {
		return cfg, LoadJSON(cfg, path)
	}
	return cfg, LoadTOML(cfg, path)
}

// ResolvePath returns explicit when set, otherwise the first existing
// default file (TOML, then JSON), otherwise the default TOML path.
func ResolvePath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	tomlPath, err := ConfigPathTOML()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(tomlPath); err == nil {
		return tomlPath, nil
	}
	jsonPath, err := ConfigPathJSON()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(jsonPath); err == nil {
		return jsonPath, nil
	}
	return tomlPath, nil
}

func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// fillDefaults fills zero values a file left out.
func fillDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Calc.EntryMaxLen == 0 {
		cfg.Calc.EntryMaxLen = defaults.Calc.EntryMaxLen
	}
	if cfg.Currency.BaseURL == "" {
		cfg.Currency.BaseURL = defaults.Currency.BaseURL
	}
	if cfg.Currency.TimeoutSecs == 0 {
		cfg.Currency.TimeoutSecs = defaults.Currency.TimeoutSecs
	}
	if cfg.Currency.RequestsPerHour == 0 {
		cfg.Currency.RequestsPerHour = defaults.Currency.RequestsPerHour
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveFile writes cfg to path, as JSON when path ends in ".json" and as
// TOML otherwise. An empty path means the default TOML file.
func SaveFile(cfg *Config, path string) error {
	if path == "" {
		return Save(cfg)
	}
	if strings.HasSuffix(path, ".json") {
		return SaveJSON(cfg, path)
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the configuration as TOML with 0600 permissions, since
// the file may hold an API key.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# pocketkit configuration file\n")
	buf.WriteString("# Generated by pocketkit config set - edit with care\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveJSON writes the configuration as indented JSON with 0600 permissions.
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the configuration and returns ValidateErrors when any
// field is out of range.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.Calc.EntryMaxLen < 1 || c.Calc.EntryMaxLen > 64 {
		errs = append(errs, ValidationError{"calc.entry_max_len", "must be between 1 and 64"})
	}
	if c.Calc.Margin < 0 || c.Calc.Margin > 40 {
		errs = append(errs, ValidationError{"calc.margin", "must be between 0 and 40"})
	}

	if u, err := url.Parse(c.Currency.BaseURL); err != nil || u.Host == "" {
		errs = append(errs, ValidationError{"currency.base_url", "must be an absolute URL"})
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errs = append(errs, ValidationError{"currency.base_url", "scheme must be http or https"})
	}
	if c.Currency.TimeoutSecs < 1 || c.Currency.TimeoutSecs > 300 {
		errs = append(errs, ValidationError{"currency.timeout_secs", "must be between 1 and 300"})
	}
	if c.Currency.RequestsPerHour < 1 {
		errs = append(errs, ValidationError{"currency.requests_per_hour", "must be positive"})
	}

	if !contains(validThemes, c.UI.Theme) {
		errs = append(errs, ValidationError{"ui.theme", "must be one of " + strings.Join(validThemes, ", ")})
	}
	if !contains(validLogLevels, strings.ToLower(c.Log.Level)) {
		errs = append(errs, ValidationError{"log.level", "must be one of " + strings.Join(validLogLevels, ", ")})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides:
//   - CURRENCY_API_KEY: overrides currency.api_key
//   - POCKETKIT_CURRENCY_URL: overrides currency.base_url
//   - POCKETKIT_LOG_LEVEL: overrides log.level
//   - POCKETKIT_THEME: overrides ui.theme
//   - POCKETKIT_RPS_SEED: overrides rps.seed
func (c *Config) ApplyEnvOverrides() {
	if key := os.Getenv("CURRENCY_API_KEY"); key != "" {
		c.Currency.APIKey = key
	}
	if u := os.Getenv("POCKETKIT_CURRENCY_URL"); u != "" {
		c.Currency.BaseURL = u
	}
	if level := os.Getenv("POCKETKIT_LOG_LEVEL"); level != "" {
		c.Log.Level = strings.ToLower(level)
	}
	if theme := os.Getenv("POCKETKIT_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if seed := os.Getenv("POCKETKIT_RPS_SEED"); seed != "" {
		if n, err := strconv.ParseInt(seed, 10, 64); err == nil {
			c.RPS.Seed = n
		}
	}
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "calc.margin").
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set sets a configuration value using dot notation. String values are
// converted to the field's type.
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

// lookup walks a dotted key down the struct tree to a leaf field.
func (c *Config) lookup(key string) (reflect.Value, error) {
	if key == "" {
		return reflect.Value{}, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)
		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			if field.Kind() == reflect.Struct {
				return reflect.Value{}, fmt.Errorf("field '%s' is a section, not a value", key)
			}
			return field, nil
		}

		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}
	return reflect.Value{}, fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}
	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Bool:
			boolVal, err := strconv.ParseBool(strVal)
			if err != nil {
				return fmt.Errorf("invalid boolean value: %v", err)
			}
			field.SetBool(boolVal)
			return nil
		}
	}

	val := reflect.ValueOf(value)
	if !val.IsValid() {
		return fmt.Errorf("cannot assign nil to %s", field.Type())
	}
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if val.Type().ConvertibleTo(field.Type()) {
		field.Set(val.Convert(field.Type()))
		return nil
	}
	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	var keys []string
	t := reflect.TypeOf(Config{})
	for i := 0; i < t.NumField(); i++ {
		section := t.Field(i)
		prefix := tagName(section)
		for j := 0; j < section.Type.NumField(); j++ {
			keys = append(keys, prefix+"."+tagName(section.Type.Field(j)))
		}
	}
	return keys
}

func tagName(f reflect.StructField) string {
	if tag := f.Tag.Get("toml"); tag != "" {
		return strings.Split(tag, ",")[0]
	}
	return strings.ToLower(f.Name)
}

// String returns the config as indented JSON with the API key redacted.
func (c *Config) String() string {
	safe := *c
	if safe.Currency.APIKey != "" {
		safe.Currency.APIKey = "[REDACTED]"
	}
	data, _ := json.MarshalIndent(safe, "", "  ")
	return string(data)
}
