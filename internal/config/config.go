package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/jlibs/phonenumber"
)

// DefaultPath is the config file read when no path is given.
const DefaultPath = "phonenumber.toml"

// Config is the top-level phonenumber CLI configuration.
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Input    InputConfig    `toml:"input"`
	Output   OutputConfig   `toml:"output"`
	Logging  LoggingConfig  `toml:"logging"`
}

type DefaultsConfig struct {
	Region string `toml:"region" json:"region" validate:"required,region"`
}

type InputConfig struct {
	// FoldWidth maps fullwidth digits and punctuation (e.g. "１３８") to ASCII
	// before parsing.
	FoldWidth bool `toml:"fold_width" json:"fold_width"`
}

type OutputConfig struct {
	Format string `toml:"format" json:"format" validate:"oneof=table json csv"`
}

type LoggingConfig struct {
	Level  string `toml:"level" json:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `toml:"format" json:"format" validate:"omitempty,oneof=text json"`
}

// Default returns a Config with all defaults applied.
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{Region: "cn"},
		Input:    InputConfig{FoldWidth: true},
		Output:   OutputConfig{Format: "table"},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load reads configuration with priority: defaults → phonenumber.toml → env vars → CLI flags.
// The flags parameter carries CLI overrides keyed by flag name. PHONENUMBER_*
// values in a .env file beside the config file fill in for unset env vars.
func Load(configPath string, flags map[string]string) (*Config, error) {
	cfg := Default()

	if configPath == "" {
		configPath = DefaultPath
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", configPath, err)
		}
	}

	getenv, err := envLookup(filepath.Join(filepath.Dir(configPath), ".env"))
	if err != nil {
		return nil, err
	}
	if err := applyEnv(cfg, getenv); err != nil {
		return nil, err
	}
	applyFlags(cfg, flags)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("region", func(fl validator.FieldLevel) bool {
		_, err := phonenumber.ParseRegion(fl.Field().String())
		return err == nil
	})
	return v
}

// fieldKeys maps struct namespaces reported by the validator to dotted keys.
var fieldKeys = map[string]string{
	"Config.Defaults.Region": "defaults.region",
	"Config.Output.Format":   "output.format",
	"Config.Logging.Level":   "logging.level",
	"Config.Logging.Format":  "logging.format",
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	key := fieldKeys[fe.Namespace()]
	if key == "" {
		key = fe.Namespace()
	}
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", key)
	case "region":
		return fmt.Errorf("%s must be one of: cn, hk; got %q", key, fe.Value())
	case "oneof":
		return fmt.Errorf("%s must be one of: %s; got %q", key, strings.ReplaceAll(fe.Param(), " ", ", "), fe.Value())
	}
	return fmt.Errorf("%s is invalid: %v", key, fe.Value())
}

// Region resolves defaults.region. Validate guarantees it parses.
func (c *Config) Region() phonenumber.Region {
	r, err := phonenumber.ParseRegion(c.Defaults.Region)
	if err != nil {
		return phonenumber.RegionChina
	}
	return r
}

// GenerateDefault writes a commented default phonenumber.toml to the given path.
func GenerateDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(defaultTOML), 0o644)
}

// ToTOML returns the config serialized as TOML.
func (c *Config) ToTOML() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// envLookup returns a getter over the process environment, falling back
// to the PHONENUMBER_* entries of dotEnvPath when it exists.
func envLookup(dotEnvPath string) (func(string) string, error) {
	file, err := godotenv.Read(dotEnvPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return os.Getenv, nil
		}
		return nil, fmt.Errorf("parsing %s: %w", dotEnvPath, err)
	}
	return func(name string) string {
		if v, ok := os.LookupEnv(name); ok {
			return v
		}
		if strings.HasPrefix(name, "PHONENUMBER_") {
			return file[name]
		}
		return ""
	}, nil
}

// envBool reads a boolean from the named environment variable.
// Returns an error if the value is set but not a valid boolean.
func envBool(getenv func(string) string, name string, dest *bool) error {
	v := getenv(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %q is not a boolean", name, v)
	}
	*dest = b
	return nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv("PHONENUMBER_REGION"); v != "" {
		cfg.Defaults.Region = v
	}
	if err := envBool(getenv, "PHONENUMBER_FOLD_WIDTH", &cfg.Input.FoldWidth); err != nil {
		return err
	}
	if v := getenv("PHONENUMBER_OUTPUT"); v != "" {
		cfg.Output.Format = v
	}
	if v := getenv("PHONENUMBER_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := getenv("PHONENUMBER_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	return nil
}

func applyFlags(cfg *Config, flags map[string]string) {
	if flags == nil {
		return
	}
	if v, ok := flags["region"]; ok && v != "" {
		cfg.Defaults.Region = v
	}
	if v, ok := flags["output"]; ok && v != "" {
		cfg.Output.Format = v
	}
	if v, ok := flags["fold-width"]; ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Input.FoldWidth = b
		}
	}
	if v, ok := flags["log-level"]; ok && v != "" {
		cfg.Logging.Level = v
	}
}

// validKeys is the complete set of dot-separated config keys.
var validKeys = map[string]bool{
	"defaults.region":  true,
	"input.fold_width": true,
	"output.format":    true,
	"logging.level":    true,
	"logging.format":   true,
}

// IsValidKey returns true if the dotted key is a recognized config key.
func IsValidKey(key string) bool {
	return validKeys[key]
}

// GetValue returns the value for a dotted config key (e.g. "output.format").
func GetValue(cfg *Config, key string) (any, error) {
	switch key {
	case "defaults.region":
		return cfg.Defaults.Region, nil
	case "input.fold_width":
		return cfg.Input.FoldWidth, nil
	case "output.format":
		return cfg.Output.Format, nil
	case "logging.level":
		return cfg.Logging.Level, nil
	case "logging.format":
		return cfg.Logging.Format, nil
	}
	return nil, fmt.Errorf("unknown configuration key: %s", key)
}

// SetValue writes a single dotted key into the TOML file at configPath,
// preserving other keys. The file is created if missing.
func SetValue(configPath, key, value string) error {
	if !IsValidKey(key) {
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	var data map[string]any
	if raw, err := os.ReadFile(configPath); err == nil {
		if err := toml.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("parsing %s: %w", configPath, err)
		}
	}
	if data == nil {
		data = make(map[string]any)
	}

	section, field, _ := strings.Cut(key, ".")
	sectionMap, ok := data[section].(map[string]any)
	if !ok {
		sectionMap = make(map[string]any)
		data[section] = sectionMap
	}
	sectionMap[field] = coerceValue(key, value)

	out, err := toml.Marshal(data)
	if err != nil {
		return fmt.Errorf("serializing config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	return os.WriteFile(configPath, out, 0o644)
}

func coerceValue(key, value string) any {
	if key == "input.fold_width" {
		return value == "true" || value == "1"
	}
	return value
}

const defaultTOML = `# phonenumber configuration

[defaults]
# Region used when --region is not given: cn (mainland China) or hk (Hong Kong).
region = "cn"

[input]
# Map fullwidth digits such as "１３８" to ASCII before parsing.
fold_width = true

[output]
# table, json, or csv.
format = "table"

[logging]
# debug, info, warn, or error.
level = "warn"
# text or json.
format = "text"
`
