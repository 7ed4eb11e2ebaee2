package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Rhymond/go-money"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

const (
	// EnvPrefix prefixes every environment variable read by the application.
	EnvPrefix = "AMORTIZE"
	// EnvConfigFile names the environment variable holding the config file path.
	EnvConfigFile = "AMORTIZE_CONFIG"
	// DefaultConfigFile is the config file read when EnvConfigFile is not set.
	DefaultConfigFile = "amortize.yaml"
)

// Config holds the application defaults.
//
// Values come, in increasing precedence, from DefaultConfig, the YAML config
// file, the environment (and a .env file), then the command line flags.
type Config struct {
	Method       string `yaml:"method" envconfig:"METHOD" validate:"oneof=annuity straight"`
	Currency     string `yaml:"currency" envconfig:"CURRENCY" validate:"omitempty,currency"`
	ExportDir    string `yaml:"export_dir" envconfig:"EXPORT_DIR" validate:"required"`
	ExportFormat string `yaml:"export_format" envconfig:"EXPORT_FORMAT" validate:"oneof=csv xlsx"`
	LogLevel     string `yaml:"log_level" envconfig:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	Model        string `yaml:"model" envconfig:"MODEL" validate:"required"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Method:       "annuity",
		ExportDir:    "./",
		ExportFormat: "csv",
		LogLevel:     "warn",
		Model:        "gemini-2.5-flash",
	}
}

// LoadConfig loads the configuration from the config file and the environment.
//
// A missing config file is not an error.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	// .env does not override variables already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("failed to load .env: %w", err)
	}

	file := os.Getenv(EnvConfigFile)
	if file == "" {
		file = DefaultConfigFile
	}
	data, err := os.ReadFile(file)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("failed to read config file %q: %w", file, err)
	default:
		if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %q: %w", file, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// currencies known to the formatter.
	v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		return money.GetCurrency(fl.Field().String()) != nil
	})
	return v
}

// Validate checks that every value is supported.
func (c Config) Validate() error {
	return validate.Struct(c)
}
