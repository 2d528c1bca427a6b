package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the CLI,
// e.g. SPEECHSTYLE_DURATION
const EnvPrefix = "SPEECHSTYLE"

// Keys shared by flags, environment and config file
const (
	KeyDuration = "duration"
	KeyFormat   = "format"
	KeyLabels   = "labels"
	KeyVerbose  = "verbose"
)

// Default values
const (
	DefaultDurationSeconds = 180
	DefaultFormat          = "terminal"
	DefaultLabels          = "ja"
)

// Formats lists the accepted output formats
var Formats = []string{"terminal", "json"}

// Settings is the resolved CLI configuration
type Settings struct {
	DurationSeconds float64 `mapstructure:"duration"`
	Format          string  `mapstructure:"format"`
	Labels          string  `mapstructure:"labels"`
	Verbose         bool    `mapstructure:"verbose"`

	// ConfigFile is the config file that was read, if any
	ConfigFile string `mapstructure:"-"`
}

// Load resolves settings from, in increasing priority: defaults, the config
// file, SPEECHSTYLE_* environment variables (including a .env file in the
// working directory) and explicitly set flags.
func Load(configFile string, flags *pflag.FlagSet) (*Settings, error) {
	// A missing .env is normal
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault(KeyDuration, DefaultDurationSeconds)
	v.SetDefault(KeyFormat, DefaultFormat)
	v.SetDefault(KeyLabels, DefaultLabels)
	v.SetDefault(KeyVerbose, false)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if err := readConfigFile(v, configFile); err != nil {
		return nil, err
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	s.ConfigFile = v.ConfigFileUsed()

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// readConfigFile reads an explicit config file, or the default one when it exists
func readConfigFile(v *viper.Viper, configFile string) error {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
		return nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(dir, "speechstyle"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// Validate checks the settings that cannot be checked by the type system
func (s *Settings) Validate() error {
	if s.DurationSeconds <= 0 {
		return fmt.Errorf("duration must be positive, got %v", s.DurationSeconds)
	}

	for _, f := range Formats {
		if s.Format == f {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q (want one of %v)", s.Format, Formats)
}
