package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ModePopup  = "popup"
	ModeInline = "inline"

	defaultTitle    = "Productivity Map: Medical Staff"
	defaultSubtitle = "Appointments and clinical evolutions assigned to doctors and nurses"
)

// ErrInvalidConfig is returned when a configuration value is out of its allowed set.
var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Env       string          `yaml:"env"`       // Env is the current environment: local, development, production.
	HTTP      HTTPConfig      `yaml:"http"`      // HTTP holds the web server configuration.
	Dashboard DashboardConfig `yaml:"dashboard"` // Dashboard holds the page defaults.
	Roster    RosterConfig    `yaml:"roster"`    // Roster selects the staff data provider.
}

// HTTPConfig struct holds the configuration details for the dashboard web server.
type HTTPConfig struct {
	Address         string        `yaml:"address"`          // Address is the listen address, e.g. ":8080".
	ReadTimeout     time.Duration `yaml:"read_timeout"`     // ReadTimeout bounds reading a whole request.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // ShutdownTimeout bounds graceful shutdown.
}

// DashboardConfig struct holds the static page shell text and the default interaction mode.
type DashboardConfig struct {
	Mode     string `yaml:"mode"`     // Mode is either "popup" or "inline".
	Title    string `yaml:"title"`    // Title is the page header.
	Subtitle string `yaml:"subtitle"` // Subtitle is shown under the header.
}

// RosterConfig struct holds the staff data source. An empty File means the built-in sample roster.
type RosterConfig struct {
	File string `yaml:"file"`
}

// MustLoad loads the configuration from the optional YAML file named by CONFIG_PATH
// and the environment, and panics on any error.
func MustLoad() *Config {
	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		panic("config error: " + err.Error())
	}

	return cfg
}

// Load reads configuration from configPath (skipped when empty) with ASCLEPIUS_* environment
// overrides. A .env file in the working directory is loaded first when present.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	defReadTimeout := 5
	defShutdownTimeout := 10

	v.SetDefault("env", "local")
	v.SetDefault("http.address", ":8080")
	v.SetDefault("http.read_timeout", time.Duration(defReadTimeout)*time.Second)
	v.SetDefault("http.shutdown_timeout", time.Duration(defShutdownTimeout)*time.Second)
	v.SetDefault("dashboard.mode", ModePopup)
	v.SetDefault("dashboard.title", defaultTitle)
	v.SetDefault("dashboard.subtitle", defaultSubtitle)
	v.SetDefault("roster.file", "")

	v.SetEnvPrefix("ASCLEPIUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		// check if file exists
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist: %s", configPath)
		}

		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Env: v.GetString("env"),
		HTTP: HTTPConfig{
			Address:         v.GetString("http.address"),
			ReadTimeout:     v.GetDuration("http.read_timeout"),
			ShutdownTimeout: v.GetDuration("http.shutdown_timeout"),
		},
		Dashboard: DashboardConfig{
			Mode:     strings.ToLower(v.GetString("dashboard.mode")),
			Title:    v.GetString("dashboard.title"),
			Subtitle: v.GetString("dashboard.subtitle"),
		},
		Roster: RosterConfig{
			File: v.GetString("roster.file"),
		},
	}

	if cfg.Dashboard.Mode != ModePopup && cfg.Dashboard.Mode != ModeInline {
		return nil, fmt.Errorf("%w: dashboard.mode must be %q or %q, got %q",
			ErrInvalidConfig, ModePopup, ModeInline, cfg.Dashboard.Mode)
	}

	if cfg.HTTP.ShutdownTimeout <= 0 {
		return nil, fmt.Errorf("%w: http.shutdown_timeout must be positive", ErrInvalidConfig)
	}

	return cfg, nil
}
