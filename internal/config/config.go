package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix marks environment overrides: PORTFOLIO_SERVER__ADDR -> server.addr
const EnvPrefix = "PORTFOLIO_"

// Config holds all application configuration
type Config struct {
	Server   ServerConfig  `yaml:"server" koanf:"server"`
	DataPath string        `yaml:"data_path" koanf:"data_path"`
	Log      LogConfig     `yaml:"log" koanf:"log"`
	Widgets  WidgetConfig  `yaml:"widgets" koanf:"widgets"`
	Contact  ContactConfig `yaml:"contact" koanf:"contact"`
}

// ServerConfig holds HTTP settings
type ServerConfig struct {
	Addr            string        `yaml:"addr" koanf:"addr"`
	StaticDir       string        `yaml:"static_dir" koanf:"static_dir"`
	AllowedOrigins  []string      `yaml:"allowed_origins" koanf:"allowed_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" koanf:"shutdown_timeout"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level       string `yaml:"level" koanf:"level"`
	Development bool   `yaml:"development" koanf:"development"`
}

// WidgetConfig holds the page widget timings
type WidgetConfig struct {
	SliderInterval    time.Duration `yaml:"slider_interval" koanf:"slider_interval"`
	SliderSettleDelay time.Duration `yaml:"slider_settle_delay" koanf:"slider_settle_delay"`
	SwipeThreshold    float64       `yaml:"swipe_threshold" koanf:"swipe_threshold"`
	FilterStagger     time.Duration `yaml:"filter_stagger" koanf:"filter_stagger"`
	FilterHideDelay   time.Duration `yaml:"filter_hide_delay" koanf:"filter_hide_delay"`
	SendDelay         time.Duration `yaml:"send_delay" koanf:"send_delay"`
	SuccessDelay      time.Duration `yaml:"success_delay" koanf:"success_delay"`
	ScrollProbe       string        `yaml:"scroll_probe" koanf:"scroll_probe"`
	LazyRootMargin    float64       `yaml:"lazy_root_margin" koanf:"lazy_root_margin"`
}

// ContactConfig holds contact form settings
type ContactConfig struct {
	OutboxLimit int `yaml:"outbox_limit" koanf:"outbox_limit"`
}

// Scroll probe names
const (
	ProbeSidebar = "sidebar"
	ProbeHeader  = "header"
)

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			StaticDir:       "static",
			AllowedOrigins:  []string{"http://localhost:*", "http://127.0.0.1:*"},
			ShutdownTimeout: 10 * time.Second,
		},
		DataPath: "data",
		Log: LogConfig{
			Level: "info",
		},
		Widgets: WidgetConfig{
			SliderInterval:    5000 * time.Millisecond,
			SliderSettleDelay: 1000 * time.Millisecond,
			SwipeThreshold:    50,
			FilterStagger:     100 * time.Millisecond,
			FilterHideDelay:   300 * time.Millisecond,
			SendDelay:         2000 * time.Millisecond,
			SuccessDelay:      5000 * time.Millisecond,
			ScrollProbe:       ProbeSidebar,
			LazyRootMargin:    50,
		},
		Contact: ContactConfig{
			OutboxLimit: 100,
		},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// SERVER_ADDR is honoured for existing deployments
	if addr := os.Getenv("SERVER_ADDR"); addr != "" && !k.Exists("server.addr") {
		cfg.Server.Addr = addr
	}

	return cfg, nil
}

// envKey maps PORTFOLIO_WIDGETS__SLIDER_INTERVAL to widgets.slider_interval
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the configuration contains usable values
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.DataPath == "" {
		return fmt.Errorf("data_path is required")
	}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log.level %q: must be one of debug, info, warn, error", c.Log.Level)
	}
	if c.Widgets.ScrollProbe != ProbeSidebar && c.Widgets.ScrollProbe != ProbeHeader {
		return fmt.Errorf("invalid widgets.scroll_probe %q: must be sidebar or header", c.Widgets.ScrollProbe)
	}

	durations := map[string]time.Duration{
		"widgets.slider_interval":     c.Widgets.SliderInterval,
		"widgets.slider_settle_delay": c.Widgets.SliderSettleDelay,
		"widgets.filter_hide_delay":   c.Widgets.FilterHideDelay,
		"widgets.send_delay":          c.Widgets.SendDelay,
		"widgets.success_delay":       c.Widgets.SuccessDelay,
	}
	for name, d := range durations {
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	if c.Widgets.FilterStagger < 0 {
		return fmt.Errorf("widgets.filter_stagger must be non-negative")
	}
	if c.Widgets.SwipeThreshold <= 0 {
		return fmt.Errorf("widgets.swipe_threshold must be positive")
	}
	if c.Contact.OutboxLimit < 0 {
		return fmt.Errorf("contact.outbox_limit must be non-negative")
	}
	return nil
}
