package game

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	newsservice "github.com/zappabad/parkcraft/internal/news/service"
	"github.com/zappabad/parkcraft/internal/park"
	"github.com/zappabad/parkcraft/internal/script"
)

// Config holds configuration for the game.
type Config struct {
	// ParkName is shown in the ticker header and stored with save slots.
	ParkName string `yaml:"park_name"`
	// Seed drives the demo world and the gameplay feed.
	Seed int64 `yaml:"seed"`
	// TickInterval is the wall-clock time between simulation ticks.
	TickInterval time.Duration `yaml:"tick_interval"`
	// SavePath is the SQLite file holding save slots.
	SavePath string `yaml:"save_path"`
	// EventBuffer is the size of the UI events channel.
	EventBuffer int `yaml:"event_buffer"`
	// WarningCooldown is how many ticks a guest warning stays muted.
	WarningCooldown uint16 `yaml:"warning_cooldown"`

	News   newsservice.Config `yaml:"news"`
	Script script.Config      `yaml:"script"`
	Feed   FeedConfig         `yaml:"feed"`
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		ParkName:        "Forest Frontiers",
		Seed:            1,
		TickInterval:    25 * time.Millisecond,
		SavePath:        "parkcraft.db",
		EventBuffer:     256,
		WarningCooldown: park.DefaultWarningCooldown,
		News:            newsservice.DefaultConfig(),
		Script:          script.DefaultConfig(),
		Feed:            DefaultFeedConfig(),
	}
}

// Load reads a YAML config file from path on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse unmarshals YAML bytes on top of the defaults and validates the
// result.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults replaces zeroed values with defaults.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.ParkName == "" {
		c.ParkName = def.ParkName
	}
	if c.EventBuffer == 0 {
		c.EventBuffer = def.EventBuffer
	}
	if c.WarningCooldown == 0 {
		c.WarningCooldown = def.WarningCooldown
	}
	if c.Feed.Interval == 0 {
		c.Feed.Interval = def.Feed.Interval
	}
}

// Validate checks that all values are usable.
func (c *Config) Validate() error {
	var errs []string
	if c.TickInterval <= 0 {
		errs = append(errs, "tick_interval must be positive")
	}
	if c.SavePath == "" {
		errs = append(errs, "save_path is required")
	}
	if c.EventBuffer < 0 {
		errs = append(errs, "event_buffer must not be negative")
	}
	if c.Script.PostRate < 0 {
		errs = append(errs, "script.post_rate must not be negative")
	}
	if c.Script.PostBurst < 0 {
		errs = append(errs, "script.post_burst must not be negative")
	}
	if c.Feed.Interval < 0 {
		errs = append(errs, "feed.interval must not be negative")
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// ApplyEnv overrides values from PARKCRAFT_* environment variables. Values
// that do not parse are ignored.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("PARKCRAFT_TICK_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.TickInterval = d
		}
	}
	if v := os.Getenv("PARKCRAFT_SAVE_PATH"); v != "" {
		c.SavePath = v
	}
	if v := os.Getenv("PARKCRAFT_SOUND"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.News.Sound = b
		}
	}
	if v := os.Getenv("PARKCRAFT_SCRIPT_RATE"); v != "" {
		if r, err := strconv.ParseFloat(v, 64); err == nil && r >= 0 {
			c.Script.PostRate = r
		}
	}
	if v := os.Getenv("PARKCRAFT_SEED"); v != "" {
		if s, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = s
		}
	}
}
