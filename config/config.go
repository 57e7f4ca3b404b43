// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Render    RenderConfig    `yaml:"render"`
	HUD       HUDConfig       `yaml:"hud"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Bodies    []BodyConfig    `yaml:"bodies"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// PhysicsConfig holds frame timing parameters. The gravitational parameter
// is fixed at 1 and is deliberately absent.
type PhysicsConfig struct {
	MaxDT          float64 `yaml:"max_dt"`           // Upper clamp on the per-frame dt (seconds)
	StepsPerUpdate int     `yaml:"steps_per_update"` // Simulation steps per rendered frame
}

// RenderConfig holds drawing parameters.
type RenderConfig struct {
	Scale          float64   `yaml:"scale"`            // Screen pixels per world unit at zoom 1
	TrailAlpha     float64   `yaml:"trail_alpha"`      // Opacity of the newest trail segment
	TrailWidth     float64   `yaml:"trail_width"`      // Line width in pixels
	TrailMaxPoints int       `yaml:"trail_max_points"` // Points drawn per trail (0 = all); the trace itself is never cut
	PointSize      float64   `yaml:"point_size"`       // Body marker diameter in pixels
	AttractorColor []float64 `yaml:"attractor_color"`  // RGB 0..1
	Background     []float64 `yaml:"background"`       // RGB 0..1

	Stars StarsConfig `yaml:"stars"`
}

// StarsConfig controls the noise starfield behind the orbits.
type StarsConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Seed      int64   `yaml:"seed"`
	CellSize  int     `yaml:"cell_size"` // Pixels per sample cell
	Threshold float64 `yaml:"threshold"` // Noise value above which a star is drawn
}

// HUDConfig holds the readout overlay layout.
type HUDConfig struct {
	X          int       `yaml:"x"`
	Y          int       `yaml:"y"`
	FontSize   int       `yaml:"font_size"`
	LineHeight int       `yaml:"line_height"`
	Color      []float64 `yaml:"color"` // RGBA 0..1
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`          // Simulation seconds per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window"` // Ticks averaged by the perf collector
}

// BodyConfig is the initial state of one body. Vectors are literal lists
// so a wrong component count is reported instead of silently truncated.
type BodyConfig struct {
	Name     string    `yaml:"name"`
	Role     string    `yaml:"role"` // "player", "reference" or empty
	Position []float64 `yaml:"position"`
	Velocity []float64 `yaml:"velocity"`
	Color    []float64 `yaml:"color"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
}

var (
	// ErrNoPlayer is returned when no body has role "player".
	ErrNoPlayer = errors.New("config: no player body")
	// ErrNoReference is returned when no body has role "reference".
	ErrNoReference = errors.New("config: no reference body")
	// ErrDuplicateRole is returned when a unique role appears twice.
	ErrDuplicateRole = errors.New("config: duplicate body role")
)

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := Parse(cfg, data); err != nil {
			return nil, err
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse overlays YAML data onto cfg. A bodies list in data replaces the
// default bodies entirely.
func Parse(cfg *Config, data []byte) error {
	// Unmarshal into same struct - only overwrites fields present in data
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// computeDerived calculates values derived from loaded config and
// validates body roles.
func (c *Config) computeDerived() error {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	if c.Physics.StepsPerUpdate < 1 {
		c.Physics.StepsPerUpdate = 1
	}
	if c.Physics.MaxDT <= 0 {
		c.Physics.MaxDT = 0.050
	}

	_, _, err := ResolveRoles(c.Bodies)
	return err
}

// ResolveRoles returns the indices of the single player and the single
// reference body in bodies.
func ResolveRoles(bodies []BodyConfig) (player, reference int, err error) {
	player, reference = -1, -1
	for i, b := range bodies {
		switch b.Role {
		case "player":
			if player >= 0 {
				return -1, -1, fmt.Errorf("%w: player (%q and %q)", ErrDuplicateRole, bodies[player].Name, b.Name)
			}
			player = i
		case "reference":
			if reference >= 0 {
				return -1, -1, fmt.Errorf("%w: reference (%q and %q)", ErrDuplicateRole, bodies[reference].Name, b.Name)
			}
			reference = i
		}
	}
	if player < 0 {
		return -1, -1, ErrNoPlayer
	}
	if reference < 0 {
		return -1, -1, ErrNoReference
	}
	return player, reference, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
