// Package config holds the gameplay tuning values and where persisted data
// lives. Tuning can be overridden from a YAML file; anything the file leaves
// out keeps its default.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"mazechase/internal/entities"
	"mazechase/internal/geom"
)

const dirName = "mazechase"

// GhostConfig is one roster entry as written in the tuning file.
type GhostConfig struct {
	Name     string  `yaml:"name"`
	Color    string  `yaml:"color"`
	PenDelay float64 `yaml:"pen_delay"`
	Speed    float64 `yaml:"speed"`
	StartX   float64 `yaml:"start_x"`
	StartY   float64 `yaml:"start_y"`
}

// Tuning collects every number the simulation and the phase machine use.
// Speeds are in grid cells per second, durations in seconds.
type Tuning struct {
	PlayerSpeed         float64 `yaml:"player_speed"`
	GhostWeakenedSpeed  float64 `yaml:"ghost_weakened_speed"`
	GhostRunningHome    float64 `yaml:"ghost_running_home_speed"`
	PenSpeed            float64 `yaml:"pen_speed"`
	WeakenedDuration    float64 `yaml:"weakened_duration"`
	ReturnPenDelay      float64 `yaml:"return_pen_delay"`
	RandomDistanceScale float64 `yaml:"random_distance_scale"`
	MaxRandomChance     float64 `yaml:"max_random_chance"`
	WeakenedRandom      float64 `yaml:"weakened_random_chance"`
	MaxFrameDelta       float64 `yaml:"max_frame_delta"`
	StartDelay          float64 `yaml:"start_delay"`
	LoseLifeDelay       float64 `yaml:"lose_life_delay"`
	Lives               int     `yaml:"lives"`

	Ghosts []GhostConfig `yaml:"ghosts"`
}

var (
	ErrNoGhosts     = errors.New("config: roster is empty")
	ErrBadColor     = errors.New("config: bad ghost color")
	ErrOutOfRange   = errors.New("config: value out of range")
	ErrDuplicateKey = errors.New("config: duplicate ghost name")
)

// Default returns the built-in tuning.
func Default() Tuning {
	return Tuning{
		PlayerSpeed:         6,
		GhostWeakenedSpeed:  2,
		GhostRunningHome:    8,
		PenSpeed:            2,
		WeakenedDuration:    8,
		ReturnPenDelay:      5,
		RandomDistanceScale: 30,
		MaxRandomChance:     0.9,
		WeakenedRandom:      0.2,
		MaxFrameDelta:       0.05,
		StartDelay:          3,
		LoseLifeDelay:       1.2,
		Lives:               3,
		Ghosts: []GhostConfig{
			penGhost("Red", "#ff0000", 1, 4.2, -20, 5),
			penGhost("Cyan", "#00ffff", 5, 4.0, 0, 10),
			penGhost("Pink", "#ff00ff", 9, 3.8, 20, 0),
			penGhost("Yellow", "#ffff00", 13, 3.6, 40, 15),
		},
	}
}

// penGhost builds a roster entry whose start is given in world units
// around the pen.
func penGhost(name, hex string, penDelay, speed, worldX, worldY float64) GhostConfig {
	start := geom.DefaultLayout.WorldToGrid(geom.Vec2{X: worldX, Y: worldY})
	return GhostConfig{Name: name, Color: hex, PenDelay: penDelay, Speed: speed, StartX: start.X, StartY: start.Y}
}

// Load reads a YAML tuning file on top of the defaults. An empty path
// returns the defaults.
func Load(path string) (Tuning, error) {
	t := Default()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("read tuning: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("parse tuning %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}

// Validate checks the values the simulation relies on.
func (t Tuning) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"player_speed", t.PlayerSpeed},
		{"ghost_weakened_speed", t.GhostWeakenedSpeed},
		{"ghost_running_home_speed", t.GhostRunningHome},
		{"pen_speed", t.PenSpeed},
		{"weakened_duration", t.WeakenedDuration},
		{"random_distance_scale", t.RandomDistanceScale},
		{"max_frame_delta", t.MaxFrameDelta},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrOutOfRange, p.name, p.v)
		}
	}
	// More than half a cell per tick lets an actor skip the probe cell.
	if t.MaxFrameDelta*maxSpeed(t) >= 0.5 {
		return fmt.Errorf("%w: max_frame_delta %v too large for the fastest speed", ErrOutOfRange, t.MaxFrameDelta)
	}
	for _, c := range []struct {
		name string
		v    float64
	}{{"max_random_chance", t.MaxRandomChance}, {"weakened_random_chance", t.WeakenedRandom}} {
		if c.v < 0 || c.v > 1 {
			return fmt.Errorf("%w: %s must be within [0,1], got %v", ErrOutOfRange, c.name, c.v)
		}
	}
	if t.ReturnPenDelay < 0 || t.StartDelay < 0 || t.LoseLifeDelay < 0 {
		return fmt.Errorf("%w: delays must not be negative", ErrOutOfRange)
	}
	if t.Lives < 1 {
		return fmt.Errorf("%w: lives must be at least 1, got %d", ErrOutOfRange, t.Lives)
	}
	if len(t.Ghosts) == 0 {
		return ErrNoGhosts
	}
	seen := make(map[string]bool, len(t.Ghosts))
	for _, g := range t.Ghosts {
		if seen[g.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateKey, g.Name)
		}
		seen[g.Name] = true
		if _, err := ParseColor(g.Color); err != nil {
			return err
		}
		if g.Speed <= 0 || g.PenDelay < 0 {
			return fmt.Errorf("%w: ghost %q needs a positive speed and non-negative pen delay", ErrOutOfRange, g.Name)
		}
	}
	return nil
}

func maxSpeed(t Tuning) float64 {
	m := max(t.PlayerSpeed, t.GhostWeakenedSpeed, t.GhostRunningHome, t.PenSpeed)
	for _, g := range t.Ghosts {
		m = max(m, g.Speed)
	}
	return m
}

// Roster converts the configured ghosts into spawn specs.
func (t Tuning) Roster() ([]entities.GhostSpec, error) {
	specs := make([]entities.GhostSpec, 0, len(t.Ghosts))
	for _, g := range t.Ghosts {
		c, err := ParseColor(g.Color)
		if err != nil {
			return nil, err
		}
		specs = append(specs, entities.GhostSpec{
			Name:     g.Name,
			Color:    c,
			PenDelay: g.PenDelay,
			Speed:    g.Speed,
			Start:    geom.Vec2{X: g.StartX, Y: g.StartY},
		})
	}
	return specs, nil
}

// ParseColor accepts "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Dir determines the base directory for persisted data and creates it.
// If MAZECHASE_CONFIG_DIR is set it is used as-is, otherwise
// UserConfigDir()/mazechase.
func Dir() (string, error) {
	if env := os.Getenv("MAZECHASE_CONFIG_DIR"); env != "" {
		if err := os.MkdirAll(env, 0o755); err != nil {
			return "", err
		}
		return env, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, dirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}
