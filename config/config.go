// Package config loads the tuning surface: world dimensions, transition
// timing and zoom targets, and the per-scene tables the transition system
// dispatches through.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/sizeshift/procgen"
)

//go:embed default.yaml
var defaultYAML []byte

type Config struct {
	World      WorldSpec            `yaml:"world"`
	Spawn      PointSpec            `yaml:"spawn"`
	Transition TransitionSpec       `yaml:"transition"`
	Scenes     map[string]SceneSpec `yaml:"scenes"`
}

type WorldSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type TransitionSpec struct {
	// DurationFrames is the length of each zoom/fade/scale interpolation.
	DurationFrames int     `yaml:"duration_frames"`
	GrowZoom       float64 `yaml:"grow_zoom"`
	ShrinkZoom     float64 `yaml:"shrink_zoom"`
	Easing         string  `yaml:"easing"`
	// DefaultFinalScale is the fallback when a scene has no final_scale entry.
	DefaultFinalScale float64 `yaml:"default_final_scale"`
}

type SceneSpec struct {
	// Theme selects the background generator; empty means the scene paints
	// no procedural backdrop (and transitions into it skip the cross-fade).
	Theme string `yaml:"theme"`
	// FinalScale is the player display scale this scene snaps to on arrival.
	FinalScale float64 `yaml:"final_scale"`
	// GrowTarget and ShrinkTarget name the scenes a size change switches to.
	GrowTarget   string `yaml:"grow_target"`
	ShrinkTarget string `yaml:"shrink_target"`

	Platforms []RectSpec       `yaml:"platforms"`
	Enemies   []EnemySpawnSpec `yaml:"enemies"`
	Orbs      []PointSpec      `yaml:"orbs"`
}

type RectSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type EnemySpawnSpec struct {
	Type string  `yaml:"type"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Load reads the config at path, falling back to the embedded default when
// path is empty or unreadable.
func Load(path string) (*Config, error) {
	data := defaultYAML
	if path != "" {
		if b, err := os.ReadFile(path); err == nil {
			data = b
		}
	}
	return Parse(data)
}

// Parse unmarshals and validates raw config bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the tables are complete before anything dispatches
// through them.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config: nil")
	}
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("config: world dimensions must be positive, got %dx%d", c.World.Width, c.World.Height)
	}
	if c.Transition.DurationFrames <= 0 {
		return fmt.Errorf("config: transition duration_frames must be positive, got %d", c.Transition.DurationFrames)
	}
	if c.Transition.GrowZoom <= 0 || c.Transition.ShrinkZoom <= 0 {
		return fmt.Errorf("config: transition zooms must be positive, got grow=%v shrink=%v", c.Transition.GrowZoom, c.Transition.ShrinkZoom)
	}
	if c.Transition.DefaultFinalScale <= 0 {
		return fmt.Errorf("config: default_final_scale must be positive, got %v", c.Transition.DefaultFinalScale)
	}
	if len(c.Scenes) == 0 {
		return fmt.Errorf("config: no scenes defined")
	}
	for key, scene := range c.Scenes {
		if scene.Theme != "" && !procgen.KnownTheme(procgen.Theme(scene.Theme)) {
			return fmt.Errorf("config: scene %s: unknown theme %q", key, scene.Theme)
		}
		if scene.GrowTarget != "" {
			if _, ok := c.Scenes[scene.GrowTarget]; !ok {
				return fmt.Errorf("config: scene %s: grow_target %q is not a registered scene", key, scene.GrowTarget)
			}
		}
		if scene.ShrinkTarget != "" {
			if _, ok := c.Scenes[scene.ShrinkTarget]; !ok {
				return fmt.Errorf("config: scene %s: shrink_target %q is not a registered scene", key, scene.ShrinkTarget)
			}
		}
	}
	return nil
}

// SceneKeys returns the registered scene identifiers in stable order.
func (c *Config) SceneKeys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, 0, len(c.Scenes))
	for k := range c.Scenes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FinalScale looks up the player scale for a scene, with the configured
// fallback for unknown keys.
func (c *Config) FinalScale(sceneKey string) float64 {
	if c == nil {
		return 1
	}
	if scene, ok := c.Scenes[sceneKey]; ok && scene.FinalScale > 0 {
		return scene.FinalScale
	}
	return c.Transition.DefaultFinalScale
}

// ThemeFor returns the background theme mapped to a scene, if any.
func (c *Config) ThemeFor(sceneKey string) (procgen.Theme, bool) {
	if c == nil {
		return "", false
	}
	scene, ok := c.Scenes[sceneKey]
	if !ok || scene.Theme == "" {
		return "", false
	}
	return procgen.Theme(scene.Theme), true
}
