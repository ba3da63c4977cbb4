package config

import (
	"strings"
	"testing"

	"github.com/milk9111/sizeshift/procgen"
)

const minimalYAML = `
world:
  width: 800
  height: 600
spawn:
  x: 100
  y: 500
transition:
  duration_frames: 60
  grow_zoom: 2.5
  shrink_zoom: 0.4
  easing: sine-in-out
  default_final_scale: 1.0
scenes:
  MainGameScene:
    theme: sky
    final_scale: 1.0
    shrink_target: MainGameMicroScene
  MainGameMicroScene:
    theme: quantum
    final_scale: 0.25
    grow_target: MainGameScene
`

func TestParseMinimal(t *testing.T) {
	cfg, err := Parse([]byte(minimalYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.World.Width != 800 || cfg.World.Height != 600 {
		t.Fatalf("world: got %dx%d", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Transition.DurationFrames != 60 {
		t.Fatalf("duration: got %d", cfg.Transition.DurationFrames)
	}
	micro := cfg.Scenes["MainGameMicroScene"]
	if micro.Theme != "quantum" || micro.FinalScale != 0.25 || micro.GrowTarget != "MainGameScene" {
		t.Fatalf("micro scene: %+v", micro)
	}
}

func TestParseRejects(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(string) string
		wantErr string
	}{
		{"bad_yaml", func(s string) string { return "world: [1, 2" }, "unmarshal"},
		{"zero_world", func(s string) string { return strings.Replace(s, "width: 800", "width: 0", 1) }, "world dimensions"},
		{"zero_duration", func(s string) string { return strings.Replace(s, "duration_frames: 60", "duration_frames: 0", 1) }, "duration_frames"},
		{"zero_zoom", func(s string) string { return strings.Replace(s, "grow_zoom: 2.5", "grow_zoom: 0", 1) }, "zooms"},
		{"zero_default_scale", func(s string) string { return strings.Replace(s, "default_final_scale: 1.0", "default_final_scale: 0", 1) }, "default_final_scale"},
		{"unknown_theme", func(s string) string { return strings.Replace(s, "theme: sky", "theme: volcano", 1) }, "unknown theme"},
		{"dangling_grow_target", func(s string) string {
			return strings.Replace(s, "grow_target: MainGameScene", "grow_target: NoSuchScene", 1)
		}, "grow_target"},
		{"dangling_shrink_target", func(s string) string {
			return strings.Replace(s, "shrink_target: MainGameMicroScene", "shrink_target: NoSuchScene", 1)
		}, "shrink_target"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.mutate(minimalYAML)))
			if err == nil {
				t.Fatalf("expected an error")
			}
			if !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("expected error mentioning %q, got %v", c.wantErr, err)
			}
		})
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("embedded default failed to load: %v", err)
	}
	if len(cfg.Scenes) == 0 {
		t.Fatalf("embedded default has no scenes")
	}
	// the grow/shrink web must be intact out of the box
	main, ok := cfg.Scenes["MainGameScene"]
	if !ok {
		t.Fatalf("embedded default missing MainGameScene")
	}
	if main.GrowTarget == "" || main.ShrinkTarget == "" {
		t.Fatalf("MainGameScene has no size-change targets: %+v", main)
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := Load("/nonexistent/config.yaml")
	if err != nil {
		t.Fatalf("missing file should fall back to the embedded default: %v", err)
	}
	if cfg == nil || len(cfg.Scenes) == 0 {
		t.Fatalf("fallback config empty")
	}
}

func TestSceneKeysSorted(t *testing.T) {
	cfg, err := Parse([]byte(minimalYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	keys := cfg.SceneKeys()
	want := []string{"MainGameMicroScene", "MainGameScene"}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %v", len(want), keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, keys)
		}
	}
}

func TestFinalScale(t *testing.T) {
	cfg, err := Parse([]byte(minimalYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := cfg.FinalScale("MainGameMicroScene"); got != 0.25 {
		t.Fatalf("expected 0.25, got %v", got)
	}
	if got := cfg.FinalScale("NoSuchScene"); got != 1.0 {
		t.Fatalf("unknown scene should fall back to the default, got %v", got)
	}
}

func TestThemeFor(t *testing.T) {
	cfg, err := Parse([]byte(minimalYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	theme, ok := cfg.ThemeFor("MainGameMicroScene")
	if !ok || theme != procgen.ThemeQuantum {
		t.Fatalf("expected quantum, got (%v, %v)", theme, ok)
	}
	if _, ok := cfg.ThemeFor("NoSuchScene"); ok {
		t.Fatalf("unknown scene reported a theme")
	}
}
