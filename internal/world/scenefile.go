package world

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type SceneFile struct {
	Settings Settings    `json:"settings"`
	Globe    GlobeDef    `json:"globe"`
	Targets  []TargetDef `json:"targets,omitempty"`
}

// Settings are the host-supplied constants of a run.
type Settings struct {
	DwellMs         int     `json:"dwellMs"`
	MarkerScale     float32 `json:"markerScale"`
	TargetCount     int     `json:"targetCount"`
	GlobeRadius     float32 `json:"globeRadius"`
	TargetHeight    float32 `json:"targetHeight"`
	TargetRadiusMin int     `json:"targetRadiusMin"`
	TargetRadiusMax int     `json:"targetRadiusMax"`
	Seed            int64   `json:"seed,omitempty"` // 0 = seed from the clock
	CameraDistance  float32 `json:"cameraDistance"`
	MinDistance     float32 `json:"minDistance"`
	MaxDistance     float32 `json:"maxDistance"`
}

type GlobeDef struct {
	Color     string      `json:"color,omitempty"`
	Wireframe *bool       `json:"wireframe,omitempty"`
	Layers    []string    `json:"layers,omitempty"` // empty = surface
	Scripts   []scriptDef `json:"scripts,omitempty"`
}

type TargetDef struct {
	Name   string  `json:"name,omitempty"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Radius float32 `json:"radius,omitempty"`
	Color  string  `json:"color,omitempty"`
}

type scriptDef struct {
	Name  string         `json:"name"`
	Props map[string]any `json:"props,omitempty"`
}

const (
	defaultGlobeRadius = 15
	defaultGlobeColor  = "Orange"
	defaultTargetColor = "SkyBlue"
	capturedColor      = "Lime"
)

func DefaultSettings() Settings {
	return Settings{
		DwellMs:         1000,
		MarkerScale:     1.1,
		TargetCount:     10,
		GlobeRadius:     defaultGlobeRadius,
		TargetHeight:    0,
		TargetRadiusMin: 1,
		TargetRadiusMax: 2,
		CameraDistance:  50,
		MinDistance:     2 * defaultGlobeRadius,
		MaxDistance:     100,
	}
}

// DefaultSceneFile is used when no scene file exists.
func DefaultSceneFile() SceneFile {
	return SceneFile{
		Settings: DefaultSettings(),
		Globe: GlobeDef{
			Color: defaultGlobeColor,
			Scripts: []scriptDef{
				{Name: "Rotator", Props: map[string]any{"speed": float64(4)}},
			},
		},
	}
}

// Dwell returns the dwell duration.
func (s Settings) Dwell() time.Duration {
	return time.Duration(s.DwellMs) * time.Millisecond
}

// applyDefaults fills every zero or invalid field from DefaultSettings.
func (s *Settings) applyDefaults() {
	d := DefaultSettings()
	if s.DwellMs <= 0 {
		s.DwellMs = d.DwellMs
	}
	if s.MarkerScale <= 0 {
		s.MarkerScale = d.MarkerScale
	}
	if s.TargetCount <= 0 {
		s.TargetCount = d.TargetCount
	}
	if s.GlobeRadius <= 0 {
		s.GlobeRadius = d.GlobeRadius
	}
	if s.TargetRadiusMin <= 0 {
		s.TargetRadiusMin = d.TargetRadiusMin
	}
	if s.TargetRadiusMax < s.TargetRadiusMin {
		s.TargetRadiusMax = s.TargetRadiusMin
	}
	if s.CameraDistance <= 0 {
		s.CameraDistance = d.CameraDistance
	}
	if s.MinDistance <= 0 {
		s.MinDistance = 2 * s.GlobeRadius
	}
	if s.MaxDistance < s.MinDistance {
		s.MaxDistance = max(d.MaxDistance, s.MinDistance)
	}
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Gold":      rl.Gold,
	"Maroon":    rl.Maroon,
}

func lookupColor(name, fallback string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return colorByName[fallback]
}

// --- Loading ---

// LoadSceneFile reads and parses a scene file. The error wraps the
// underlying cause, so callers can check for fs.ErrNotExist.
func LoadSceneFile(path string) (SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SceneFile{}, fmt.Errorf("read scene: %w", err)
	}
	return ParseSceneFile(data)
}

// ParseSceneFile decodes a scene file and fills in missing settings.
func ParseSceneFile(data []byte) (SceneFile, error) {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return SceneFile{}, fmt.Errorf("parse scene: %w", err)
	}
	sf.Settings.applyDefaults()
	if sf.Globe.Color == "" {
		sf.Globe.Color = defaultGlobeColor
	}
	return sf, nil
}
