// internal/assets/manifest.go
package assets

import (
	_ "embed"
	"fmt"
	"image/color"

	"gopkg.in/yaml.v3"
)

//go:embed manifest.yaml
var defaultManifest []byte

// Shapes the atlas knows how to draw.
const (
	ShapeTriangle = "triangle"
	ShapeDome     = "dome"
	ShapeDiamond  = "diamond"
)

type Manifest struct {
	Sheets []SheetSpec `yaml:"sheets"`
}

type SheetSpec struct {
	ID     string `yaml:"id"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Frames int    `yaml:"frames"`
	Shape  string `yaml:"shape"`
	Color  []int  `yaml:"color"` // r, g, b[, a]
}

// RGBA converts the color list, defaulting alpha to opaque.
func (s SheetSpec) RGBA() color.RGBA {
	c := color.RGBA{A: 255}
	channels := []*uint8{&c.R, &c.G, &c.B, &c.A}
	for i, v := range s.Color {
		*channels[i] = uint8(v)
	}
	return c
}

func (s SheetSpec) validate() error {
	switch {
	case s.ID == "":
		return fmt.Errorf("sheet without id")
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("sheet %q: frame %dx%d: %w", s.ID, s.Width, s.Height, ErrBadDimensions)
	case s.Frames <= 0:
		return fmt.Errorf("sheet %q: %d frames: %w", s.ID, s.Frames, ErrBadDimensions)
	case len(s.Color) != 3 && len(s.Color) != 4:
		return fmt.Errorf("sheet %q: color needs 3 or 4 channels, got %d", s.ID, len(s.Color))
	}
	for _, v := range s.Color {
		if v < 0 || v > 255 {
			return fmt.Errorf("sheet %q: color channel %d out of range", s.ID, v)
		}
	}
	switch s.Shape {
	case ShapeTriangle, ShapeDome, ShapeDiamond:
		return nil
	}
	return fmt.Errorf("sheet %q: unknown shape %q", s.ID, s.Shape)
}

// ParseManifest decodes and validates a YAML manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	seen := make(map[string]bool, len(m.Sheets))
	for _, s := range m.Sheets {
		if err := s.validate(); err != nil {
			return nil, err
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("sheet %q declared twice", s.ID)
		}
		seen[s.ID] = true
	}
	return &m, nil
}

// DefaultManifest returns the manifest embedded in the binary.
func DefaultManifest() (*Manifest, error) {
	return ParseManifest(defaultManifest)
}
