// internal/assets/fonts.go
package assets

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
)

type FontID int

const (
	FontMechanical FontID = iota // HUD report
	FontTitle
	FontLabel
)

var fontSizes = map[FontID]float64{
	FontMechanical: 18,
	FontTitle:      48,
	FontLabel:      16,
}

// Fonts holds one face per FontID.
type Fonts struct {
	faces map[FontID]font.Face
}

// LoadFonts builds the faces from the bundled Go Mono Bold font.
func LoadFonts() (*Fonts, error) {
	tt, err := opentype.Parse(gomonobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	f := &Fonts{faces: make(map[FontID]font.Face, len(fontSizes))}
	for id, size := range fontSizes {
		face, err := opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("font %d at %vpt: %w", id, size, err)
		}
		f.faces[id] = face
	}
	return f, nil
}

// Face returns the face for id, or the fixed 7x13 face if id is unknown.
func (f *Fonts) Face(id FontID) font.Face {
	if f != nil {
		if face, ok := f.faces[id]; ok {
			return face
		}
	}
	return basicfont.Face7x13
}
