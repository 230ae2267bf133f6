// internal/ui/label.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// Label draws one line of text centered on X with its top at Y.
type Label struct {
	X, Y  float64
	Color color.Color
	face  font.Face
}

func NewLabel(x, y float64, face font.Face, c color.Color) *Label {
	return &Label{X: x, Y: y, Color: c, face: face}
}

func (l *Label) Draw(screen *ebiten.Image, s string) {
	l.draw(screen, s, l.Color)
}

func (l *Label) draw(screen *ebiten.Image, s string, c color.Color) {
	if s == "" {
		return
	}
	bounds := text.BoundString(l.face, s)
	x := int(l.X) - bounds.Dx()/2
	y := int(l.Y) - bounds.Min.Y
	text.Draw(screen, s, l.face, x, y, c)
}
