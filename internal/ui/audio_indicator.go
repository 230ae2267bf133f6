// internal/ui/audio_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var (
	audioActiveColor   = color.RGBA{200, 200, 200, 255}
	audioInactiveColor = color.RGBA{110, 110, 110, 255}
	audioStrikeColor   = color.RGBA{235, 90, 80, 255}
)

// AudioIndicator shows whether the soundtrack is on; muted audio is struck
// through.
type AudioIndicator struct {
	X, Y float64
	face font.Face
}

func NewAudioIndicator(x, y float64, face font.Face) *AudioIndicator {
	return &AudioIndicator{X: x, Y: y, face: face}
}

func (i *AudioIndicator) Draw(screen *ebiten.Image, enabled bool) {
	const label = "SND"
	c := audioInactiveColor
	if enabled {
		c = audioActiveColor
	}

	b := text.BoundString(i.face, label)
	left, top := int(i.X)-b.Dx()/2, int(i.Y)-b.Dy()/2
	text.Draw(screen, label, i.face, left, top-b.Min.Y, c)

	if !enabled {
		vector.StrokeLine(screen,
			float32(left), float32(top+b.Dy()),
			float32(left+b.Dx()), float32(top),
			2, audioStrikeColor, true)
	}
}
