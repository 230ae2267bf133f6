// internal/ui/blinking_label.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"go-gravitar/internal/utils"
)

const minBlinkAlpha = 40

// BlinkingLabel fades its text in and out rate times per second.
type BlinkingLabel struct {
	*Label
	Text    string
	rate    float64
	elapsed float64
}

func NewBlinkingLabel(x, y float64, face font.Face, c color.RGBA, s string, rate float64) *BlinkingLabel {
	return &BlinkingLabel{Label: NewLabel(x, y, face, c), Text: s, rate: rate}
}

func (b *BlinkingLabel) Update(dt float64) {
	b.elapsed += dt
}

func (b *BlinkingLabel) Reset() {
	b.elapsed = 0
}

// Alpha is the current opacity, between minBlinkAlpha and 255.
func (b *BlinkingLabel) Alpha() uint8 {
	phase := (1 + math.Cos(2*math.Pi*b.rate*b.elapsed)) / 2
	return uint8(math.Round(utils.Lerp(minBlinkAlpha, 255, phase)))
}

func (b *BlinkingLabel) Draw(screen *ebiten.Image) {
	c := color.RGBAModel.Convert(b.Color).(color.RGBA)
	a := b.Alpha()
	// Premultiplied alpha.
	c = color.RGBA{
		R: uint8(uint16(c.R) * uint16(a) / 255),
		G: uint8(uint16(c.G) * uint16(a) / 255),
		B: uint8(uint16(c.B) * uint16(a) / 255),
		A: a,
	}
	b.draw(screen, b.Text, c)
}
