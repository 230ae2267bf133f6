// internal/ui/player_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	healthCellWidth  = 14
	healthCellHeight = 8
	healthCellGap    = 4
	fuelBarWidth     = 120
	fuelBarHeight    = 6
	borderWidth      = 1
)

var (
	cellColorFill = color.RGBA{105, 235, 245, 220}
	fuelColorFill = color.RGBA{230, 200, 90, 220}
	borderColor   = color.White
)

// PlayerIndicator shows the remaining health as cells and the fuel tank as a
// bar under them.
type PlayerIndicator struct {
	X, Y      float32
	MaxHealth int
	Capacity  float64
}

func NewPlayerIndicator(x, y float32, maxHealth int, capacity float64) *PlayerIndicator {
	return &PlayerIndicator{X: x, Y: y, MaxHealth: maxHealth, Capacity: capacity}
}

// FuelRatio is fuel over capacity clamped to [0, 1].
func FuelRatio(fuel, capacity float64) float64 {
	if capacity <= 0 {
		return 0
	}
	r := fuel / capacity
	switch {
	case r < 0:
		return 0
	case r > 1:
		return 1
	}
	return r
}

func (i *PlayerIndicator) Draw(screen *ebiten.Image, health int, fuel float64) {
	for j := 0; j < i.MaxHealth; j++ {
		x := i.X + float32(j)*(healthCellWidth+healthCellGap)
		vector.StrokeRect(screen, x, i.Y, healthCellWidth, healthCellHeight, borderWidth, borderColor, true)
		if j < health {
			vector.DrawFilledRect(screen, x+borderWidth, i.Y+borderWidth, healthCellWidth-borderWidth*2, healthCellHeight-borderWidth*2, cellColorFill, true)
		}
	}

	barY := i.Y + healthCellHeight + 6
	vector.StrokeRect(screen, i.X, barY, fuelBarWidth, fuelBarHeight, borderWidth, borderColor, true)
	if w := float32(float64(fuelBarWidth-borderWidth*2) * FuelRatio(fuel, i.Capacity)); w > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, barY+borderWidth, w, fuelBarHeight-borderWidth*2, fuelColorFill, true)
	}
}
