package assets

import (
	"math"

	"go-gravitar/internal/utils"
)

const domeSegments = 10

// Outline returns the convex polygon drawn for one frame of a shape, in frame
// local coordinates. Shapes face right, the direction of rotation 0.
func Outline(shape string, w, h float64, frame int) []utils.Vec2 {
	switch shape {
	case ShapeTriangle:
		return []utils.Vec2{{X: 0, Y: 0}, {X: w, Y: h / 2}, {X: 0, Y: h}}
	case ShapeDome:
		pts := make([]utils.Vec2, 0, domeSegments+1)
		for i := 0; i <= domeSegments; i++ {
			a := math.Pi + math.Pi*float64(i)/domeSegments
			pts = append(pts, utils.Vec2{X: w/2 + math.Cos(a)*w/2, Y: h + math.Sin(a)*h})
		}
		return pts
	case ShapeDiamond:
		if frame%2 == 1 {
			// A flattened rock for odd frames.
			return []utils.Vec2{
				{X: w * 0.2, Y: h * 0.1}, {X: w * 0.8, Y: 0}, {X: w, Y: h * 0.6},
				{X: w * 0.6, Y: h}, {X: 0, Y: h * 0.7},
			}
		}
		return []utils.Vec2{{X: w / 2, Y: 0}, {X: w, Y: h / 2}, {X: w / 2, Y: h}, {X: 0, Y: h / 2}}
	}
	return nil
}
