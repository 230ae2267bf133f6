// internal/app/placement.go
package app

import (
	"errors"
	"fmt"

	"go-gravitar/internal/system"
	"go-gravitar/internal/utils"
)

// ErrPlacementExhausted means a circle could not be placed within the
// allowed number of attempts.
var ErrPlacementExhausted = errors.New("placement attempts exhausted")

type Circle struct {
	Center utils.Vec2
	Radius float64
}

func (c Circle) overlaps(o Circle) bool {
	return system.Collides(c.Center, o.Center, c.Radius, o.Radius)
}

// PlaceCircles places n circles fully inside bounds so that none touches
// another or any of keepOut. radius is drawn once per attempt. Each circle
// gets at most attempts tries.
func PlaceCircles(rng *utils.PRNGService, bounds utils.Rect, n int, radius func() float64, keepOut []Circle, attempts int) ([]Circle, error) {
	placed := make([]Circle, 0, n)

	for i := 0; i < n; i++ {
		c, ok := placeOne(rng, bounds, radius, keepOut, placed, attempts)
		if !ok {
			return nil, fmt.Errorf("circle %d of %d: %w", i+1, n, ErrPlacementExhausted)
		}
		placed = append(placed, c)
	}
	return placed, nil
}

func placeOne(rng *utils.PRNGService, bounds utils.Rect, radius func() float64, keepOut, placed []Circle, attempts int) (Circle, bool) {
	for try := 0; try < attempts; try++ {
		r := radius()
		area := bounds.Inset(r)
		if area.W <= 0 || area.H <= 0 {
			continue
		}
		c := Circle{
			Center: utils.Vec2{X: rng.Range(area.X, area.X+area.W), Y: rng.Range(area.Y, area.Y+area.H)},
			Radius: r,
		}
		if !overlapsAny(c, keepOut) && !overlapsAny(c, placed) {
			return c, true
		}
	}
	return Circle{}, false
}

func overlapsAny(c Circle, others []Circle) bool {
	for _, o := range others {
		if c.overlaps(o) {
			return true
		}
	}
	return false
}

// Fixed returns a radius source that always yields r.
func Fixed(r float64) func() float64 {
	return func() float64 { return r }
}

// Between returns a radius source uniform in [lo, hi).
func Between(rng *utils.PRNGService, lo, hi float64) func() float64 {
	return func() float64 { return rng.Range(lo, hi) }
}
