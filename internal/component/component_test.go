package component

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-gravitar/internal/utils"
)

func TestReloadTime(t *testing.T) {
	r := NewReloadTime(1.0)
	r.Elapse(0.4)
	r.Elapse(0.4)
	assert.False(t, r.CanShoot())

	r.Elapse(0.3)
	assert.True(t, r.CanShoot())

	r.Reset()
	assert.False(t, r.CanShoot())
	assert.Zero(t, r.Elapsed())
}

func TestReloadTimeStopsAccumulatingWhenReady(t *testing.T) {
	r := NewReloadTime(0.5)
	r.Elapse(0.6)
	r.Elapse(10)
	assert.InDelta(t, 0.6, r.Elapsed(), 1e-9)
}

func TestHealthAndFuelThresholds(t *testing.T) {
	assert.False(t, Health{Value: 1}.IsDead())
	assert.True(t, Health{Value: 0}.IsDead())
	assert.True(t, Health{Value: -2}.IsDead())

	assert.False(t, Fuel{Value: 0.1}.IsOver())
	assert.True(t, Fuel{Value: 0}.IsOver())
}

func TestRenderableKindIsFixed(t *testing.T) {
	s := NewSprite(nil, image.Rect(0, 0, 16, 8))
	c := NewCircle(4, color.RGBA{})
	r := NewRectangle(10, 2, color.RGBA{})

	assert.Equal(t, ShapeSprite, s.Kind())
	assert.Equal(t, ShapeCircle, c.Kind())
	assert.Equal(t, ShapeRectangle, r.Kind())

	_, ok := c.Sprite()
	assert.False(t, ok)
	circle, ok := c.Circle()
	assert.True(t, ok)
	assert.Equal(t, 4.0, circle.Radius)

	c.Move(utils.Vec2{X: 3})
	c.Rotate(45)
	assert.Equal(t, ShapeCircle, c.Kind())
}

func TestRenderableTransform(t *testing.T) {
	r := NewRectangle(10, 4, color.RGBA{})
	r.SetPosition(utils.Vec2{X: 1, Y: 2})
	r.Move(utils.Vec2{X: 2, Y: -1})
	assert.Equal(t, utils.Vec2{X: 3, Y: 1}, r.Position())

	r.Rotate(350)
	r.Rotate(20)
	assert.InDelta(t, 10, r.Rotation(), 1e-9)
}

func TestHitBoxFollowsOriginAndRotation(t *testing.T) {
	r := NewRectangle(10, 4, color.RGBA{})
	r.CenterOrigin()
	r.SetPosition(utils.Vec2{X: 100, Y: 50})

	box := r.HitBox()
	assert.InDelta(t, 95, box.X, 1e-9)
	assert.InDelta(t, 48, box.Y, 1e-9)
	assert.InDelta(t, 10, box.W, 1e-9)
	assert.InDelta(t, 4, box.H, 1e-9)

	r.SetRotation(90)
	box = r.HitBox()
	assert.InDelta(t, 98, box.X, 1e-9)
	assert.InDelta(t, 45, box.Y, 1e-9)
	assert.InDelta(t, 4, box.W, 1e-9)
	assert.InDelta(t, 10, box.H, 1e-9)
}
