// internal/component/render.go
package component

import (
	"image"
	"image/color"
	"math"

	"go-gravitar/internal/utils"
)

// ShapeKind selects the active variant of a Renderable.
type ShapeKind uint8

const (
	ShapeSprite ShapeKind = iota
	ShapeCircle
	ShapeRectangle
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeSprite:
		return "sprite"
	case ShapeCircle:
		return "circle"
	case ShapeRectangle:
		return "rectangle"
	}
	return "unknown"
}

// Texture is the part of an image a sprite needs; *ebiten.Image satisfies it.
type Texture interface {
	Bounds() image.Rectangle
}

// Sprite is a sub-rectangle of a texture.
type Sprite struct {
	Texture Texture
	Frame   image.Rectangle
}

type Circle struct {
	Radius float64
	Fill   color.RGBA
}

type Rectangle struct {
	Width, Height float64
	Fill          color.RGBA
}

// Renderable owns exactly one drawable shape plus its transform. The kind is
// chosen by the constructor and never changes afterwards.
type Renderable struct {
	kind   ShapeKind
	sprite Sprite
	circle Circle
	rect   Rectangle

	position utils.Vec2
	origin   utils.Vec2
	rotation float64 // degrees
}

func NewSprite(texture Texture, frame image.Rectangle) Renderable {
	return Renderable{kind: ShapeSprite, sprite: Sprite{Texture: texture, Frame: frame}}
}

func NewCircle(radius float64, fill color.RGBA) Renderable {
	return Renderable{kind: ShapeCircle, circle: Circle{Radius: radius, Fill: fill}}
}

func NewRectangle(width, height float64, fill color.RGBA) Renderable {
	return Renderable{kind: ShapeRectangle, rect: Rectangle{Width: width, Height: height, Fill: fill}}
}

func (r *Renderable) Kind() ShapeKind { return r.kind }

func (r *Renderable) Sprite() (Sprite, bool)       { return r.sprite, r.kind == ShapeSprite }
func (r *Renderable) Circle() (Circle, bool)       { return r.circle, r.kind == ShapeCircle }
func (r *Renderable) Rectangle() (Rectangle, bool) { return r.rect, r.kind == ShapeRectangle }

// Size returns the untransformed local bounds of the shape.
func (r *Renderable) Size() (w, h float64) {
	switch r.kind {
	case ShapeSprite:
		return float64(r.sprite.Frame.Dx()), float64(r.sprite.Frame.Dy())
	case ShapeCircle:
		return 2 * r.circle.Radius, 2 * r.circle.Radius
	default:
		return r.rect.Width, r.rect.Height
	}
}

// CenterOrigin makes the position refer to the middle of the shape.
func (r *Renderable) CenterOrigin() {
	w, h := r.Size()
	r.origin = utils.Vec2{X: w / 2, Y: h / 2}
}

func (r *Renderable) Origin() utils.Vec2 { return r.origin }

func (r *Renderable) Move(offset utils.Vec2)   { r.position = r.position.Add(offset) }
func (r *Renderable) SetPosition(p utils.Vec2) { r.position = p }
func (r *Renderable) Position() utils.Vec2     { return r.position }

func (r *Renderable) Rotate(degrees float64)      { r.rotation = math.Mod(r.rotation+degrees, 360) }
func (r *Renderable) SetRotation(degrees float64) { r.rotation = math.Mod(degrees, 360) }
func (r *Renderable) Rotation() float64           { return r.rotation }

// HitBox returns the axis-aligned bounds of the transformed shape.
func (r *Renderable) HitBox() utils.Rect {
	w, h := r.Size()
	corners := [4]utils.Vec2{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}}

	rad := r.rotation * math.Pi / 180
	sin, cos := math.Sincos(rad)

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		local := c.Sub(r.origin)
		x := r.position.X + local.X*cos - local.Y*sin
		y := r.position.Y + local.X*sin + local.Y*cos
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	return utils.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
