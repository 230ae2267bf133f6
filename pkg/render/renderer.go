// pkg/render/renderer.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-gravitar/internal/component"
	"go-gravitar/internal/entity"
	"go-gravitar/internal/utils"
)

// Renderer draws the renderables of an entity store. It dispatches on the
// shape kind; the store never knows how it is drawn.
type Renderer struct {
	Debug   bool
	palette Palette
	pixel   *ebiten.Image
}

func NewRenderer(palette Palette, debug bool) *Renderer {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Renderer{Debug: debug, palette: palette, pixel: pixel}
}

// DrawWorld draws every renderable in store order, then the tractor beams.
func (r *Renderer) DrawWorld(screen *ebiten.Image, ecs *entity.ECS) {
	for id := range ecs.View(ecs.Renderables).All() {
		rend := ecs.Renderables.MustGet(id)
		r.Draw(screen, rend)

		if !r.Debug {
			continue
		}
		if hr := ecs.HitRadii.Get(id); hr != nil {
			p := rend.Position()
			vector.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(hr.Value), 1, r.palette.HitCircle, true)
		} else {
			box := rend.HitBox()
			vector.StrokeRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), 1, r.palette.HitBox, false)
		}
	}

	for id := range ecs.View(ecs.TractorBeams, ecs.Renderables).All() {
		target := ecs.TractorBeams.MustGet(id).Entity
		if !ecs.Alive(target) || !ecs.Renderables.Has(target) {
			continue
		}
		from, to := ecs.Renderables.MustGet(id).Position(), ecs.Renderables.MustGet(target).Position()
		vector.StrokeLine(screen, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), 2, r.palette.Tractor, true)
	}
}

// Draw draws a single renderable with its transform.
func (r *Renderer) Draw(screen *ebiten.Image, rend *component.Renderable) {
	switch rend.Kind() {
	case component.ShapeSprite:
		sp, _ := rend.Sprite()
		img, ok := sp.Texture.(*ebiten.Image)
		if !ok {
			return
		}
		op := &ebiten.DrawImageOptions{}
		r.transform(&op.GeoM, rend)
		screen.DrawImage(img.SubImage(sp.Frame).(*ebiten.Image), op)

	case component.ShapeCircle:
		c, _ := rend.Circle()
		center := localToWorld(rend, utils.Vec2{X: c.Radius, Y: c.Radius})
		vector.DrawFilledCircle(screen, float32(center.X), float32(center.Y), float32(c.Radius), c.Fill, true)

	case component.ShapeRectangle:
		rc, _ := rend.Rectangle()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(rc.Width, rc.Height)
		r.transform(&op.GeoM, rend)
		op.ColorScale.ScaleWithColor(rc.Fill)
		screen.DrawImage(r.pixel, op)
	}
}

func (r *Renderer) transform(g *ebiten.GeoM, rend *component.Renderable) {
	o, p := rend.Origin(), rend.Position()
	g.Translate(-o.X, -o.Y)
	g.Rotate(rend.Rotation() * math.Pi / 180)
	g.Translate(p.X, p.Y)
}

// localToWorld maps a point of the untransformed shape to screen space.
func localToWorld(rend *component.Renderable, local utils.Vec2) utils.Vec2 {
	d := local.Sub(rend.Origin())
	sin, cos := math.Sincos(rend.Rotation() * math.Pi / 180)
	return rend.Position().Add(utils.Vec2{X: d.X*cos - d.Y*sin, Y: d.X*sin + d.Y*cos})
}
