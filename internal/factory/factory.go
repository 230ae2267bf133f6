// internal/factory/factory.go
package factory

import (
	"image/color"
	"math"

	"go-gravitar/internal/component"
	"go-gravitar/internal/config"
	"go-gravitar/internal/entity"
	"go-gravitar/internal/types"
	"go-gravitar/internal/utils"
)

// Sheet ids understood by every SpriteSource.
const (
	SheetShip    = "ship"
	SheetBunker  = "bunker"
	SheetTerrain = "terrain"
)

// SpriteSource hands out sprite renderables by sheet id and frame.
type SpriteSource interface {
	Sprite(sheet string, frame int) component.Renderable
}

// Every helper below attaches the Renderable last so a half-built entity is
// never matched by a view over Renderable.

func radiusOf(r component.Renderable) float64 {
	w, h := r.Size()
	return math.Max(w/2, h/2)
}

// NewPlayer spawns the ship at pos facing right.
func NewPlayer(ecs *entity.ECS, sprites SpriteSource, pos utils.Vec2, cfg config.PlayerConfig) types.EntityID {
	r := sprites.Sprite(SheetShip, 0)
	r.CenterOrigin()
	r.SetPosition(pos)

	id := ecs.Create()
	ecs.Players.Add(id)
	ecs.Healths.Set(id, component.Health{Value: cfg.Health})
	ecs.Fuels.Set(id, component.Fuel{Value: cfg.Fuel})
	ecs.Velocities.Add(id)
	ecs.ReloadTimes.Set(id, component.NewReloadTime(cfg.ReloadSeconds))
	ecs.HitRadii.Set(id, component.HitRadius{Value: radiusOf(r)})
	ecs.Renderables.Set(id, r)
	return id
}

// NewBullet spawns a bullet at pos travelling along rotation.
func NewBullet(ecs *entity.ECS, pos utils.Vec2, rotation, speed float64) types.EntityID {
	r := component.NewCircle(config.BulletRadius, config.ReportColor)
	r.CenterOrigin()
	r.SetPosition(pos)
	r.SetRotation(rotation)

	v := utils.FromAngle(rotation, speed)

	id := ecs.Create()
	ecs.Bullets.Add(id)
	ecs.Velocities.Set(id, component.Velocity{X: v.X, Y: v.Y})
	ecs.HitRadii.Set(id, component.HitRadius{Value: config.BulletRadius})
	ecs.Renderables.Set(id, r)
	return id
}

// NewBunker spawns a hostile structure pointing up.
func NewBunker(ecs *entity.ECS, sprites SpriteSource, pos utils.Vec2, health int) types.EntityID {
	r := sprites.Sprite(SheetBunker, 0)
	r.CenterOrigin()
	r.SetPosition(pos)
	r.Rotate(-90)

	id := ecs.Create()
	ecs.Bunkers.Add(id)
	ecs.Healths.Set(id, component.Health{Value: health})
	ecs.HitRadii.Set(id, component.HitRadius{Value: radiusOf(r)})
	ecs.Renderables.Set(id, r)
	return id
}

func NewTerrain(ecs *entity.ECS, sprites SpriteSource, pos utils.Vec2, rotation float64) types.EntityID {
	r := sprites.Sprite(SheetTerrain, 0)
	r.CenterOrigin()
	r.SetPosition(pos)
	r.Rotate(rotation)

	id := ecs.Create()
	ecs.Terrains.Add(id)
	ecs.HitRadii.Set(id, component.HitRadius{Value: radiusOf(r)})
	ecs.Renderables.Set(id, r)
	return id
}

// NewGround lays a strip of the given height along the bottom of viewport.
// Ground collides by hit box, so it carries no HitRadius.
func NewGround(ecs *entity.ECS, viewport utils.Rect, height float64) types.EntityID {
	r := component.NewRectangle(viewport.W, height, config.GroundColor)
	r.SetPosition(utils.Vec2{X: viewport.X, Y: viewport.Y + viewport.H - height})

	id := ecs.Create()
	ecs.Grounds.Add(id)
	ecs.Renderables.Set(id, r)
	return id
}

// NewPlanet spawns a portal to scene.
func NewPlanet(ecs *entity.ECS, pos utils.Vec2, radius float64, fill color.RGBA, scene types.SceneID) types.EntityID {
	r := component.NewCircle(radius, fill)
	r.CenterOrigin()
	r.SetPosition(pos)

	id := ecs.Create()
	ecs.Planets.Add(id)
	ecs.SceneRefs.Set(id, component.SceneRef{Scene: scene})
	ecs.HitRadii.Set(id, component.HitRadius{Value: radius})
	ecs.Renderables.Set(id, r)
	return id
}
