// internal/system/utils.go
package system

import (
	"go-gravitar/internal/entity"
	"go-gravitar/internal/types"
	"go-gravitar/internal/utils"
)

// Collides is the circle test shared by every system: centers no farther
// apart than the sum of the radii.
func Collides(posA, posB utils.Vec2, radiusA, radiusB float64) bool {
	return posA.Distance(posB) <= radiusA+radiusB
}

// ApplyDamage takes one health point from id if it has health.
func ApplyDamage(ecs *entity.ECS, id types.EntityID) {
	if h := ecs.Healths.Get(id); h != nil {
		h.Value--
	}
}

// penalize costs the player one health point and puts it back at center.
func penalize(ecs *entity.ECS, player types.EntityID, center utils.Vec2) {
	ApplyDamage(ecs, player)
	ecs.Renderables.MustGet(player).SetPosition(center)
}

func positionOf(ecs *entity.ECS, id types.EntityID) utils.Vec2 {
	return ecs.Renderables.MustGet(id).Position()
}

func radiusOf(ecs *entity.ECS, id types.EntityID) float64 {
	return ecs.HitRadii.MustGet(id).Value
}
