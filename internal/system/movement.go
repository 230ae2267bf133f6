// internal/system/movement.go
package system

import (
	"go-gravitar/internal/entity"
	"go-gravitar/internal/utils"
)

// MotionSystem integrates velocity into position (explicit Euler).
type MotionSystem struct {
	ecs    *entity.ECS
	moving *entity.Group
}

func NewMotionSystem(ecs *entity.ECS) *MotionSystem {
	return &MotionSystem{
		ecs:    ecs,
		moving: ecs.Group(ecs.Velocities, ecs.Renderables),
	}
}

func (s *MotionSystem) Phase() Phase { return PhaseMotion }

func (s *MotionSystem) Update(f *Frame) {
	for id := range s.moving.All() {
		v := s.ecs.Velocities.MustGet(id)
		s.ecs.Renderables.MustGet(id).Move(utils.Vec2{X: v.X, Y: v.Y}.Scale(f.DT))
	}
}
