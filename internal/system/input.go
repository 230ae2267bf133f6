// internal/system/input.go
package system

import (
	"math"

	"go-gravitar/internal/component"
	"go-gravitar/internal/config"
	"go-gravitar/internal/entity"
	"go-gravitar/internal/factory"
	"go-gravitar/internal/input"
	"go-gravitar/internal/types"
	"go-gravitar/internal/utils"
)

// Input bits.
const (
	BitLeft    = 1
	BitRight   = 2
	BitThrust  = 4
	BitReverse = 8
)

type steering struct {
	turn  float64 // fraction of the rotation speed, signed
	speed float64 // speed multiplier
}

var steeringTable = map[int]steering{
	BitLeft:               {turn: -1, speed: 1},
	BitRight:              {turn: 1, speed: 1},
	BitThrust:             {turn: 0, speed: 1.56},
	BitThrust | BitLeft:   {turn: -0.92, speed: 1.32},
	BitThrust | BitRight:  {turn: 0.92, speed: 1.32},
	BitReverse:            {turn: 0, speed: 0.98},
	BitReverse | BitLeft:  {turn: -1.08, speed: 0.68},
	BitReverse | BitRight: {turn: 1.08, speed: 0.68},
}

// InputBits folds the directional controls into a 4-bit pattern.
func InputBits(in input.Snapshot) int {
	bits := 0
	if in.Pressed(input.Left) {
		bits |= BitLeft
	}
	if in.Pressed(input.Right) {
		bits |= BitRight
	}
	if in.Pressed(input.Thrust) {
		bits |= BitThrust
	}
	if in.Pressed(input.Reverse) {
		bits |= BitReverse
	}
	return bits
}

// Steering looks up the turn rate fraction and speed multiplier of a bit
// pattern. ok is false for patterns that fall back to pointer steering.
func Steering(bits int) (turn, speed float64, ok bool) {
	s, ok := steeringTable[bits]
	return s.turn, s.speed, ok
}

// InputSystem turns the input snapshot into rotation, velocity, fuel burn,
// weapon fire and tractor beam locks for the player.
type InputSystem struct {
	ecs     *entity.ECS
	cfg     config.PlayerConfig
	players *entity.Group
	bunkers *entity.Group
}

func NewInputSystem(ecs *entity.ECS, cfg config.PlayerConfig) *InputSystem {
	return &InputSystem{
		ecs:     ecs,
		cfg:     cfg,
		players: ecs.Group(ecs.Players, ecs.Fuels, ecs.Velocities, ecs.ReloadTimes, ecs.HitRadii, ecs.Renderables),
		bunkers: ecs.Group(ecs.Bunkers, ecs.Renderables),
	}
}

func (s *InputSystem) Phase() Phase { return PhaseInput }

type shot struct {
	position utils.Vec2
	rotation float64
}

func (s *InputSystem) Update(f *Frame) {
	var shots []shot
	locks := make(map[types.EntityID]types.EntityID)
	var dropped []types.EntityID

	for id := range s.players.All() {
		r := s.ecs.Renderables.MustGet(id)

		speed := s.cfg.Speed
		if turn, factor, ok := Steering(InputBits(f.Input)); ok {
			r.Rotate(turn * s.cfg.RotationSpeed * f.DT)
			speed *= factor
		} else {
			target := utils.Rotation(r.Position(), f.Input.Cursor())
			shortest := utils.ShortestRotation(r.Rotation(), target)
			r.Rotate(utils.Signum(shortest) * s.cfg.RotationSpeed * f.DT)
		}

		v := utils.FromAngle(r.Rotation(), speed)
		vel := s.ecs.Velocities.MustGet(id)
		vel.X, vel.Y = v.X, v.Y

		s.ecs.Fuels.MustGet(id).Value -= speed * f.DT

		reload := s.ecs.ReloadTimes.MustGet(id)
		reload.Elapse(f.DT)
		if reload.CanShoot() && f.Input.Pressed(input.Fire) {
			reload.Reset()
			offset := config.BulletOffset + s.ecs.HitRadii.MustGet(id).Value
			shots = append(shots, shot{
				position: r.Position().Add(utils.FromAngle(r.Rotation(), offset)),
				rotation: r.Rotation(),
			})
		}

		if beam := s.ecs.TractorBeams.Get(id); beam != nil && !s.ecs.Alive(beam.Entity) {
			dropped = append(dropped, id)
		}
		if f.Input.Pressed(input.Tractor) {
			if target, ok := s.nearestBunker(r.Position()); ok {
				locks[id] = target
			}
		}
	}

	// Spawning and locking change store membership, so they wait until the
	// player group is no longer iterated.
	for _, id := range dropped {
		s.ecs.TractorBeams.Remove(id)
	}
	for id, target := range locks {
		s.ecs.TractorBeams.Set(id, component.TractorBeam{Entity: target})
	}
	for _, sh := range shots {
		factory.NewBullet(s.ecs, sh.position, sh.rotation, s.cfg.BulletSpeed)
	}
}

func (s *InputSystem) nearestBunker(from utils.Vec2) (types.EntityID, bool) {
	best, bestDist := types.NullEntity, math.Inf(1)
	for id := range s.bunkers.All() {
		d := from.Distance(positionOf(s.ecs, id))
		if d <= s.cfg.TractorRange && d < bestDist {
			best, bestDist = id, d
		}
	}
	return best, best != types.NullEntity
}
