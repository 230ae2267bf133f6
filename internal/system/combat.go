// internal/system/combat.go
package system

import (
	"go-gravitar/internal/entity"
	"go-gravitar/internal/types"
	"go-gravitar/internal/utils"
)

// LeavePolicy decides what happens when the player flies out of the viewport.
type LeavePolicy int

const (
	// LeavePenalize costs one health point (navigation).
	LeavePenalize LeavePolicy = iota
	// LeaveExit asks to go back to the parent scene (combat).
	LeaveExit
)

// CollisionSystem resolves viewport exits, portal contacts, bullet hits and
// player crashes. The player is put back at the viewport center in every case
// that moves it.
type CollisionSystem struct {
	ecs    *entity.ECS
	policy LeavePolicy

	players   *entity.Group
	bullets   *entity.Group
	solids    *entity.Group
	planets   *entity.Group
	obstacles []*entity.Group
	grounds   *entity.Group
}

func NewCollisionSystem(ecs *entity.ECS, policy LeavePolicy) *CollisionSystem {
	return &CollisionSystem{
		ecs:     ecs,
		policy:  policy,
		players: ecs.Group(ecs.Players, ecs.HitRadii, ecs.Renderables),
		bullets: ecs.Group(ecs.Bullets, ecs.HitRadii, ecs.Renderables),
		solids:  ecs.Group(ecs.HitRadii, ecs.Renderables),
		planets: ecs.Group(ecs.Planets, ecs.SceneRefs, ecs.HitRadii, ecs.Renderables),
		obstacles: []*entity.Group{
			ecs.Group(ecs.Terrains, ecs.HitRadii, ecs.Renderables),
			ecs.Group(ecs.Bunkers, ecs.HitRadii, ecs.Renderables),
		},
		grounds: ecs.Group(ecs.Grounds, ecs.Renderables),
	}
}

func (s *CollisionSystem) Phase() Phase { return PhaseCollision }

func (s *CollisionSystem) Update(f *Frame) {
	center := f.Viewport.Center()

	if s.leaveViewport(f, center) {
		return
	}
	s.enterPlanet(f)
	s.resolveBullets(f)
	s.crashPlayers(center)
}

// leaveViewport reports whether the player asked to leave the scene.
func (s *CollisionSystem) leaveViewport(f *Frame, center utils.Vec2) bool {
	for id := range s.players.All() {
		r := s.ecs.Renderables.MustGet(id)
		if f.Viewport.Contains(r.Position()) {
			continue
		}
		switch s.policy {
		case LeavePenalize:
			penalize(s.ecs, id, center)
		case LeaveExit:
			r.SetPosition(center)
			if f.Request(Transition{Kind: Leave}) {
				return true
			}
		}
	}
	return false
}

// enterPlanet requests a portal for the first planet the player touches.
func (s *CollisionSystem) enterPlanet(f *Frame) {
	if f.Requested() {
		return
	}
	for player := range s.players.All() {
		pos, radius := positionOf(s.ecs, player), radiusOf(s.ecs, player)
		for planet := range s.planets.All() {
			if !Collides(pos, positionOf(s.ecs, planet), radius, radiusOf(s.ecs, planet)) {
				continue
			}
			f.Request(Transition{Kind: Portal, Scene: s.ecs.SceneRefs.MustGet(planet).Scene})
			return
		}
	}
}

// resolveBullets consumes bullets that left the viewport or hit something.
// A hit player or bunker loses one health point.
func (s *CollisionSystem) resolveBullets(f *Frame) {
	var spent []types.EntityID
	for bullet := range s.bullets.All() {
		pos := positionOf(s.ecs, bullet)
		if !f.Viewport.Contains(pos) {
			spent = append(spent, bullet)
			continue
		}
		radius := radiusOf(s.ecs, bullet)
		for other := range s.solids.All() {
			if other == bullet || !Collides(pos, positionOf(s.ecs, other), radius, radiusOf(s.ecs, other)) {
				continue
			}
			spent = append(spent, bullet)
			if s.ecs.Players.Has(other) || s.ecs.Bunkers.Has(other) {
				ApplyDamage(s.ecs, other)
			}
			break
		}
	}
	s.ecs.Destroy(spent...)
}

// crashPlayers handles the player touching terrain, bunkers or the ground.
func (s *CollisionSystem) crashPlayers(center utils.Vec2) {
	for player := range s.players.All() {
		r := s.ecs.Renderables.MustGet(player)
		radius := radiusOf(s.ecs, player)

		for _, obstacles := range s.obstacles {
			for id := range obstacles.All() {
				if Collides(r.Position(), positionOf(s.ecs, id), radius, radiusOf(s.ecs, id)) {
					penalize(s.ecs, player, center)
				}
			}
		}
		for id := range s.grounds.All() {
			if s.ecs.Renderables.MustGet(id).HitBox().Intersects(r.HitBox()) {
				penalize(s.ecs, player, center)
			}
		}
	}
}
