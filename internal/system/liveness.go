// internal/system/liveness.go
package system

import (
	"go-gravitar/internal/entity"
	"go-gravitar/internal/types"
)

// LivenessSystem removes dead entities and watches the win and lose
// conditions. structures is the store whose emptiness ends the scene
// (bunkers in combat, planets in navigation); onCleared is the transition
// requested when that happens.
type LivenessSystem struct {
	ecs        *entity.ECS
	structures entity.Membership
	onCleared  TransitionKind

	players *entity.Group
	bunkers *entity.Group
}

func NewLivenessSystem(ecs *entity.ECS, structures entity.Membership, onCleared TransitionKind) *LivenessSystem {
	return &LivenessSystem{
		ecs:        ecs,
		structures: structures,
		onCleared:  onCleared,
		players:    ecs.Group(ecs.Players, ecs.Healths, ecs.Fuels),
		bunkers:    ecs.Group(ecs.Bunkers, ecs.Healths),
	}
}

func (s *LivenessSystem) Phase() Phase { return PhaseLiveness }

func (s *LivenessSystem) Update(f *Frame) {
	var dead []types.EntityID
	gameOver := false

	for id := range s.players.All() {
		if s.ecs.Healths.MustGet(id).IsDead() || s.ecs.Fuels.MustGet(id).IsOver() {
			dead = append(dead, id)
			gameOver = true
		}
	}
	for id := range s.bunkers.All() {
		if s.ecs.Healths.MustGet(id).IsDead() {
			dead = append(dead, id)
		}
	}
	s.ecs.Destroy(dead...)

	// Game over wins over anything requested earlier in the tick.
	if gameOver {
		f.Transition = Transition{Kind: GameOver}
		return
	}

	f.Remaining = s.structures.Len()
	if f.Remaining == 0 {
		f.Cleared = true
		f.Request(Transition{Kind: s.onCleared})
	}
}
