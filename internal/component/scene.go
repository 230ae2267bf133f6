package component

import "go-gravitar/internal/types"

// SceneRef marks a portal entity with the scene it leads to.
type SceneRef struct {
	Scene types.SceneID
}

// EntityRef is a typed reference to another entity of the same store. T only
// documents the role of the target; liveness must be checked on use.
type EntityRef[T any] struct {
	Entity types.EntityID
}

// TractorBeam is the player's lock on a bunker.
type TractorBeam = EntityRef[Bunker]
