package event

import (
	"go-gravitar/internal/entity"
	"go-gravitar/internal/types"
	"go-gravitar/internal/utils"
)

// PlanetEntered is sent by the solar system when the player touches a planet.
// Source is only valid for the duration of the dispatch.
type PlanetEntered struct {
	Scene    types.SceneID // planet assault to activate
	Source   *entity.ECS
	Viewport utils.Rect
}

// PlanetExited is sent by a planet assault handing the player back to its
// parent scene.
type PlanetExited struct {
	From     types.SceneID
	Scene    types.SceneID // destination
	Source   *entity.ECS
	Viewport utils.Rect
}

// PlanetDestroyed is sent once every bunker of a planet assault is gone.
type PlanetDestroyed struct {
	Scene types.SceneID // the cleared planet assault
}
