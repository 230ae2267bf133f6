package component

// Zero-data tags distinguishing entity roles.
type (
	Player  struct{}
	Bunker  struct{}
	Bullet  struct{}
	Terrain struct{}
	Planet  struct{}
	Ground  struct{}
)
