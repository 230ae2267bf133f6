// internal/component/movement.go
package component

// Velocity is the displacement per second applied by the motion system.
type Velocity struct {
	X, Y float64
}
