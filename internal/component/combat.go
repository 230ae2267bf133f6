package component

// Health is integer hit points.
type Health struct {
	Value int
}

func (h Health) IsDead() bool {
	return h.Value <= 0
}

// Fuel is burnt by the input system proportionally to the ship speed.
type Fuel struct {
	Value float64
}

func (f Fuel) IsOver() bool {
	return f.Value <= 0
}

// HitRadius is the circular collision extent around the entity position.
type HitRadius struct {
	Value float64
}

// ReloadTime gates weapon fire. The elapsed time only grows, and stops
// growing once the threshold is reached, until Reset.
type ReloadTime struct {
	elapsed   float64
	threshold float64
}

func NewReloadTime(threshold float64) ReloadTime {
	return ReloadTime{threshold: threshold}
}

func (r *ReloadTime) Elapse(seconds float64) {
	if !r.CanShoot() {
		r.elapsed += seconds
	}
}

func (r *ReloadTime) Reset() {
	r.elapsed = 0
}

func (r ReloadTime) CanShoot() bool {
	return r.elapsed >= r.threshold
}

func (r ReloadTime) Elapsed() float64   { return r.elapsed }
func (r ReloadTime) Threshold() float64 { return r.threshold }
