// internal/system/report.go
package system

import (
	"fmt"

	"go-gravitar/internal/entity"
)

// ReportSystem projects the player state into the HUD line.
type ReportSystem struct {
	ecs     *entity.ECS
	players *entity.Group
}

func NewReportSystem(ecs *entity.ECS) *ReportSystem {
	return &ReportSystem{
		ecs:     ecs,
		players: ecs.Group(ecs.Players, ecs.Healths, ecs.Fuels),
	}
}

func (s *ReportSystem) Phase() Phase { return PhaseReport }

func (s *ReportSystem) Update(f *Frame) {
	f.Report = ""
	if id, ok := s.players.First(); ok {
		f.Report = Report(s.ecs.Healths.MustGet(id).Value, s.ecs.Fuels.MustGet(id).Value)
	}
}

// Report formats the HUD line, fuel rounded to an integer.
func Report(health int, fuel float64) string {
	return fmt.Sprintf("health: %d fuel: %.0f", health, fuel)
}
