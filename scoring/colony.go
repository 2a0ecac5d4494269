package scoring

import "github.com/nstehr/orrery/orrery-core/model"

// colonyValue rates one colonization target: big, close and habitable planets
// first.
func colonyValue(m *model.Mission, s *situation) int {
	tx, ty := m.TargetX, m.TargetY
	value := 0
	if target := s.world.Planet(m.TargetPlanet); target != nil {
		tx, ty = target.X, target.Y
		value += target.GroundSize * 2
		if excess := target.Radiation - s.race.MaxRadiation; excess > 0 {
			value -= excess * 10
		}
	}
	value -= model.Distance(s.planet.X, s.planet.Y, tx, ty) / 2

	switch gameLength(s.world) {
	case model.GameStarting:
		value += 20
	case model.GameEarly:
		value += 10
	}
	if s.planet.Focus == model.FocusPopulation {
		value += 10
	}
	return value
}
