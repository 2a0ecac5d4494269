package planner

import (
	"github.com/nstehr/orrery/orrery-core/model"
	"github.com/nstehr/orrery/orrery-core/scoring"
)

const (
	wildlifePenalty = 50
	upgradePenalty  = 80
)

// WorstBuilding returns the index of the building to demolish to make room
// for pending, or -1 when there is none. The spaceport is never chosen.
// Buildings of pending's type lose 80 per point of bonus the new one adds.
func WorstBuilding(p *model.Planet, realm *model.Realm, world *model.World, pending *model.Building) int {
	if len(p.Buildings) == 0 {
		return -1
	}
	existing := make([]model.Construction, len(p.Buildings))
	for i, b := range p.Buildings {
		existing[i] = model.BuildingConstruction(b)
	}
	scores := scoring.Standard{}.ScoreAll(existing, p, realm, world, realm.NearFleetLimit())

	worst, worstScore := -1, 0
	for i, b := range p.Buildings {
		if b.Type == model.BuildingSpaceport {
			continue
		}
		s := scores[i]
		if b.Wildlife {
			s -= wildlifePenalty
		}
		if pending != nil && pending.Type == b.Type {
			if gain := pending.BonusTotal() - b.BonusTotal(); gain > 0 {
				s -= upgradePenalty * gain
			}
		}
		if worst < 0 || s < worstScore {
			worst, worstScore = i, s
		}
	}
	return worst
}
