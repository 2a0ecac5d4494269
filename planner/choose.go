package planner

import (
	"log/slog"

	"github.com/nstehr/orrery/orrery-core/model"
	"github.com/nstehr/orrery/orrery-core/rules"
	"github.com/nstehr/orrery/orrery-core/scoring"
)

// Choose fills the planet's free construction slot: ladder first, scored
// selection second, then mission binding for ships and overflow handling for
// buildings. The result is recorded in d and on the planet.
func (e *Engine) Choose(p *model.Planet, realm *model.Realm, world *model.World, rng Rand, d *Decision) {
	out, rule := e.ladder.Evaluate(rules.LadderEnv{Planet: p, Realm: realm, World: world})
	if out.Mission != nil {
		realm.Missions.Add(out.Mission)
		d.Created = append(d.Created, out.Mission)
	}

	selected, source := out.Pick, rule
	if selected == nil {
		if i := SelectScored(p, realm, world, rng); i >= 0 {
			c := p.Candidates[i]
			selected, source = &c, "scored"
		}
	}
	if selected == nil {
		return
	}

	if selected.IsShip() {
		bound, created := BindShip(selected.Ship, p, realm, rng)
		d.Bound = bound
		if created != nil {
			d.Created = append(d.Created, created)
		}
	} else if !e.makeRoom(p, realm, world, selected.Building, d) {
		slog.Debug("selection cancelled, no room", "planet", p.Name, "building", selected.Name())
		return
	}

	p.UnderConstruction = selected
	p.ProdProgress = 0
	d.Selected, d.Source = selected, source
	slog.Debug("construction selected", "planet", p.Name, "construction", selected.Name(), "source", source)
}

// makeRoom reports whether b fits on the planet, demolishing the worst
// building first when a weak AI realm runs out of ground.
func (e *Engine) makeRoom(p *model.Planet, realm *model.Realm, world *model.World, b *model.Building, d *Decision) bool {
	if p.FreeSlots() >= b.Slots() {
		return true
	}
	// An upgrade replaces its predecessor, so it may reuse that ground.
	if j := p.FindBuilding(b.Upgrades); b.Upgrades != "" && j >= 0 && p.FreeSlots()+p.Buildings[j].Slots() >= b.Slots() {
		return true
	}
	if realm.Human || realm.Difficulty != model.DifficultyWeak {
		return false
	}
	i := WorstBuilding(p, realm, world, b)
	if i < 0 || p.FreeSlots()+p.Buildings[i].Slots() < b.Slots() {
		return false
	}
	removed := p.RemoveBuilding(i)
	d.Removed = removed.Name
	slog.Debug("building demolished", "planet", p.Name, "building", removed.Name, "for", b.Name)
	return true
}

var (
	// indexed by free slots, capped at 4
	lotteryThreshold = [5]int{20, 15, 10, 8, 0}
	highestChance    = [5]int{60, 50, 40, 30, 20}
)

const (
	challengingBestChance = 90
	maxHighestChance      = 90
)

// SelectScored scores every candidate and picks one, returning its index or
// -1 when nothing is worth building.
func SelectScored(p *model.Planet, realm *model.Realm, world *model.World, rng Rand) int {
	if len(p.Candidates) == 0 {
		return -1
	}
	scorer := scoring.ForDifficulty(realm.Difficulty)
	scores := scorer.ScoreAll(p.Candidates, p, realm, world, realm.NearFleetLimit())

	free := min(p.FreeSlots(), 4)
	chance := highestChance[free]
	if realm.Attitude == model.AttitudeLogical || realm.Attitude == model.AttitudeScientific {
		chance = min(chance+20, maxHighestChance)
	}

	if best := bestIndex(scores); best >= 0 {
		if realm.Difficulty == model.DifficultyChallenging && rng.Intn(100) < challengingBestChance {
			return best
		}
		if rng.Intn(100) < chance {
			return best
		}
	}

	var high []int
	for i, s := range scores {
		if s >= scoring.HighValueScore {
			high = append(high, i)
		}
	}
	if len(high) > 0 {
		return high[rng.Intn(len(high))]
	}

	return lottery(p, scores, lotteryThreshold[free], rng)
}

// bestIndex returns the first index of the highest positive score, -1 if none.
func bestIndex(scores []int) int {
	best := -1
	for i, s := range scores {
		if s > 0 && (best < 0 || s > scores[best]) {
			best = i
		}
	}
	return best
}

// lottery draws a candidate with probability proportional to its score.
// Scores of zero or less never enter the draw.
func lottery(p *model.Planet, scores []int, threshold int, rng Rand) int {
	free := p.FreeSlots()
	total := 0
	weights := make([]int, len(scores))
	for i, s := range scores {
		if s <= 0 {
			continue
		}
		c := p.Candidates[i]
		eligible := s >= threshold ||
			(c.IsShip() && free < 4) ||
			(c.IsCitizenBuilding() && free < 3 && p.Population < p.PopulationLimit)
		if eligible {
			weights[i] = s
			total += s
		}
	}
	if total == 0 {
		return -1
	}
	roll := rng.Intn(total)
	for i, w := range weights {
		if roll < w {
			return i
		}
		roll -= w
	}
	return -1
}
