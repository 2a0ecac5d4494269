// Package scoring rates every buildable construction of a planet. Scores are
// integers in [MustNotBuild, MaxSlotScore]; higher is more desirable.
package scoring

import (
	"golang.org/x/exp/constraints"

	"github.com/nstehr/orrery/orrery-core/model"
)

const (
	// MaxSlotScore is the hard ceiling for any score.
	MaxSlotScore = 275
	// MustNotBuild marks a candidate that must never be selected.
	MustNotBuild = -1
	// HighValueScore marks candidates picked uniformly before the lottery runs.
	HighValueScore = 250
)

// Scorer rates candidates for one planet. Implementations are pure: they read
// the planet, realm and world but never change them.
type Scorer interface {
	Name() string
	ScoreAll(candidates []model.Construction, p *model.Planet, realm *model.Realm, world *model.World, nearFleetLimit bool) []int
}

// Standard is used by the weaker AI tiers.
type Standard struct{}

func (Standard) Name() string { return "standard" }

func (Standard) ScoreAll(candidates []model.Construction, p *model.Planet, realm *model.Realm, world *model.World, nearFleetLimit bool) []int {
	return scoreAll(standardTuning, candidates, p, realm, world, nearFleetLimit)
}

// Advanced leans harder on active missions when rating ships.
type Advanced struct{}

func (Advanced) Name() string { return "advanced" }

func (Advanced) ScoreAll(candidates []model.Construction, p *model.Planet, realm *model.Realm, world *model.World, nearFleetLimit bool) []int {
	return scoreAll(advancedTuning, candidates, p, realm, world, nearFleetLimit)
}

// ForDifficulty picks the scorer a realm of the given difficulty uses.
func ForDifficulty(d model.Difficulty) Scorer {
	switch d {
	case model.DifficultyHard, model.DifficultyChallenging:
		return Advanced{}
	default:
		return Standard{}
	}
}

// situation bundles the read-only inputs shared by every rule.
type situation struct {
	planet         *model.Planet
	realm          *model.Realm
	race           *model.Race
	world          *model.World
	nearFleetLimit bool
	tuning         Tuning
}

func scoreAll(t Tuning, candidates []model.Construction, p *model.Planet, realm *model.Realm, world *model.World, nearFleetLimit bool) []int {
	s := &situation{
		planet:         p,
		realm:          realm,
		race:           &realm.Race,
		world:          world,
		nearFleetLimit: nearFleetLimit,
		tuning:         t,
	}
	scores := make([]int, len(candidates))
	for i, c := range candidates {
		scores[i] = s.score(c)
	}
	return scores
}

func (s *situation) score(c model.Construction) int {
	var score int
	switch {
	case c.Building != nil:
		score = scoreBuilding(c.Building, s)
	case c.Ship != nil:
		score = scoreShip(c.Ship, s)
	default:
		return MustNotBuild
	}
	score = timePenalty(score, s.planet.BuildTime(c, s.race), c.IsCitizenBuilding())
	return Clamp(score, MustNotBuild, MaxSlotScore)
}

// timePenalty is applied exactly once per candidate, after every bonus.
func timePenalty(score, turns int, citizen bool) int {
	if score == MustNotBuild {
		return score
	}
	if turns == -1 || turns > 25 {
		return MustNotBuild
	}
	if turns > 15 {
		score /= 2
		if citizen {
			score /= 2
		}
	}
	return score
}

// Clamp restricts v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
