package model

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

type MissionType string

const (
	MissionDefend             MissionType = "defend"
	MissionAttack             MissionType = "attack"
	MissionGather             MissionType = "gather"
	MissionColonize           MissionType = "colonize"
	MissionTrade              MissionType = "trade"
	MissionSpy                MissionType = "spy"
	MissionDeployStarbase     MissionType = "deploy_starbase"
	MissionExplore            MissionType = "explore"
	MissionDiplomaticDelegacy MissionType = "diplomatic_delegacy"
)

// GatherKind says what a gather mission is collecting ships for.
type GatherKind string

const (
	GatherAssault         GatherKind = "assault"
	GatherStarbaseAssault GatherKind = "starbase_assault"
	GatherBomber          GatherKind = "bomber"
	GatherTrooper         GatherKind = "trooper"
)

type MissionPhase string

const (
	PhasePlanning  MissionPhase = "planning"
	PhaseBuilding  MissionPhase = "building"
	PhaseExecuting MissionPhase = "executing"
	PhaseComplete  MissionPhase = "complete"
)

// phaseTransitions is the closed set of allowed phase changes. Only
// planning → building is ever taken by the planet AI; the rest belong to the
// fleet mission handler.
var phaseTransitions = map[MissionPhase][]MissionPhase{
	PhasePlanning:  {PhaseBuilding},
	PhaseBuilding:  {PhaseExecuting},
	PhaseExecuting: {PhaseComplete},
}

// CanTransition reports whether from → to is an allowed phase change.
func CanTransition(from, to MissionPhase) bool {
	return slices.Contains(phaseTransitions[from], to)
}

type Mission struct {
	ID             uuid.UUID    `json:"id"`
	Type           MissionType  `json:"type"`
	Gather         GatherKind   `json:"gather,omitempty"`
	Phase          MissionPhase `json:"phase"`
	TargetPlanet   string       `json:"targetPlanet,omitempty"`
	TargetRealm    int          `json:"targetRealm,omitempty"`
	TargetX        int          `json:"targetX,omitempty"`
	TargetY        int          `json:"targetY,omitempty"`
	PlanetBuilding string       `json:"planetBuilding,omitempty"`
	ShipName       string       `json:"shipName,omitempty"`
}

// NewMission creates a mission in the planning phase.
func NewMission(t MissionType) *Mission {
	return &Mission{ID: uuid.New(), Type: t, Phase: PhasePlanning}
}

// Advance moves the mission to the next phase if the transition is allowed.
func (m *Mission) Advance(to MissionPhase) error {
	if !CanTransition(m.Phase, to) {
		return fmt.Errorf("mission %s: illegal phase change %s -> %s", m.ID, m.Phase, to)
	}
	m.Phase = to
	return nil
}

// MissionRepository is the realm's list of active missions.
type MissionRepository struct {
	Missions []*Mission `json:"missions"`
}

func (r *MissionRepository) Add(m *Mission) {
	r.Missions = append(r.Missions, m)
}

func (r *MissionRepository) Delete(id uuid.UUID) bool {
	for i, m := range r.Missions {
		if m.ID == id {
			r.Missions = slices.Delete(r.Missions, i, i+1)
			return true
		}
	}
	return false
}

// Find returns the first mission of the given type and phase.
func (r *MissionRepository) Find(t MissionType, phase MissionPhase) *Mission {
	for _, m := range r.Missions {
		if m.Type == t && m.Phase == phase {
			return m
		}
	}
	return nil
}

// FindAll returns every mission of the given type and phase.
func (r *MissionRepository) FindAll(t MissionType, phase MissionPhase) []*Mission {
	var out []*Mission
	for _, m := range r.Missions {
		if m.Type == t && m.Phase == phase {
			out = append(out, m)
		}
	}
	return out
}

// FindGather returns the first gather mission of the given kind and phase.
func (r *MissionRepository) FindGather(kind GatherKind, phase MissionPhase) *Mission {
	for _, m := range r.Missions {
		if m.Type == MissionGather && m.Gather == kind && m.Phase == phase {
			return m
		}
	}
	return nil
}

// HasGather reports whether any gather mission of the kind exists, in any phase.
func (r *MissionRepository) HasGather(kind GatherKind) bool {
	for _, m := range r.Missions {
		if m.Type == MissionGather && m.Gather == kind {
			return true
		}
	}
	return false
}

// ForPlanet returns the first mission of type t targeting the named planet,
// in any phase.
func (r *MissionRepository) ForPlanet(t MissionType, planet string) *Mission {
	for _, m := range r.Missions {
		if m.Type == t && m.TargetPlanet == planet {
			return m
		}
	}
	return nil
}

// BuildingAt returns the first mission in the building phase waiting on a ship
// from the named planet.
func (r *MissionRepository) BuildingAt(planet string) *Mission {
	for _, m := range r.Missions {
		if m.Phase == PhaseBuilding && m.PlanetBuilding == planet {
			return m
		}
	}
	return nil
}
