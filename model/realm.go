package model

import "slices"

type Attitude string

const (
	AttitudeAggressive   Attitude = "aggressive"
	AttitudeBackstabbing Attitude = "backstabbing"
	AttitudeDiplomatic   Attitude = "diplomatic"
	AttitudeExpansionist Attitude = "expansionist"
	AttitudeLogical      Attitude = "logical"
	AttitudeMerchantical Attitude = "merchantical"
	AttitudeMilitaristic Attitude = "militaristic"
	AttitudePeaceful     Attitude = "peaceful"
	AttitudeScientific   Attitude = "scientific"
)

// Strategy is the victory condition a realm is pursuing.
type Strategy string

const (
	StrategyGeneric    Strategy = "generic"
	StrategyConquer    Strategy = "conquer"
	StrategyCulture    Strategy = "culture"
	StrategyScience    Strategy = "science"
	StrategyDiplomacy  Strategy = "diplomacy"
	StrategyPopulation Strategy = "population"
)

type Difficulty string

const (
	DifficultyWeak        Difficulty = "weak"
	DifficultyNormal      Difficulty = "normal"
	DifficultyHard        Difficulty = "hard"
	DifficultyChallenging Difficulty = "challenging"
)

// Race holds the traits that drive scoring and labor allocation. Speeds are
// percentages: 100 means one unit of output per person.
type Race struct {
	Name            string `json:"name"`
	FoodRequirement int    `json:"foodRequirement"` // percent of population, 0 = does not eat
	Lithovorian     bool   `json:"lithovorian,omitempty"`
	Growth          bool   `json:"growth"`

	FarmingSpeed    int `json:"farmingSpeed"`
	MiningSpeed     int `json:"miningSpeed"`
	ProductionSpeed int `json:"productionSpeed"`
	ResearchSpeed   int `json:"researchSpeed"`
	CultureSpeed    int `json:"cultureSpeed"`

	ConstructedPopulation bool   `json:"constructedPopulation,omitempty"`
	CitizenBuilding       string `json:"citizenBuilding,omitempty"`
	EnergyPowered         bool   `json:"energyPowered,omitempty"`
	ZeroGravity           bool   `json:"zeroGravity,omitempty"`
	CombatTrait           bool   `json:"combatTrait,omitempty"` // improved planetary defense
	MaxRadiation          int    `json:"maxRadiation"`
}

// EatsFood reports whether the race consumes farm output. Lithovorians eat
// metal and are handled separately.
func (r Race) EatsFood() bool {
	return r.FoodRequirement > 0 && !r.Lithovorian
}

type Government struct {
	Name            string `json:"name"`
	CreditRush      bool   `json:"creditRush,omitempty"`
	PopulationRush  bool   `json:"populationRush,omitempty"`
	HappinessImmune bool   `json:"happinessImmune,omitempty"`
}

type Realm struct {
	Index      int        `json:"index"`
	Name       string     `json:"name"`
	Human      bool       `json:"human,omitempty"`
	Race       Race       `json:"race"`
	Government Government `json:"government"`
	Credits    int        `json:"credits"`
	Techs      []string   `json:"techs"`
	Strategy   Strategy   `json:"strategy"`
	Attitude   Attitude   `json:"attitude"`
	Difficulty Difficulty `json:"difficulty"`
	Wars       int        `json:"wars"`

	// Espionage maps each met realm index to the espionage level held against it.
	Espionage map[int]int `json:"espionage,omitempty"`

	FleetCount    int `json:"fleetCount"`
	FleetCapacity int `json:"fleetCapacity"`

	Missions MissionRepository `json:"missions"`
}

func (r *Realm) HasTech(name string) bool {
	return slices.Contains(r.Techs, name)
}

// NearFleetLimit reports whether at most one more fleet fits the capacity.
func (r *Realm) NearFleetLimit() bool {
	return r.FleetCapacity-r.FleetCount <= 1
}

// UnderSpied lists met realms whose espionage level is below threshold,
// lowest level first.
func (r *Realm) UnderSpied(threshold int) []int {
	var out []int
	for idx, lvl := range r.Espionage {
		if lvl < threshold {
			out = append(out, idx)
		}
	}
	slices.SortFunc(out, func(a, b int) int {
		if d := r.Espionage[a] - r.Espionage[b]; d != 0 {
			return d
		}
		return a - b
	})
	return out
}
