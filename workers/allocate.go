// Package workers splits a planet's population across the five labor
// categories.
package workers

import (
	"fmt"

	"github.com/nstehr/orrery/orrery-core/model"
)

// Allocation is the labor split of one planet.
type Allocation struct {
	Farmers    int `json:"farmers"`
	Miners     int `json:"miners"`
	Workers    int `json:"workers"`
	Scientists int `json:"scientists"`
	Artists    int `json:"artists"`
}

func (a Allocation) Total() int {
	return a.Farmers + a.Miners + a.Workers + a.Scientists + a.Artists
}

// InvariantViolation is raised with panic when a planet's population cannot be
// allocated exactly. It signals corrupt input or a bug, never a game outcome.
type InvariantViolation struct {
	Planet     string
	Owner      int
	Race       string
	Buildings  []string
	Branch     string
	Want       int
	Got        int
	Allocation Allocation
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("labor allocation on %s (owner %d, race %s, branch %s): want %d citizens, got %d %+v, buildings %v",
		e.Planet, e.Owner, e.Race, e.Branch, e.Want, e.Got, e.Allocation, e.Buildings)
}

// allocator carries the inputs shared by every branch.
type allocator struct {
	planet    *model.Planet
	realm     *model.Realm
	race      *model.Race
	world     *model.World
	happiness int
}

func (al *allocator) unhappy() bool { return al.happiness < -1 }

// Allocate overwrites the planet's labor counts so they sum to its population
// and returns the split. It panics with *InvariantViolation when population is
// not positive or the split does not add up.
func Allocate(p *model.Planet, realm *model.Realm, world *model.World) Allocation {
	al := &allocator{planet: p, realm: realm, race: &realm.Race, world: world, happiness: p.Happiness}
	if realm.Government.HappinessImmune {
		al.happiness = 0
	}
	if p.Population <= 0 {
		al.fail("entry", Allocation{})
	}

	var (
		a      Allocation
		branch string
	)
	switch {
	case al.race.Lithovorian:
		branch = "lithovorian"
		a = al.lithovorian()
	case !al.race.EatsFood():
		branch = "no-food"
		a = al.nonFarmers(p.Population)
	default:
		branch = "food"
		a = al.withFarmers()
	}
	a = al.redirectMiners(a)

	if a.Total() != p.Population {
		al.fail(branch, a)
	}
	p.SetLabor(a.Farmers, a.Miners, a.Workers, a.Scientists, a.Artists)
	return a
}

func (al *allocator) fail(branch string, a Allocation) {
	names := make([]string, len(al.planet.Buildings))
	for i, b := range al.planet.Buildings {
		names[i] = b.Name
	}
	panic(&InvariantViolation{
		Planet:     al.planet.Name,
		Owner:      al.planet.Owner,
		Race:       al.race.Name,
		Buildings:  names,
		Branch:     branch,
		Want:       al.planet.Population,
		Got:        a.Total(),
		Allocation: a,
	})
}

func (al *allocator) withFarmers() Allocation {
	p, race := al.planet, al.race
	pop := p.Population
	buildingFood := p.BuildingOutput(model.ResFood)
	deficit := p.FoodRequired(race) - buildingFood

	farmers := 0
	if deficit > 0 && race.FarmingSpeed > 0 {
		farmers = min(ceilDiv(deficit*100, race.FarmingSpeed), pop)
	}
	surplus := buildingFood + farmers*race.FarmingSpeed/100 - p.FoodRequired(race)
	if race.Growth && race.FarmingSpeed > 0 && pop < p.PopulationLimit && surplus <= 0 &&
		al.length() != model.GameStarting && farmers < pop {
		farmers++
	}

	a := al.nonFarmers(pop - farmers)
	a.Farmers = farmers
	return a
}

func (al *allocator) length() model.GameLength {
	if al.world == nil {
		return model.GameStarting
	}
	return al.world.Length
}

// lithovorian races eat metal: miners come first, farms are useless.
func (al *allocator) lithovorian() Allocation {
	p, race := al.planet, al.race
	pop := p.Population
	buildingMetal := p.BuildingOutput(model.ResMetal)

	var a Allocation
	if need := pop/2 - buildingMetal; need > 0 && race.MiningSpeed > 0 {
		a.Miners = min(ceilDiv(need*100, race.MiningSpeed), pop)
	}
	rest := pop - a.Miners

	elsewhere := al.world.RealmTotals(al.realm.Index).Research - p.Output(model.ResResearch, race)
	if rest > 0 && elsewhere <= 0 {
		a.Scientists++
		rest--
	}
	a.Workers = rest

	if p.MetalInGround > 0 {
		for a.Workers > 0 && 2*(buildingMetal+a.Miners*race.MiningSpeed/100) < pop {
			a.Workers--
			a.Miners++
		}
	}
	if al.unhappy() && a.Workers > 0 {
		a.Workers--
		a.Artists++
	}
	return a
}

// nonFarmers distributes n citizens over mining, production, research and
// culture.
func (al *allocator) nonFarmers(n int) Allocation {
	var a Allocation
	if n <= 0 {
		return a
	}
	race := al.race

	if race.ResearchSpeed > 0 && al.planet.BuildingOutput(model.ResResearch) == 0 &&
		al.world.RealmTotals(al.realm.Index).Research == 0 {
		if bodies := ceilDiv(100, race.ResearchSpeed); n >= bodies {
			a.Scientists += bodies
			n -= bodies
		}
	}

	lowMining := race.MiningSpeed <= 50
	lowProduction := race.ProductionSpeed <= 50
	rem := 0
	switch {
	case lowMining && lowProduction:
		half := n / 2
		switch {
		case yieldsWhole(race.ProductionSpeed):
			a.Workers += half
		case yieldsWhole(race.MiningSpeed):
			a.Miners += half
		default:
			a.Artists += half
		}
		a.Scientists += half
		rem = n - 2*half
	case lowMining:
		third := n / 3
		a.Workers += third
		a.Scientists += third
		if race.ResearchSpeed == 100 && race.ProductionSpeed == 100 {
			a.Scientists += third
		} else {
			a.Workers += third
		}
		rem = n - 3*third
	case lowProduction:
		third := n / 3
		a.Miners += third
		a.Scientists += third
		if race.ResearchSpeed == 100 && race.MiningSpeed == 100 {
			a.Scientists += third
		} else {
			a.Miners += third
		}
		rem = n - 3*third
	default:
		quarter := n / 4
		a.Miners += quarter
		a.Workers += quarter
		a.Scientists += quarter
		a.Artists += quarter
		rem = n - 4*quarter
	}

	for i := range rem {
		if i == 0 && al.unhappy() {
			a.Artists++
			continue
		}
		al.assignRemainder(&a)
	}
	return a
}

func (al *allocator) assignRemainder(a *Allocation) {
	race := al.race
	switch {
	case race.ResearchSpeed >= 100:
		a.Scientists++
	case race.ProductionSpeed >= 100:
		a.Workers++
	case race.MiningSpeed >= 100:
		a.Miners++
	case race.CultureSpeed >= 100 && al.artistsWarranted():
		a.Artists++
	default:
		a.Workers++
	}
}

func (al *allocator) artistsWarranted() bool {
	return al.happiness < 1 || al.realm.Strategy == model.StrategyCulture
}

// redirectMiners moves miners off a planet with no metal left in the ground.
func (al *allocator) redirectMiners(a Allocation) Allocation {
	if al.planet.MetalInGround > 0 || a.Miners == 0 {
		return a
	}
	if al.race.ProductionSpeed >= 100 {
		a.Workers += a.Miners
	} else {
		a.Scientists += a.Miners
	}
	a.Miners = 0
	return a
}

// yieldsWhole reports whether two citizens at speed produce a whole, positive
// number of units.
func yieldsWhole(speed int) bool {
	return speed > 0 && 2*speed%100 == 0
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
