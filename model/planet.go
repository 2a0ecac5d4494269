package model

// Resource indexes a planet's production channels.
type Resource int

const (
	ResMetal Resource = iota
	ResProduction
	ResFood
	ResResearch
	ResCulture
	ResCredits
)

// GovernorFocus is the single resource a planet is optimized for.
type GovernorFocus string

const (
	FocusNone       GovernorFocus = ""
	FocusMetal      GovernorFocus = "metal"
	FocusProduction GovernorFocus = "production"
	FocusFood       GovernorFocus = "food"
	FocusResearch   GovernorFocus = "research"
	FocusCulture    GovernorFocus = "culture"
	FocusCredits    GovernorFocus = "credits"
	FocusMilitary   GovernorFocus = "military"
	FocusPopulation GovernorFocus = "population"
)

const (
	// MaxTax is the highest tax level a planet can be set to.
	MaxTax = 5
	// rushCreditsPerUnit is the credit price of one missing production or metal unit.
	rushCreditsPerUnit = 2
	// rushProductionPerCitizen is how much production one sacrificed citizen buys.
	rushProductionPerCitizen = 20
)

type Planet struct {
	Name  string `json:"name"`
	Owner int    `json:"owner"`
	X     int    `json:"x"`
	Y     int    `json:"y"`

	GroundSize      int `json:"groundSize"`
	Population      int `json:"population"`
	PopulationLimit int `json:"populationLimit"`

	Farmers    int `json:"farmers"`
	Miners     int `json:"miners"`
	Workers    int `json:"workers"`
	Scientists int `json:"scientists"`
	Artists    int `json:"artists"`

	Happiness int `json:"happiness"`

	Buildings         []Building     `json:"buildings"`
	Candidates        []Construction `json:"candidates"`
	UnderConstruction *Construction  `json:"underConstruction,omitempty"`
	ProdProgress      int            `json:"prodProgress"`

	MetalStock    int           `json:"metalStock"`
	Tax           int           `json:"tax"`
	Focus         GovernorFocus `json:"focus,omitempty"`
	Radiation     int           `json:"radiation"`
	MetalInGround int           `json:"metalInGround"`
	TurretLevel   int           `json:"turretLevel"`
	Orbital       *Ship         `json:"orbital,omitempty"`
}

// UsedSize is the ground occupied by buildings.
func (p *Planet) UsedSize() int {
	n := 0
	for _, b := range p.Buildings {
		n += b.Slots()
	}
	return n
}

// FreeSlots is GroundSize - UsedSize, never negative.
func (p *Planet) FreeSlots() int {
	return max(p.GroundSize-p.UsedSize(), 0)
}

func (p *Planet) HasBuildingType(t BuildingType) bool {
	for _, b := range p.Buildings {
		if b.Type == t {
			return true
		}
	}
	return false
}

// FindBuilding returns the index of the named building or -1.
func (p *Planet) FindBuilding(name string) int {
	for i, b := range p.Buildings {
		if b.Name == name {
			return i
		}
	}
	return -1
}

// RemoveBuilding drops the building at index i.
func (p *Planet) RemoveBuilding(i int) Building {
	b := p.Buildings[i]
	p.Buildings = append(p.Buildings[:i:i], p.Buildings[i+1:]...)
	return b
}

// BuildingOutput is what the planet's buildings produce without any labor.
func (p *Planet) BuildingOutput(r Resource) int {
	n := 0
	for _, b := range p.Buildings {
		switch r {
		case ResMetal:
			if p.MetalInGround > 0 {
				n += b.MineBonus
			}
		case ResProduction:
			n += b.FactBonus
		case ResFood:
			n += b.FarmBonus
		case ResResearch:
			n += b.ReseBonus
		case ResCulture:
			n += b.CultBonus
		case ResCredits:
			n += b.CredBonus - b.Maintenance
		}
	}
	return n
}

// Output is the planet's total production of r: buildings plus labor at the
// race's speeds.
func (p *Planet) Output(r Resource, race *Race) int {
	n := p.BuildingOutput(r)
	switch r {
	case ResMetal:
		if p.MetalInGround > 0 {
			n += p.Miners * race.MiningSpeed / 100
		}
	case ResProduction:
		n += p.Workers * race.ProductionSpeed / 100
	case ResFood:
		n += p.Farmers * race.FarmingSpeed / 100
	case ResResearch:
		n += p.Scientists * race.ResearchSpeed / 100
	case ResCulture:
		n += p.Artists * race.CultureSpeed / 100
	case ResCredits:
		n += p.Tax
	}
	return n
}

// FoodRequired is how much food the population eats per turn.
func (p *Planet) FoodRequired(race *Race) int {
	if !race.EatsFood() {
		return 0
	}
	return ceilDiv(p.Population*race.FoodRequirement, 100)
}

// BuildTime estimates turns to finish c from scratch, -1 when it can never
// finish with current output.
func (p *Planet) BuildTime(c Construction, race *Race) int {
	return p.turnsFor(c.ProdCost(), c.MetalCost(), race)
}

// RemainingTime estimates turns left on the current construction.
func (p *Planet) RemainingTime(race *Race) int {
	if p.UnderConstruction == nil {
		return 0
	}
	c := *p.UnderConstruction
	return p.turnsFor(max(c.ProdCost()-p.ProdProgress, 0), c.MetalCost(), race)
}

func (p *Planet) turnsFor(prodNeeded, metalNeeded int, race *Race) int {
	turns := 0
	if prodNeeded > 0 {
		prod := p.Output(ResProduction, race)
		if prod <= 0 {
			return -1
		}
		turns = ceilDiv(prodNeeded, prod)
	}
	if short := metalNeeded - p.MetalStock; short > 0 {
		metal := p.Output(ResMetal, race)
		if metal <= 0 {
			return -1
		}
		turns = max(turns, ceilDiv(short, metal))
	}
	return max(turns, 1)
}

// RushCost is the credit price to finish the current construction now.
func (p *Planet) RushCost() int {
	if p.UnderConstruction == nil {
		return 0
	}
	c := *p.UnderConstruction
	missing := max(c.ProdCost()-p.ProdProgress, 0) + max(c.MetalCost()-p.MetalStock, 0)
	return missing * rushCreditsPerUnit
}

// RushPopulation is how many citizens must be sacrificed to finish the current
// construction now.
func (p *Planet) RushPopulation() int {
	if p.UnderConstruction == nil {
		return 0
	}
	c := *p.UnderConstruction
	missing := max(c.ProdCost()-p.ProdProgress, 0) + max(c.MetalCost()-p.MetalStock, 0)
	return ceilDiv(missing, rushProductionPerCitizen)
}

// CompleteConstruction marks the current construction's production as paid in
// full. The host finishes it on the next turn.
func (p *Planet) CompleteConstruction() {
	if p.UnderConstruction == nil {
		return
	}
	c := *p.UnderConstruction
	p.ProdProgress = c.ProdCost()
	p.MetalStock = max(p.MetalStock, c.MetalCost())
}

// SetLabor overwrites the five labor categories.
func (p *Planet) SetLabor(farmers, miners, workers, scientists, artists int) {
	p.Farmers = farmers
	p.Miners = miners
	p.Workers = workers
	p.Scientists = scientists
	p.Artists = artists
}

// LaborTotal is the sum of the five labor categories.
func (p *Planet) LaborTotal() int {
	return p.Farmers + p.Miners + p.Workers + p.Scientists + p.Artists
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
