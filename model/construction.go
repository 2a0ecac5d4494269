package model

// BuildingType groups buildings that serve the same purpose across tech tiers.
type BuildingType string

const (
	BuildingFactory       BuildingType = "factory"
	BuildingMine          BuildingType = "mine"
	BuildingFarm          BuildingType = "farm"
	BuildingResearch      BuildingType = "research"
	BuildingCulture       BuildingType = "culture"
	BuildingCredit        BuildingType = "credit"
	BuildingMilitary      BuildingType = "military"
	BuildingPopulation    BuildingType = "population"
	BuildingSpaceport     BuildingType = "spaceport"
	BuildingHappiness     BuildingType = "happiness"
	BuildingFleetCapacity BuildingType = "fleet_capacity"
	BuildingRadiation     BuildingType = "radiation"
	BuildingRecycle       BuildingType = "recycle"
	BuildingOther         BuildingType = "other"
)

type Building struct {
	Name      string       `json:"name"`
	Type      BuildingType `json:"type"`
	MetalCost int          `json:"metalCost"`
	ProdCost  int          `json:"prodCost"`
	Footprint int          `json:"footprint,omitempty"` // ground slots, 0 means 1

	FactBonus     int `json:"factBonus,omitempty"`
	MineBonus     int `json:"mineBonus,omitempty"`
	FarmBonus     int `json:"farmBonus,omitempty"`
	ReseBonus     int `json:"reseBonus,omitempty"`
	CultBonus     int `json:"cultBonus,omitempty"`
	CredBonus     int `json:"credBonus,omitempty"`
	RecycleBonus  int `json:"recycleBonus,omitempty"`
	Happiness     int `json:"happiness,omitempty"`
	FleetCapacity int `json:"fleetCapacity,omitempty"`
	DefenseDamage int `json:"defenseDamage,omitempty"`
	ScanRange     int `json:"scanRange,omitempty"`
	Maintenance   int `json:"maintenance,omitempty"` // credits per turn

	Wildlife    bool   `json:"wildlife,omitempty"`    // left behind by native wildlife, not built
	ObsoletedBy string `json:"obsoletedBy,omitempty"` // tech that supersedes this building
	Upgrades    string `json:"upgrades,omitempty"`    // building replaced in place when this one completes
}

func (b Building) TypeName() string { return string(b.Type) }

// Slots returns how much ground the building occupies.
func (b Building) Slots() int {
	if b.Footprint <= 0 {
		return 1
	}
	return b.Footprint
}

// BonusTotal is the aggregate of every bonus field. Used to compare tiers of
// the same building type.
func (b Building) BonusTotal() int {
	return b.FactBonus + b.MineBonus + b.FarmBonus + b.ReseBonus + b.CultBonus +
		b.CredBonus + b.RecycleBonus + b.Happiness + b.FleetCapacity + b.DefenseDamage
}

type Ship struct {
	Name          string `json:"name"`
	MetalCost     int    `json:"metalCost"`
	ProdCost      int    `json:"prodCost"`
	MilitaryPower int    `json:"militaryPower"`
	Mass          int    `json:"mass"`

	Orbital      bool `json:"orbital,omitempty"`
	MinorOrbital bool `json:"minorOrbital,omitempty"`
	Bomber       bool `json:"bomber,omitempty"`
	Trooper      bool `json:"trooper,omitempty"`
	Colony       bool `json:"colony,omitempty"`
	Spy          bool `json:"spy,omitempty"`
	Trade        bool `json:"trade,omitempty"`
	Starbase     bool `json:"starbase,omitempty"`
	Scout        bool `json:"scout,omitempty"`
	Privateer    bool `json:"privateer,omitempty"`

	StarbaseResearch int `json:"starbaseResearch,omitempty"`
	StarbaseCulture  int `json:"starbaseCulture,omitempty"`
	StarbaseCredit   int `json:"starbaseCredit,omitempty"`
}

// Construction is either a Building or a Ship. Exactly one field is set.
type Construction struct {
	Building *Building `json:"building,omitempty"`
	Ship     *Ship     `json:"ship,omitempty"`
}

func BuildingConstruction(b Building) Construction { return Construction{Building: &b} }
func ShipConstruction(s Ship) Construction         { return Construction{Ship: &s} }

func (c Construction) IsShip() bool     { return c.Ship != nil }
func (c Construction) IsBuilding() bool { return c.Building != nil }

func (c Construction) Name() string {
	switch {
	case c.Building != nil:
		return c.Building.Name
	case c.Ship != nil:
		return c.Ship.Name
	}
	return ""
}

func (c Construction) MetalCost() int {
	switch {
	case c.Building != nil:
		return c.Building.MetalCost
	case c.Ship != nil:
		return c.Ship.MetalCost
	}
	return 0
}

func (c Construction) ProdCost() int {
	switch {
	case c.Building != nil:
		return c.Building.ProdCost
	case c.Ship != nil:
		return c.Ship.ProdCost
	}
	return 0
}

// IsCitizenBuilding reports whether the construction creates population.
func (c Construction) IsCitizenBuilding() bool {
	return c.Building != nil && c.Building.Type == BuildingPopulation
}
