// Package modeltest provides reference races, planets and constructions for
// tests across packages.
package modeltest

import "github.com/nstehr/orrery/orrery-core/model"

func Human() model.Race {
	return model.Race{
		Name:            "Human",
		FoodRequirement: 100,
		Growth:          true,
		FarmingSpeed:    100,
		MiningSpeed:     100,
		ProductionSpeed: 100,
		ResearchSpeed:   100,
		CultureSpeed:    100,
		MaxRadiation:    4,
	}
}

// Mechion does not eat and builds its population.
func Mechion() model.Race {
	r := Human()
	r.Name = "Mechion"
	r.FoodRequirement = 0
	r.Growth = false
	r.ConstructedPopulation = true
	r.CitizenBuilding = "Basic robot factory"
	r.ResearchSpeed = 50
	return r
}

// Lithorian eats metal instead of food.
func Lithorian() model.Race {
	r := Human()
	r.Name = "Lithorian"
	r.Lithovorian = true
	r.FoodRequirement = 50
	r.FarmingSpeed = 0
	r.MiningSpeed = 150
	return r
}

// Realm returns an AI realm with a neutral merchant attitude.
func Realm(race model.Race) *model.Realm {
	return &model.Realm{
		Index:         1,
		Name:          "Terran Alliance",
		Race:          race,
		Government:    model.Government{Name: "Democracy", CreditRush: true},
		Credits:       100,
		Strategy:      model.StrategyGeneric,
		Attitude:      model.AttitudeMerchantical,
		Difficulty:    model.DifficultyNormal,
		Espionage:     map[int]int{},
		FleetCount:    1,
		FleetCapacity: 5,
	}
}

// Planet is a metal rich home world with no buildings.
func Planet() *model.Planet {
	return &model.Planet{
		Name:            "Terra",
		Owner:           1,
		GroundSize:      16,
		Population:      6,
		PopulationLimit: 12,
		Workers:         3,
		Miners:          3,
		MetalStock:      100,
		MetalInGround:   5000,
		Radiation:       1,
	}
}

func World() *model.World {
	return &model.World{
		Turn:   10,
		Length: model.GameStarting,
		Totals: map[int]model.RealmTotals{1: {Research: 2, Culture: 1, Credits: 3}},
	}
}

func BasicFarm() model.Building {
	return model.Building{Name: "Basic farm", Type: model.BuildingFarm, ProdCost: 10, FarmBonus: 1}
}

func BasicFactory() model.Building {
	return model.Building{Name: "Basic factory", Type: model.BuildingFactory, ProdCost: 10, FactBonus: 1}
}

func BasicMine() model.Building {
	return model.Building{Name: "Basic mine", Type: model.BuildingMine, ProdCost: 8, MineBonus: 1}
}

func BasicLab() model.Building {
	return model.Building{Name: "Basic lab", Type: model.BuildingResearch, ProdCost: 10, ReseBonus: 1}
}

func AdvancedLab() model.Building {
	return model.Building{Name: "Advanced laboratory", Type: model.BuildingResearch, MetalCost: 20, ProdCost: 30, ReseBonus: 2, Maintenance: 1}
}

func DefenseTurret() model.Building {
	return model.Building{Name: "Planetary defense turret", Type: model.BuildingMilitary, MetalCost: 30, ProdCost: 30, DefenseDamage: 3}
}

func Spaceport() model.Building {
	return model.Building{Name: "Space port", Type: model.BuildingSpaceport, MetalCost: 10, ProdCost: 20}
}

func RobotFactory() model.Building {
	return model.Building{Name: "Basic robot factory", Type: model.BuildingPopulation, MetalCost: 10, ProdCost: 20}
}

func RadiationDampener() model.Building {
	return model.Building{Name: "Radiation dampener", Type: model.BuildingRadiation, MetalCost: 5, ProdCost: 15}
}

// Fighter is a plain combat ship: power 16, 14 metal, 22 production.
func Fighter() model.Ship {
	return model.Ship{Name: "Fighter Mk1", MetalCost: 14, ProdCost: 22, MilitaryPower: 16, Mass: 1}
}

func Scout() model.Ship {
	return model.Ship{Name: "Scout Mk1", MetalCost: 4, ProdCost: 8, Mass: 1, Scout: true}
}

func ColonyShip() model.Ship {
	return model.Ship{Name: "Colony Mk1", MetalCost: 10, ProdCost: 20, Mass: 2, Colony: true}
}

func Bomber() model.Ship {
	return model.Ship{Name: "Bomber Mk1", MetalCost: 20, ProdCost: 20, MilitaryPower: 6, Mass: 2, Bomber: true}
}

func Trooper() model.Ship {
	return model.Ship{Name: "Trooper Mk1", MetalCost: 12, ProdCost: 18, MilitaryPower: 2, Mass: 2, Trooper: true}
}

func SpyShip() model.Ship {
	return model.Ship{Name: "Spy Mk1", MetalCost: 6, ProdCost: 12, Mass: 1, Spy: true}
}

func TradeShip() model.Ship {
	return model.Ship{Name: "Freighter Mk1", MetalCost: 8, ProdCost: 16, Mass: 2, Trade: true}
}

func Starbase() model.Ship {
	return model.Ship{Name: "Starbase Mk1", MetalCost: 20, ProdCost: 30, Mass: 4, Starbase: true, StarbaseResearch: 1, StarbaseCulture: 1}
}

func Orbital() model.Ship {
	return model.Ship{Name: "Orbital defense", MetalCost: 10, ProdCost: 20, MilitaryPower: 10, Mass: 3, Orbital: true}
}
