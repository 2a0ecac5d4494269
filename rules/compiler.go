package rules

import "github.com/nstehr/orrery/orrery-core/model"

// DefaultLadder is the mandatory infrastructure every AI planet builds before
// scoring takes over. Conditions are expr sources over LadderEnv.
func DefaultLadder() []*Rule {
	return []*Rule{
		{
			Name:         "factory",
			Priority:     700,
			ConditionSrc: `!HasBuilding("factory")`,
			Action:       ActionCheapest(model.BuildingFactory),
		},
		{
			Name:         "lab",
			Priority:     600,
			ConditionSrc: `!HasBuilding("research")`,
			Action:       ActionBestResearch,
		},
		{
			Name:         "farm",
			Priority:     500,
			ConditionSrc: `EatsFood() && !HasBuilding("farm")`,
			Action:       ActionCheapest(model.BuildingFarm),
		},
		{
			Name:         "mine",
			Priority:     400,
			ConditionSrc: `!HasBuilding("mine") && MetalInGround() > 30`,
			Action:       ActionCheapest(model.BuildingMine),
		},
		{
			Name:         "citizen-building",
			Priority:     300,
			ConditionSrc: `ConstructedPopulation() && Population() < 3 && CanAffordCitizen()`,
			Action:       ActionCitizenBuilding,
		},
		{
			Name:         "spaceport",
			Priority:     200,
			ConditionSrc: `!HasBuilding("spaceport") && Production() > 3 && Metal() > 3`,
			Action:       ActionCheapest(model.BuildingSpaceport),
		},
		{
			Name:         "defend-mission",
			Priority:     100,
			ConditionSrc: `Turn() > 20 && !HasDefendMission()`,
			Action:       ActionDefendMission,
		},
	}
}
