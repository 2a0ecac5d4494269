package scoring

// Tuning holds the constants that differ between the standard and advanced
// strategies. Building weights are shared; the advanced strategy mostly
// pushes ships that an active mission is waiting for.
type Tuning struct {
	HappinessWeight  int // per happiness bonus point, before the unhappiness multiplier
	WarBonus         int // per active war, combat ships
	DefendPlanning   int // power multiplier, defend mission still planning
	DefendBuilding   int // power multiplier, defend mission already building
	AttackPlanning   int // power multiplier, attack or assault mission planning
	AssaultGather    int // flat bonus when an assault gather mission also exists
	GatherBonus      int // bomber and trooper ships with a matching mission
	ScoutMission     int // scouts with an explore or delegacy mission planning
	ScoutNoFleets    int // scouts when the realm has no fleets at all
	ColonyTier       int // per population tier above 4, 8, 12
	SpyPerRealm      int // per met realm with weak espionage
	StarbaseFocus    int // starbase matching governor focus
	TradeDistanceCap int // cap on the distance part of the trade bonus
}

var standardTuning = Tuning{
	HappinessWeight:  15,
	WarBonus:         10,
	DefendPlanning:   2,
	DefendBuilding:   1,
	AttackPlanning:   3,
	AssaultGather:    30,
	GatherBonus:      40,
	ScoutMission:     30,
	ScoutNoFleets:    40,
	ColonyTier:       10,
	SpyPerRealm:      10,
	StarbaseFocus:    20,
	TradeDistanceCap: 40,
}

var advancedTuning = Tuning{
	HappinessWeight:  20,
	WarBonus:         15,
	DefendPlanning:   3,
	DefendBuilding:   2,
	AttackPlanning:   4,
	AssaultGather:    40,
	GatherBonus:      50,
	ScoutMission:     40,
	ScoutNoFleets:    50,
	ColonyTier:       15,
	SpyPerRealm:      15,
	StarbaseFocus:    30,
	TradeDistanceCap: 50,
}
