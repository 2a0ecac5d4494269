package planner

import "github.com/nstehr/orrery/orrery-core/model"

// AdjustTax nudges the planet's tax by one step: up when the realm loses
// credits and the planet can bear it, down when the planet is unhappy.
func AdjustTax(p *model.Planet, realm *model.Realm, world *model.World) int {
	immune := realm.Government.HappinessImmune
	income := world.RealmTotals(realm.Index).Credits
	switch {
	case (immune || p.Happiness >= 1) && income < 0:
		p.Tax = min(p.Tax+1, model.MaxTax)
	case !immune && p.Happiness < -1:
		p.Tax = max(p.Tax-1, 0)
	}
	return p.Tax
}
