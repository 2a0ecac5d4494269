package rules

import (
	"github.com/expr-lang/expr/vm"

	"github.com/nstehr/orrery/orrery-core/model"
)

// ActionFunc picks what a matched rule asks for. An empty Outcome means the
// rule had nothing to offer and the next rule gets a chance.
type ActionFunc func(env LadderEnv) Outcome

// Outcome is either a construction to start or a mission to register.
type Outcome struct {
	Pick    *model.Construction
	Mission *model.Mission
}

func (o Outcome) Empty() bool { return o.Pick == nil && o.Mission == nil }

// Rule is one step of the infrastructure ladder: a condition → action pair.
type Rule struct {
	Name         string      // human-readable identifier
	Priority     int         // higher = evaluated first
	ConditionSrc string      // expr source
	program      *vm.Program // compiled bytecode
	Action       ActionFunc
}
