package rules

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Ladder runs compiled rules against one planet. The first rule whose
// condition holds and whose action yields something wins.
type Ladder struct {
	rules []*Rule
}

// NewLadder compiles all rule conditions into expr bytecode and sorts by priority.
func NewLadder(rules []*Rule) (*Ladder, error) {
	compiled, err := compileRules(rules)
	if err != nil {
		return nil, err
	}
	return &Ladder{rules: compiled}, nil
}

// Evaluate returns the winning outcome and the name of the rule that produced
// it, or an empty outcome and "" when no rule applies.
func (l *Ladder) Evaluate(env LadderEnv) (Outcome, string) {
	for _, r := range l.rules {
		result, err := vm.Run(r.program, env)
		if err != nil {
			slog.Warn("rule condition error", "rule", r.Name, "planet", env.Planet.Name, "error", err)
			continue
		}
		match, ok := result.(bool)
		if !ok || !match {
			continue
		}

		out := r.Action(env)
		if out.Empty() {
			slog.Debug("rule matched without candidate", "rule", r.Name, "planet", env.Planet.Name)
			continue
		}
		slog.Debug("rule fired", "rule", r.Name, "priority", r.Priority, "planet", env.Planet.Name)
		return out, r.Name
	}
	return Outcome{}, ""
}

// Names lists the rules in evaluation order.
func (l *Ladder) Names() []string {
	names := make([]string, len(l.rules))
	for i, r := range l.rules {
		names[i] = r.Name
	}
	return names
}

func compileRules(rules []*Rule) ([]*Rule, error) {
	for _, r := range rules {
		prog, err := expr.Compile(r.ConditionSrc, expr.Env(LadderEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile rule %q: %w", r.Name, err)
		}
		r.program = prog
	}
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority > rules[j].Priority
	})
	return rules, nil
}
