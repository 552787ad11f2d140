// Package admission evaluates operator-supplied capacity rules on top of the
// built-in admission checks. Rules are boolean expressions over the capacity
// snapshot, e.g. "active_orders < max_concurrent - 5" or
// "senior_staff > 0 || complex_orders == 0".
package admission

import (
	"fmt"

	"github.com/antonmedv/expr"
	"github.com/antonmedv/expr/vm"

	"github.com/YerlanK/brigade/internal/domain"
)

type compiledRule struct {
	source  string
	program *vm.Program
}

// RuleSet holds the compiled admission rules from configuration.
type RuleSet struct {
	rules []compiledRule
}

func ruleEnv(snap domain.CapacitySnapshot) map[string]interface{} {
	return map[string]interface{}{
		"active_orders":   snap.ActiveOrders,
		"complex_orders":  snap.ComplexOrders,
		"available_staff": snap.AvailableStaff,
		"senior_staff":    snap.SeniorStaff,
		"max_concurrent":  snap.MaxConcurrent,
	}
}

// Compile parses the configured rule expressions. A rule that does not
// compile is a configuration error, reported at startup rather than at
// evaluation time.
func Compile(rules []string) (*RuleSet, error) {
	rs := &RuleSet{}
	env := ruleEnv(domain.CapacitySnapshot{})

	for _, source := range rules {
		program, err := expr.Compile(source, expr.Env(env), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("failed to compile admission rule %q: %w", source, err)
		}
		rs.rules = append(rs.rules, compiledRule{source: source, program: program})
	}

	return rs, nil
}

// Evaluate runs every rule against the snapshot. The first rule evaluating
// to false rejects admission; a rule that fails to run also rejects, since
// an unevaluable policy must not silently admit load.
func (rs *RuleSet) Evaluate(snap domain.CapacitySnapshot) domain.Decision {
	if rs == nil {
		return domain.Accept()
	}

	env := ruleEnv(snap)
	for _, rule := range rs.rules {
		result, err := expr.Run(rule.program, env)
		if err != nil {
			return domain.Reject(domain.RejectCapacityExceeded,
				"admission rule %q failed to evaluate: %v", rule.source, err)
		}
		if ok, _ := result.(bool); !ok {
			return domain.Reject(domain.RejectCapacityExceeded,
				"admission rule %q rejected the kitchen load", rule.source)
		}
	}

	return domain.Accept()
}

// Len returns the number of configured rules.
func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.rules)
}
