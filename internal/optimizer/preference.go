package optimizer

import (
	"fmt"
	"strings"

	"github.com/google/cel-go/cel"
	"github.com/iwvelando/production-optimizer/pkg/lp"
)

// CompilePreference compiles a CEL expression over the variables x, y, profit,
// hours and wood into a candidate predicate. An empty expression yields a nil
// predicate. Evaluation errors count as "not preferred".
func CompilePreference(expr string) (func(lp.Candidate) bool, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}

	env, err := cel.NewEnv(
		cel.Variable("x", cel.DoubleType),
		cel.Variable("y", cel.DoubleType),
		cel.Variable("profit", cel.DoubleType),
		cel.Variable("hours", cel.DoubleType),
		cel.Variable("wood", cel.DoubleType),
		cel.CrossTypeNumericComparisons(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL env: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("preferWhen compilation error: %w", issues.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("preferWhen must evaluate to a bool, got %s", ast.OutputType())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("preferWhen program creation error: %w", err)
	}

	return func(c lp.Candidate) bool {
		out, _, err := prg.Eval(map[string]interface{}{
			"x":      c.X,
			"y":      c.Y,
			"profit": c.Profit,
			"hours":  c.HoursUsed,
			"wood":   c.WoodUsed,
		})
		if err != nil {
			return false
		}
		match, ok := out.Value().(bool)
		return ok && match
	}, nil
}
