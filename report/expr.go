package report

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ShowFilter is a compiled filter expression evaluated per report item
type ShowFilter struct {
	expression string
	program    *vm.Program
}

// helperFunctions are the static helpers available in filter expressions
func helperFunctions() map[string]any {
	return map[string]any{
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}

// CompileShowFilter compiles a filter expression such as
// `Unwatched > 10 and Status == "Partially Watched"` or
// `contains(Title, "star") and not Monitored`.
func CompileShowFilter(expression string) (*ShowFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(), // Allow item properties
		expr.AsBool(),                  // Ensure boolean result
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &ShowFilter{
		expression: expression,
		program:    program,
	}, nil
}

// String returns the source expression
func (f *ShowFilter) String() string {
	return f.expression
}

// Evaluate evaluates the filter against a report item
func (f *ShowFilter) Evaluate(item Item) (bool, error) {
	env := helperFunctions()
	env["Title"] = item.Title
	env["Total"] = item.TotalEpisodes
	env["Watched"] = item.WatchedEpisodes
	env["Unwatched"] = item.Unwatched()
	env["Status"] = item.Status()
	env["Monitored"] = item.Monitored != nil && *item.Monitored

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, err
	}

	match, ok := result.(bool)
	if !ok {
		return false, nil
	}
	return match, nil
}
