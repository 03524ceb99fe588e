package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/dimtools/dimctl/dim"
)

// Filter is a compiled expression evaluated against media items, e.g.
// "Year < 2000 and Rating >= 7" or `hasGenre(Genres, "Horror")`.
type Filter struct {
	program    *vm.Program
	expression string
}

// Compile compiles a filter expression
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(helperEnv()),
		expr.AllowUndefinedVariables(), // item properties are injected at run time
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression %q: %w", expression, err)
	}

	return &Filter{program: program, expression: expression}, nil
}

// Expression returns the source expression of the filter.
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against a single media item.
func (f *Filter) Match(item dim.MediaItem) (bool, error) {
	env := helperEnv()
	env["ID"] = item.ID
	env["Name"] = item.Name
	env["Description"] = item.Description
	env["MediaType"] = string(item.MediaType)
	env["Year"] = item.Year
	env["Rating"] = item.Rating
	env["Duration"] = item.Duration
	env["Genres"] = item.Genres

	out, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter: %w", err)
	}

	result, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q did not evaluate to a boolean", f.expression)
	}
	return result, nil
}

// Apply returns the items matching the filter.
func (f *Filter) Apply(items []dim.MediaItem) ([]dim.MediaItem, error) {
	var matched []dim.MediaItem
	for _, item := range items {
		ok, err := f.Match(item)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// helperEnv defines the static helper functions available in expressions.
func helperEnv() map[string]any {
	return map[string]any{
		// String helpers
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
		// Genre helper
		"hasGenre": func(genres []string, genre string) bool {
			for _, g := range genres {
				if strings.EqualFold(g, genre) {
					return true
				}
			}
			return false
		},
	}
}
