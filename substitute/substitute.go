package substitute

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
)

// identifier is the accepted shape of a key.
var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Substituter holds a compiled alternation over a fixed value map.
// It is safe for concurrent use.
type Substituter struct {
	values map[string]string
	re     *regexp.Regexp // nil when values is empty
}

// New compiles a Substituter for values. Every key must be an identifier.
func New(values map[string]string) (*Substituter, error) {
	for k := range values {
		if !identifier.MatchString(k) {
			return nil, fmt.Errorf("%w: %q", ErrBadName, k)
		}
	}

	return compile(values), nil
}

// compile builds the matcher without validating keys.
func compile(values map[string]string) *Substituter {
	s := &Substituter{values: maps.Clone(values)}
	if len(values) == 0 {
		return s
	}
	keys := slices.Sorted(maps.Keys(values))
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = regexp.QuoteMeta(k)
	}
	s.re = regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)

	return s
}

// Apply substitutes every whole-word key occurrence in expr.
func (s *Substituter) Apply(expr string) string {
	if s.re == nil {
		return expr
	}

	return s.re.ReplaceAllStringFunc(expr, func(name string) string {
		return "(" + s.values[name] + ")"
	})
}

// References returns the sorted distinct keys occurring in expr.
func (s *Substituter) References(expr string) []string {
	if s.re == nil {
		return nil
	}
	found := s.re.FindAllString(expr, -1)
	slices.Sort(found)

	return slices.Compact(found)
}

// Substitute is the one-shot form of New(values).Apply(expr). An empty map
// returns expr unchanged.
func Substitute(expr string, values map[string]string) string {
	if len(values) == 0 {
		return expr
	}

	return compile(values).Apply(expr)
}

// Resolve returns a copy of values in which every value has been expanded
// until it mentions no key of the map. Keys must be identifiers.
func Resolve(values map[string]string) (map[string]string, error) {
	all, err := New(values)
	if err != nil {
		return nil, err
	}

	const (
		unseen = iota
		visiting
		done
	)
	state := make(map[string]int, len(values))
	out := make(map[string]string, len(values))

	var expand func(key string, path []string) error
	expand = func(key string, path []string) error {
		switch state[key] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("%w: %s", ErrCyclicValue, strings.Join(append(path, key), " -> "))
		}
		state[key] = visiting
		refs := all.References(values[key])
		sub := make(map[string]string, len(refs))
		for _, ref := range refs {
			if err := expand(ref, append(path, key)); err != nil {
				return err
			}
			sub[ref] = out[ref]
		}
		out[key] = Substitute(values[key], sub)
		state[key] = done

		return nil
	}

	for _, k := range slices.Sorted(maps.Keys(values)) {
		if err := expand(k, nil); err != nil {
			return nil, err
		}
	}

	return out, nil
}
