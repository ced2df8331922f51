package instruments

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownInstrument = errors.New("unknown instrument")

// All returns a fresh instance of every built-in instrument in canonical order
func All() []Questionnaire {
	return []Questionnaire{
		NewCSESPublic(),
		NewGMS(),
		NewGSE(),
		NewPANASC(),
		NewPerceivedSafety(),
		NewProsocial(),
		NewSCS(),
		NewSPIN(),
		NewSTAIY1(),
	}
}

// Registry resolves instruments by name
type Registry struct {
	ordered []Questionnaire
	byName  map[string]Questionnaire
}

func NewRegistry(questionnaires ...Questionnaire) *Registry {
	r := &Registry{byName: make(map[string]Questionnaire, len(questionnaires))}
	for _, q := range questionnaires {
		key := strings.ToLower(q.Name())
		if _, exists := r.byName[key]; exists {
			continue
		}
		r.byName[key] = q
		r.ordered = append(r.ordered, q)
	}
	return r
}

// DefaultRegistry holds the nine built-in instruments
func DefaultRegistry() *Registry {
	return NewRegistry(All()...)
}

// Get looks an instrument up by name, ignoring case
func (r *Registry) Get(name string) (Questionnaire, bool) {
	q, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	return q, ok
}

func (r *Registry) List() []Questionnaire {
	return append([]Questionnaire(nil), r.ordered...)
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ordered))
	for _, q := range r.ordered {
		names = append(names, q.Name())
	}
	return names
}

// Resolve maps names to instruments preserving the requested order
func (r *Registry) Resolve(names []string) ([]Questionnaire, error) {
	resolved := make([]Questionnaire, 0, len(names))
	for _, name := range names {
		q, ok := r.Get(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownInstrument, name)
		}
		resolved = append(resolved, q)
	}
	return resolved, nil
}
