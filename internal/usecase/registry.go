package usecase

import "fmt"

// Registry maps a view name, as used in routes, to its entity usecase.
type Registry map[string]EntityUsecase

func (r Registry) Lookup(name string) (EntityUsecase, error) {
	uc, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntity, name)
	}
	return uc, nil
}
