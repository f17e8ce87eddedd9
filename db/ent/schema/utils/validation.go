package utils

import "errors"

// EnumValidator builds a field validator that accepts exactly the given
// values. Schemas must build the allowed set from the constants package so
// the column constraint can never drift from application-side normalization.
func EnumValidator(allowed ...string) func(string) error {
	set := map[string]struct{}{}
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return errors.New("validation failed")
	}
}
