package filter

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// All disables a categorical filter.
const All = "all"

// Category reads one categorical field from a record. Options lists the
// accepted filter values besides All.
type Category[T any] struct {
	Value   func(T) string
	Options []string
}

// Spec declares how records of one entity are searched and filtered.
type Spec[T any] struct {
	// Text fields are matched against the search term, any match wins.
	Text       []func(T) string
	Categories map[string]Category[T]
}

// Criteria is the user's current search term and categorical selections.
type Criteria struct {
	Search     string
	Categories map[string]string
}

// Validate rejects unknown categories and values outside a category's options.
func (s Spec[T]) Validate(c Criteria) error {
	for key, value := range c.Categories {
		cat, ok := s.Categories[key]
		if !ok {
			return fmt.Errorf("unknown filter %q", key)
		}
		if value == "" || value == All {
			continue
		}
		if !slices.Contains(cat.Options, value) {
			return fmt.Errorf("invalid value %q for filter %q", value, key)
		}
	}
	return nil
}

// Declared returns c without the categories s does not declare.
func (s Spec[T]) Declared(c Criteria) Criteria {
	out := Criteria{Search: c.Search, Categories: make(map[string]string, len(c.Categories))}
	for key, value := range c.Categories {
		if _, ok := s.Categories[key]; ok {
			out.Categories[key] = value
		}
	}
	return out
}

// CategoryNames returns the declared category keys in sorted order.
func (s Spec[T]) CategoryNames() []string {
	names := make([]string, 0, len(s.Categories))
	for name := range s.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply narrows records to those matching c. It does not modify records and
// always returns a new slice. An empty search and "all" (or empty) category
// values leave their axis unfiltered. Unknown categories are ignored.
func Apply[T any](records []T, spec Spec[T], c Criteria) []T {
	term := strings.ToLower(strings.TrimSpace(c.Search))
	out := make([]T, 0, len(records))
	for _, r := range records {
		if term != "" && !matchesText(r, spec.Text, term) {
			continue
		}
		if !matchesCategories(r, spec.Categories, c.Categories) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesText[T any](r T, fields []func(T) string, term string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field(r)), term) {
			return true
		}
	}
	return false
}

func matchesCategories[T any](r T, categories map[string]Category[T], selected map[string]string) bool {
	for key, want := range selected {
		if want == "" || want == All {
			continue
		}
		cat, ok := categories[key]
		if !ok {
			continue
		}
		if cat.Value(r) != want {
			return false
		}
	}
	return true
}
