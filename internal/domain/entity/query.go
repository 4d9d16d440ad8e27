package entity

import (
	"fmt"
	"sort"
	"strings"
)

// Type tags an entity kind. Its value is the backing table name.
type Type string

const (
	TypePatient     Type = "patients"
	TypeProfile     Type = "profiles"
	TypeAppointment Type = "appointments"
	TypeSpecialty   Type = "specialties"
	TypeRoom        Type = "rooms"
	TypeAccount     Type = "accounts"
)

func (t Type) String() string {
	return string(t)
}

// Record is a flat insert/update payload keyed by column name.
// A nil value is stored as NULL.
type Record map[string]any

// Filter is an equality condition on one column.
type Filter struct {
	Column string
	Value  any
}

// Join embeds a related record. Entity names the type the relation reads
// from, so invalidating that type also invalidates lists that embed it.
type Join struct {
	Relation string
	Entity   Type
}

// ListQuery describes one list read: which entity, which columns, which
// equality filters, which relations to embed and how to order the rows.
type ListQuery struct {
	Entity     Type
	Columns    []string
	Filters    []Filter
	Joins      []Join
	OrderBy    string
	Descending bool
}

// Dependencies returns the entity itself followed by every joined entity,
// without duplicates.
func (q ListQuery) Dependencies() []Type {
	deps := []Type{q.Entity}
	for _, j := range q.Joins {
		dup := false
		for _, d := range deps {
			if d == j.Entity {
				dup = true
				break
			}
		}
		if !dup {
			deps = append(deps, j.Entity)
		}
	}
	return deps
}

// Key renders the query parameters in canonical form. Two queries with the
// same parameters produce the same key regardless of filter order.
func (q ListQuery) Key() string {
	var b strings.Builder
	b.WriteString(string(q.Entity))

	b.WriteString("|select=")
	b.WriteString(strings.Join(q.Columns, ","))

	filters := make([]string, 0, len(q.Filters))
	for _, f := range q.Filters {
		filters = append(filters, fmt.Sprintf("%s=%v", f.Column, f.Value))
	}
	sort.Strings(filters)
	b.WriteString("|where=")
	b.WriteString(strings.Join(filters, "&"))

	joins := make([]string, 0, len(q.Joins))
	for _, j := range q.Joins {
		joins = append(joins, j.Relation)
	}
	sort.Strings(joins)
	b.WriteString("|join=")
	b.WriteString(strings.Join(joins, ","))

	b.WriteString("|order=")
	b.WriteString(q.OrderBy)
	if q.Descending {
		b.WriteString(" desc")
	}
	return b.String()
}
