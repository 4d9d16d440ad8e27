package form

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"neuroclinic/internal/domain/entity"
	"neuroclinic/pkg/validator"

	"github.com/google/uuid"
)

type Kind string

const (
	KindText      Kind = "text"
	KindEmail     Kind = "email"
	KindDecimal   Kind = "decimal"
	KindDate      Kind = "date"
	KindTime      Kind = "time"
	KindEnum      Kind = "enum"
	KindReference Kind = "reference"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var fieldValidator = validator.NewValidator()

// Field describes one input of a create form.
type Field struct {
	Name      string   `json:"name"`
	Label     string   `json:"label"`
	Kind      Kind     `json:"kind"`
	Required  bool     `json:"required"`
	Options   []string `json:"options,omitempty"`
	MaxLength int      `json:"max_length,omitempty"`
	// Positive rejects zero and negative decimals.
	Positive bool `json:"positive,omitempty"`
	// Scale and MaxDigits mirror the NUMERIC(MaxDigits, Scale) column of a
	// decimal field. A zero MaxDigits leaves the value unbounded.
	Scale     int `json:"scale,omitempty"`
	MaxDigits int `json:"max_digits,omitempty"`
	// References names the entity a reference field points to.
	References entity.Type `json:"references,omitempty"`
}

// Check is a rule spanning several fields, run once every field parsed.
type Check struct {
	Field   string
	Message string
	Valid   func(entity.Record) bool
}

// Schema is the declarative shape of one entity's create form.
type Schema struct {
	Entity entity.Type `json:"entity"`
	Fields []Field     `json:"fields"`
	Checks []Check     `json:"-"`
}

func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Assemble turns raw form values into an insert payload. Every schema field
// appears in the result; blank optional fields are nil.
func (s *Schema) Assemble(values map[string]string) (entity.Record, error) {
	verr := &ValidationError{}
	for name := range values {
		if _, ok := s.Field(name); !ok {
			verr.add(name, fmt.Sprintf("%s is not a field of %s", name, s.Entity))
		}
	}

	record := make(entity.Record, len(s.Fields))
	for _, f := range s.Fields {
		raw := strings.TrimSpace(values[f.Name])
		if raw == "" {
			if f.Required {
				verr.add(f.Name, f.Name+" is required")
				continue
			}
			record[f.Name] = nil
			continue
		}

		v, msg := f.parse(raw)
		if msg != "" {
			verr.add(f.Name, msg)
			continue
		}
		record[f.Name] = v
	}

	if verr.empty() {
		for _, c := range s.Checks {
			if !c.Valid(record) {
				verr.add(c.Field, c.Message)
			}
		}
	}

	if !verr.empty() {
		return nil, verr
	}
	return record, nil
}

// parse converts a non-blank value. A non-empty message means failure.
func (f Field) parse(raw string) (any, string) {
	switch f.Kind {
	case KindText:
		if f.MaxLength > 0 {
			if err := fieldValidator.ValidateVar(raw, fmt.Sprintf("max=%d", f.MaxLength)); err != nil {
				return nil, validator.FieldMessage(f.Name, err)
			}
		}
		return raw, ""

	case KindEmail:
		if err := fieldValidator.ValidateVar(raw, "email,max=255"); err != nil {
			return nil, validator.FieldMessage(f.Name, err)
		}
		return strings.ToLower(raw), ""

	case KindDecimal:
		d, err := ParseDecimal(raw)
		if err != nil {
			return nil, f.Name + " must be a number"
		}
		if f.MaxDigits > 0 {
			if err := CheckPrecision(d, f.MaxDigits, f.Scale); err != nil {
				if errors.Is(err, ErrTooManyDecimals) {
					return nil, fmt.Sprintf("%s must have at most %d decimal places", f.Name, f.Scale)
				}
				return nil, f.Name + " is too large"
			}
		}
		if f.Positive && !d.IsPositive() {
			return nil, f.Name + " must be greater than zero"
		}
		return d, ""

	case KindDate:
		t, err := time.Parse(DateLayout, raw)
		if err != nil {
			return nil, f.Name + " must be a date in YYYY-MM-DD format"
		}
		return t, ""

	case KindTime:
		t, err := entity.ParseClock(raw)
		if err != nil || t.Second() != 0 {
			return nil, f.Name + " must be a time in HH:MM format"
		}
		return t.Format(TimeLayout), ""

	case KindEnum:
		if !slices.Contains(f.Options, raw) {
			return nil, f.Name + " must be one of " + strings.Join(f.Options, ", ")
		}
		return raw, ""

	case KindReference:
		raw = strings.ToLower(raw)
		if err := fieldValidator.ValidateVar(raw, "uuid"); err != nil {
			return nil, validator.FieldMessage(f.Name, err)
		}
		return uuid.MustParse(raw), ""
	}
	return nil, f.Name + " has an unsupported kind"
}
