package form

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"neuroclinic/internal/domain/entity"

	"github.com/cespare/xxhash/v2"
)

// Prefill copies a default into Target whenever Trigger is set. It is
// one-way: setting Target directly never triggers anything.
type Prefill struct {
	Trigger string
	Target  string
	Lookup  func(value string) (string, bool)
}

// InsertFunc performs the write for an assembled record.
type InsertFunc func(ctx context.Context, record entity.Record) error

// Hooks are run around a submission.
type Hooks struct {
	// Invalidate marks affected lists stale after a successful insert.
	Invalidate         func(ctx context.Context)
	Notifier           Notifier
	OnSuccess          func()
	SuccessTitle       string
	SuccessDescription string
	FailureTitle       string
}

func (h Hooks) notify(ctx context.Context, n Notification) {
	if h.Notifier != nil {
		h.Notifier.Notify(ctx, n)
	}
}

// Form holds the current values of one create form.
type Form struct {
	schema   *Schema
	prefills []Prefill

	mu     sync.Mutex
	values map[string]string

	inFlight atomic.Bool
}

func New(schema *Schema, prefills ...Prefill) *Form {
	return &Form{
		schema:   schema,
		prefills: prefills,
		values:   make(map[string]string),
	}
}

func (f *Form) Schema() *Schema {
	return f.schema
}

// Set assigns one field and runs any prefill it triggers.
func (f *Form) Set(field, value string) error {
	if _, ok := f.schema.Field(field); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[field] = value
	for _, p := range f.prefills {
		if p.Trigger != field || p.Lookup == nil {
			continue
		}
		if v, ok := p.Lookup(value); ok && v != "" {
			f.values[p.Target] = v
		}
	}
	return nil
}

// Load restores a full set of values without running prefills.
func (f *Form) Load(values map[string]string) error {
	for name := range values {
		if _, ok := f.schema.Field(name); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for name, v := range values {
		f.values[name] = v
	}
	return nil
}

func (f *Form) Values() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = make(map[string]string)
}

// Fingerprint identifies the entity plus the current values, ignoring blanks.
func (f *Form) Fingerprint() string {
	values := f.Values()
	names := make([]string, 0, len(values))
	for name, v := range values {
		if v != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	d := xxhash.New()
	for _, name := range names {
		_, _ = d.WriteString(name)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(values[name])
		_, _ = d.WriteString("\x00")
	}
	return fmt.Sprintf("%s:%016x", f.schema.Entity, d.Sum64())
}

// InFlight reports whether a submission is running.
func (f *Form) InFlight() bool {
	return f.inFlight.Load()
}

// Submit assembles the record and hands it to insert. Only one submission
// per form runs at a time. On failure the values are kept and the returned
// notification carries the backend message verbatim.
func (f *Form) Submit(ctx context.Context, insert InsertFunc, hooks Hooks) (Notification, error) {
	if !f.inFlight.CompareAndSwap(false, true) {
		return Notification{}, ErrSubmissionInFlight
	}
	defer f.inFlight.Store(false)

	record, err := f.schema.Assemble(f.Values())
	if err != nil {
		return Notification{}, err
	}

	if err := insert(ctx, record); err != nil {
		n := Notification{
			Title:       hooks.FailureTitle,
			Description: err.Error(),
			Variant:     VariantDestructive,
		}
		hooks.notify(ctx, n)
		return n, err
	}

	if hooks.Invalidate != nil {
		hooks.Invalidate(ctx)
	}

	n := Notification{
		Title:       hooks.SuccessTitle,
		Description: hooks.SuccessDescription,
		Variant:     VariantDefault,
	}
	hooks.notify(ctx, n)
	f.Reset()
	if hooks.OnSuccess != nil {
		hooks.OnSuccess()
	}
	return n, nil
}
