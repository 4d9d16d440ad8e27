package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"neuroclinic/internal/converter"
	"neuroclinic/internal/delivery/dto"
	"neuroclinic/internal/domain/entity"
	"neuroclinic/internal/domain/repository"
	"neuroclinic/internal/filter"
	"neuroclinic/internal/form"
	"neuroclinic/internal/querycache"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidFilter = errors.New("invalid filter")
	ErrUnknownEntity = errors.New("unknown entity")
)

// EntityUsecase is the list-and-create surface shared by every entity view.
type EntityUsecase interface {
	Entity() entity.Type
	List(ctx context.Context, req *dto.ListRequest) (*dto.ListResponse, error)
	Create(ctx context.Context, req *dto.CreateRecordRequest) (*dto.SubmissionResponse, error)
	Form(ctx context.Context) (*dto.FormResponse, error)
	ChangeField(ctx context.Context, req *dto.FieldChangeRequest) (*dto.FieldChangeResponse, error)
}

// OptionSource lists the choices of a reference field.
type OptionSource func(ctx context.Context) ([]dto.OptionResponse, error)

// Messages are the notification texts of one entity's create form.
type Messages struct {
	Created       string
	CreatedDetail string
	Failed        string
}

// Definition is everything that differs between two entity views.
type Definition[T any] struct {
	Schema *form.Schema
	Query  entity.ListQuery
	Filter filter.Spec[T]
	// Stats summarises the full fetched list, before filtering.
	Stats   func(records []T, now time.Time) any
	Convert func(records []T, now time.Time) any
	// Invalidates lists the entity types made stale by a create.
	Invalidates []entity.Type
	Messages    Messages
	// Enrich adds columns the form does not collect.
	Enrich     func(ctx context.Context, record entity.Record) error
	Prefills   func(ctx context.Context) ([]form.Prefill, error)
	References map[string]OptionSource
}

// Dependencies are the collaborators shared by every catalog.
type Dependencies struct {
	Store    repository.RecordStore
	Cache    *querycache.Cache
	Notifier form.Notifier
	Log      *logrus.Logger
	Now      func() time.Time
}

func (d Dependencies) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// ListResult is a filtered list plus stats computed over the unfiltered one.
type ListResult[T any] struct {
	Items []T
	Total int
	Stats any
}

// SubmissionError is a failed write together with the notification shown for it.
type SubmissionError struct {
	Notification form.Notification
	Err          error
}

func (e *SubmissionError) Error() string {
	return e.Err.Error()
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// EntityCatalog is the generic list, filter, stats and create component
// driven by a Definition.
type EntityCatalog[T any] struct {
	def   Definition[T]
	deps  Dependencies
	guard *form.Guard
}

func NewEntityCatalog[T any](def Definition[T], deps Dependencies) *EntityCatalog[T] {
	if deps.Log == nil {
		deps.Log = logrus.StandardLogger()
	}
	if len(def.Invalidates) == 0 {
		def.Invalidates = []entity.Type{def.Schema.Entity}
	}
	return &EntityCatalog[T]{
		def:   def,
		deps:  deps,
		guard: form.NewGuard(),
	}
}

func (c *EntityCatalog[T]) Entity() entity.Type {
	return c.def.Schema.Entity
}

func (c *EntityCatalog[T]) Schema() *form.Schema {
	return c.def.Schema
}

// Load returns every record of the definition's query, through the cache.
func (c *EntityCatalog[T]) Load(ctx context.Context) ([]T, error) {
	return fetch[T](ctx, c.deps, c.def.Query)
}

// Fetch loads the list, narrows it by criteria and computes stats over the
// full list.
func (c *EntityCatalog[T]) Fetch(ctx context.Context, criteria filter.Criteria) (*ListResult[T], error) {
	if err := c.def.Filter.Validate(criteria); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}

	records, err := c.Load(ctx)
	if err != nil {
		c.deps.Log.Warnf("Failed to list %s: %+v", c.Entity(), err)
		return nil, err
	}

	result := &ListResult[T]{
		Items: filter.Apply(records, c.def.Filter, criteria),
		Total: len(records),
	}
	if c.def.Stats != nil {
		result.Stats = c.def.Stats(records, c.deps.now())
	}
	return result, nil
}

// List serves a list request. Query keys that name no category of the
// entity are ignored; values outside a category's options are rejected.
func (c *EntityCatalog[T]) List(ctx context.Context, req *dto.ListRequest) (*dto.ListResponse, error) {
	criteria := c.def.Filter.Declared(filter.Criteria{Search: req.Search, Categories: req.Filters})
	result, err := c.Fetch(ctx, criteria)
	if err != nil {
		return nil, err
	}

	return &dto.ListResponse{
		Items:    c.def.Convert(result.Items, c.deps.now()),
		Total:    result.Total,
		Filtered: len(result.Items),
		Stats:    result.Stats,
	}, nil
}

func (c *EntityCatalog[T]) Create(ctx context.Context, req *dto.CreateRecordRequest) (*dto.SubmissionResponse, error) {
	return c.submit(ctx, req.Values, c.insert)
}

func (c *EntityCatalog[T]) insert(ctx context.Context, record entity.Record) error {
	if c.def.Enrich != nil {
		if err := c.def.Enrich(ctx, record); err != nil {
			return err
		}
	}
	return c.deps.Store.Insert(ctx, c.Entity(), record)
}

// submit runs one create through a fresh form. Identical submissions that
// overlap in time are turned away with form.ErrSubmissionInFlight.
func (c *EntityCatalog[T]) submit(ctx context.Context, values map[string]string, insert form.InsertFunc) (*dto.SubmissionResponse, error) {
	f := form.New(c.def.Schema)
	if err := f.Load(values); err != nil {
		return nil, err
	}

	release, ok := c.guard.Acquire(f.Fingerprint())
	if !ok {
		return nil, form.ErrSubmissionInFlight
	}
	defer release()

	n, err := f.Submit(ctx, insert, form.Hooks{
		Invalidate:         c.invalidate,
		Notifier:           c.deps.Notifier,
		SuccessTitle:       c.def.Messages.Created,
		SuccessDescription: c.def.Messages.CreatedDetail,
		FailureTitle:       c.def.Messages.Failed,
	})
	if err != nil {
		var verr *form.ValidationError
		if errors.As(err, &verr) {
			return nil, err
		}
		c.deps.Log.Warnf("Failed to create %s: %+v", c.Entity(), err)
		return nil, &SubmissionError{Notification: n, Err: err}
	}

	return &dto.SubmissionResponse{Notification: converter.NotificationToResponse(n)}, nil
}

func (c *EntityCatalog[T]) invalidate(ctx context.Context) {
	if err := c.deps.Cache.Invalidate(ctx, c.def.Invalidates...); err != nil {
		c.deps.Log.Warnf("Failed to invalidate %s lists: %+v", c.Entity(), err)
	}
}

// Form describes the create form with the current options of its reference fields.
func (c *EntityCatalog[T]) Form(ctx context.Context) (*dto.FormResponse, error) {
	refs := make(map[string][]dto.OptionResponse, len(c.def.References))
	for name, source := range c.def.References {
		opts, err := source(ctx)
		if err != nil {
			c.deps.Log.Warnf("Failed to load options for %s.%s: %+v", c.Entity(), name, err)
			return nil, err
		}
		refs[name] = opts
	}
	return converter.SchemaToResponse(c.def.Schema, refs), nil
}

// ChangeField applies one edit to the given values and returns the result,
// including any defaults the edit prefilled.
func (c *EntityCatalog[T]) ChangeField(ctx context.Context, req *dto.FieldChangeRequest) (*dto.FieldChangeResponse, error) {
	var prefills []form.Prefill
	if c.def.Prefills != nil {
		var err error
		prefills, err = c.def.Prefills(ctx)
		if err != nil {
			c.deps.Log.Warnf("Failed to load defaults for %s: %+v", c.Entity(), err)
			return nil, err
		}
	}

	f := form.New(c.def.Schema, prefills...)
	if err := f.Load(req.Values); err != nil {
		return nil, err
	}
	if err := f.Set(req.Field, req.Value); err != nil {
		return nil, err
	}
	return &dto.FieldChangeResponse{Values: f.Values()}, nil
}

// fetch reads query through the cache.
func fetch[T any](ctx context.Context, deps Dependencies, query entity.ListQuery) ([]T, error) {
	return querycache.Fetch(ctx, deps.Cache, query, func(ctx context.Context) ([]T, error) {
		var rows []T
		if err := deps.Store.Select(ctx, query, &rows); err != nil {
			return nil, err
		}
		return rows, nil
	})
}
