package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"neuroclinic/internal/domain/entity"
	"neuroclinic/internal/domain/repository"
	"neuroclinic/internal/form"
	"neuroclinic/internal/querycache"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

type insertCall struct {
	Entity entity.Type
	Record entity.Record
}

type updateCall struct {
	Entity entity.Type
	ID     uuid.UUID
	Record entity.Record
}

// memoryStore is a RecordStore over in-memory rows. Rows are kept in their
// JSON shape and decoded into the destination on Select.
type memoryStore struct {
	mu      sync.Mutex
	rows    map[entity.Type][]map[string]any
	selects map[entity.Type]int
	inserts []insertCall
	updates []updateCall

	selectErr error
	insertErr map[entity.Type]error
	// beforeInsert runs outside the lock, before the row is stored.
	beforeInsert func()
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		rows:      make(map[entity.Type][]map[string]any),
		selects:   make(map[entity.Type]int),
		insertErr: make(map[entity.Type]error),
	}
}

func (s *memoryStore) seed(t entity.Type, rows ...map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[t] = append(s.rows[t], rows...)
}

func (s *memoryStore) selectCount(t entity.Type) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selects[t]
}

func (s *memoryStore) insertCalls() []insertCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]insertCall(nil), s.inserts...)
}

func (s *memoryStore) Select(_ context.Context, query entity.ListQuery, dest any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selects[query.Entity]++
	if s.selectErr != nil {
		return s.selectErr
	}

	matched := make([]map[string]any, 0)
	for _, row := range s.rows[query.Entity] {
		ok := true
		for _, f := range query.Filters {
			if fmt.Sprint(row[f.Column]) != fmt.Sprint(f.Value) {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, row)
		}
	}

	raw, err := json.Marshal(matched)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

func (s *memoryStore) Insert(_ context.Context, t entity.Type, record entity.Record) error {
	if s.beforeInsert != nil {
		s.beforeInsert()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make(entity.Record, len(record))
	for k, v := range record {
		copied[k] = v
	}
	s.inserts = append(s.inserts, insertCall{Entity: t, Record: copied})

	if err := s.insertErr[t]; err != nil {
		return err
	}
	row := map[string]any(copied)
	if _, ok := row["id"]; !ok {
		row["id"] = uuid.New()
	}
	s.rows[t] = append(s.rows[t], row)
	return nil
}

func (s *memoryStore) Update(_ context.Context, t entity.Type, id uuid.UUID, record entity.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.updates = append(s.updates, updateCall{Entity: t, ID: id, Record: record})
	for _, row := range s.rows[t] {
		if fmt.Sprint(row["id"]) == id.String() {
			for k, v := range record {
				row[k] = v
			}
			return nil
		}
	}
	return &repository.StoreError{Class: repository.ClassNotFound, Message: "record not found"}
}

type identityStub struct {
	mu          sync.Mutex
	created     []string
	credentials []string
	deleted     []uuid.UUID
	createErr   error
	deleteErr   error
}

func (s *identityStub) CreateAccount(_ context.Context, email, credential string, _ entity.JSON) (*entity.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = append(s.created, email)
	s.credentials = append(s.credentials, credential)
	return &entity.Identity{ID: uuid.New(), Email: email}, nil
}

func (s *identityStub) DeleteAccount(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, id)
	return s.deleteErr
}

type recordingNotifier struct {
	mu   sync.Mutex
	seen []form.Notification
}

func (n *recordingNotifier) Notify(_ context.Context, note form.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.seen = append(n.seen, note)
}

func (n *recordingNotifier) last() form.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.seen) == 0 {
		return form.Notification{}
	}
	return n.seen[len(n.seen)-1]
}

func newTestDeps(t *testing.T, store repository.RecordStore) (Dependencies, *recordingNotifier) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	notifier := &recordingNotifier{}
	cache := querycache.New(querycache.NewMemoryStore(time.Minute, time.Minute), querycache.Options{TTL: time.Minute, Prefix: "test"}, logger, nil)
	return Dependencies{
		Store:    store,
		Cache:    cache,
		Notifier: notifier,
		Log:      logger,
		Now:      func() time.Time { return fixedNow },
	}, notifier
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}
