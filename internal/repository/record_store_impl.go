package repository

import (
	"context"
	"fmt"

	"neuroclinic/internal/domain/entity"
	domainRepo "neuroclinic/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type recordStore struct {
	db *gorm.DB
}

func NewRecordStore(db *gorm.DB) domainRepo.RecordStore {
	return &recordStore{db: db}
}

func (r *recordStore) Select(ctx context.Context, query entity.ListQuery, dest any) error {
	stmt := &gorm.Statement{DB: r.db}
	if err := stmt.Parse(dest); err != nil {
		return classify(fmt.Errorf("parse destination: %w", err))
	}
	if stmt.Schema.Table != string(query.Entity) {
		return classify(fmt.Errorf("destination table %q does not match entity %q", stmt.Schema.Table, query.Entity))
	}

	db := r.db.WithContext(ctx)
	if len(query.Columns) > 0 {
		db = db.Select(query.Columns)
	}

	if len(query.Filters) > 0 {
		exprs := make([]clause.Expression, 0, len(query.Filters))
		for _, f := range query.Filters {
			exprs = append(exprs, clause.Eq{
				Column: clause.Column{Table: clause.CurrentTable, Name: f.Column},
				Value:  f.Value,
			})
		}
		db = db.Clauses(clause.Where{Exprs: exprs})
	}

	for _, j := range query.Joins {
		db = db.Preload(j.Relation)
	}

	if query.OrderBy != "" {
		db = db.Order(clause.OrderByColumn{
			Column: clause.Column{Table: clause.CurrentTable, Name: query.OrderBy},
			Desc:   query.Descending,
		})
	}

	return classify(db.Find(dest).Error)
}

func (r *recordStore) Insert(ctx context.Context, entityType entity.Type, record entity.Record) error {
	return classify(r.db.WithContext(ctx).Table(string(entityType)).Create(map[string]any(record)).Error)
}

func (r *recordStore) Update(ctx context.Context, entityType entity.Type, id uuid.UUID, record entity.Record) error {
	result := r.db.WithContext(ctx).
		Table(string(entityType)).
		Where("id = ?", id).
		Updates(map[string]any(record))
	if result.Error != nil {
		return classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return classify(gorm.ErrRecordNotFound)
	}
	return nil
}
