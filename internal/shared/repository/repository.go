package repository

import (
	"context"

	"gorm.io/gorm"
)

// Entity is satisfied by any model embedding model.Base. T is always
// instantiated with a pointer type (e.g. *employee.Employee).
type Entity interface {
	PrimaryKey() int
	MarkDeleted()
}

// Repository is a generic data-access facade over GORM that enforces the
// soft-delete convention on every read: rows with is_deleted = true are
// invisible to all queries, uniformly, without each caller re-applying the
// filter.
//
// Writes are staged inside a unit of work opened with Begin and become
// observable only once SaveChanges commits. A repository that was never
// started with Begin executes writes directly (each wrapped in its own
// transaction by GORM).
type Repository[T Entity] struct {
	db       *gorm.DB
	tx       bool
	affected int64
}

func New[T Entity](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// Begin opens a unit of work bound to a single database transaction.
func (r *Repository[T]) Begin(ctx context.Context) *Repository[T] {
	return &Repository[T]{db: r.db.WithContext(ctx).Begin(), tx: true}
}

// GetAll returns a further-filterable query restricted to non-deleted rows.
// Callers compose predicates and execute it themselves.
func (r *Repository[T]) GetAll(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(new(T)).Where("is_deleted = ?", false)
}

// GetByID returns a query for the non-deleted row with a matching identifier;
// executing it yields zero or one result.
func (r *Repository[T]) GetByID(ctx context.Context, id int) *gorm.DB {
	return r.GetAll(ctx).Where("id = ?", id)
}

// GetByIDNoTracking mirrors GetByID. GORM keeps no change tracker, so the
// read-only hint has nothing to disable here; the method stays so callers can
// still signal intent.
func (r *Repository[T]) GetByIDNoTracking(ctx context.Context, id int) *gorm.DB {
	return r.GetByID(ctx, id)
}

// Add stages a new entity for insertion. The identifier is assigned by
// storage when the insert executes.
func (r *Repository[T]) Add(ctx context.Context, entity T) error {
	res := r.db.WithContext(ctx).Create(entity)
	r.affected += res.RowsAffected
	return res.Error
}

// AddRange stages a batch of new entities for insertion.
func (r *Repository[T]) AddRange(ctx context.Context, entities []T) error {
	res := r.db.WithContext(ctx).Create(entities)
	r.affected += res.RowsAffected
	return res.Error
}

// Update stages a full-record overwrite of an existing entity.
func (r *Repository[T]) Update(ctx context.Context, entity T) error {
	res := r.db.WithContext(ctx).Save(entity)
	r.affected += res.RowsAffected
	return res.Error
}

// UpdateBulk stages full-record overwrites for each entity in the slice.
func (r *Repository[T]) UpdateBulk(ctx context.Context, entities []T) error {
	for _, entity := range entities {
		if err := r.Update(ctx, entity); err != nil {
			return err
		}
	}
	return nil
}

// Delete soft-deletes: the entity is flagged and staged as an update, the row
// is never removed.
func (r *Repository[T]) Delete(ctx context.Context, entity T) error {
	entity.MarkDeleted()
	return r.Update(ctx, entity)
}

// DeleteRange soft-deletes each entity in the slice.
func (r *Repository[T]) DeleteRange(ctx context.Context, entities []T) error {
	for _, entity := range entities {
		if err := r.Delete(ctx, entity); err != nil {
			return err
		}
	}
	return nil
}

// HardDelete stages physical, irreversible row removal.
func (r *Repository[T]) HardDelete(ctx context.Context, entity T) error {
	res := r.db.WithContext(ctx).Delete(entity)
	r.affected += res.RowsAffected
	return res.Error
}

// DeleteBulk stages physical removal of every entity in the slice.
func (r *Repository[T]) DeleteBulk(ctx context.Context, entities []T) error {
	res := r.db.WithContext(ctx).Delete(entities)
	r.affected += res.RowsAffected
	return res.Error
}

// SaveChanges commits the unit of work and reports how many rows the staged
// operations touched. If the underlying store rejects the transaction, none
// of the staged writes are observed.
func (r *Repository[T]) SaveChanges() (int64, error) {
	if r.tx {
		if err := r.db.Commit().Error; err != nil {
			return 0, err
		}
	}
	return r.affected, nil
}

// Rollback abandons the unit of work. Safe to defer after SaveChanges; a
// rollback on a committed transaction is a no-op error that is discarded.
func (r *Repository[T]) Rollback() {
	if r.tx {
		_ = r.db.Rollback().Error
	}
}
