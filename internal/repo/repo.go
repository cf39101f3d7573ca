package repo

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when an update, delete or lookup matches no row.
var ErrNotFound = errors.New("record not found")

// Entity is any model with a numeric primary key.
type Entity interface {
	PrimaryID() uint
}

// ListScope narrows a List call. OfficeID nil means all offices (the
// office master itself is the only unscoped entity).
type ListScope struct {
	OfficeID     *uint
	ApprovedOnly bool
}

// Repository is the uniform CRUD contract shared by every master entity.
// One instance per entity type; all it does is translate a model to a
// parameterized statement and back.
type Repository[T Entity] struct {
	db *gorm.DB
}

func New[T Entity](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// List returns active rows in scope. No rows is an empty slice, not an error.
func (r *Repository[T]) List(scope ListScope) ([]T, error) {
	q := r.db.Where("is_active = ?", true)
	if scope.OfficeID != nil {
		q = q.Where("office_id = ?", *scope.OfficeID)
	}
	if scope.ApprovedOnly {
		q = q.Where("is_approved = ?", true)
	}

	out := make([]T, 0)
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository[T]) GetByID(id uint) (*T, error) {
	var m T
	err := r.db.First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository[T]) Create(m *T) error {
	return r.db.Create(m).Error
}

// Update is a full-row update by primary key. Audit creation fields and
// the soft-delete flag are not touched.
func (r *Repository[T]) Update(id uint, m *T) error {
	res := r.db.Model(new(T)).
		Where("id = ?", id).
		Select("*").
		Omit("id", "created_at", "created_by", "is_active").
		Updates(m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SoftDelete flips is_active off. A second delete of the same id matches
// nothing and reports ErrNotFound (idempotent absence, not success).
func (r *Repository[T]) SoftDelete(id uint) error {
	res := r.db.Model(new(T)).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// PendingApproval lists active rows still waiting for approval. Only
// meaningful for entities carrying an is_approved column.
func (r *Repository[T]) PendingApproval(officeID uint) ([]T, error) {
	out := make([]T, 0)
	err := r.db.
		Where("office_id = ? AND is_active = ? AND is_approved = ?", officeID, true, false).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository[T]) Approve(id uint, approvedBy uint) error {
	res := r.db.Model(new(T)).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]any{"is_approved": true, "approved_by": approvedBy})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
