package employee

import (
	"context"
	"errors"
	"strings"

	"employee-api/internal/shared/repository"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Begin(ctx context.Context) Repository
	FindByID(ctx context.Context, id int) (*Employee, error)
	FindByEmail(ctx context.Context, email string, excludeID int) (*Employee, error)
	FindPage(ctx context.Context, q ListEmployeesQuery) ([]Employee, int64, error)
	Create(ctx context.Context, empl *Employee) error
	Update(ctx context.Context, empl *Employee) error
	SoftDelete(ctx context.Context, empl *Employee) error
	SaveChanges() (int64, error)
	Rollback()
}

type repo struct {
	base *repository.Repository[*Employee]
}

func NewRepository(db *gorm.DB) Repository {
	return &repo{base: repository.New[*Employee](db)}
}

func (r *repo) Begin(ctx context.Context) Repository {
	return &repo{base: r.base.Begin(ctx)}
}

func (r *repo) FindByID(ctx context.Context, id int) (*Employee, error) {
	var row Employee
	if err := r.base.GetByID(ctx, id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// FindByEmail looks up a non-deleted employee holding the email. excludeID
// removes the employee itself from the check so an update to its own email
// does not self-conflict. Returns (nil, nil) when the email is free.
func (r *repo) FindByEmail(ctx context.Context, email string, excludeID int) (*Employee, error) {
	q := r.base.GetAll(ctx).Where("email = ?", email)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var row Employee
	err := q.First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// FindPage counts the filtered set, then fetches one page ordered by id
// ascending. Search matches first name, last name, or email as a substring;
// case sensitivity is whatever the storage collation does with LIKE.
func (r *repo) FindPage(ctx context.Context, q ListEmployeesQuery) ([]Employee, int64, error) {
	tx := r.base.GetAll(ctx)

	if term := strings.TrimSpace(q.SearchTerm); term != "" {
		pattern := "%" + term + "%"
		tx = tx.Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ?", pattern, pattern, pattern)
	}
	if q.IsActive != nil {
		tx = tx.Where("is_active = ?", *q.IsActive)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Employee
	err := tx.Order("id ASC").
		Offset((q.PageNumber - 1) * q.PageSize).
		Limit(q.PageSize).
		Find(&rows).Error
	return rows, total, err
}

func (r *repo) Create(ctx context.Context, empl *Employee) error {
	return r.base.Add(ctx, empl)
}

func (r *repo) Update(ctx context.Context, empl *Employee) error {
	return r.base.Update(ctx, empl)
}

func (r *repo) SoftDelete(ctx context.Context, empl *Employee) error {
	return r.base.Delete(ctx, empl)
}

func (r *repo) SaveChanges() (int64, error) {
	return r.base.SaveChanges()
}

func (r *repo) Rollback() {
	r.base.Rollback()
}
