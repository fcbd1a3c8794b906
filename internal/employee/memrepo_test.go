package employee_test

import (
	"context"
	"sort"
	"strings"

	"employee-api/internal/employee"

	"gorm.io/gorm"
)

// memRepo is a hand-rolled in-memory Repository for route-level tests.
type memRepo struct {
	rows   map[int]*employee.Employee
	nextID int
}

func newMemRepo() *memRepo {
	return &memRepo{rows: map[int]*employee.Employee{}, nextID: 1}
}

func (m *memRepo) Begin(ctx context.Context) employee.Repository { return m }

func (m *memRepo) Rollback() {}

func (m *memRepo) SaveChanges() (int64, error) { return 0, nil }

func (m *memRepo) FindByID(ctx context.Context, id int) (*employee.Employee, error) {
	e, ok := m.rows[id]
	if !ok || e.IsDeleted {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *e
	return &cp, nil
}

func (m *memRepo) FindByEmail(ctx context.Context, email string, excludeID int) (*employee.Employee, error) {
	for _, e := range m.rows {
		if e.IsDeleted || e.Email != email {
			continue
		}
		if excludeID > 0 && e.ID == excludeID {
			continue
		}
		cp := *e
		return &cp, nil
	}
	return nil, nil
}

func (m *memRepo) FindPage(ctx context.Context, q employee.ListEmployeesQuery) ([]employee.Employee, int64, error) {
	var matched []employee.Employee
	term := strings.TrimSpace(q.SearchTerm)
	for _, e := range m.rows {
		if e.IsDeleted {
			continue
		}
		if term != "" &&
			!strings.Contains(e.FirstName, term) &&
			!strings.Contains(e.LastName, term) &&
			!strings.Contains(e.Email, term) {
			continue
		}
		if q.IsActive != nil && e.IsActive != *q.IsActive {
			continue
		}
		matched = append(matched, *e)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))
	start := (q.PageNumber - 1) * q.PageSize
	if start > len(matched) {
		start = len(matched)
	}
	end := start + q.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (m *memRepo) Create(ctx context.Context, empl *employee.Employee) error {
	empl.ID = m.nextID
	m.nextID++
	cp := *empl
	m.rows[cp.ID] = &cp
	return nil
}

func (m *memRepo) Update(ctx context.Context, empl *employee.Employee) error {
	cp := *empl
	m.rows[cp.ID] = &cp
	return nil
}

func (m *memRepo) SoftDelete(ctx context.Context, empl *employee.Employee) error {
	empl.MarkDeleted()
	return m.Update(ctx, empl)
}
