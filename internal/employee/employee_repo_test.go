package employee_test

import (
	"context"
	"testing"

	"employee-api/internal/employee"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRepoTest(t *testing.T) (employee.Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return employee.NewRepository(gdb), mock
}

func employeeRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "is_deleted", "first_name", "last_name", "email", "is_active"})
}

func TestEmployeeRepo_FindByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("free email reports no holder", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectQuery(`SELECT \* FROM "employees" WHERE is_deleted = .+ AND email = .+`).
			WillReturnRows(employeeRows())

		got, err := repo.FindByEmail(ctx, "free@x.com", 0)
		assert.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("taken email returns the holder", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectQuery(`SELECT \* FROM "employees" WHERE is_deleted = .+ AND email = .+`).
			WillReturnRows(employeeRows().AddRow(3, false, "Ana", "Lee", "ana@x.com", true))

		got, err := repo.FindByEmail(ctx, "ana@x.com", 0)
		assert.NoError(t, err)
		if assert.NotNil(t, got) {
			assert.Equal(t, 3, got.ID)
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exclude id leaves the employee itself out", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectQuery(`SELECT \* FROM "employees" WHERE is_deleted = .+ AND email = .+ AND id <> .+`).
			WillReturnRows(employeeRows())

		got, err := repo.FindByEmail(ctx, "ana@x.com", 3)
		assert.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEmployeeRepo_FindPage(t *testing.T) {
	ctx := context.Background()

	t.Run("counts before paging", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "employees" WHERE is_deleted = .+`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
		mock.ExpectQuery(`SELECT \* FROM "employees" WHERE is_deleted = .+ ORDER BY id ASC`).
			WillReturnRows(employeeRows().
				AddRow(11, false, "Ana", "Lee", "ana@x.com", true).
				AddRow(12, false, "Bo", "Tran", "bo@x.com", false))

		rows, total, err := repo.FindPage(ctx, employee.ListEmployeesQuery{PageNumber: 2, PageSize: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(25), total)
		assert.Len(t, rows, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("search and active filters are conjunctive", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		active := true
		mock.ExpectQuery(`SELECT count\(\*\) FROM "employees" WHERE is_deleted = .+ AND \(first_name LIKE .+ OR last_name LIKE .+ OR email LIKE .+\) AND is_active = .+`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery(`SELECT \* FROM "employees" WHERE is_deleted = .+ AND \(first_name LIKE .+ OR last_name LIKE .+ OR email LIKE .+\) AND is_active = .+ ORDER BY id ASC`).
			WillReturnRows(employeeRows().AddRow(1, false, "Ana", "Lee", "ana@x.com", true))

		rows, total, err := repo.FindPage(ctx, employee.ListEmployeesQuery{
			PageNumber: 1,
			PageSize:   10,
			SearchTerm: "ana",
			IsActive:   &active,
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, rows, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
