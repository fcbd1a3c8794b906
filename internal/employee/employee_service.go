package employee

import (
	"context"
	"net/mail"
	"strings"
	"time"

	employeeerrors "employee-api/internal/employee/errors"
	"employee-api/internal/shared/contextutil"

	"go.uber.org/zap"
)

const maxPageSize = 100

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, id int) (EmployeeResponse, error)
	List(ctx context.Context, q ListEmployeesQuery) (PaginatedEmployeesResponse, error)
	Update(ctx context.Context, id int, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	if err := validateFields(req.FirstName, req.LastName, req.Email); err != nil {
		s.logger.Warn("create employee validation failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	tx := s.repo.Begin(ctx)
	defer tx.Rollback()

	existing, err := tx.FindByEmail(ctx, req.Email, 0)
	if err != nil {
		s.logger.Error("create employee email lookup failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if existing != nil {
		s.logger.Warn("create employee email taken",
			zap.String("request_id", rid),
			zap.String("email", req.Email),
		)
		return EmployeeResponse{}, employeeerrors.ErrEmailExists
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	now := time.Now().UTC()
	empl := &Employee{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsActive:  active,
	}
	empl.CreatedAt = now
	empl.UpdatedAt = now
	empl.IsDeleted = false

	if err := tx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if _, err := tx.SaveChanges(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int("employee_id", empl.ID),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetByID(ctx context.Context, id int) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.Int("employee_id", id))

	if id <= 0 {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get employee by id failed", zap.Int("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) List(ctx context.Context, q ListEmployeesQuery) (PaginatedEmployeesResponse, error) {
	s.logger.Debug("list employees requested",
		zap.Int("page_number", q.PageNumber),
		zap.Int("page_size", q.PageSize),
		zap.String("search_term", q.SearchTerm),
	)

	if q.PageNumber < 1 {
		return PaginatedEmployeesResponse{}, employeeerrors.ErrInvalidPageNumber
	}
	if q.PageSize < 1 || q.PageSize > maxPageSize {
		return PaginatedEmployeesResponse{}, employeeerrors.ErrInvalidPageSize
	}

	rows, total, err := s.repo.FindPage(ctx, q)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return PaginatedEmployeesResponse{}, mapRepositoryError(err)
	}

	// ceiling division; a page number past the last page is not an error,
	// it just comes back empty
	totalPages := int((total + int64(q.PageSize) - 1) / int64(q.PageSize))

	return PaginatedEmployeesResponse{
		Employees: mapToListResponse(rows),
		Pagination: PaginationMetadata{
			TotalCount:      total,
			PageNumber:      q.PageNumber,
			PageSize:        q.PageSize,
			TotalPages:      totalPages,
			HasNextPage:     q.PageNumber < totalPages,
			HasPreviousPage: q.PageNumber > 1,
		},
	}, nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.Int("employee_id", id),
	)

	if id <= 0 {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	if err := validateFields(req.FirstName, req.LastName, req.Email); err != nil {
		s.logger.Warn("update employee validation failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	tx := s.repo.Begin(ctx)
	defer tx.Rollback()

	empl, err := tx.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("update employee fetch existing failed",
			zap.String("request_id", rid),
			zap.Int("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	// self-match on id is excluded, so keeping the current email succeeds
	other, err := tx.FindByEmail(ctx, req.Email, id)
	if err != nil {
		s.logger.Error("update employee email lookup failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if other != nil {
		s.logger.Warn("update employee email taken by another",
			zap.String("request_id", rid),
			zap.String("email", req.Email),
			zap.Int("holder_id", other.ID),
		)
		return EmployeeResponse{}, employeeerrors.ErrEmailExistsForOther
	}

	empl.FirstName = req.FirstName
	empl.LastName = req.LastName
	empl.Email = req.Email
	empl.IsActive = req.IsActive
	empl.UpdatedAt = time.Now().UTC()

	if err := tx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if _, err := tx.SaveChanges(); err != nil {
		s.logger.Error("update employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.Int("employee_id", id),
	)

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.Int("employee_id", id),
	)

	if id <= 0 {
		return employeeerrors.ErrInvalidEmployeeID
	}

	tx := s.repo.Begin(ctx)
	defer tx.Rollback()

	empl, err := tx.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("delete employee fetch existing failed",
			zap.String("request_id", rid),
			zap.Int("employee_id", id),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}

	if err := tx.SoftDelete(ctx, empl); err != nil {
		s.logger.Error("delete employee failed", zap.String("request_id", rid), zap.Error(err))
		return mapRepositoryError(err)
	}

	if _, err := tx.SaveChanges(); err != nil {
		s.logger.Error("delete employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete employee success",
		zap.String("request_id", rid),
		zap.Int("employee_id", id),
	)
	return nil
}

func validateFields(firstName, lastName, email string) error {
	if strings.TrimSpace(firstName) == "" {
		return employeeerrors.ErrFirstNameRequired
	}
	if strings.TrimSpace(lastName) == "" {
		return employeeerrors.ErrLastNameRequired
	}
	if strings.TrimSpace(email) == "" {
		return employeeerrors.ErrEmailRequired
	}
	if !isValidEmail(email) {
		return employeeerrors.ErrInvalidEmailFormat
	}
	return nil
}

// isValidEmail accepts only plain local@domain addresses: the parsed form
// must round-trip to the input exactly, which rejects display names and
// stray whitespace.
func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        empl.ID,
		FirstName: empl.FirstName,
		LastName:  empl.LastName,
		FullName:  empl.FirstName + " " + empl.LastName,
		Email:     empl.Email,
		IsActive:  empl.IsActive,
		CreatedAt: empl.CreatedAt,
		UpdatedAt: empl.UpdatedAt,
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
