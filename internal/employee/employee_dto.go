package employee

import "time"

type CreateEmployeeRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	IsActive  *bool  `json:"isActive"` // defaults to true when omitted
}

type UpdateEmployeeRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	IsActive  bool   `json:"isActive"`
}

type EmployeeResponse struct {
	ID        int       `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ListEmployeesQuery struct {
	PageNumber int    `form:"pageNumber,default=1"`
	PageSize   int    `form:"pageSize,default=10"`
	SearchTerm string `form:"searchTerm"`
	IsActive   *bool  `form:"isActive"`
}

type PaginationMetadata struct {
	TotalCount      int64 `json:"totalCount"`
	PageNumber      int   `json:"pageNumber"`
	PageSize        int   `json:"pageSize"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// PaginatedEmployeesResponse is recomputed per query and carries no identity
// of its own.
type PaginatedEmployeesResponse struct {
	Employees  []EmployeeResponse `json:"employees"`
	Pagination PaginationMetadata `json:"pagination"`
}
