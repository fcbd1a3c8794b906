package employee

import (
	"employee-api/internal/shared/model"
)

// Employee is the sole persisted entity. Email uniqueness is enforced only
// among non-deleted rows, so a soft-deleted employee's email can be reused.
type Employee struct {
	model.Base
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	Email     string `gorm:"not null;index:uq_employees_email,unique,where:is_deleted = false"`
	IsActive  bool   `gorm:"not null;default:true"`
}
