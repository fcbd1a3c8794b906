package employee

import (
	"net/http"
	"strconv"

	employeeerrors "employee-api/internal/employee/errors"
	"employee-api/internal/shared/apperror"
	"employee-api/internal/shared/contextutil"
	"employee-api/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	logger := contextutil.GetLogger(c.Request.Context(), h.logger)
	logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Message)
}

// pathID parses the :id segment; anything non-numeric counts as an invalid
// identifier, same as id <= 0.
func pathID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, employeeerrors.ErrInvalidEmployeeID
	}
	return id, nil
}

func (h *Handler) Create(c *gin.Context) {
	h.logger.Debug("http create employee")

	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create employee binding failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Employee created successfully.", resp)
}

func (h *Handler) GetAll(c *gin.Context) {
	h.logger.Debug("http list employees")

	var q ListEmployeesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.logger.Warn("http list employees binding failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Employees retrieved successfully.", resp)
}

func (h *Handler) GetById(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.logger.Debug("http get employee by id", zap.Int("employee_id", id))

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Employee retrieved successfully.", resp)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.logger.Debug("http update employee", zap.Int("employee_id", id))

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update employee binding failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Employee updated successfully.", resp)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.logger.Debug("http delete employee", zap.Int("employee_id", id))

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Employee deleted successfully.", nil)
}
