package employee

import (
	"fmt"
	"net/http"
	"strconv"

	"go-sapmock/internal/shared/apperror"
	"go-sapmock/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultTop   = 10
	servicePath  = "/sap/opu/odata/sap/EMPLOYEE_BASIC_SRV"
	employeeType = "EMPLOYEE_BASIC_SRV.Employee"
)

type Handler struct {
	service        Service
	metadataDomain string
	logger         *zap.Logger
}

func NewHandler(service Service, metadataDomain string, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, metadataDomain: metadataDomain, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, response.ODataCode(httpErr.Code), httpErr.Message)
}

// GetAll serves GET /Employees with $skip, $top and $filter. Unparseable
// paging parameters fall back to their defaults rather than erroring.
func (h *Handler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()

	skip, err := strconv.Atoi(c.DefaultQuery("$skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}
	top, err := strconv.Atoi(c.DefaultQuery("$top", strconv.Itoa(defaultTop)))
	if err != nil || top < 1 {
		top = defaultTop
	}
	filter := c.Query("$filter")

	h.logger.Debug("http get employees",
		zap.Int("skip", skip),
		zap.Int("top", top),
		zap.String("filter", filter),
		zap.String("client_ip", c.ClientIP()),
	)

	resp, err := h.service.QueryPage(ctx, skip, top, filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.List(c, http.StatusOK, h.decorate(resp))
}

func (h *Handler) GetByID(c *gin.Context) {
	ctx := c.Request.Context()
	employeeID := c.Param("employeeId")
	h.logger.Debug("http get employee detail", zap.String("employee_id", employeeID))

	resp, err := h.service.FindByID(ctx, employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp.Metadata = h.employeeMetadata(resp.EmployeeID)
	response.Single(c, http.StatusOK, resp)
}

func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create employee validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, response.ODataCode(httpErr.Code), httpErr.Message)
		return
	}

	resp, err := h.service.Create(ctx, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp.Metadata = h.employeeMetadata(resp.EmployeeID)
	response.Single(c, http.StatusCreated, resp)
}

func (h *Handler) GetRoles(c *gin.Context) {
	ctx := c.Request.Context()
	employeeID := c.Param("employeeId")

	roles, err := h.service.RolesOf(ctx, employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.List(c, http.StatusOK, roles)
}

func (h *Handler) GetPrivileges(c *gin.Context) {
	ctx := c.Request.Context()
	employeeID := c.Param("employeeId")

	privileges, err := h.service.PrivilegesOf(ctx, employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.List(c, http.StatusOK, privileges)
}

// CheckAuthorization always answers 200 with a verdict; an unknown employee
// id shows up as hasAuthorization=false plus a note, never as a 404.
func (h *Handler) CheckAuthorization(c *gin.Context) {
	ctx := c.Request.Context()
	employeeID := c.Param("employeeId")
	object := c.Query("object")
	field := c.Query("field")
	value := c.Query("value")

	if object == "" || field == "" || value == "" {
		response.Error(c, http.StatusBadRequest, "BadRequest", "object, field and value are required")
		return
	}

	h.logger.Debug("http check authorization",
		zap.String("employee_id", employeeID),
		zap.String("object", object),
		zap.String("field", field),
		zap.String("value", value),
	)

	decision := h.service.CheckAuthorization(ctx, employeeID, object, field, value)
	response.Single(c, http.StatusOK, decision)
}

func (h *Handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	count, err := strconv.Atoi(c.Query("count"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "BadRequest", "count must be a positive integer")
		return
	}

	h.logger.Info("http generate employees", zap.Int("count", count))

	if err := h.service.Generate(ctx, count); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.List(c, http.StatusOK, "success")
}

func (h *Handler) DownloadCSV(c *gin.Context) {
	ctx := c.Request.Context()

	c.Header("Content-Type", "text/csv; charset=UTF-8")
	c.Header("Content-Disposition", `attachment; filename="employees.csv"`)

	if err := h.service.ExportCSV(ctx, c.Writer); err != nil {
		// Headers are already on the wire; all we can do is log.
		h.logger.Error("csv export failed", zap.Error(err))
	}
}

func (h *Handler) decorate(resp []EmployeeResponse) []EmployeeResponse {
	for i := range resp {
		resp[i].Metadata = h.employeeMetadata(resp[i].EmployeeID)
	}
	return resp
}

func (h *Handler) employeeMetadata(employeeID string) *response.Metadata {
	return &response.Metadata{
		ID:   fmt.Sprintf("%s%s/Employees('%s')", h.metadataDomain, servicePath, employeeID),
		Type: employeeType,
	}
}
