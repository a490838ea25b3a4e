package employee

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	employeeerrors "go-sapmock/internal/employee/errors"
	"go-sapmock/internal/shared/contextutil"
	"go-sapmock/internal/shared/response"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	QueryPage(ctx context.Context, skip, top int, filter string) ([]EmployeeResponse, error)
	FindByID(ctx context.Context, employeeID string) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Generate(ctx context.Context, count int) error
	RolesOf(ctx context.Context, employeeID string) ([]RoleResponse, error)
	PrivilegesOf(ctx context.Context, employeeID string) ([]PrivilegeResponse, error)
	CheckAuthorization(ctx context.Context, employeeID, object, field, value string) AuthorizationDecision
	ExportCSV(ctx context.Context, w io.Writer) error
	Count(ctx context.Context) int
}

type service struct {
	store     Store
	catalog   *Catalog
	generator *Generator
	exporter  *CSVExporter
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(store Store, catalog *Catalog, generator *Generator, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		store:     store,
		catalog:   catalog,
		generator: generator,
		exporter:  NewCSVExporter(),
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

// QueryPage narrows the collection clause by clause (AND semantics) and
// slices out [skip, skip+top). A skip past the filtered count yields an
// empty page, never an error.
func (s *service) QueryPage(ctx context.Context, skip, top int, filter string) ([]EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("query page requested",
		zap.String("request_id", rid),
		zap.Int("skip", skip),
		zap.Int("top", top),
		zap.String("filter", filter),
	)

	clauses := ParseFilter(filter)
	records := applyClauses(s.store.All(), clauses)

	if skip < 0 {
		skip = 0
	}
	if skip >= len(records) {
		return []EmployeeResponse{}, nil
	}
	end := skip + top
	if end > len(records) {
		end = len(records)
	}

	return mapToListResponse(records[skip:end]), nil
}

func (s *service) FindByID(ctx context.Context, employeeID string) (EmployeeResponse, error) {
	emp, ok := s.store.ByID(employeeID)
	if !ok {
		s.logger.Warn("employee not found", zap.String("employee_id", employeeID))
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	return mapToResponse(emp), nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("department_name", req.DepartmentName),
	)

	emp := Employee{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		MiddleName:     req.MiddleName,
		Gender:         req.Gender,
		Nationality:    req.Nationality,
		MaritalStatus:  req.MaritalStatus,
		Position:       req.Position,
		JobTitle:       req.JobTitle,
		Department:     req.Department,
		DepartmentName: req.DepartmentName,
		WorkEmail:      req.WorkEmail,
		WorkPhone:      req.WorkPhone,
		MobilePhone:    req.MobilePhone,
		Address:        req.Address,
		BankAccount:    req.BankAccount,
		TaxID:          req.TaxID,
	}

	var err error
	if emp.BirthDate, err = parseOptionalDate(req.BirthDate); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDate
	}
	if emp.HireDate, err = parseOptionalDate(req.HireDate); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDate
	}
	if emp.TerminationDate, err = parseOptionalDate(req.TerminationDate); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDate
	}

	// Every employee gets at least one role, derived from the department.
	emp.RoleIDs = []string{s.catalog.RoleForDepartment(req.DepartmentName).RoleID}

	created := s.store.Append(emp)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", created.EmployeeID),
	)
	return mapToResponse(created), nil
}

// Generate discards the whole collection and fabricates a fresh one. The
// replacement collection is built aside and swapped in, so readers only ever
// see the old or the new state. Concurrent identical generate calls collapse
// into one fabrication.
func (s *service) Generate(ctx context.Context, count int) error {
	rid := contextutil.GetRequestID(ctx)
	if count <= 0 {
		s.logger.Warn("generate rejected", zap.String("request_id", rid), zap.Int("count", count))
		return employeeerrors.ErrInvalidCount
	}
	if len(s.catalog.Roles()) == 0 {
		s.logger.Error("generate refused: no master roles defined", zap.String("request_id", rid))
		return employeeerrors.ErrNoRolesDefined
	}

	_, err, shared := s.sf.Do(fmt.Sprintf("generate:%d", count), func() (any, error) {
		s.store.ReplaceAll(s.generator.Generate(count))
		return nil, nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("generate employees success",
		zap.String("request_id", rid),
		zap.Int("count", count),
		zap.Bool("shared", shared),
	)
	return nil
}

func (s *service) RolesOf(ctx context.Context, employeeID string) ([]RoleResponse, error) {
	roles, err := s.resolveRoles(employeeID)
	if err != nil {
		return nil, err
	}

	out := make([]RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, RoleResponse{
			Metadata: response.Metadata{Type: "EMPLOYEE_BASIC_SRV.Role"},
			RoleID:   r.RoleID,
			RoleName: r.RoleName,
		})
	}
	return out, nil
}

func (s *service) PrivilegesOf(ctx context.Context, employeeID string) ([]PrivilegeResponse, error) {
	roles, err := s.resolveRoles(employeeID)
	if err != nil {
		return nil, err
	}

	seen := make(map[Privilege]struct{})
	var out []PrivilegeResponse
	for _, r := range roles {
		for _, p := range r.Privileges {
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, PrivilegeResponse{
				Metadata:      response.Metadata{Type: "EMPLOYEE_BASIC_SRV.Privilege"},
				PrivilegeID:   p.PrivilegeID,
				PrivilegeName: p.PrivilegeName,
			})
		}
	}
	return out, nil
}

// CheckAuthorization walks the employee's roles and matches each privilege
// against (object, field=value). An unknown employee never yields an error:
// the verdict degrades to a negative one with an explanatory note so the
// check endpoint always answers in success shape.
func (s *service) CheckAuthorization(ctx context.Context, employeeID, object, field, value string) AuthorizationDecision {
	decision := AuthorizationDecision{
		EmployeeID: employeeID,
		Object:     object,
		Field:      field,
		Value:      value,
	}

	emp, ok := s.store.ByID(employeeID)
	if !ok {
		decision.Note = "employee does not exist"
		s.logger.Warn("authorization check for unknown employee",
			zap.String("employee_id", employeeID),
			zap.String("object", object),
		)
		return decision
	}

	for _, roleID := range emp.RoleIDs {
		role, found := s.catalog.Role(roleID)
		if !found {
			continue
		}
		for _, priv := range role.Privileges {
			if priv.PrivilegeID != object {
				continue
			}
			parts := strings.Split(priv.PrivilegeName, "=")
			if len(parts) == 2 && parts[0] == field && parts[1] == value {
				decision.HasAuthorization = true
				return decision
			}
		}
	}
	return decision
}

func (s *service) ExportCSV(ctx context.Context, w io.Writer) error {
	return s.exporter.Write(w, s.store.All())
}

func (s *service) Count(ctx context.Context) int {
	return s.store.Count()
}

func (s *service) resolveRoles(employeeID string) ([]Role, error) {
	emp, ok := s.store.ByID(employeeID)
	if !ok {
		return nil, employeeerrors.ErrEmployeeNotFound
	}

	roles := make([]Role, 0, len(emp.RoleIDs))
	for _, id := range emp.RoleIDs {
		if r, found := s.catalog.Role(id); found {
			roles = append(roles, r)
		}
	}
	return roles, nil
}

func mapToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:      emp.EmployeeID,
		FirstName:       emp.FirstName,
		LastName:        emp.LastName,
		MiddleName:      emp.MiddleName,
		BirthDate:       formatDate(emp.BirthDate),
		Gender:          emp.Gender,
		Nationality:     emp.Nationality,
		MaritalStatus:   emp.MaritalStatus,
		Position:        emp.Position,
		JobTitle:        emp.JobTitle,
		Department:      emp.Department,
		DepartmentName:  emp.DepartmentName,
		HireDate:        formatDate(emp.HireDate),
		TerminationDate: formatDate(emp.TerminationDate),
		WorkEmail:       emp.WorkEmail,
		WorkPhone:       emp.WorkPhone,
		MobilePhone:     emp.MobilePhone,
		Address:         emp.Address,
		BankAccount:     emp.BankAccount,
		TaxID:           emp.TaxID,
	}
}

func mapToListResponse(records []Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, len(records))
	for i, emp := range records {
		out[i] = mapToResponse(emp)
	}
	return out
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
