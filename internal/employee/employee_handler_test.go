package employee_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-sapmock/internal/employee"
	employeeerrors "go-sapmock/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeService struct {
	queryPage          func(skip, top int, filter string) ([]employee.EmployeeResponse, error)
	findByID           func(employeeID string) (employee.EmployeeResponse, error)
	create             func(req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	generate           func(count int) error
	rolesOf            func(employeeID string) ([]employee.RoleResponse, error)
	privilegesOf       func(employeeID string) ([]employee.PrivilegeResponse, error)
	checkAuthorization func(employeeID, object, field, value string) employee.AuthorizationDecision
}

func (f *fakeService) QueryPage(_ context.Context, skip, top int, filter string) ([]employee.EmployeeResponse, error) {
	return f.queryPage(skip, top, filter)
}

func (f *fakeService) FindByID(_ context.Context, employeeID string) (employee.EmployeeResponse, error) {
	return f.findByID(employeeID)
}

func (f *fakeService) Create(_ context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.create(req)
}

func (f *fakeService) Generate(_ context.Context, count int) error {
	return f.generate(count)
}

func (f *fakeService) RolesOf(_ context.Context, employeeID string) ([]employee.RoleResponse, error) {
	return f.rolesOf(employeeID)
}

func (f *fakeService) PrivilegesOf(_ context.Context, employeeID string) ([]employee.PrivilegeResponse, error) {
	return f.privilegesOf(employeeID)
}

func (f *fakeService) CheckAuthorization(_ context.Context, employeeID, object, field, value string) employee.AuthorizationDecision {
	return f.checkAuthorization(employeeID, object, field, value)
}

func (f *fakeService) ExportCSV(_ context.Context, w io.Writer) error {
	_, err := w.Write([]byte("employeeId\n"))
	return err
}

func (f *fakeService) Count(_ context.Context) int { return 0 }

func newTestRouter(svc employee.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := employee.NewHandler(svc, "http://localhost:3000", zap.NewNop())
	employee.RegisterRoutes(router, handler, zap.NewNop())
	return router
}

func doRequest(router *gin.Engine, method, target string, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetAllEndpoint(t *testing.T) {
	svc := &fakeService{
		queryPage: func(skip, top int, filter string) ([]employee.EmployeeResponse, error) {
			assert.Equal(t, 0, skip)
			assert.Equal(t, 10, top)
			return []employee.EmployeeResponse{
				{EmployeeID: "10001"},
				{EmployeeID: "10002"},
			}, nil
		},
	}
	router := newTestRouter(svc)

	w := doRequest(router, http.MethodGet, "/sap/opu/odata/sap/EMPLOYEE_BASIC_SRV/Employees", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		D struct {
			Results []struct {
				Metadata struct {
					ID   string `json:"id"`
					Type string `json:"type"`
				} `json:"__metadata"`
				EmployeeID string `json:"employeeId"`
			} `json:"results"`
		} `json:"d"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.D.Results, 2)
	assert.Equal(t, "EMPLOYEE_BASIC_SRV.Employee", body.D.Results[0].Metadata.Type)
	assert.Equal(t,
		"http://localhost:3000/sap/opu/odata/sap/EMPLOYEE_BASIC_SRV/Employees('10001')",
		body.D.Results[0].Metadata.ID,
	)
}

func TestGetByIDEndpoint(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &fakeService{
			findByID: func(employeeID string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{EmployeeID: employeeID, FirstName: "John"}, nil
			},
		}
		router := newTestRouter(svc)

		w := doRequest(router, http.MethodGet, "/sap/opu/odata/sap/EMPLOYEE_BASIC_SRV/Employees/10001", "")
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			D struct {
				EmployeeID string `json:"employeeId"`
				FirstName  string `json:"firstName"`
			} `json:"d"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "10001", body.D.EmployeeID)
		assert.Equal(t, "John", body.D.FirstName)
	})

	t.Run("not found answers an odata error body", func(t *testing.T) {
		svc := &fakeService{
			findByID: func(string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		router := newTestRouter(svc)

		w := doRequest(router, http.MethodGet, "/sap/opu/odata/sap/EMPLOYEE_BASIC_SRV/Employees/99999", "")
		require.Equal(t, http.StatusNotFound, w.Code)

		var body struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "NotFound", body.Error.Code)
		assert.NotEmpty(t, body.Error.Message)
	})
}

func TestCreateEndpoint(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &fakeService{
			create: func(req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{EmployeeID: "10001", FirstName: req.FirstName}, nil
			},
		}
		router := newTestRouter(svc)

		w := doRequest(router, http.MethodPost,
			"/sap/opu/odata/sap/EMPLOYEE_BASIC_SRV/Employees",
			`{"firstName":"John","lastName":"Miller"}`,
		)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"employeeId":"10001"`)
	})

	t.Run("missing required fields fail validation", func(t *testing.T) {
		svc := &fakeService{
			create: func(employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				t.Fatal("service must not be reached on a validation failure")
				return employee.EmployeeResponse{}, nil
			},
		}
		router := newTestRouter(svc)

		w := doRequest(router, http.MethodPost,
			"/sap/opu/odata/sap/EMPLOYEE_BASIC_SRV/Employees",
			`{"firstName":"John"}`,
		)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"BadRequest"`)
	})
}

func TestCheckAuthorizationEndpoint(t *testing.T) {
	t.Run("missing parameters", func(t *testing.T) {
		router := newTestRouter(&fakeService{})

		w := doRequest(router, http.MethodGet,
			"/sap/opu/odata/sap/EMPLOYEE_BASIC_SRV/Employees/10001/CheckAuthorization?object=S_TCODE",
			"",
		)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"BadRequest"`)
	})

	t.Run("unknown employee still answers 200", func(t *testing.T) {
		svc := &fakeService{
			checkAuthorization: func(employeeID, object, field, value string) employee.AuthorizationDecision {
				return employee.AuthorizationDecision{
					EmployeeID: employeeID,
					Object:     object,
					Field:      field,
					Value:      value,
					Note:       "employee does not exist",
				}
			},
		}
		router := newTestRouter(svc)

		w := doRequest(router, http.MethodGet,
			"/sap/opu/odata/sap/EMPLOYEE_BASIC_SRV/Employees/99999/CheckAuthorization?object=S_TCODE&field=TCD&value=SM30",
			"",
		)
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			D employee.AuthorizationDecision `json:"d"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.False(t, body.D.HasAuthorization)
		assert.Equal(t, "employee does not exist", body.D.Note)
	})
}

func TestGenerateEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeService{
			generate: func(count int) error {
				assert.Equal(t, 20, count)
				return nil
			},
		}
		router := newTestRouter(svc)

		w := doRequest(router, http.MethodPost, "/sap/mock/generate-employees?count=20", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"d":{"results":"success"}}`, w.Body.String())
	})

	t.Run("non numeric count", func(t *testing.T) {
		router := newTestRouter(&fakeService{})

		w := doRequest(router, http.MethodPost, "/sap/mock/generate-employees?count=abc", "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid count is mapped by the service error", func(t *testing.T) {
		svc := &fakeService{
			generate: func(int) error { return employeeerrors.ErrInvalidCount },
		}
		router := newTestRouter(svc)

		w := doRequest(router, http.MethodPost, "/sap/mock/generate-employees?count=-1", "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"BadRequest"`)
	})
}

func TestRolesEndpoint(t *testing.T) {
	svc := &fakeService{
		rolesOf: func(employeeID string) ([]employee.RoleResponse, error) {
			return []employee.RoleResponse{{RoleID: "DEVELOPER", RoleName: "Developer"}}, nil
		},
	}
	router := newTestRouter(svc)

	w := doRequest(router, http.MethodGet, "/sap/opu/odata/sap/EMPLOYEE_BASIC_SRV/Employees/10001/Roles", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"roleId":"DEVELOPER"`)
}

func TestDownloadEndpoint(t *testing.T) {
	router := newTestRouter(&fakeService{})

	w := doRequest(router, http.MethodGet, "/download/employees", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=UTF-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "employees.csv")
	assert.Contains(t, w.Body.String(), "employeeId")
}
