package employee

import (
	"go-sapmock/internal/shared/response"
)

// CreateEmployeeRequest carries a new employee in wire shape; dates travel
// as ISO YYYY-MM-DD strings. The employee id is never client-assigned.
type CreateEmployeeRequest struct {
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName" binding:"required"`
	MiddleName      string `json:"middleName"`
	BirthDate       string `json:"birthDate"`
	Gender          string `json:"gender"`
	Nationality     string `json:"nationality"`
	MaritalStatus   string `json:"maritalStatus"`
	Position        string `json:"position"`
	JobTitle        string `json:"jobTitle"`
	Department      string `json:"department"`
	DepartmentName  string `json:"departmentName"`
	HireDate        string `json:"hireDate"`
	TerminationDate string `json:"terminationDate"`
	WorkEmail       string `json:"workEmail" binding:"omitempty,email"`
	WorkPhone       string `json:"workPhone"`
	MobilePhone     string `json:"mobilePhone"`
	Address         string `json:"address"`
	BankAccount     string `json:"bankAccount"`
	TaxID           string `json:"taxId"`
}

type EmployeeResponse struct {
	Metadata        *response.Metadata `json:"__metadata,omitempty"`
	EmployeeID      string             `json:"employeeId"`
	FirstName       string             `json:"firstName"`
	LastName        string             `json:"lastName"`
	MiddleName      string             `json:"middleName"`
	BirthDate       *string            `json:"birthDate"`
	Gender          string             `json:"gender"`
	Nationality     string             `json:"nationality"`
	MaritalStatus   string             `json:"maritalStatus"`
	Position        string             `json:"position"`
	JobTitle        string             `json:"jobTitle"`
	Department      string             `json:"department"`
	DepartmentName  string             `json:"departmentName"`
	HireDate        *string            `json:"hireDate"`
	TerminationDate *string            `json:"terminationDate"`
	WorkEmail       string             `json:"workEmail"`
	WorkPhone       string             `json:"workPhone"`
	MobilePhone     string             `json:"mobilePhone"`
	Address         string             `json:"address"`
	BankAccount     string             `json:"bankAccount"`
	TaxID           string             `json:"taxId"`
}

type RoleResponse struct {
	Metadata response.Metadata `json:"__metadata"`
	RoleID   string            `json:"roleId"`
	RoleName string            `json:"roleName"`
}

type PrivilegeResponse struct {
	Metadata      response.Metadata `json:"__metadata"`
	PrivilegeID   string            `json:"privilegeId"`
	PrivilegeName string            `json:"privilegeName"`
}

// AuthorizationDecision is the verdict of the authorization check. Note is
// set exactly when the employee id does not resolve; the check still reports
// a well-formed negative verdict instead of a not-found error.
type AuthorizationDecision struct {
	EmployeeID       string `json:"employeeId"`
	Object           string `json:"object"`
	Field            string `json:"field"`
	Value            string `json:"value"`
	HasAuthorization bool   `json:"hasAuthorization"`
	Note             string `json:"note,omitempty"`
}
