package employee

import "time"

// Employee mirrors the SAP EMPLOYEE_BASIC_SRV entity. Role assignments are
// held as ids into the shared read-only role catalog; employees never own
// private role copies.
type Employee struct {
	EmployeeID      string
	FirstName       string
	LastName        string
	MiddleName      string
	BirthDate       *time.Time
	Gender          string
	Nationality     string
	MaritalStatus   string
	Position        string
	JobTitle        string
	Department      string
	DepartmentName  string
	HireDate        *time.Time
	TerminationDate *time.Time
	WorkEmail       string
	WorkPhone       string
	MobilePhone     string
	Address         string
	BankAccount     string
	TaxID           string
	RoleIDs         []string
}

// Privilege is one field=value grant under an authorization object.
// PrivilegeName must hold exactly one "=" separator to be matchable by the
// authorization check.
type Privilege struct {
	PrivilegeID   string `json:"privilegeId"`
	PrivilegeName string `json:"privilegeName"`
	Description   string `json:"description"`
}

// Role is a named bundle of privileges shared across employees.
type Role struct {
	RoleID      string      `json:"roleId"`
	RoleName    string      `json:"roleName"`
	Description string      `json:"description"`
	Privileges  []Privilege `json:"privileges"`
}

// AuthorizationObject is master data naming a category of protected
// operation and the fields it governs. Seed/validation only; the
// authorization check does not consult it.
type AuthorizationObject struct {
	ObjectID    string   `json:"objectId"`
	Description string   `json:"description"`
	Fields      []string `json:"fields"`
}
