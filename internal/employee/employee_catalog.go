package employee

import "strings"

// Catalog holds the role/privilege/authorization-object master data. It is
// built once and read-only afterwards; employees reference roles by id
// instead of carrying private copies.
type Catalog struct {
	roles       []Role
	rolesByID   map[string]Role
	authObjects []AuthorizationObject
}

func NewCatalog() *Catalog {
	privileges := masterPrivileges()

	byObject := make(map[string][]Privilege)
	for _, p := range privileges {
		byObject[p.PrivilegeID] = append(byObject[p.PrivilegeID], p)
	}

	combine := func(objectIDs ...string) []Privilege {
		var combined []Privilege
		for _, id := range objectIDs {
			combined = append(combined, byObject[id]...)
		}
		return combined
	}

	roles := []Role{
		{RoleID: "ADMIN", RoleName: "System Administrator", Description: "Full SAP system administration", Privileges: combine("S_USER_GRP", "S_TCODE", "S_USER_AUTH")},
		{RoleID: "DEVELOPER", RoleName: "Developer", Description: "SAP developer authorizations", Privileges: combine("S_TCODE", "S_PROGRAM", "S_DEVELOP", "S_TRANSPRT")},
		{RoleID: "SALES", RoleName: "Sales Representative", Description: "SAP sales function access", Privileges: combine("S_TCODE", "VA_VBAK_VBK", "SD_VBAK_AAT")},
		{RoleID: "BASIS", RoleName: "Basis Administrator", Description: "System technical support", Privileges: combine("S_RFC", "S_DATASET")},
		{RoleID: "FILE_ADMIN", RoleName: "File Administrator", Description: "File upload/download authorizations", Privileges: combine("S_DATASET")},
		{RoleID: "HR", RoleName: "HR Administrator", Description: "SAP human resources functions", Privileges: combine("P_ORGIN")},
		{RoleID: "MM", RoleName: "Materials Administrator", Description: "SAP materials management functions", Privileges: combine("M_MATE_MAT", "MM_PUR_PO", "MM_PUR_PR")},
		{RoleID: "FI", RoleName: "Finance Administrator", Description: "SAP financial accounting functions", Privileges: combine("F_BKPF_BUK", "FI_GL_ACC")},
		{RoleID: "CO", RoleName: "Controlling Administrator", Description: "SAP controlling functions", Privileges: combine("K_KOSTL", "CO_CCTR")},
		{RoleID: "PP", RoleName: "Production Administrator", Description: "SAP production planning functions", Privileges: combine("PP_ORDER")},
		{RoleID: "QM", RoleName: "Quality Administrator", Description: "SAP quality management functions", Privileges: combine("QM_QINFO")},
		{RoleID: "PM", RoleName: "Plant Maintenance Administrator", Description: "SAP plant maintenance functions", Privileges: combine("PM_EQUI")},
		{RoleID: "WM", RoleName: "Warehouse Administrator", Description: "SAP warehouse management functions", Privileges: combine("WM_LQUA")},
		{RoleID: "SD", RoleName: "Sales and Distribution Administrator", Description: "SAP SD module functions", Privileges: combine("SD_VBAK_AAT", "SD_BILLING")},
		{RoleID: "BW", RoleName: "BI Administrator", Description: "SAP BW analytics and reporting", Privileges: combine("BW_REPORT")},
		{RoleID: "APO", RoleName: "Planning Administrator", Description: "SAP APO planning functions", Privileges: combine("APO_PLAN")},
		{RoleID: "IT_ADMIN", RoleName: "IT Administrator", Description: "SAP system configuration and monitoring", Privileges: combine("IT_SEC", "IT_MON", "IT_CFG")},
		{RoleID: "GRC", RoleName: "Access Control Administrator", Description: "GRC access audit and analysis", Privileges: combine("GRC_ACCESS")},
		{RoleID: "SOLMAN", RoleName: "Solution Manager Administrator", Description: "SAP Solution Manager functions", Privileges: combine("SOLMAN_MON")},
		{RoleID: "S4HANA", RoleName: "S/4HANA User", Description: "SAP S/4HANA core functions", Privileges: combine("S4HANA_CORE")},
	}

	return NewCatalogWith(roles, []AuthorizationObject{
		{ObjectID: "S_USER_GRP", Description: "User group maintenance", Fields: []string{"ACTVT"}},
		{ObjectID: "S_TCODE", Description: "Transaction code execution", Fields: []string{"TCD"}},
		{ObjectID: "S_PROGRAM", Description: "Program execution", Fields: []string{"ACTVT"}},
		{ObjectID: "S_DATASET", Description: "File access", Fields: []string{"ACTVT", "FILENAME"}},
	})
}

// NewCatalogWith builds a catalog from explicit master data.
func NewCatalogWith(roles []Role, authObjects []AuthorizationObject) *Catalog {
	rolesByID := make(map[string]Role, len(roles))
	for _, r := range roles {
		rolesByID[r.RoleID] = r
	}
	return &Catalog{
		roles:       roles,
		rolesByID:   rolesByID,
		authObjects: authObjects,
	}
}

func masterPrivileges() []Privilege {
	return []Privilege{
		{PrivilegeID: "S_USER_GRP", PrivilegeName: "ACTVT=01", Description: "Create user group"},
		{PrivilegeID: "S_USER_GRP", PrivilegeName: "ACTVT=02", Description: "Change user group"},
		{PrivilegeID: "S_USER_GRP", PrivilegeName: "ACTVT=03", Description: "Display user group"},
		{PrivilegeID: "S_TCODE", PrivilegeName: "TCD=SM30", Description: "Run table maintenance"},
		{PrivilegeID: "S_TCODE", PrivilegeName: "TCD=SE38", Description: "Run ABAP programs"},
		{PrivilegeID: "S_TCODE", PrivilegeName: "TCD=VA01", Description: "Create sales order"},
		{PrivilegeID: "S_PROGRAM", PrivilegeName: "ACTVT=03", Description: "Display programs"},
		{PrivilegeID: "S_USER_AUTH", PrivilegeName: "ACTVT=01", Description: "Grant authorizations"},
		{PrivilegeID: "S_DEVELOP", PrivilegeName: "DEV=ALL", Description: "Development access"},
		{PrivilegeID: "S_TRANSPRT", PrivilegeName: "TR=ALL", Description: "Transport access"},
		{PrivilegeID: "VA_VBAK_VBK", PrivilegeName: "SALES=ALL", Description: "Display sales orders"},
		{PrivilegeID: "SD_VBAK_AAT", PrivilegeName: "SALES=CHANGE", Description: "Change sales orders"},
		{PrivilegeID: "S_RFC", PrivilegeName: "RFC=ALL", Description: "RFC access"},
		{PrivilegeID: "S_DATASET", PrivilegeName: "FILE=ALL", Description: "File access"},
		{PrivilegeID: "P_ORGIN", PrivilegeName: "HR=ALL", Description: "HR master data access"},
		{PrivilegeID: "M_MATE_MAT", PrivilegeName: "MAT=ALL", Description: "Material master access"},
		{PrivilegeID: "MM_PUR_PO", PrivilegeName: "PURCHASE=PO", Description: "Purchase orders"},
		{PrivilegeID: "MM_PUR_PR", PrivilegeName: "PURCHASE=PR", Description: "Purchase requisitions"},
		{PrivilegeID: "F_BKPF_BUK", PrivilegeName: "FI=ALL", Description: "Financial data access"},
		{PrivilegeID: "FI_GL_ACC", PrivilegeName: "GL=ALL", Description: "General ledger access"},
		{PrivilegeID: "K_KOSTL", PrivilegeName: "CO=ALL", Description: "Controlling access"},
		{PrivilegeID: "CO_CCTR", PrivilegeName: "CCTR=ALL", Description: "Cost center access"},
		{PrivilegeID: "PP_ORDER", PrivilegeName: "PP=ALL", Description: "Production order access"},
		{PrivilegeID: "QM_QINFO", PrivilegeName: "QM=ALL", Description: "Quality info access"},
		{PrivilegeID: "PM_EQUI", PrivilegeName: "PM=ALL", Description: "Equipment data access"},
		{PrivilegeID: "WM_LQUA", PrivilegeName: "WM=ALL", Description: "Stock data access"},
		{PrivilegeID: "SD_BILLING", PrivilegeName: "SD=ALL", Description: "Billing management access"},
		{PrivilegeID: "BW_REPORT", PrivilegeName: "BW=ALL", Description: "BI report access"},
		{PrivilegeID: "APO_PLAN", PrivilegeName: "APO=ALL", Description: "Planning access"},
		{PrivilegeID: "IT_SEC", PrivilegeName: "IT=SEC", Description: "Security administration"},
		{PrivilegeID: "IT_MON", PrivilegeName: "IT=MON", Description: "Monitoring"},
		{PrivilegeID: "IT_CFG", PrivilegeName: "IT=CFG", Description: "System configuration"},
		{PrivilegeID: "GRC_ACCESS", PrivilegeName: "GRC=ALL", Description: "GRC access control"},
		{PrivilegeID: "SOLMAN_MON", PrivilegeName: "SOLMAN=ALL", Description: "Solution Manager monitoring"},
		{PrivilegeID: "S4HANA_CORE", PrivilegeName: "S4=CORE", Description: "S/4HANA core authorization"},
	}
}

// Roles returns the master role list. Callers must treat it as read-only.
func (c *Catalog) Roles() []Role {
	return c.roles
}

func (c *Catalog) Role(id string) (Role, bool) {
	r, ok := c.rolesByID[id]
	return r, ok
}

func (c *Catalog) AuthorizationObjects() []AuthorizationObject {
	return c.authObjects
}

// RoleForDepartment maps a department name to its default role: IT gets
// DEVELOPER, Sales gets SALES, everything else (including unknown) ADMIN.
func (c *Catalog) RoleForDepartment(departmentName string) Role {
	switch strings.ToLower(departmentName) {
	case "it":
		return c.rolesByID["DEVELOPER"]
	case "sales":
		return c.rolesByID["SALES"]
	default:
		return c.rolesByID["ADMIN"]
	}
}
