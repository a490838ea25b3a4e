package employee

import (
	"encoding/csv"
	"io"
	"time"
)

var csvHeader = []string{
	"employeeId", "firstName", "lastName", "middleName", "birthDate", "gender",
	"nationality", "maritalStatus", "position", "jobTitle", "department", "departmentName",
	"hireDate", "terminationDate", "workEmail", "workPhone", "mobilePhone", "address",
	"bankAccount", "taxId",
}

// CSVExporter writes the employee collection as UTF-8 CSV. A BOM is emitted
// so Excel detects the encoding, and the long numeric identifier columns are
// wrapped in ="" guards so Excel keeps them as text.
type CSVExporter struct{}

func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

func (x *CSVExporter) Write(w io.Writer, records []Employee) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for i := range records {
		e := &records[i]
		row := []string{
			e.EmployeeID,
			e.FirstName,
			e.LastName,
			e.MiddleName,
			csvDate(e.BirthDate),
			e.Gender,
			e.Nationality,
			e.MaritalStatus,
			e.Position,
			e.JobTitle,
			e.Department,
			e.DepartmentName,
			csvDate(e.HireDate),
			csvDate(e.TerminationDate),
			e.WorkEmail,
			e.WorkPhone,
			e.MobilePhone,
			e.Address,
			`="` + e.BankAccount + `"`,
			`="` + e.TaxID + `"`,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func csvDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
