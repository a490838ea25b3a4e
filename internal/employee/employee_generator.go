package employee

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Generator fabricates synthetic employees against the role catalog.
type Generator struct {
	faker   *gofakeit.Faker
	catalog *Catalog
}

func NewGenerator(catalog *Catalog) *Generator {
	return &Generator{
		faker:   gofakeit.New(0),
		catalog: catalog,
	}
}

// Generate builds a fresh collection of count employees with sequential ids
// starting right above the id base. The slice is fully constructed before it
// is handed to the store, so a swap is atomic for readers.
func (g *Generator) Generate(count int) []Employee {
	now := time.Now()
	records := make([]Employee, 0, count)

	for i := 1; i <= count; i++ {
		deptType := g.faker.RandomString([]string{"IT", "Sales", "Admin"})

		emp := Employee{
			EmployeeID:     fmt.Sprintf("%05d", employeeIDBase+i),
			FirstName:      g.faker.FirstName(),
			LastName:       g.faker.LastName(),
			Gender:         strings.ToUpper(g.faker.Gender()[:1]),
			Nationality:    g.faker.CountryAbr(),
			MaritalStatus:  g.faker.RandomString([]string{"Single", "Married", "Divorced", "Widowed"}),
			Position:       g.faker.JobTitle(),
			JobTitle:       g.faker.JobDescriptor() + " " + g.faker.JobLevel(),
			DepartmentName: deptType,
			Department:     departmentCode(deptType),
			WorkPhone:      g.faker.Phone(),
			MobilePhone:    g.faker.PhoneFormatted(),
			Address:        g.faker.Address().Address,
			BankAccount:    g.faker.DigitN(12),
			TaxID:          g.faker.DigitN(9),
		}

		if g.faker.Bool() {
			emp.MiddleName = g.faker.FirstName()
		}

		emp.WorkEmail = strings.ToLower(emp.FirstName) + "." + strings.ToLower(emp.LastName) + "@company.com"

		birth := dateOnly(g.faker.DateRange(now.AddDate(-60, 0, 0), now.AddDate(-20, 0, 0)))
		emp.BirthDate = &birth

		hire := dateOnly(g.faker.DateRange(now.AddDate(0, 0, -5000), now))
		emp.HireDate = &hire

		// Roughly half the workforce has a scheduled exit date.
		if g.faker.Bool() {
			term := dateOnly(g.faker.DateRange(now, now.AddDate(0, 0, 1000)))
			emp.TerminationDate = &term
		}

		emp.RoleIDs = []string{g.catalog.RoleForDepartment(deptType).RoleID}
		if g.faker.Bool() {
			emp.RoleIDs = appendRoleID(emp.RoleIDs, "ADMIN")
		}

		records = append(records, emp)
	}
	return records
}

func departmentCode(deptType string) string {
	switch deptType {
	case "IT":
		return "1001"
	case "Sales":
		return "2001"
	default:
		return "0001"
	}
}

func appendRoleID(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
