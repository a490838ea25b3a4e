package employee

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func filterFixture() []Employee {
	return []Employee{
		{
			EmployeeID:  "10001",
			FirstName:   "John",
			LastName:    "Miller",
			Department:  "1001",
			BankAccount: "0099",
			HireDate:    datePtr(2020, time.March, 15),
			BirthDate:   datePtr(1990, time.January, 2),
		},
		{
			EmployeeID:      "10002",
			FirstName:       "Anna",
			LastName:        "Schmidt",
			Department:      "2001",
			BankAccount:     "345678",
			HireDate:        datePtr(2022, time.July, 1),
			BirthDate:       datePtr(1985, time.November, 30),
			TerminationDate: datePtr(2026, time.December, 31),
		},
	}
}

func TestParseFilter(t *testing.T) {
	t.Run("splits clauses on and", func(t *testing.T) {
		clauses := ParseFilter("firstName eq 'John' and department gt '1000'")

		assert.Equal(t, []Clause{
			{Field: "firstName", Op: OpEq, Value: "John"},
			{Field: "department", Op: OpGt, Value: "1000"},
		}, clauses)
	})

	t.Run("empty filter yields no clauses", func(t *testing.T) {
		assert.Nil(t, ParseFilter(""))
		assert.Nil(t, ParseFilter("   "))
	})

	t.Run("clause without operator is dropped", func(t *testing.T) {
		clauses := ParseFilter("firstName and lastName eq 'Miller'")

		assert.Equal(t, []Clause{
			{Field: "lastName", Op: OpEq, Value: "Miller"},
		}, clauses)
	})

	t.Run("eq wins over an operator token inside the value", func(t *testing.T) {
		clauses := ParseFilter("address eq 'go lt home'")

		assert.Equal(t, []Clause{
			{Field: "address", Op: OpEq, Value: "go lt home"},
		}, clauses)
	})

	t.Run("quotes are stripped from values", func(t *testing.T) {
		clauses := ParseFilter("hireDate ge '2020-01-01'")

		assert.Equal(t, "2020-01-01", clauses[0].Value)
	})
}

func TestClauseMatches(t *testing.T) {
	records := filterFixture()
	john := &records[0]
	anna := &records[1]

	t.Run("text equality is case insensitive", func(t *testing.T) {
		cl := Clause{Field: "firstName", Op: OpEq, Value: "JOHN"}
		assert.True(t, cl.Matches(john))
		assert.False(t, cl.Matches(anna))
	})

	t.Run("employee id equality is case sensitive and exact", func(t *testing.T) {
		assert.True(t, Clause{Field: "employeeId", Op: OpEq, Value: "10001"}.Matches(john))
		assert.False(t, Clause{Field: "employeeId", Op: OpEq, Value: "1001"}.Matches(john))
	})

	t.Run("unknown field matches nothing", func(t *testing.T) {
		cl := Clause{Field: "salary", Op: OpEq, Value: "100"}
		assert.False(t, cl.Matches(john))
		assert.False(t, cl.Matches(anna))
	})

	t.Run("numeric field orders as integer", func(t *testing.T) {
		cl := Clause{Field: "department", Op: OpGt, Value: "1001"}
		assert.False(t, cl.Matches(john))
		assert.True(t, cl.Matches(anna))
	})

	t.Run("leading zeros break eq but not ordering", func(t *testing.T) {
		// "0099" and "99" are different strings but the same integer.
		assert.False(t, Clause{Field: "bankAccount", Op: OpEq, Value: "99"}.Matches(john))
		assert.True(t, Clause{Field: "bankAccount", Op: OpGe, Value: "99"}.Matches(john))
		assert.True(t, Clause{Field: "bankAccount", Op: OpLe, Value: "99"}.Matches(john))
	})

	t.Run("unparseable numeric literal matches nothing", func(t *testing.T) {
		cl := Clause{Field: "department", Op: OpGt, Value: "abc"}
		assert.False(t, cl.Matches(john))
		assert.False(t, cl.Matches(anna))
	})

	t.Run("date ordering", func(t *testing.T) {
		gt := Clause{Field: "hireDate", Op: OpGt, Value: "2021-01-01"}
		le := Clause{Field: "hireDate", Op: OpLe, Value: "2021-01-01"}

		assert.False(t, gt.Matches(john))
		assert.True(t, gt.Matches(anna))

		// gt and le partition employees with a hire date.
		for i := range records {
			assert.NotEqual(t, gt.Matches(&records[i]), le.Matches(&records[i]))
		}
	})

	t.Run("date equality compares the ISO string", func(t *testing.T) {
		assert.True(t, Clause{Field: "hireDate", Op: OpEq, Value: "2020-03-15"}.Matches(john))
		assert.False(t, Clause{Field: "hireDate", Op: OpEq, Value: "2020-03-16"}.Matches(john))
	})

	t.Run("unset date never matches", func(t *testing.T) {
		for _, op := range []Operator{OpEq, OpGt, OpGe, OpLt, OpLe} {
			cl := Clause{Field: "terminationDate", Op: op, Value: "2026-12-31"}
			assert.False(t, cl.Matches(john), "op %s", op)
		}
	})

	t.Run("unparseable date literal matches nothing", func(t *testing.T) {
		cl := Clause{Field: "hireDate", Op: OpGt, Value: "not-a-date"}
		assert.False(t, cl.Matches(john))
		assert.False(t, cl.Matches(anna))
	})
}

func TestApplyClauses(t *testing.T) {
	t.Run("no clauses leaves the collection unchanged", func(t *testing.T) {
		records := filterFixture()
		assert.Equal(t, records, applyClauses(records, nil))
	})

	t.Run("clauses narrow with and semantics preserving order", func(t *testing.T) {
		records := filterFixture()
		clauses := ParseFilter("department gt '1001'")

		out := applyClauses(records, clauses)

		assert.Len(t, out, 1)
		assert.Equal(t, "10002", out[0].EmployeeID)
	})

	t.Run("each extra clause narrows the result", func(t *testing.T) {
		records := filterFixture()

		one := applyClauses(records, ParseFilter("lastName eq 'Schmidt'"))
		two := applyClauses(records, ParseFilter("lastName eq 'Schmidt' and firstName eq 'John'"))

		assert.Len(t, one, 1)
		assert.Empty(t, two)
	})

	t.Run("malformed clause filters nothing out", func(t *testing.T) {
		records := filterFixture()
		out := applyClauses(records, ParseFilter("firstName"))
		assert.Equal(t, records, out)
	})
}
