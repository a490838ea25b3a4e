package employee

import (
	"strconv"
	"strings"
	"time"
)

// Restricted OData $filter grammar: clauses joined by " and ", each clause
// "field op value" with op one of eq/le/lt/ge/gt and single-quoted values.
// No or, no grouping, no negation.

const dateLayout = "2006-01-02"

type Operator string

const (
	OpEq Operator = "eq"
	OpLe Operator = "le"
	OpLt Operator = "lt"
	OpGe Operator = "ge"
	OpGt Operator = "gt"
)

// operatorOrder fixes clause classification: the first operator token found
// in this order wins, so a clause containing several candidate tokens is
// always read the same way.
var operatorOrder = []Operator{OpEq, OpLe, OpLt, OpGe, OpGt}

// Clause is one parsed "field op value" fragment.
type Clause struct {
	Field string
	Op    Operator
	Value string
}

// ParseFilter splits a raw $filter string into typed clauses. Fragments
// without a recognized operator are dropped, never rejected: a malformed
// clause filters nothing out (fail open).
func ParseFilter(filter string) []Clause {
	if strings.TrimSpace(filter) == "" {
		return nil
	}

	var clauses []Clause
	for _, cond := range strings.Split(filter, " and ") {
		cond = strings.TrimSpace(cond)
		if cl, ok := parseClause(cond); ok {
			clauses = append(clauses, cl)
		}
	}
	return clauses
}

func parseClause(cond string) (Clause, bool) {
	for _, op := range operatorOrder {
		token := " " + string(op) + " "
		if !strings.Contains(cond, token) {
			continue
		}
		parts := strings.SplitN(cond, token, 2)
		field := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(strings.ReplaceAll(parts[1], "'", ""))
		return Clause{Field: field, Op: op, Value: value}, true
	}
	return Clause{}, false
}

type fieldKind int

const (
	kindExact   fieldKind = iota // case-sensitive string, equality only
	kindText                     // case-insensitive string, equality only
	kindNumeric                  // exact string equality, integer ordering
	kindDate                     // ISO string equality, calendar ordering
)

type fieldSpec struct {
	kind fieldKind
	str  func(*Employee) string
	date func(*Employee) *time.Time
}

// fieldRegistry is the single dispatch table consulted by both the equality
// and the comparison path. A field missing here matches nothing.
var fieldRegistry = map[string]fieldSpec{
	"employeeId":      {kind: kindExact, str: func(e *Employee) string { return e.EmployeeID }},
	"firstName":       {kind: kindText, str: func(e *Employee) string { return e.FirstName }},
	"lastName":        {kind: kindText, str: func(e *Employee) string { return e.LastName }},
	"middleName":      {kind: kindText, str: func(e *Employee) string { return e.MiddleName }},
	"gender":          {kind: kindText, str: func(e *Employee) string { return e.Gender }},
	"nationality":     {kind: kindText, str: func(e *Employee) string { return e.Nationality }},
	"maritalStatus":   {kind: kindText, str: func(e *Employee) string { return e.MaritalStatus }},
	"position":        {kind: kindText, str: func(e *Employee) string { return e.Position }},
	"jobTitle":        {kind: kindText, str: func(e *Employee) string { return e.JobTitle }},
	"department":      {kind: kindNumeric, str: func(e *Employee) string { return e.Department }},
	"departmentName":  {kind: kindText, str: func(e *Employee) string { return e.DepartmentName }},
	"workEmail":       {kind: kindText, str: func(e *Employee) string { return e.WorkEmail }},
	"workPhone":       {kind: kindText, str: func(e *Employee) string { return e.WorkPhone }},
	"mobilePhone":     {kind: kindText, str: func(e *Employee) string { return e.MobilePhone }},
	"address":         {kind: kindText, str: func(e *Employee) string { return e.Address }},
	"bankAccount":     {kind: kindNumeric, str: func(e *Employee) string { return e.BankAccount }},
	"taxId":           {kind: kindNumeric, str: func(e *Employee) string { return e.TaxID }},
	"birthDate":       {kind: kindDate, date: func(e *Employee) *time.Time { return e.BirthDate }},
	"hireDate":        {kind: kindDate, date: func(e *Employee) *time.Time { return e.HireDate }},
	"terminationDate": {kind: kindDate, date: func(e *Employee) *time.Time { return e.TerminationDate }},
}

// Matches reports whether the employee satisfies the clause. Unknown field
// names and unparseable literals match nothing; they exclude rather than
// error.
func (cl Clause) Matches(e *Employee) bool {
	spec, ok := fieldRegistry[cl.Field]
	if !ok {
		return false
	}
	if cl.Op == OpEq {
		return spec.matchEquals(e, cl.Value)
	}
	return spec.matchComparison(e, cl.Op, cl.Value)
}

func (s fieldSpec) matchEquals(e *Employee, value string) bool {
	switch s.kind {
	case kindExact, kindNumeric:
		// Numeric-looking identifiers compare as exact strings under eq;
		// leading zeros are significant here but not under gt/ge/lt/le.
		return s.str(e) == value
	case kindText:
		return strings.EqualFold(s.str(e), value)
	case kindDate:
		d := s.date(e)
		return d != nil && d.Format(dateLayout) == value
	}
	return false
}

func (s fieldSpec) matchComparison(e *Employee, op Operator, value string) bool {
	switch s.kind {
	case kindDate:
		return compareDates(s.date(e), op, value)
	case kindNumeric:
		return compareNumbers(s.str(e), op, value)
	default:
		// Free-text fields have no ordering semantics.
		return false
	}
}

func compareDates(d *time.Time, op Operator, value string) bool {
	if d == nil {
		return false
	}
	target, err := time.Parse(dateLayout, value)
	if err != nil {
		return false
	}
	switch op {
	case OpGt:
		return d.After(target)
	case OpGe:
		return !d.Before(target)
	case OpLt:
		return d.Before(target)
	case OpLe:
		return !d.After(target)
	}
	return false
}

func compareNumbers(fieldValue string, op Operator, value string) bool {
	fieldNum, err := strconv.ParseInt(fieldValue, 10, 64)
	if err != nil {
		return false
	}
	targetNum, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return false
	}
	switch op {
	case OpGt:
		return fieldNum > targetNum
	case OpGe:
		return fieldNum >= targetNum
	case OpLt:
		return fieldNum < targetNum
	case OpLe:
		return fieldNum <= targetNum
	}
	return false
}

// applyClauses narrows the candidate set clause by clause (AND semantics),
// preserving insertion order.
func applyClauses(records []Employee, clauses []Clause) []Employee {
	for _, cl := range clauses {
		kept := make([]Employee, 0, len(records))
		for i := range records {
			if cl.Matches(&records[i]) {
				kept = append(kept, records[i])
			}
		}
		records = kept
	}
	return records
}
