package employee

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExporter(t *testing.T) {
	hire := time.Date(2020, time.March, 15, 0, 0, 0, 0, time.UTC)
	records := []Employee{
		{
			EmployeeID:  "10001",
			FirstName:   "John",
			LastName:    "Miller",
			HireDate:    &hire,
			BankAccount: "001234567890",
			TaxID:       "000123456",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewCSVExporter().Write(&buf, records))

	out := buf.Bytes()
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, out[:3], "missing UTF-8 BOM")

	lines := strings.Split(strings.TrimSpace(string(out[3:])), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "employeeId,firstName"))

	// Excel text guards around the long numeric columns.
	assert.Contains(t, lines[1], `="001234567890"`)
	assert.Contains(t, lines[1], `="000123456"`)
	assert.Contains(t, lines[1], "2020-03-15")

	// An unset termination date stays an empty cell.
	assert.Contains(t, lines[1], ",,")
}
