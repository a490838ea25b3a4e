package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore(t *testing.T) {
	t.Run("replace all swaps the collection", func(t *testing.T) {
		store := NewMemoryStore()
		store.ReplaceAll([]Employee{{EmployeeID: "10001"}, {EmployeeID: "10002"}})

		assert.Equal(t, 2, store.Count())

		store.ReplaceAll([]Employee{{EmployeeID: "10001"}})
		assert.Equal(t, 1, store.Count())
	})

	t.Run("all returns a copy in insertion order", func(t *testing.T) {
		store := NewMemoryStore()
		store.ReplaceAll([]Employee{{EmployeeID: "10002"}, {EmployeeID: "10001"}})

		out := store.All()
		assert.Equal(t, "10002", out[0].EmployeeID)
		assert.Equal(t, "10001", out[1].EmployeeID)

		out[0].EmployeeID = "mutated"
		fresh := store.All()
		assert.Equal(t, "10002", fresh[0].EmployeeID)
	})

	t.Run("append assigns the next sequential id", func(t *testing.T) {
		store := NewMemoryStore()

		created := store.Append(Employee{FirstName: "John"})
		assert.Equal(t, "10001", created.EmployeeID)

		store.ReplaceAll([]Employee{{EmployeeID: "10007"}})
		created = store.Append(Employee{FirstName: "Anna"})
		assert.Equal(t, "10008", created.EmployeeID)
	})

	t.Run("append ignores non numeric ids when computing the max", func(t *testing.T) {
		store := NewMemoryStore()
		store.ReplaceAll([]Employee{{EmployeeID: "EXT-1"}})

		created := store.Append(Employee{})
		assert.Equal(t, "10001", created.EmployeeID)
	})

	t.Run("by id", func(t *testing.T) {
		store := NewMemoryStore()
		store.ReplaceAll([]Employee{{EmployeeID: "10001", FirstName: "John"}})

		emp, ok := store.ByID("10001")
		assert.True(t, ok)
		assert.Equal(t, "John", emp.FirstName)

		_, ok = store.ByID("99999")
		assert.False(t, ok)
	})
}
