package employee

import (
	"fmt"
	"strconv"
	"sync"
)

// employeeIDBase is the floor for sequential employee ids. Regeneration
// restarts numbering from this base, so ids collide across regenerations on
// purpose.
const employeeIDBase = 10000

//go:generate mockgen -source=employee_store.go -destination=mock/employee_store_mock.go -package=mock
type Store interface {
	// ReplaceAll swaps the whole collection for a fully built one.
	// Readers never observe a half-replaced state.
	ReplaceAll(records []Employee)
	// Append adds one record, assigning the next sequential id
	// (max numeric id in the store, floor 10000, plus one).
	Append(record Employee) Employee
	// All returns a copy of the collection in insertion order.
	All() []Employee
	ByID(id string) (Employee, bool)
	Count() int
}

type memoryStore struct {
	mu      sync.RWMutex
	records []Employee
}

func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) ReplaceAll(records []Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
}

func (s *memoryStore) Append(record Employee) Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := employeeIDBase
	for i := range s.records {
		if n, err := strconv.Atoi(s.records[i].EmployeeID); err == nil && n > maxID {
			maxID = n
		}
	}
	record.EmployeeID = fmt.Sprintf("%05d", maxID+1)

	s.records = append(s.records, record)
	return record
}

func (s *memoryStore) All() []Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Employee, len(s.records))
	copy(out, s.records)
	return out
}

func (s *memoryStore) ByID(id string) (Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.records {
		if s.records[i].EmployeeID == id {
			return s.records[i], true
		}
	}
	return Employee{}, false
}

func (s *memoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
