package memory

import (
	"context"
	"sync"

	"github.com/waron-hospital/hr-backend-go/internal/domain/employee"
)

// EmployeeRepository is the in-memory directory. The collection is
// append-only; records are never deleted or rewritten.
type EmployeeRepository struct {
	mu        sync.RWMutex
	employees []employee.Employee
}

func NewEmployeeRepository(seed []employee.Employee) *EmployeeRepository {
	return &EmployeeRepository{employees: append([]employee.Employee(nil), seed...)}
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]employee.Employee(nil), r.employees...), nil
}

func (r *EmployeeRepository) Append(ctx context.Context, employees []employee.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.employees = append(r.employees, employees...)
	return nil
}
