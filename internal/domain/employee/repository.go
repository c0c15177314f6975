package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	// Append adds imported records after the existing ones, preserving batch order.
	Append(ctx context.Context, employees []Employee) error
}
