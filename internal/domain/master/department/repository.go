package department

import "context"

type DepartmentRepository interface {
	// List returns the labels in insertion order.
	List(ctx context.Context) ([]string, error)
	// Add appends a label. Case-sensitive duplicates are a silent no-op.
	Add(ctx context.Context, name string) error
}
