package memory

import (
	"context"
	"sync"
)

// DepartmentRepository holds the ordered department label set.
type DepartmentRepository struct {
	mu    sync.RWMutex
	names []string
}

func NewDepartmentRepository(seed []string) *DepartmentRepository {
	return &DepartmentRepository{names: append([]string(nil), seed...)}
}

func (r *DepartmentRepository) List(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.names...), nil
}

func (r *DepartmentRepository) Add(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.names {
		if existing == name {
			// Exact duplicates are silently ignored.
			return nil
		}
	}
	r.names = append(r.names, name)
	return nil
}
