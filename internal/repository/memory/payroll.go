package memory

import (
	"context"
	"sync"

	"github.com/waron-hospital/hr-backend-go/internal/domain/payroll"
)

type PayrollRepository struct {
	mu      sync.RWMutex
	records []payroll.Record
}

func NewPayrollRepository(seed []payroll.Record) *PayrollRepository {
	return &PayrollRepository{records: append([]payroll.Record(nil), seed...)}
}

func (r *PayrollRepository) List(ctx context.Context) ([]payroll.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]payroll.Record(nil), r.records...), nil
}

func (r *PayrollRepository) Prepend(ctx context.Context, records []payroll.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(append([]payroll.Record(nil), records...), r.records...)
	return nil
}
