package memory

import (
	"context"
	"sync"

	"github.com/waron-hospital/hr-backend-go/internal/domain/attendance"
)

type AttendanceRepository struct {
	mu      sync.RWMutex
	records []attendance.Record
}

func NewAttendanceRepository(seed []attendance.Record) *AttendanceRepository {
	return &AttendanceRepository{records: append([]attendance.Record(nil), seed...)}
}

func (r *AttendanceRepository) List(ctx context.Context) ([]attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]attendance.Record(nil), r.records...), nil
}

func (r *AttendanceRepository) Prepend(ctx context.Context, records []attendance.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(append([]attendance.Record(nil), records...), r.records...)
	return nil
}
