package attendance

import "context"

type AttendanceRepository interface {
	List(ctx context.Context) ([]Record, error)
	// Prepend inserts imported records before the existing ones so the most
	// recent import reads first. Insertion order only; nothing depends on it.
	Prepend(ctx context.Context, records []Record) error
}
