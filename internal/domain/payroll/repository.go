package payroll

import "context"

type PayrollRepository interface {
	List(ctx context.Context) ([]Record, error)
	// Prepend inserts imported records before the existing ones.
	Prepend(ctx context.Context, records []Record) error
}
