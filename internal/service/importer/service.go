package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/waron-hospital/hr-backend-go/internal/domain/attendance"
	"github.com/waron-hospital/hr-backend-go/internal/domain/employee"
	"github.com/waron-hospital/hr-backend-go/internal/domain/importer"
	"github.com/waron-hospital/hr-backend-go/internal/domain/payroll"
)

type ImportService interface {
	ImportEmployees(ctx context.Context, rows []importer.Row) ([]employee.Employee, error)
	ImportAttendance(ctx context.Context, rows []importer.Row) ([]attendance.Record, error)
	ImportPayroll(ctx context.Context, rows []importer.Row) ([]payroll.Record, error)
}

type importServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	payrollRepo    payroll.PayrollRepository
	now            func() time.Time
}

func NewImportService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	payrollRepo payroll.PayrollRepository,
) ImportService {
	return &importServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		payrollRepo:    payrollRepo,
		now:            time.Now,
	}
}

// ImportEmployees implements ImportService. New directory records are
// appended after the existing ones.
func (s *importServiceImpl) ImportEmployees(ctx context.Context, rows []importer.Row) ([]employee.Employee, error) {
	importedAt := s.now()
	employees := make([]employee.Employee, 0, len(rows))
	for i, row := range rows {
		employees = append(employees, NormalizeEmployee(row, i, importedAt))
	}
	if err := s.employeeRepo.Append(ctx, employees); err != nil {
		return nil, fmt.Errorf("failed to merge imported employees: %w", err)
	}
	return employees, nil
}

// ImportAttendance implements ImportService. Imports are prepended so the
// latest batch lists first.
func (s *importServiceImpl) ImportAttendance(ctx context.Context, rows []importer.Row) ([]attendance.Record, error) {
	importedAt := s.now()
	records := make([]attendance.Record, 0, len(rows))
	for i, row := range rows {
		records = append(records, NormalizeAttendance(row, i, importedAt))
	}
	if err := s.attendanceRepo.Prepend(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to merge imported attendance: %w", err)
	}
	return records, nil
}

// ImportPayroll implements ImportService.
func (s *importServiceImpl) ImportPayroll(ctx context.Context, rows []importer.Row) ([]payroll.Record, error) {
	importedAt := s.now()
	records := make([]payroll.Record, 0, len(rows))
	for i, row := range rows {
		records = append(records, NormalizePayroll(row, i, importedAt))
	}
	if err := s.payrollRepo.Prepend(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to merge imported payroll: %w", err)
	}
	return records, nil
}
