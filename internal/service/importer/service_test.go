package importer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waron-hospital/hr-backend-go/internal/domain/importer"
	"github.com/waron-hospital/hr-backend-go/internal/fixtures"
	"github.com/waron-hospital/hr-backend-go/internal/repository/memory"
)

func newImportTestService() (*importServiceImpl, *memory.EmployeeRepository, *memory.AttendanceRepository, *memory.PayrollRepository) {
	employeeRepo := memory.NewEmployeeRepository(fixtures.Employees())
	attendanceRepo := memory.NewAttendanceRepository(fixtures.Attendance())
	payrollRepo := memory.NewPayrollRepository(fixtures.Payroll())

	svc := &importServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		payrollRepo:    payrollRepo,
		now:            func() time.Time { return normalizeTestTime },
	}
	return svc, employeeRepo, attendanceRepo, payrollRepo
}

// Test ImportEmployees - imported records append after the seed directory
func TestImportService_ImportEmployees_Appends(t *testing.T) {
	ctx := context.Background()
	svc, employeeRepo, _, _ := newImportTestService()

	seeded, err := employeeRepo.List(ctx)
	require.NoError(t, err)

	rows := []importer.Row{
		{"firstName": "Maya", "lastName": "Putri"},
		{"firstName": "Agus"},
	}
	imported, err := svc.ImportEmployees(ctx, rows)

	require.NoError(t, err)
	require.Len(t, imported, 2)
	assert.Equal(t, "Maya", imported[0].FirstName)

	all, err := employeeRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(seeded)+2)
	assert.Equal(t, seeded[0].ID, all[0].ID)
	assert.Equal(t, imported[0].ID, all[len(seeded)].ID)
	assert.Equal(t, imported[1].ID, all[len(seeded)+1].ID)
}

// Test ImportAttendance - the new batch lists before the seed records,
// keeping batch order within itself
func TestImportService_ImportAttendance_Prepends(t *testing.T) {
	ctx := context.Background()
	svc, _, attendanceRepo, _ := newImportTestService()

	seeded, err := attendanceRepo.List(ctx)
	require.NoError(t, err)

	rows := []importer.Row{
		{"EmployeeID": "EMP-001", "Status": "Present"},
		{"EmployeeID": "EMP-002", "Status": "Late"},
	}
	imported, err := svc.ImportAttendance(ctx, rows)

	require.NoError(t, err)
	require.Len(t, imported, 2)

	all, err := attendanceRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(seeded)+2)
	assert.Equal(t, imported[0].ID, all[0].ID)
	assert.Equal(t, imported[1].ID, all[1].ID)
	assert.Equal(t, seeded[0].ID, all[2].ID)
}

// Test ImportPayroll - prepend, same as attendance
func TestImportService_ImportPayroll_Prepends(t *testing.T) {
	ctx := context.Background()
	svc, _, _, payrollRepo := newImportTestService()

	seeded, err := payrollRepo.List(ctx)
	require.NoError(t, err)

	imported, err := svc.ImportPayroll(ctx, []importer.Row{
		{"EmployeeID": "EMP-003", "BasicSalary": "15000000"},
	})

	require.NoError(t, err)
	require.Len(t, imported, 1)

	all, err := payrollRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(seeded)+1)
	assert.Equal(t, imported[0].ID, all[0].ID)
	assert.Equal(t, seeded[0].ID, all[1].ID)
}

// Test importing an empty batch - a no-op that leaves the collection alone
func TestImportService_EmptyBatch(t *testing.T) {
	ctx := context.Background()
	svc, employeeRepo, _, _ := newImportTestService()

	seeded, err := employeeRepo.List(ctx)
	require.NoError(t, err)

	imported, err := svc.ImportEmployees(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, imported)

	all, err := employeeRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(seeded))
}
