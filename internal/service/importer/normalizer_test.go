package importer

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/waron-hospital/hr-backend-go/internal/domain/attendance"
	"github.com/waron-hospital/hr-backend-go/internal/domain/employee"
	"github.com/waron-hospital/hr-backend-go/internal/domain/importer"
	"github.com/waron-hospital/hr-backend-go/internal/domain/payroll"
)

var normalizeTestTime = time.Date(2023, 10, 26, 9, 30, 0, 0, time.UTC)

// Test NormalizeEmployee with a sparse row - every absent field gets its default
func TestNormalizeEmployee_Defaults(t *testing.T) {
	row := importer.Row{"firstName": "Maya"}

	emp := NormalizeEmployee(row, 0, normalizeTestTime)

	assert.Equal(t, "Maya", emp.FirstName)
	assert.Equal(t, "", emp.LastName)
	assert.Equal(t, "Staff", emp.Role)
	assert.Equal(t, "Administration", emp.Department)
	assert.Equal(t, employee.StatusFullTime, emp.Status)
	assert.Equal(t, "2023-10-26", emp.JoinDate)
	assert.Equal(t, []string{}, emp.Skills)
	assert.Zero(t, emp.PerformanceRating)
	assert.Equal(t, "https://ui-avatars.com/api/?name=Maya+&background=random", emp.AvatarURL)
}

// Test NormalizeEmployee with an empty row
func TestNormalizeEmployee_EmptyRow(t *testing.T) {
	emp := NormalizeEmployee(importer.Row{}, 0, normalizeTestTime)

	assert.Equal(t, "Unknown", emp.FirstName)
	assert.Equal(t, "Staff", emp.Role)
	assert.Equal(t, "Administration", emp.Department)
}

// Test NormalizeEmployee alias probing - capitalized sheet headers win when
// the camelCase key is absent
func TestNormalizeEmployee_AliasKeys(t *testing.T) {
	row := importer.Row{
		"FirstName":  "Dewi",
		"LastName":   "Lestari",
		"Email":      "dewi@waronhospital.com",
		"Department": "Emergency",
		"skills":     "Triage, CPR, , Ventilator Management",
	}

	emp := NormalizeEmployee(row, 0, normalizeTestTime)

	assert.Equal(t, "Dewi", emp.FirstName)
	assert.Equal(t, "Lestari", emp.LastName)
	assert.Equal(t, "dewi@waronhospital.com", emp.Email)
	assert.Equal(t, "Emergency", emp.Department)
	assert.Equal(t, []string{"Triage", "CPR", "Ventilator Management"}, emp.Skills)
}

// Test that camelCase keys take precedence over capitalized aliases
func TestNormalizeEmployee_CamelCasePrecedence(t *testing.T) {
	row := importer.Row{
		"firstName": "Rina",
		"FirstName": "WRONG",
	}

	emp := NormalizeEmployee(row, 0, normalizeTestTime)

	assert.Equal(t, "Rina", emp.FirstName)
}

// Test that empty string values fall through to the next alias, then defaults
func TestNormalizeEmployee_EmptyStringFallsThrough(t *testing.T) {
	row := importer.Row{
		"firstName": "",
		"FirstName": "Agus",
		"role":      "",
	}

	emp := NormalizeEmployee(row, 0, normalizeTestTime)

	assert.Equal(t, "Agus", emp.FirstName)
	assert.Equal(t, "Staff", emp.Role)
}

// Test that synthetic IDs are unique and non-empty within a batch
func TestNormalize_SyntheticIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		emp := NormalizeEmployee(importer.Row{}, i, normalizeTestTime)
		assert.NotEmpty(t, emp.ID)
		assert.False(t, seen[emp.ID], "duplicate ID %s", emp.ID)
		seen[emp.ID] = true
	}

	assert.Equal(t, fmt.Sprintf("EMP-IMP-%d-0", normalizeTestTime.UnixMilli()),
		NormalizeEmployee(importer.Row{}, 0, normalizeTestTime).ID)
	assert.Equal(t, fmt.Sprintf("ATT-IMP-%d-3", normalizeTestTime.UnixMilli()),
		NormalizeAttendance(importer.Row{}, 3, normalizeTestTime).ID)
	assert.Equal(t, fmt.Sprintf("PAY-IMP-%d-7", normalizeTestTime.UnixMilli()),
		NormalizePayroll(importer.Row{}, 7, normalizeTestTime).ID)
}

// Test NormalizeAttendance defaults for an empty row
func TestNormalizeAttendance_Defaults(t *testing.T) {
	rec := NormalizeAttendance(importer.Row{}, 0, normalizeTestTime)

	assert.Equal(t, "Unknown", rec.EmployeeID)
	assert.Equal(t, "Unknown", rec.EmployeeName)
	assert.Equal(t, "2023-10-26", rec.Date)
	assert.Equal(t, attendance.AbsentTime, rec.CheckIn)
	assert.Equal(t, attendance.AbsentTime, rec.CheckOut)
	assert.Equal(t, attendance.ShiftPagi, rec.Shift)
	assert.Equal(t, attendance.StatusAbsent, rec.Status)
}

// Test NormalizeAttendance with a full sheet-style row
func TestNormalizeAttendance_SheetRow(t *testing.T) {
	row := importer.Row{
		"EmployeeID": "EMP-002",
		"Name":       "Budi Santoso",
		"Date":       "2023-10-26",
		"CheckIn":    "07:30",
		"CheckOut":   "14:30",
		"Shift":      "Siang",
		"Status":     "Present",
	}

	rec := NormalizeAttendance(row, 0, normalizeTestTime)

	assert.Equal(t, "EMP-002", rec.EmployeeID)
	assert.Equal(t, "Budi Santoso", rec.EmployeeName)
	assert.Equal(t, "07:30", rec.CheckIn)
	assert.Equal(t, attendance.ShiftSiang, rec.Shift)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
}

// Test NormalizePayroll money coercion: numeric strings parse, JSON numbers
// pass through, and garbage coerces to zero
func TestNormalizePayroll_MoneyCoercion(t *testing.T) {
	row := importer.Row{
		"BasicSalary": "5000000",
		"Allowances":  float64(750000),
		"Deductions":  "N/A",
	}

	rec := NormalizePayroll(row, 0, normalizeTestTime)

	assert.True(t, rec.BasicSalary.Equal(decimal.NewFromInt(5000000)), "got %s", rec.BasicSalary)
	assert.True(t, rec.Allowances.Equal(decimal.NewFromInt(750000)), "got %s", rec.Allowances)
	assert.True(t, rec.Deductions.IsZero(), "got %s", rec.Deductions)
	assert.True(t, rec.NetSalary.IsZero(), "got %s", rec.NetSalary)
}

// Test NormalizePayroll defaults
func TestNormalizePayroll_Defaults(t *testing.T) {
	rec := NormalizePayroll(importer.Row{}, 0, normalizeTestTime)

	assert.Equal(t, "Unknown", rec.EmployeeID)
	assert.Equal(t, "Current Month", rec.Month)
	assert.Equal(t, payroll.StatusProcessing, rec.Status)
	assert.True(t, rec.BasicSalary.IsZero())
}

// Test that numeric cells stringify rather than fail - sheets frequently
// deliver IDs and dates as numbers
func TestTextField_NumericCoercion(t *testing.T) {
	row := importer.Row{"EmployeeID": float64(1042)}

	rec := NormalizeAttendance(row, 0, normalizeTestTime)

	assert.Equal(t, "1042", rec.EmployeeID)
}

// Test that explicit nil cells fall through to the default
func TestTextField_NilValue(t *testing.T) {
	row := importer.Row{"firstName": nil}

	emp := NormalizeEmployee(row, 0, normalizeTestTime)

	assert.Equal(t, "Unknown", emp.FirstName)
}
