package importer

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/waron-hospital/hr-backend-go/internal/domain/attendance"
	"github.com/waron-hospital/hr-backend-go/internal/domain/employee"
	"github.com/waron-hospital/hr-backend-go/internal/domain/importer"
	"github.com/waron-hospital/hr-backend-go/internal/domain/master/department"
	"github.com/waron-hospital/hr-backend-go/internal/domain/payroll"
)

// The normalizers are total: malformed or missing fields degrade to defaults
// and never raise. Garbage in, garbage out is the accepted policy; the only
// failure path in an import lives upstream in the file/sheet collaborator.
//
// Each target field probes an ordered list of accepted source keys and takes
// the first present, non-empty value. importedAt anchors the synthetic IDs
// and the date defaults so a whole batch is self-consistent.

// NormalizeEmployee maps one loosely-typed row to a directory record.
// Imported employees always start with a zero performance rating; only seed
// data carries real ratings.
func NormalizeEmployee(row importer.Row, batchIndex int, importedAt time.Time) employee.Employee {
	firstName := textField(row, "Unknown", "firstName", "FirstName")
	lastName := textField(row, "", "lastName", "LastName")

	return employee.Employee{
		ID:         fmt.Sprintf("EMP-IMP-%d-%d", importedAt.UnixMilli(), batchIndex),
		FirstName:  firstName,
		LastName:   lastName,
		Email:      textField(row, "", "email", "Email"),
		Phone:      textField(row, "", "phone", "Phone"),
		Role:       textField(row, "Staff", "role", "Role"),
		Department: textField(row, department.Administration, "department", "Department"),
		Status:     employee.EmploymentStatus(textField(row, string(employee.StatusFullTime), "status", "Status")),
		JoinDate:   textField(row, importedAt.Format("2006-01-02"), "joinDate", "JoinDate"),
		AvatarURL:  placeholderAvatar(firstName, lastName),
		Skills:     skillsField(row),
	}
}

// NormalizeAttendance maps one row to an attendance record. Missing clock
// times fall back to the "-" absence sentinel.
func NormalizeAttendance(row importer.Row, batchIndex int, importedAt time.Time) attendance.Record {
	return attendance.Record{
		ID:           fmt.Sprintf("ATT-IMP-%d-%d", importedAt.UnixMilli(), batchIndex),
		EmployeeID:   textField(row, "Unknown", "EmployeeID", "employeeId"),
		EmployeeName: textField(row, "Unknown", "Name", "employeeName"),
		Date:         textField(row, importedAt.Format("2006-01-02"), "Date", "date"),
		CheckIn:      textField(row, attendance.AbsentTime, "CheckIn", "checkIn"),
		CheckOut:     textField(row, attendance.AbsentTime, "CheckOut", "checkOut"),
		Shift:        attendance.Shift(textField(row, string(attendance.ShiftPagi), "Shift", "shift")),
		Status:       attendance.Status(textField(row, string(attendance.StatusAbsent), "Status", "status")),
	}
}

// NormalizePayroll maps one row to a payslip record. Money fields coerce to
// decimal; non-numeric or absent input coerces to zero, silently.
func NormalizePayroll(row importer.Row, batchIndex int, importedAt time.Time) payroll.Record {
	return payroll.Record{
		ID:           fmt.Sprintf("PAY-IMP-%d-%d", importedAt.UnixMilli(), batchIndex),
		EmployeeID:   textField(row, "Unknown", "EmployeeID", "employeeId"),
		EmployeeName: textField(row, "Unknown", "Name", "employeeName"),
		Month:        textField(row, "Current Month", "Month", "month"),
		BasicSalary:  moneyField(row, "BasicSalary", "basicSalary"),
		Allowances:   moneyField(row, "Allowances", "allowances"),
		Deductions:   moneyField(row, "Deductions", "deductions"),
		NetSalary:    moneyField(row, "NetSalary", "netSalary"),
		Status:       payroll.Status(textField(row, string(payroll.StatusProcessing), "Status", "status")),
	}
}

// textField returns the first present, non-empty value among the given keys,
// stringified, or the fallback. Numbers arrive as float64 from JSON decoding.
func textField(row importer.Row, fallback string, keys ...string) string {
	for _, key := range keys {
		value, ok := row[key]
		if !ok || value == nil {
			continue
		}
		switch v := value.(type) {
		case string:
			if v == "" {
				continue
			}
			return v
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case int:
			return strconv.Itoa(v)
		case bool:
			return strconv.FormatBool(v)
		}
	}
	return fallback
}

// moneyField resolves a currency magnitude. The first defined alias wins;
// whatever it holds then coerces to decimal or, failing that, to zero.
func moneyField(row importer.Row, keys ...string) decimal.Decimal {
	for _, key := range keys {
		value, ok := row[key]
		if !ok || value == nil {
			continue
		}
		switch v := value.(type) {
		case string:
			if v == "" {
				continue
			}
			if d, err := decimal.NewFromString(strings.TrimSpace(v)); err == nil {
				return d
			}
			return decimal.Zero
		case float64:
			return decimal.NewFromFloat(v)
		case int:
			return decimal.NewFromInt(int64(v))
		}
	}
	return decimal.Zero
}

// skillsField splits a comma-separated skills cell into trimmed tokens.
func skillsField(row importer.Row) []string {
	raw := textField(row, "", "skills", "Skills")
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if token := strings.TrimSpace(part); token != "" {
			skills = append(skills, token)
		}
	}
	return skills
}

// placeholderAvatar delegates the avatar to the ui-avatars placeholder
// service, keyed on the resolved names.
func placeholderAvatar(firstName, lastName string) string {
	return fmt.Sprintf(
		"https://ui-avatars.com/api/?name=%s+%s&background=random",
		url.QueryEscape(firstName),
		url.QueryEscape(lastName),
	)
}
