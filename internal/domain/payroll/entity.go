package payroll

import "github.com/shopspring/decimal"

type Status string

const (
	StatusPaid       Status = "Paid"
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
)

// Record is one payslip line. Amounts are Rupiah magnitudes with no
// subunits, carried as decimals.
type Record struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Month        string          `json:"month"`
	BasicSalary  decimal.Decimal `json:"basic_salary"`
	Allowances   decimal.Decimal `json:"allowances"`
	Deductions   decimal.Decimal `json:"deductions"`
	NetSalary    decimal.Decimal `json:"net_salary"`
	Status       Status          `json:"status"`
}

// OwnerEmployeeID satisfies access.Owned so records can be role-scoped.
func (r Record) OwnerEmployeeID() string {
	return r.EmployeeID
}
