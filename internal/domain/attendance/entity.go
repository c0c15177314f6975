package attendance

type Shift string

const (
	ShiftPagi   Shift = "Pagi"
	ShiftSiang  Shift = "Siang"
	ShiftMalam  Shift = "Malam"
	ShiftMiddle Shift = "Middle"
	ShiftOff    Shift = "Off"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusLate    Status = "Late"
	StatusAbsent  Status = "Absent"
	StatusLeave   Status = "Leave"
)

// AbsentTime is the check-in/check-out sentinel for days without a clock event.
const AbsentTime = "-"

// Record is a single attendance entry. EmployeeName is a denormalized
// snapshot taken at import time; EmployeeID is not enforced to reference an
// existing directory record.
type Record struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`
	CheckIn      string `json:"check_in"`
	CheckOut     string `json:"check_out"`
	Shift        Shift  `json:"shift"`
	Status       Status `json:"status"`
}

// OwnerEmployeeID satisfies access.Owned so records can be role-scoped.
func (r Record) OwnerEmployeeID() string {
	return r.EmployeeID
}
