package access

import "github.com/waron-hospital/hr-backend-go/internal/domain/user"

// Owned is any record scoped to a single employee.
type Owned interface {
	OwnerEmployeeID() string
}

// Visible projects the records a viewer may see. ADMIN and HR_MANAGER see
// the full collection untouched; STAFF sees only records belonging to their
// linked employee, in the original order. A STAFF account with no linked
// employee sees nothing, which is valid, not an error.
func Visible[R Owned](viewer user.User, records []R) []R {
	if viewer.Role != user.RoleStaff {
		return records
	}

	visible := make([]R, 0)
	if !viewer.Linked() {
		return visible
	}

	for _, record := range records {
		if record.OwnerEmployeeID() == *viewer.EmployeeID {
			visible = append(visible, record)
		}
	}
	return visible
}
