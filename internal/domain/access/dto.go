package access

import (
	"github.com/waron-hospital/hr-backend-go/internal/domain/employee"
	"github.com/waron-hospital/hr-backend-go/internal/domain/user"
	"github.com/waron-hospital/hr-backend-go/internal/pkg/validator"
)

// ProfileResponse is the account view: the session user plus the linked
// employee record, when the account is linked.
type ProfileResponse struct {
	User     user.UserResponse  `json:"user"`
	Employee *employee.Employee `json:"employee,omitempty"`
}

// UpdateAccessRequest grants, changes, or revokes an employee's system
// account. A nil Role means "no access": revoke the linked account if one
// exists.
type UpdateAccessRequest struct {
	EmployeeID string  `json:"-"`
	Role       *string `json:"role"`
}

func (r *UpdateAccessRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Role != nil && !validator.IsInSlice(*r.Role, user.ValidRoles()) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of ADMIN, HR_MANAGER, STAFF",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
