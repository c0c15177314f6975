package department

import "github.com/waron-hospital/hr-backend-go/internal/pkg/validator"

type AddDepartmentRequest struct {
	Name string `json:"name"`
}

func (r *AddDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
