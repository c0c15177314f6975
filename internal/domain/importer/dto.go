package importer

import "github.com/waron-hospital/hr-backend-go/internal/pkg/validator"

// Row is one loosely-typed spreadsheet row as handed over by the client-side
// import collaborator: arbitrary key casing, string or numeric values. The
// file parsing itself happens upstream; the server only ever sees rows.
type Row map[string]any

type ImportRequest struct {
	Rows []Row `json:"rows"`
}

func (r *ImportRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Rows) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "rows",
			Message: "at least one row is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}