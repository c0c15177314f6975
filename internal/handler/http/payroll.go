package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/waron-hospital/hr-backend-go/internal/domain/importer"
	"github.com/waron-hospital/hr-backend-go/internal/handler/http/response"
	importerService "github.com/waron-hospital/hr-backend-go/internal/service/importer"
	payrollService "github.com/waron-hospital/hr-backend-go/internal/service/payroll"
)

type PayrollHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payrollService.PayrollService
	importService  importerService.ImportService
}

func NewPayrollHandler(payrollSvc payrollService.PayrollService, importSvc importerService.ImportService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollSvc,
		importService:  importSvc,
	}
}

// List returns payslips scoped to the session role.
func (h *payrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.payrollService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *payrollHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	var req importer.ImportRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	imported, err := h.importService.ImportPayroll(r.Context(), req.Rows)
	if err != nil {
		slog.Error("Payroll import error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll imported", "count", len(imported))
	response.Created(w, "Payroll imported successfully", imported)
}
