package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/waron-hospital/hr-backend-go/internal/domain/access"
	"github.com/waron-hospital/hr-backend-go/internal/domain/employee"
	"github.com/waron-hospital/hr-backend-go/internal/domain/importer"
	"github.com/waron-hospital/hr-backend-go/internal/handler/http/response"
	employeeService "github.com/waron-hospital/hr-backend-go/internal/service/employee"
	importerService "github.com/waron-hospital/hr-backend-go/internal/service/importer"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
	UpdateAccess(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employeeService.EmployeeService
	importService   importerService.ImportService
	accessService   access.AccessService
}

func NewEmployeeHandler(
	employeeSvc employeeService.EmployeeService,
	importSvc importerService.ImportService,
	accessSvc access.AccessService,
) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeSvc,
		importService:   importSvc,
		accessService:   accessSvc,
	}
}

func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := employee.ListFilter{
		Department: r.URL.Query().Get("department"),
		Search:     r.URL.Query().Get("search"),
	}

	results, err := h.employeeService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *employeeHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.employeeService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	var req importer.ImportRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	imported, err := h.importService.ImportEmployees(r.Context(), req.Rows)
	if err != nil {
		slog.Error("Employee import error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employees imported", "count", len(imported))
	response.Created(w, "Employees imported successfully", imported)
}

func (h *employeeHandlerImpl) UpdateAccess(w http.ResponseWriter, r *http.Request) {
	var req access.UpdateAccessRequest
	req.EmployeeID = chi.URLParam(r, "id")

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	users, err := h.accessService.UpdateAccess(r.Context(), req)
	if err != nil {
		slog.Error("UpdateAccess service error", "error", err, "employee_id", req.EmployeeID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Access updated successfully", users)
}
