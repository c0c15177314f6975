package http

import (
	"encoding/json"
	"net/http"

	"github.com/waron-hospital/hr-backend-go/internal/domain/master/department"
	"github.com/waron-hospital/hr-backend-go/internal/handler/http/response"
	"github.com/waron-hospital/hr-backend-go/internal/service/master"
)

type MasterHandler interface {
	ListDepartments(w http.ResponseWriter, r *http.Request)
	AddDepartment(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{
		masterService: masterService,
	}
}

func (h *masterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	results, err := h.masterService.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) AddDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.AddDepartmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.masterService.AddDepartment(r.Context(), req.Name)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Departments updated", results)
}
