package http

import (
	"net/http"

	"github.com/waron-hospital/hr-backend-go/internal/handler/http/response"
	"github.com/waron-hospital/hr-backend-go/internal/service/dashboard"
)

type DashboardHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

func (h *dashboardHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.Summary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
