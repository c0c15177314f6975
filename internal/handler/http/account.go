package http

import (
	"net/http"

	"github.com/waron-hospital/hr-backend-go/internal/domain/access"
	"github.com/waron-hospital/hr-backend-go/internal/handler/http/response"
)

type AccountHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
}

type accountHandlerImpl struct {
	accessService access.AccessService
}

func NewAccountHandler(accessService access.AccessService) AccountHandler {
	return &accountHandlerImpl{
		accessService: accessService,
	}
}

// Me returns the session account together with its linked employee record.
func (h *accountHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	profile, err := h.accessService.Profile(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}
