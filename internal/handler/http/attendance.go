package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/waron-hospital/hr-backend-go/internal/domain/importer"
	"github.com/waron-hospital/hr-backend-go/internal/handler/http/response"
	attendanceService "github.com/waron-hospital/hr-backend-go/internal/service/attendance"
	importerService "github.com/waron-hospital/hr-backend-go/internal/service/importer"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendanceService.AttendanceService
	importService     importerService.ImportService
}

func NewAttendanceHandler(attendanceSvc attendanceService.AttendanceService, importSvc importerService.ImportService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceSvc,
		importService:     importSvc,
	}
}

// List returns attendance scoped to the session role: staff accounts see
// only their own records.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.attendanceService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *attendanceHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	var req importer.ImportRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	imported, err := h.importService.ImportAttendance(r.Context(), req.Rows)
	if err != nil {
		slog.Error("Attendance import error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance imported", "count", len(imported))
	response.Created(w, "Attendance imported successfully", imported)
}
