package attendance

import (
	"context"
	"fmt"

	"github.com/waron-hospital/hr-backend-go/internal/domain/access"
	"github.com/waron-hospital/hr-backend-go/internal/domain/attendance"
	"github.com/waron-hospital/hr-backend-go/internal/domain/user"
)

type AttendanceService interface {
	// List returns the attendance records the session user may see.
	List(ctx context.Context) ([]attendance.Record, error)
}

type attendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, userRepo user.UserRepository) AttendanceService {
	return &attendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
	}
}

func (s *attendanceServiceImpl) List(ctx context.Context) ([]attendance.Record, error) {
	viewer, err := access.CurrentUser(ctx, s.userRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session user: %w", err)
	}

	records, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	return access.Visible(viewer, records), nil
}
