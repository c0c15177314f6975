package master

import (
	"context"
	"fmt"
	"strings"

	"github.com/waron-hospital/hr-backend-go/internal/domain/master/department"
)

type MasterService interface {
	ListDepartments(ctx context.Context) ([]string, error)
	// AddDepartment trims the label and appends it. Empty and duplicate
	// labels are silent no-ops. Returns the resulting set.
	AddDepartment(ctx context.Context, name string) ([]string, error)
}

type masterServiceImpl struct {
	departmentRepo department.DepartmentRepository
}

func NewMasterService(departmentRepo department.DepartmentRepository) MasterService {
	return &masterServiceImpl{
		departmentRepo: departmentRepo,
	}
}

func (s *masterServiceImpl) ListDepartments(ctx context.Context) ([]string, error) {
	names, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return names, nil
}

func (s *masterServiceImpl) AddDepartment(ctx context.Context, name string) ([]string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed != "" {
		if err := s.departmentRepo.Add(ctx, trimmed); err != nil {
			return nil, fmt.Errorf("failed to add department: %w", err)
		}
	}
	return s.ListDepartments(ctx)
}
