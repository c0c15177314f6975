package payroll

import (
	"context"
	"fmt"

	"github.com/waron-hospital/hr-backend-go/internal/domain/access"
	"github.com/waron-hospital/hr-backend-go/internal/domain/payroll"
	"github.com/waron-hospital/hr-backend-go/internal/domain/user"
)

type PayrollService interface {
	// List returns the payslip records the session user may see.
	List(ctx context.Context) ([]payroll.Record, error)
}

type payrollServiceImpl struct {
	payrollRepo payroll.PayrollRepository
	userRepo    user.UserRepository
}

func NewPayrollService(payrollRepo payroll.PayrollRepository, userRepo user.UserRepository) PayrollService {
	return &payrollServiceImpl{
		payrollRepo: payrollRepo,
		userRepo:    userRepo,
	}
}

func (s *payrollServiceImpl) List(ctx context.Context) ([]payroll.Record, error) {
	viewer, err := access.CurrentUser(ctx, s.userRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session user: %w", err)
	}

	records, err := s.payrollRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll: %w", err)
	}

	return access.Visible(viewer, records), nil
}
