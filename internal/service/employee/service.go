package employee

import (
	"context"
	"fmt"
	"strings"

	"github.com/waron-hospital/hr-backend-go/internal/domain/employee"
)

type EmployeeService interface {
	List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error)
	GetByID(ctx context.Context, id string) (employee.Employee, error)
}

type employeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) EmployeeService {
	return &employeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

func (s *employeeServiceImpl) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	if filter.Department == "" && filter.Search == "" {
		return employees, nil
	}

	search := strings.ToLower(filter.Search)
	filtered := make([]employee.Employee, 0, len(employees))
	for _, e := range employees {
		if filter.Department != "" && e.Department != filter.Department {
			continue
		}
		if search != "" && !matches(e, search) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered, nil
}

func (s *employeeServiceImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

func matches(e employee.Employee, search string) bool {
	haystacks := []string{e.FullName(), e.Email, e.Role}
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), search) {
			return true
		}
	}
	return false
}
