package dashboard

import (
	"context"
	"fmt"
	"math"

	"github.com/waron-hospital/hr-backend-go/internal/domain/dashboard"
	"github.com/waron-hospital/hr-backend-go/internal/domain/employee"
)

type DashboardService interface {
	Summary(ctx context.Context) (dashboard.SummaryResponse, error)
}

type dashboardServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewDashboardService(employeeRepo employee.EmployeeRepository) DashboardService {
	return &dashboardServiceImpl{
		employeeRepo: employeeRepo,
	}
}

// Summary implements DashboardService. Department counts come out in
// first-appearance order so the dashboard renders them stably.
func (s *dashboardServiceImpl) Summary(ctx context.Context) (dashboard.SummaryResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	summary := dashboard.SummaryResponse{
		TotalEmployees:        len(employees),
		EmployeesByDepartment: []dashboard.DepartmentCount{},
	}

	var ratingSum float64
	indexByDept := make(map[string]int)
	for _, e := range employees {
		if e.Status == employee.StatusFullTime {
			summary.FullTimeEmployees++
		}
		ratingSum += e.PerformanceRating

		if i, ok := indexByDept[e.Department]; ok {
			summary.EmployeesByDepartment[i].Count++
		} else {
			indexByDept[e.Department] = len(summary.EmployeesByDepartment)
			summary.EmployeesByDepartment = append(summary.EmployeesByDepartment, dashboard.DepartmentCount{
				Name:  e.Department,
				Count: 1,
			})
		}
	}

	if len(employees) > 0 {
		avg := ratingSum / float64(len(employees))
		summary.AveragePerformance = math.Round(avg*10) / 10
	}

	return summary, nil
}
