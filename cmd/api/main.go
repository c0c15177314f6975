package main

import (
	"fmt"
	"net/http"

	"github.com/waron-hospital/hr-backend-go/internal/config"
	"github.com/waron-hospital/hr-backend-go/internal/fixtures"
	appHTTP "github.com/waron-hospital/hr-backend-go/internal/handler/http"
	"github.com/waron-hospital/hr-backend-go/internal/pkg/jwt"
	"github.com/waron-hospital/hr-backend-go/internal/repository/memory"
	accessService "github.com/waron-hospital/hr-backend-go/internal/service/access"
	attendanceService "github.com/waron-hospital/hr-backend-go/internal/service/attendance"
	authService "github.com/waron-hospital/hr-backend-go/internal/service/auth"
	dashboardService "github.com/waron-hospital/hr-backend-go/internal/service/dashboard"
	employeeService "github.com/waron-hospital/hr-backend-go/internal/service/employee"
	importerService "github.com/waron-hospital/hr-backend-go/internal/service/importer"
	masterService "github.com/waron-hospital/hr-backend-go/internal/service/master"
	payrollService "github.com/waron-hospital/hr-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	// All state is in-memory, seeded with the demo data set.
	userRepo := memory.NewUserRepository(fixtures.Users())
	employeeRepo := memory.NewEmployeeRepository(fixtures.Employees())
	attendanceRepo := memory.NewAttendanceRepository(fixtures.Attendance())
	payrollRepo := memory.NewPayrollRepository(fixtures.Payroll())
	departmentRepo := memory.NewDepartmentRepository(fixtures.Departments())

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	authSvc := authService.NewAuthService(userRepo, jwtSvc)
	accessSvc := accessService.NewAccessService(userRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, userRepo)
	masterSvc := masterService.NewMasterService(departmentRepo)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo)
	importSvc := importerService.NewImportService(employeeRepo, attendanceRepo, payrollRepo)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc)
	accountHandler := appHTTP.NewAccountHandler(accessSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, importSvc, accessSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, importSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc, importSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtSvc,
		authHandler,
		accountHandler,
		dashboardHandler,
		employeeHandler,
		attendanceHandler,
		payrollHandler,
		masterHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
