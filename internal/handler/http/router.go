package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/waron-hospital/hr-backend-go/internal/config"
	"github.com/waron-hospital/hr-backend-go/internal/handler/http/middleware"
	"github.com/waron-hospital/hr-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	accountHandler AccountHandler,
	dashboardHandler DashboardHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	masterHandler MasterHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "waron-hr"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/account/me", accountHandler.Me)
			r.Get("/dashboard/summary", dashboardHandler.Summary)

			// Role-scoped listings: any authenticated account, filtered
			// per viewer inside the service.
			r.Get("/attendance", attendanceHandler.List)
			r.Get("/payroll", payrollHandler.List)

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", masterHandler.ListDepartments)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", masterHandler.AddDepartment)
				})
			})

			// HR manager and admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireHR)
				r.Get("/employees", employeeHandler.List)
				r.Get("/employees/{id}", employeeHandler.GetByID)
				r.Post("/employees/import", employeeHandler.Import)
				r.Post("/attendance/import", attendanceHandler.Import)
				r.Post("/payroll/import", payrollHandler.Import)
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Put("/employees/{id}/access", employeeHandler.UpdateAccess)
			})
		})
	})
	return r
}
