package http

import (
	"log/slog"
	"os"

	"github.com/frd-security/attendance-backend-go/internal/config"
	"github.com/frd-security/attendance-backend-go/internal/domain/user"
	"github.com/frd-security/attendance-backend-go/internal/handler/http/middleware"
	"github.com/frd-security/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	staffHandler StaffHandler,
	companyHandler CompanyHandler,
	userHandler UserHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "frd-attendance"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
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
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendances", func(r chi.Router) {

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceSubmit))
					r.Post("/", attendanceHandler.Submit)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAnyPermission(
						user.PermissionAttendanceViewAll,
						user.PermissionAttendanceViewCompany,
					))
					r.Get("/", attendanceHandler.List)
					r.Get("/summary", attendanceHandler.Summary)
					r.Get("/{id}", attendanceHandler.Get)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAnyPermission(
						user.PermissionAttendanceApproveLevel1,
						user.PermissionAttendanceApproveLevel2,
						user.PermissionAttendanceApproveLevel3,
					))
					r.Get("/worklist", attendanceHandler.Worklist)
					r.Post("/{id}/approve", attendanceHandler.Approve)
					r.Post("/{id}/reject", attendanceHandler.Reject)
				})
			})

			r.Route("/staff", func(r chi.Router) {

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAnyPermission(
						user.PermissionStaffManage,
						user.PermissionStaffViewOwn,
					))
					r.Get("/", staffHandler.List)
					r.Get("/{empID}", staffHandler.Get)
					r.Get("/supervisor/{supervisorNo}", staffHandler.ListBySupervisor)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionStaffManage))
					r.Post("/", staffHandler.Register)
					r.Put("/{empID}", staffHandler.Update)
					r.Delete("/{empID}", staffHandler.Delete)
				})
			})

			r.Route("/companies", func(r chi.Router) {

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAnyPermission(
						user.PermissionCompanyView,
						user.PermissionCompanyManage,
					))
					r.Get("/", companyHandler.List)
					r.Get("/{id}", companyHandler.Get)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionCompanyManage))
					r.Post("/", companyHandler.Register)
					r.Put("/{id}", companyHandler.Update)
					r.Delete("/{id}", companyHandler.Delete)
				})
			})

			// SuperAdmin only
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireSuperAdmin)
				r.Get("/", userHandler.List)
				r.Post("/", userHandler.Register)
				r.Get("/{id}", userHandler.Get)
				r.Put("/{id}/role", userHandler.UpdateRole)
				r.Delete("/{id}", userHandler.Delete)
			})
		})
	})
	return r
}
