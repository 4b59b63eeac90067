package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/worklane/hrms-backend-go/internal/handler/http/middleware"
	"github.com/worklane/hrms-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	leaveHandler LeaveHandler,
	attendanceHandler AttendanceHandler,
	employeeHandler EmployeeHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
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
			r.Post("/forgot-password", authHandler.ForgotPassword)
			r.Post("/change-password", authHandler.ChangePassword)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Apply)
				r.Get("/my", leaveHandler.MyRequests)
				r.Get("/balance", leaveHandler.GetBalance)

				// Manager stage
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/manager/pending", leaveHandler.ManagerPending)
					r.Get("/manager/requests", leaveHandler.ManagerRequests)
					r.Post("/manager/{id}/decision", leaveHandler.ManagerDecide)
				})

				// HR stage and balance administration
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Get("/hr/pending", leaveHandler.HRPending)
					r.Get("/hr/requests", leaveHandler.HRRequests)
					r.Post("/hr/{id}/decision", leaveHandler.HRDecide)
					r.Post("/balance/init", leaveHandler.InitBalance)
					r.Put("/balance", leaveHandler.SetBalance)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", attendanceHandler.Record)
				r.Post("/batch", attendanceHandler.SubmitBatch)
				r.Get("/weekly", attendanceHandler.Weekly)
				r.Get("/daily", attendanceHandler.Daily)
				r.Get("/active-projects", attendanceHandler.ActiveProjects)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/manager/team-summary", attendanceHandler.ManagerTeamSummary)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Get("/hr/team-summary", attendanceHandler.HRTeamSummary)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/managers", employeeHandler.Managers)
				r.Get("/hrs", employeeHandler.HRs)
				r.Get("/{id}", employeeHandler.Profile)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Put("/{id}", employeeHandler.Update)
					r.Post("/assignments", employeeHandler.Assign)
				})
			})
		})
	})
	return r
}
