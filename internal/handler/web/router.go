package web

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/shiftease/shiftease-web/internal/policy"
	"github.com/shiftease/shiftease-web/internal/session"
)

type Handlers struct {
	Auth         *AuthHandler
	Dashboard    *DashboardHandler
	Admin        *AdminHandler
	Schedule     *ScheduleHandler
	Availability *AvailabilityHandler
	Requests     *RequestHandler
	Profile      *ProfileHandler
}

func NewRouter(logger *slog.Logger, sessions *session.Manager, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: false,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/ping"))

	r.Use(sessions.Verifier())

	r.Get("/", h.Auth.LoginPage)
	r.Post("/login", h.Auth.Login)
	r.Post("/logout", h.Auth.Logout)

	// Requires a session
	r.Group(func(r chi.Router) {
		r.Use(sessions.Require)

		r.Get("/employee", h.Dashboard.Dashboard)
		r.Post("/clock/in", h.Dashboard.ClockIn)
		r.Post("/clock/out", h.Dashboard.ClockOut)

		r.Get("/my-schedule", h.Schedule.MySchedule)
		r.Get("/availability", h.Availability.Own)

		r.Get("/profile", h.Profile.Profile)
		r.Post("/profile", h.Profile.Update)

		r.Route("/timeoff", func(r chi.Router) {
			r.Get("/", h.Requests.TimeOff)
			r.Post("/", h.Requests.SubmitTimeOff)

			r.Group(func(r chi.Router) {
				r.Use(sessions.RequireCapability(policy.CapRequestApprove))
				r.Post("/{id}/status", h.Requests.DecideTimeOff)
			})
		})

		r.Route("/swap-requests", func(r chi.Router) {
			r.Get("/", h.Requests.Swaps)
			r.Post("/", h.Requests.SubmitSwap)
			r.Get("/shifts", h.Requests.EmployeeShiftOptions)

			r.Group(func(r chi.Router) {
				r.Use(sessions.RequireCapability(policy.CapRequestApprove))
				r.Post("/{id}/{decision}", h.Requests.DecideSwap)
			})
		})

		// Weekly calendar, manager and admin
		r.Group(func(r chi.Router) {
			r.Use(sessions.RequireCapability(policy.CapWeekScheduleView))
			r.Get("/admin/schedule", h.Schedule.Week)
		})
		r.Group(func(r chi.Router) {
			r.Use(sessions.RequireCapability(policy.CapScheduleExport))
			r.Get("/admin/schedule/export", h.Schedule.ExportWeek)
		})

		// Shift creation, manager and admin
		r.Group(func(r chi.Router) {
			r.Use(sessions.RequireCapability(policy.CapShiftManage))
			r.Post("/admin/shifts", h.Admin.CreateShift)
		})

		// Availability of other employees, manager and admin
		r.Route("/admin/employees/{id}/availability", func(r chi.Router) {
			r.Use(sessions.RequireCapability(policy.CapAvailabilityEditOthers))
			r.Get("/", h.Availability.Manage)
			r.Post("/", h.Availability.Add)
			r.Post("/{entryID}", h.Availability.Update)
			r.Post("/{entryID}/delete", h.Availability.Delete)
		})

		// Employee CRUD, admin only
		r.Group(func(r chi.Router) {
			r.Use(sessions.RequireCapability(policy.CapEmployeeManage))

			r.Get("/admin", h.Admin.Admin)
			r.Post("/admin/employees/{id}", h.Admin.UpdateEmployee)
			r.Post("/admin/employees/{id}/delete", h.Admin.DeleteEmployee)

			r.Get("/add", h.Admin.AddPage)
			r.Post("/add", h.Admin.AddEmployee)
		})
	})

	return r
}
