package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"

	"taskdesk/internal/config"
	"taskdesk/internal/handlers"
	"taskdesk/internal/middleware"
	"taskdesk/internal/models"
	"taskdesk/internal/service"
	"taskdesk/internal/store"
)

func New(log zerolog.Logger, st store.Store, cfg config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(httprate.LimitByIP(200, time.Minute))
	r.Use(middleware.WithAuth(log, cfg))

	// Health
	r.Get("/healthz", handlers.Health())

	// Services + handlers
	auth := service.NewAuthService(st, log, cfg.SessionSecret)
	tasks := service.NewTaskService(st, log)
	teams := service.NewTeamService(st, log)
	users := service.NewUserService(st, log)
	notifications := service.NewNotificationService(st, log)

	ah := handlers.NewAuthHTTP(auth)
	th := handlers.NewTaskHTTP(tasks, auth, st)
	tmh := handlers.NewTeamHTTP(teams, auth, st)
	uh := handlers.NewUserHTTP(users, auth, st)
	nh := handlers.NewNotificationHTTP(notifications, auth)
	rh := handlers.NewReportHTTP(auth, st)

	superuser := string(models.RoleSuperuser)
	admin := string(models.RoleAdmin)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", ah.Login())
		r.Post("/logout", ah.Logout())
		r.With(middleware.RequireAuth).Get("/me", ah.Me())
	})

	r.Route("/api/tasks", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", th.List())
		r.With(middleware.RequireRoles(superuser, admin)).Post("/", th.Create())
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", th.Get())
			r.With(middleware.RequireRoles(superuser, admin)).Patch("/", th.Update())
			r.With(middleware.RequireRoles(superuser, admin)).Post("/reassign", th.Reassign())
			r.Post("/start", th.Transition(tasks.Start))
			r.Post("/complete", th.Transition(tasks.Complete))
			r.Post("/resolve", th.Transition(tasks.Resolve))
			r.Post("/close", th.Transition(tasks.CloseTask))
			r.Post("/hold", th.Transition(tasks.Hold))
			r.Post("/resume", th.Transition(tasks.Resume))
		})
	})

	r.Route("/api/teams", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", tmh.List())
		r.Get("/{id}", tmh.Get())
		r.With(middleware.RequireRoles(superuser)).Post("/", tmh.Create())
	})

	r.Route("/api/users", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.With(middleware.RequireRoles(superuser, admin)).Get("/", uh.List())
		r.With(middleware.RequireSelfOrRoles(superuser, admin)).Get("/{id}", uh.Get())
		r.With(middleware.RequireRoles(superuser, admin)).Post("/", uh.Create())
	})

	r.Route("/api/notifications", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", nh.List())
		r.Post("/{id}/read", nh.MarkRead())
		r.Post("/read-all", nh.MarkAllRead())
	})

	r.Route("/api/reports", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/summary", rh.Summary())
		r.With(middleware.RequireRoles(superuser)).Get("/system", rh.System())
		r.Get("/team-performance", rh.TeamPerformance())
		r.Get("/member-performance", rh.MemberPerformance())
		r.Get("/trend", rh.Trend())
		r.Get("/monthly", rh.Monthly())
		r.Get("/distribution", rh.Distribution())
	})

	return r
}
