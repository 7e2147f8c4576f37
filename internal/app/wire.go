package app

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/legionhq/legion-tracker/internal/auth"
	"github.com/legionhq/legion-tracker/internal/handler"
	"github.com/legionhq/legion-tracker/internal/repository"
	"github.com/legionhq/legion-tracker/internal/service"
)

// RouterDeps holds all dependencies needed by NewRouter.
type RouterDeps struct {
	Store      *repository.Store
	JWTMgr     *auth.JWTManager
	Logger     *slog.Logger
	Ping       handler.PingFunc
	AdminName  string
	CORSOrigin string
}

// NewRouter assembles the chi.Router with all routes and middleware.
func NewRouter(deps RouterDeps) chi.Router {
	store := deps.Store
	logger := deps.Logger

	// Services
	bossSvc := service.NewBossService(store.Bosses, store.Activities, logger)
	memberSvc := service.NewMemberService(store.Members, store.Activities, deps.AdminName, logger)
	authSvc := service.NewAuthService(store.Members, deps.JWTMgr, deps.AdminName)
	notificationSvc := service.NewNotificationService(store.Notifications)
	statsSvc := service.NewStatsService(store.Bosses, store.Members, deps.AdminName)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	bossHandler := handler.NewBossHandler(bossSvc)
	memberHandler := handler.NewMemberHandler(memberSvc)
	activityHandler := handler.NewActivityHandler(store.Activities)
	notificationHandler := handler.NewNotificationHandler(notificationSvc)
	dashboardHandler := handler.NewDashboardHandler(statsSvc)

	requireLeader := auth.RequireLeader(deps.JWTMgr)

	// Router
	r := chi.NewRouter()

	// Global middleware (order matters)
	r.Use(handler.Recovery(logger))
	r.Use(handler.RequestID)
	r.Use(handler.RequestLogger(logger))
	r.Use(handler.CORS(deps.CORSOrigin))
	r.Use(handler.JSONContentType)

	// Health (no auth)
	r.Get("/health", handler.HealthHandler(deps.Ping))

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", authHandler.Login)

		r.Get("/dashboard", dashboardHandler.Get)

		r.Route("/bosses", func(r chi.Router) {
			r.Get("/", bossHandler.List)
			r.With(requireLeader).Post("/", bossHandler.Create)
			r.With(requireLeader).Post("/batch", bossHandler.CreateBatch)
			r.With(requireLeader).Put("/{id}", bossHandler.Update)
			r.With(requireLeader).Post("/{id}/kill", bossHandler.Kill)
			r.With(requireLeader).Post("/{id}/revive", bossHandler.Revive)
			r.With(requireLeader).Delete("/{id}", bossHandler.Delete)
		})

		r.Route("/members", func(r chi.Router) {
			r.Get("/", memberHandler.List)
			r.Post("/", memberHandler.Register)
			r.Put("/self/{name}", memberHandler.UpdateSelf)
			r.With(requireLeader).Put("/{id}", memberHandler.Update)
			r.With(requireLeader).Delete("/{id}", memberHandler.Delete)
		})

		r.Route("/activities", func(r chi.Router) {
			r.Get("/", activityHandler.List)
			r.Post("/", activityHandler.Create)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/active", notificationHandler.GetActive)
			r.With(requireLeader).Post("/", notificationHandler.Publish)
			r.With(requireLeader).Delete("/", notificationHandler.Clear)
		})
	})

	return r
}
