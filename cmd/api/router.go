package main

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/xavierca1/crm-api/docs"
	"github.com/xavierca1/crm-api/internal/config"
	"github.com/xavierca1/crm-api/internal/infra/database"
	"github.com/xavierca1/crm-api/internal/infra/http/handlers"
	"github.com/xavierca1/crm-api/internal/infra/http/middleware"
	"github.com/xavierca1/crm-api/internal/infra/http/views"
	"github.com/xavierca1/crm-api/internal/report"
	"github.com/xavierca1/crm-api/internal/usecase"
)

const version = "1.0.0"

// routerDeps reúne o que o router precisa; Events, Broker e Limiter podem ser nil.
type routerDeps struct {
	Config  *config.Config
	DB      *sql.DB
	Dialect database.Dialect
	Events  usecase.EventPublisherInterface
	Broker  handlers.BrokerConn
	Limiter *middleware.RateLimiter
}

func newRouter(deps routerDeps) (http.Handler, error) {
	cfg := deps.Config

	// 1. Repositórios
	contactRepo := database.NewContactRepository(deps.DB, deps.Dialect)
	employeeRepo := database.NewEmployeeRepository(deps.DB, deps.Dialect)
	dealRepo := database.NewDealRepository(deps.DB, deps.Dialect)

	// 2. UseCases
	contactUC := usecase.NewContactUseCase(contactRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	dealUC := usecase.NewDealUseCase(dealRepo, contactRepo, employeeRepo, deps.Events)
	dashboardUC := usecase.NewDashboardUseCase(contactRepo, employeeRepo, dealRepo, report.NewBuilder(cfg.Location))

	// 3. Handlers
	renderer, err := views.NewRenderer(cfg.Location)
	if err != nil {
		return nil, err
	}
	contactHandler := handlers.NewContactHandler(contactUC)
	employeeHandler := handlers.NewEmployeeHandler(employeeUC)
	dealHandler := handlers.NewDealHandler(dealUC)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUC, renderer)
	statusHandler := handlers.NewStatusHandler(deps.DB, deps.Broker, version)

	// 4. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(middleware.Metrics)

	r.Get("/", statusHandler.Root)
	r.Get("/health", statusHandler.Health)
	r.Get("/health/ready", statusHandler.Ready)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/docs", http.RedirectHandler("/docs/index.html", http.StatusMovedPermanently).ServeHTTP)
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
		httpSwagger.DeepLinking(true),
	))

	r.Get("/painel", dashboardHandler.Contacts)
	r.Get("/funil", dashboardHandler.Funnel)
	r.Get("/indicadores", dashboardHandler.Indicators)

	r.Route("/api/v1", func(r chi.Router) {
		if deps.Limiter != nil {
			r.Use(deps.Limiter.Middleware)
		}
		r.Use(chimiddleware.Timeout(30 * time.Second))

		r.Route("/contatos", func(r chi.Router) {
			r.Post("/", contactHandler.Create)
			r.Get("/", contactHandler.List)
			r.Get("/{id}", contactHandler.Get)
			r.Put("/{id}", contactHandler.Update)
			r.Delete("/{id}", contactHandler.Delete)
		})

		r.Route("/negocios", func(r chi.Router) {
			r.Post("/", dealHandler.Create)
			r.Get("/", dealHandler.List)
			r.Get("/{id}", dealHandler.Get)
			r.Put("/{id}", dealHandler.Update)
			r.Delete("/{id}", dealHandler.Delete)
		})

		r.Route("/funcionarios", func(r chi.Router) {
			r.Post("/", employeeHandler.Create)
			r.Get("/", employeeHandler.List)
			r.Get("/{id}", employeeHandler.Get)
			r.Put("/{id}", employeeHandler.Update)
			r.Delete("/{id}", employeeHandler.Delete)
		})
	})

	// Só em desenvolvimento: apaga e recria dados
	if cfg.IsDevelopment() {
		seedUC := usecase.NewSeedUseCase(contactRepo, employeeRepo, dealRepo, cfg.Location)
		r.Post("/dev/seed", handlers.NewSeedHandler(seedUC).Handle)
	}

	return r, nil
}
