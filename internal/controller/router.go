package controller

import (
	"time"

	"github.com/KDR9MGR/digital-payments-core/internal/infrastructure/config"
	"github.com/KDR9MGR/digital-payments-core/internal/infrastructure/observability"
	customMW "github.com/KDR9MGR/digital-payments-core/internal/middleware"
	"github.com/KDR9MGR/digital-payments-core/internal/repository/postgres"
	"github.com/KDR9MGR/digital-payments-core/internal/service"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

type RouterDeps struct {
	Pool           *pgxpool.Pool
	RedisClient    *redis.Client
	CardService    *service.CardService
	ReadinessGate  *service.ReadinessGate
	CapabilityRepo *postgres.CapabilityRepository
	Fingerprints   FingerprintDirectory
	Metrics        *observability.Metrics
	CORSConfig     config.CORSConfig
	DefaultVault   string
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(customMW.Tracing())
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.CORSConfig.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: deps.CORSConfig.AllowCredentials,
		MaxAge:           300,
	}))
	r.Use(customMW.Metrics(deps.Metrics))

	healthH := NewHealthController(deps.Pool, deps.RedisClient)
	cardH := NewCardController(deps.CardService, deps.Fingerprints, deps.DefaultVault, deps.Metrics)
	transferH := NewTransferController(deps.ReadinessGate, deps.CapabilityRepo, deps.Metrics)
	qrH := NewQRController(deps.Metrics)

	r.Get("/health", healthH.Health)
	r.Get("/health/live", healthH.Liveness)
	r.Get("/health/ready", healthH.Readiness)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// Cards
		r.Post("/cards/validate", cardH.Validate)
		r.Post("/cards/tokenize", cardH.Tokenize)

		// Transfers
		r.Get("/transfers/readiness", transferH.Readiness)
		r.Put("/capabilities/{id}", transferH.UpsertCapability)

		// QR payloads
		r.Post("/qr/encode", qrH.Encode)
		r.Post("/qr/decode", qrH.Decode)
	})

	return r
}
