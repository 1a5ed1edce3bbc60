package main

import (
	"database/sql"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/EduardoVisconti/AssetOps/internal/config"
	"github.com/EduardoVisconti/AssetOps/internal/db"
	"github.com/EduardoVisconti/AssetOps/internal/handlers"
	"github.com/EduardoVisconti/AssetOps/internal/middleware"
	"github.com/EduardoVisconti/AssetOps/internal/repo"
)

func main() {

	cfg := config.Load()

	setupLogger(cfg.LogFormat)

	if cfg.Env == "prod" && cfg.JWTSecret == "supersecretkey" {
		log.Fatal("JWT_SECRET must be set in prod")
	}

	database, err := db.Connect(
		cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBUser, cfg.DBPass,
		cfg.DBMaxOpenConns, cfg.DBMaxIdleConns,
	)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(db.URL(cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBUser, cfg.DBPass)); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	slog.Info("connected to the equipment store", "db", cfg.DBName)

	r := newRouter(database, cfg)

	addr := ":" + cfg.Port
	if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		slog.Info("starting server with TLS", "addr", addr)
		log.Fatal(http.ListenAndServeTLS(addr, cfg.TLSCertFile, cfg.TLSKeyFile, r))
	}
	slog.Info("starting server", "addr", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}

func setupLogger(format string) {
	if format == "json" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	}
}

// newRouter builds the full API router. Split out from main so the
// integration test can run it against a mocked store.
func newRouter(database *sql.DB, cfg config.Config) http.Handler {
	equipmentRepo := repo.NewEquipmentRepo(database)
	profileRepo := repo.NewProfileRepo(database)

	equipmentHandler := &handlers.EquipmentHandler{Repo: equipmentRepo}
	profileHandler := &handlers.ProfileHandler{Repo: profileRepo}

	writeLimiter := middleware.WriteRateLimiter()

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecurityHeaders(cfg.TLSCertFile != "" && cfg.TLSKeyFile != ""))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.Prometheus)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.JWT([]byte(cfg.JWTSecret)))

		// Read surface: any authenticated identity.
		r.Get("/equipments", equipmentHandler.ListEquipment)
		r.Get("/equipments/{id}", equipmentHandler.GetEquipment)
		r.Get("/equipments/{id}/maintenance", equipmentHandler.ListMaintenance)
		r.Get("/equipments/{id}/events", equipmentHandler.ListEvents)
		r.Get("/views", handlers.ListViews)
		r.Get("/me", profileHandler.Me)
		r.Get("/users/{uid}", profileHandler.GetProfile)

		// Write surface: admins only, per the profile document.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(profileRepo))
			r.Use(middleware.MaxBytes(middleware.DefaultMaxBodyBytes))
			r.Use(writeLimiter.Middleware)

			r.Post("/equipments", equipmentHandler.CreateEquipment)
			r.Put("/equipments/{id}", equipmentHandler.UpdateEquipment)
			r.Post("/equipments/{id}/archive", equipmentHandler.ArchiveEquipment)
			r.Post("/equipments/{id}/unarchive", equipmentHandler.UnarchiveEquipment)
			r.Post("/equipments/{id}/maintenance", equipmentHandler.AddMaintenance)
		})
	})

	return r
}
