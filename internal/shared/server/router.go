package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"prep-backend/internal/analyses"
	"prep-backend/internal/analyses/prep"
	"prep-backend/internal/shared/config"
	"prep-backend/internal/shared/metrics"
	"prep-backend/internal/shared/server/middleware"
	"prep-backend/internal/shared/server/respond"
	"prep-backend/internal/shared/storage/db"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Repository selection: Postgres when configured and reachable, then
	// the on-disk history file, then memory.
	var repo analyses.Repo
	if cfg.DatabaseURL != "" {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, opts)
		if err != nil {
			log.Printf("failed to connect database, falling back to file store: %v", err)
		} else if err := db.RunMigrations(context.Background(), dbConn); err != nil {
			log.Printf("failed to run migrations, falling back to file store: %v", err)
		} else {
			repo = &analyses.PGRepo{DB: dbConn}
		}
	}
	if repo == nil {
		if cfg.DataDir != "" {
			repo = analyses.NewFileRepo(cfg.DataDir)
		} else {
			repo = analyses.NewMemoryRepo()
		}
	}

	svc := analyses.NewService(repo, prep.NewAnalyzer(nil))
	svc.CreateDelay = cfg.AnalyzeDelay
	handler := analyses.NewHandler(svc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	handler.RegisterRoutes(api)

	r.GET("/metrics", metrics.Handler())

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
