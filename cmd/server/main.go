package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Skufu/GoSymptom/internal/diagnosis"
	"github.com/Skufu/GoSymptom/internal/knowledge"
	"github.com/Skufu/GoSymptom/internal/logger"
	"github.com/Skufu/GoSymptom/internal/store"
)

var staticFiles = []string{"index.html", "results.html", "styles.css", "script.js", "results-script.js"}

func main() {
	gin.SetMode(getEnv("GIN_MODE", "release"))

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogFilePath, cfg.IsProduction())
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	kb, err := knowledge.Load(cfg.KnowledgeBasePath)
	if err != nil {
		log.Fatal("knowledge base load failed", zap.Error(err))
	}
	log.Info("knowledge base loaded",
		zap.Int("conditions", kb.Len()),
		zap.Int("symptoms", len(kb.Symptoms())),
	)

	ctx := context.Background()
	var recorder store.Recorder = store.NopRecorder{}
	if cfg.EnableDB {
		pg, err := store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal("database connection failed", zap.Error(err))
		}
		recorder = pg
	}
	defer recorder.Close()

	h := &handlers{
		engine:    diagnosis.NewEngine(kb.Conditions()),
		kb:        kb,
		recorder:  recorder,
		dbEnabled: cfg.EnableDB,
		log:       log,
	}

	staticRoot := cfg.StaticRoot
	if staticRoot == "" {
		staticRoot = detectStaticRoot()
	}
	router := setupRouter(h, cfg, staticRoot)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	log.Info("server listening", zap.String("addr", server.Addr), zap.String("static_root", staticRoot))
	waitForShutdown(server, log)
}

func setupRouter(h *handlers, cfg *Config, staticRoot string) *gin.Engine {
	router := gin.New()
	router.Use(
		recovery(h.log),
		requestID(),
		requestLogger(h.log),
		limitBodySize(1<<20), // 1MB max body
		cors.New(cors.Config{
			AllowOrigins:  cfg.CORSOrigins,
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", requestIDHeader},
			ExposeHeaders: []string{requestIDHeader},
			MaxAge:        12 * time.Hour,
		}),
	)

	router.Static("/static", staticRoot)
	for _, name := range staticFiles {
		path := filepath.Join(staticRoot, name)
		if !fileExists(path) {
			continue
		}
		router.StaticFile("/"+name, path)
		if name == "index.html" {
			router.StaticFile("/", path)
		}
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/readyz", h.ready)

	limiter := newRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)
	api := router.Group("/api", limiter.middleware())
	api.GET("/health", h.health)
	api.GET("/symptoms", h.listSymptoms)
	api.GET("/diseases", h.listDiseases)
	api.GET("/disease/:id", h.getDisease)
	api.POST("/diagnose", h.diagnose)
	api.GET("/stats", h.stats)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Endpoint not found"})
	})

	return router
}

func waitForShutdown(server *http.Server, log *zap.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}

func detectStaticRoot() string {
	startDir, err := os.Getwd()
	if err != nil {
		return "."
	}

	candidates := []string{
		startDir,
		filepath.Dir(startDir),
		filepath.Dir(filepath.Dir(startDir)),
	}

	for _, dir := range candidates {
		if fileExists(filepath.Join(dir, "index.html")) {
			return dir
		}
	}

	return startDir
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
