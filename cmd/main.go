package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/adamanr/workforce_service/internal/api"
	"github.com/adamanr/workforce_service/internal/config"
	"github.com/adamanr/workforce_service/internal/controllers"
	"github.com/adamanr/workforce_service/internal/database"
	logging "github.com/adamanr/workforce_service/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the TOML config")
	flag.Parse()

	bootLogger := logging.SetupLogger(os.Stdout, "server.log", slog.LevelInfo)

	cfg, err := config.GetConfig(*configPath, bootLogger)
	if err != nil {
		log.Fatal("Failed to load config:", err)
		return
	}

	logger := logging.SetupLogger(os.Stdout, cfg.Log.File, cfg.LogLevel())
	slog.SetDefault(logger)

	ctx := context.Background()

	if cfg.Migrations.Enabled {
		if err := database.Migrate(cfg, logger); err != nil {
			log.Fatal("Failed to apply migrations:", err)
			return
		}
	}

	rdb, redisErr := database.NewRedisConn(ctx, cfg, logger)
	if redisErr != nil {
		log.Fatal("Failed to connect to Redis:", redisErr)
		return
	}
	defer rdb.Close()

	pool, dbErr := database.NewPool(ctx, cfg, logger)
	if dbErr != nil {
		logger.Error("Failed to connect to database", slog.Any("error", dbErr))
		return
	}
	defer pool.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	httpRequestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)
	registry.MustRegister(httpRequestsTotal)

	server := api.NewServer(&controllers.Dependens{
		DB:      pool,
		Redis:   rdb,
		Logger:  logger,
		Config:  cfg,
		Metrics: controllers.NewMetrics(registry),
	})

	s := &http.Server{
		Handler:           api.NewRouter(server, cfg, registry, httpRequestsTotal),
		Addr:              cfg.Server.Host,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	logger.Info("Server is starting", slog.String("address", cfg.Server.Host))
	log.Fatal(s.ListenAndServe())
}
