package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"foodcourt-system/internal/config"
	"foodcourt-system/internal/connections/database"
	"foodcourt-system/internal/connections/rabbitmq"
	"foodcourt-system/internal/handlers"
	"foodcourt-system/internal/logger"
	"foodcourt-system/internal/repository"
	"foodcourt-system/internal/seed"
	"foodcourt-system/internal/server"
	"foodcourt-system/internal/service"
)

func main() {
	mode := flag.String("mode", "api", "api | seed")
	cfgPath := flag.String("config", "", "path to YAML config (default: config.yaml)")
	port := flag.Int("port", 0, "override the configured HTTP port")
	flag.Parse()

	lg := logger.New("bootstrap")

	path := *cfgPath
	if path == "" {
		p, err := config.Find()
		if err != nil {
			lg.Error("config_not_found", err, nil)
			os.Exit(1)
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		lg.Error("config_load_failed", err, map[string]any{"path": path})
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		lg.Error("db_connect_failed", err, nil)
		os.Exit(1)
	}
	defer pool.Close()
	if err := database.InitSchema(ctx, pool); err != nil {
		lg.Error("schema_init_failed", err, nil)
		os.Exit(1)
	}

	switch *mode {
	case "seed":
		if err := seed.Run(ctx, pool, logger.New("seed")); err != nil {
			lg.Error("seed_failed", err, nil)
			os.Exit(1)
		}
	case "api":
		var pub service.EventPublisher
		if cfg.RabbitMQ != nil {
			mq, err := rabbitmq.Dial(*cfg.RabbitMQ)
			if err != nil {
				// events are best-effort; the API runs without them
				lg.Error("rabbitmq_unavailable", err, nil)
			} else {
				defer mq.Close()
				pub = mq
				lg.Info("rabbitmq_connected", map[string]any{"host": cfg.RabbitMQ.Host})
			}
		}

		repo := repository.New(pool)
		svc := service.New(repo, pub, logger.New("foodcourt-api"))
		h := handlers.New(svc, logger.New("http"))

		srv := server.New(":"+strconv.Itoa(cfg.Server.Port), handlers.Router(h))
		lg.Info("service_started", map[string]any{"port": cfg.Server.Port})
		if err := srv.Run(ctx); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "--mode must be api or seed")
		os.Exit(2)
	}
}
