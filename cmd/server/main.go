package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"taskdeck/internal/activity"
	"taskdeck/internal/category"
	"taskdeck/internal/jwttoken"
	"taskdeck/internal/platform/config"
	"taskdeck/internal/platform/httpserver"
	"taskdeck/internal/platform/logger"
	"taskdeck/internal/platform/metrics"
	"taskdeck/internal/platform/postgres"
	platformredis "taskdeck/internal/platform/redis"
	"taskdeck/internal/project"
	"taskdeck/internal/task"
	httptransport "taskdeck/internal/transport/http"
	"taskdeck/internal/user"
)

const tokenIssuer = "taskdeck"

func main() {
	log := logger.New()
	cfg := config.FromEnv()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		userStore     user.Store
		projectStore  project.Store
		categoryStore category.Store
		taskStore     task.Store
		activityStore activity.Store
	)
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("failed to connect to postgres", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		userStore = user.NewPostgresStore(db)
		projectStore = project.NewPostgresStore(db)
		categoryStore = category.NewPostgresStore(db)
		taskStore = task.NewPostgresStore(db)
		activityStore = activity.NewPostgresStore(db)
		log.Info("using postgres stores")
	} else {
		userStore = user.NewMemoryStore()
		projectStore = project.NewMemoryStore()
		categoryStore = category.NewMemoryStore()
		taskStore = task.NewMemoryStore()
		activityStore = activity.NewMemoryStore()
		log.Info("DATABASE_URL not set, using in-memory stores")
	}

	redisClient, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}
	projectCache := project.NewListCache(redisClient, cfg.ProjectCacheTTL, log)

	publisher := activity.NewPublisher(256, log)
	var sinks []activity.Sink
	if len(cfg.KafkaBrokers) > 0 {
		kafkaSink, err := activity.NewKafkaSink(cfg.KafkaBrokers)
		if err != nil {
			log.Error("failed to create kafka sink", "error", err)
			os.Exit(1)
		}
		defer kafkaSink.Close()
		sinks = append(sinks, kafkaSink)
		log.Info("activity kafka sink enabled", "brokers", cfg.KafkaBrokers)
	}
	worker := activity.NewWorker(activityStore, publisher.Inbox(), log, sinks...)

	m := metrics.New()
	tokens := jwttoken.NewService(cfg.JWTSigningKey, tokenIssuer, cfg.AccessTokenTTL)

	userSvc := user.NewService(userStore, log, m, publisher)
	projectSvc := project.NewService(projectStore, projectCache, log, m, publisher)
	categorySvc := category.NewService(categoryStore, projectStore, log, publisher)
	taskSvc := task.NewService(taskStore, categoryStore, log, m, publisher)

	handler := httptransport.NewHandler(userSvc, tokens, projectSvc, categorySvc, taskSvc, log)
	router := httptransport.NewRouter(handler, tokens, log, m)
	server := httpserver.New(cfg.Addr, router)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server listening", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		err := worker.Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
