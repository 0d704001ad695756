package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"lawwork/config"
	"lawwork/db"
	"lawwork/handlers"
	"lawwork/logger"
	"lawwork/repository"
	"lawwork/scheduler"
	"lawwork/services"
	"lawwork/session"
	"lawwork/views"
)

func main() {
	cfg := config.Load()

	// 初始化日志系统
	if err := logger.Init(cfg); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	logger.Info("日志系统初始化成功", "level", cfg.Log.Level, "format", cfg.Log.Format, "output", cfg.Log.Output)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 线索库可选，未配置时评估只保存在会话中
	var (
		recorder services.LeadRecorder
		counter  scheduler.SubmissionCounter
	)
	if cfg.LeadStoreEnabled() {
		if err := db.InitMySQLWithConfig(ctx, cfg); err != nil {
			logger.Error("初始化MySQL失败", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		logger.Info("MySQL连接成功",
			"max_open_conns", cfg.DB.MaxOpenConns,
			"max_idle_conns", cfg.DB.MaxIdleConns,
			"conn_max_lifetime", cfg.DB.ConnMaxLifetime)

		repo := repository.NewAssessmentRepo(db.DB)
		recorder = repo
		counter = repo
	} else {
		logger.Info("未配置线索库，跳过MySQL初始化")
	}

	store, err := session.New(ctx, cfg)
	if err != nil {
		logger.Error("初始化会话存储失败", "backend", cfg.Session.Backend, "error", err)
		os.Exit(1)
	}
	defer store.Close()
	logger.Info("会话存储初始化成功", "backend", cfg.Session.Backend, "ttl_min", cfg.Session.TTLMin)

	renderer, err := views.New()
	if err != nil {
		logger.Error("加载页面模板失败", "error", err)
		os.Exit(1)
	}

	assessments := services.NewAssessmentService(store, recorder)
	h := handlers.New(assessments, services.NewMatchService(assessments), renderer)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	handlers.RegisterRoutes(r, h, session.Manager{
		CookieName: cfg.Session.CookieName,
		TTL:        time.Duration(cfg.Session.TTLMin) * time.Minute,
		Secure:     cfg.Session.Secure,
	})

	// start cron
	var sweeper session.Sweeper
	if s, ok := store.(session.Sweeper); ok {
		sweeper = s
	}
	sched := scheduler.Start(ctx, cfg, sweeper, counter)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSec) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSec) * time.Second,
	}

	publicURL := cfg.Server.PublicURL
	if publicURL == "" {
		publicURL = "http://" + cfg.Server.Addr
	}
	logger.Info("服务器启动", "address", cfg.Server.Addr)
	logger.Info("Swagger文档可访问", "url", fmt.Sprintf("%s/swagger/index.html", publicURL))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("服务器异常退出", "error", err)
		}
		stop()
	case <-ctx.Done():
		logger.Info("收到退出信号，开始关闭服务")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("关闭HTTP服务失败", "error", err)
	}
	sched.Wait()
	logger.Info("服务已停止")
}
