// Файл: main.go

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"epi-tracker/internal/controllers"
	"epi-tracker/internal/infrastructure"
	"epi-tracker/internal/listeners"
	"epi-tracker/internal/routes"
	"epi-tracker/internal/services"
	"epi-tracker/pkg/api"
	"epi-tracker/pkg/config"
	apperrors "epi-tracker/pkg/errors"
	"epi-tracker/pkg/eventbus"
	applogger "epi-tracker/pkg/logger"
	appmiddleware "epi-tracker/pkg/middleware"
	"epi-tracker/pkg/validation"
	"epi-tracker/seeders"
)

func main() {
	// 1. Конфиг и логгер
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Echo и middleware
	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! ОБНАРУЖЕНА ПАНИКА (PANIC) !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Внутренняя ошибка сервера", err, nil)
				_ = api.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	e.Use(appmiddleware.RequestLogger(logger))
	if cfg.MetricsEnabled {
		e.Use(appmiddleware.Metrics())
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	// 3. Хранилища
	storage, err := infrastructure.OpenStorage(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("не удалось открыть хранилище", zap.Error(err))
	}
	defer storage.Close()

	exportQueue, closeQueue, err := infrastructure.OpenExportQueue(ctx, cfg.Redis, logger)
	if err != nil {
		logger.Fatal("не удалось открыть очередь экспорта", zap.Error(err))
	}
	defer closeQueue()

	// 4. Шина событий и слушатели
	bus := eventbus.New(logger)
	listeners.NewExportListener(exportQueue, logger).Register(bus)
	if cfg.MetricsEnabled {
		listeners.NewMetricsListener(logger).Register(bus)
	}

	// 5. Сервисы, демо-данные, маршруты
	registry := services.NewRegistry(storage.Repos, bus, services.SystemClock, logger)
	if cfg.SeedDemoData {
		if err := seeders.SeedDemoData(ctx, registry, logger); err != nil {
			logger.Fatal("ошибка загрузки демонстрационных данных", zap.Error(err))
		}
	}

	e.GET("/health", controllers.NewHealthController(storage, logger).Check)
	routes.InitRouter(e, registry, logger)

	// 6. Запуск и graceful shutdown
	go func() {
		logger.Info("🚀 Сервер запущен", zap.String("port", cfg.Server.Port), zap.String("storage", cfg.Storage.Driver))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Ошибка запуска сервера", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Остановка сервера...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка при остановке сервера", zap.Error(err))
	}
	bus.Wait()
	logger.Info("Сервер остановлен")
}
