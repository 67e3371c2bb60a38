package main

import (
	"context"
	"flag"
	"log"

	"epi-tracker/internal/infrastructure"
	"epi-tracker/internal/services"
	"epi-tracker/pkg/config"
	"epi-tracker/pkg/eventbus"
	applogger "epi-tracker/pkg/logger"
	"epi-tracker/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	log.Println("======================================================")

	runDemo := flag.Bool("demo", false, "Загрузить демонстрационных сотрудников, EPI и выдачи")
	flag.Parse()

	if !*runDemo {
		log.Println("❌ Не выбран ни один сидер для запуска.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Пример использования:")
		log.Println("  STORAGE_DRIVER=postgres go run ./seeders/cmd/seed -demo")
		log.Println("======================================================")
		return
	}

	cfg := config.New()
	if cfg.Storage.Driver != config.StoragePostgres {
		log.Fatalf("❌ Сидер имеет смысл только для STORAGE_DRIVER=%s (сейчас %q)", config.StoragePostgres, cfg.Storage.Driver)
	}
	logger := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	storage, err := infrastructure.OpenStorage(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("❌ Ошибка подключения к БД: %v", err)
	}
	defer storage.Close()

	bus := eventbus.New(logger)
	registry := services.NewRegistry(storage.Repos, bus, services.SystemClock, logger)

	if err := seeders.SeedDemoData(ctx, registry, logger); err != nil {
		log.Fatalf("❌ Ошибка наполнения демонстрационных данных: %v", err)
	}
	bus.Wait()
	log.Println("✅ Наполнение завершено!")
}
