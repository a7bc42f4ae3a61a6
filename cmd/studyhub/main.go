package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"studyhub/internal/app"
	"studyhub/internal/config"
	"studyhub/internal/logger"
	"studyhub/internal/notify"
	"studyhub/internal/service"
	"studyhub/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logg, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logg.Sync()

	st, err := store.Open(cfg.DatabasePath, logg)
	if err != nil {
		logg.Error("open store", "error", err)
		os.Exit(1)
	}

	var notifier service.Notifier
	if cfg.TelegramToken != "" {
		telegram, err := notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			logg.Error("telegram notifier", "error", err)
			os.Exit(1)
		}
		notifier = telegram
		logg.Info("outbound notifications enabled", "chat_id", cfg.TelegramChatID)
	}

	application := app.New(st, logg, notifier)
	defer func() {
		if err := application.Close(); err != nil {
			logg.Warn("close store", "error", err)
		}
	}()

	scheduler := service.NewSchedulerService(time.Local)
	if cfg.ReminderTime != "" {
		if _, err := scheduler.ScheduleDaily(cfg.ReminderTime, func() {
			application.RunReminder(time.Now())
		}); err != nil {
			logg.Error("schedule reminder", "error", err)
			os.Exit(1)
		}
		scheduler.Start()
		defer scheduler.Stop()
		logg.Info("daily reminder scheduled", "at", cfg.ReminderTime)
	}

	logg.Info("studyhub started", "db", cfg.DatabasePath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logg.Info("shutdown complete")
}
