package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskpilot/internal/config"
	"taskpilot/internal/notify"
	"taskpilot/internal/repository"
	"taskpilot/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	notifier, err := buildNotifier(cfg)
	if err != nil {
		log.Fatalf("notifier: %v", err)
	}

	taskRepo := repository.NewTaskRepository(db)
	clock := service.SystemClock{}
	taskSvc := service.NewTaskService(taskRepo, clock)
	reminderSvc := service.NewReminderService(taskSvc, notifier, clock)

	runTick := func() {
		tickCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := reminderSvc.RunTick(tickCtx); err != nil {
			log.Printf("tick: %v", err)
		}
	}

	scheduler := service.NewSchedulerService(time.Local)
	if _, err := scheduler.ScheduleInterval(cfg.TickInterval, runTick); err != nil {
		log.Fatalf("schedule ticks: %v", err)
	}
	if cfg.SummaryTime != "" {
		if _, err := scheduler.ScheduleDaily(cfg.SummaryTime, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := reminderSvc.SendDailySummary(jobCtx); err != nil {
				log.Printf("summary: %v", err)
			}
		}); err != nil {
			log.Fatalf("schedule summary: %v", err)
		}
	}

	scheduler.Start()
	defer scheduler.Stop()

	// First pass right away; the cron entry only fires after one interval.
	runTick()

	log.Println("taskpilot started.")
	<-ctx.Done()
	log.Println("Shutdown complete.")
}

func buildNotifier(cfg config.Config) (notify.Notifier, error) {
	var channels notify.Multi

	if cfg.DesktopNotify {
		channels = append(channels, notify.DesktopNotifier{})
	}
	if cfg.TelegramToken != "" {
		telegram, err := notify.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			return nil, err
		}
		channels = append(channels, telegram)
	}

	switch len(channels) {
	case 0:
		return notify.LogNotifier{}, nil
	case 1:
		return channels[0], nil
	default:
		return channels, nil
	}
}
