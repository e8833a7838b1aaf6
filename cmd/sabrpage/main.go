package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/dmorneau/sabrpage/internal/api/mlb"
	"github.com/dmorneau/sabrpage/internal/config"
	"github.com/dmorneau/sabrpage/internal/notify"
	"github.com/dmorneau/sabrpage/internal/render"
	"github.com/dmorneau/sabrpage/internal/repository/memory"
	"github.com/dmorneau/sabrpage/internal/scheduler"
	"github.com/dmorneau/sabrpage/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	once := flag.Bool("once", false, "run a single publish and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file loaded", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	mlbClient := mlb.NewClient()
	mlbAPI := mlb.NewAPI(mlbClient)

	repo := memory.NewRepository()
	renderer, err := render.NewRenderer(cfg.Publish.OutputDir)
	if err != nil {
		return err
	}
	publishService := service.NewPublishService(mlbAPI, repo, renderer, cfg.Publish.Season, cfg.Publish.Spotlight)

	telegram, err := notify.NewTelegram(cfg.Telegram.Token, cfg.Telegram.ChatID)
	if err != nil {
		return err
	}

	if *once {
		summary, err := publishService.Publish()
		if err != nil {
			telegram.SendMessage(fmt.Sprintf("Publish failed: %v", err))
			return err
		}
		telegram.SendMessage(summary)
		fmt.Println(summary)
		return nil
	}

	sched, err := scheduler.NewScheduler(publishService, telegram.SendMessage, cfg.Publish.Schedule)
	if err != nil {
		return err
	}

	if err := sched.Start(); err != nil {
		return err
	}
	defer func() {
		err := sched.Stop()
		if err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	return nil
}
