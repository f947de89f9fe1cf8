package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/inhalebay/internal/config"
	"github.com/example/inhalebay/internal/database"
	"github.com/example/inhalebay/internal/handlers"
	"github.com/example/inhalebay/internal/kiosk"
	"github.com/example/inhalebay/internal/repository"
	"github.com/example/inhalebay/internal/routes"
	"github.com/example/inhalebay/internal/services"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL, cfg.DBLogSQL)

	if _, err := database.Seed(db, cfg.StoreCode, cfg.StoreName); err != nil {
		log.Fatalf("failed to seed store %d: %v", cfg.StoreCode, err)
	}

	session, err := kiosk.NewSession(kiosk.NewFlagFile(cfg.KioskStateFile))
	if err != nil {
		log.Fatalf("failed to load kiosk state: %v", err)
	}
	telegramService := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat, cfg.StoreName)
	gate := kiosk.NewGate(repository.NewDeviceCodeRepository(db), session, telegramService)

	app := fiber.New(fiber.Config{
		AppName:      "Inhale Bay Loyalty",
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.Register(app, db, cfg, gate)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := run(app, ":"+cfg.AppPort, stop, telegramService); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}

const shutdownTimeout = 10 * time.Second

// noticeWaiter is implemented by services that deliver notifications in the
// background.
type noticeWaiter interface {
	Wait()
}

// run serves app until a signal arrives on stop, then drains open requests
// and waits for pending notifications.
func run(app *fiber.App, addr string, stop <-chan os.Signal, notices noticeWaiter) error {
	errc := make(chan error, 1)
	go func() {
		errc <- app.Listen(addr)
	}()

	select {
	case err := <-errc:
		return err
	case sig := <-stop:
		log.Printf("Received %s, shutting down", sig)
	}

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	if err := <-errc; err != nil {
		log.Printf("fiber.Listen error: %v", err)
	}
	notices.Wait()
	return nil
}
