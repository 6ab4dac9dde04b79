package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "checklist.com/daily-checklist/internal/configs"
	httpapi "checklist.com/daily-checklist/internal/http"
	"checklist.com/daily-checklist/internal/persistence"
	"checklist.com/daily-checklist/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Restores the saved checklist state and serves it over HTTP while the scheduler keeps tasks up to date",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		store, closeStore := config.NewBlobStore(cfg)

		adapter := persistence.NewAdapter(store, cfg.StateKey)
		saveQueue := persistence.NewSaveQueue(adapter)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		stateService := services.NewStateService(adapter, saveQueue, cfg.Now)
		stateService.Restore(ctx)

		scheduler := services.NewSchedulerService(stateService, cfg.Now, cfg.TickInterval(), cfg.ResetHour)
		scheduler.Start()

		e := echo.New()
		e.HideBanner = true
		httpapi.Register(e, httpapi.NewHandler(stateService), cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		scheduler.Shutdown()
		if saveQueue.Shutdown(shutdownCtx) {
			closeStore()
		} else {
			log.Println("storage left open, save worker still writing")
		}

		log.Println("HTTP server and scheduler shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
