package bootstrap

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/BartTuroShart/teller-connect-page/docs" // Swagger docs
	"github.com/BartTuroShart/teller-connect-page/internal/api/rest"
	"github.com/BartTuroShart/teller-connect-page/internal/config"
	"github.com/BartTuroShart/teller-connect-page/internal/services"
	"github.com/BartTuroShart/teller-connect-page/internal/storage/file"
	"github.com/BartTuroShart/teller-connect-page/internal/teller"
)

// StartSyncService запускает сервис синхронизации
func StartSyncService() {
	cfg := config.Load()

	// Инициализация файлового хранилища
	store := file.NewStore(cfg)
	log.Printf("Using store file %s (%d records)", store.Path(), len(store.Load()))

	// Клиент Teller API
	client := teller.NewClient(cfg.Teller.APIHost)
	log.Printf("Teller API host: %s", cfg.Teller.APIHost)

	// Сервис синхронизации
	syncService := services.NewSyncService(client, store)

	// Настройка REST API
	handlers := rest.NewHandlers(syncService, store)
	router := rest.SetupRouter(handlers, cfg)

	// Запуск HTTP сервера
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Teller sync service starting on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
