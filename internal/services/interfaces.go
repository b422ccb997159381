package services

import (
	"context"

	"github.com/BartTuroShart/teller-connect-page/internal/models"
)

// SyncService определяет интерфейс синхронизации данных из Teller API
type SyncService interface {
	// Sync выполняет одну синхронизацию: счета, затем транзакции каждого
	// счета, фильтр по давности, сохранение записи. Возвращает готовую
	// запись или первую ошибку без частичных результатов.
	Sync(ctx context.Context, accessToken string) (*models.SyncRecord, error)
}
