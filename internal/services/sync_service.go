package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/BartTuroShart/teller-connect-page/internal/logger"
	"github.com/BartTuroShart/teller-connect-page/internal/models"
	"github.com/BartTuroShart/teller-connect-page/internal/recency"
	"github.com/BartTuroShart/teller-connect-page/internal/storage"
	"github.com/BartTuroShart/teller-connect-page/internal/teller"
)

const serviceName = "sync-service"

// ValidationError означает невалидный запрос клиента (пустой токен доступа)
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// SyncServiceImpl реализует интерфейс SyncService
type SyncServiceImpl struct {
	client teller.Client
	repo   storage.SyncRepository
	months int
	now    func() time.Time
}

// NewSyncService создает новый сервис синхронизации с окном фильтрации
// по умолчанию
func NewSyncService(client teller.Client, repo storage.SyncRepository) *SyncServiceImpl {
	return &SyncServiceImpl{
		client: client,
		repo:   repo,
		months: recency.DefaultMonths,
		now:    time.Now,
	}
}

// Sync выполняет одну синхронизацию для переданного токена доступа.
//
// Счета обходятся в порядке, который вернул Teller API. Счет без ссылки на
// транзакции пропускается, это не ошибка. Любая ошибка upstream прерывает
// всю синхронизацию без частичных результатов и без записи в хранилище.
// Неудачная запись готового результата на диск логируется, но не превращает
// успешную синхронизацию в ошибку: результат уже собран и возвращается клиенту.
func (s *SyncServiceImpl) Sync(ctx context.Context, accessToken string) (*models.SyncRecord, error) {
	if accessToken == "" {
		return nil, &ValidationError{Msg: "access_token is required"}
	}

	logger.LogEvent(logger.EventSyncReceived, serviceName, "api", map[string]interface{}{
		"access_token": accessToken,
	})

	accounts, err := s.client.GetAccounts(ctx, accessToken)
	if err != nil {
		logger.LogEvent(logger.EventSyncFailed, serviceName, "teller", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("fetch accounts: %w", err)
	}

	logger.LogEvent(logger.EventAccountsFetched, serviceName, "teller", map[string]interface{}{
		"count": len(accounts),
	})

	results := make([]models.AccountResult, 0, len(accounts))
	for _, account := range accounts {
		link, ok := account.TransactionsLink()
		if !ok {
			continue
		}

		transactions, err := s.client.GetTransactions(ctx, link, accessToken)
		if err != nil {
			logger.LogEvent(logger.EventSyncFailed, serviceName, "teller", map[string]interface{}{
				"account_id": account.ID(),
				"error":      err.Error(),
			})
			return nil, fmt.Errorf("fetch transactions for account %s: %w", account.ID(), err)
		}

		filtered := recency.FilterAt(s.now(), transactions, s.months)

		logger.LogEvent(logger.EventTransactionsFetched, serviceName, "teller", map[string]interface{}{
			"account_id": account.ID(),
			"fetched":    len(transactions),
			"retained":   len(filtered),
		})

		results = append(results, models.AccountResult{
			AccountID:    account.ID(),
			Institution:  account.InstitutionName(),
			Transactions: filtered,
		})
	}

	record := &models.SyncRecord{
		AccessToken: accessToken,
		Timestamp:   s.now().UTC().Format(time.RFC3339),
		Accounts:    results,
	}

	// Неудачная запись на диск не отменяет синхронизацию: запись уже есть
	// в памяти и возвращается клиенту
	if err := s.repo.Append(*record); err != nil {
		log.Printf("Failed to persist sync record: %v", err)
		logger.LogEvent(logger.EventPersistFailed, serviceName, "store", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		logger.LogEvent(logger.EventRecordPersisted, serviceName, "store", map[string]interface{}{
			"accounts": len(results),
		})
	}

	return record, nil
}
