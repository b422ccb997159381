package teller

import (
	"context"
	"encoding/json"

	"github.com/BartTuroShart/teller-connect-page/internal/models"
)

// Client определяет интерфейс для работы с Teller API
type Client interface {
	// FetchJSON выполняет аутентифицированный GET запрос к Teller API.
	// endpointOrURL может быть как относительным путем, так и абсолютным URL
	// из links предыдущего ответа.
	FetchJSON(ctx context.Context, endpointOrURL string, accessToken string) (json.RawMessage, error)

	// GetAccounts возвращает список счетов пользователя
	GetAccounts(ctx context.Context, accessToken string) ([]models.Account, error)

	// GetTransactions возвращает список транзакций по ссылке из счета
	GetTransactions(ctx context.Context, link string, accessToken string) ([]models.Transaction, error)
}
