package teller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/BartTuroShart/teller-connect-page/internal/models"
)

const (
	accountsPath = "/accounts"
	userAgent    = "teller-connect-page/1.0"
)

// HTTPClient реализует интерфейс Client поверх net/http
type HTTPClient struct {
	httpClient *http.Client
	baseURL    string
}

// Проверяем, что HTTPClient реализует интерфейс Client
var _ Client = (*HTTPClient)(nil)

// NewClient создает новый клиент Teller API. Таймаут на запросы не ставится:
// upstream вызовы могут быть долгими, ограничение задает вызывающая сторона
// через context.
func NewClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		httpClient: &http.Client{},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// FetchJSON выполняет GET запрос к Teller API. Токен доступа передается как
// имя пользователя в HTTP Basic с пустым паролем, так аутентифицируется
// Teller API.
func (c *HTTPClient) FetchJSON(ctx context.Context, endpointOrURL string, accessToken string) (json.RawMessage, error) {
	url := endpointOrURL
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = c.baseURL + endpointOrURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.SetBasicAuth(accessToken, "")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	if !json.Valid(body) {
		return nil, &ResponseParseError{Err: fmt.Errorf("body is not valid JSON")}
	}

	return json.RawMessage(body), nil
}

// GetAccounts возвращает список счетов пользователя
func (c *HTTPClient) GetAccounts(ctx context.Context, accessToken string) ([]models.Account, error) {
	raw, err := c.FetchJSON(ctx, accountsPath, accessToken)
	if err != nil {
		return nil, err
	}

	var accounts []models.Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return nil, &ResponseParseError{Err: fmt.Errorf("expected array of accounts: %w", err)}
	}
	return accounts, nil
}

// GetTransactions возвращает список транзакций по ссылке из счета.
// Ссылка может быть относительным путем или абсолютным URL.
func (c *HTTPClient) GetTransactions(ctx context.Context, link string, accessToken string) ([]models.Transaction, error) {
	raw, err := c.FetchJSON(ctx, link, accessToken)
	if err != nil {
		return nil, err
	}

	var transactions []models.Transaction
	if err := json.Unmarshal(raw, &transactions); err != nil {
		return nil, &ResponseParseError{Err: fmt.Errorf("expected array of transactions: %w", err)}
	}
	return transactions, nil
}
