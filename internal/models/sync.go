package models

import (
	"time"
)

// Форматы даты, которые встречаются в поле date транзакций Teller API
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// Account представляет счет из Teller API. Схема upstream нам не принадлежит,
// поэтому все поля сохраняются как есть, а типизированные аксессоры есть
// только для полей, которые читает сервис.
type Account map[string]interface{}

// ID возвращает идентификатор счета
func (a Account) ID() string {
	id, _ := a["id"].(string)
	return id
}

// InstitutionName возвращает название банка (institution.name), если оно есть
func (a Account) InstitutionName() string {
	institution, ok := a["institution"].(map[string]interface{})
	if !ok {
		return ""
	}
	name, _ := institution["name"].(string)
	return name
}

// TransactionsLink возвращает ссылку на транзакции счета (links.transactions).
// Второе значение false, если ссылки нет. Такой счет пропускается при синхронизации.
func (a Account) TransactionsLink() (string, bool) {
	links, ok := a["links"].(map[string]interface{})
	if !ok {
		return "", false
	}
	link, ok := links["transactions"].(string)
	if !ok || link == "" {
		return "", false
	}
	return link, true
}

// Transaction представляет транзакцию из Teller API, поля сохраняются как есть
type Transaction map[string]interface{}

// Date парсит поле date транзакции. Второе значение false, если поле
// отсутствует или не является валидной датой.
func (t Transaction) Date() (time.Time, bool) {
	raw, ok := t["date"].(string)
	if !ok || raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// AccountResult представляет результат синхронизации одного счета
type AccountResult struct {
	AccountID    string        `json:"account_id"`
	Institution  string        `json:"institution,omitempty"`
	Transactions []Transaction `json:"transactions"`
}

// SyncRecord представляет одну завершенную синхронизацию. Запись создается
// один раз, после этого не изменяется.
type SyncRecord struct {
	AccessToken string          `json:"access_token"`
	Timestamp   string          `json:"timestamp"` // RFC3339
	Accounts    []AccountResult `json:"accounts"`
}

// SyncRequest представляет запрос на синхронизацию. Клиенты присылают токен
// либо как access_token, либо как accessToken.
type SyncRequest struct {
	AccessToken      string `json:"access_token"`
	AccessTokenAlias string `json:"accessToken"`
}

// Token возвращает токен доступа независимо от того, каким ключом он прислан
func (r SyncRequest) Token() string {
	if r.AccessToken != "" {
		return r.AccessToken
	}
	return r.AccessTokenAlias
}

// ErrorResponse представляет тело ответа при ошибке
type ErrorResponse struct {
	Error string `json:"error"`
}
