package generator

import (
	"fmt"
	"time"

	"github.com/BartTuroShart/teller-connect-page/internal/models"

	"github.com/brianvoe/gofakeit/v6"
)

// AccountGenerator генерирует счета и транзакции в формате Teller API.
// Используется для sandbox endpoints и как источник фикстур в тестах.
type AccountGenerator struct {
	faker *gofakeit.Faker
}

func NewAccountGenerator() *AccountGenerator {
	return &AccountGenerator{
		faker: gofakeit.New(0),
	}
}

// NewSeededAccountGenerator создает генератор с фиксированным seed
// для воспроизводимых фикстур
func NewSeededAccountGenerator(seed uint64) *AccountGenerator {
	return &AccountGenerator{
		faker: gofakeit.New(seed),
	}
}

// Accounts генерирует n счетов со ссылками на транзакции
func (g *AccountGenerator) Accounts(n int) []models.Account {
	accounts := make([]models.Account, 0, n)
	for i := 0; i < n; i++ {
		id := "acc_" + g.faker.LetterN(12)
		accounts = append(accounts, models.Account{
			"id":       id,
			"name":     g.faker.ProductName(),
			"type":     "depository",
			"subtype":  "checking",
			"currency": "USD",
			"institution": map[string]interface{}{
				"id":   g.faker.LetterN(8),
				"name": g.faker.Company(),
			},
			"links": map[string]interface{}{
				"self":         "/accounts/" + id,
				"transactions": fmt.Sprintf("/accounts/%s/transactions", id),
			},
		})
	}
	return accounts
}

// Transactions генерирует n транзакций счета. Даты раскиданы по последним
// пяти месяцам, поэтому часть транзакций заведомо выпадает из окна фильтра.
func (g *AccountGenerator) Transactions(accountID string, n int) []models.Transaction {
	now := time.Now()
	transactions := make([]models.Transaction, 0, n)
	for i := 0; i < n; i++ {
		date := g.faker.DateRange(now.AddDate(0, -5, 0), now)
		transactions = append(transactions, models.Transaction{
			"id":          "txn_" + g.faker.LetterN(12),
			"account_id":  accountID,
			"date":        date.Format("2006-01-02"),
			"description": g.faker.Company(),
			"amount":      fmt.Sprintf("%.2f", -g.faker.Price(1, 500)),
			"type":        "card_payment",
			"status":      "posted",
		})
	}
	return transactions
}
