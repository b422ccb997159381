package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_Accessors(t *testing.T) {
	account := Account{
		"id": "acc_123",
		"institution": map[string]interface{}{
			"name": "Test Bank",
		},
		"links": map[string]interface{}{
			"self":         "/accounts/acc_123",
			"transactions": "/accounts/acc_123/transactions",
		},
	}

	assert.Equal(t, "acc_123", account.ID())
	assert.Equal(t, "Test Bank", account.InstitutionName())

	link, ok := account.TransactionsLink()
	require.True(t, ok)
	assert.Equal(t, "/accounts/acc_123/transactions", link)
}

func TestAccount_MissingFields(t *testing.T) {
	account := Account{"id": "acc_456"}

	assert.Equal(t, "", account.InstitutionName())

	link, ok := account.TransactionsLink()
	assert.False(t, ok)
	assert.Equal(t, "", link)
}

func TestAccount_LinksWithoutTransactions(t *testing.T) {
	account := Account{
		"id": "acc_789",
		"links": map[string]interface{}{
			"self": "/accounts/acc_789",
		},
	}

	_, ok := account.TransactionsLink()
	assert.False(t, ok)
}

func TestTransaction_Date(t *testing.T) {
	tests := []struct {
		name     string
		raw      interface{}
		expected time.Time
		ok       bool
	}{
		{"plain date", "2024-05-15", time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC), true},
		{"rfc3339", "2024-05-15T10:30:00Z", time.Date(2024, 5, 15, 10, 30, 0, 0, time.UTC), true},
		{"datetime", "2024-05-15 10:30:00", time.Date(2024, 5, 15, 10, 30, 0, 0, time.UTC), true},
		{"malformed", "not-a-date", time.Time{}, false},
		{"empty", "", time.Time{}, false},
		{"wrong type", 42, time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := Transaction{"date": tt.raw}
			parsed, ok := tx.Date()
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, parsed.Equal(tt.expected))
			}
		})
	}
}

func TestTransaction_DateMissing(t *testing.T) {
	tx := Transaction{"amount": "-10.00"}
	_, ok := tx.Date()
	assert.False(t, ok)
}

func TestSyncRequest_Token(t *testing.T) {
	assert.Equal(t, "tok1", SyncRequest{AccessToken: "tok1"}.Token())
	assert.Equal(t, "tok2", SyncRequest{AccessTokenAlias: "tok2"}.Token())
	// snake_case имеет приоритет, если присланы оба ключа
	assert.Equal(t, "tok1", SyncRequest{AccessToken: "tok1", AccessTokenAlias: "tok2"}.Token())
	assert.Equal(t, "", SyncRequest{}.Token())
}
