package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BartTuroShart/teller-connect-page/internal/models"
	"github.com/BartTuroShart/teller-connect-page/internal/storage"
	storagemocks "github.com/BartTuroShart/teller-connect-page/internal/storage/mocks"
	"github.com/BartTuroShart/teller-connect-page/internal/teller"
	tellermocks "github.com/BartTuroShart/teller-connect-page/internal/teller/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 15, 10, 30, 0, 0, time.UTC)

func newTestService(client *tellermocks.MockClient, repo *storagemocks.MockSyncRepository) *SyncServiceImpl {
	service := NewSyncService(client, repo)
	service.now = func() time.Time { return testNow }
	return service
}

func accountWithLink(id, institution string) models.Account {
	return models.Account{
		"id": id,
		"institution": map[string]interface{}{
			"name": institution,
		},
		"links": map[string]interface{}{
			"transactions": "/accounts/" + id + "/transactions",
		},
	}
}

func TestNewSyncService(t *testing.T) {
	mockClient := new(tellermocks.MockClient)
	mockRepo := new(storagemocks.MockSyncRepository)

	service := NewSyncService(mockClient, mockRepo)

	require.NotNil(t, service)
	assert.Equal(t, 3, service.months)
}

func TestSyncService_Sync_EmptyToken(t *testing.T) {
	mockClient := new(tellermocks.MockClient)
	mockRepo := new(storagemocks.MockSyncRepository)
	service := newTestService(mockClient, mockRepo)

	record, err := service.Sync(context.Background(), "")

	assert.Nil(t, record)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "access_token is required", validationErr.Error())

	mockClient.AssertNotCalled(t, "GetAccounts")
	mockRepo.AssertNotCalled(t, "Append")
}

func TestSyncService_Sync_Success(t *testing.T) {
	mockClient := new(tellermocks.MockClient)
	mockRepo := new(storagemocks.MockSyncRepository)
	service := newTestService(mockClient, mockRepo)

	accounts := []models.Account{
		accountWithLink("acc_1", "First Bank"),
		{"id": "acc_2"}, // Без ссылки на транзакции, пропускается
		accountWithLink("acc_3", "Third Bank"),
	}

	mockClient.On("GetAccounts", mock.Anything, "tok123").Return(accounts, nil)
	mockClient.On("GetTransactions", mock.Anything, "/accounts/acc_1/transactions", "tok123").
		Return([]models.Transaction{
			{"id": "txn_recent", "date": "2024-05-14"},
			{"id": "txn_old", "date": "2023-11-01"}, // За пределами окна
		}, nil)
	mockClient.On("GetTransactions", mock.Anything, "/accounts/acc_3/transactions", "tok123").
		Return([]models.Transaction{}, nil)
	mockRepo.On("Append", mock.AnythingOfType("models.SyncRecord")).Return(nil)

	record, err := service.Sync(context.Background(), "tok123")

	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "tok123", record.AccessToken)
	assert.Equal(t, testNow.Format(time.RFC3339), record.Timestamp)

	// Результатов столько, сколько счетов со ссылкой на транзакции
	require.Len(t, record.Accounts, 2)
	assert.Equal(t, "acc_1", record.Accounts[0].AccountID)
	assert.Equal(t, "First Bank", record.Accounts[0].Institution)
	assert.Equal(t, "acc_3", record.Accounts[1].AccountID)

	// Фильтр по давности применен
	require.Len(t, record.Accounts[0].Transactions, 1)
	assert.Equal(t, "txn_recent", record.Accounts[0].Transactions[0]["id"])

	mockClient.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestSyncService_Sync_AccountsError(t *testing.T) {
	mockClient := new(tellermocks.MockClient)
	mockRepo := new(storagemocks.MockSyncRepository)
	service := newTestService(mockClient, mockRepo)

	upstreamErr := &teller.UpstreamError{Status: 401, Body: "bad token"}
	mockClient.On("GetAccounts", mock.Anything, "tok123").Return(nil, upstreamErr)

	record, err := service.Sync(context.Background(), "tok123")

	assert.Nil(t, record)
	var gotErr *teller.UpstreamError
	require.ErrorAs(t, err, &gotErr)
	assert.Equal(t, 401, gotErr.Status)

	// Никаких побочных эффектов при ошибке
	mockRepo.AssertNotCalled(t, "Append")
}

func TestSyncService_Sync_TransactionsErrorAbortsAll(t *testing.T) {
	mockClient := new(tellermocks.MockClient)
	mockRepo := new(storagemocks.MockSyncRepository)
	service := newTestService(mockClient, mockRepo)

	accounts := []models.Account{
		accountWithLink("acc_1", "First Bank"),
		accountWithLink("acc_2", "Second Bank"),
	}

	mockClient.On("GetAccounts", mock.Anything, "tok123").Return(accounts, nil)
	mockClient.On("GetTransactions", mock.Anything, "/accounts/acc_1/transactions", "tok123").
		Return([]models.Transaction{{"id": "txn_1", "date": "2024-05-01"}}, nil)
	mockClient.On("GetTransactions", mock.Anything, "/accounts/acc_2/transactions", "tok123").
		Return(nil, errors.New("connection reset"))

	record, err := service.Sync(context.Background(), "tok123")

	// Частичных результатов нет, ошибка со второго счета прерывает все
	assert.Nil(t, record)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "acc_2")

	mockRepo.AssertNotCalled(t, "Append")
}

func TestSyncService_Sync_PersistFailureDoesNotFailSync(t *testing.T) {
	mockClient := new(tellermocks.MockClient)
	mockRepo := new(storagemocks.MockSyncRepository)
	service := newTestService(mockClient, mockRepo)

	mockClient.On("GetAccounts", mock.Anything, "tok123").
		Return([]models.Account{accountWithLink("acc_1", "First Bank")}, nil)
	mockClient.On("GetTransactions", mock.Anything, "/accounts/acc_1/transactions", "tok123").
		Return([]models.Transaction{}, nil)
	mockRepo.On("Append", mock.AnythingOfType("models.SyncRecord")).
		Return(&storage.PersistenceError{Err: errors.New("disk full")})

	record, err := service.Sync(context.Background(), "tok123")

	// Ошибка записи на диск не доходит до клиента
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Len(t, record.Accounts, 1)

	mockRepo.AssertExpectations(t)
}

func TestSyncService_Sync_NoAccountsWithLinks(t *testing.T) {
	mockClient := new(tellermocks.MockClient)
	mockRepo := new(storagemocks.MockSyncRepository)
	service := newTestService(mockClient, mockRepo)

	mockClient.On("GetAccounts", mock.Anything, "tok123").
		Return([]models.Account{{"id": "acc_1"}, {"id": "acc_2"}}, nil)
	mockRepo.On("Append", mock.AnythingOfType("models.SyncRecord")).Return(nil)

	record, err := service.Sync(context.Background(), "tok123")

	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Empty(t, record.Accounts)

	mockClient.AssertNotCalled(t, "GetTransactions")
}
