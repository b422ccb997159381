package mocks

import (
	"context"
	"encoding/json"

	"github.com/BartTuroShart/teller-connect-page/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockClient является моком для teller.Client интерфейса
type MockClient struct {
	mock.Mock
}

// FetchJSON мок для FetchJSON
func (m *MockClient) FetchJSON(ctx context.Context, endpointOrURL string, accessToken string) (json.RawMessage, error) {
	args := m.Called(ctx, endpointOrURL, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

// GetAccounts мок для GetAccounts
func (m *MockClient) GetAccounts(ctx context.Context, accessToken string) ([]models.Account, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Account), args.Error(1)
}

// GetTransactions мок для GetTransactions
func (m *MockClient) GetTransactions(ctx context.Context, link string, accessToken string) ([]models.Transaction, error) {
	args := m.Called(ctx, link, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}
