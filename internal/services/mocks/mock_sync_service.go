package mocks

import (
	"context"

	"github.com/BartTuroShart/teller-connect-page/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockSyncService является моком для services.SyncService интерфейса
type MockSyncService struct {
	mock.Mock
}

// Sync мок для Sync
func (m *MockSyncService) Sync(ctx context.Context, accessToken string) (*models.SyncRecord, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SyncRecord), args.Error(1)
}
