package mocks

import (
	"github.com/BartTuroShart/teller-connect-page/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockSyncRepository является моком для storage.SyncRepository интерфейса
type MockSyncRepository struct {
	mock.Mock
}

// Load мок для Load
func (m *MockSyncRepository) Load() []models.SyncRecord {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.SyncRecord)
}

// Append мок для Append
func (m *MockSyncRepository) Append(record models.SyncRecord) error {
	args := m.Called(record)
	return args.Error(0)
}

// All мок для All
func (m *MockSyncRepository) All() []models.SyncRecord {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.SyncRecord)
}
