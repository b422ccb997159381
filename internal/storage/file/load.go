package file

import (
	"encoding/json"
	"log"
	"os"

	"github.com/BartTuroShart/teller-connect-page/internal/models"
)

// Load читает все записи из файла хранилища. Отсутствующий или поврежденный
// файл читается как пустой список. Потеря данных здесь предпочтительнее
// отказа сервиса.
func (s *Store) Load() []models.SyncRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store) loadLocked() []models.SyncRecord {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Failed to read store file %s: %v", s.path, err)
		}
		return make([]models.SyncRecord, 0)
	}

	var records []models.SyncRecord
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("Store file %s is corrupt, treating as empty: %v", s.path, err)
		return make([]models.SyncRecord, 0)
	}
	if records == nil {
		records = make([]models.SyncRecord, 0)
	}
	return records
}

// All возвращает записи для админской страницы: содержимое файла плюс записи
// текущего запуска, которых в файле нет. Так админ видит результаты текущего
// запуска, даже если последняя запись на диск не удалась.
func (s *Store) All() []models.SyncRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.loadLocked()
	for _, r := range s.run {
		if !containsRecord(records, r) {
			records = append(records, r)
		}
	}
	return records
}

func containsRecord(records []models.SyncRecord, record models.SyncRecord) bool {
	for _, r := range records {
		if r.AccessToken == record.AccessToken && r.Timestamp == record.Timestamp {
			return true
		}
	}
	return false
}
