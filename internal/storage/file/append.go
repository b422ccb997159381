package file

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/BartTuroShart/teller-connect-page/internal/models"
	"github.com/BartTuroShart/teller-connect-page/internal/storage"
)

// Append добавляет запись в файл хранилища и в список текущего запуска.
// Файл полностью перезаписывается: читаем текущий массив, добавляем запись,
// пишем обратно с отступами. В списке текущего запуска запись остается
// даже при неудачной записи на диск.
func (s *Store) Append(record models.SyncRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.run = append(s.run, record)

	records := append(s.loadLocked(), record)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &storage.PersistenceError{Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return &storage.PersistenceError{Err: err}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return &storage.PersistenceError{Err: err}
	}
	return nil
}
