package storage

import (
	"fmt"

	"github.com/BartTuroShart/teller-connect-page/internal/models"
)

// SyncRepository определяет интерфейс хранилища записей синхронизаций
type SyncRepository interface {
	// Load читает все записи из долговременного хранилища. Отсутствующий
	// или поврежденный файл читается как пустой список, ошибки не возвращаются.
	Load() []models.SyncRecord

	// Append добавляет запись в долговременное хранилище и в список текущего
	// запуска процесса. Возвращает PersistenceError только если не удалась
	// сама запись на диск.
	Append(record models.SyncRecord) error

	// All возвращает записи для админской страницы: содержимое файла плюс
	// записи текущего запуска, которых в файле нет (например, если последняя
	// запись на диск не удалась).
	All() []models.SyncRecord
}

// PersistenceError означает, что запись в долговременное хранилище не удалась.
// Такая ошибка логируется, но не прерывает синхронизацию.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist sync record: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
