package file

import (
	"path/filepath"
	"sync"

	"github.com/BartTuroShart/teller-connect-page/internal/config"
	"github.com/BartTuroShart/teller-connect-page/internal/models"
	"github.com/BartTuroShart/teller-connect-page/internal/storage"
)

// Store хранит записи синхронизаций в одном JSON файле: массив SyncRecord,
// который полностью перезаписывается при каждом добавлении. Дополнительно
// держит список записей текущего запуска процесса, он очищается при рестарте
// и никогда не является источником истины.
//
// Мьютекс сериализует цикл чтение-изменение-запись внутри одного процесса.
// Несколько процессов, пишущих в один файл, не сериализуются. Это
// осознанное ограничение для однопроцессного деплоя.
type Store struct {
	path string

	mu  sync.Mutex
	run []models.SyncRecord // Записи текущего запуска
}

// Проверяем, что Store реализует интерфейс SyncRepository
var _ storage.SyncRepository = (*Store)(nil)

// NewStore создает файловое хранилище по настройкам из конфигурации
func NewStore(cfg *config.Config) *Store {
	return NewStoreAtPath(filepath.Join(cfg.Store.DataDir, cfg.Store.DataFile))
}

// NewStoreAtPath создает файловое хранилище с явным путем к файлу
func NewStoreAtPath(path string) *Store {
	return &Store{
		path: path,
		run:  make([]models.SyncRecord, 0),
	}
}

// Path возвращает путь к файлу хранилища
func (s *Store) Path() string {
	return s.path
}
