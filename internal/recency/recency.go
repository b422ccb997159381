package recency

import (
	"time"

	"github.com/BartTuroShart/teller-connect-page/internal/models"
)

// DefaultMonths задает окно фильтрации транзакций по умолчанию
const DefaultMonths = 3

// Filter возвращает транзакции, датированные не раньше чем months календарных
// месяцев назад. Исходный срез не изменяется, порядок сохраняется.
func Filter(transactions []models.Transaction, months int) []models.Transaction {
	return FilterAt(time.Now(), transactions, months)
}

// FilterAt выполняет фильтрацию с явным "сейчас" для тестов.
//
// Граница окна считается через AddDate: вычитание идет по календарным
// месяцам с нормализацией дня (3 месяца назад от конца января это конец
// октября). Сравнение ведется по календарной дате, нижняя граница
// включительна, верхней границы нет: транзакции с будущей датой проходят.
// Транзакции с отсутствующей или невалидной датой исключаются, не прерывая
// обработку остальных.
func FilterAt(now time.Time, transactions []models.Transaction, months int) []models.Transaction {
	cutoff := now.AddDate(0, -months, 0)
	cutoff = time.Date(cutoff.Year(), cutoff.Month(), cutoff.Day(), 0, 0, 0, 0, time.UTC)

	recent := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		date, ok := tx.Date()
		if !ok {
			continue
		}
		if !date.Before(cutoff) {
			recent = append(recent, tx)
		}
	}
	return recent
}
