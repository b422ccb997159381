package rest

import (
	"net/http"
	"strconv"

	"github.com/BartTuroShart/teller-connect-page/internal/generator"
	"github.com/BartTuroShart/teller-connect-page/internal/logger"
	"github.com/BartTuroShart/teller-connect-page/internal/models"
	"github.com/BartTuroShart/teller-connect-page/internal/report"
	"github.com/BartTuroShart/teller-connect-page/internal/services"
	"github.com/BartTuroShart/teller-connect-page/internal/storage"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	syncService services.SyncService
	repo        storage.SyncRepository
	generator   *generator.AccountGenerator
}

// Создает новые обработчики REST API
func NewHandlers(syncService services.SyncService, repo storage.SyncRepository) *Handlers {
	return &Handlers{
		syncService: syncService,
		repo:        repo,
		generator:   generator.NewAccountGenerator(),
	}
}

// HandleTellerSync обрабатывает POST запрос на синхронизацию
// @Summary Синхронизировать счета и транзакции
// @Description Принимает токен доступа Teller Connect, запрашивает у Teller API счета и транзакции каждого счета, фильтрует транзакции по окну в 3 месяца и сохраняет результат. Любая ошибка (отсутствующий токен, ошибка upstream, невалидный ответ) возвращается единообразно как 500 с текстом ошибки.
// @Tags sync
// @Accept json
// @Produce json
// @Param request body models.SyncRequest true "Токен доступа (access_token или accessToken)"
// @Success 200 {object} models.SyncRecord "Запись синхронизации"
// @Failure 500 {object} models.ErrorResponse "Ошибка синхронизации"
// @Router /api/teller/sync [post]
func (h *Handlers) HandleTellerSync(c *gin.Context) {
	var req models.SyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	record, err := h.syncService.Sync(c.Request.Context(), req.Token())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

// HandleAdmin обрабатывает GET запрос админской страницы
// @Summary Просмотреть сохраненные записи синхронизаций
// @Description Возвращает HTML таблицу всех сохраненных записей: время, токен доступа и дамп счетов. Требует HTTP Basic аутентификацию.
// @Tags admin
// @Produce html
// @Security BasicAuth
// @Success 200 {string} string "HTML отчет"
// @Failure 401 {string} string "Нет учетных данных"
// @Failure 403 {string} string "Неверные учетные данные"
// @Router /admin [get]
func (h *Handlers) HandleAdmin(c *gin.Context) {
	records := h.repo.All()

	html, err := report.Render(records)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to render report")
		return
	}

	logger.LogEvent(logger.EventAdminViewed, "sync-service", "api", map[string]interface{}{
		"records": len(records),
	})

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// HandleSandboxAccounts возвращает сгенерированные счета в формате Teller API
// @Summary Получить тестовые счета
// @Description Возвращает сгенерированные счета в формате Teller API для локальной разработки без реального upstream
// @Tags sandbox
// @Produce json
// @Param count query int false "Количество счетов (максимум 20)" default(3)
// @Success 200 {array} models.Account "Список счетов"
// @Router /api/v1/sandbox/accounts [get]
func (h *Handlers) HandleSandboxAccounts(c *gin.Context) {
	count := 3
	if countStr := c.Query("count"); countStr != "" {
		if parsed, err := strconv.Atoi(countStr); err == nil && parsed > 0 && parsed <= 20 {
			count = parsed
		}
	}

	c.JSON(http.StatusOK, h.generator.Accounts(count))
}

// HandleSandboxTransactions возвращает сгенерированные транзакции счета
// @Summary Получить тестовые транзакции счета
// @Description Возвращает сгенерированные транзакции счета в формате Teller API, часть из них датирована за пределами окна фильтрации
// @Tags sandbox
// @Produce json
// @Param account_id path string true "Идентификатор счета"
// @Param count query int false "Количество транзакций (максимум 100)" default(10)
// @Success 200 {array} models.Transaction "Список транзакций"
// @Router /api/v1/sandbox/accounts/{account_id}/transactions [get]
func (h *Handlers) HandleSandboxTransactions(c *gin.Context) {
	count := 10
	if countStr := c.Query("count"); countStr != "" {
		if parsed, err := strconv.Atoi(countStr); err == nil && parsed > 0 && parsed <= 100 {
			count = parsed
		}
	}

	c.JSON(http.StatusOK, h.generator.Transactions(c.Param("account_id"), count))
}
