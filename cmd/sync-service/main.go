package main

import "github.com/BartTuroShart/teller-connect-page/internal/bootstrap"

// @title Teller Connect Sync API
// @version 1.0
// @description Бэкенд для Teller Connect: синхронизация счетов и транзакций через Teller API
// @host localhost:3000
// @BasePath /
// @securityDefinitions.basic BasicAuth
func main() { bootstrap.StartSyncService() }
