package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Admin  AdminConfig
	Teller TellerConfig
	CORS   CORSConfig
}

type ServerConfig struct {
	Port int
}

type StoreConfig struct {
	DataDir  string // Директория с файлом хранилища
	DataFile string // Имя файла с записями синхронизаций
}

type AdminConfig struct {
	User string
	Pass string
}

type TellerConfig struct {
	APIHost string // Базовый URL Teller API
}

type CORSConfig struct {
	Origin string
}

func Load() *Config {
	// Загружаем .env файл, если он существует
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnvAsInt("PORT", 3000),
		},
		Store: StoreConfig{
			DataDir:  getEnv("DATA_DIR", "./data"),
			DataFile: getEnv("DATA_FILE", "db.json"),
		},
		Admin: AdminConfig{
			// Дефолтные учетные данные только для разработки,
			// в продакшене их обязательно нужно переопределить
			User: getEnv("ADMIN_USER", "admin"),
			Pass: getEnv("ADMIN_PASS", "password"),
		},
		Teller: TellerConfig{
			APIHost: getEnv("TELLER_API_HOST", "https://api.teller.io"),
		},
		CORS: CORSConfig{
			Origin: getEnv("CORS_ORIGIN", "*"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
