// Package config charge la configuration du serveur depuis l'environnement
// (fichier .env optionnel via godotenv).
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	DataDir string

	// Base de données. Vide = persistance fichier.
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Fenêtre de délai de l'analyseur en millisecondes
	AnalyzeDelayMinMs int
	AnalyzeDelayMaxMs int
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:    getEnv("PORT", "8080"),
		DataDir: getEnv("DATA_DIR", "./data"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		AnalyzeDelayMinMs: getEnvInt("ANALYZE_DELAY_MIN_MS", 1500),
		AnalyzeDelayMaxMs: getEnvInt("ANALYZE_DELAY_MAX_MS", 3500),
	}
	return cfg, nil
}

// UsesPostgres indique si une base est configurée
func (c *Config) UsesPostgres() bool {
	return c.DBHost != "" && c.DBUser != "" && c.DBName != ""
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
