package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"effica-project/backend/collab-service/logging"
)

type Config struct {
	Port        string
	MongoURI    string
	MongoDBName string
	JWTSecret   string
	BcryptCost  int
	CORSOrigin  string
}

// Load reads configuration from the environment. A .env file is picked up
// when present, but the variables may also come from the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		logging.Logger.Infof("Event ID: ENV_FILE_SKIPPED, Description: No .env file loaded: %v", err)
	}

	cfg := &Config{
		Port:        getEnv("PORT", "3001"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName: getEnv("MONGO_DB_NAME", "effica"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		BcryptCost:  getEnvInt("BCRYPT_COST", 10),
		CORSOrigin:  getEnv("CORS_ORIGIN", "http://localhost:5173"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		logging.Logger.Warnf("Event ID: ENV_PARSE_ERROR, Description: Invalid integer for %s: %v, using default %d", key, err, fallback)
		return fallback
	}
	return n
}
