package config

import (
	"os"
	"strconv"
)

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
}

type Config struct {
	PostgresURI           string
	RedisURI              string
	PostStore             string
	BackendURL            string
	GatewayTimeoutSeconds int
	FrontendURL           string
	R2                    R2
	SecretKey             string
	CookieName            string
}

func LoadConfig() *Config {
	return &Config{
		PostgresURI:           getEnv("POSTGRES_URI", ""),
		RedisURI:              getEnv("REDIS_URI", ""),
		PostStore:             getEnv("POST_STORE", "postgres"),
		BackendURL:            getEnv("BACKEND_URL", "http://localhost:3100"),
		GatewayTimeoutSeconds: getEnvInt("GATEWAY_TIMEOUT_SECONDS", 10),
		FrontendURL:           getEnv("FRONTEND_URL", "http://localhost:5173"),
		R2: R2{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
		},
		SecretKey:  getEnv("SECRET_KEY", ""),
		CookieName: getEnv("COOKIE_NAME", "postcal_session"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
