package config

import (
	"os"
)

// DefaultAdminPassword is the development-only fallback secret. Startup
// warns whenever it is in effect.
const DefaultAdminPassword = "admin123"

type DatabaseConfig struct {
	URI  string
	Name string
}

type ServerConfig struct {
	Port          string
	AdminPassword string
}

func LoadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		URI:  os.Getenv("DATABASE_URL"),
		Name: getEnvOrDefault("DATABASE_NAME", "ecommerce"),
	}
}

func LoadServerConfig() ServerConfig {
	return ServerConfig{
		Port:          getEnvOrDefault("PORT", "8000"),
		AdminPassword: getEnvOrDefault("ADMIN_PASSWORD", DefaultAdminPassword),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
