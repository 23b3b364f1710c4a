// Package config loads service configuration from config.yml and .env files
// via viper and godotenv, with environment variables taking precedence.
// Config structs follow the ApplyDefaults/Validate convention.
package config
