package config

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger builds the application logger. Development mode gives console
// output; anything else gets production JSON.
func NewLogger() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
