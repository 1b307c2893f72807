package main

import (
	"log"

	_ "supplement_tracker/docs"
	"supplement_tracker/internal/adapter/http/routes"
	"supplement_tracker/internal/infrastructure/config"
	"supplement_tracker/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Supplement Tracker API
// @version         1.0
// @description     Claim supplement workflow and commission engine backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if err := logging.Init(cfg.Log); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = zap.L().Sync() }()

	if err := routes.Run(cfg); err != nil {
		zap.L().Fatal("failed to run the application", zap.Error(err))
	}
}
