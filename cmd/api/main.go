package main

import (
	"academia_bere/config"
	_ "academia_bere/docs"
	"academia_bere/internal/adapter/http/routes"
	"academia_bere/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Academia Bere API
// @version         1.0
// @description     Course sales backend: catalog, coupons, Mercado Pago checkout and webhook reconciliation, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Env, cfg.Server.LogLevel)
	routes.Run(cfg)
}
