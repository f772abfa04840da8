package main

import (
	"log"

	_ "trade_credit/docs"
	"trade_credit/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Trade Credit Settlement API
// @version         1.0
// @description     Obligation requests, payment obligations and partial payments.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := routes.Run(); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
