package main

import (
	_ "workorder_engine/docs"
	"workorder_engine/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Work Order Engine API
// @version         1.0
// @description     Work order lifecycle and NTE negotiation backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey UserEmail
// @in header
// @name X-User-Email
// @description Acting user e-mail set by the gateway. X-User-Role, X-User-Name, X-User-Company and X-Client-Ref complete the identity.

func main() {
	routes.Run()
}
