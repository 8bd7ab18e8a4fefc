package main

import (
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Construction Dashboard API
// @version         1.0
// @description     Projects, versioned estimations, catalog, agreements and payments.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Printf("command failed: %v", err)
		os.Exit(1)
	}
}
