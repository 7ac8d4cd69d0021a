package bootstrap

import (
	"log"

	"github.com/joho/godotenv"
)

// Loadenv pulls a local .env into the process environment. Deployed
// environments supply real variables, so a missing file is not an error.
func Loadenv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
}
