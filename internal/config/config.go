package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the process configuration, read from the environment
type Config struct {
	Addr          string // listen address, from PORT
	AllowedOrigin string // browser origin accepted on the websocket endpoint
	PublicURL     string // base URL encoded into join QR codes
}

// Load reads .env (if present) and the environment
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	port := getenv("PORT", "3001")
	return &Config{
		Addr:          ":" + port,
		AllowedOrigin: getenv("ALLOWED_ORIGIN", "http://localhost:3000"),
		PublicURL:     getenv("PUBLIC_URL", "http://localhost:"+port),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
