package main

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	Port        string
	CORSOrigin  string
	StaticDir   string
}

func loadConfig() Config {
	return Config{
		DatabaseURL: getenv("DATABASE_URL", "exercise.db"),
		Port:        getenv("PORT", "3000"),
		CORSOrigin:  getenv("CORS_ORIGIN", "*"),
		StaticDir:   getenv("STATIC_DIR", "./views"),
	}
}

// loadDotenv picks up a .env from the working dir or a parent (ok if missing in prod).
func loadDotenv() {
	for _, p := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Overload(p)
			log.Println("[env] loaded", p)
			return
		}
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
