package main

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var log *logrus.Logger

func init() {
	log = logrus.New()
	log.Formatter = &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "severity",
			logrus.FieldKeyMsg:   "message",
		},
		TimestampFormat: time.RFC3339Nano,
	}
	log.Out = os.Stdout
}

// app carries the shared store handle into the handlers.
type app struct {
	db *gorm.DB
}

func (a *app) routes(cfg Config) http.Handler {
	r := chi.NewRouter()
	r.Use(recoverJSON)

	// allow comma-separated list of origins
	var origins []string
	for _, p := range strings.Split(cfg.CORSOrigin, ",") {
		if o := strings.TrimRight(strings.TrimSpace(p), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(cfg.StaticDir, "index.html"))
	})

	r.Post("/api/users", a.handleCreateUser)
	r.Get("/api/users", a.handleListUsers)
	r.Post("/api/users/{id}/exercises", a.handleCreateExercise)
	r.Get("/api/users/{id}/logs", a.handleGetLogs)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	return r
}

func main() {
	loadDotenv()
	cfg := loadConfig()

	db, err := openDB(cfg.DatabaseURL)
	if err != nil {
		// keep serving; every handler answers 500 until the store is back
		log.Errorf("[DB] connect failed: %v", err)
	} else {
		log.Println("[DB] connected")
	}
	a := &app{db: db}

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           a.routes(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Println("API listening on", addr)
	log.Fatal(srv.ListenAndServe())
}
