package main

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"

	"github.com/aqala-site/aqala/internal/api"
	"github.com/aqala-site/aqala/internal/backend"
	"github.com/aqala-site/aqala/internal/config"
	"github.com/aqala-site/aqala/internal/middleware"
	"github.com/aqala-site/aqala/internal/store"
	"github.com/aqala-site/aqala/internal/utils"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(utils.SafeEnv("AQALA_CONFIG", ""))
	if err != nil {
		// config problems are fatal before we have a configured logger
		panic(err)
	}
	log := utils.NewLogger(cfg.Env, cfg.LogLevel)

	// The durable medium is optional: without it the backend runs fully
	// in-memory and re-seeds on every start, which is fine for demos.
	var durable store.KV
	if cfg.SQLitePath != "" {
		db, err := sql.Open("sqlite3", cfg.SQLitePath)
		if err == nil {
			kv, kerr := store.NewSQLiteKV(db, log)
			if kerr == nil {
				durable = kv
			} else {
				err = kerr
			}
		}
		if durable == nil {
			log.WithError(err).Warn("sqlite unavailable, falling back to in-memory storage")
		}
	}

	var secret []byte
	if cfg.SessionSecret != "" {
		secret = []byte(cfg.SessionSecret)
	}
	b := backend.New(backend.Options{
		Durable:       durable,
		Locale:        cfg.Locale,
		SessionSecret: secret,
		Log:           log,
	})

	mux := http.NewServeMux()
	api.NewHandler(b, log).Register(mux)

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		locale := middleware.LocaleFromContext(r.Context())
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":     true,
			"name":   "Aqala API",
			"locale": locale,
			"msg":    utils.T(locale, "health.ok"),
		})
	})

	if cfg.StaticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))
	}

	handler := middleware.SecureHeaders(
		middleware.NoStore(
			middleware.RequestLogging(log, middleware.LocaleMiddleware(mux))))

	log.WithField("addr", cfg.Addr).Info("aqala server listening")
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.WithError(err).Error("server error")
		os.Exit(1)
	}
}
