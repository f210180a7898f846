package main

import (
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	_ "pawmatch/docs"
	"pawmatch/internal/adapters/auth/clerk"
	"pawmatch/internal/adapters/media/imagekit"
	pg "pawmatch/internal/adapters/storage/postgres"
	"pawmatch/internal/config"
	"pawmatch/internal/platform/logger"
	"pawmatch/internal/router"
	"pawmatch/internal/ports/auth"
)

// @title PawMatch API
// @version 1.0
// @description Backend de adopción de perros: publicaciones, likes, matches y mensajería.
// @BasePath /
func main() {
	// .env es opcional; en producción todo viene del entorno.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg := logger.New(logger.ParseLevel(cfg.Log.Level), logger.ParseFormat(cfg.Log.Format))

	opts := router.Options{
		Logger:         lg,
		WebhookSecret:  cfg.Auth.WebhookSecret,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	}

	if cfg.Database.DSN != "" {
		db, err := pg.Open(cfg.Database.DSN)
		if err != nil {
			log.Fatalf("db: %v", err)
		}
		defer db.Close()
		opts.DB = db
	} else {
		lg.Warn("no DB_DSN, using in-memory storage", nil)
	}

	opts.AuthVerifier = buildVerifier(cfg, lg)

	opts.Media = imagekit.NewClient(imagekit.Config{
		PublicKey:   cfg.Media.PublicKey,
		PrivateKey:  cfg.Media.PrivateKey,
		URLEndpoint: cfg.Media.URLEndpoint,
		UploadTTL:   cfg.Media.UploadTTL,
	})
	if !opts.Media.IsConfigured() {
		lg.Warn("imagekit not configured, /media/upload-auth will return 503", nil)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	lg.Info("starting server", map[string]any{"addr": srv.Addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

// buildVerifier decide cómo se verifican los tokens:
// JWT local si hay public key, introspección remota si hay API key,
// nil (modo dev con X-Debug-User-ID) si no hay nada configurado.
func buildVerifier(cfg *config.Config, lg logger.Logger) auth.AuthVerifier {
	client := clerk.NewClient(clerk.Config{
		BaseURL: cfg.Auth.BaseURL,
		APIKey:  cfg.Auth.APIKey,
	})

	if cfg.Auth.JWTPublicKey == "" && !client.IsConfigured() {
		lg.Warn("no auth verifier configured, running in dev mode", nil)
		return nil
	}

	v, err := clerk.NewVerifier(client, cfg.Auth.JWTPublicKey)
	if err != nil {
		log.Fatalf("auth verifier: %v", err)
	}
	return v
}
