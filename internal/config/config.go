package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config agrupa toda la configuración del servicio, cargada desde env vars.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	Database Database `envPrefix:"DB_"`
	Auth     Auth     `envPrefix:"AUTH_"`
	Media    Media    `envPrefix:"IMAGEKIT_"`
	Log      Log      `envPrefix:"LOG_"`
	CORS     CORS     `envPrefix:"CORS_"`
}

// Database: si DSN viene vacío, el router usa repos in-memory (modo dev).
type Database struct {
	DSN string `env:"DSN"`
}

// Auth configura el boundary con el proveedor de identidad.
// - BaseURL/APIKey: verificación remota de tokens.
// - JWTPublicKey: PEM para verificar session JWTs localmente (tiene prioridad).
// - WebhookSecret: firma de los eventos de sync de usuarios. Vacío = no verificar (dev).
type Auth struct {
	BaseURL       string `env:"BASE_URL"`
	APIKey        string `env:"API_KEY"`
	JWTPublicKey  string `env:"JWT_PUBLIC_KEY"`
	WebhookSecret string `env:"WEBHOOK_SECRET"`
}

// Media configura la emisión de credenciales de upload para el asset host.
type Media struct {
	PublicKey   string        `env:"PUBLIC_KEY"`
	PrivateKey  string        `env:"PRIVATE_KEY"`
	URLEndpoint string        `env:"URL_ENDPOINT"`
	UploadTTL   time.Duration `env:"UPLOAD_TTL" envDefault:"10m"`
}

type Log struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
}

type CORS struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*"`
}

func Load() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}
