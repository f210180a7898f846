package imagekit

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultUploadTTL = 10 * time.Minute

// Config del cliente ImageKit.
// Las keys vienen del dashboard de ImageKit (env vars en el servicio).
type Config struct {
	PublicKey   string
	PrivateKey  string
	URLEndpoint string

	// Vigencia de cada autorización de subida.
	UploadTTL time.Duration
}

// Client genera credenciales efímeras para que el frontend suba archivos
// directo a ImageKit sin pasar los bytes por este backend.
type Client struct {
	publicKey   string
	privateKey  string
	urlEndpoint string
	uploadTTL   time.Duration

	now func() time.Time
}

func NewClient(cfg Config) *Client {
	ttl := cfg.UploadTTL
	if ttl <= 0 {
		ttl = defaultUploadTTL
	}
	return &Client{
		publicKey:   strings.TrimSpace(cfg.PublicKey),
		privateKey:  strings.TrimSpace(cfg.PrivateKey),
		urlEndpoint: strings.TrimRight(strings.TrimSpace(cfg.URLEndpoint), "/"),
		uploadTTL:   ttl,
		now:         time.Now,
	}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.publicKey != "" && c.privateKey != ""
}

// UploadAuth es lo que el SDK de ImageKit espera para autenticar una subida.
type UploadAuth struct {
	Token       string `json:"token"`
	Expire      int64  `json:"expire"`
	Signature   string `json:"signature"`
	PublicKey   string `json:"public_key"`
	URLEndpoint string `json:"url_endpoint"`
}

// NewUploadAuth genera un token de subida de un solo uso.
// Firma = HMAC-SHA1(token + expire, private key) en hex, según el contrato
// de autenticación de ImageKit.
func (c *Client) NewUploadAuth() UploadAuth {
	token := uuid.NewString()
	expire := c.now().Add(c.uploadTTL).Unix()

	mac := hmac.New(sha1.New, []byte(c.privateKey))
	mac.Write([]byte(token + strconv.FormatInt(expire, 10)))

	return UploadAuth{
		Token:       token,
		Expire:      expire,
		Signature:   hex.EncodeToString(mac.Sum(nil)),
		PublicKey:   c.publicKey,
		URLEndpoint: c.urlEndpoint,
	}
}

// NewUploadAuthHandler expone GET /media/upload-auth.
// Responde 503 si el servicio corre sin credenciales de ImageKit.
func NewUploadAuthHandler(c *Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !c.IsConfigured() {
			http.Error(w, "media uploads not configured", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(c.NewUploadAuth())
	}
}
