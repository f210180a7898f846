package clerk

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pawmatch/internal/domain/users"
	"pawmatch/internal/platform/logger"
)

// Clerk firma sus webhooks con el esquema de Svix:
// firma = HMAC-SHA256("{id}.{timestamp}.{body}", secret) en base64,
// con el secret codificado como "whsec_<base64>".
const (
	headerWebhookID        = "svix-id"
	headerWebhookTimestamp = "svix-timestamp"
	headerWebhookSignature = "svix-signature"

	webhookTolerance = 5 * time.Minute
	maxWebhookBody   = 1 << 20 // 1MB
)

var ErrInvalidSignature = errors.New("invalid webhook signature")

// UserSync es lo que el webhook necesita del dominio de usuarios.
type UserSync interface {
	UpsertFromIdentityEvent(ctx context.Context, in users.IdentityEvent) (users.User, error)
	DeleteFromIdentityEvent(ctx context.Context, identityKey string) error
}

// webhookEvent es el payload que manda Clerk.
// Solo decodificamos los campos que usamos.
type webhookEvent struct {
	Type string `json:"type"`
	Data struct {
		ID             string `json:"id"`
		FirstName      string `json:"first_name"`
		LastName       string `json:"last_name"`
		ImageURL       string `json:"image_url"`
		EmailAddresses []struct {
			ID           string `json:"id"`
			EmailAddress string `json:"email_address"`
		} `json:"email_addresses"`
		PrimaryEmailAddressID string `json:"primary_email_address_id"`
	} `json:"data"`
}

// NewWebhookHandler retorna el handler de POST /webhooks/identity.
// Con secret vacío la verificación de firma se omite (solo para desarrollo).
func NewWebhookHandler(svc UserSync, secret string, log logger.Logger) http.HandlerFunc {
	if log == nil {
		log = logger.Nop()
	}
	secret = strings.TrimSpace(secret)

	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
		if err != nil {
			http.Error(w, "cannot read body", http.StatusBadRequest)
			return
		}

		if secret != "" {
			if err := verifySignature(secret, r.Header, body); err != nil {
				log.Warn("webhook signature rejected", map[string]any{"error": err.Error()})
				http.Error(w, "invalid signature", http.StatusUnauthorized)
				return
			}
		}

		var evt webhookEvent
		if err := json.Unmarshal(body, &evt); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		identityKey := strings.TrimSpace(evt.Data.ID)
		if identityKey == "" {
			http.Error(w, "missing user id", http.StatusBadRequest)
			return
		}

		switch evt.Type {
		case "user.created", "user.updated":
			name := strings.TrimSpace(strings.TrimSpace(evt.Data.FirstName) + " " + strings.TrimSpace(evt.Data.LastName))

			u, err := svc.UpsertFromIdentityEvent(r.Context(), users.IdentityEvent{
				IdentityKey: identityKey,
				Name:        name,
				Email:       primaryEmail(evt),
				ImageURL:    strings.TrimSpace(evt.Data.ImageURL),
			})
			if err != nil {
				log.Error("webhook upsert failed", map[string]any{"identity_key": identityKey, "error": err.Error()})
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			log.Info("identity synced", map[string]any{"event": evt.Type, "user_id": u.ID})

		case "user.deleted":
			err := svc.DeleteFromIdentityEvent(r.Context(), identityKey)
			if err != nil && !errors.Is(err, users.ErrNotFound) {
				log.Error("webhook delete failed", map[string]any{"identity_key": identityKey, "error": err.Error()})
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			if errors.Is(err, users.ErrNotFound) {
				// Evento repetido o usuario nunca sincronizado; respondemos 200
				// para que Clerk no reintente.
				log.Warn("webhook delete for unknown user", map[string]any{"identity_key": identityKey})
			}

		default:
			// Evento que no nos interesa; ack igual.
			log.Debug("webhook event ignored", map[string]any{"event": evt.Type})
		}

		w.WriteHeader(http.StatusOK)
	}
}

func primaryEmail(evt webhookEvent) string {
	for _, e := range evt.Data.EmailAddresses {
		if e.ID == evt.Data.PrimaryEmailAddressID {
			return strings.TrimSpace(e.EmailAddress)
		}
	}
	if len(evt.Data.EmailAddresses) > 0 {
		return strings.TrimSpace(evt.Data.EmailAddresses[0].EmailAddress)
	}
	return ""
}

func verifySignature(secret string, h http.Header, body []byte) error {
	id := strings.TrimSpace(h.Get(headerWebhookID))
	ts := strings.TrimSpace(h.Get(headerWebhookTimestamp))
	sigs := strings.TrimSpace(h.Get(headerWebhookSignature))
	if id == "" || ts == "" || sigs == "" {
		return errors.New("missing signature headers")
	}

	unix, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return errors.New("invalid timestamp header")
	}
	if d := time.Since(time.Unix(unix, 0)); d > webhookTolerance || d < -webhookTolerance {
		return errors.New("timestamp outside tolerance")
	}

	key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(secret, "whsec_"))
	if err != nil {
		return errors.New("invalid secret encoding")
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(id + "." + ts + "."))
	mac.Write(body)
	want := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	// El header puede traer varias firmas separadas por espacio,
	// cada una con prefijo de versión ("v1,<firma>").
	for _, part := range strings.Fields(sigs) {
		got := part
		if i := strings.IndexByte(part, ','); i >= 0 {
			got = part[i+1:]
		}
		if hmac.Equal([]byte(got), []byte(want)) {
			return nil
		}
	}
	return ErrInvalidSignature
}
