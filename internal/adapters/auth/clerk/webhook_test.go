package clerk

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"pawmatch/internal/domain/users"
)

type fakeUserSync struct {
	upserts []users.IdentityEvent
	deletes []string

	deleteErr error
}

func (f *fakeUserSync) UpsertFromIdentityEvent(_ context.Context, in users.IdentityEvent) (users.User, error) {
	f.upserts = append(f.upserts, in)
	return users.User{ID: "u-1", IdentityKey: in.IdentityKey}, nil
}

func (f *fakeUserSync) DeleteFromIdentityEvent(_ context.Context, identityKey string) error {
	f.deletes = append(f.deletes, identityKey)
	return f.deleteErr
}

const testSecret = "whsec_dGVzdC1zZWNyZXQta2V5" // "test-secret-key"

func signedRequest(t *testing.T, secret, body string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/webhooks/identity", strings.NewReader(body))
	id := "msg_123"
	ts := strconv.FormatInt(time.Now().Unix(), 10)

	key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(secret, "whsec_"))
	if err != nil {
		t.Fatalf("decode secret: %v", err)
	}
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(id + "." + ts + "." + body))
	sig := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	req.Header.Set("svix-id", id)
	req.Header.Set("svix-timestamp", ts)
	req.Header.Set("svix-signature", "v1,"+sig)
	return req
}

func TestWebhookUserCreated(t *testing.T) {
	sync := &fakeUserSync{}
	h := NewWebhookHandler(sync, testSecret, nil)

	body := `{
		"type": "user.created",
		"data": {
			"id": "user_abc",
			"first_name": "Ana",
			"last_name": "Reyes",
			"image_url": "https://img.example/ana.png",
			"primary_email_address_id": "em_2",
			"email_addresses": [
				{"id": "em_1", "email_address": "old@example.com"},
				{"id": "em_2", "email_address": "ana@example.com"}
			]
		}
	}`

	rec := httptest.NewRecorder()
	h(rec, signedRequest(t, testSecret, body))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if len(sync.upserts) != 1 {
		t.Fatalf("upserts = %d, want 1", len(sync.upserts))
	}

	got := sync.upserts[0]
	if got.IdentityKey != "user_abc" {
		t.Errorf("identity key = %q", got.IdentityKey)
	}
	if got.Name != "Ana Reyes" {
		t.Errorf("name = %q", got.Name)
	}
	if got.Email != "ana@example.com" {
		t.Errorf("email = %q, want primary", got.Email)
	}
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	sync := &fakeUserSync{}
	h := NewWebhookHandler(sync, testSecret, nil)

	body := `{"type":"user.created","data":{"id":"user_abc"}}`
	req := signedRequest(t, testSecret, body)
	req.Header.Set("svix-signature", "v1,bm90LWxhLWZpcm1h")

	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if len(sync.upserts) != 0 {
		t.Fatalf("upsert ejecutado con firma inválida")
	}
}

func TestWebhookUserDeletedUnknownIsOK(t *testing.T) {
	sync := &fakeUserSync{deleteErr: users.ErrNotFound}
	h := NewWebhookHandler(sync, testSecret, nil)

	body := `{"type":"user.deleted","data":{"id":"user_gone"}}`
	rec := httptest.NewRecorder()
	h(rec, signedRequest(t, testSecret, body))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (evento repetido no debe fallar)", rec.Code)
	}
	if len(sync.deletes) != 1 || sync.deletes[0] != "user_gone" {
		t.Fatalf("deletes = %v", sync.deletes)
	}
}

func TestWebhookSkipsVerificationWithoutSecret(t *testing.T) {
	sync := &fakeUserSync{}
	h := NewWebhookHandler(sync, "", nil)

	body := `{"type":"user.created","data":{"id":"user_dev","email_addresses":[{"id":"em_1","email_address":"dev@example.com"}]}}`
	req := httptest.NewRequest(http.MethodPost, "/webhooks/identity", strings.NewReader(body))

	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if len(sync.upserts) != 1 {
		t.Fatalf("upserts = %d, want 1", len(sync.upserts))
	}
	if sync.upserts[0].Email != "dev@example.com" {
		t.Errorf("email = %q (fallback al primero sin primary)", sync.upserts[0].Email)
	}
}
