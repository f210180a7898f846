package imagekit

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"
)

func TestNewUploadAuthSignature(t *testing.T) {
	c := NewClient(Config{
		PublicKey:   "public_abc",
		PrivateKey:  "private_xyz",
		URLEndpoint: "https://ik.imagekit.io/demo/",
		UploadTTL:   10 * time.Minute,
	})

	fixed := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return fixed }

	got := c.NewUploadAuth()

	if got.Token == "" {
		t.Fatal("token vacío")
	}
	wantExpire := fixed.Add(10 * time.Minute).Unix()
	if got.Expire != wantExpire {
		t.Errorf("expire = %d, want %d", got.Expire, wantExpire)
	}
	if got.PublicKey != "public_abc" {
		t.Errorf("public key = %q", got.PublicKey)
	}
	if got.URLEndpoint != "https://ik.imagekit.io/demo" {
		t.Errorf("url endpoint = %q (se espera sin slash final)", got.URLEndpoint)
	}

	mac := hmac.New(sha1.New, []byte("private_xyz"))
	mac.Write([]byte(got.Token + strconv.FormatInt(got.Expire, 10)))
	want := hex.EncodeToString(mac.Sum(nil))
	if got.Signature != want {
		t.Errorf("signature = %q, want %q", got.Signature, want)
	}
}

func TestUploadAuthTokensAreUnique(t *testing.T) {
	c := NewClient(Config{PublicKey: "pk", PrivateKey: "sk"})

	a := c.NewUploadAuth()
	b := c.NewUploadAuth()
	if a.Token == b.Token {
		t.Fatal("dos autorizaciones con el mismo token")
	}
}

func TestUploadAuthHandlerUnconfigured(t *testing.T) {
	h := NewUploadAuthHandler(NewClient(Config{}))

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/media/upload-auth", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestUploadAuthHandlerOK(t *testing.T) {
	h := NewUploadAuthHandler(NewClient(Config{PublicKey: "pk", PrivateKey: "sk", URLEndpoint: "https://ik.imagekit.io/demo"}))

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/media/upload-auth", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body UploadAuth
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Token == "" || body.Signature == "" || body.Expire == 0 {
		t.Fatalf("respuesta incompleta: %+v", body)
	}
}
