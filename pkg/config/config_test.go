package config

import (
	"os"
	"testing"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "prod" {
		t.Fatalf("expected App.Env to be prod, got %q", cfg.App.Env)
	}
	if cfg.DB.Driver != "sqlite" {
		t.Fatalf("expected default sqlite driver, got %q", cfg.DB.Driver)
	}
	if cfg.WhatsApp.PhoneNumber != "5493512965608" {
		t.Fatalf("unexpected whatsapp phone %q", cfg.WhatsApp.PhoneNumber)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Fatalf("unexpected gemini model %q", cfg.Gemini.Model)
	}
	if cfg.Gemini.MaxOutputTokens != 300 {
		t.Fatalf("unexpected gemini token cap %d", cfg.Gemini.MaxOutputTokens)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv("NEXTLAYER_JWT_SECRET"); err != nil {
		t.Fatalf("failed to unset jwt secret: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_RejectsNonNumericPhone(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvWhatsAppPhone, "+54 9 351 296-5608")

	if _, err := Load(); err == nil {
		t.Fatal("expected formatted phone number to be rejected")
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv("NEXTLAYER_APP_ENV", "prod")
	t.Setenv("NEXTLAYER_JWT_SECRET", "secret")
	t.Setenv("NEXTLAYER_ADMIN_PASSWORD_HASH", "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA")
}
