package config_test

import (
	"testing"

	"github.com/shashiranjanraj/rasoi/config"
)

// No config/app.json or .env is present under the test working directory,
// so every accessor falls back to the built-in defaults.

func TestDefaults(t *testing.T) {
	if got := config.AppPort(); got != "5000" {
		t.Errorf("AppPort = %q, want 5000", got)
	}
	if got := config.MongoDB(); got != "rasoi" {
		t.Errorf("MongoDB = %q, want rasoi", got)
	}
	if config.JWTSecret() == "" {
		t.Error("JWTSecret must never be empty")
	}
	if got := config.StripeAPIBase(); got != "https://api.stripe.com/v1" {
		t.Errorf("StripeAPIBase = %q", got)
	}
}

func TestGetFallback(t *testing.T) {
	if got := config.Get("NOT_A_KEY", "fallback"); got != "fallback" {
		t.Errorf("Get = %q, want fallback", got)
	}
	if got := config.Get("APP_ENV", "x"); got != "local" {
		t.Errorf("Get(APP_ENV) = %q, want local", got)
	}
}
