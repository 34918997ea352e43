package config_test

import (
	"testing"

	"atrium/config"
)

func TestGetDefaults(t *testing.T) {
	cfg := config.Get()

	if cfg.App.Timezone != "UTC" {
		t.Errorf("expected default timezone UTC, got %q", cfg.App.Timezone)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default server port 8080, got %q", cfg.Server.Port)
	}

	if cfg.JWT.AccessSecret == "" {
		t.Error("expected access secret to carry a default")
	}

	if cfg.JWT.RefreshSecret == "" {
		t.Error("expected refresh secret to carry a default")
	}

	if cfg.App.Booking.SlotDurationMin != 60 {
		t.Errorf("expected default slot duration of 60 minutes, got %d", cfg.App.Booking.SlotDurationMin)
	}
}

func TestGetReturnsSameInstance(t *testing.T) {
	if config.Get() != config.Get() {
		t.Error("expected configuration to be loaded once")
	}
}
