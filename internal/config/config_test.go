package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Http:       HttpConfig{Port: ":8080", AdminRPS: 2, PublicRPS: 10},
		Storage:    StorageConfig{Driver: DriverPostgres},
		Postgres:   PostgresConfig{Host: "localhost"},
		APIKey:     "secret",
		SLA:        SLAConfig{SweepInterval: time.Minute},
		Escalation: EscalationConfig{WebhookURL: "http://hooks.local/escalations"},
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"ok", func(c *Config) {}, false},
		{"port without colon", func(c *Config) { c.Http.Port = "8080" }, true},
		{"zero rate", func(c *Config) { c.Http.AdminRPS = 0 }, true},
		{"empty api key", func(c *Config) { c.APIKey = "" }, true},
		{"unknown driver", func(c *Config) { c.Storage.Driver = "mongo" }, true},
		{"postgres without host", func(c *Config) { c.Postgres.Host = "" }, true},
		{"firestore without project", func(c *Config) { c.Storage.Driver = DriverFirestore }, true},
		{"firestore ok", func(c *Config) {
			c.Storage.Driver = DriverFirestore
			c.Firestore.ProjectID = "city-desk"
		}, false},
		{"zero sweep", func(c *Config) { c.SLA.SweepInterval = 0 }, true},
		{"webhook missing", func(c *Config) { c.Escalation.WebhookURL = "" }, true},
		{"webhook disabled", func(c *Config) {
			c.Escalation.WebhookURL = ""
			c.Escalation.Disabled = true
		}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validConfig()
			tc.mutate(c)
			err := c.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("wantErr=%v got %v", tc.wantErr, err)
			}
		})
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("API_KEY", "k")
	t.Setenv("HTTP_PORT", ":9090")
	t.Setenv("STORAGE_DRIVER", "firestore")
	t.Setenv("FIRESTORE_PROJECT_ID", "city-desk")
	t.Setenv("SLA_SWEEP_INTERVAL", "30s")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("ESCALATION_WEBHOOK_DISABLED", "true")
	t.Setenv("PUBLIC_RATE_RPS", "2.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Http.Port != ":9090" {
		t.Fatalf("port=%s", cfg.Http.Port)
	}
	if cfg.Storage.Driver != DriverFirestore || cfg.Firestore.ProjectID != "city-desk" {
		t.Fatalf("storage=%+v firestore=%+v", cfg.Storage, cfg.Firestore)
	}
	if cfg.SLA.SweepInterval != 30*time.Second {
		t.Fatalf("sweep=%v", cfg.SLA.SweepInterval)
	}
	if cfg.Http.PublicRPS != 2.5 || cfg.Http.AdminBurst != 5 {
		t.Fatalf("rates=%+v", cfg.Http)
	}
	if len(cfg.Http.AllowedOrigins) != 2 || cfg.Http.AllowedOrigins[1] != "https://b.example" {
		t.Fatalf("origins=%v", cfg.Http.AllowedOrigins)
	}
}
