package config

import (
	"testing"
	"time"
)

func baseConfig() *Config {
	return &Config{
		AI: AIConfig{
			Provider:    "gemini",
			Model:       "gemini-2.0-flash",
			Timeout:     60 * time.Second,
			MaxRetries:  3,
			Temperature: 0.7,
		},
		Server: ServerConfig{
			Port: "8080",
			TLS:  TLSConfig{Mode: "disabled"},
		},
		App: AppConfig{
			LogLevel:         "info",
			DefaultFormat:    "text",
			SupportedFormats: []string{"json", "text", "markdown"},
			MaxFileSize:      1024 * 1024,
		},
		History: HistoryConfig{Enabled: true, FilePath: "resume_history.json"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid config", func(c *Config) {}, false},
		{"missing API key is allowed", func(c *Config) { c.AI.APIKey = "" }, false},
		{"zero AI timeout", func(c *Config) { c.AI.Timeout = 0 }, true},
		{"missing port", func(c *Config) { c.Server.Port = "" }, true},
		{"unknown default format", func(c *Config) { c.App.DefaultFormat = "xml" }, true},
		{"history enabled without path", func(c *Config) { c.History.FilePath = "" }, true},
		{"history disabled without path", func(c *Config) {
			c.History.Enabled = false
			c.History.FilePath = ""
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTLSConfig(t *testing.T) {
	tests := []struct {
		name    string
		tls     TLSConfig
		wantErr bool
	}{
		{"disabled", TLSConfig{Mode: "disabled"}, false},
		{"server with files", TLSConfig{Mode: "server", CertFile: "cert.pem", KeyFile: "key.pem"}, false},
		{"server with content", TLSConfig{Mode: "server", CertContent: "PEM", KeyContent: "PEM"}, false},
		{"server missing key", TLSConfig{Mode: "server", CertFile: "cert.pem"}, true},
		{"server duplicate cert source", TLSConfig{Mode: "server", CertFile: "cert.pem", CertContent: "PEM", KeyFile: "key.pem"}, true},
		{"mutual without CA", TLSConfig{Mode: "mutual", CertFile: "cert.pem", KeyFile: "key.pem"}, true},
		{"mutual complete", TLSConfig{Mode: "mutual", CertFile: "cert.pem", KeyFile: "key.pem", CAFile: "ca.pem"}, false},
		{"mutual bad auth policy", TLSConfig{Mode: "mutual", CertFile: "cert.pem", KeyFile: "key.pem", CAFile: "ca.pem", ClientAuthPolicy: "maybe"}, true},
		{"bad mode", TLSConfig{Mode: "sometimes"}, true},
		{"bad min version", TLSConfig{Mode: "disabled", MinVersion: "1.1"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			cfg.Server.TLS = tt.tls
			err := cfg.ValidateTLSConfig()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTLSConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyOperationDefaults(t *testing.T) {
	cfg := baseConfig()
	cfg.AI.APIKey = "global-key"
	enhanceTimeout := 90 * time.Second
	cfg.AI.Enhance = OperationAIConfig{Timeout: &enhanceTimeout}

	op := cfg.GetEnhanceConfig()

	if op.Provider != "gemini" {
		t.Errorf("Expected provider fallback, got %s", op.Provider)
	}
	if op.Model != "gemini-2.0-flash" {
		t.Errorf("Expected model fallback, got %s", op.Model)
	}
	if op.APIKey != "global-key" {
		t.Errorf("Expected API key fallback, got %s", op.APIKey)
	}
	if *op.Timeout != enhanceTimeout {
		t.Errorf("Operation-specific timeout must win, got %v", *op.Timeout)
	}
	if *op.MaxRetries != 3 {
		t.Errorf("Expected retries fallback, got %d", *op.MaxRetries)
	}
	if *op.Temperature != 0.7 {
		t.Errorf("Expected temperature fallback, got %f", *op.Temperature)
	}
}

func TestHasAPIKey(t *testing.T) {
	cfg := baseConfig()
	if cfg.HasAPIKey() {
		t.Error("Expected no API key on the base config")
	}
	cfg.AI.Keywords.APIKey = "op-key"
	if !cfg.HasAPIKey() {
		t.Error("Expected operation-level key to count")
	}
}
