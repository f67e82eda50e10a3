package config

import (
	"strings"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Format != "console" {
		t.Errorf("default format = %q, want console", cfg.Format)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("default server addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.DB.Path != "kiroscore.db" {
		t.Errorf("default db path = %q, want kiroscore.db", cfg.DB.Path)
	}
	if cfg.AI.Enabled {
		t.Error("AI pathway enabled by default")
	}
}

func TestLoadConfigRootOverride(t *testing.T) {
	cfg, err := LoadConfig("/tmp/submissions")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Root != "/tmp/submissions" {
		t.Errorf("root = %q, want /tmp/submissions", cfg.Root)
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name:   "Valid console config",
			config: Config{Format: "console", Server: ServerConfig{Addr: ":8080"}},
		},
		{
			name:   "Valid markdown config",
			config: Config{Format: "markdown", Server: ServerConfig{Addr: ":8080"}},
		},
		{
			name:    "Invalid format",
			config:  Config{Format: "xml", Server: ServerConfig{Addr: ":8080"}},
			wantErr: "invalid format",
		},
		{
			name:    "AI enabled without model",
			config:  Config{Format: "json", AI: AIConfig{Enabled: true}, Server: ServerConfig{Addr: ":8080"}},
			wantErr: "ai.model is required",
		},
		{
			name:    "Empty server addr",
			config:  Config{Format: "console"},
			wantErr: "server.addr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfig(&tt.config)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("validateConfig() unexpected error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("validateConfig() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
