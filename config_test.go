package optimo

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewClient_ConfigValidation(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantParam string
	}{
		{
			name:      "empty base url",
			cfg:       Config{AccessKey: "k"},
			wantParam: "BaseURL",
		},
		{
			name:      "base url without scheme",
			cfg:       Config{BaseURL: "some.url.com", AccessKey: "k"},
			wantParam: "BaseURL",
		},
		{
			name:      "empty access key",
			cfg:       Config{BaseURL: "https://foo.bar.com"},
			wantParam: "AccessKey",
		},
		{
			name:      "malformed version",
			cfg:       Config{BaseURL: "https://foo.bar.com", AccessKey: "k", Version: "s1"},
			wantParam: "Version",
		},
		{
			name:      "version without number",
			cfg:       Config{BaseURL: "https://foo.bar.com", AccessKey: "k", Version: "v"},
			wantParam: "Version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.Logger = zerolog.Nop()
			_, err := NewClient(tt.cfg)
			if err == nil {
				t.Fatal("expected config error, got nil")
			}

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *ConfigError, got %T", err)
			}
			if cfgErr.Param != tt.wantParam {
				t.Errorf("expected offending param %s, got %s", tt.wantParam, cfgErr.Param)
			}
		})
	}
}

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient(Config{
		BaseURL:   "https://foo.bar.com",
		AccessKey: "foobarkey",
		Logger:    zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := client.Transport().version; got != DefaultVersion {
		t.Errorf("expected default version %s, got %s", DefaultVersion, got)
	}
}

func TestNewClient_ExplicitVersion(t *testing.T) {
	client, err := NewClient(Config{
		BaseURL:   "https://foo.bar.com",
		AccessKey: "foobarkey",
		Version:   "v2",
		Logger:    zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := client.Transport().version; got != "v2" {
		t.Errorf("expected version v2, got %s", got)
	}
}
