package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Tool != DefaultTool {
		t.Errorf("Expected tool %s, got %s", DefaultTool, cfg.Tool)
	}
	if cfg.SettingsFile != DefaultSettingsFile {
		t.Errorf("Expected settings file %s, got %s", DefaultSettingsFile, cfg.SettingsFile)
	}
	if cfg.ReleasesURL != DefaultReleasesURL {
		t.Errorf("Expected releases URL %s, got %s", DefaultReleasesURL, cfg.ReleasesURL)
	}
	if cfg.HTTPTimeout != DefaultHTTPTimeout {
		t.Errorf("Expected http timeout %s, got %s", DefaultHTTPTimeout, cfg.HTTPTimeout)
	}
	if !cfg.InspectPlaylists {
		t.Error("Expected playlist inspection to be enabled by default")
	}
	if cfg.Log.Level != DefaultLogLevel || cfg.Log.Format != DefaultLogFormat {
		t.Errorf("Unexpected log config: %+v", cfg.Log)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("YTDLP_GUI_TOOL", "/opt/bin/yt-dlp")
	t.Setenv("YTDLP_GUI_HTTP_TIMEOUT", "3s")
	t.Setenv("YTDLP_GUI_LOG_LEVEL", "debug")

	cfg, err := Load(nil, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Tool != "/opt/bin/yt-dlp" {
		t.Errorf("Expected tool from env, got %s", cfg.Tool)
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Errorf("Expected 3s timeout, got %s", cfg.HTTPTimeout)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Expected debug level, got %s", cfg.Log.Level)
	}
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("YTDLP_GUI_TOOL", "/from/env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)
	if err := flags.Parse([]string{"--tool", "/from/flag", "--settings", "custom.json"}); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}

	cfg, err := Load(flags, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Tool != "/from/flag" {
		t.Errorf("Expected tool from flag, got %s", cfg.Tool)
	}
	if cfg.SettingsFile != "custom.json" {
		t.Errorf("Expected settings file from flag, got %s", cfg.SettingsFile)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("YTDLP_GUI_SETTINGS_FILE=from-dotenv.json\n"), 0o644); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("YTDLP_GUI_SETTINGS_FILE") })

	cfg, err := Load(nil, envFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.SettingsFile != "from-dotenv.json" {
		t.Errorf("Expected settings file from .env, got %s", cfg.SettingsFile)
	}
}

func TestValidate(t *testing.T) {
	valid := AppConfig{
		Tool:            "yt-dlp",
		SettingsFile:    DefaultSettingsFile,
		HTTPTimeout:     time.Second,
		PlaylistTimeout: time.Second,
	}

	tests := []struct {
		name    string
		mutate  func(c *AppConfig)
		wantErr bool
	}{
		{"valid", func(c *AppConfig) {}, false},
		{"empty tool", func(c *AppConfig) { c.Tool = " " }, true},
		{"empty settings file", func(c *AppConfig) { c.SettingsFile = "" }, true},
		{"zero http timeout", func(c *AppConfig) { c.HTTPTimeout = 0 }, true},
		{"negative playlist timeout", func(c *AppConfig) { c.PlaylistTimeout = -time.Second }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
