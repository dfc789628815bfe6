package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultSettingsFile is resolved against the working directory
const DefaultSettingsFile = "app_config.json"

// JSON keys of the settings file
const (
	KeyVideoDir    = "video_dir"
	KeyAudioDir    = "audio_dir"
	KeyLastSaveDir = "last_save_dir"
	KeyWindowSize  = "window_size"
)

// WindowSize is the last known main window size
type WindowSize struct {
	Width  float32
	Height float32
}

// AppSettings is the per-user state persisted between sessions. It is loaded
// once at startup, changed in memory, and written once at shutdown.
type AppSettings struct {
	VideoDir    string
	AudioDir    string
	LastSaveDir string
	WindowSize  *WindowSize
}

// settingsFile is the on-disk layout
type settingsFile struct {
	VideoDir    string    `json:"video_dir"`
	AudioDir    string    `json:"audio_dir"`
	LastSaveDir string    `json:"last_save_dir"`
	WindowSize  []float32 `json:"window_size,omitempty"`
}

// DefaultSettings points both download targets at the home directory
func DefaultSettings() AppSettings {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "."
	}
	return AppSettings{
		VideoDir: home,
		AudioDir: home,
	}
}

// LoadSettings reads the settings file. A missing or unparseable file yields
// DefaultSettings; a missing or mistyped key keeps its default.
func LoadSettings(path string) AppSettings {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		return settings
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return settings
	}

	if v, ok := raw[KeyVideoDir].(string); ok {
		settings.VideoDir = v
	}
	if v, ok := raw[KeyAudioDir].(string); ok {
		settings.AudioDir = v
	}
	if v, ok := raw[KeyLastSaveDir].(string); ok {
		settings.LastSaveDir = v
	}
	settings.WindowSize = parseWindowSize(raw[KeyWindowSize])

	return settings
}

// parseWindowSize accepts only a two-element numeric array
func parseWindowSize(v any) *WindowSize {
	values, ok := v.([]any)
	if !ok || len(values) != 2 {
		return nil
	}
	width, ok := values[0].(float64)
	if !ok {
		return nil
	}
	height, ok := values[1].(float64)
	if !ok {
		return nil
	}
	if width <= 0 || height <= 0 {
		return nil
	}
	return &WindowSize{Width: float32(width), Height: float32(height)}
}

// SaveSettings writes the settings file. Callers treat failures as
// non-fatal and only log them.
func SaveSettings(path string, s AppSettings) error {
	out := settingsFile{
		VideoDir:    s.VideoDir,
		AudioDir:    s.AudioDir,
		LastSaveDir: s.LastSaveDir,
	}
	if s.WindowSize != nil {
		out.WindowSize = []float32{s.WindowSize.Width, s.WindowSize.Height}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
