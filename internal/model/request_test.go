package model

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewDownloadRequest(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	tests := []struct {
		name    string
		url     string
		dir     string
		wantErr error
		wantURL string
	}{
		{
			name:    "trims url",
			url:     "  https://example.com/watch?v=1 \n",
			dir:     dir,
			wantURL: "https://example.com/watch?v=1",
		},
		{
			name:    "empty url",
			url:     "   ",
			dir:     dir,
			wantErr: ErrEmptyURL,
		},
		{
			name:    "missing directory",
			url:     "https://example.com",
			dir:     filepath.Join(dir, "missing"),
			wantErr: ErrTargetNotDirectory,
		},
		{
			name:    "target is a file",
			url:     "https://example.com",
			dir:     file,
			wantErr: ErrTargetNotDirectory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewDownloadRequest(tt.url, tt.dir, false, NoCookies())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if req.URL != tt.wantURL {
				t.Errorf("Expected URL %q, got %q", tt.wantURL, req.URL)
			}
			if req.TargetDirectory != tt.dir {
				t.Errorf("Expected target %q, got %q", tt.dir, req.TargetDirectory)
			}
		})
	}
}

func TestDownloadRequest_Kind(t *testing.T) {
	if got := (DownloadRequest{AudioOnly: true}).Kind(); got != "audio" {
		t.Errorf("Expected audio, got %s", got)
	}
	if got := (DownloadRequest{}).Kind(); got != "video" {
		t.Errorf("Expected video, got %s", got)
	}
}
