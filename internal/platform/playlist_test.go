package platform

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestExtractPlaylistID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"playlist page", "https://www.youtube.com/playlist?list=PL123", "PL123"},
		{"watch with list", "https://www.youtube.com/watch?v=abc&list=PL456&index=2", "PL456"},
		{"list first", "https://youtube.com/watch?list=PL789&v=abc", "PL789"},
		{"single video", "https://www.youtube.com/watch?v=abc", ""},
		{"empty", "   ", ""},
		{"unparseable url", "%zz?list=PLbad&x=1", "PLbad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractPlaylistID(tt.url); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
			if got := IsPlaylistURL(tt.url); got != (tt.want != "") {
				t.Errorf("Expected IsPlaylistURL %v, got %v", tt.want != "", got)
			}
		})
	}
}

func TestPlaylistInspector_Inspect(t *testing.T) {
	var gotID string
	fetch := func(ctx context.Context, id string) ([]PlaylistItem, error) {
		gotID = id
		if _, ok := ctx.Deadline(); !ok {
			t.Error("Expected inspect context to carry a deadline")
		}
		return []PlaylistItem{
			{VideoID: "v1", Title: "Concert Recording Part 1"},
			{VideoID: "", Title: "deleted video"},
			{VideoID: "v2", Title: "Concert Recording Part 2"},
		}, nil
	}

	inspector := NewPlaylistInspectorWithFetcher(fetch, time.Second, nil)
	summary, err := inspector.Inspect(context.Background(), "https://www.youtube.com/playlist?list=PLx")
	if err != nil {
		t.Fatalf("Inspect returned error: %v", err)
	}

	if gotID != "PLx" {
		t.Errorf("Expected fetch for PLx, got %q", gotID)
	}
	if summary.Count() != 2 {
		t.Fatalf("Expected 2 entries, got %d", summary.Count())
	}
	if summary.Entries[0].URL != "https://www.youtube.com/watch?v=v1" {
		t.Errorf("Unexpected entry URL: %s", summary.Entries[0].URL)
	}
	if summary.DisplayTitle() != "Concert Recording Part Playlist" {
		t.Errorf("Unexpected display title: %q", summary.DisplayTitle())
	}
}

func TestPlaylistInspector_NotPlaylist(t *testing.T) {
	called := false
	fetch := func(context.Context, string) ([]PlaylistItem, error) {
		called = true
		return nil, nil
	}

	_, err := NewPlaylistInspectorWithFetcher(fetch, 0, nil).Inspect(context.Background(), "https://youtu.be/abc")
	if !errors.Is(err, ErrNotPlaylist) {
		t.Errorf("Expected ErrNotPlaylist, got %v", err)
	}
	if called {
		t.Error("Expected no fetch for a non-playlist URL")
	}
}

func TestPlaylistInspector_FetchError(t *testing.T) {
	boom := errors.New("boom")
	fetch := func(context.Context, string) ([]PlaylistItem, error) { return nil, boom }

	_, err := NewPlaylistInspectorWithFetcher(fetch, time.Second, nil).Inspect(context.Background(), "https://www.youtube.com/playlist?list=PLx")
	if !errors.Is(err, boom) {
		t.Errorf("Expected wrapped fetch error, got %v", err)
	}
}
