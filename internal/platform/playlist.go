package platform

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"
	"go.uber.org/zap"

	"github.com/ytget/yt-dlp-gui/internal/logger"
	"github.com/ytget/yt-dlp-gui/internal/model"
)

// DefaultInspectTimeout bounds a playlist lookup
const DefaultInspectTimeout = 20 * time.Second

// PlaylistParam is the query parameter carrying a playlist ID
const PlaylistParam = "list"

// YouTubeVideoURLTemplate builds a watch URL from a video ID
const YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"

// ErrNotPlaylist is returned for URLs without a playlist ID
var ErrNotPlaylist = errors.New("url does not reference a playlist")

// PlaylistItem is the subset of playlist data the inspector needs
type PlaylistItem struct {
	VideoID string
	Title   string
}

// PlaylistFetcher lists every item of a playlist
type PlaylistFetcher func(ctx context.Context, playlistID string) ([]PlaylistItem, error)

// PlaylistInspector resolves playlist contents before a download starts.
// yt-dlp downloads the playlist itself; the summary is informational.
type PlaylistInspector struct {
	fetch   PlaylistFetcher
	timeout time.Duration
	logger  *zap.SugaredLogger
}

// NewPlaylistInspector creates an inspector backed by the ytdlp library
func NewPlaylistInspector(timeout time.Duration, log *zap.SugaredLogger) *PlaylistInspector {
	return NewPlaylistInspectorWithFetcher(fetchWithYTDLP, timeout, log)
}

// NewPlaylistInspectorWithFetcher creates an inspector with a custom fetcher
func NewPlaylistInspectorWithFetcher(fetch PlaylistFetcher, timeout time.Duration, log *zap.SugaredLogger) *PlaylistInspector {
	if timeout <= 0 {
		timeout = DefaultInspectTimeout
	}
	return &PlaylistInspector{
		fetch:   fetch,
		timeout: timeout,
		logger:  logger.OrNop(log),
	}
}

// Inspect lists the entries of the playlist referenced by rawURL
func (p *PlaylistInspector) Inspect(ctx context.Context, rawURL string) (*model.PlaylistSummary, error) {
	id := ExtractPlaylistID(rawURL)
	if id == "" {
		return nil, fmt.Errorf("%w: %s", ErrNotPlaylist, rawURL)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	started := time.Now()
	items, err := p.fetch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}
	p.logger.Debugw("Playlist inspected", "playlist", id, "items", len(items), "elapsed", time.Since(started))

	entries := make([]*model.PlaylistEntry, 0, len(items))
	for _, it := range items {
		if it.VideoID == "" {
			continue
		}
		entries = append(entries, &model.PlaylistEntry{
			VideoID: it.VideoID,
			Title:   it.Title,
			URL:     fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID),
		})
	}

	return &model.PlaylistSummary{
		ID:      id,
		URL:     rawURL,
		Entries: entries,
	}, nil
}

// IsPlaylistURL reports whether rawURL carries a playlist ID
func IsPlaylistURL(rawURL string) bool {
	return ExtractPlaylistID(rawURL) != ""
}

// ExtractPlaylistID returns the list= parameter of rawURL, or ""
func ExtractPlaylistID(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}

	u, err := url.Parse(rawURL)
	if err == nil {
		if id := u.Query().Get(PlaylistParam); id != "" {
			return id
		}
	}

	// Fall back to a plain scan for inputs url.Parse rejects
	marker := PlaylistParam + "="
	i := strings.Index(rawURL, marker)
	if i < 0 {
		return ""
	}
	id := rawURL[i+len(marker):]
	if j := strings.IndexAny(id, "&#"); j >= 0 {
		id = id[:j]
	}
	return id
}

func fetchWithYTDLP(ctx context.Context, playlistID string) ([]PlaylistItem, error) {
	items, err := ytdlp.New().GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, err
	}

	out := make([]PlaylistItem, 0, len(items))
	for _, it := range items {
		out = append(out, PlaylistItem{VideoID: it.VideoID, Title: it.Title})
	}
	return out, nil
}
