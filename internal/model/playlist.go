package model

import "strings"

// Playlist title constants
const (
	DefaultPlaylistTitle = "Untitled Playlist"
	PlaylistTitleSuffix  = " Playlist"
	MinTitlePrefixLength = 10
)

// PlaylistEntry is a single video of a playlist
type PlaylistEntry struct {
	VideoID string `json:"video_id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
}

// PlaylistSummary describes a playlist before it is handed to the tool
type PlaylistSummary struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	URL     string           `json:"url"`
	Entries []*PlaylistEntry `json:"entries"`
}

// Count returns the number of entries
func (p *PlaylistSummary) Count() int {
	if p == nil {
		return 0
	}
	return len(p.Entries)
}

// DisplayTitle returns the title, or a title derived from the entries
func (p *PlaylistSummary) DisplayTitle() string {
	if p == nil {
		return DefaultPlaylistTitle
	}
	if p.Title != "" {
		return p.Title
	}
	if len(p.Entries) == 0 {
		return DefaultPlaylistTitle
	}
	if len(p.Entries) > 1 {
		prefix := commonPrefix(p.Entries[0].Title, p.Entries[1].Title)
		if len(prefix) > MinTitlePrefixLength {
			return strings.TrimSpace(prefix) + PlaylistTitleSuffix
		}
	}
	return p.Entries[0].Title + PlaylistTitleSuffix
}

func commonPrefix(s1, s2 string) string {
	n := min(len(s1), len(s2))
	for i := 0; i < n; i++ {
		if s1[i] != s2[i] {
			return s1[:i]
		}
	}
	return s1[:n]
}
