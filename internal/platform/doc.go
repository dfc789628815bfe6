// Package platform contains OS integration: opening folders, locating
// browser cookie stores, reading the bundled README, parsing yt-dlp
// progress lines and inspecting playlists.
package platform
