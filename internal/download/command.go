package download

import "github.com/ytget/yt-dlp-gui/internal/model"

// yt-dlp flags
const (
	FlagExtractAudio       = "-x"
	FlagAudioFormat        = "--audio-format"
	FlagPaths              = "-P"
	FlagCookies            = "--cookies"
	FlagCookiesFromBrowser = "--cookies-from-browser"
	FlagVersion            = "--version"
)

// AudioFormat is the container audio-only downloads are converted to
const AudioFormat = "mp3"

// BuildArgs returns the yt-dlp argument vector for req, without the
// executable name. The URL is always the last element.
func BuildArgs(req model.DownloadRequest) []string {
	args := make([]string, 0, 8)

	if req.AudioOnly {
		args = append(args, FlagExtractAudio, FlagAudioFormat, AudioFormat)
	}
	args = append(args, FlagPaths, req.TargetDirectory)

	switch req.Cookies.Kind {
	case model.CookieFromFile:
		args = append(args, FlagCookies, req.Cookies.File)
	case model.CookieFromBrowser:
		args = append(args, FlagCookiesFromBrowser, req.Cookies.BrowserSpec())
	}

	return append(args, req.URL)
}

// Command returns the full command line, tool first
func Command(tool string, req model.DownloadRequest) []string {
	return append([]string{tool}, BuildArgs(req)...)
}
