package model

import "strings"

// CookieKind selects where yt-dlp reads authentication cookies from
type CookieKind int

const (
	CookieNone CookieKind = iota
	CookieFromBrowser
	CookieFromFile
)

// String returns a short label for logs
func (k CookieKind) String() string {
	switch k {
	case CookieFromBrowser:
		return "browser"
	case CookieFromFile:
		return "file"
	default:
		return "none"
	}
}

// CookieSource is a tagged variant: only the fields of the active Kind are meaningful.
type CookieSource struct {
	Kind    CookieKind
	Browser string
	Profile string
	File    string
}

// NoCookies returns the empty cookie source
func NoCookies() CookieSource {
	return CookieSource{Kind: CookieNone}
}

// CookiesFromBrowser extracts cookies from a local browser profile
func CookiesFromBrowser(browser, profile string) CookieSource {
	return CookieSource{
		Kind:    CookieFromBrowser,
		Browser: strings.TrimSpace(browser),
		Profile: strings.TrimSpace(profile),
	}
}

// CookiesFromFile reads cookies from a Netscape cookies.txt file
func CookiesFromFile(path string) CookieSource {
	return CookieSource{Kind: CookieFromFile, File: path}
}

// BrowserSpec formats the --cookies-from-browser value: "browser" or "browser:profile"
func (c CookieSource) BrowserSpec() string {
	if c.Profile == "" {
		return c.Browser
	}
	return c.Browser + ":" + c.Profile
}

// CookieSelection mirrors the cookie widgets of the main window. Both check
// boxes may be ticked at the same time; Resolve collapses them into one source.
type CookieSelection struct {
	UseBrowser bool
	Browser    string
	Profile    string
	UseFile    bool
	FilePath   string
}

// Resolve returns the single cookie source to use. A cookies file wins over
// browser extraction, and is ignored while no file has been chosen.
func (s CookieSelection) Resolve() CookieSource {
	if s.UseFile && strings.TrimSpace(s.FilePath) != "" {
		return CookiesFromFile(s.FilePath)
	}
	if s.UseBrowser && strings.TrimSpace(s.Browser) != "" {
		return CookiesFromBrowser(s.Browser, s.Profile)
	}
	return NoCookies()
}
