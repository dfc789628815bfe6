package platform

import (
	"context"
	"sort"
	"strings"

	"github.com/browserutils/kooky"
	_ "github.com/browserutils/kooky/browser/all"
)

// DefaultBrowsers are offered even when no cookie store is found
var DefaultBrowsers = []string{"brave", "chrome", "edge", "firefox", "vivaldi"}

// supportedBrowsers are the names --cookies-from-browser accepts
var supportedBrowsers = map[string]bool{
	"brave":    true,
	"chrome":   true,
	"chromium": true,
	"edge":     true,
	"firefox":  true,
	"opera":    true,
	"safari":   true,
	"vivaldi":  true,
	"whale":    true,
}

// CookieStoreInfo identifies one browser profile holding cookies
type CookieStoreInfo struct {
	Browser   string
	Profile   string
	IsDefault bool
}

// findCookieStores is replaced in tests
var findCookieStores = func(ctx context.Context) []CookieStoreInfo {
	if ctx.Err() != nil {
		return nil
	}
	stores := kooky.FindAllCookieStores()
	infos := make([]CookieStoreInfo, 0, len(stores))
	for _, store := range stores {
		infos = append(infos, CookieStoreInfo{
			Browser:   store.Browser(),
			Profile:   store.Profile(),
			IsDefault: store.IsDefaultProfile(),
		})
		_ = store.Close()
	}
	return infos
}

// DetectBrowsers returns the browser names to offer for cookie extraction:
// the defaults plus every supported browser with a cookie store on this
// machine, sorted and without duplicates.
func DetectBrowsers(ctx context.Context) []string {
	seen := make(map[string]bool)
	for _, b := range DefaultBrowsers {
		seen[b] = true
	}
	for _, store := range findCookieStores(ctx) {
		name := normalizeBrowser(store.Browser)
		if supportedBrowsers[name] {
			seen[name] = true
		}
	}

	browsers := make([]string, 0, len(seen))
	for b := range seen {
		browsers = append(browsers, b)
	}
	sort.Strings(browsers)
	return browsers
}

// DetectProfiles lists profile names found for browser, default profile first
func DetectProfiles(ctx context.Context, browser string) []string {
	browser = normalizeBrowser(browser)
	if browser == "" {
		return nil
	}

	var defaults, others []string
	seen := make(map[string]bool)
	for _, store := range findCookieStores(ctx) {
		if normalizeBrowser(store.Browser) != browser {
			continue
		}
		profile := strings.TrimSpace(store.Profile)
		if profile == "" || seen[profile] {
			continue
		}
		seen[profile] = true
		if store.IsDefault {
			defaults = append(defaults, profile)
		} else {
			others = append(others, profile)
		}
	}
	sort.Strings(others)
	return append(defaults, others...)
}

func normalizeBrowser(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "google chrome":
		return "chrome"
	case "microsoft edge":
		return "edge"
	}
	return name
}
