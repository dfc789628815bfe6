package model

import "testing"

func TestCookieSource_BrowserSpec(t *testing.T) {
	tests := []struct {
		browser  string
		profile  string
		expected string
	}{
		{"firefox", "Default", "firefox:Default"},
		{"firefox", "", "firefox"},
		{"chrome", "  Profile 1 ", "chrome:Profile 1"},
		{"brave", "   ", "brave"},
	}

	for _, test := range tests {
		result := CookiesFromBrowser(test.browser, test.profile).BrowserSpec()
		if result != test.expected {
			t.Errorf("BrowserSpec(%q, %q) = %q, expected %q", test.browser, test.profile, result, test.expected)
		}
	}
}

func TestCookieSelection_Resolve(t *testing.T) {
	tests := []struct {
		name      string
		selection CookieSelection
		kind      CookieKind
	}{
		{
			name:      "nothing ticked",
			selection: CookieSelection{Browser: "firefox", FilePath: "/tmp/cookies.txt"},
			kind:      CookieNone,
		},
		{
			name:      "browser only",
			selection: CookieSelection{UseBrowser: true, Browser: "firefox"},
			kind:      CookieFromBrowser,
		},
		{
			name:      "file only",
			selection: CookieSelection{UseFile: true, FilePath: "/tmp/cookies.txt"},
			kind:      CookieFromFile,
		},
		{
			name:      "file wins over browser",
			selection: CookieSelection{UseBrowser: true, Browser: "firefox", UseFile: true, FilePath: "/tmp/cookies.txt"},
			kind:      CookieFromFile,
		},
		{
			name:      "file ticked without a file falls back to browser",
			selection: CookieSelection{UseBrowser: true, Browser: "chrome", UseFile: true},
			kind:      CookieFromBrowser,
		},
		{
			name:      "file ticked without a file and no browser",
			selection: CookieSelection{UseFile: true},
			kind:      CookieNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.selection.Resolve()
			if got.Kind != tt.kind {
				t.Errorf("Expected kind %s, got %s", tt.kind, got.Kind)
			}
		})
	}
}

func TestEvent_Constructors(t *testing.T) {
	line := LineEvent("hello")
	if line.Kind != EventLine || line.Text != "hello" || line.IsCompleted() {
		t.Errorf("Unexpected line event: %+v", line)
	}

	done := CompletedEvent(ExitCodeUnknown)
	if !done.IsCompleted() || done.ExitCode != -1 {
		t.Errorf("Unexpected completed event: %+v", done)
	}
}
