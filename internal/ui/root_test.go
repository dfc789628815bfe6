package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/yt-dlp-gui/internal/config"
	"github.com/ytget/yt-dlp-gui/internal/download"
	"github.com/ytget/yt-dlp-gui/internal/platform"
	"github.com/ytget/yt-dlp-gui/internal/session"
)

type noopProcess struct{}

func (noopProcess) Output() io.Reader { return strings.NewReader("") }
func (noopProcess) Wait() error       { return nil }

type noopStarter struct{}

func (noopStarter) Start(context.Context, string, []string) (download.Process, error) {
	return noopProcess{}, nil
}

func newTestUI(t *testing.T, settings config.AppSettings) *RootUI {
	t.Helper()
	test.NewApp()
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	runner := download.NewRunner("yt-dlp", download.WithStarter(noopStarter{}))
	sess := session.New(settings, runner)
	return NewRootUI(context.Background(), w, sess, t.TempDir()+"/app_config.json", nil)
}

func TestRootUI_EmptyURL(t *testing.T) {
	ui := newTestUI(t, config.AppSettings{VideoDir: t.TempDir(), AudioDir: t.TempDir()})

	ui.urlEntry.SetText("   ")
	ui.onDownloadClick()

	lines := ui.log.Lines()
	if len(lines) != 1 || lines[0] != MsgEnterURL {
		t.Errorf("Expected %q, got %q", MsgEnterURL, lines)
	}
	if ui.downloadBtn.Disabled() {
		t.Error("Expected download button to stay enabled")
	}
}

func TestRootUI_InvalidTargetDirectory(t *testing.T) {
	ui := newTestUI(t, config.AppSettings{VideoDir: "/definitely/not/here", AudioDir: t.TempDir()})

	ui.urlEntry.SetText("http://x/y")
	ui.onDownloadClick()

	lines := ui.log.Lines()
	if len(lines) == 0 || !strings.HasPrefix(lines[len(lines)-1], "Error: ") {
		t.Errorf("Expected an error line, got %q", lines)
	}
	if ui.downloadBtn.Disabled() {
		t.Error("Expected download button to be re-enabled after an input error")
	}
}

func TestRootUI_CookieWidgetsFollowChecks(t *testing.T) {
	ui := newTestUI(t, config.AppSettings{VideoDir: t.TempDir(), AudioDir: t.TempDir()})

	if !ui.browserSelect.Disabled() || !ui.profileEntry.Disabled() {
		t.Error("Expected browser widgets to start disabled")
	}
	if !ui.cookiesFileBtn.Disabled() {
		t.Error("Expected cookies file button to start disabled")
	}

	ui.browserCheck.SetChecked(true)
	if ui.browserSelect.Disabled() || ui.profileEntry.Disabled() {
		t.Error("Expected browser widgets to be enabled")
	}

	ui.cookiesFileCheck.SetChecked(true)
	if ui.cookiesFileBtn.Disabled() {
		t.Error("Expected cookies file button to be enabled")
	}

	ui.profileEntry.SetText("Default")
	ui.cookiesFilePath = "/tmp/cookies.txt"
	sel := ui.cookieSelection()
	if !sel.UseBrowser || sel.Browser == "" || sel.Profile != "Default" || !sel.UseFile || sel.FilePath != "/tmp/cookies.txt" {
		t.Errorf("Unexpected cookie selection: %+v", sel)
	}
}

func TestRootUI_LastSaveButton(t *testing.T) {
	dir := t.TempDir()

	ui := newTestUI(t, config.AppSettings{VideoDir: dir, AudioDir: dir})
	if !ui.lastSaveBtn.Disabled() {
		t.Error("Expected last save button disabled without a last save dir")
	}

	ui = newTestUI(t, config.AppSettings{VideoDir: dir, AudioDir: dir, LastSaveDir: dir})
	if ui.lastSaveBtn.Disabled() {
		t.Error("Expected last save button enabled for an existing directory")
	}
}

func TestRootUI_RestoresWindowSize(t *testing.T) {
	ui := newTestUI(t, config.AppSettings{
		VideoDir:   t.TempDir(),
		AudioDir:   t.TempDir(),
		WindowSize: &config.WindowSize{Width: 900, Height: 700},
	})

	size := ui.window.Canvas().Size()
	if size.Width < 900 || size.Height < 700 {
		t.Errorf("Expected at least 900x700, got %vx%v", size.Width, size.Height)
	}
}

func TestLogView_Append(t *testing.T) {
	test.NewApp()
	v := newLogView(3)

	for i := 0; i < 5; i++ {
		v.Append(fmt.Sprintf("line %d", i))
	}

	want := []string{"line 2", "line 3", "line 4"}
	got := v.Lines()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if v.label.Text != strings.Join(want, "\n") {
		t.Errorf("Unexpected label text: %q", v.label.Text)
	}
}

func TestLogView_AppendBatch(t *testing.T) {
	test.NewApp()
	v := newLogView(4)

	v.Append("a")
	v.Append("b", "c", "d", "e")
	v.Append()

	want := []string{"b", "c", "d", "e"}
	if got := v.Lines(); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWindowOutput_FlushesQueuedLines(t *testing.T) {
	ui := newTestUI(t, config.AppSettings{VideoDir: t.TempDir(), AudioDir: t.TempDir()})

	for i := 0; i < 3; i++ {
		ui.outputTarget.AppendLine(fmt.Sprintf("line %d", i))
	}
	ui.outputTarget.AppendLine("")
	fyne.DoAndWait(func() {})

	want := []string{"line 0", "line 1", "line 2", ""}
	got := ui.log.Lines()
	if strings.Join(got, "|") != strings.Join(want, "|") || len(got) != len(want) {
		t.Errorf("Expected %q, got %q", want, got)
	}

	ui.outputTarget.mu.Lock()
	defer ui.outputTarget.mu.Unlock()
	if len(ui.outputTarget.pending) != 0 || ui.outputTarget.scheduled {
		t.Errorf("Expected empty queue after flush, got %q scheduled=%v", ui.outputTarget.pending, ui.outputTarget.scheduled)
	}
}

func TestFolderErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		dir  string
		want string
	}{
		{"no folder", platform.ErrNoFolder, "", MsgNoFolder},
		{"missing", fmt.Errorf("open: %w", platform.ErrFolderMissing), " /x/y ", fmt.Sprintf(MsgFolderMissing, "/x/y")},
		{"other", errors.New("xdg-open failed"), "/x/y", fmt.Sprintf(MsgFolderOpenError, "/x/y")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := folderErrorMessage(tt.err, tt.dir); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRootUI_OpenDirectoryShowsWarning(t *testing.T) {
	ui := newTestUI(t, config.AppSettings{VideoDir: t.TempDir(), AudioDir: t.TempDir()})

	ui.openDirectory("   ")

	if ui.window.Canvas().Overlays().Top() == nil {
		t.Error("Expected a warning dialog for an empty folder")
	}
}
