// Package session holds the state of one application session and drives a
// download from user input to the final "Download finished." line. It has
// no widget code; the window talks to it through the Output interface.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ytget/yt-dlp-gui/internal/config"
	"github.com/ytget/yt-dlp-gui/internal/download"
	"github.com/ytget/yt-dlp-gui/internal/logger"
	"github.com/ytget/yt-dlp-gui/internal/model"
	"github.com/ytget/yt-dlp-gui/internal/platform"
)

// FinishedLine is appended after the tool's last line once the tool ran
const FinishedLine = "Download finished."

// ErrBusy is returned by Begin while a download is in flight
var ErrBusy = errors.New("a download is already running")

// Output receives everything a run produces. All calls for one run come
// from a single background goroutine, in order.
type Output interface {
	AppendLine(line string)
	Progress(fraction float64)
	DownloadFinished()
}

// Options is the user input for one download
type Options struct {
	URL       string
	AudioOnly bool
	Cookies   model.CookieSelection
}

// PlaylistInspector summarizes a playlist URL
type PlaylistInspector interface {
	Inspect(ctx context.Context, url string) (*model.PlaylistSummary, error)
}

// UpdateChecker produces the version report
type UpdateChecker interface {
	Check(ctx context.Context) []string
}

// Session owns the settings and the single active run
type Session struct {
	runner    *download.Runner
	inspector PlaylistInspector
	checker   UpdateChecker
	logger    *zap.SugaredLogger

	mu       sync.Mutex
	settings config.AppSettings
	busy     bool
}

// Option configures a Session
type Option func(*Session)

// WithInspector enables playlist inspection before downloads
func WithInspector(i PlaylistInspector) Option {
	return func(s *Session) { s.inspector = i }
}

// WithChecker sets the version checker
func WithChecker(c UpdateChecker) Option {
	return func(s *Session) { s.checker = c }
}

// WithLogger sets the diagnostic logger
func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *Session) { s.logger = logger.OrNop(l) }
}

// New creates a session around loaded settings
func New(settings config.AppSettings, runner *download.Runner, opts ...Option) *Session {
	s := &Session{
		runner:   runner,
		settings: settings,
		logger:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Settings returns a copy of the current settings
func (s *Session) Settings() config.AppSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// TargetDir returns the configured directory for the download kind
func (s *Session) TargetDir(audioOnly bool) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if audioOnly {
		return s.settings.AudioDir
	}
	return s.settings.VideoDir
}

// SetVideoDir changes the default video directory
func (s *Session) SetVideoDir(dir string) {
	s.mu.Lock()
	s.settings.VideoDir = dir
	s.mu.Unlock()
}

// SetAudioDir changes the default audio directory
func (s *Session) SetAudioDir(dir string) {
	s.mu.Lock()
	s.settings.AudioDir = dir
	s.mu.Unlock()
}

// LastSaveDir returns the directory of the most recent download
func (s *Session) LastSaveDir() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.LastSaveDir
}

// SetWindowSize records the window geometry to persist
func (s *Session) SetWindowSize(width, height float32) {
	s.mu.Lock()
	s.settings.WindowSize = &config.WindowSize{Width: width, Height: height}
	s.mu.Unlock()
}

// Save writes the settings file
func (s *Session) Save(path string) error {
	return config.SaveSettings(path, s.Settings())
}

// Busy reports whether a download is in flight
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Begin validates the input, writes the preamble and starts the tool. Input
// errors are returned before anything is spawned. The remaining output,
// ending with DownloadFinished, is delivered to out from a
// background goroutine.
func (s *Session) Begin(ctx context.Context, opts Options, targetDir string, out Output) (*download.Handle, error) {
	req, err := model.NewDownloadRequest(opts.URL, targetDir, opts.AudioOnly, opts.Cookies.Resolve())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	s.busy = true
	s.settings.LastSaveDir = targetDir
	s.mu.Unlock()

	out.Progress(0)
	out.AppendLine(fmt.Sprintf("Starting %s download: %s", req.Kind(), req.URL))
	out.AppendLine(fmt.Sprintf("Download directory: %s", req.TargetDirectory))
	switch req.Cookies.Kind {
	case model.CookieFromFile:
		out.AppendLine(fmt.Sprintf("Using cookies file: %s", req.Cookies.File))
	case model.CookieFromBrowser:
		out.AppendLine(fmt.Sprintf("Using cookies from browser: %s", req.Cookies.BrowserSpec()))
	}

	s.logger.Infow("Download requested",
		"url", req.URL,
		"kind", req.Kind(),
		"dir", req.TargetDirectory,
		"cookies", req.Cookies.Kind.String(),
	)

	h := s.runner.Start(ctx, req)
	go s.pump(ctx, h, out)
	return h, nil
}

func (s *Session) pump(ctx context.Context, h *download.Handle, out Output) {
	if s.inspector != nil && platform.IsPlaylistURL(h.Request.URL) {
		s.describePlaylist(ctx, h.Request.URL, out)
	}

	for e := range h.Events() {
		if e.IsCompleted() {
			s.logger.Infow("Download finished", "run", h.ID, "exit_code", e.ExitCode, "status", h.Status())
			break
		}
		out.AppendLine(e.Text)
		if p, ok := platform.ParseProgress(e.Text); ok {
			out.Progress(p.Fraction())
		}
	}

	// A spawn failure ends with its error line alone.
	if h.Started() {
		out.AppendLine(FinishedLine)
	}

	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
	s.runner.Prune()

	out.DownloadFinished()
}

func (s *Session) describePlaylist(ctx context.Context, url string, out Output) {
	summary, err := s.inspector.Inspect(ctx, url)
	if err != nil {
		s.logger.Debugw("Playlist inspection failed", "url", url, "error", err)
		return
	}
	out.AppendLine(fmt.Sprintf("Playlist: %s (%d videos)", summary.DisplayTitle(), summary.Count()))
}

// CheckForUpdates appends the version report to out. It blocks until the
// check completes.
func (s *Session) CheckForUpdates(ctx context.Context, out Output) {
	if s.checker == nil {
		return
	}
	for _, line := range s.checker.Check(ctx) {
		out.AppendLine(line)
	}
}
