package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ytget/yt-dlp-gui/internal/download"
	"github.com/ytget/yt-dlp-gui/internal/model"
	"github.com/ytget/yt-dlp-gui/internal/platform"
	"github.com/ytget/yt-dlp-gui/internal/session"
)

// downloadFlags holds the download subcommand's options
type downloadFlags struct {
	audio   bool
	dir     string
	cookies string
	browser string
	profile string
}

func downloadCmd() *cobra.Command {
	var f downloadFlags

	cmd := &cobra.Command{
		Use:   "download <url>",
		Short: "Download one URL without opening the window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, nil)
			if err != nil {
				return err
			}
			defer a.log.Sync()

			return runDownload(cmd.Context(), a, args[0], f, cmd.OutOrStdout(), os.Stderr)
		},
	}

	cmd.Flags().BoolVarP(&f.audio, "audio", "a", false, "extract audio as .mp3")
	cmd.Flags().StringVarP(&f.dir, "dir", "d", "", "download directory (defaults to the saved video or audio directory)")
	cmd.Flags().StringVar(&f.cookies, "cookies", "", "Netscape cookies.txt file")
	cmd.Flags().StringVar(&f.browser, "cookies-from-browser", "", "browser to read cookies from (e.g. firefox)")
	cmd.Flags().StringVar(&f.profile, "profile", "", "browser profile for --cookies-from-browser")

	return cmd
}

func (f downloadFlags) selection() model.CookieSelection {
	return model.CookieSelection{
		UseBrowser: f.browser != "",
		Browser:    f.browser,
		Profile:    f.profile,
		UseFile:    f.cookies != "",
		FilePath:   f.cookies,
	}
}

// runDownload runs one download and persists the last save location. A
// non-zero tool exit is returned as an error.
func runDownload(ctx context.Context, a *app, url string, f downloadFlags, stdout, stderr io.Writer) error {
	dir := f.dir
	if dir == "" {
		dir = a.session.TargetDir(f.audio)
	}

	out := newTerminalOutput(stdout, stderr)
	opts := session.Options{URL: url, AudioOnly: f.audio, Cookies: f.selection()}

	h, err := a.session.Begin(ctx, opts, dir, out)
	if err != nil {
		return err
	}

	// Cancelling ctx kills the child, so this also returns on Ctrl+C.
	<-out.finished

	if err := a.session.Save(a.cfg.SettingsFile); err != nil {
		a.log.Warnw("Failed to save settings", "path", a.cfg.SettingsFile, "error", err)
	}

	return exitError(a.cfg.Tool, h)
}

func exitError(tool string, h *download.Handle) error {
	switch code := h.ExitCode(); code {
	case 0:
		return nil
	case model.ExitCodeUnknown:
		return fmt.Errorf("%s did not run to completion", tool)
	default:
		return fmt.Errorf("%s exited with status %d", tool, code)
	}
}

// terminalOutput prints lines to stdout and renders progress on stderr
type terminalOutput struct {
	mu       sync.Mutex
	stdout   io.Writer
	bar      *progressbar.ProgressBar
	finished chan struct{}
	once     sync.Once
}

// newTerminalOutput creates an output; progress is not rendered when
// stderr is nil.
func newTerminalOutput(stdout, stderr io.Writer) *terminalOutput {
	o := &terminalOutput{
		stdout:   stdout,
		finished: make(chan struct{}),
	}
	if stderr != nil {
		o.bar = progressbar.NewOptions(100,
			progressbar.OptionSetWriter(stderr),
			progressbar.OptionSetDescription("Downloading"),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionSetPredictTime(false),
			progressbar.OptionSetElapsedTime(false),
			progressbar.OptionShowCount(),
		)
	}
	return o
}

func (o *terminalOutput) AppendLine(line string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	// Progress lines are shown by the bar instead
	if o.bar != nil {
		if _, ok := platform.ParseProgress(line); ok {
			return
		}
		_ = o.bar.Clear()
	}
	fmt.Fprintln(o.stdout, line)
}

func (o *terminalOutput) Progress(fraction float64) {
	if o.bar == nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	_ = o.bar.Set(int(fraction * 100))
}

func (o *terminalOutput) DownloadFinished() {
	o.once.Do(func() {
		if o.bar != nil {
			o.mu.Lock()
			_ = o.bar.Finish()
			o.mu.Unlock()
		}
		close(o.finished)
	})
}
