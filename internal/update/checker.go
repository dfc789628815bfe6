// Package update compares the installed yt-dlp with the latest GitHub release.
package update

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/yt-dlp-gui/internal/logger"
)

// DefaultReleasesURL is the GitHub endpoint for the latest yt-dlp release
const DefaultReleasesURL = "https://api.github.com/repos/yt-dlp/yt-dlp/releases/latest"

// DefaultTimeout bounds the release lookup
const DefaultTimeout = 15 * time.Second

// Upgrade hints
const (
	UVUpgradeHint  = "Update available. To upgrade: 'uv pip install -U yt-dlp' (inside your venv)"
	PipUpgradeHint = "Update available. To upgrade: 'python -m pip install -U yt-dlp'"
	UpToDate       = "You are up to date."
)

// VersionRunner runs "<tool> --version". code is the exit status; err is
// set only when the tool could not be run at all.
type VersionRunner func(ctx context.Context, tool string) (output string, code int, err error)

// Checker reports whether the installed tool is current
type Checker struct {
	Tool        string
	ReleasesURL string
	Client      *http.Client
	RunVersion  VersionRunner

	// HasUV reports whether the uv installer is on PATH
	HasUV func() bool

	Logger *zap.SugaredLogger
}

// NewChecker creates a checker with the default release endpoint
func NewChecker(tool string, timeout time.Duration, log *zap.SugaredLogger) *Checker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Checker{
		Tool:        tool,
		ReleasesURL: DefaultReleasesURL,
		Client:      &http.Client{Timeout: timeout},
		RunVersion:  ExecVersion,
		HasUV:       hasUV,
		Logger:      logger.OrNop(log),
	}
}

// ErrVersionUnknown is returned when the tool ran but reported failure
var ErrVersionUnknown = errors.New("could not determine current version")

// CurrentVersion returns the installed version string
func (c *Checker) CurrentVersion(ctx context.Context) (string, error) {
	output, code, err := c.RunVersion(ctx, c.Tool)
	if err != nil {
		return "", err
	}
	if code != 0 {
		return output, fmt.Errorf("%w: exit status %d", ErrVersionUnknown, code)
	}
	return output, nil
}

type release struct {
	TagName string `json:"tag_name"`
	Name    string `json:"name"`
}

// LatestRelease returns the tag of the newest release, falling back to its
// name. An empty string means the response carried neither.
func (c *Checker) LatestRelease(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ReleasesURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP Error %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var r release
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", fmt.Errorf("failed to decode release: %w", err)
	}

	if r.TagName != "" {
		return r.TagName, nil
	}
	return r.Name, nil
}

// Check returns the user-facing report. Failures are reported as lines.
func (c *Checker) Check(ctx context.Context) []string {
	log := logger.OrNop(c.Logger)

	current, err := c.CurrentVersion(ctx)
	if errors.Is(err, ErrVersionUnknown) {
		return []string{fmt.Sprintf("Could not determine current version. Output: %s", current)}
	}
	if err != nil {
		log.Warnw("Version check failed", "tool", c.Tool, "error", err)
		return []string{fmt.Sprintf("Error checking current version: %v", err)}
	}

	lines := []string{fmt.Sprintf("Current yt-dlp version: %s", current)}

	latest, err := c.LatestRelease(ctx)
	if err != nil {
		log.Warnw("Release lookup failed", "url", c.ReleasesURL, "error", err)
		return append(lines, fmt.Sprintf("Error checking latest release: %v", err))
	}
	if latest == "" {
		return append(lines, "Could not determine latest release from GitHub.")
	}

	lines = append(lines, fmt.Sprintf("Latest yt-dlp release: %s", latest))
	if latest == current {
		return append(lines, UpToDate)
	}

	log.Infow("Update available", "current", current, "latest", latest)
	if c.HasUV != nil && c.HasUV() {
		return append(lines, UVUpgradeHint)
	}
	return append(lines, PipUpgradeHint)
}

// ExecVersion runs the tool with --version. The trimmed stdout is returned,
// or stderr when stdout is empty.
func ExecVersion(ctx context.Context, tool string) (string, int, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, tool, "--version")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	output := strings.TrimSpace(stdout.String())
	if output == "" {
		output = strings.TrimSpace(stderr.String())
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return output, exitErr.ExitCode(), nil
	}
	if err != nil {
		return "", 0, err
	}
	return output, 0, nil
}

func hasUV() bool {
	_, err := exec.LookPath("uv")
	return err == nil
}
