package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/ytget/yt-dlp-gui/internal/model"
)

// Process is a started child whose combined output can be read
type Process interface {
	// Output returns the combined stdout/stderr stream. It reaches EOF once
	// the child and every descendant holding the pipe have exited.
	Output() io.Reader

	// Wait blocks until the child exits and releases its resources
	Wait() error
}

// ProcessStarter spawns child processes
type ProcessStarter interface {
	Start(ctx context.Context, name string, args []string) (Process, error)
}

// ExecStarter starts real processes with os/exec
type ExecStarter struct{}

// Start launches name with stdout and stderr attached to the same pipe so
// the caller sees the output in the order the child wrote it.
func (ExecStarter) Start(ctx context.Context, name string, args []string) (Process, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create output pipe: %w", err)
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = w
	cmd.Stderr = w

	if err := cmd.Start(); err != nil {
		r.Close()
		w.Close()
		return nil, err
	}

	// The child owns its copy of the write end now.
	w.Close()

	return &execProcess{cmd: cmd, out: r}, nil
}

type execProcess struct {
	cmd *exec.Cmd
	out *os.File
}

func (p *execProcess) Output() io.Reader {
	return p.out
}

func (p *execProcess) Wait() error {
	err := p.cmd.Wait()
	p.out.Close()
	return err
}

// exitCode extracts the child's exit status from a Wait error
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		if code := coder.ExitCode(); code >= 0 {
			return code
		}
	}
	return model.ExitCodeUnknown
}
