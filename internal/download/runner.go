package download

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/yt-dlp-gui/internal/logger"
	"github.com/ytget/yt-dlp-gui/internal/model"
)

// DefaultEventBuffer is the capacity of each run's event channel
const DefaultEventBuffer = 256

// Runner starts yt-dlp runs and keeps track of them
type Runner struct {
	tool    string
	starter ProcessStarter
	logger  *zap.SugaredLogger
	buffer  int

	mu   sync.RWMutex
	runs map[string]*Handle
}

// Option configures a Runner
type Option func(*Runner)

// WithStarter replaces the process starter
func WithStarter(s ProcessStarter) Option {
	return func(r *Runner) {
		if s != nil {
			r.starter = s
		}
	}
}

// WithLogger sets the diagnostic logger
func WithLogger(l *zap.SugaredLogger) Option {
	return func(r *Runner) {
		r.logger = logger.OrNop(l)
	}
}

// WithBuffer sets the event channel capacity
func WithBuffer(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.buffer = n
		}
	}
}

// NewRunner creates a runner for the given executable
func NewRunner(tool string, opts ...Option) *Runner {
	r := &Runner{
		tool:    tool,
		starter: ExecStarter{},
		logger:  logger.Nop(),
		buffer:  DefaultEventBuffer,
		runs:    make(map[string]*Handle),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Tool returns the executable the runner invokes
func (r *Runner) Tool() string {
	return r.tool
}

// Start launches a run in the background and returns immediately. The
// returned handle always ends with exactly one completion event, even when
// the tool cannot be started. ctx cancellation kills the child.
func (r *Runner) Start(ctx context.Context, req model.DownloadRequest) *Handle {
	h := newHandle(req, r.buffer)

	r.mu.Lock()
	r.runs[h.ID] = h
	r.mu.Unlock()

	go r.run(ctx, h)
	return h
}

// Get returns a run by ID
func (r *Runner) Get(id string) (*Handle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.runs[id]
	return h, ok
}

// Runs returns every known run, oldest first
func (r *Runner) Runs() []*Handle {
	r.mu.RLock()
	runs := make([]*Handle, 0, len(r.runs))
	for _, h := range r.runs {
		runs = append(runs, h)
	}
	r.mu.RUnlock()

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].CreatedAt.Before(runs[j].CreatedAt)
	})
	return runs
}

// Active returns the runs that have not completed yet
func (r *Runner) Active() []*Handle {
	var active []*Handle
	for _, h := range r.Runs() {
		if h.Status().IsActive() {
			active = append(active, h)
		}
	}
	return active
}

// Prune forgets finished runs and returns how many were removed
func (r *Runner) Prune() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, h := range r.runs {
		if h.Status().IsFinished() {
			delete(r.runs, id)
			removed++
		}
	}
	return removed
}

func (r *Runner) run(ctx context.Context, h *Handle) {
	args := BuildArgs(h.Request)
	log := r.logger.With("run", h.ID, "kind", h.Request.Kind())
	log.Debugw("Starting tool", "tool", r.tool, "args", args)

	proc, err := r.starter.Start(ctx, r.tool, args)
	if err != nil {
		log.Warnw("Failed to start tool", "error", err)
		h.send(model.LineEvent("Error: " + err.Error()))
		h.complete(model.RunStatusFailed, model.ExitCodeUnknown)
		return
	}
	h.markStarted()

	lines := 0
	readErr := readLines(proc.Output(), func(line string) {
		lines++
		h.send(model.LineEvent(line))
	})
	if readErr != nil {
		log.Warnw("Failed to read tool output", "error", readErr)
		h.send(model.LineEvent("Error: " + readErr.Error()))

		// The child blocks on a full pipe until the rest is read.
		_, _ = io.Copy(io.Discard, proc.Output())
	}
	waitErr := proc.Wait()

	code := exitCode(waitErr)
	status := model.RunStatusCompleted
	if readErr != nil || code != 0 {
		status = model.RunStatusFailed
	}

	log.Infow("Tool exited", "exit_code", code, "lines", lines, "status", status)
	h.complete(status, code)
}

// Handle is the caller's view of one run
type Handle struct {
	ID        string
	Request   model.DownloadRequest
	CreatedAt time.Time

	events chan model.Event
	done   chan struct{}

	mu         sync.RWMutex
	status     model.RunStatus
	started    bool
	exitCode   int
	finishedAt time.Time
}

func newHandle(req model.DownloadRequest, buffer int) *Handle {
	return &Handle{
		ID:        uuid.New().String(),
		Request:   req,
		CreatedAt: time.Now(),
		events:    make(chan model.Event, buffer),
		done:      make(chan struct{}),
		status:    model.RunStatusPending,
		exitCode:  model.ExitCodeUnknown,
	}
}

// Events returns the run's event stream. Lines arrive in production order,
// the completion event is last and the channel is closed after it. The
// worker blocks while the channel is full, so consumers must drain it.
func (h *Handle) Events() <-chan model.Event {
	return h.events
}

// Done is closed once the run has completed
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Status returns the current lifecycle state
func (h *Handle) Status() model.RunStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.status
}

// Started reports whether the tool process was spawned
func (h *Handle) Started() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.started
}

// ExitCode returns the tool's exit status, or model.ExitCodeUnknown
func (h *Handle) ExitCode() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.exitCode
}

// FinishedAt returns the completion time, zero while the run is active
func (h *Handle) FinishedAt() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.finishedAt
}

// Wait blocks until the run completes or ctx ends
func (h *Handle) Wait(ctx context.Context) error {
	select {
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *Handle) send(e model.Event) {
	h.events <- e
}

func (h *Handle) markStarted() {
	h.mu.Lock()
	h.status = model.RunStatusRunning
	h.started = true
	h.mu.Unlock()
}

// complete records the outcome before publishing the completion event so a
// consumer reacting to it observes the final status.
func (h *Handle) complete(status model.RunStatus, code int) {
	h.mu.Lock()
	h.status = status
	h.exitCode = code
	h.finishedAt = time.Now()
	h.mu.Unlock()

	h.send(model.CompletedEvent(code))
	close(h.events)
	close(h.done)
}
