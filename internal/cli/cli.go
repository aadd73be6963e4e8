// Package cli implements the pairmux role dispatcher.
//
// One invocation performs exactly one action: the role (host or
// client) comes from the environment, the action from a single
// optional command word. All session semantics are delegated to the
// external tmux server behind the shared socket; this package only
// decides which multiplexer calls to make.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/micheal-at/pairmux/pkg/config"
	"github.com/micheal-at/pairmux/pkg/tmux"
)

// Version is the pairmux version, overridden at build time via
// -ldflags "-X github.com/micheal-at/pairmux/internal/cli.Version=...".
var Version = "dev"

// Multiplexer abstracts the tmux client for the dispatcher. The
// tmux.Client implements this interface; tests use a recording mock.
type Multiplexer interface {
	// HasSession reports whether the named session currently exists.
	// Queried fresh before every action — the session table changes
	// under concurrent users.
	HasSession(ctx context.Context, name string) bool

	// NewSession creates a detached session, starting the server if
	// needed.
	NewSession(ctx context.Context, name string) error

	// NewGroupedSession creates a detached session in the target
	// session's group.
	NewGroupedSession(ctx context.Context, group, name string) error

	// NewWindow opens a new window in the named session.
	NewWindow(ctx context.Context, session string) error

	// Attach attaches the calling terminal and blocks until detach.
	Attach(ctx context.Context, session string, readOnly bool) error

	// KillServer terminates the whole server; already-stopped is nil.
	KillServer(ctx context.Context) error

	// Broadcast shows a best-effort status message to the session.
	Broadcast(ctx context.Context, session, message string) error

	// ListClients returns all clients attached to the server.
	ListClients(ctx context.Context) ([]tmux.ClientInfo, error)

	// SocketPath returns the shared socket path.
	SocketPath() string

	// MarkSocketShared marks the socket world-writable-sticky.
	MarkSocketShared() error

	// RemoveSocket removes the socket file; missing is nil.
	RemoveSocket() error
}

// CLI dispatches one pairmux invocation.
type CLI struct {
	cfg *config.Config
	mux Multiplexer
	out io.Writer
}

// Option configures a CLI.
type Option func(*CLI)

// WithConfig supplies a pre-built configuration instead of loading
// from the file and environment.
func WithConfig(cfg *config.Config) Option {
	return func(c *CLI) { c.cfg = cfg }
}

// WithMultiplexer supplies the multiplexer implementation. Defaults
// to a tmux client on the configured socket.
func WithMultiplexer(mux Multiplexer) Option {
	return func(c *CLI) { c.mux = mux }
}

// WithOutput redirects status and help output. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(c *CLI) { c.out = w }
}

// New creates a CLI. Without options it loads the configuration and
// targets the real tmux binary on the configured socket.
func New(opts ...Option) (*CLI, error) {
	c := &CLI{out: os.Stdout}
	for _, opt := range opts {
		opt(c)
	}

	if c.cfg == nil {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		c.cfg = cfg
	}

	if c.mux == nil {
		var tmuxOpts []tmux.Option
		if c.cfg.Debug {
			if logf := traceLogger(c.cfg.LogPath()); logf != nil {
				tmuxOpts = append(tmuxOpts, tmux.WithLogf(logf))
			}
		}
		c.mux = tmux.NewClient(c.cfg.SocketPath(), tmuxOpts...)
	}

	return c, nil
}

// Execute runs one invocation with the given arguments (excluding the
// program name) and terminates when the action completes. Attach
// actions block for the whole terminal session.
func (c *CLI) Execute(args []string) error {
	word := ""
	if len(args) > 0 {
		word = args[0]
		switch word {
		case "--version", "-V":
			fmt.Fprintf(c.out, "pairmux %s\n", Version)
			return nil
		case "--help":
			word = "help"
		}
	}

	// Signals are propagated to the foreground tmux process, not
	// caught here; the dispatcher has no cleanup of its own.
	ctx := context.Background()

	if c.cfg.Host {
		return c.runHost(ctx, word)
	}
	return c.runClient(ctx, word)
}

// attach wires the broadcast side effects around a blocking attach:
// a status message to the session's participants immediately before
// attaching and immediately after detaching. Both are best-effort —
// delivery failure never aborts the attach. The attach error itself
// passes through untouched so the external exit status survives.
func (c *CLI) attach(ctx context.Context, session string, readOnly bool, verb, mode string) error {
	c.mux.Broadcast(ctx, session, fmt.Sprintf("%s has %s in %s mode.", c.cfg.User, verb, mode))
	err := c.mux.Attach(ctx, session, readOnly)
	c.mux.Broadcast(ctx, session, fmt.Sprintf("%s has detached.", c.cfg.User))
	return err
}

func (c *CLI) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// traceLogger returns a function that appends external-command trace
// lines to path, each tagged with this invocation's ID so overlapping
// invocations from different users can be told apart. Returns nil if
// the log cannot be opened; tracing is best-effort.
func traceLogger(path string) func(format string, args ...any) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil
	}
	id := uuid.NewString()[:8]
	return func(format string, args ...any) {
		fmt.Fprintf(f, "%s [%s] %s\n",
			time.Now().Format(time.RFC3339), id, fmt.Sprintf(format, args...))
	}
}
