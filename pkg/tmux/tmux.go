package tmux

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"regexp"
	"strings"
	"syscall"
)

// validSessionNameRe validates session names before they reach tmux.
// Dots and colons are tmux target syntax and cause cryptic failures.
var validSessionNameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Client drives one tmux server identified by its Unix socket path.
// All commands go through Client, which injects the -S flag
// automatically. The zero value is not usable; construct with
// NewClient.
type Client struct {
	socketPath string
	logf       func(format string, args ...any)
}

// Option configures a Client.
type Option func(*Client)

// WithLogf installs a trace function called with every external tmux
// command line before it runs. Used for debug logging.
func WithLogf(logf func(format string, args ...any)) Option {
	return func(c *Client) {
		c.logf = logf
	}
}

// NewClient creates a Client targeting the tmux server at socketPath.
// The server does not need to be running; tmux starts it on the first
// session-creating command.
func NewClient(socketPath string, opts ...Option) *Client {
	c := &Client{socketPath: socketPath}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SocketPath returns the Unix socket path that identifies this server.
func (c *Client) SocketPath() string {
	return c.socketPath
}

// IsAvailable checks if the tmux binary is available in PATH.
func (c *Client) IsAvailable() bool {
	_, err := exec.LookPath("tmux")
	return err == nil
}

// Args returns the full tmux argument list for a subcommand, with the
// -S socket flag prepended. Useful for display and for building
// commands outside this package.
func (c *Client) Args(args ...string) []string {
	return append([]string{"-S", c.socketPath}, args...)
}

// Command returns an *exec.Cmd for a tmux subcommand without running
// it. The -S flag is prepended; the caller controls Stdin, Stdout,
// and Stderr before starting the process. This is the escape hatch
// for commands that don't have a dedicated method.
func (c *Client) Command(ctx context.Context, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, "tmux", c.Args(args...)...)
}

// run executes a tmux subcommand and returns its combined output.
func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	c.trace(args)
	output, err := c.Command(ctx, args...).CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("tmux %s: %w (%s)",
			args[0], err, strings.TrimSpace(string(output)))
	}
	return string(output), nil
}

func (c *Client) trace(args []string) {
	if c.logf != nil {
		c.logf("tmux %s", strings.Join(c.Args(args...), " "))
	}
}

// HasSession reports whether a session with the given name exists on
// this server. Returns false if the server is not running. The check
// is a fresh query every time; other users mutate the session table
// concurrently, so callers must not cache the result.
func (c *Client) HasSession(ctx context.Context, name string) bool {
	c.trace([]string{"has-session", "-t", name})
	return c.Command(ctx, "has-session", "-t", name).Run() == nil
}

// NewSession creates a detached session on this server. Starting the
// first session also starts the server and creates the socket file.
func (c *Client) NewSession(ctx context.Context, name string) error {
	if err := validateSessionName(name); err != nil {
		return err
	}
	_, err := c.run(ctx, "new-session", "-d", "-s", name)
	return err
}

// NewGroupedSession creates a detached session in the target session's
// group. Grouped sessions share one window set but keep independent
// current windows, so the new session sees the group's windows while
// navigating them on its own.
func (c *Client) NewGroupedSession(ctx context.Context, group, name string) error {
	if err := validateSessionName(name); err != nil {
		return err
	}
	_, err := c.run(ctx, "new-session", "-d", "-t", group, "-s", name)
	return err
}

// NewWindow opens a new window in the named session.
func (c *Client) NewWindow(ctx context.Context, session string) error {
	_, err := c.run(ctx, "new-window", "-t", session+":")
	return err
}

// Attach attaches the calling terminal to the named session and
// blocks until the user detaches or the session dies. When readOnly
// is true the client cannot send input (-r).
//
// The tmux process inherits this process's stdin, stdout, and stderr;
// the call can block indefinitely while the user works. The returned
// error wraps tmux's own failure (including *exec.ExitError) so
// callers can pass the exit status through.
func (c *Client) Attach(ctx context.Context, session string, readOnly bool) error {
	args := []string{"attach-session", "-t", session}
	if readOnly {
		args = append(args, "-r")
	}
	c.trace(args)
	cmd := c.Command(ctx, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("tmux attach-session %q: %w", session, err)
	}
	return nil
}

// KillServer terminates the entire tmux server, stopping all
// sessions. Returns nil if the server was already stopped — that is a
// normal condition during cleanup, not an error. The "server exited
// unexpectedly" message appears when the socket file lingers briefly
// after the server process has exited.
func (c *Client) KillServer(ctx context.Context) error {
	c.trace([]string{"kill-server"})
	output, err := c.Command(ctx, "kill-server").CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(output))
		if isBenignKillError(msg) {
			return nil
		}
		return fmt.Errorf("tmux kill-server: %w (%s)", err, msg)
	}
	return nil
}

// isBenignKillError reports whether a kill-server failure means the
// server was already gone, which is the outcome the caller wanted.
func isBenignKillError(msg string) bool {
	return strings.Contains(msg, "no server running") ||
		strings.Contains(msg, "server exited unexpectedly")
}

// Broadcast shows a status message to the named session's
// participants via display-message. Delivery is inherently
// best-effort: the session may be gone, or no client may be watching.
// Callers are expected to ignore the returned error on
// notification-only paths.
func (c *Client) Broadcast(ctx context.Context, session, message string) error {
	_, err := c.run(ctx, "display-message", "-t", session, message)
	return err
}

// ClientInfo describes one client attached to the server.
type ClientInfo struct {
	// TTY is the client's terminal device path.
	TTY string

	// Session is the name of the session the client is attached to.
	Session string

	// ReadOnly is true for clients attached with -r.
	ReadOnly bool

	// User is the owner of the client's tty, resolved by stat. Empty
	// when the tty cannot be inspected (e.g. the device is gone).
	User string
}

// ListClients returns all clients attached to this server, across all
// sessions. Returns an empty slice if the server is not running.
func (c *Client) ListClients(ctx context.Context) ([]ClientInfo, error) {
	output, err := c.run(ctx, "list-clients", "-F",
		"#{client_tty}\t#{client_session}\t#{client_readonly}")
	if err != nil {
		// No server means no clients.
		if strings.Contains(err.Error(), "no server running") {
			return nil, nil
		}
		return nil, err
	}

	clients := parseClients(output)
	for i := range clients {
		clients[i].User = ttyOwner(clients[i].TTY)
	}
	return clients, nil
}

// parseClients parses list-clients output in the tab-separated format
// used by ListClients. Malformed lines are skipped.
func parseClients(output string) []ClientInfo {
	var clients []ClientInfo
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Split(line, "\t")
		if len(fields) != 3 || fields[0] == "" {
			continue
		}
		clients = append(clients, ClientInfo{
			TTY:      fields[0],
			Session:  fields[1],
			ReadOnly: fields[2] == "1",
		})
	}
	return clients
}

// ttyOwner returns the user name owning the tty device, or "" if the
// device cannot be inspected or the uid has no passwd entry.
func ttyOwner(tty string) string {
	var st syscall.Stat_t
	if err := syscall.Stat(tty, &st); err != nil {
		return ""
	}
	u, err := user.LookupId(fmt.Sprintf("%d", st.Uid))
	if err != nil {
		return ""
	}
	return u.Username
}

// MarkSocketShared marks the socket file world-writable with the
// sticky bit set (mode 1777), so other users can connect to the
// shared server while only owners can remove the file. tmux creates
// the socket owner-only; this must be called after the server starts.
func (c *Client) MarkSocketShared() error {
	if err := os.Chmod(c.socketPath, 0o777|os.ModeSticky); err != nil {
		return fmt.Errorf("marking socket shared: %w", err)
	}
	return nil
}

// RemoveSocket removes the socket file from the file system. A
// missing file is not an error; removal after the server is already
// gone is the normal stop path.
func (c *Client) RemoveSocket() error {
	if err := os.Remove(c.socketPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// validateSessionName checks that a session name contains only safe
// characters. Returns ErrInvalidSessionName if the name contains
// dots, colons, or other characters tmux interprets as target syntax.
func validateSessionName(name string) error {
	if name == "" || !validSessionNameRe.MatchString(name) {
		return &InvalidSessionNameError{Name: name}
	}
	return nil
}

// InvalidSessionNameError indicates a session name that tmux would
// misinterpret as target syntax.
type InvalidSessionNameError struct {
	Name string
}

func (e *InvalidSessionNameError) Error() string {
	return fmt.Sprintf("invalid session name %q: must match %s",
		e.Name, validSessionNameRe.String())
}
