package cli

import (
	"context"
	"strings"
)

// runClient dispatches one client-role invocation.
func (c *CLI) runClient(ctx context.Context, word string) error {
	cmd, ok := ParseClientCommand(word)
	if !ok {
		c.printUnrecognized(word, RoleClient)
		return nil
	}

	switch cmd {
	case ClientAttach:
		return c.clientSmartReattach(ctx)
	case ClientMirror:
		return c.clientMirror(ctx)
	case ClientPair:
		return c.clientPair(ctx)
	case ClientUsers:
		return c.users(ctx)
	case ClientHelp:
		c.printHelp(RoleClient)
		return nil
	}
	return nil
}

// clientSmartReattach picks the mode a bare client invocation means:
// the user's own pair session if one exists, else a read-only mirror
// of the Host session, else nothing. The choice is deterministic
// given the server's current session table.
func (c *CLI) clientSmartReattach(ctx context.Context) error {
	pair := c.pairSession()
	if c.mux.HasSession(ctx, pair) {
		return c.attach(ctx, pair, false, "reattached", "pair")
	}
	if c.mux.HasSession(ctx, c.cfg.HostSession) {
		return c.attach(ctx, c.cfg.HostSession, true, "attached", "mirror")
	}
	c.printf("nothing to attach to: no pairmux session is running.\n")
	return nil
}

// clientMirror attaches read-only to the Host session.
func (c *CLI) clientMirror(ctx context.Context) error {
	if !c.mux.HasSession(ctx, c.cfg.HostSession) {
		c.printf("no session to mirror.\n")
		return nil
	}
	return c.attach(ctx, c.cfg.HostSession, true, "attached", "mirror")
}

// clientPair attaches the user's personal session, creating it in the
// Host session's group on first use. The grouped session shares the
// host's windows but navigates them independently; one fresh window
// is opened so the pair participant starts on their own terminal.
func (c *CLI) clientPair(ctx context.Context) error {
	if !c.cfg.AllowPair {
		c.printf("pair mode is disabled on this server; try %q to mirror instead.\n", "pairmux mirror")
		return nil
	}

	pair := c.pairSession()
	if c.mux.HasSession(ctx, pair) {
		return c.attach(ctx, pair, false, "reattached", "pair")
	}

	if !c.mux.HasSession(ctx, c.cfg.HostSession) {
		c.printf("no session to pair with.\n")
		return nil
	}

	if err := c.mux.NewGroupedSession(ctx, c.cfg.HostSession, pair); err != nil {
		return err
	}
	if err := c.mux.NewWindow(ctx, pair); err != nil {
		return err
	}
	return c.attach(ctx, pair, false, "attached", "pair")
}

// pairSession returns this user's pair session name. User names can
// contain characters tmux treats as target syntax (john.doe), so
// anything outside the safe set maps to a dash. The mapping is stable
// per user, which keeps pair sessions idempotent across invocations.
func (c *CLI) pairSession() string {
	return sanitizeSessionName(c.cfg.User)
}

func sanitizeSessionName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}
