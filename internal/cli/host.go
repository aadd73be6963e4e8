package cli

import (
	"context"
)

// runHost dispatches one host-role invocation.
func (c *CLI) runHost(ctx context.Context, word string) error {
	cmd, ok := ParseHostCommand(word)
	if !ok {
		c.printUnrecognized(word, RoleHost)
		return nil
	}

	switch cmd {
	case HostStart:
		return c.hostStart(ctx)
	case HostStop:
		return c.hostStop(ctx)
	case HostUsers:
		return c.users(ctx)
	case HostHelp:
		c.printHelp(RoleHost)
		return nil
	}
	return nil
}

// hostStart creates the Host session if it does not exist yet and
// attaches to it, blocking until the host detaches. A second start
// while the session is alive just joins it — start is idempotent.
func (c *CLI) hostStart(ctx context.Context) error {
	session := c.cfg.HostSession

	if !c.mux.HasSession(ctx, session) {
		if err := c.mux.NewSession(ctx, session); err != nil {
			return err
		}
		// The socket must be shared before anyone else can mirror or
		// pair. A chmod failure is reported but does not keep the
		// host out of their own session.
		if err := c.mux.MarkSocketShared(); err != nil {
			c.printf("warning: %v\n", err)
		}
	}

	return c.attach(ctx, session, false, "attached", "host")
}

// hostStop terminates the shared server and removes the socket file.
// The two steps are reported independently and both are always
// attempted; a dead server must not leave the socket behind, and a
// stubborn socket must not mask a successful shutdown. A kill failure
// is carried into the exit status after the removal attempt.
func (c *CLI) hostStop(ctx context.Context) error {
	var killErr error
	if killErr = c.mux.KillServer(ctx); killErr != nil {
		c.printf("could not stop the pairmux server: %v\n", killErr)
	} else {
		c.printf("pairmux server stopped.\n")
	}

	socket := c.mux.SocketPath()
	if err := c.mux.RemoveSocket(); err != nil {
		c.printf("could not remove socket %s: %v (check file ownership)\n", socket, err)
	} else {
		c.printf("socket %s removed.\n", socket)
	}

	return killErr
}
