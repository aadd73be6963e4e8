package cli

import (
	"context"
)

// users lists everyone attached to the shared server: the resolved
// tty owner, the session they are attached to, and whether they are
// read-only. Available to both roles.
func (c *CLI) users(ctx context.Context) error {
	clients, err := c.mux.ListClients(ctx)
	if err != nil {
		return err
	}
	if len(clients) == 0 {
		c.printf("no one is attached.\n")
		return nil
	}

	for _, client := range clients {
		name := client.User
		if name == "" {
			name = client.TTY
		}
		mode := "interactive"
		if client.ReadOnly {
			mode = "mirror"
		}
		c.printf("%s\t%s\t%s\n", name, client.Session, mode)
	}
	return nil
}
