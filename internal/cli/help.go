package cli

import (
	"fmt"

	"github.com/fatih/color"
)

var heading = color.New(color.Bold)

const hostHelp = `  pairmux              start the shared session, or join it if running
  pairmux start (s)    same as above
  pairmux stop (st)    stop the shared server and remove the socket
  pairmux kill (k)     same as stop
  pairmux users (u)    list who is attached
  pairmux help (h)     show this help
`

const clientHelp = `  pairmux              reattach your pair session, or mirror the host
  pairmux mirror (m)   view the host session read-only
  pairmux read (r)     same as mirror
  pairmux pair (p)     edit alongside the host in your own session
  pairmux edit (e)     same as pair
  pairmux users (u)    list who is attached
  pairmux help (h)     show this help
`

// printHelp prints the static help text for a role. Help never
// touches the session table.
func (c *CLI) printHelp(role Role) {
	fmt.Fprintf(c.out, "%s\n", heading.Sprintf("pairmux %s commands:", role))
	if role == RoleHost {
		fmt.Fprint(c.out, hostHelp)
	} else {
		fmt.Fprint(c.out, clientHelp)
	}
}

// printUnrecognized reports a command word outside the alias table,
// quoting the token verbatim, then shows the role's help.
func (c *CLI) printUnrecognized(word string, role Role) {
	c.printf("unrecognized command: %q\n\n", word)
	c.printHelp(role)
}
