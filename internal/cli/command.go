package cli

// Role identifies which side of the shared session this invocation
// runs as. The role decides the command set; there is no overlap in
// behavior between the two.
type Role int

const (
	// RoleClient attaches to an existing shared session.
	RoleClient Role = iota

	// RoleHost owns the canonical session and the server lifecycle.
	RoleHost
)

func (r Role) String() string {
	if r == RoleHost {
		return "host"
	}
	return "client"
}

// HostCommand enumerates the host-role actions.
type HostCommand int

const (
	// HostStart creates the Host session if absent and attaches.
	// This is also the default for a bare invocation.
	HostStart HostCommand = iota

	// HostStop kills the whole server and removes the socket.
	HostStop

	// HostUsers lists attached participants.
	HostUsers

	// HostHelp prints the host help text.
	HostHelp
)

// ParseHostCommand maps a command word to a host action. The empty
// word is the bare invocation (start-or-join). Matching is exact and
// case-sensitive; ok is false for anything outside the alias table.
func ParseHostCommand(word string) (cmd HostCommand, ok bool) {
	switch word {
	case "", "start", "s":
		return HostStart, true
	case "stop", "st", "kill", "k":
		return HostStop, true
	case "users", "u":
		return HostUsers, true
	case "help", "h":
		return HostHelp, true
	}
	return 0, false
}

// ClientCommand enumerates the client-role actions.
type ClientCommand int

const (
	// ClientAttach is the bare invocation: reattach the user's own
	// pair session if it exists, else mirror the Host session.
	ClientAttach ClientCommand = iota

	// ClientMirror attaches read-only to the Host session.
	ClientMirror

	// ClientPair attaches the user's personal grouped session,
	// creating it on first use.
	ClientPair

	// ClientUsers lists attached participants.
	ClientUsers

	// ClientHelp prints the client help text.
	ClientHelp
)

// ParseClientCommand maps a command word to a client action. The
// empty word is the bare invocation (smart reattach). Matching is
// exact and case-sensitive; ok is false for anything outside the
// alias table.
func ParseClientCommand(word string) (cmd ClientCommand, ok bool) {
	switch word {
	case "":
		return ClientAttach, true
	case "mirror", "m", "read", "r":
		return ClientMirror, true
	case "pair", "p", "edit", "e":
		return ClientPair, true
	case "users", "u":
		return ClientUsers, true
	case "help", "h":
		return ClientHelp, true
	}
	return 0, false
}
