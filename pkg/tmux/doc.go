// Package tmux provides a Go client for driving a shared tmux server
// over a dedicated Unix socket.
//
// Every command targets one server, identified by its socket path and
// injected as the -S flag on each invocation. This makes it impossible
// to accidentally address the user's personal tmux server or forget
// which server a command applies to.
//
// The package focuses on the operations a session-sharing wrapper
// needs, which are not covered by existing Go tmux libraries:
//
//   - Grouped sessions sharing one window set (see [Client.NewGroupedSession])
//   - Read-only foreground attach (see [Client.Attach])
//   - Attached-client enumeration with tty ownership (see [Client.ListClients])
//   - Socket file lifecycle: permission marking and removal
//     (see [Client.MarkSocketShared], [Client.RemoveSocket])
//
// # Requirements
//
// This package requires tmux to be installed and available in PATH.
// Use [Client.IsAvailable] to check availability at runtime.
//
// # Example Usage
//
//	package main
//
//	import (
//	    "context"
//	    "log"
//	    "github.com/micheal-at/pairmux/pkg/tmux"
//	)
//
//	func main() {
//	    ctx := context.Background()
//	    client := tmux.NewClient("/tmp/pairmux-demo")
//
//	    if !client.IsAvailable() {
//	        log.Fatal("tmux is not installed")
//	    }
//
//	    // Create the shared session if this is the first participant.
//	    if !client.HasSession(ctx, "Host") {
//	        if err := client.NewSession(ctx, "Host"); err != nil {
//	            log.Fatal(err)
//	        }
//	    }
//
//	    // Attach read-only; blocks until the user detaches.
//	    if err := client.Attach(ctx, "Host", true); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Grouped Sessions
//
// A pair participant gets a session of their own, created in the host
// session's group (tmux new-session -t Host -s <name>). Grouped
// sessions share the window set but keep an independent current
// window, so each participant can look at a different window of the
// same server. This is what distinguishes "pair" from simply attaching
// a second client to the host session.
//
// # Comparison to Other Libraries
//
// | Feature                    | gotmux | go-tmux | gomux | this package |
// |----------------------------|--------|---------|-------|--------------|
// | Session/window creation    | Yes    | Yes     | Yes   | Yes          |
// | Socket-scoped server       | No     | No      | No    | Yes          |
// | Grouped sessions           | No     | No      | No    | Yes          |
// | Read-only attach           | No     | No      | No    | Yes          |
// | Client listing + tty owner | No     | No      | No    | Yes          |
package tmux
