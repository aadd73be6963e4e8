package tmux

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestArgs(t *testing.T) {
	client := NewClient("/tmp/pairmux-test")
	args := client.Args("kill-session", "-t", "test")

	expected := []string{"-S", "/tmp/pairmux-test", "kill-session", "-t", "test"}
	if len(args) != len(expected) {
		t.Fatalf("len(args) = %d, want %d", len(args), len(expected))
	}
	for i, want := range expected {
		if args[i] != want {
			t.Errorf("args[%d] = %q, want %q", i, args[i], want)
		}
	}
}

func TestCommand(t *testing.T) {
	client := NewClient("/tmp/pairmux-test")
	cmd := client.Command(context.Background(), "has-session", "-t", "Host")
	args := cmd.Args

	if len(args) != 6 {
		t.Fatalf("expected 6 args, got %d: %v", len(args), args)
	}
	if args[0] != "tmux" {
		t.Errorf("args[0] = %q, want %q", args[0], "tmux")
	}
	if args[1] != "-S" {
		t.Errorf("args[1] = %q, want %q", args[1], "-S")
	}
	if args[2] != "/tmp/pairmux-test" {
		t.Errorf("args[2] = %q, want %q", args[2], "/tmp/pairmux-test")
	}
	if args[3] != "has-session" {
		t.Errorf("args[3] = %q, want %q", args[3], "has-session")
	}
}

func TestSocketPath(t *testing.T) {
	client := NewClient("/tmp/pairmux-demo")
	if got := client.SocketPath(); got != "/tmp/pairmux-demo" {
		t.Errorf("SocketPath() = %q, want %q", got, "/tmp/pairmux-demo")
	}
}

func TestValidateSessionName(t *testing.T) {
	tests := []struct {
		name    string
		session string
		wantErr bool
	}{
		{"simple", "Host", false},
		{"with dash", "pair-alice", false},
		{"with underscore", "alice_smith", false},
		{"digits", "user2", false},
		{"empty", "", true},
		{"dot", "a.b", true},
		{"colon", "a:b", true},
		{"space", "a b", true},
		{"slash", "a/b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSessionName(tt.session)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateSessionName(%q) error = %v, wantErr %v",
					tt.session, err, tt.wantErr)
			}
		})
	}
}

func TestNewSessionRejectsInvalidName(t *testing.T) {
	client := NewClient("/tmp/pairmux-test")
	err := client.NewSession(context.Background(), "bad:name")
	if err == nil {
		t.Fatal("expected error for invalid session name")
	}
	if _, ok := err.(*InvalidSessionNameError); !ok {
		t.Errorf("expected *InvalidSessionNameError, got %T", err)
	}
}

func TestParseClients(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []ClientInfo
	}{
		{
			name:   "empty output",
			output: "",
			want:   nil,
		},
		{
			name:   "single interactive client",
			output: "/dev/pts/3\tHost\t0\n",
			want: []ClientInfo{
				{TTY: "/dev/pts/3", Session: "Host", ReadOnly: false},
			},
		},
		{
			name:   "read-only client",
			output: "/dev/pts/5\tHost\t1\n",
			want: []ClientInfo{
				{TTY: "/dev/pts/5", Session: "Host", ReadOnly: true},
			},
		},
		{
			name:   "multiple sessions",
			output: "/dev/pts/3\tHost\t0\n/dev/pts/5\talice\t0\n",
			want: []ClientInfo{
				{TTY: "/dev/pts/3", Session: "Host", ReadOnly: false},
				{TTY: "/dev/pts/5", Session: "alice", ReadOnly: false},
			},
		},
		{
			name:   "malformed line skipped",
			output: "garbage\n/dev/pts/3\tHost\t0\n",
			want: []ClientInfo{
				{TTY: "/dev/pts/3", Session: "Host", ReadOnly: false},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseClients(tt.output)
			if len(got) != len(tt.want) {
				t.Fatalf("parseClients() returned %d clients, want %d", len(got), len(tt.want))
			}
			for i, want := range tt.want {
				if got[i].TTY != want.TTY {
					t.Errorf("client[%d].TTY = %q, want %q", i, got[i].TTY, want.TTY)
				}
				if got[i].Session != want.Session {
					t.Errorf("client[%d].Session = %q, want %q", i, got[i].Session, want.Session)
				}
				if got[i].ReadOnly != want.ReadOnly {
					t.Errorf("client[%d].ReadOnly = %v, want %v", i, got[i].ReadOnly, want.ReadOnly)
				}
			}
		})
	}
}

func TestIsBenignKillError(t *testing.T) {
	tests := []struct {
		msg  string
		want bool
	}{
		{"no server running on /tmp/pairmux-test", true},
		{"error connecting to /tmp/pairmux-test (server exited unexpectedly)", true},
		{"permission denied", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isBenignKillError(tt.msg); got != tt.want {
			t.Errorf("isBenignKillError(%q) = %v, want %v", tt.msg, got, tt.want)
		}
	}
}

func TestRemoveSocket(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pairmux-test")

	client := NewClient(path)

	// Missing file is not an error.
	if err := client.RemoveSocket(); err != nil {
		t.Errorf("RemoveSocket() on missing file: %v", err)
	}

	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("creating fake socket: %v", err)
	}
	if err := client.RemoveSocket(); err != nil {
		t.Errorf("RemoveSocket() = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("socket file still exists after RemoveSocket")
	}
}

func TestMarkSocketShared(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pairmux-test")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("creating fake socket: %v", err)
	}

	client := NewClient(path)
	if err := client.MarkSocketShared(); err != nil {
		t.Fatalf("MarkSocketShared() = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o777 {
		t.Errorf("socket perm = %o, want 777", info.Mode().Perm())
	}
	if info.Mode()&os.ModeSticky == 0 {
		t.Error("sticky bit not set on socket")
	}
}

func TestMarkSocketSharedMissingFile(t *testing.T) {
	client := NewClient(filepath.Join(t.TempDir(), "absent"))
	if err := client.MarkSocketShared(); err == nil {
		t.Error("expected error marking a missing socket")
	}
}

func TestWithLogf(t *testing.T) {
	var lines []string
	client := NewClient("/tmp/pairmux-test", WithLogf(func(format string, args ...any) {
		lines = append(lines, format)
	}))

	// HasSession traces even though the command fails (no server).
	client.HasSession(context.Background(), "Host")

	if len(lines) != 1 {
		t.Fatalf("expected 1 trace line, got %d", len(lines))
	}
}
