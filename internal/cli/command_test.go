package cli

import "testing"

func TestParseHostCommand(t *testing.T) {
	tests := []struct {
		word   string
		want   HostCommand
		wantOK bool
	}{
		{"", HostStart, true},
		{"start", HostStart, true},
		{"s", HostStart, true},
		{"stop", HostStop, true},
		{"st", HostStop, true},
		{"kill", HostStop, true},
		{"k", HostStop, true},
		{"users", HostUsers, true},
		{"u", HostUsers, true},
		{"help", HostHelp, true},
		{"h", HostHelp, true},

		// Matching is exact and case-sensitive, no abbreviation
		// beyond the alias list.
		{"Start", 0, false},
		{"STOP", 0, false},
		{"sta", 0, false},
		{"mirror", 0, false},
		{"pair", 0, false},
		{"restart", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, ok := ParseHostCommand(tt.word)
			if ok != tt.wantOK {
				t.Fatalf("ParseHostCommand(%q) ok = %v, want %v", tt.word, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseHostCommand(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestParseClientCommand(t *testing.T) {
	tests := []struct {
		word   string
		want   ClientCommand
		wantOK bool
	}{
		{"", ClientAttach, true},
		{"mirror", ClientMirror, true},
		{"m", ClientMirror, true},
		{"read", ClientMirror, true},
		{"r", ClientMirror, true},
		{"pair", ClientPair, true},
		{"p", ClientPair, true},
		{"edit", ClientPair, true},
		{"e", ClientPair, true},
		{"users", ClientUsers, true},
		{"u", ClientUsers, true},
		{"help", ClientHelp, true},
		{"h", ClientHelp, true},

		{"Mirror", 0, false},
		{"PAIR", 0, false},
		{"mi", 0, false},
		{"start", 0, false},
		{"stop", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, ok := ParseClientCommand(tt.word)
			if ok != tt.wantOK {
				t.Fatalf("ParseClientCommand(%q) ok = %v, want %v", tt.word, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseClientCommand(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestRoleString(t *testing.T) {
	if RoleHost.String() != "host" {
		t.Errorf("RoleHost.String() = %q", RoleHost.String())
	}
	if RoleClient.String() != "client" {
		t.Errorf("RoleClient.String() = %q", RoleClient.String())
	}
}
