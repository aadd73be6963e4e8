// Package config builds the immutable run configuration for pairmux.
//
// Configuration is resolved once at startup from an optional YAML file
// plus environment overrides, and passed explicitly to every action.
// Nothing reads the environment after Load returns.
package config

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

const (
	// EnvHost selects the host role when set to the literal "true".
	// Any other value (or absence) means client.
	EnvHost = "PAIRMUX_HOST"

	// EnvUser overrides the user name used for pair session naming
	// and broadcast messages. Defaults to the OS user.
	EnvUser = "PAIRMUX_USER"

	// EnvSocket overrides the full socket path, bypassing
	// socket_dir/server_name resolution.
	EnvSocket = "PAIRMUX_SOCKET"

	// EnvConfig overrides the config file location.
	EnvConfig = "PAIRMUX_CONFIG"

	// EnvDebug enables the external-command trace log when set to "1".
	EnvDebug = "PAIRMUX_DEBUG"
)

// ConfigFile is the default config file path relative to the user's
// home directory.
const ConfigFile = ".config/pairmux/config.yaml"

// validServerNameRe validates the server name, which becomes part of
// the socket file name.
var validServerNameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Config is the process-wide, read-only configuration. Construct it
// once with Load (or Default in tests) and pass it down; fields must
// not be mutated after that.
type Config struct {
	// SocketDir is the directory holding the shared socket file.
	SocketDir string `yaml:"socket_dir"`

	// ServerName distinguishes servers sharing one SocketDir. The
	// socket file is named "pairmux-<ServerName>".
	ServerName string `yaml:"server_name"`

	// HostSession is the name of the canonical shared session.
	HostSession string `yaml:"host_session"`

	// AllowPair controls whether clients may create pair sessions.
	// When false, pair requests are refused with a notice suggesting
	// mirror mode.
	AllowPair bool `yaml:"allow_pair"`

	// Host is true when this invocation runs in the host role.
	// Resolved from EnvHost, never from the file.
	Host bool `yaml:"-"`

	// User is the participant name used for the pair session and for
	// broadcast messages. Resolved from EnvUser or the OS user.
	User string `yaml:"-"`

	// Debug enables the external-command trace log.
	Debug bool `yaml:"-"`

	// socketOverride is the EnvSocket value, if set.
	socketOverride string
}

// Default returns the built-in configuration: client role, shared
// socket at /tmp/pairmux-pairmux, host session named "Host", pairing
// allowed.
func Default() *Config {
	return &Config{
		SocketDir:   "/tmp",
		ServerName:  "pairmux",
		HostSession: "Host",
		AllowPair:   true,
	}
}

// Load builds the configuration from the config file (if present) and
// the environment. A missing config file is not an error; a malformed
// one is.
func Load() (*Config, error) {
	cfg := Default()

	path := os.Getenv(EnvConfig)
	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ConfigFile)
		}
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.Host = os.Getenv(EnvHost) == "true"
	cfg.Debug = os.Getenv(EnvDebug) == "1"
	cfg.socketOverride = os.Getenv(EnvSocket)

	name := os.Getenv(EnvUser)
	if name == "" {
		u, err := user.Current()
		if err != nil {
			return nil, fmt.Errorf("resolving current user: %w", err)
		}
		name = u.Username
	}
	cfg.User = name

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile overlays settings from a YAML file onto cfg. Absent keys
// keep their current values; a missing file is ignored.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func (c *Config) validate() error {
	if !validServerNameRe.MatchString(c.ServerName) {
		return &InvalidServerNameError{Name: c.ServerName}
	}
	if c.HostSession == "" {
		return fmt.Errorf("host_session must not be empty")
	}
	return nil
}

// SocketPath returns the shared socket path: the EnvSocket override
// if set, otherwise "<socket_dir>/pairmux-<server_name>".
func (c *Config) SocketPath() string {
	if c.socketOverride != "" {
		return c.socketOverride
	}
	return filepath.Join(c.SocketDir, "pairmux-"+c.ServerName)
}

// LogPath returns the debug trace log path, next to the socket.
func (c *Config) LogPath() string {
	return c.SocketPath() + ".log"
}

// InvalidServerNameError indicates a server_name that cannot be used
// in a socket file name.
type InvalidServerNameError struct {
	Name string
}

func (e *InvalidServerNameError) Error() string {
	return fmt.Sprintf("invalid server_name %q: must match %s",
		e.Name, validServerNameRe.String())
}
