// Package config loads the named connection profiles the runner routes
// statements to. A profile file is yaml or toml, picked by extension.
package config

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the top-level connections file.
type Config struct {
	Default     string                `yaml:"default" toml:"default"`         // name of the connection used when no directive applies
	Connections map[string]Connection `yaml:"connections" toml:"connections"` // named connection profiles
}

// Connection describes a single cassandra target.
type Connection struct {
	Name        string   `yaml:"-" toml:"-"` // set from the map key
	Hosts       []string `yaml:"hosts" toml:"hosts"`
	Port        int      `yaml:"port" toml:"port"`
	Keyspace    string   `yaml:"keyspace" toml:"keyspace"`
	Username    string   `yaml:"username" toml:"username"`
	Password    string   `yaml:"password" toml:"password"`
	Consistency string   `yaml:"consistency" toml:"consistency"`
	TimeoutSec  int      `yaml:"timeout_sec" toml:"timeout_sec"`
}

// Overrides defines values passed from cli, overriding the file.
type Overrides struct {
	Default  string
	Username string
	Password string
}

// New loads a connections file and applies overrides and defaults.
func New(fname string, overrides *Overrides) (*Config, error) {
	log.Printf("[DEBUG] request to load connections file %q", fname)

	data, err := os.ReadFile(fname) // nolint
	if err != nil {
		return nil, fmt.Errorf("can't read connections file %q: %w", fname, err)
	}

	res := &Config{}
	switch {
	case strings.HasSuffix(fname, ".yml") || strings.HasSuffix(fname, ".yaml") || !strings.Contains(fname, "."):
		yamlDecoder := yaml.NewDecoder(bytes.NewReader(data))
		yamlDecoder.KnownFields(true) // strict mode, fail on unknown fields
		if err = yamlDecoder.Decode(res); err != nil {
			return nil, fmt.Errorf("can't unmarshal yaml connections file %s: %w", fname, err)
		}
	case strings.HasSuffix(fname, ".toml"):
		if err = toml.Unmarshal(data, res); err != nil {
			return nil, fmt.Errorf("can't unmarshal toml connections file %s: %w", fname, err)
		}
	default:
		return nil, fmt.Errorf("unknown config format %s", fname)
	}

	res.applyOverrides(overrides)
	res.applyDefaults()

	if err = res.check(); err != nil {
		return nil, fmt.Errorf("config %s is invalid: %w", fname, err)
	}

	log.Printf("[INFO] loaded %d connections, default %q", len(res.Connections), res.Default)
	return res, nil
}

func (c *Config) applyOverrides(overrides *Overrides) {
	if overrides == nil {
		return
	}
	if overrides.Default != "" {
		c.Default = overrides.Default
	}
	for name, conn := range c.Connections {
		if overrides.Username != "" {
			conn.Username = overrides.Username
		}
		if overrides.Password != "" {
			conn.Password = overrides.Password
		}
		c.Connections[name] = conn
	}
}

func (c *Config) applyDefaults() {
	for name, conn := range c.Connections {
		conn.Name = name
		if conn.Port == 0 {
			conn.Port = 9042
		}
		if conn.Consistency == "" {
			conn.Consistency = "quorum"
		}
		if conn.TimeoutSec == 0 {
			conn.TimeoutSec = 10
		}
		c.Connections[name] = conn
	}
	if c.Default == "" && len(c.Connections) == 1 {
		for name := range c.Connections {
			c.Default = name // a single connection is the implied default
		}
	}
}

// check validates the loaded config, all problems reported at once.
func (c *Config) check() error {
	errs := new(multierror.Error)

	if len(c.Connections) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("no connections defined"))
	}
	for name, conn := range c.Connections {
		if len(conn.Hosts) == 0 {
			errs = multierror.Append(errs, fmt.Errorf("connection %q has no hosts", name))
		}
	}
	if c.Default == "" {
		errs = multierror.Append(errs, fmt.Errorf("no default connection set"))
	}
	if _, ok := c.Connections[c.Default]; c.Default != "" && !ok {
		errs = multierror.Append(errs, fmt.Errorf("default connection %q not defined", c.Default))
	}

	return errs.ErrorOrNil()
}

// Conn returns a connection profile by name.
func (c *Config) Conn(name string) (Connection, bool) {
	conn, ok := c.Connections[name]
	return conn, ok
}

// Names returns all connection names, sorted.
func (c *Config) Names() []string {
	res := make([]string, 0, len(c.Connections))
	for name := range c.Connections {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}
