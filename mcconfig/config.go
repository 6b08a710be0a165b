// Package mcconfig loads the library's runtime configuration from a YAML
// file: listen address, compression threshold, and the RSA key material
// used for the LOGIN encryption handshake.
package mcconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level server configuration document.
type Config struct {
	ListenAddr string `yaml:"listen_addr"`

	// CompressionThreshold mirrors the LoginSetCompression payload: -1
	// disables compression, 0 compresses everything, N>0 compresses
	// packets of N bytes or more.
	CompressionThreshold int `yaml:"compression_threshold"`

	// PrivateKeyPath points to a PEM-encoded RSA private key used to
	// decrypt the client's shared secret during the LOGIN handshake.
	PrivateKeyPath string `yaml:"private_key_path"`

	ProtocolVersion int    `yaml:"protocol_version"`
	MOTD            string `yaml:"motd"`
	MaxPlayers      int    `yaml:"max_players"`
}

// Defaults mirrors the protocol's own defaults where the document omits a
// field: no compression, protocol 757.
func Defaults() Config {
	return Config{
		ListenAddr:           ":25565",
		CompressionThreshold: -1,
		ProtocolVersion:      757,
		MaxPlayers:           20,
	}
}

// Load reads and parses a YAML config file at path, applying Defaults()
// for any field the file omits. A field the file sets explicitly, even to
// zero, keeps the file's value.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("mcconfig: open %s: %w", path, err)
	}
	defer f.Close()

	cfg := Defaults()
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("mcconfig: parse %s: %w", path, err)
	}
	return cfg, nil
}
