package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jerops/prd-generator/internal/project"
)

type Config struct {
	// ListenAddr is the serve command's bind address. Loopback only.
	ListenAddr string `toml:"listen_addr"`
	// ExportDir overrides where exported documents are written. Empty
	// means the current directory.
	ExportDir string `toml:"export_dir"`
	// Theme is the glamour style used for previews.
	Theme string `toml:"theme"`
}

const DefaultConfigToml = `# prdgen configuration

# Local HTTP API bind address (loopback only).
listen_addr = "127.0.0.1:7468"

# Directory for exported markdown documents. Empty = current directory.
export_dir = ""

# Preview style: dark, light, notty.
theme = "dark"
`

func Default() Config {
	return Config{
		ListenAddr: "127.0.0.1:7468",
		Theme:      "dark",
	}
}

// LoadFromRoot reads the workspace config, falling back to defaults when the
// file is missing. A malformed file is an error; a missing one is not.
func LoadFromRoot(root string) (Config, error) {
	raw, err := os.ReadFile(project.ConfigPath(root))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, err
	}
	cfg := Default()
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = Default().ListenAddr
	}
	if cfg.Theme == "" {
		cfg.Theme = Default().Theme
	}
	return cfg, nil
}

// WriteDefault creates the default config file if none exists yet.
func WriteDefault(root string) error {
	path := project.ConfigPath(root)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(DefaultConfigToml), 0644)
}
