package core

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/untoldecay/mvcs/internal/fsprovider"
)

// Config is the optional per-repository configuration stored at
// <workdir>/.mvcs/config.toml.
type Config struct {
	HashAlgo        string   `toml:"hash-algo"`
	IgnoreGlobs     []string `toml:"ignore"`
	MinPrefixLength int      `toml:"min-prefix-length"`
	HashCache       string   `toml:"hash-cache"` // "memory" (default) or "sqlite"
	SummarizeOnCommit bool   `toml:"summarize-on-commit"`
}

// DefaultConfig returns the configuration used when no config.toml exists.
func DefaultConfig() Config {
	return Config{
		HashAlgo:        fsprovider.DefaultHashAlgo,
		IgnoreGlobs:     nil,
		MinPrefixLength: 6,
		HashCache:       "memory",
	}
}

func loadConfig(fs fsprovider.Provider, projectDir string) (Config, error) {
	cfg := DefaultConfig()
	path := projectDir + string(os.PathSeparator) + "config.toml"
	if !fs.Exists(path) {
		return cfg, nil
	}
	f, err := fs.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	data, err := f.ReadData()
	if err != nil {
		return cfg, err
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, err
	}
	if cfg.MinPrefixLength <= 0 {
		cfg.MinPrefixLength = 6
	}
	if cfg.HashAlgo == "" {
		cfg.HashAlgo = fsprovider.DefaultHashAlgo
	}
	return cfg, nil
}
