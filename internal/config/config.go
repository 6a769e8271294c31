// Package config holds the includer settings and reads the optional
// includer.hcl file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/fwessels/includer/internal/preprocessor"
)

// DefaultFile is read from the working directory when present.
const DefaultFile = "includer.hcl"

type Config struct {
	LibraryDirs []string `hcl:"library_dirs,optional"`
	MaxDepth    int      `hcl:"max_depth,optional"`
	LogLevel    string   `hcl:"log_level,optional"`
	LogFormat   string   `hcl:"log_format,optional"`
}

func Default() Config {
	return Config{
		LibraryDirs: append([]string(nil), preprocessor.DefaultDirs[1:]...),
		MaxDepth:    preprocessor.DefaultMaxDepth,
		LogLevel:    "warn",
		LogFormat:   "text",
	}
}

// SearchDirs is the working directory followed by the library directories.
func (c Config) SearchDirs() []string {
	return append([]string{"."}, c.LibraryDirs...)
}

// Load decodes path over the defaults. A missing file is an error only
// when required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	var file Config
	if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	cfg = cfg.Merge(file)
	return cfg, cfg.Validate()
}

// Merge returns c with every non-zero field of o applied.
func (c Config) Merge(o Config) Config {
	if o.LibraryDirs != nil {
		c.LibraryDirs = o.LibraryDirs
	}
	if o.MaxDepth != 0 {
		c.MaxDepth = o.MaxDepth
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.LogFormat != "" {
		c.LogFormat = o.LogFormat
	}
	return c
}

func (c Config) Validate() error {
	if c.MaxDepth <= 0 {
		return fmt.Errorf("invalid max_depth %d: must be positive", c.MaxDepth)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q: must be 'text' or 'json'", c.LogFormat)
	}
	return nil
}
