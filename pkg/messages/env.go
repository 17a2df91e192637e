package messages

import "github.com/dmitrymomot/validkit/pkg/config"

// Config selects the catalog file. An empty Path means the default catalog.
type Config struct {
	Path string `env:"MESSAGES_PATH"`
}

// FromEnv loads the catalog named by MESSAGES_PATH.
func FromEnv(opts ...config.Option) (*Catalog, error) {
	var cfg Config
	if err := config.Load(&cfg, opts...); err != nil {
		return nil, err
	}
	return FromConfig(cfg)
}

func FromConfig(cfg Config) (*Catalog, error) {
	if cfg.Path == "" {
		return Default(), nil
	}
	return LoadFile(cfg.Path)
}
