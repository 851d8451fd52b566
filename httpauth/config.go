package httpauth

import (
	"github.com/caarlos0/env/v11"
	"github.com/gribouille/netrc"
)

// Config is the environment-driven configuration for building a Transport,
// for services that wire credential injection without code changes.
type Config struct {
	// Path is the netrc file to load. Empty means the conventional
	// resolution: NETRC env var, then the home directory file.
	Path string `env:"NETRC_FILE"`

	// NoFallback disables the default-entry fallback.
	NoFallback bool `env:"NETRC_NO_FALLBACK" envDefault:"false"`

	// RequestID tags authenticated requests with a generated
	// X-Request-ID header.
	RequestID bool `env:"NETRC_REQUEST_ID" envDefault:"false"`
}

// NewConfig reads a Config from the environment. A prefix can be supplied
// via opts, e.g. env.Options{Prefix: "MYAPP_"}.
func NewConfig(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewTransportFromEnv builds a Transport from environment configuration:
// the configured netrc file is loaded and the flag options applied.
// Additional options (logger, metrics, base transport) are appended after
// the env-derived ones.
func NewTransportFromEnv(opts env.Options, extra ...Option) (*Transport, error) {
	cfg, err := NewConfig(opts)
	if err != nil {
		return nil, err
	}
	return cfg.Transport(extra...)
}

// Transport builds a Transport from the config.
func (c Config) Transport(extra ...Option) (*Transport, error) {
	nrc, err := netrc.Load(c.Path)
	if err != nil {
		return nil, err
	}
	var opts []Option
	if c.NoFallback {
		opts = append(opts, WithoutFallback())
	}
	if c.RequestID {
		opts = append(opts, WithRequestID())
	}
	opts = append(opts, extra...)
	return NewTransport(nrc, opts...), nil
}
