// Package conf holds the small set of ambient knobs a client or server
// program needs (listen/dial address, log level). The codec and proto packages take
// no configuration of their own: per spec.md §6.4, "no environment
// variables, files, or CLI surface belong to the core" — config is a
// runtime/demo concern, not a framing-library one.
package conf

import (
	"time"

	"github.com/imdario/mergo"
	"github.com/pkg/errors"

	"github.com/yurazsb/framecodecs/pkg/logger"
)

// Config is resolved once at program startup.
type Config struct {
	// Addr is the TCP address to listen on (server) or dial (client).
	Addr string

	// LogLevel is the minimum level the example's logger emits.
	LogLevel logger.Level

	// DialTimeout bounds how long a client waits to connect.
	DialTimeout time.Duration
}

// defaults returns the zero-value-filling half of Config. WithDefault
// merges it in via mergo, so any field the caller already set survives —
// mergo.Merge only touches fields that are still zero on the destination.
func defaults() Config {
	return Config{
		Addr:        ":9090",
		LogLevel:    logger.DEBUG,
		DialTimeout: 5 * time.Second,
	}
}

// WithDefault fills every zero-valued field of c from defaults().
func (c *Config) WithDefault() {
	if err := mergo.Merge(c, defaults()); err != nil {
		panic(errors.Wrap(err, "conf: merge defaults"))
	}
}
