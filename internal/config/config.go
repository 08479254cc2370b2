// Package config contains all knobs and defaults used to configure graphkb
// when it runs from the command line.
package config

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

const (
	DefaultDatastoreEngine      = "memory"
	DefaultMaxOpenConns         = 30
	DefaultMaxIdleConns         = 10
	DefaultDatastorePingTimeout = time.Minute
	DefaultTraceSampleRatio     = 0.2
	DefaultTraceServiceName     = "graphkb"
	DefaultOTLPEndpoint         = "0.0.0.0:4317"
)

// Engines lists the supported datastore engines.
var Engines = []string{"memory", "sqlite", "postgres", "mysql"}

var logLevels = []string{"none", "debug", "info", "warn", "error", "panic", "fatal"}

type DatastoreMetricsConfig struct {
	// Enabled enables export of the Datastore connection pool metrics.
	Enabled bool
}

// DatastoreConfig defines the datastore the CLI reads and writes.
type DatastoreConfig struct {
	// Engine is the datastore engine to use (e.g. 'memory', 'sqlite', 'postgres', 'mysql')
	Engine   string
	URI      string
	Username string
	Password string

	// MaxOpenConns is the maximum number of open connections to the database.
	MaxOpenConns int

	// MaxIdleConns is the maximum number of connections to the datastore in the idle connection
	// pool.
	MaxIdleConns int

	// ConnMaxIdleTime is the maximum amount of time a connection to the datastore may be idle.
	ConnMaxIdleTime time.Duration

	// ConnMaxLifetime is the maximum amount of time a connection to the datastore may be reused.
	ConnMaxLifetime time.Duration

	// PingTimeout is how long to wait for the datastore to accept connections.
	PingTimeout time.Duration

	// Metrics is configuration for the Datastore metrics.
	Metrics DatastoreMetricsConfig
}

type LogConfig struct {
	// Format is the log format to use in the log output (e.g. 'text' or 'json')
	Format string

	// Level is the log level to use in the log output (e.g. 'none', 'debug', or 'info')
	Level string
}

type TraceConfig struct {
	Enabled     bool
	OTLP        OTLPTraceConfig `mapstructure:"otlp"`
	SampleRatio float64
	ServiceName string
}

type OTLPTraceConfig struct {
	Endpoint string
}

type Config struct {
	Datastore DatastoreConfig
	Log       LogConfig
	Trace     TraceConfig
}

// Verify reports the first invalid setting of cfg.
func (cfg *Config) Verify() error {
	if !slices.Contains(Engines, cfg.Datastore.Engine) {
		return fmt.Errorf("config 'datastore.engine' must be one of %q", Engines)
	}

	if cfg.Datastore.Engine != "memory" && cfg.Datastore.URI == "" {
		return fmt.Errorf("config 'datastore.uri' must be set for the '%s' engine", cfg.Datastore.Engine)
	}

	if cfg.Datastore.MaxOpenConns < 0 || cfg.Datastore.MaxIdleConns < 0 {
		return errors.New("config 'datastore.maxOpenConns' and 'datastore.maxIdleConns' must not be negative")
	}

	if cfg.Datastore.MaxOpenConns != 0 && cfg.Datastore.MaxIdleConns > cfg.Datastore.MaxOpenConns {
		return fmt.Errorf(
			"config 'datastore.maxIdleConns' (%d) cannot be greater than 'datastore.maxOpenConns' (%d)",
			cfg.Datastore.MaxIdleConns,
			cfg.Datastore.MaxOpenConns,
		)
	}

	if cfg.Log.Format != "text" && cfg.Log.Format != "json" {
		return fmt.Errorf("config 'log.format' must be one of ['text', 'json']")
	}

	if !slices.Contains(logLevels, cfg.Log.Level) {
		return fmt.Errorf(
			"config 'log.level' must be one of ['none', 'debug', 'info', 'warn', 'error', 'panic', 'fatal']",
		)
	}

	if cfg.Trace.Enabled {
		if cfg.Trace.SampleRatio < 0 || cfg.Trace.SampleRatio > 1 {
			return errors.New("config 'trace.sampleRatio' must be between 0 and 1")
		}
		if cfg.Trace.OTLP.Endpoint == "" {
			return errors.New("config 'trace.otlp.endpoint' must be set when tracing is enabled")
		}
	}

	return nil
}

// DefaultConfig is the graphkb default configuration.
func DefaultConfig() *Config {
	return &Config{
		Datastore: DatastoreConfig{
			Engine:       DefaultDatastoreEngine,
			MaxIdleConns: DefaultMaxIdleConns,
			MaxOpenConns: DefaultMaxOpenConns,
			PingTimeout:  DefaultDatastorePingTimeout,
		},
		Log: LogConfig{
			Format: "text",
			Level:  "info",
		},
		Trace: TraceConfig{
			Enabled: false,
			OTLP: OTLPTraceConfig{
				Endpoint: DefaultOTLPEndpoint,
			},
			SampleRatio: DefaultTraceSampleRatio,
			ServiceName: DefaultTraceServiceName,
		},
	}
}
