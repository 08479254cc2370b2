package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Verify())
}

func TestVerify(t *testing.T) {
	tests := map[string]struct {
		configGenerator func() *Config
		expectedErr     string
	}{
		`unknown_engine`: {
			configGenerator: func() *Config {
				cfg := DefaultConfig()
				cfg.Datastore.Engine = "oracle"
				return cfg
			},
			expectedErr: "config 'datastore.engine' must be one of",
		},
		`sql_engine_without_uri`: {
			configGenerator: func() *Config {
				cfg := DefaultConfig()
				cfg.Datastore.Engine = "postgres"
				return cfg
			},
			expectedErr: "config 'datastore.uri' must be set for the 'postgres' engine",
		},
		`negative_pool_size`: {
			configGenerator: func() *Config {
				cfg := DefaultConfig()
				cfg.Datastore.MaxOpenConns = -1
				return cfg
			},
			expectedErr: "must not be negative",
		},
		`more_idle_than_open_connections`: {
			configGenerator: func() *Config {
				cfg := DefaultConfig()
				cfg.Datastore.MaxOpenConns = 5
				cfg.Datastore.MaxIdleConns = 6
				return cfg
			},
			expectedErr: "config 'datastore.maxIdleConns' (6) cannot be greater than 'datastore.maxOpenConns' (5)",
		},
		`invalid_log_format`: {
			configGenerator: func() *Config {
				cfg := DefaultConfig()
				cfg.Log.Format = "xml"
				return cfg
			},
			expectedErr: "config 'log.format' must be one of ['text', 'json']",
		},
		`invalid_log_level`: {
			configGenerator: func() *Config {
				cfg := DefaultConfig()
				cfg.Log.Level = "verbose"
				return cfg
			},
			expectedErr: "config 'log.level' must be one of",
		},
		`invalid_sample_ratio`: {
			configGenerator: func() *Config {
				cfg := DefaultConfig()
				cfg.Trace.Enabled = true
				cfg.Trace.SampleRatio = 1.5
				return cfg
			},
			expectedErr: "config 'trace.sampleRatio' must be between 0 and 1",
		},
		`tracing_without_endpoint`: {
			configGenerator: func() *Config {
				cfg := DefaultConfig()
				cfg.Trace.Enabled = true
				cfg.Trace.OTLP.Endpoint = ""
				return cfg
			},
			expectedErr: "config 'trace.otlp.endpoint' must be set",
		},
		`sqlite_with_uri`: {
			configGenerator: func() *Config {
				cfg := DefaultConfig()
				cfg.Datastore.Engine = "sqlite"
				cfg.Datastore.URI = "graphkb.db"
				return cfg
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := test.configGenerator().Verify()
			if test.expectedErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, test.expectedErr)
		})
	}
}
