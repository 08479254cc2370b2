package util

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/typedb/typedb-sub018/internal/config"
)

// AddConfigFlags registers a flag for every setting of [config.Config]. The
// flags are bound to viper by [BindConfigFlags], which commands run as PreRun
// so that commands sharing a setting do not steal each other's bindings.
func AddConfigFlags(command *cobra.Command) {
	defaultConfig := config.DefaultConfig()
	flags := command.Flags()

	flags.String("datastore-engine", defaultConfig.Datastore.Engine, "the datastore engine that will be used for persistence")
	flags.String("datastore-uri", defaultConfig.Datastore.URI, "the connection uri to use to connect to the datastore (for any engine other than 'memory')")
	flags.String("datastore-username", "", "the connection username to use to connect to the datastore (overwrites any username provided in the connection uri)")
	flags.String("datastore-password", "", "the connection password to use to connect to the datastore (overwrites any password provided in the connection uri)")
	flags.Int("datastore-max-open-conns", defaultConfig.Datastore.MaxOpenConns, "the maximum number of open connections to the datastore")
	flags.Int("datastore-max-idle-conns", defaultConfig.Datastore.MaxIdleConns, "the maximum number of connections to the datastore in the idle connection pool")
	flags.Duration("datastore-conn-max-idle-time", defaultConfig.Datastore.ConnMaxIdleTime, "the maximum amount of time a connection to the datastore may be idle")
	flags.Duration("datastore-conn-max-lifetime", defaultConfig.Datastore.ConnMaxLifetime, "the maximum amount of time a connection to the datastore may be reused")
	flags.Duration("datastore-ping-timeout", defaultConfig.Datastore.PingTimeout, "how long to wait for the datastore to accept connections")
	flags.Bool("datastore-metrics-enabled", defaultConfig.Datastore.Metrics.Enabled, "enable/disable sql metrics for the datastore")
	flags.String("log-format", defaultConfig.Log.Format, "the log format to output logs in")
	flags.String("log-level", defaultConfig.Log.Level, "the log level to use")
	flags.Bool("trace-enabled", defaultConfig.Trace.Enabled, "enable tracing")
	flags.String("trace-otlp-endpoint", defaultConfig.Trace.OTLP.Endpoint, "the endpoint of the trace collector")
	flags.Float64("trace-sample-ratio", defaultConfig.Trace.SampleRatio, "the fraction of traces to sample. 1 means all, 0 means none.")
	flags.String("trace-service-name", defaultConfig.Trace.ServiceName, "the service name included in sampled traces")
}

// BindConfigFlags binds the flags registered by [AddConfigFlags] to the
// equivalent config values managed by viper.
func BindConfigFlags(command *cobra.Command, _ []string) {
	flags := command.Flags()

	MustBindPFlag("datastore.engine", flags.Lookup("datastore-engine"))
	MustBindEnv("datastore.engine", "GRAPHKB_DATASTORE_ENGINE")

	MustBindPFlag("datastore.uri", flags.Lookup("datastore-uri"))
	MustBindEnv("datastore.uri", "GRAPHKB_DATASTORE_URI")

	MustBindPFlag("datastore.username", flags.Lookup("datastore-username"))
	MustBindEnv("datastore.username", "GRAPHKB_DATASTORE_USERNAME")

	MustBindPFlag("datastore.password", flags.Lookup("datastore-password"))
	MustBindEnv("datastore.password", "GRAPHKB_DATASTORE_PASSWORD")

	MustBindPFlag("datastore.maxOpenConns", flags.Lookup("datastore-max-open-conns"))
	MustBindEnv("datastore.maxOpenConns", "GRAPHKB_DATASTORE_MAX_OPEN_CONNS", "GRAPHKB_DATASTORE_MAXOPENCONNS")

	MustBindPFlag("datastore.maxIdleConns", flags.Lookup("datastore-max-idle-conns"))
	MustBindEnv("datastore.maxIdleConns", "GRAPHKB_DATASTORE_MAX_IDLE_CONNS", "GRAPHKB_DATASTORE_MAXIDLECONNS")

	MustBindPFlag("datastore.connMaxIdleTime", flags.Lookup("datastore-conn-max-idle-time"))
	MustBindEnv("datastore.connMaxIdleTime", "GRAPHKB_DATASTORE_CONN_MAX_IDLE_TIME", "GRAPHKB_DATASTORE_CONNMAXIDLETIME")

	MustBindPFlag("datastore.connMaxLifetime", flags.Lookup("datastore-conn-max-lifetime"))
	MustBindEnv("datastore.connMaxLifetime", "GRAPHKB_DATASTORE_CONN_MAX_LIFETIME", "GRAPHKB_DATASTORE_CONNMAXLIFETIME")

	MustBindPFlag("datastore.pingTimeout", flags.Lookup("datastore-ping-timeout"))
	MustBindEnv("datastore.pingTimeout", "GRAPHKB_DATASTORE_PING_TIMEOUT", "GRAPHKB_DATASTORE_PINGTIMEOUT")

	MustBindPFlag("datastore.metrics.enabled", flags.Lookup("datastore-metrics-enabled"))
	MustBindEnv("datastore.metrics.enabled", "GRAPHKB_DATASTORE_METRICS_ENABLED")

	MustBindPFlag("log.format", flags.Lookup("log-format"))
	MustBindEnv("log.format", "GRAPHKB_LOG_FORMAT")

	MustBindPFlag("log.level", flags.Lookup("log-level"))
	MustBindEnv("log.level", "GRAPHKB_LOG_LEVEL")

	MustBindPFlag("trace.enabled", flags.Lookup("trace-enabled"))
	MustBindEnv("trace.enabled", "GRAPHKB_TRACE_ENABLED")

	MustBindPFlag("trace.otlp.endpoint", flags.Lookup("trace-otlp-endpoint"))
	MustBindEnv("trace.otlp.endpoint", "GRAPHKB_TRACE_OTLP_ENDPOINT")

	MustBindPFlag("trace.sampleRatio", flags.Lookup("trace-sample-ratio"))
	MustBindEnv("trace.sampleRatio", "GRAPHKB_TRACE_SAMPLE_RATIO", "GRAPHKB_TRACE_SAMPLERATIO")

	MustBindPFlag("trace.serviceName", flags.Lookup("trace-service-name"))
	MustBindEnv("trace.serviceName", "GRAPHKB_TRACE_SERVICE_NAME", "GRAPHKB_TRACE_SERVICENAME")
}

// ReadConfig returns the graphkb configuration based on the values provided in the 'config.yaml' file.
// The 'config.yaml' file is loaded from '/etc/graphkb', '$HOME/.graphkb', or the current working directory. If no configuration
// file is present, the default values are returned.
func ReadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()

	viper.SetTypeByDefaultValue(true)
	err := viper.ReadInConfig()
	if err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Verify(); err != nil {
		return nil, err
	}

	return cfg, nil
}
