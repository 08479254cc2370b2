package util

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"github.com/typedb/typedb-sub018/internal/config"
	"github.com/typedb/typedb-sub018/pkg/logger"
	"github.com/typedb/typedb-sub018/pkg/storage"
	"github.com/typedb/typedb-sub018/pkg/storage/memory"
	"github.com/typedb/typedb-sub018/pkg/storage/mysql"
	"github.com/typedb/typedb-sub018/pkg/storage/postgres"
	"github.com/typedb/typedb-sub018/pkg/storage/sqlcommon"
	"github.com/typedb/typedb-sub018/pkg/storage/sqlite"
	"github.com/typedb/typedb-sub018/pkg/storage/storagewrappers"
	"github.com/typedb/typedb-sub018/pkg/telemetry"
)

// NewDatastore opens the datastore of cfg, instrumented with query metrics and
// spans. SQL datastores must be migrated.
func NewDatastore(ctx context.Context, cfg *config.Config, l logger.Logger) (storage.Datastore, error) {
	datastoreOptions := []sqlcommon.DatastoreOption{
		sqlcommon.WithUsername(cfg.Datastore.Username),
		sqlcommon.WithPassword(cfg.Datastore.Password),
		sqlcommon.WithLogger(l),
		sqlcommon.WithMaxOpenConns(cfg.Datastore.MaxOpenConns),
		sqlcommon.WithMaxIdleConns(cfg.Datastore.MaxIdleConns),
		sqlcommon.WithConnMaxIdleTime(cfg.Datastore.ConnMaxIdleTime),
		sqlcommon.WithConnMaxLifetime(cfg.Datastore.ConnMaxLifetime),
		sqlcommon.WithPingTimeout(cfg.Datastore.PingTimeout),
	}

	if cfg.Datastore.Metrics.Enabled {
		datastoreOptions = append(datastoreOptions, sqlcommon.WithMetrics())
	}

	dsCfg := sqlcommon.NewConfig(datastoreOptions...)

	var datastore storage.Datastore
	var err error
	switch cfg.Datastore.Engine {
	case "memory":
		datastore = memory.New()
	case "sqlite":
		datastore, err = sqlite.New(cfg.Datastore.URI, dsCfg)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite datastore: %w", err)
		}
	case "postgres":
		datastore, err = postgres.New(cfg.Datastore.URI, dsCfg)
		if err != nil {
			return nil, fmt.Errorf("initialize postgres datastore: %w", err)
		}
	case "mysql":
		datastore, err = mysql.New(cfg.Datastore.URI, dsCfg)
		if err != nil {
			return nil, fmt.Errorf("initialize mysql datastore: %w", err)
		}
	default:
		return nil, fmt.Errorf("storage engine '%s' is unsupported", cfg.Datastore.Engine)
	}

	status, err := datastore.IsReady(ctx)
	if err != nil {
		datastore.Close()
		return nil, fmt.Errorf("check datastore readiness: %w", err)
	}
	if !status.IsReady {
		datastore.Close()
		return nil, errors.New(status.Message)
	}

	l.Debug("using storage engine", zap.String("engine", cfg.Datastore.Engine))

	return storagewrappers.NewInstrumentedDatastore(datastore), nil
}

// StartTracing installs the global tracer provider of cfg. The returned
// function flushes pending spans and must be called before exiting.
func StartTracing(cfg *config.Config, l logger.Logger) func() error {
	if !cfg.Trace.Enabled {
		otel.SetTracerProvider(noop.NewTracerProvider())
		return func() error {
			return nil
		}
	}

	l.Info("tracing enabled",
		zap.Float64("sample_ratio", cfg.Trace.SampleRatio),
		zap.String("endpoint", cfg.Trace.OTLP.Endpoint),
	)

	tp := telemetry.MustNewTracerProvider(
		telemetry.WithOTLPEndpoint(cfg.Trace.OTLP.Endpoint),
		telemetry.WithServiceName(cfg.Trace.ServiceName),
		telemetry.WithSamplingRatio(cfg.Trace.SampleRatio),
	)
	return func() error {
		// the batch span processor can take up to 5 seconds to flush
		ctx, cancel := context.WithTimeout(context.Background(), 6*time.Second)
		defer cancel()
		return telemetry.Shutdown(ctx, tp)
	}
}
