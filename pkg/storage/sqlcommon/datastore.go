package sqlcommon

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/typedb/typedb-sub018/pkg/id"
	"github.com/typedb/typedb-sub018/pkg/logger"
	"github.com/typedb/typedb-sub018/pkg/storage"
	"github.com/typedb/typedb-sub018/pkg/storage/common"
)

// Datastore implements [storage.Datastore] over a database/sql connection pool.
// Every SQL dialect shares it and only differs in its DBInfo.
type Datastore struct {
	dbInfo           *DBInfo
	ids              id.Generator
	logger           logger.Logger
	dbStatsCollector prometheus.Collector
	versionReady     atomic.Bool
}

var _ storage.Datastore = (*Datastore)(nil)

// NewDatastore returns a datastore serving dbInfo. collector, if any, is
// unregistered on Close.
func NewDatastore(dbInfo *DBInfo, cfg *Config, collector prometheus.Collector) *Datastore {
	return &Datastore{
		dbInfo:           dbInfo,
		ids:              cfg.IDGenerator,
		logger:           cfg.Logger,
		dbStatsCollector: collector,
	}
}

// DB returns the underlying connection pool.
func (s *Datastore) DB() *sql.DB {
	return s.dbInfo.db
}

// Begin see [storage.Datastore].Begin.
func (s *Datastore) Begin(ctx context.Context) (storage.ConceptTx, error) {
	ctx, span := tracer.Start(ctx, s.dbInfo.dialect+".Begin")
	defer span.End()

	txn, err := s.dbInfo.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, s.dbInfo.HandleSQLError(err)
	}

	return common.NewTx(&backend{
		txn:            txn,
		stbl:           s.dbInfo.stbl.RunWith(txn),
		handleSQLError: s.dbInfo.HandleSQLError,
	}, s.ids), nil
}

// IsReady see [IsReady].
func (s *Datastore) IsReady(ctx context.Context) (storage.ReadinessStatus, error) {
	status, err := IsReady(ctx, s.versionReady.Load(), s.dbInfo.db)
	if err != nil {
		return status, err
	}
	s.versionReady.Store(status.IsReady)
	return status, nil
}

// Close see [storage.Datastore].Close.
func (s *Datastore) Close() {
	if s.dbStatsCollector != nil {
		prometheus.Unregister(s.dbStatsCollector)
	}
	s.dbInfo.db.Close()
}
