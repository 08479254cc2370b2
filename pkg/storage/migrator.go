package storage

import (
	"context"
	"slices"
	"time"
)

// MigrationProvider moves the schema of one database engine between revisions.
type MigrationProvider interface {
	// RunMigrations migrates to config.TargetVersion, or to the latest
	// revision when it is 0.
	RunMigrations(ctx context.Context, config MigrationConfig) error

	// CurrentVersion returns the revision the database is at.
	CurrentVersion(ctx context.Context, config MigrationConfig) (int64, error)

	// Engine names the datastore engine the provider serves.
	Engine() string
}

// MigrationConfig contains the configuration needed for running migrations.
type MigrationConfig struct {
	Engine        string
	URI           string
	TargetVersion uint
	Timeout       time.Duration
	Verbose       bool
	Username      string
	Password      string
}

// MigratorRegistry maps datastore engines to their migration providers.
type MigratorRegistry struct {
	providers map[string]MigrationProvider
}

// NewMigratorRegistry returns a registry holding providers.
func NewMigratorRegistry(providers ...MigrationProvider) *MigratorRegistry {
	r := &MigratorRegistry{
		providers: make(map[string]MigrationProvider, len(providers)),
	}
	for _, p := range providers {
		r.Register(p)
	}
	return r
}

// Register adds p, replacing any provider of the same engine.
func (r *MigratorRegistry) Register(p MigrationProvider) {
	r.providers[p.Engine()] = p
}

// Provider returns the provider of engine.
func (r *MigratorRegistry) Provider(engine string) (MigrationProvider, bool) {
	p, ok := r.providers[engine]
	return p, ok
}

// Engines returns the registered engines in lexical order.
func (r *MigratorRegistry) Engines() []string {
	engines := make([]string, 0, len(r.providers))
	for engine := range r.providers {
		engines = append(engines, engine)
	}
	slices.Sort(engines)
	return engines
}
