package migrate

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

type migrationFunc = func(ctx context.Context, tx *sql.Tx) error

// Migration is one versioned schema change with forward and backward steps.
type Migration struct {
	Version  int64
	Forward  migrationFunc
	Backward migrationFunc
}

// Registry holds the ordered migrations for one database engine.
type Registry struct {
	dialect goose.Dialect

	migrations map[int64]*Migration
}

func NewRegistry(engine string) *Registry {
	var dialect goose.Dialect

	switch engine {
	case "postgres":
		dialect = goose.DialectPostgres
	case "mysql":
		dialect = goose.DialectMySQL
	default:
		panic(fmt.Errorf("unknown database engine: %s", engine))
	}

	return &Registry{
		dialect:    dialect,
		migrations: make(map[int64]*Migration),
	}
}

func (r *Registry) MustRegister(m *Migration) {
	if _, ok := r.migrations[m.Version]; ok {
		panic(fmt.Errorf("migration with version %d already registered", m.Version))
	}
	r.migrations[m.Version] = m
}

type runConfig struct {
	verbose       bool
	targetVersion int64
}

type RunOption func(*runConfig)

func WithVerbose(v bool) RunOption {
	return func(c *runConfig) {
		c.verbose = v
	}
}

// WithTargetVersion migrates up or down to the given version instead of
// the latest. Zero means latest.
func WithTargetVersion(v int64) RunOption {
	return func(c *runConfig) {
		c.targetVersion = v
	}
}

// Run applies the registered migrations and returns the resulting version.
func (r *Registry) Run(ctx context.Context, db *sql.DB, opts ...RunOption) (int64, error) {
	cfg := &runConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var migrations []*goose.Migration
	for _, m := range r.migrations {
		migrations = append(migrations, goose.NewGoMigration(
			m.Version, &goose.GoFunc{RunTx: m.Forward}, &goose.GoFunc{RunTx: m.Backward},
		))
	}

	provider, err := goose.NewProvider(r.dialect, db, nil,
		goose.WithDisableGlobalRegistry(true),
		goose.WithVerbose(cfg.verbose),
		goose.WithGoMigrations(migrations...),
	)
	if err != nil {
		return 0, err
	}

	var results []*goose.MigrationResult

	if cfg.targetVersion == 0 {
		results, err = provider.Up(ctx)
		if err != nil {
			return 0, err
		}
	} else {
		current, err := provider.GetDBVersion(ctx)
		if err != nil {
			return 0, err
		}
		switch {
		case cfg.targetVersion < current:
			results, err = provider.DownTo(ctx, cfg.targetVersion)
		case cfg.targetVersion > current:
			results, err = provider.UpTo(ctx, cfg.targetVersion)
		}
		if err != nil {
			return 0, err
		}
	}

	if len(results) > 0 {
		if last := results[len(results)-1]; last != nil {
			return last.Source.Version, nil
		}
	}
	return 0, nil
}
