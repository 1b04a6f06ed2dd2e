// Command migrate applies the database schema migrations.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pressly/goose/v3"

	"github.com/mylance/mylance-api/internal/config"
	"github.com/mylance/mylance-api/internal/infra/db/migrate"
	mysqlmigrations "github.com/mylance/mylance-api/internal/infra/db/mysql/migrations"
	postgresmigrations "github.com/mylance/mylance-api/internal/infra/db/postgres/migrations"
)

func main() {
	var (
		configPath    = flag.String("config", "config.yaml", "path to the config file")
		targetVersion = flag.Int64("version", 0, "migrate to this version instead of the latest")
		timeout       = flag.Duration("timeout", time.Minute, "how long to retry the initial database connection")
		verbose       = flag.Bool("verbose", false, "enable verbose migration logs")
	)
	flag.Parse()

	if v := os.Getenv("CONFIG_PATH"); v != "" && *configPath == "config.yaml" {
		*configPath = v
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	dsn, err := cfg.DSN()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	var (
		driver     string
		migrations *migrate.Registry
	)
	switch cfg.Database.Engine {
	case "mysql":
		driver = "mysql"
		migrations = mysqlmigrations.Migrations
	case "postgres":
		driver = "postgres"
		migrations = postgresmigrations.Migrations
	default:
		log.Fatalf("unknown database engine: %s", cfg.Database.Engine)
	}

	db, err := goose.OpenDBWithDriver(driver, dsn)
	if err != nil {
		log.Fatalf("failed to open a connection to the database: %v", err)
	}
	defer db.Close()

	// The database may still be starting; retry the ping up to the timeout.
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = *timeout
	err = backoff.Retry(func() error {
		return db.PingContext(context.Background())
	}, policy)
	if err != nil {
		log.Fatalf("failed to initialize database connection: %v", err)
	}

	version, err := migrations.Run(context.Background(), db,
		migrate.WithTargetVersion(*targetVersion),
		migrate.WithVerbose(*verbose),
	)
	if err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	log.Printf("migration done, schema version %d", version)
}
