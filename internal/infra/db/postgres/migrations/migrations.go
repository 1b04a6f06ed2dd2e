// Package migrations holds the Postgres schema migrations.
package migrations

import "github.com/mylance/mylance-api/internal/infra/db/migrate"

var Migrations = migrate.NewRegistry("postgres")
