package migrate

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(context.Context, *sql.Tx) error { return nil }

func TestNewRegistryKnownEngines(t *testing.T) {
	assert.NotNil(t, NewRegistry("postgres"))
	assert.NotNil(t, NewRegistry("mysql"))
}

func TestNewRegistryUnknownEnginePanics(t *testing.T) {
	assert.PanicsWithError(t, "unknown database engine: sqlite", func() {
		NewRegistry("sqlite")
	})
}

func TestMustRegisterRejectsDuplicateVersion(t *testing.T) {
	r := NewRegistry("postgres")
	r.MustRegister(&Migration{Version: 1, Forward: noop, Backward: noop})

	assert.PanicsWithError(t, "migration with version 1 already registered", func() {
		r.MustRegister(&Migration{Version: 1, Forward: noop, Backward: noop})
	})
}

func TestMustRegisterKeepsDistinctVersions(t *testing.T) {
	r := NewRegistry("mysql")
	r.MustRegister(&Migration{Version: 1, Forward: noop, Backward: noop})
	r.MustRegister(&Migration{Version: 2, Forward: noop, Backward: noop})

	require.Len(t, r.migrations, 2)
}
