package sqldb

import (
	"context"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cashier-flash-report/internal/config"
)

func TestPlaceholderFor(t *testing.T) {
	tests := []struct {
		driver   string
		expected string
	}{
		{driver: config.DriverPostgres, expected: "SELECT a FROM t WHERE b = $1"},
		{driver: config.DriverMySQL, expected: "SELECT a FROM t WHERE b = ?"},
		{driver: config.DriverSQLServer, expected: "SELECT a FROM t WHERE b = @p1"},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			format, err := PlaceholderFor(tt.driver)
			require.NoError(t, err)

			query, _, err := squirrel.Select("a").From("t").Where(squirrel.Eq{"b": 1}).PlaceholderFormat(format).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, query)
		})
	}
}

func TestNewConnection_UnsupportedDriver(t *testing.T) {
	conn, err := NewConnection(context.Background(), config.Database{Driver: "sqlite", DSN: "file::memory:"})
	assert.Nil(t, conn)
	assert.ErrorContains(t, err, "não suportado")
}
