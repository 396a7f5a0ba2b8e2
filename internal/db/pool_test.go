package db

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnString(t *testing.T) {
	assert.Equal(t,
		"postgres://postgres@localhost:5432/fitforge",
		ConnString(NewDBPoolParams{DBHost: "localhost", DBPort: "5432", DBName: "fitforge"}),
	)
	assert.Equal(t,
		"postgres://gym:p%40ss@db:6432/fitforge",
		ConnString(NewDBPoolParams{DBHost: "db", DBPort: "6432", DBName: "fitforge", DBUser: "gym", DBPassword: "p@ss"}),
	)

	cfg, err := pgxpool.ParseConfig(ConnString(NewDBPoolParams{DBHost: "db", DBPort: "6432", DBName: "fitforge", DBPassword: "p@ss"}))
	require.NoError(t, err)
	assert.Equal(t, "p@ss", cfg.ConnConfig.Password)
	assert.Equal(t, uint16(6432), cfg.ConnConfig.Port)
}
