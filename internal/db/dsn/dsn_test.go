package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roomwatch/roomwatch/internal/config"
)

func TestCreate(t *testing.T) {
	base := config.DB{
		Host:     "db.example.com",
		Port:     5432,
		User:     "roomwatch",
		Password: "secret",
		Name:     "roomwatch",
		Extras:   "sslmode=disable",
	}

	testCases := []struct {
		name     string
		engine   config.GormEngine
		expected string
	}{
		{
			name:     "mysql",
			engine:   config.EngineMySQL,
			expected: "roomwatch:secret@tcp(db.example.com:5432)/roomwatch?sslmode=disable",
		},
		{
			name:     "postgres",
			engine:   config.EnginePostgres,
			expected: "host=db.example.com port=5432 user=roomwatch password=secret dbname=roomwatch sslmode=disable",
		},
		{
			name:     "sqlite uses name as file path",
			engine:   config.EngineSQLite,
			expected: "roomwatch",
		},
		{
			name:     "unknown engine falls back to mysql",
			engine:   "",
			expected: "roomwatch:secret@tcp(db.example.com:5432)/roomwatch?sslmode=disable",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &config.Config{DB: base}
			cfg.DB.GormEngine = tc.engine

			assert.Equal(t, tc.expected, Create(cfg))
		})
	}
}
