package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/internal/config"
	"task-tracker/internal/logging"
	"task-tracker/internal/repository/sqlite"
)

func TestGetEnvironment(t *testing.T) {
	tests := []struct {
		value string
		want  Environment
	}{
		{"development", Development},
		{"testing", Testing},
		{"production", Production},
		{"", Production},
		{"staging", Production},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(EnvironmentVar, tt.value)
			assert.Equal(t, tt.want, getEnvironment())
		})
	}
}

func TestRepositoryFactory(t *testing.T) {
	ctx := context.Background()

	t.Run("testing uses memory", func(t *testing.T) {
		repo, err := NewRepositoryFactory(Testing, logging.Discard()).CreateRepository(config.NewConfig())
		require.NoError(t, err)
		defer repo.Close()

		_, err = repo.Insert(ctx, sqlite.NewTask{Title: "scratch"})
		require.NoError(t, err)
	})

	t.Run("production uses the configured path", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Database.Dir = filepath.Join(t.TempDir(), "nested")

		repo, err := NewRepositoryFactory(Production, logging.Discard()).CreateRepository(cfg)
		require.NoError(t, err)
		defer repo.Close()

		assert.FileExists(t, cfg.GetDatabasePath())
	})
}
