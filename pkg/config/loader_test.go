package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestInitialize(t *testing.T) {
	t.Run("defaults applied when sections omitted", func(t *testing.T) {
		dir := t.TempDir()
		writeConfigFile(t, dir, "quarry.yaml", `
planner:
  addr: localhost:50051
`)

		cfg, err := Initialize(context.Background(), dir)
		require.NoError(t, err)

		assert.Equal(t, DefaultStepLimit, cfg.Agent.StepLimit)
		assert.Equal(t, DefaultMaxInvalidRetries, cfg.Agent.MaxInvalidRetries)
		assert.Equal(t, DefaultMaxToolFailures, cfg.Agent.MaxToolFailures)
		assert.Equal(t, DefaultPlannerModel, cfg.Planner.Model)
		assert.Equal(t, DefaultSchemaTopK, cfg.Context.SchemaTopK)
		assert.Equal(t, DefaultListenAddr, cfg.Server.ListenAddr)
		assert.Equal(t, 0, cfg.DataSources.Len())
		assert.True(t, cfg.ScoringEnabled())
		assert.True(t, cfg.SuggestionsEnabled())
	})

	t.Run("user values override defaults", func(t *testing.T) {
		dir := t.TempDir()
		writeConfigFile(t, dir, "quarry.yaml", `
planner:
  addr: localhost:50051
  model: quarry-planner-small
agent:
  step_limit: 5
  scoring_enabled: false
queue:
  worker_count: 2
  max_concurrent_runs: 6
context:
  schema_top_k: 3
`)

		cfg, err := Initialize(context.Background(), dir)
		require.NoError(t, err)

		assert.Equal(t, 5, cfg.Agent.StepLimit)
		assert.Equal(t, "quarry-planner-small", cfg.Planner.Model)
		assert.Equal(t, 2, cfg.Queue.WorkerCount)
		assert.Equal(t, 6, cfg.Queue.MaxConcurrentRuns)
		assert.Equal(t, 3, cfg.Context.SchemaTopK)
		assert.False(t, cfg.ScoringEnabled())
		// Unset siblings keep their defaults
		assert.Equal(t, DefaultMaxToolFailures, cfg.Agent.MaxToolFailures)
		assert.Equal(t, 1*time.Second, cfg.Queue.PollInterval)
	})

	t.Run("env expansion in values", func(t *testing.T) {
		t.Setenv("QUARRY_TEST_PLANNER", "planner.svc:50051")
		dir := t.TempDir()
		writeConfigFile(t, dir, "quarry.yaml", `
planner:
  addr: ${QUARRY_TEST_PLANNER}
`)

		cfg, err := Initialize(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, "planner.svc:50051", cfg.Planner.Addr)
	})

	t.Run("PLANNER_SERVICE_ADDR wins over yaml", func(t *testing.T) {
		t.Setenv("PLANNER_SERVICE_ADDR", "sidecar:50051")
		dir := t.TempDir()
		writeConfigFile(t, dir, "quarry.yaml", `
planner:
  addr: ignored:1
`)

		cfg, err := Initialize(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, "sidecar:50051", cfg.Planner.Addr)
	})

	t.Run("datasources loaded with timeout default", func(t *testing.T) {
		dir := t.TempDir()
		writeConfigFile(t, dir, "quarry.yaml", `
planner:
  addr: localhost:50051
`)
		writeConfigFile(t, dir, "datasources.yaml", `
datasources:
  warehouse:
    transport: http
    url: http://warehouse-mcp:8000/mcp
  events:
    transport: stdio
    command: events-mcp
    timeout: 10s
`)

		cfg, err := Initialize(context.Background(), dir)
		require.NoError(t, err)

		assert.Equal(t, []string{"events", "warehouse"}, cfg.DataSourceNames())

		warehouse, err := cfg.GetDataSource("warehouse")
		require.NoError(t, err)
		assert.Equal(t, DefaultDataSourceTimeout, warehouse.Timeout)

		events, err := cfg.GetDataSource("events")
		require.NoError(t, err)
		assert.Equal(t, 10*time.Second, events.Timeout)
	})

	t.Run("unknown datasource lookup fails", func(t *testing.T) {
		dir := t.TempDir()
		writeConfigFile(t, dir, "quarry.yaml", "planner:\n  addr: localhost:50051\n")

		cfg, err := Initialize(context.Background(), dir)
		require.NoError(t, err)

		_, err = cfg.GetDataSource("nope")
		assert.ErrorIs(t, err, ErrDataSourceNotFound)
	})

	t.Run("missing quarry.yaml fails", func(t *testing.T) {
		_, err := Initialize(context.Background(), t.TempDir())
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("invalid yaml fails", func(t *testing.T) {
		dir := t.TempDir()
		writeConfigFile(t, dir, "quarry.yaml", "planner: [\n")

		_, err := Initialize(context.Background(), dir)
		assert.ErrorIs(t, err, ErrInvalidYAML)
	})
}
