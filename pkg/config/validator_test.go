package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server:      DefaultServerConfig(),
		Agent:       DefaultAgentConfig(),
		Planner:     &PlannerConfig{Addr: "localhost:50051", Model: "m", RequestTimeout: DefaultPlannerTimeout},
		Context:     DefaultContextConfig(),
		Tools:       &ToolsConfig{},
		Queue:       DefaultQueueConfig(),
		Retention:   DefaultRetentionConfig(),
		Resources:   DefaultResourcesConfig(),
		DataSources: NewDataSourceRegistry(nil),
	}
}

func TestValidateAll(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		require.NoError(t, NewValidator(validConfig()).ValidateAll())
	})

	t.Run("zero step limit rejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.Agent.StepLimit = 0

		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidValue)
		assert.Contains(t, err.Error(), "step_limit")
	})

	t.Run("missing planner addr rejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.Planner.Addr = ""

		err := NewValidator(cfg).ValidateAll()
		assert.ErrorIs(t, err, ErrMissingRequiredField)
	})

	t.Run("worker count above concurrency cap rejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.Queue.WorkerCount = 10
		cfg.Queue.MaxConcurrentRuns = 5

		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_concurrent_runs")
	})

	t.Run("stdio datasource requires command", func(t *testing.T) {
		cfg := validConfig()
		cfg.DataSources = NewDataSourceRegistry(map[string]DataSourceConfig{
			"warehouse": {Transport: TransportStdio},
		})

		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "warehouse")
		assert.Contains(t, err.Error(), "command")
	})

	t.Run("http datasource requires url", func(t *testing.T) {
		cfg := validConfig()
		cfg.DataSources = NewDataSourceRegistry(map[string]DataSourceConfig{
			"warehouse": {Transport: TransportHTTP},
		})

		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "url")
	})

	t.Run("unknown transport rejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.DataSources = NewDataSourceRegistry(map[string]DataSourceConfig{
			"warehouse": {Transport: "carrier-pigeon"},
		})

		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "transport")
	})
}
