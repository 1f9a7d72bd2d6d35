package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// QuarryYAMLConfig represents the complete quarry.yaml file structure.
type QuarryYAMLConfig struct {
	Server    *ServerConfig        `yaml:"server"`
	Agent     *AgentConfig         `yaml:"agent"`
	Planner   *PlannerConfig       `yaml:"planner"`
	Context   *ContextConfig       `yaml:"context"`
	Tools     *ToolsConfig         `yaml:"tools"`
	Queue     *QueueConfig         `yaml:"queue"`
	Retention *RetentionConfig     `yaml:"retention"`
	Resources *ResourcesConfig     `yaml:"resources"`
	Masking   *OutputMaskingConfig `yaml:"masking"`
}

// DataSourcesYAMLConfig represents the datasources.yaml file structure.
type DataSourcesYAMLConfig struct {
	DataSources map[string]DataSourceConfig `yaml:"datasources"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
//
// Steps performed:
//  1. Load quarry.yaml and datasources.yaml from configDir
//  2. Expand ${VAR} environment references
//  3. Merge user values over built-in defaults
//  4. Build the data source registry
//  5. Validate everything
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"datasources", stats.DataSources,
		"tool_overrides", stats.ToolOverrides)

	return cfg, nil
}

func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{configDir: configDir}

	quarryConfig, err := loader.loadQuarryYAML()
	if err != nil {
		return nil, NewLoadError("quarry.yaml", err)
	}

	dataSources, err := loader.loadDataSourcesYAML()
	if err != nil {
		return nil, NewLoadError("datasources.yaml", err)
	}

	// Merge user YAML over built-in defaults; non-zero values win.
	agentCfg := DefaultAgentConfig()
	if quarryConfig.Agent != nil {
		if err := mergo.Merge(agentCfg, quarryConfig.Agent, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge agent config: %w", err)
		}
	}

	plannerCfg := DefaultPlannerConfig()
	if quarryConfig.Planner != nil {
		if err := mergo.Merge(plannerCfg, quarryConfig.Planner, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge planner config: %w", err)
		}
	}
	if addr := os.Getenv("PLANNER_SERVICE_ADDR"); addr != "" {
		plannerCfg.Addr = addr
	}

	contextCfg := DefaultContextConfig()
	if quarryConfig.Context != nil {
		if err := mergo.Merge(contextCfg, quarryConfig.Context, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge context config: %w", err)
		}
	}

	queueCfg := DefaultQueueConfig()
	if quarryConfig.Queue != nil {
		if err := mergo.Merge(queueCfg, quarryConfig.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	retentionCfg := DefaultRetentionConfig()
	if quarryConfig.Retention != nil {
		if err := mergo.Merge(retentionCfg, quarryConfig.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}

	resourcesCfg := DefaultResourcesConfig()
	if quarryConfig.Resources != nil {
		if err := mergo.Merge(resourcesCfg, quarryConfig.Resources, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge resources config: %w", err)
		}
	}

	maskingCfg := DefaultOutputMaskingConfig()
	if quarryConfig.Masking != nil {
		if err := mergo.Merge(maskingCfg, quarryConfig.Masking, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge masking config: %w", err)
		}
	}

	serverCfg := DefaultServerConfig()
	if quarryConfig.Server != nil && quarryConfig.Server.ListenAddr != "" {
		serverCfg.ListenAddr = quarryConfig.Server.ListenAddr
	}

	toolsCfg := quarryConfig.Tools
	if toolsCfg == nil {
		toolsCfg = &ToolsConfig{}
	}

	// Data source defaults
	for name, ds := range dataSources {
		if ds.Timeout == 0 {
			ds.Timeout = DefaultDataSourceTimeout
			dataSources[name] = ds
		}
	}

	return &Config{
		configDir:   configDir,
		Server:      serverCfg,
		Agent:       agentCfg,
		Planner:     plannerCfg,
		Context:     contextCfg,
		Tools:       toolsCfg,
		Queue:       queueCfg,
		Retention:   retentionCfg,
		Resources:   resourcesCfg,
		Masking:     maskingCfg,
		DataSources: NewDataSourceRegistry(dataSources),
	}, nil
}

func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadQuarryYAML() (*QuarryYAMLConfig, error) {
	var config QuarryYAMLConfig
	if err := l.loadYAML("quarry.yaml", &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// loadDataSourcesYAML loads datasources.yaml. A missing file is not an
// error: deployments without direct warehouse access run with an empty
// registry and research tools that need one fail at resolve time.
func (l *configLoader) loadDataSourcesYAML() (map[string]DataSourceConfig, error) {
	var config DataSourcesYAMLConfig
	config.DataSources = make(map[string]DataSourceConfig)

	if err := l.loadYAML("datasources.yaml", &config); err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			slog.Warn("No datasources.yaml found, running without data sources")
			return config.DataSources, nil
		}
		return nil, err
	}

	return config.DataSources, nil
}
