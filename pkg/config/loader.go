package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/maestro-research/maestro/pkg/models"
)

// MaestroYAMLConfig represents the complete maestro.yaml file structure
type MaestroYAMLConfig struct {
	System          *SystemYAMLConfig       `yaml:"system"`
	LLM             *LLMConfig              `yaml:"llm"`
	Tools           *ToolsConfig            `yaml:"tools"`
	MissionDefaults *models.MissionSettings `yaml:"mission_defaults"`
	Queue           *QueueConfig            `yaml:"queue"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	DashboardURL     string           `yaml:"dashboard_url"`
	AllowedWSOrigins []string         `yaml:"allowed_ws_origins"`
	Retention        *RetentionConfig `yaml:"retention"`
}

// LLMProvidersYAMLConfig represents the complete llm-providers.yaml file structure
type LLMProvidersYAMLConfig struct {
	LLMProviders map[string]LLMProviderConfig `yaml:"llm_providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge built-in + user-defined configurations
//  5. Build in-memory registries
//  6. Apply default values
//  7. Validate all configuration
//  8. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	// 1. Load configuration files
	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Validate all configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"llm_providers", stats.LLMProviders,
		"model_tiers", stats.Tiers)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load maestro.yaml (contains system, llm, tools, mission_defaults, queue)
	maestroConfig, err := loader.loadMaestroYAML()
	if err != nil {
		return nil, NewLoadError("maestro.yaml", err)
	}

	// 2. Load llm-providers.yaml
	llmProviders, err := loader.loadLLMProvidersYAML()
	if err != nil {
		return nil, NewLoadError("llm-providers.yaml", err)
	}

	// 3. Get built-in configuration
	builtin := GetBuiltinConfig()

	// 4. Merge built-in + user-defined providers (user overrides built-in)
	llmProvidersMerged := mergeLLMProviders(builtin.LLMProviders, llmProviders)

	// 5. Build registries
	llmProviderRegistry := NewLLMProviderRegistry(llmProvidersMerged)

	// 6. Resolve LLM dispatch config (merge user YAML with built-in defaults)
	// Start with defaults, then merge user config on top to preserve unset defaults
	llmConfig := DefaultLLMConfig()
	if maestroConfig.LLM != nil {
		if err := mergo.Merge(llmConfig, maestroConfig.LLM, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge llm config: %w", err)
		}
	}

	// Resolve queue config the same way
	queueConfig := DefaultQueueConfig()
	if maestroConfig.Queue != nil {
		if err := mergo.Merge(queueConfig, maestroConfig.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	// Resolve tools config
	toolsConfig := DefaultToolsConfig()
	if maestroConfig.Tools != nil {
		if err := mergo.Merge(toolsConfig, maestroConfig.Tools, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge tools config: %w", err)
		}
	}

	// Resolve mission defaults (YAML overrides built-in)
	missionDefaults := models.DefaultMissionSettings()
	if maestroConfig.MissionDefaults != nil {
		if err := mergo.Merge(&missionDefaults, maestroConfig.MissionDefaults, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge mission defaults: %w", err)
		}
	}

	// Resolve system config (Retention + DashboardURL + WS Origins)
	retentionCfg := resolveRetentionConfig(maestroConfig.System)
	dashboardURL := resolveDashboardURL(maestroConfig.System)
	allowedWSOrigins := resolveAllowedWSOrigins(maestroConfig.System)

	return &Config{
		configDir:           configDir,
		MissionDefaults:     missionDefaults,
		Queue:               queueConfig,
		LLM:                 llmConfig,
		Tools:               toolsConfig,
		Retention:           retentionCfg,
		DashboardURL:        dashboardURL,
		AllowedWSOrigins:    allowedWSOrigins,
		LLMProviderRegistry: llmProviderRegistry,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	// Parse YAML
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadMaestroYAML() (*MaestroYAMLConfig, error) {
	var config MaestroYAMLConfig

	if err := l.loadYAML("maestro.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (l *configLoader) loadLLMProvidersYAML() (map[string]LLMProviderConfig, error) {
	var config LLMProvidersYAMLConfig

	// Initialize map to avoid nil map
	config.LLMProviders = make(map[string]LLMProviderConfig)

	if err := l.loadYAML("llm-providers.yaml", &config); err != nil {
		return nil, err
	}

	return config.LLMProviders, nil
}

// resolveDashboardURL resolves the dashboard base URL from system YAML, applying defaults.
func resolveDashboardURL(sys *SystemYAMLConfig) string {
	if sys != nil && sys.DashboardURL != "" {
		return sys.DashboardURL
	}
	return "http://localhost:5173"
}

// resolveRetentionConfig resolves retention configuration from system YAML, applying defaults.
func resolveRetentionConfig(sys *SystemYAMLConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()

	if sys == nil || sys.Retention == nil {
		return cfg
	}

	r := sys.Retention
	if r.MissionRetentionDays > 0 {
		cfg.MissionRetentionDays = r.MissionRetentionDays
	}
	if r.EventTTL > 0 {
		cfg.EventTTL = r.EventTTL
	}
	if r.CleanupInterval > 0 {
		cfg.CleanupInterval = r.CleanupInterval
	}

	return cfg
}

// resolveAllowedWSOrigins returns additional WebSocket origin patterns from system YAML.
func resolveAllowedWSOrigins(sys *SystemYAMLConfig) []string {
	if sys != nil {
		return sys.AllowedWSOrigins
	}
	return nil
}
