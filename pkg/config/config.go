// Package config provides configuration loading and validation for leafgen.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
	"github.com/xeipuuv/gojsonschema"

	"github.com/Sumatoshi-tech/leafgen/pkg/leaftable"
	"github.com/Sumatoshi-tech/leafgen/pkg/nodetypes"
)

// ErrInvalidConfig is returned when the loaded configuration violates the schema.
var ErrInvalidConfig = errors.New("invalid configuration")

// EnvPrefix prefixes every environment variable override.
const EnvPrefix = "LEAFGEN"

// FileName is the configuration file name searched for when no path is given.
const FileName = ".leafgen"

//go:embed schema.json
var schema string

// Config holds all configuration for leafgen.
type Config struct {
	NodeTypes string               `json:"node_types" mapstructure:"node_types"`
	Rev       string               `json:"rev"        mapstructure:"rev"`
	Output    string               `json:"output"     mapstructure:"output"`
	CArray    string               `json:"c_array"    mapstructure:"c_array"`
	Overrides []leaftable.Override `json:"overrides"  mapstructure:"overrides"`
	Logging   LoggingConfig        `json:"logging"    mapstructure:"logging"`
	Telemetry TelemetryConfig      `json:"telemetry"  mapstructure:"telemetry"`
	RowWidth  int                  `json:"row_width"  mapstructure:"row_width"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level string `json:"level" mapstructure:"level"`
	JSON  bool   `json:"json"  mapstructure:"json"`
}

// TelemetryConfig holds tracing and metrics export configuration.
type TelemetryConfig struct {
	// OTLPEndpoint is the gRPC collector address. Empty disables export.
	OTLPEndpoint string `json:"otlp_endpoint" mapstructure:"otlp_endpoint"`
	// MetricsFile receives a Prometheus textfile snapshot on exit when set.
	MetricsFile  string `json:"metrics_file"  mapstructure:"metrics_file"`
	OTLPInsecure bool   `json:"otlp_insecure" mapstructure:"otlp_insecure"`
}

// SlogLevel converts the configured level name. Unknown names map to info;
// the schema rejects them before this is reached.
func (l LoggingConfig) SlogLevel() slog.Level {
	var level slog.Level

	err := level.UnmarshalText([]byte(l.Level))
	if err != nil {
		return slog.LevelInfo
	}

	return level
}

// RenderOptions returns the rendering options described by the configuration.
func (c *Config) RenderOptions() leaftable.RenderOptions {
	return leaftable.RenderOptions{RowWidth: c.RowWidth}
}

// LoadConfig loads configuration from file and environment variables.
// An empty configPath searches for .leafgen.yaml in the working directory,
// ./config and $HOME; a missing file is not an error in that case.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(FileName)
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("./config")
		viperCfg.AddConfigPath("$HOME")
	}

	viperCfg.SetEnvPrefix(EnvPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := Validate(&config)
	if validateErr != nil {
		return nil, validateErr
	}

	return &config, nil
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	return &Config{
		NodeTypes: nodetypes.DefaultPath,
		RowWidth:  leaftable.DefaultRowWidth,
		Overrides: leaftable.DefaultOverrides(),
		Logging:   LoggingConfig{Level: "warn"},
	}
}

func setDefaults(viperCfg *viper.Viper) {
	def := Default()

	viperCfg.SetDefault("node_types", def.NodeTypes)
	viperCfg.SetDefault("rev", "")
	viperCfg.SetDefault("row_width", def.RowWidth)
	viperCfg.SetDefault("output", "")
	viperCfg.SetDefault("c_array", "")

	overrides := make([]map[string]any, 0, len(def.Overrides))
	for _, ov := range def.Overrides {
		overrides = append(overrides, map[string]any{"symbol": ov.Symbol, "value": int(ov.Value)})
	}

	viperCfg.SetDefault("overrides", overrides)

	viperCfg.SetDefault("logging.level", def.Logging.Level)
	viperCfg.SetDefault("logging.json", false)

	viperCfg.SetDefault("telemetry.otlp_endpoint", "")
	viperCfg.SetDefault("telemetry.otlp_insecure", false)
	viperCfg.SetDefault("telemetry.metrics_file", "")
}

// Validate checks config against the embedded JSON schema.
func Validate(config *Config) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewGoLoader(config),
	)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}

	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(details, "; "))
}
