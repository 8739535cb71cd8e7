package core

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config tunes chain behaviour. Retry and timeout values are advisory
// defaults for calling code; the resilience helpers take explicit parameters.
type Config struct {
	EnableMethodCaching bool          `mapstructure:"enable_method_caching" yaml:"enable_method_caching"`
	EnableDeepCloning   bool          `mapstructure:"enable_deep_cloning" yaml:"enable_deep_cloning"`
	MaxRetryAttempts    int           `mapstructure:"max_retry_attempts" yaml:"max_retry_attempts"`
	DefaultRetryDelay   time.Duration `mapstructure:"default_retry_delay" yaml:"default_retry_delay"`
	DefaultTimeout      time.Duration `mapstructure:"default_timeout" yaml:"default_timeout"`
}

func Default() Config {
	return Config{
		EnableMethodCaching: true,
		EnableDeepCloning:   false,
		MaxRetryAttempts:    3,
		DefaultRetryDelay:   100 * time.Millisecond,
		DefaultTimeout:      30 * time.Second,
	}
}

// Performance favours throughput: caching on, more attempts, shorter delays.
func Performance() Config {
	return Config{
		EnableMethodCaching: true,
		EnableDeepCloning:   false,
		MaxRetryAttempts:    5,
		DefaultRetryDelay:   50 * time.Millisecond,
		DefaultTimeout:      60 * time.Second,
	}
}

// Development disables caching and turns on deep cloning.
func Development() Config {
	return Config{
		EnableMethodCaching: false,
		EnableDeepCloning:   true,
		MaxRetryAttempts:    1,
		DefaultRetryDelay:   0,
		DefaultTimeout:      10 * time.Second,
	}
}

// Preset returns a named preset: "default", "performance" or "development".
func Preset(name string) (Config, error) {
	switch name {
	case "", "default":
		return Default(), nil
	case "performance":
		return Performance(), nil
	case "development":
		return Development(), nil
	}
	return Config{}, fmt.Errorf("unknown config preset: %s", name)
}

// DecodeConfig overlays raw onto the preset named by its "preset" key
// (Default when absent). Durations accept strings such as "250ms".
func DecodeConfig(raw map[string]any) (Config, error) {
	presetName, _ := raw["preset"].(string)
	cfg, err := Preset(presetName)
	if err != nil {
		return Config{}, err
	}

	fields := make(map[string]any, len(raw))
	for k, v := range raw {
		if k != "preset" {
			fields[k] = v
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, fmt.Errorf("failed to create config decoder: %w", err)
	}
	if err := decoder.Decode(fields); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML bytes into a Config.
func ParseConfig(data []byte) (Config, error) {
	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return DecodeConfig(raw)
}

// LoadConfig reads a YAML config file. A missing file yields Default.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}
