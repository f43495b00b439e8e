package configs

import (
	"fmt"
	"strings"

	"access-log-stats/internal/shared/validators"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultInputPath    = "2.log"
	DefaultReportPath   = "2_web_output.log"
	DefaultLogLevel     = "info"
	DefaultMaxLineBytes = 1024 * 1024

	envPrefix = "ACCESSLOG"
)

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"input":            "input.path",
	"output":           "output.report_path",
	"summary":          "output.summary_path",
	"metrics-textfile": "metrics.textfile_path",
	"log-level":        "log.level",
	"max-line-bytes":   "parser.max_line_bytes",
}

// RegisterFlags declares the flags LoadConfig understands on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "optional YAML config file")
	fs.String("input", DefaultInputPath, "access log in Combined Log Format")
	fs.String("output", DefaultReportPath, "text report destination, overwritten on every run")
	fs.String("summary", "", "optional JSON summary destination")
	fs.String("metrics-textfile", "", "optional node exporter textfile destination")
	fs.String("log-level", DefaultLogLevel, "log level")
	fs.Int("max-line-bytes", DefaultMaxLineBytes, "longest accepted input line in bytes")
}

// LoadConfig reads configuration from defaults, the optional file at configPath,
// ACCESSLOG_* environment variables and the changed flags of fs, then validates it.
// fs may be nil.
var LoadConfig = func(configPath string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("input.path", DefaultInputPath)
	v.SetDefault("output.report_path", DefaultReportPath)
	v.SetDefault("output.summary_path", "")
	v.SetDefault("parser.max_line_bytes", DefaultMaxLineBytes)
	v.SetDefault("metrics.textfile_path", "")

	// Read from file
	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			flag := fs.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %q: %w", name, err)
			}
		}
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()

	// Namespace is "Config.input.path"; drop the root struct name
	if parts := strings.Split(e.Namespace(), "."); len(parts) >= 2 {
		field = strings.Join(parts[1:], ".")
	}

	switch tag := e.Tag(); tag {
	case "required":
		return fmt.Sprintf("%s (required)", field)
	case "min", "max", "oneof":
		return fmt.Sprintf("%s (%s=%s)", field, tag, e.Param())
	default:
		return fmt.Sprintf("%s (%s)", field, tag)
	}
}
