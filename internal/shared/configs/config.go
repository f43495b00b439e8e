package configs

// Config holds all configuration for the application.
type Config struct {
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Input   InputConfig   `mapstructure:"input" validate:"required"`
	Output  OutputConfig  `mapstructure:"output" validate:"required"`
	Parser  ParserConfig  `mapstructure:"parser"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
}

// InputConfig holds the access log location.
type InputConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// OutputConfig holds report destinations.
type OutputConfig struct {
	ReportPath  string `mapstructure:"report_path" validate:"required"`
	SummaryPath string `mapstructure:"summary_path"` // optional JSON snapshot
}

// ParserConfig holds line parser configuration.
type ParserConfig struct {
	MaxLineBytes int `mapstructure:"max_line_bytes" validate:"min=1024"`
}

// MetricsConfig holds metrics export configuration.
type MetricsConfig struct {
	TextfilePath string `mapstructure:"textfile_path"` // optional, node exporter textfile
}
