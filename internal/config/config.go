package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Sources SourcesConfig `yaml:"sources" mapstructure:"sources"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	HTTP    HTTPConfig    `yaml:"http" mapstructure:"http"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// SourcesConfig holds the URLs of the two upstream rate datasets.
type SourcesConfig struct {
	SalesTaxURL string `yaml:"sales_tax_url" mapstructure:"sales_tax_url"`
	EUVATURL    string `yaml:"eu_vat_url" mapstructure:"eu_vat_url"`
}

// OutputConfig configures where the merged dataset is written.
// RawDir, when set, keeps a copy of each raw upstream payload for debugging.
type OutputConfig struct {
	Path   string `yaml:"path" mapstructure:"path"`
	RawDir string `yaml:"raw_dir" mapstructure:"raw_dir"`
}

// HTTPConfig configures the outbound HTTP fetcher.
type HTTPConfig struct {
	UserAgent   string `yaml:"user_agent" mapstructure:"user_agent"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// ServerConfig configures the rates API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("VATSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("sources.sales_tax_url", "https://github.com/valeriansaliou/node-sales-tax/raw/master/res/sales_tax_rates.json")
	v.SetDefault("sources.eu_vat_url", "https://github.com/benbucksch/eu-vat-rates/raw/master/rates.json")
	v.SetDefault("output.path", "vat_rates.json")
	v.SetDefault("output.raw_dir", "")
	v.SetDefault("http.user_agent", "vatsync/1.0")
	v.SetDefault("http.timeout_secs", 30)
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
