package main

import (
	"os"
	"strings"

	logging "github.com/op/go-logging"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	_defaultLogLevel = "info"
	_defaultFormat   = _formatText
	_envPrefix       = "INTERVALS"
	_logFormat       = `%{time:15:04:05.000} %{level:.4s} %{module}: %{message}`
)

const (
	_formatText = "text"
	_formatYAML = "yaml"
)

type _Config struct {
	LogLevel string `mapstructure:"log-level"`
	Format   string `mapstructure:"format"`
	Float    bool   `mapstructure:"float"`
	Validate bool   `mapstructure:"validate"`
}

func _bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.String("config", "", "config file (yaml, toml or json)")
	flags.String("log-level", _defaultLogLevel, "log level: debug, info, warning, error")
	flags.String("format", _defaultFormat, "output format: text or yaml")
	flags.Bool("float", false, "use float64 endpoints instead of int64")
	flags.Bool("validate", false, "reject input sets that are unsorted, overlapping or touching")

	for _, name := range []string{"log-level", "format", "float", "validate"} {
		v.BindPFlag(name, flags.Lookup(name))
	}

	v.SetEnvPrefix(_envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

func _loadConfig(v *viper.Viper, flags *pflag.FlagSet) (*_Config, error) {
	if name, _ := flags.GetString("config"); name != "" {
		v.SetConfigFile(name)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", name)
		}
	}

	var c _Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}

	switch c.Format {
	case _formatText, _formatYAML:
	default:
		return nil, errors.Errorf("unknown format %q", c.Format)
	}
	return &c, nil
}

func _setupLogging(level string) error {
	l, err := logging.LogLevel(level)
	if err != nil {
		return errors.Wrapf(err, "log level %q", level)
	}
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(_logFormat))
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(l, "")
	logging.SetBackend(leveled)
	return nil
}
