package commands

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix          = "LSPMYQL"
	defaultCatalogName = "completions.json"
)

// Config is the merged configuration. Precedence, highest first: flags,
// LSPMYQL_* environment variables, the --config file, defaults.
type Config struct {
	Catalog string `mapstructure:"catalog"`
	Log     string `mapstructure:"log"`
	Verbose int    `mapstructure:"verbose"`
	TCP     string `mapstructure:"tcp"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("catalog", defaultCatalogPath())
	v.SetDefault("log", "")
	v.SetDefault("verbose", 0)
	v.SetDefault("tcp", "")
}

// defaultCatalogPath is completions.json in the executable's directory.
func defaultCatalogPath() string {
	executable, err := os.Executable()
	if err != nil {
		return defaultCatalogName
	}
	return filepath.Join(filepath.Dir(executable), defaultCatalogName)
}

func loadConfig(command *cobra.Command) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.BindPFlags(command.Flags()); err != nil {
		return nil, errors.Wrap(err, "bind flags")
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %q", path)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	// An empty flag or variable must not hide the default catalog.
	if config.Catalog == "" {
		config.Catalog = defaultCatalogPath()
	}

	return &config, nil
}
