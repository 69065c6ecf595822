package config

import (
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigLogLevel        = "log-level"
	ConfigFormat          = "format"
	ConfigVerifyStages    = "verify-stages"
	ConfigCanonicalStages = "canonical-stages"
	ConfigWorkers         = "workers"
)

type Config struct {
	viper.Viper
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigLogLevel, "info")
	v.SetDefault(ConfigFormat, "text")
	v.SetDefault(ConfigVerifyStages, -1)
	v.SetDefault(ConfigCanonicalStages, -1)
	v.SetDefault(ConfigWorkers, runtime.NumCPU())
}

// DefaultConfig returns a config with every default set and nothing read
// from flags or the environment.
func DefaultConfig() *Config {
	c := &Config{Viper: *viper.New()}
	setDefaults(&c.Viper)
	return c
}

// Load reads flags from args and TEEKO_* environment variables. Flags win
// over the environment, which wins over defaults.
func (c *Config) Load(args []string) error {
	c.Viper = *viper.New()
	setDefaults(&c.Viper)

	fs := pflag.NewFlagSet("teeko", pflag.ContinueOnError)
	fs.String(ConfigLogLevel, "info", "log level: debug, info or disabled")
	fs.String(ConfigFormat, "text", "report format: text, yaml or json")
	fs.Int(ConfigVerifyStages, -1, "verify index round trips for every stage up to this one (-1 for none)")
	fs.Int(ConfigCanonicalStages, -1, "count symmetry-canonical positions up to this stage (-1 for none)")
	fs.Int(ConfigWorkers, runtime.NumCPU(), "worker goroutines for stage scans")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	c.SetEnvPrefix("teeko")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	return nil
}
