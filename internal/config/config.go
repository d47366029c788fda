// Package config defines the settings and request structures built from the
// command line, an optional YAML file and the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/iwvelando/loan-calculator/pkg/constants"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration holds the ambient settings for loan-calculator. Loan
// parameters are not part of it; see RequestFromFlags.
type Configuration struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level"`      // debug, info, warn, error
	Format     string `mapstructure:"format"`     // json, console
	OutputFile string `mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `mapstructure:"format"` // plain, pretty, csv
}

// NewFlagSet declares every command line flag. Errors are returned from
// Parse rather than printed.
func NewFlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.Float64(constants.FlagPrincipal, 0, "loan principal")
	flags.Float64(constants.FlagInterest, 0, "annual interest rate in percent, without the % sign")
	flags.Int(constants.FlagPeriods, 0, "number of monthly payments")
	flags.Float64(constants.FlagPayment, 0, "fixed monthly payment (annuity only)")
	flags.String(constants.FlagType, "", "loan type: annuity or diff")
	flags.String(constants.FlagConfig, "", "path to an optional YAML settings file")
	flags.String(constants.FlagOutputFormat, "", "type of output override: plain, pretty, csv")
	flags.String(constants.FlagLogLevel, "", "log level override (debug, info, warn, error)")
	flags.SortFlags = false
	return flags
}

// LoadConfiguration builds the settings from defaults, the YAML file at
// configPath (skipped when empty), LOANCALC_* environment variables and the
// override flags in flags, in increasing order of precedence.
func LoadConfiguration(configPath string, flags *pflag.FlagSet) (*Configuration, error) {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.level", constants.DefaultLogLevel)
	v.SetDefault("logging.format", constants.DefaultLogFormat)
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", constants.OutputFormatPlain)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %s", err)
		}
	}

	if flags != nil {
		for key, name := range map[string]string{
			"logging.level": constants.FlagLogLevel,
			"output.format": constants.FlagOutputFormat,
		} {
			if flag := flags.Lookup(name); flag != nil && flag.Changed {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("unable to bind flag %s, %s", name, err)
				}
			}
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}
