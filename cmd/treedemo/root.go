package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type (
	treeDemoApp struct {
		rootCmd    *cobra.Command
		rootConfig *rootConfiguration
	}
	rootConfiguration struct {
		// Configuration file, YAML. Optional.
		CfgFile  string
		LogLevel string
		log      zerolog.Logger
		errOut   io.Writer
	}
)

const (
	// The prefix for configuration keys inside environment.
	envPrefix = "TREEDEMO"
)

// New creates the treedemo application writing reports to out and logs to errOut.
func New(out, errOut io.Writer) *treeDemoApp {
	config := &rootConfiguration{errOut: errOut, log: zerolog.Nop()}
	rootCmd := &cobra.Command{
		Use:           "treedemo",
		Short:         "Builds binary search trees from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initializeConfig(cmd, config); err != nil {
				return err
			}
			return initializeLogger(config)
		},
	}
	rootCmd.PersistentFlags().StringVar(&config.CfgFile, "config", "", "config file location (YAML)")
	rootCmd.PersistentFlags().StringVar(&config.LogLevel, "log-level", "info", "log level: trace, debug, info, warn, error")
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.AddCommand(newBuildCmd(config))
	return &treeDemoApp{rootCmd, config}
}

// Execute runs the application with os.Args.
func (a *treeDemoApp) Execute() error {
	return a.ExecuteArgs(os.Args[1:])
}

func (a *treeDemoApp) ExecuteArgs(args []string) error {
	a.rootCmd.SetArgs(args)
	err := a.rootCmd.Execute()
	if err != nil {
		a.rootConfig.log.Error().Err(err).Msg("treedemo failed")
		fmt.Fprintln(a.rootConfig.errOut, "Error:", err)
	}
	return err
}

func initializeLogger(config *rootConfiguration) error {
	lvl, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	config.log = zerolog.New(zerolog.ConsoleWriter{Out: config.errOut, NoColor: true}).
		Level(lvl).With().Timestamp().Logger()
	return nil
}

// initializeConfig reads in the config file and ENV variables if set.
func initializeConfig(cmd *cobra.Command, rootConfig *rootConfiguration) error {
	v := viper.New()
	if rootConfig.CfgFile != "" {
		v.SetConfigFile(rootConfig.CfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", rootConfig.CfgFile, err)
		}
	}

	// Flags bind to prefixed environment variables, --log-level to TREEDEMO_LOG_LEVEL.
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := bindFlags(cmd, v); err != nil {
		return fmt.Errorf("bind flags failed: %w", err)
	}
	return nil
}

// Bind each cobra flag to its associated viper configuration (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var bindFlagErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if bindFlagErr != nil {
			return
		}
		// Environment variables can't have dashes in them.
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				bindFlagErr = fmt.Errorf("could not bind env to flag %s: %w", f.Name, err)
				return
			}
		}
		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && v.IsSet(f.Name) {
			if err := cmd.Flags().Set(f.Name, flagValue(v.Get(f.Name))); err != nil {
				bindFlagErr = fmt.Errorf("could not set value to flag %s: %w", f.Name, err)
			}
		}
	})
	return bindFlagErr
}

// flagValue formats a viper value the way pflag parses it; lists from config files become
// comma separated.
func flagValue(val any) string {
	switch vs := val.(type) {
	case []any:
		s := make([]string, len(vs))
		for i, e := range vs {
			s[i] = fmt.Sprint(e)
		}
		return strings.Join(s, ",")
	case []string:
		return strings.Join(vs, ",")
	default:
		return fmt.Sprintf("%v", val)
	}
}
