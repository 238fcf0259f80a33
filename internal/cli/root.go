// Package cli implements the sailfish command-line tool.
//
// Configuration follows the usual precedence, highest first:
//
//	1. Command-line flags (--data, --iterations, ...)
//	2. SAILFISH_* environment variables (SAILFISH_RENDER_DATA, ...)
//	3. Configuration file (.sailfish.yaml, or SAILFISH_CONFIG_FILE)
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/apps4uco/sailfish/internal/config"
	"github.com/apps4uco/sailfish/internal/logging"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sailfish",
	Short: "Render, escape and benchmark sailfish template output",
	Long: `Sailfish is the rendering runtime behind compiled templates. This tool
drives it from the command line: render the built-in demo page with your
own data, escape text the way interpolated values are escaped, and measure
render throughput.

Quick Start:
  sailfish render                     Render the demo page to stdout
  sailfish render --data page.yaml    Render with data from a YAML file
  sailfish escape '<b>1 & 2</b>'      Escape a string
  sailfish bench                      Time repeated renders
  sailfish version                    Show version information`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .sailfish.yaml, can also use SAILFISH_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// initConfig wires the configuration sources together before any RunE fires.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("SAILFISH_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".sailfish")
	}

	viper.SetEnvPrefix("SAILFISH")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing config file is fine; flags and defaults carry the rest.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the logger commands share from loaded config.
func newLogger(cfg *config.Config) logging.Logger {
	return logging.New(&logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stderr,
	})
}
