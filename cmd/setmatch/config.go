package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// defaultMaxSize limits single file size to 10 MiB unless overridden.
const defaultMaxSize int64 = 10 << 20

// config holds the optional defaults read from setmatch.yaml. Flags
// given on the command line always win.
type config struct {
	Format  string `mapstructure:"format"`
	Index   bool   `mapstructure:"index"`
	MaxSize int64  `mapstructure:"max_size"`
	Verbose bool   `mapstructure:"verbose"`
}

func defaultConfig() *config {
	return &config{MaxSize: defaultMaxSize}
}

// loadConfig reads setmatch.yaml from the working directory or from
// $HOME/.config/setmatch. A missing file yields the built-in defaults.
func loadConfig() (*config, error) {
	v := viper.New()
	v.SetConfigName("setmatch")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "setmatch"))
	}
	v.SetDefault("max_size", defaultMaxSize)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// apply fills flags the user did not set from the config file. The
// configured format only applies when an output file is requested,
// terminal rendering has no format to configure.
func (cfg *config) apply(cmd *cobra.Command) {
	flags := cmd.Flags()
	if !flags.Changed("format") && cfg.Format != "" && rootCmd.output != "" {
		rootCmd.format = cfg.Format
	}
	if !flags.Changed("index") {
		rootCmd.index = cfg.Index
	}
	if !flags.Changed("max-size") {
		rootCmd.maxSize = cfg.MaxSize
	}
	if !flags.Changed("verbose") && cfg.Verbose {
		rootCmd.verbose = true
	}
}
