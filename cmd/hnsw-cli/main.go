// Command hnsw-cli is a thin driver over the collaborators in
// pkg/loader, pkg/bench, and pkg/cluster, wired up with cobra and
// viper.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "v0.1.0"
	cfgFile string

	flagM              int
	flagEfConstruction int
	flagEfSearch       int
	flagMaxLayer       int
	flagLogLevel       string
	flagLogFormat      string
)

// rootCmd runs the clustering collaborator with a fixed positional
// contract: `<input_dir> <output_dir> <num_clusters>`, exit 0 on
// success, non-zero with a human-readable stderr message otherwise.
var rootCmd = &cobra.Command{
	Use:     "hnsw-cli <input_dir> <output_dir> <num_clusters>",
	Short:   "hnsw-cli clusters a directory of vector files by nearest-neighbor routing",
	Version: version,
	Args:    cobra.ExactArgs(3),
	RunE:    runCluster,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.hnsw-cli.yaml)")
	rootCmd.PersistentFlags().IntVar(&flagM, "m", 16, "max bidirectional connections per node above layer 0")
	rootCmd.PersistentFlags().IntVar(&flagEfConstruction, "ef-construction", 128, "candidate list size during construction")
	rootCmd.PersistentFlags().IntVar(&flagEfSearch, "ef-search", 64, "candidate list size during search")
	rootCmd.PersistentFlags().IntVar(&flagMaxLayer, "max-layer", 16, "maximum graph layer")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "console", "log format (json, console)")

	viper.BindPFlag("m", rootCmd.PersistentFlags().Lookup("m"))
	viper.BindPFlag("ef-construction", rootCmd.PersistentFlags().Lookup("ef-construction"))
	viper.BindPFlag("ef-search", rootCmd.PersistentFlags().Lookup("ef-search"))
	viper.BindPFlag("max-layer", rootCmd.PersistentFlags().Lookup("max-layer"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log-format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(benchCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigType("yaml")
			viper.SetConfigName(".hnsw-cli")
		}
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
