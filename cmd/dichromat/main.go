package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/juspurplan/ee371r-project/internal/config"
	"github.com/spf13/cobra"
)

// cfg holds the defaults loaded from --config (or the built-in ones).
var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:               "dichromat",
	Short:             "Simulate and correct dichromatic color vision in images",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "TOML file with default options")
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	// Log to stderr instead of glog's default temp files.
	flag.Set("logtostderr", "true")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	// glog only needs the Go flag set marked as parsed; cobra already parsed the values.
	flag.CommandLine.Parse(nil)

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return nil
	}
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = loaded
	glog.V(1).Infof("loaded config %s: %+v", path, *cfg)
	return nil
}

func main() {
	err := rootCmd.Execute()
	glog.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
