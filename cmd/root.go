package cmd

import (
	"fmt"

	"github.com/matt-g-everett/posetrace/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Version is set at build time
	Version = "0.1.0"

	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "posetrace",
	Short: "Record scene and pose traces for external viewers",
	Long: `posetrace records static scene objects and per-frame entity poses into a
JSON trace document. Poses that barely moved since they were last recorded
are dropped to keep long traces small.

Commands:
  record  - Record a fixed number of frames and write the document
  serve   - Record continuously, serving and publishing the document

Example:
  posetrace record --config scene.yaml --frames 600 --out trace.json
  posetrace serve --config scene.yaml`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (defaults are used when empty)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable development logging")

	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(serveCmd)
}

// Execute runs the CLI
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

func loadConfig() (config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
