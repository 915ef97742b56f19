package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/workflowy"
	"github.com/spf13/cobra"
)

var (
	token   string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wf",
	Short: "A command line client for the Workflowy tree",
	Long: `wf talks to your Workflowy account from the terminal.
Nodes are addressed by canonical id, by the 12-character short id found
at the end of app URLs, or by a slash-separated path of exact names
(e.g. "Projects/Home").`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newClient builds a service from the persistent flags. With no --token it
// falls back to discovery via the environment and the config file.
func newClient() (*workflowy.Service, error) {
	return workflowy.New(
		workflowy.WithToken(token),
		workflowy.WithLogger(slog.Default()),
	)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "API token (default: "+workflowy.EnvToken+" or the config file)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}
