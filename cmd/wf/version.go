package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/workflowy"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of wf",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wf version %s\n", strings.TrimSpace(workflowy.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
