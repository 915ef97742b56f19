package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/workflowy"
	"github.com/spf13/cobra"
)

var (
	listJSON bool
)

var listCmd = &cobra.Command{
	Use:   "list [target]",
	Short: "List the children of a node",
	Long:  `List the direct children of a node in sibling order. Defaults to the root when no target is given.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newClient()
		if err != nil {
			fatal("Failed to initialize client", err)
		}

		target := workflowy.RootID
		if len(args) > 0 {
			target = args[0]
		}

		nodes, err := client.ListNodes(context.Background(), target)
		if err != nil {
			fatal("Failed to list nodes", err)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(nodes); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, node := range nodes {
			marker := " "
			if node.Completed() {
				marker = "x"
			}
			short, err := workflowy.ShortID(node.ID)
			if err != nil {
				short = node.ID
			}
			fmt.Printf("[%s] %s  %s\n", marker, short, node.Name)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
