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
	getJSON bool
)

var getCmd = &cobra.Command{
	Use:   "get [target]",
	Short: "Fetch a single node",
	Long:  `Fetch a node by id, short id or path. Prints name, note and ids by default, or the full JSON object with --json.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newClient()
		if err != nil {
			fatal("Failed to initialize client", err)
		}

		node, err := client.GetNode(context.Background(), args[0])
		if err != nil {
			fatal("Failed to fetch node", err)
		}

		if getJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(node); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		fmt.Println(node.Name)
		if node.Note != "" {
			fmt.Println(node.Note)
		}
		fmt.Printf("id: %s\n", node.ID)
		if url, err := workflowy.NodeURL(node.ID); err == nil {
			fmt.Printf("url: %s\n", url)
		}
		if node.Completed() {
			fmt.Println("completed: yes")
		}
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().BoolVar(&getJSON, "json", false, "Output in JSON format")
}
