package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete [target]",
	Short: "Mark a node completed",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newClient()
		if err != nil {
			fatal("Failed to initialize client", err)
		}

		node, err := client.CompleteNode(context.Background(), args[0])
		if err != nil {
			fatal("Failed to complete node", err)
		}

		fmt.Printf("Node completed: %s\n", node.ID)
	},
}

var uncompleteCmd = &cobra.Command{
	Use:   "uncomplete [target]",
	Short: "Clear a node's completed state",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newClient()
		if err != nil {
			fatal("Failed to initialize client", err)
		}

		node, err := client.UncompleteNode(context.Background(), args[0])
		if err != nil {
			fatal("Failed to uncomplete node", err)
		}

		fmt.Printf("Node uncompleted: %s\n", node.ID)
	},
}

func init() {
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(uncompleteCmd)
}
