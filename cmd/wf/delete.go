package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [target]",
	Aliases: []string{"rm"},
	Short:   "Delete a node and its subtree",
	Long:    `Delete permanently removes a node and everything under it. There is no undo.`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newClient()
		if err != nil {
			fatal("Failed to initialize client", err)
		}

		if err := client.DeleteNode(context.Background(), args[0]); err != nil {
			fatal("Failed to delete node", err)
		}

		fmt.Printf("Node deleted: %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
