package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/workflowy"
	"github.com/spf13/cobra"
)

var (
	updateName string
	updateNote string
)

var updateCmd = &cobra.Command{
	Use:   "update [target]",
	Short: "Update a node's name or note",
	Long:  `Update sends only the fields whose flags were set; everything else keeps its current value. Passing --note "" clears the note.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var req workflowy.UpdateRequest
		if cmd.Flags().Changed("name") {
			req.Name = &updateName
		}
		if cmd.Flags().Changed("note") {
			req.Note = &updateNote
		}

		if req.Empty() {
			fmt.Println("Error: nothing to update, pass --name or --note")
			cmd.Usage()
			os.Exit(1)
		}

		client, err := newClient()
		if err != nil {
			fatal("Failed to initialize client", err)
		}

		node, err := client.UpdateNode(context.Background(), args[0], req)
		if err != nil {
			fatal("Failed to update node", err)
		}

		fmt.Printf("Node updated: %s\n", node.ID)
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringVarP(&updateName, "name", "n", "", "New name")
	updateCmd.Flags().StringVar(&updateNote, "note", "", "New note")
}
