package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/aretw0/workflowy"
	"github.com/spf13/cobra"
)

var (
	createName string
	createNote string
	createAt   string
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create [parent]",
	Short: "Create a node",
	Long: `Create a node under the parent (the root when omitted). --at places it
at "top" (the default), "bottom", or a zero-based index among the siblings.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if createName == "" {
			fmt.Println("Error: --name is required")
			cmd.Usage()
			os.Exit(1)
		}

		position, err := parsePosition(createAt)
		if err != nil {
			fatal("Invalid --at value", err)
		}

		client, err := newClient()
		if err != nil {
			fatal("Failed to initialize client", err)
		}

		parent := workflowy.RootID
		if len(args) > 0 {
			parent = args[0]
		}

		node, err := client.CreateNode(context.Background(), parent, workflowy.CreateRequest{
			Name:     createName,
			Note:     createNote,
			Position: position,
		})
		if err != nil {
			fatal("Failed to create node", err)
		}

		fmt.Printf("Node created: %s\n", node.ID)
	},
}

func parsePosition(s string) (workflowy.Position, error) {
	switch s {
	case "", "top":
		return workflowy.PositionTop, nil
	case "bottom":
		return workflowy.PositionBottom, nil
	}
	index, err := strconv.Atoi(s)
	if err != nil {
		return workflowy.Position{}, fmt.Errorf("want top, bottom or an index, got %q", s)
	}
	return workflowy.PositionAt(index), nil
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVarP(&createName, "name", "n", "", "Name of the new node")
	createCmd.Flags().StringVar(&createNote, "note", "", "Note attached to the new node")
	createCmd.Flags().StringVar(&createAt, "at", "top", "Position among siblings: top, bottom or an index")
	createCmd.MarkFlagRequired("name")
}
