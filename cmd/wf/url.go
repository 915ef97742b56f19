package main

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/aretw0/workflowy"
)

var (
	urlCopy bool
)

var urlCmd = &cobra.Command{
	Use:   "url [target]",
	Short: "Print the app URL of a node",
	Long:  `Resolve the target and print the URL that opens it in the app. --copy also puts it on the system clipboard.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newClient()
		if err != nil {
			fatal("Failed to initialize client", err)
		}

		id, err := client.Resolve(context.Background(), args[0])
		if err != nil {
			fatal("Failed to resolve target", err)
		}

		url, err := workflowy.NodeURL(id)
		if err != nil {
			fatal("Failed to build URL", err)
		}

		if urlCopy {
			if err := clipboard.WriteAll(url); err != nil {
				fatal("Failed to copy to clipboard", err)
			}
		}

		fmt.Println(url)
	},
}

func init() {
	rootCmd.AddCommand(urlCmd)
	urlCmd.Flags().BoolVarP(&urlCopy, "copy", "c", false, "Copy the URL to the clipboard")
}
