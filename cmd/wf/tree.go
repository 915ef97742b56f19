package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/workflowy"
	"github.com/aretw0/workflowy/pkg/outline"
)

var (
	treeDepth    int
	treeFilter   string
	treeHideDone bool
	treeOutput   string
	treeJobs     int
)

var (
	rootStyle = lipgloss.NewStyle().Bold(true)
	doneStyle = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	noteStyle = lipgloss.NewStyle().Faint(true)
)

var treeCmd = &cobra.Command{
	Use:   "tree [target]",
	Short: "Print a subtree as an outline",
	Long: `Walk the subtree under the target and print it as an indented outline.
Defaults to the root when no target is given. Use -o json or -o yaml to
export the snapshot instead of rendering it.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newClient()
		if err != nil {
			fatal("Failed to initialize client", err)
		}

		target := workflowy.RootID
		if len(args) > 0 {
			target = args[0]
		}

		opts := []outline.Option{
			outline.WithMaxDepth(treeDepth),
			outline.WithConcurrency(treeJobs),
		}
		if treeFilter != "" {
			opts = append(opts, outline.WithFilter(treeFilter))
		}
		if treeHideDone {
			opts = append(opts, outline.WithoutCompleted())
		}

		item, err := outline.Build(context.Background(), client, target, opts...)
		if err != nil {
			fatal("Failed to build outline", err)
		}

		switch treeOutput {
		case "json":
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(item); err != nil {
				fatal("Failed to encode JSON", err)
			}
		case "yaml":
			out, err := yaml.Marshal(item)
			if err != nil {
				fatal("Failed to encode YAML", err)
			}
			os.Stdout.Write(out)
		case "text":
			styled := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
			printItem(item, 0, styled)
		default:
			fatal("Unknown output format", fmt.Errorf("want text, json or yaml, got %q", treeOutput))
		}
	},
}

func printItem(item *outline.Item, depth int, styled bool) {
	label := item.Name
	switch {
	case item.Completed && styled:
		label = doneStyle.Render(label)
	case item.Completed:
		label += " (done)"
	case depth == 0 && styled:
		label = rootStyle.Render(label)
	}

	fmt.Printf("%s- %s\n", strings.Repeat("  ", depth), label)
	if item.Note != "" {
		note := item.Note
		if styled {
			note = noteStyle.Render(note)
		}
		fmt.Printf("%s  %s\n", strings.Repeat("  ", depth), note)
	}

	for _, child := range item.Children {
		printItem(child, depth+1, styled)
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().IntVarP(&treeDepth, "depth", "d", 0, "Maximum depth to walk (0 = unlimited)")
	treeCmd.Flags().StringVarP(&treeFilter, "filter", "f", "", "Keep only paths matching a glob pattern (e.g. 'Projects/**')")
	treeCmd.Flags().BoolVar(&treeHideDone, "no-completed", false, "Skip completed nodes and their subtrees")
	treeCmd.Flags().StringVarP(&treeOutput, "output", "o", "text", "Output format: text, json or yaml")
	treeCmd.Flags().IntVarP(&treeJobs, "jobs", "j", 0, "Concurrent listings while walking (0 = default)")
}
