// Package outline materializes point-in-time snapshots of a subtree.
//
// A snapshot is not a cache: nothing is invalidated or kept in sync. It is
// a walk of the remote tree as it stood while Build ran, useful for export
// and display.
package outline

import (
	"context"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/aretw0/workflowy/pkg/core"
)

// Source is the slice of the operations façade the builder needs.
type Source interface {
	GetNode(ctx context.Context, target any) (core.Node, error)
	ListNodes(ctx context.Context, parent any) ([]core.Node, error)
}

// Item is one node of a materialized snapshot. Children keep the sibling
// order the service reports.
type Item struct {
	ID        string  `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	Note      string  `json:"note,omitempty" yaml:"note,omitempty"`
	Completed bool    `json:"completed,omitempty" yaml:"completed,omitempty"`
	Children  []*Item `json:"children,omitempty" yaml:"children,omitempty"`
}

func itemFrom(n core.Node) *Item {
	return &Item{ID: n.ID, Name: n.Name, Note: n.Note, Completed: n.Completed()}
}

const defaultConcurrency = 4

type config struct {
	maxDepth    int
	concurrency int
	pattern     string
	skipDone    bool
}

// Option configures a Build call.
type Option func(*config)

// WithMaxDepth limits how many levels below the target are fetched.
// Zero fetches the whole subtree.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		c.maxDepth = depth
	}
}

// WithConcurrency bounds how many child listings are in flight at once.
// Each listing is an independent remote call; the default keeps a small
// number of them running together.
func WithConcurrency(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithFilter keeps only items whose slash-joined name path, relative to the
// target, matches the doublestar pattern. Ancestors of a match survive so
// the tree stays connected.
func WithFilter(pattern string) Option {
	return func(c *config) {
		c.pattern = pattern
	}
}

// WithoutCompleted skips completed nodes and their entire subtrees.
// The target itself always stays; it was asked for by name.
func WithoutCompleted() Option {
	return func(c *config) {
		c.skipDone = true
	}
}

// Build walks the subtree under target through src and returns its
// snapshot. The walk proceeds level by level with bounded concurrency;
// sibling order within each item is preserved.
func Build(ctx context.Context, src Source, target any, opts ...Option) (*Item, error) {
	cfg := config{concurrency: defaultConcurrency}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.pattern != "" && !doublestar.ValidatePattern(cfg.pattern) {
		return nil, fmt.Errorf("%w: bad filter pattern %q", core.ErrValidation, cfg.pattern)
	}

	node, err := src.GetNode(ctx, target)
	if err != nil {
		return nil, err
	}
	root := itemFrom(node)

	current := []*Item{root}
	for round := 0; len(current) > 0 && (cfg.maxDepth == 0 || round < cfg.maxDepth); round++ {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(cfg.concurrency)
		for _, item := range current {
			g.Go(func() error {
				nodes, err := src.ListNodes(gctx, core.ByID(item.ID))
				if err != nil {
					return err
				}
				children := make([]*Item, 0, len(nodes))
				for _, n := range nodes {
					if cfg.skipDone && n.Completed() {
						continue
					}
					children = append(children, itemFrom(n))
				}
				item.Children = children
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		var next []*Item
		for _, item := range current {
			next = append(next, item.Children...)
		}
		current = next
	}

	if cfg.pattern != "" {
		kept := root.Children[:0]
		for _, child := range root.Children {
			if keep(child, child.Name, cfg.pattern) {
				kept = append(kept, child)
			}
		}
		root.Children = kept
	}
	return root, nil
}

// keep prunes bottom-up: an item survives when its path matches or any
// descendant survived. The pattern was validated in Build, so the match
// error is impossible here.
func keep(item *Item, path, pattern string) bool {
	kept := item.Children[:0]
	for _, child := range item.Children {
		if keep(child, path+"/"+child.Name, pattern) {
			kept = append(kept, child)
		}
	}
	item.Children = kept
	if len(item.Children) > 0 {
		return true
	}
	matched, _ := doublestar.Match(pattern, path)
	return matched
}
