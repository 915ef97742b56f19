package outline_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/workflowy/pkg/core"
	"github.com/aretw0/workflowy/pkg/outline"
)

const (
	projectsID = "11111111-1111-4111-8111-111111111111"
	gardenID   = "22222222-2222-4222-8222-222222222222"
	workID     = "33333333-3333-4333-8333-333333333333"
	errandsID  = "44444444-4444-4444-8444-444444444444"
	milkID     = "55555555-5555-4555-8555-555555555555"
)

// fakeSource serves a fixed tree. Listings may run concurrently, so the
// call counter sits behind a mutex.
type fakeSource struct {
	mu        sync.Mutex
	nodes     map[string]core.Node
	children  map[string][]string
	failList  map[string]error
	getCalls  int
	listCalls int
}

func newFakeSource() *fakeSource {
	completed := int64(1700000000)
	f := &fakeSource{
		nodes: map[string]core.Node{
			core.RootID: {ID: core.RootID, Name: "Home"},
			projectsID:  {ID: projectsID, Name: "Projects"},
			gardenID:    {ID: gardenID, Name: "Garden", Note: "plant things"},
			workID:      {ID: workID, Name: "Work"},
			errandsID:   {ID: errandsID, Name: "Errands", CompletedAt: &completed},
			milkID:      {ID: milkID, Name: "Milk"},
		},
		children: map[string][]string{
			core.RootID: {projectsID, errandsID},
			projectsID:  {gardenID, workID},
			errandsID:   {milkID},
		},
		failList: map[string]error{},
	}
	return f
}

func (f *fakeSource) targetID(target any) string {
	switch t := target.(type) {
	case string:
		return t
	case core.Ref:
		return t.String()
	}
	return ""
}

func (f *fakeSource) GetNode(_ context.Context, target any) (core.Node, error) {
	f.mu.Lock()
	f.getCalls++
	f.mu.Unlock()
	n, ok := f.nodes[f.targetID(target)]
	if !ok {
		return core.Node{}, &core.StatusError{StatusCode: 404}
	}
	return n, nil
}

func (f *fakeSource) ListNodes(_ context.Context, parent any) ([]core.Node, error) {
	id := f.targetID(parent)
	f.mu.Lock()
	f.listCalls++
	f.mu.Unlock()
	if err := f.failList[id]; err != nil {
		return nil, err
	}
	ids := f.children[id]
	nodes := make([]core.Node, 0, len(ids))
	for _, childID := range ids {
		nodes = append(nodes, f.nodes[childID])
	}
	return nodes, nil
}

func names(items []*outline.Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name)
	}
	return out
}

func TestBuild_WalksWholeSubtree(t *testing.T) {
	src := newFakeSource()

	root, err := outline.Build(context.Background(), src, core.RootID)
	require.NoError(t, err)

	require.Equal(t, "Home", root.Name)
	require.Equal(t, []string{"Projects", "Errands"}, names(root.Children))
	assert.Equal(t, []string{"Garden", "Work"}, names(root.Children[0].Children))
	assert.Equal(t, []string{"Milk"}, names(root.Children[1].Children))
	assert.True(t, root.Children[1].Completed)
	assert.Equal(t, "plant things", root.Children[0].Children[0].Note)
}

func TestBuild_MaxDepth(t *testing.T) {
	src := newFakeSource()

	root, err := outline.Build(context.Background(), src, core.RootID,
		outline.WithMaxDepth(1))
	require.NoError(t, err)

	require.Equal(t, []string{"Projects", "Errands"}, names(root.Children))
	assert.Empty(t, root.Children[0].Children)
	assert.Equal(t, 1, src.listCalls)
}

func TestBuild_SubtreeTarget(t *testing.T) {
	src := newFakeSource()

	root, err := outline.Build(context.Background(), src, projectsID,
		outline.WithConcurrency(2))
	require.NoError(t, err)

	assert.Equal(t, "Projects", root.Name)
	assert.Equal(t, []string{"Garden", "Work"}, names(root.Children))
}

func TestBuild_WithoutCompleted(t *testing.T) {
	src := newFakeSource()

	root, err := outline.Build(context.Background(), src, core.RootID,
		outline.WithoutCompleted())
	require.NoError(t, err)

	// Errands is completed; it and its subtree never get listed.
	assert.Equal(t, []string{"Projects"}, names(root.Children))
}

func TestBuild_Filter(t *testing.T) {
	t.Run("direct children of Projects", func(t *testing.T) {
		src := newFakeSource()

		root, err := outline.Build(context.Background(), src, core.RootID,
			outline.WithFilter("Projects/*"))
		require.NoError(t, err)

		require.Equal(t, []string{"Projects"}, names(root.Children))
		assert.Equal(t, []string{"Garden", "Work"}, names(root.Children[0].Children))
	})

	t.Run("ancestors of a match survive", func(t *testing.T) {
		src := newFakeSource()

		root, err := outline.Build(context.Background(), src, core.RootID,
			outline.WithFilter("**/Garden"))
		require.NoError(t, err)

		require.Equal(t, []string{"Projects"}, names(root.Children))
		assert.Equal(t, []string{"Garden"}, names(root.Children[0].Children))
	})
}

func TestBuild_InvalidFilterFailsBeforeAnyCall(t *testing.T) {
	src := newFakeSource()

	_, err := outline.Build(context.Background(), src, core.RootID,
		outline.WithFilter("[oops"))
	require.ErrorIs(t, err, core.ErrValidation)
	assert.Zero(t, src.getCalls)
	assert.Zero(t, src.listCalls)
}

func TestBuild_ListErrorPropagates(t *testing.T) {
	src := newFakeSource()
	src.failList[projectsID] = &core.StatusError{StatusCode: 500}

	_, err := outline.Build(context.Background(), src, core.RootID)
	require.ErrorIs(t, err, core.ErrServer)
}

func TestBuild_ExportShapes(t *testing.T) {
	src := newFakeSource()

	root, err := outline.Build(context.Background(), src, projectsID)
	require.NoError(t, err)

	out, err := yaml.Marshal(root)
	require.NoError(t, err)
	assert.Contains(t, string(out), "name: Projects")
	assert.Contains(t, string(out), "note: plant things")

	raw, err := json.Marshal(root.Children[1])
	require.NoError(t, err)
	// Work is a leaf and not completed; both fields marshal away.
	assert.NotContains(t, string(raw), "children")
	assert.NotContains(t, string(raw), "completed")
}
