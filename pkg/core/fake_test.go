package core_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/workflowy/pkg/core"
)

// fakeGateway implements core.Gateway in memory. It plays the remote service
// faithfully enough for the façade properties: children are ordered, writes
// renumber priorities, and unknown ids fail with the same StatusError the
// REST adapter would produce.
type fakeGateway struct {
	nodes    map[string]core.Node
	children map[string][]string
	parents  map[string]string

	getCalls    int
	listCalls   int
	createCalls int
}

func newFakeGateway() *fakeGateway {
	g := &fakeGateway{
		nodes:    make(map[string]core.Node),
		children: make(map[string][]string),
		parents:  make(map[string]string),
	}
	g.nodes[core.RootID] = core.Node{ID: core.RootID, Name: "Home"}
	return g
}

// add seeds a fixture node without counting as gateway traffic.
func (g *fakeGateway) add(parentID, id, name string) core.Node {
	now := time.Now().Unix()
	n := core.Node{
		ID:         id,
		Name:       name,
		Priority:   len(g.children[parentID]),
		CreatedAt:  now,
		ModifiedAt: now,
	}
	g.nodes[id] = n
	g.children[parentID] = append(g.children[parentID], id)
	g.parents[id] = parentID
	return n
}

func (g *fakeGateway) GetNode(ctx context.Context, id string) (core.Node, error) {
	g.getCalls++
	n, ok := g.nodes[id]
	if !ok {
		return core.Node{}, &core.StatusError{StatusCode: 404, Body: "node not found"}
	}
	return n, nil
}

func (g *fakeGateway) ListChildren(ctx context.Context, parentID string) ([]core.Node, error) {
	g.listCalls++
	if _, ok := g.nodes[parentID]; !ok {
		return nil, &core.StatusError{StatusCode: 404, Body: "node not found"}
	}
	ids := g.children[parentID]
	out := make([]core.Node, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.nodes[id])
	}
	return out, nil
}

func (g *fakeGateway) CreateNode(ctx context.Context, parentID string, req core.CreateRequest) (core.Node, error) {
	g.createCalls++
	if _, ok := g.nodes[parentID]; !ok {
		return core.Node{}, &core.StatusError{StatusCode: 404, Body: "parent not found"}
	}
	now := time.Now().Unix()
	n := core.Node{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Note:       req.Note,
		CreatedAt:  now,
		ModifiedAt: now,
	}
	siblings := g.children[parentID]
	index := 0
	if i, ok := req.Position.Index(); ok {
		// The remote clamps; rejection is the façade's job.
		index = min(max(i, 0), len(siblings))
	} else if req.Position.IsBottom() {
		index = len(siblings)
	}
	siblings = append(siblings[:index], append([]string{n.ID}, siblings[index:]...)...)
	g.children[parentID] = siblings
	g.parents[n.ID] = parentID
	g.nodes[n.ID] = n
	g.renumber(parentID)
	return g.nodes[n.ID], nil
}

func (g *fakeGateway) UpdateNode(ctx context.Context, id string, req core.UpdateRequest) (core.Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return core.Node{}, &core.StatusError{StatusCode: 404, Body: "node not found"}
	}
	if req.Name != nil {
		n.Name = *req.Name
	}
	if req.Note != nil {
		n.Note = *req.Note
	}
	if req.Priority != nil {
		n.Priority = *req.Priority
	}
	if req.Data != nil {
		n.Data = req.Data
	}
	n.ModifiedAt = time.Now().Unix()
	g.nodes[id] = n
	return n, nil
}

func (g *fakeGateway) CompleteNode(ctx context.Context, id string) (core.Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return core.Node{}, &core.StatusError{StatusCode: 404, Body: "node not found"}
	}
	now := time.Now().Unix()
	n.CompletedAt = &now
	g.nodes[id] = n
	return n, nil
}

func (g *fakeGateway) UncompleteNode(ctx context.Context, id string) (core.Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return core.Node{}, &core.StatusError{StatusCode: 404, Body: "node not found"}
	}
	n.CompletedAt = nil
	g.nodes[id] = n
	return n, nil
}

func (g *fakeGateway) DeleteNode(ctx context.Context, id string) error {
	if _, ok := g.nodes[id]; !ok {
		return &core.StatusError{StatusCode: 404, Body: "node not found"}
	}
	parentID := g.parents[id]
	siblings := g.children[parentID]
	for i, sib := range siblings {
		if sib == id {
			g.children[parentID] = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	g.removeSubtree(id)
	g.renumber(parentID)
	return nil
}

func (g *fakeGateway) removeSubtree(id string) {
	for _, child := range g.children[id] {
		g.removeSubtree(child)
	}
	delete(g.children, id)
	delete(g.parents, id)
	delete(g.nodes, id)
}

func (g *fakeGateway) renumber(parentID string) {
	for i, id := range g.children[parentID] {
		n := g.nodes[id]
		n.Priority = i
		g.nodes[id] = n
	}
}

// Fixture ids shared by the resolver and service tests.
const (
	projectsID = "11111111-1111-4111-8111-111111111111"
	homeID     = "22222222-2222-4222-8222-222222222222"
	gardenID   = "33333333-3333-4333-8333-aaaabbbbcccc"
	workID     = "44444444-4444-4444-8444-444444444444"
	groceries1 = "55555555-5555-4555-8555-555555555555"
	groceries2 = "66666666-6666-4666-8666-666666666666"
	readingID  = "77777777-7777-4777-8777-abcdefabcdef"
	archiveID  = "88888888-8888-4888-8888-abcdefabcdef"
	strangerID = "99999999-9999-4999-8999-999999999999"
)

// seedTree builds the shared fixture:
//
//	root
//	├── Projects
//	│   ├── Home
//	│   │   └── Garden
//	│   └── Work
//	├── Groceries (twice, duplicate names)
//	├── Reading
//	└── Archive (shares a 12-hex id suffix with Reading)
func seedTree(g *fakeGateway) {
	g.add(core.RootID, projectsID, "Projects")
	g.add(projectsID, homeID, "Home")
	g.add(homeID, gardenID, "Garden")
	g.add(projectsID, workID, "Work")
	g.add(core.RootID, groceries1, "Groceries")
	g.add(core.RootID, groceries2, "Groceries")
	g.add(core.RootID, readingID, "Reading")
	g.add(core.RootID, archiveID, "Archive")
}
