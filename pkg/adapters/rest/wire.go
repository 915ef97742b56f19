package rest

import "github.com/aretw0/workflowy/pkg/core"

// Wire shapes. Reads come back wrapped; create answers with a bare item id
// the caller must fetch. The create payload keeps its null fields because
// the service distinguishes "parent_id": null (a top-level node) from an
// absent key; the update payload drops unset fields so the patch stays
// partial.

type createNodePayload struct {
	ParentID *string       `json:"parent_id"`
	Name     string        `json:"name"`
	Position core.Position `json:"position"`
	Note     *string       `json:"note"`
}

type updateNodePayload struct {
	Name     *string        `json:"name,omitempty"`
	Note     *string        `json:"note,omitempty"`
	Priority *int           `json:"priority,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}

type createNodeResponse struct {
	ItemID string `json:"item_id"`
}

type getNodeResponse struct {
	Node core.Node `json:"node"`
}

type listNodesResponse struct {
	Nodes []core.Node `json:"nodes"`
}
