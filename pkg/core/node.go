package core

import (
	"encoding/json"
	"fmt"
)

// RootID is the reserved target for the account's top-level node.
// It always resolves without a remote call. The service cannot address the
// root directly, so adapters translate it into the wire conventions the API
// expects (see the rest adapter).
const RootID = "root"

// Node is the central entity of the domain: a single entry in the outline.
// It is a point-in-time snapshot returned by a remote read; it is not kept
// in sync with the server and must be treated as stale after any write.
type Node struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Note        string         `json:"note,omitempty"`
	Priority    int            `json:"priority"`
	Data        map[string]any `json:"data,omitempty"`
	CreatedAt   int64          `json:"createdAt"`
	ModifiedAt  int64          `json:"modifiedAt"`
	CompletedAt *int64         `json:"completedAt,omitempty"`
}

// Completed reports whether the node is marked complete.
func (n Node) Completed() bool {
	return n.CompletedAt != nil
}

// IsRoot reports whether the node is the synthesized account root.
func (n Node) IsRoot() bool {
	return n.ID == RootID
}

// Position specifies where a new node is inserted among its siblings.
// The zero value means "top" (the service default).
type Position struct {
	named string
	index int
	isIdx bool
}

var (
	// PositionTop inserts before all existing children.
	PositionTop = Position{named: "top"}
	// PositionBottom inserts after all existing children.
	PositionBottom = Position{named: "bottom"}
)

// PositionAt inserts at the given zero-based offset among existing children.
// The offset is validated against the parent's current child count before the
// create request is issued; out-of-range offsets are rejected, never clamped.
func PositionAt(index int) Position {
	return Position{index: index, isIdx: true}
}

// Index returns the numeric offset and true when the position is index-based.
func (p Position) Index() (int, bool) {
	return p.index, p.isIdx
}

// IsBottom reports whether the position is the named bottom placement.
// Everything else, the zero value included, places at the top unless
// Index reports an offset.
func (p Position) IsBottom() bool {
	return p.named == "bottom"
}

func (p Position) String() string {
	if p.isIdx {
		return fmt.Sprintf("%d", p.index)
	}
	if p.named == "" {
		return "top"
	}
	return p.named
}

// MarshalJSON encodes the position the way the service expects: the literal
// strings "top"/"bottom", or a bare integer offset.
func (p Position) MarshalJSON() ([]byte, error) {
	if p.isIdx {
		return json.Marshal(p.index)
	}
	if p.named == "" {
		return json.Marshal("top")
	}
	return json.Marshal(p.named)
}

// CreateRequest carries the caller-supplied fields for a new node.
type CreateRequest struct {
	Name     string
	Note     string
	Position Position
}

// UpdateRequest carries a partial update. Nil fields are left untouched on
// the server; only set fields are transmitted.
type UpdateRequest struct {
	Name     *string
	Note     *string
	Priority *int
	Data     map[string]any
}

// Empty reports whether the request patches nothing.
func (r UpdateRequest) Empty() bool {
	return r.Name == nil && r.Note == nil && r.Priority == nil && r.Data == nil
}
