package core

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	canonicalIDPattern = regexp.MustCompile(`^[0-9a-f]{8}-([0-9a-f]{4}-){3}[0-9a-f]{12}$`)
	shortIDPattern     = regexp.MustCompile(`^[0-9a-f]{12}$`)
)

// Ref is one of the four addressing forms a target may take: canonical id,
// short id fragment, slash-separated path, or an already-fetched node. The
// set is closed; construct values with ByID, ByShortID, ByPath and ByNode,
// or classify a bare string with Classify.
type Ref interface {
	fmt.Stringer
	isRef()
}

// IDRef addresses a node by its canonical id (or the reserved root).
type IDRef struct {
	ID string
}

// ShortIDRef addresses a node by the 12-hex fragment found at the end of its
// app URL. Resolution searches the scope root's subtree for the one node
// whose canonical id contains the fragment.
type ShortIDRef struct {
	Fragment string
}

// PathRef addresses a node by exact-name descent from the scope root, one
// segment per level.
type PathRef struct {
	Segments []string
}

// NodeRef addresses an already-fetched node. Its id is used directly.
type NodeRef struct {
	Node Node
}

func (IDRef) isRef()      {}
func (ShortIDRef) isRef() {}
func (PathRef) isRef()    {}
func (NodeRef) isRef()    {}

func (r IDRef) String() string      { return r.ID }
func (r ShortIDRef) String() string { return r.Fragment }
func (r PathRef) String() string    { return strings.Join(r.Segments, "/") }
func (r NodeRef) String() string    { return r.Node.ID }

// ByID references a node by canonical id.
func ByID(id string) Ref {
	return IDRef{ID: id}
}

// ByShortID references a node by the 12-hex URL fragment form.
func ByShortID(fragment string) Ref {
	return ShortIDRef{Fragment: fragment}
}

// ByPath references a node by a slash-separated path of exact names.
// Segments are trimmed of surrounding whitespace; emptiness is checked at
// resolve time so the constructor stays chainable.
func ByPath(path string) Ref {
	parts := strings.Split(path, "/")
	segments := make([]string, len(parts))
	for i, part := range parts {
		segments[i] = strings.TrimSpace(part)
	}
	return PathRef{Segments: segments}
}

// ByNode references an already-fetched node directly.
func ByNode(n Node) Ref {
	return NodeRef{Node: n}
}

// Classify turns a bare string target into its reference form. Shape decides,
// not caller intent: the reserved root sentinel first, then the 12-hex
// short-id form, then the canonical-id form, and anything else is a path.
func Classify(target string) (Ref, error) {
	if target == RootID {
		return IDRef{ID: RootID}, nil
	}
	if shortIDPattern.MatchString(target) {
		return ShortIDRef{Fragment: target}, nil
	}
	if canonicalIDPattern.MatchString(target) {
		return IDRef{ID: target}, nil
	}
	ref := ByPath(target).(PathRef)
	for _, segment := range ref.Segments {
		if segment == "" {
			return nil, fmt.Errorf("%w: empty segment in path %q", ErrValidation, target)
		}
	}
	return ref, nil
}

// ClassifyTarget widens Classify to the forms façade operations accept:
// a Ref, a bare string, a Node or a *Node.
func ClassifyTarget(target any) (Ref, error) {
	switch t := target.(type) {
	case Ref:
		return t, nil
	case string:
		return Classify(t)
	case Node:
		return NodeRef{Node: t}, nil
	case *Node:
		if t == nil {
			return nil, fmt.Errorf("%w: nil node target", ErrValidation)
		}
		return NodeRef{Node: *t}, nil
	case nil:
		return nil, fmt.Errorf("%w: nil target", ErrValidation)
	default:
		return nil, fmt.Errorf("%w: unsupported target type %T", ErrValidation, target)
	}
}

// IsCanonicalID reports whether s has the canonical node id shape.
func IsCanonicalID(s string) bool {
	return canonicalIDPattern.MatchString(s)
}
