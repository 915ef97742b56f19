package core

import (
	"context"
	"fmt"
	"strings"
)

// Resolver turns any reference form into the single canonical node id the
// service requires. It reads through a TreeReader and never mutates the
// tree, never retries, and holds no state between calls beyond its scope.
type Resolver struct {
	reader TreeReader
	rootID string
}

// NewResolver creates a Resolver scoped to rootID. An empty rootID scopes
// path and short-id search to the account's top-level root; any node id may
// scope it to a subtree instead.
func NewResolver(reader TreeReader, rootID string) *Resolver {
	if rootID == "" {
		rootID = RootID
	}
	return &Resolver{reader: reader, rootID: rootID}
}

// Resolve resolves ref against the resolver's own scope root.
func (r *Resolver) Resolve(ctx context.Context, ref Ref) (string, error) {
	return r.ResolveFrom(ctx, r.rootID, ref)
}

// ResolveFrom resolves ref with path descent and short-id search scoped to
// rootID. Canonical ids and node references short-circuit without any
// remote call regardless of scope.
func (r *Resolver) ResolveFrom(ctx context.Context, rootID string, ref Ref) (string, error) {
	if rootID == "" {
		rootID = r.rootID
	}
	switch v := ref.(type) {
	case IDRef:
		if v.ID == RootID {
			return RootID, nil
		}
		if IsCanonicalID(v.ID) {
			return v.ID, nil
		}
		// Shape decides, not declared intent: a non-canonical string falls
		// through to classification. Classify cannot hand back another
		// IDRef here, so this terminates.
		reclassified, err := Classify(v.ID)
		if err != nil {
			return "", err
		}
		return r.ResolveFrom(ctx, rootID, reclassified)
	case NodeRef:
		if v.Node.ID == "" {
			return "", fmt.Errorf("%w: node target has no id", ErrValidation)
		}
		return v.Node.ID, nil
	case PathRef:
		return r.resolvePath(ctx, rootID, v)
	case ShortIDRef:
		return r.resolveShortID(ctx, rootID, v)
	case nil:
		return "", fmt.Errorf("%w: nil reference", ErrValidation)
	default:
		return "", fmt.Errorf("%w: unsupported reference type %T", ErrValidation, ref)
	}
}

// resolvePath descends one level per segment, matching child names exactly.
// Duplicate names at a level are a data condition it must surface, never
// silently pick from.
func (r *Resolver) resolvePath(ctx context.Context, rootID string, ref PathRef) (string, error) {
	if len(ref.Segments) == 0 {
		return "", fmt.Errorf("%w: empty path", ErrValidation)
	}
	for _, segment := range ref.Segments {
		if segment == "" {
			return "", fmt.Errorf("%w: empty segment in path %q", ErrValidation, ref.String())
		}
	}
	currentID := rootID
	for i, segment := range ref.Segments {
		children, err := r.reader.ListChildren(ctx, currentID)
		if err != nil {
			return "", fmt.Errorf("resolving path %q: %w", ref.String(), err)
		}
		var matches []string
		for _, child := range children {
			if child.Name == segment {
				matches = append(matches, child.ID)
			}
		}
		soFar := strings.Join(ref.Segments[:i+1], "/")
		switch len(matches) {
		case 0:
			return "", fmt.Errorf("%w: no child named %q at path %q", ErrNotFound, segment, soFar)
		case 1:
			currentID = matches[0]
		default:
			return "", &AmbiguousError{Ref: soFar, Matches: matches}
		}
	}
	return currentID, nil
}

// resolveShortID walks every descendant of the scope root breadth-first,
// collecting nodes whose canonical id contains the fragment. The whole
// subtree must be visited: ambiguity reporting needs every match, not the
// first two.
func (r *Resolver) resolveShortID(ctx context.Context, rootID string, ref ShortIDRef) (string, error) {
	if ref.Fragment == "" {
		return "", fmt.Errorf("%w: empty short id", ErrValidation)
	}
	var matches []string
	queue := []string{rootID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		children, err := r.reader.ListChildren(ctx, id)
		if err != nil {
			return "", fmt.Errorf("searching for short id %q: %w", ref.Fragment, err)
		}
		for _, child := range children {
			if strings.Contains(child.ID, ref.Fragment) {
				matches = append(matches, child.ID)
			}
			queue = append(queue, child.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: no node id contains %q", ErrNotFound, ref.Fragment)
	case 1:
		return matches[0], nil
	}
	return "", &AmbiguousError{Ref: ref.Fragment, Matches: matches}
}
