package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// appBaseURL is the web application, not the API. Node URLs point here and
// carry the short-id fragment ByShortID resolves.
const appBaseURL = "https://workflowy.com/#"

// ShortID derives the 12-hex URL fragment from a canonical node id.
func ShortID(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a canonical id", ErrValidation, id)
	}
	canonical := u.String()
	return canonical[strings.LastIndex(canonical, "-")+1:], nil
}

// NodeURL builds the web application URL for a node id. The root has no
// fragment; every other node is addressed by its short id.
func NodeURL(id string) (string, error) {
	if id == RootID {
		return appBaseURL + "/", nil
	}
	short, err := ShortID(id)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", appBaseURL, short), nil
}
