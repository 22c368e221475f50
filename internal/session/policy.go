package session

import (
	"fmt"

	"github.com/hyperjump/docfinder/internal/models"
)

// Policy decides what happens to the selection when a new query excludes it.
type Policy string

const (
	// PolicySticky keeps showing the selected document even when it is no
	// longer in the result list.
	PolicySticky Policy = "sticky"
	// PolicyClear drops the selection as soon as it leaves the result list.
	PolicyClear Policy = "clear"
)

// ParsePolicy converts a config value to a Policy. Empty means PolicySticky.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case "":
		return PolicySticky, nil
	case PolicySticky, PolicyClear:
		return p, nil
	}
	return "", fmt.Errorf("unknown selection policy %q (want %q or %q)", s, PolicySticky, PolicyClear)
}

// InitialSelection returns the document selected when a session starts: the
// first document in store order, or false for an empty store.
func InitialSelection(docs []models.Document) (models.Document, bool) {
	if len(docs) == 0 {
		return models.Document{}, false
	}
	return docs[0], true
}

// Apply returns the selection that remains once results are known, and
// whether it appears among them.
func (p Policy) Apply(selected *models.Document, results []models.Document) (kept *models.Document, visible bool) {
	if selected == nil {
		return nil, false
	}
	for _, d := range results {
		if d.ID == selected.ID {
			return selected, true
		}
	}
	if p == PolicyClear {
		return nil, false
	}
	return selected, false
}
