package search

import (
	"fmt"
	"strings"
)

// TagMatch selects how the search term is matched against a document's tags.
type TagMatch string

const (
	// TagMatchJoined searches the tags joined by a single space, so a term can
	// span two adjacent tags ("brand campaign").
	TagMatchJoined TagMatch = "joined"
	// TagMatchPerTag searches each tag on its own; the document matches when any tag does.
	TagMatchPerTag TagMatch = "per_tag"
)

// ParseTagMatch converts a config value to a TagMatch. Empty means TagMatchJoined.
func ParseTagMatch(s string) (TagMatch, error) {
	switch m := TagMatch(s); m {
	case "":
		return TagMatchJoined, nil
	case TagMatchJoined, TagMatchPerTag:
		return m, nil
	}
	return "", fmt.Errorf("unknown tag match mode %q (want %q or %q)", s, TagMatchJoined, TagMatchPerTag)
}

// fold is the case folding applied to the search term and every searched field.
func fold(s string) string {
	return strings.ToLower(s)
}
