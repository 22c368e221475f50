package store

import (
	"errors"
	"fmt"

	"github.com/hyperjump/docfinder/internal/models"
)

// ErrUnknownField is returned by ParseField for a name that is not a facet.
var ErrUnknownField = errors.New("unknown facet field")

// Field names a categorical document field that can be filtered on.
type Field string

const (
	FieldTeam    Field = "team"
	FieldType    Field = "type"
	FieldProject Field = "project"
)

// Fields lists the facet fields in the order filter controls are shown.
var Fields = []Field{FieldTeam, FieldType, FieldProject}

// ParseField converts a field name to a Field.
func ParseField(name string) (Field, error) {
	switch f := Field(name); f {
	case FieldTeam, FieldType, FieldProject:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Value returns the document's value for the field.
func (f Field) Value(d models.Document) string {
	switch f {
	case FieldTeam:
		return d.Team
	case FieldType:
		return d.Type
	case FieldProject:
		return d.Project
	}
	return ""
}

// DistinctValues returns All followed by the distinct values of field in docs,
// in first-occurrence order. An unknown field yields just All.
func DistinctValues(docs []models.Document, field Field) []string {
	out := []string{models.All}
	if _, err := ParseField(string(field)); err != nil {
		return out
	}
	seen := make(map[string]struct{}, len(docs))
	for _, d := range docs {
		v := field.Value(d)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// CountByTeam maps each team in docs to its document count.
func CountByTeam(docs []models.Document) map[string]int {
	counts := make(map[string]int)
	for _, d := range docs {
		counts[d.Team]++
	}
	return counts
}

// TeamCounts returns per-team document counts in first-occurrence order.
func TeamCounts(docs []models.Document) []models.TeamCount {
	index := make(map[string]int)
	out := make([]models.TeamCount, 0)
	for _, d := range docs {
		i, ok := index[d.Team]
		if !ok {
			i = len(out)
			index[d.Team] = i
			out = append(out, models.TeamCount{Team: d.Team})
		}
		out[i].Count++
	}
	return out
}
