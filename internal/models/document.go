// Package models defines core data structures for documents, query state, and search responses.
package models

// Document is a single record in the corpus. Documents are created once from
// seed data and never modified afterwards.
type Document struct {
	ID      string   `json:"id" yaml:"id"`
	Title   string   `json:"title" yaml:"title"`
	Team    string   `json:"team" yaml:"team"`
	Project string   `json:"project" yaml:"project"`
	Type    string   `json:"type" yaml:"type"`
	Topic   string   `json:"topic" yaml:"topic"`
	Tags    []string `json:"tags" yaml:"tags"`
	Content string   `json:"content" yaml:"content"`
}

// Clone returns a copy of d that shares no memory with it.
func (d Document) Clone() Document {
	out := d
	if d.Tags != nil {
		out.Tags = append([]string(nil), d.Tags...)
	}
	return out
}
