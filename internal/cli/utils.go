// Package cli provides terminal rendering for docfinder commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hyperjump/docfinder/internal/models"
	"github.com/hyperjump/docfinder/pkg/utils"
)

// OutputFormat is the format for command output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputCompact prints one result per line.
	OutputCompact OutputFormat = "compact"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// ParseOutputFormat converts a flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case OutputText, OutputCompact, OutputJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q; use text, compact, or json", s)
}

// Writer renders command output. SnippetLength bounds content previews in text output.
type Writer struct {
	Out           io.Writer
	Format        OutputFormat
	SnippetLength int
}

// NewWriter returns a writer to w.
func NewWriter(w io.Writer, format OutputFormat, snippetLength int) *Writer {
	return &Writer{Out: w, Format: format, SnippetLength: snippetLength}
}

// WriteSearchResults writes a search response.
// Unknown formats fall back to text.
func (cw *Writer) WriteSearchResults(response *models.SearchResponse) error {
	switch cw.Format {
	case OutputJSON:
		return cw.writeJSON(response)
	case OutputCompact:
		for _, d := range response.Results {
			fmt.Fprintf(cw.Out, "%s\t%s\t%s • %s • %s\n", d.ID, d.Title, d.Team, d.Project, d.Type)
		}
		return nil
	default:
		cw.writeSearchResultsText(response)
		return nil
	}
}

func (cw *Writer) writeSearchResultsText(response *models.SearchResponse) {
	fmt.Fprintf(cw.Out, "\nResults (%d of %d documents)%s\n\n", response.Total, response.TotalDocuments, describeQuery(response.Query))
	if len(response.Results) == 0 {
		fmt.Fprintln(cw.Out, "No documents found. Try changing filters or search term.")
		return
	}
	for _, d := range response.Results {
		fmt.Fprintf(cw.Out, "─────────────────────────────────────────────────────────\n")
		fmt.Fprintf(cw.Out, "[%s] %s\n", d.ID, d.Title)
		fmt.Fprintf(cw.Out, "%s • %s • %s\n", d.Team, d.Project, d.Type)
		if d.Topic != "" {
			fmt.Fprintf(cw.Out, "Topic: %s\n", d.Topic)
		}
	}
	fmt.Fprintln(cw.Out)
}

// WriteDocument writes the detail view of one document.
func (cw *Writer) WriteDocument(d models.Document) error {
	if cw.Format == OutputJSON {
		return cw.writeJSON(d)
	}
	fmt.Fprintf(cw.Out, "%s\n", d.Title)
	fmt.Fprintf(cw.Out, "%s • %s • %s\n", d.Team, d.Project, d.Type)
	if len(d.Tags) > 0 {
		tags := make([]string, len(d.Tags))
		for i, t := range d.Tags {
			tags[i] = "#" + t
		}
		fmt.Fprintf(cw.Out, "%s\n", strings.Join(tags, " "))
	}
	fmt.Fprintf(cw.Out, "\nSummary\n%s\n", utils.Truncate(d.Content, cw.SnippetLength))
	fmt.Fprintf(cw.Out, "\nTopic\n%s\n", d.Topic)
	return nil
}

// WriteFacets writes the filter option lists.
func (cw *Writer) WriteFacets(f models.Facets) error {
	if cw.Format == OutputJSON {
		return cw.writeJSON(f)
	}
	fmt.Fprintf(cw.Out, "team:     %s\n", strings.Join(f.Team, " | "))
	fmt.Fprintf(cw.Out, "type:     %s\n", strings.Join(f.Type, " | "))
	fmt.Fprintf(cw.Out, "project:  %s\n", strings.Join(f.Project, " | "))
	return nil
}

// WriteStats writes the stat cards.
func (cw *Writer) WriteStats(s models.StatsResponse) error {
	if cw.Format == OutputJSON {
		return cw.writeJSON(s)
	}
	fmt.Fprintf(cw.Out, "documents:  %d\n", s.TotalDocuments)
	fmt.Fprintf(cw.Out, "teams:      %d\n", s.Teams)
	for _, tc := range s.TeamCounts {
		fmt.Fprintf(cw.Out, "  %-14s %d\n", tc.Team, tc.Count)
	}
	return nil
}

func (cw *Writer) writeJSON(v interface{}) error {
	enc := json.NewEncoder(cw.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintSearchResults prints search results to stdout in text format.
func PrintSearchResults(response *models.SearchResponse) {
	_ = NewWriter(os.Stdout, OutputText, 200).WriteSearchResults(response)
}

func describeQuery(q models.QueryState) string {
	var parts []string
	if q.SearchTerm != "" {
		parts = append(parts, fmt.Sprintf("search %q", q.SearchTerm))
	}
	for _, f := range []struct{ name, value string }{{"team", q.Team}, {"type", q.Type}, {"project", q.Project}} {
		switch f.value {
		case models.All:
		case "":
			parts = append(parts, fmt.Sprintf("%s=%q", f.name, f.value))
		default:
			parts = append(parts, fmt.Sprintf("%s=%s", f.name, f.value))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return " for " + strings.Join(parts, ", ")
}
