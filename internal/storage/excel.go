package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hyperjump/docfinder/internal/models"
)

// ExcelSource reads seed documents from the first sheet of an .xlsx workbook.
// The first row is a header naming the columns (id, title, team, project,
// type, topic, tags, content) in any order and case. Tags are comma-separated.
type ExcelSource struct {
	path string
}

// NewExcelSource returns a source for the workbook at path.
func NewExcelSource(path string) *ExcelSource {
	return &ExcelSource{path: path}
}

// excelColumns is the header written by WriteExcel.
var excelColumns = []string{"id", "title", "team", "project", "type", "topic", "tags", "content"}

// Documents reads the first sheet. Blank rows are skipped.
func (e *ExcelSource) Documents(ctx context.Context) ([]models.Document, error) {
	f, err := excelize.OpenFile(e.path)
	if err != nil {
		return nil, fmt.Errorf("open Excel: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return []models.Document{}, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("get rows for sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return []models.Document{}, nil
	}

	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := header["title"]; !ok {
		return nil, fmt.Errorf("sheet %q: header row has no title column", sheets[0])
	}
	cell := func(row []string, name string) string {
		i, ok := header[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	docs := make([]models.Document, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if strings.TrimSpace(strings.Join(row, "")) == "" {
			continue
		}
		docs = append(docs, models.Document{
			ID:      cell(row, "id"),
			Title:   cell(row, "title"),
			Team:    cell(row, "team"),
			Project: cell(row, "project"),
			Type:    cell(row, "type"),
			Topic:   cell(row, "topic"),
			Tags:    splitTags(cell(row, "tags")),
			Content: cell(row, "content"),
		})
	}
	assignIDs(docs)
	return docs, nil
}

// Close is a no-op; the workbook is opened per read.
func (e *ExcelSource) Close() error { return nil }

// WriteExcel writes docs to a new workbook at path using the header layout Documents reads.
func WriteExcel(path string, docs []models.Document) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(excelColumns))
	for i, c := range excelColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, d := range docs {
		cellName, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{d.ID, d.Title, d.Team, d.Project, d.Type, d.Topic, strings.Join(d.Tags, ", "), d.Content}
		if err := f.SetSheetRow(sheet, cellName, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save Excel: %w", err)
	}
	return nil
}

func splitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
