package storage

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/hyperjump/docfinder/internal/models"
)

// seedNamespace scopes generated document ids.
var seedNamespace = uuid.MustParse("5b0c7f4e-3c1d-4c43-9a55-1f0d6e7b2a90")

// SeedDocID returns a stable id for a seed record that has none.
// The same position and title always yield the same id.
func SeedDocID(position int, title string) string {
	return uuid.NewSHA1(seedNamespace, []byte(strconv.Itoa(position)+"\x00"+title)).String()
}

// assignIDs fills in missing ids and trims surrounding whitespace from given ones.
func assignIDs(docs []models.Document) {
	for i := range docs {
		docs[i].ID = strings.TrimSpace(docs[i].ID)
		if docs[i].ID == "" {
			docs[i].ID = SeedDocID(i, docs[i].Title)
		}
	}
}
