package store

import (
	"errors"
	"reflect"
	"testing"

	"github.com/hyperjump/docfinder/internal/models"
)

func TestNew_duplicateID(t *testing.T) {
	_, err := New([]models.Document{{ID: "1"}, {ID: "2"}, {ID: "1"}})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("New() error = %v, want ErrDuplicateID", err)
	}
}

func TestStore_All_preservesOrder(t *testing.T) {
	s := NewSample()
	var ids []string
	for _, d := range s.All() {
		ids = append(ids, d.ID)
	}
	want := []string{"1", "2", "3", "4", "5"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("All() ids = %v, want %v", ids, want)
	}
}

func TestStore_All_returnsCopy(t *testing.T) {
	s := NewSample()
	docs := s.All()
	docs[0].Title = "changed"
	docs[0].Tags[0] = "changed"
	again := s.All()
	if again[0].Title != "Q4 Brand Campaign Brief" {
		t.Errorf("store title mutated through All(): %q", again[0].Title)
	}
	if again[0].Tags[0] != "brand" {
		t.Errorf("store tags mutated through All(): %v", again[0].Tags)
	}
}

func TestStore_New_copiesInput(t *testing.T) {
	docs := []models.Document{{ID: "a", Tags: []string{"x"}}}
	s, err := New(docs)
	if err != nil {
		t.Fatal(err)
	}
	docs[0].Tags[0] = "y"
	got, _ := s.Get("a")
	if got.Tags[0] != "x" {
		t.Errorf("store shares tags with caller: %v", got.Tags)
	}
}

func TestStore_Get(t *testing.T) {
	s := NewSample()
	doc, err := s.Get("3")
	if err != nil {
		t.Fatal(err)
	}
	if doc.Title != "Product Launch Social Media Plan" {
		t.Errorf("Get(3) title = %q", doc.Title)
	}
	if _, err := s.Get("42"); !errors.Is(err, ErrDocumentNotFound) {
		t.Errorf("Get(42) error = %v, want ErrDocumentNotFound", err)
	}
}

func TestStore_First(t *testing.T) {
	doc, ok := NewSample().First()
	if !ok || doc.ID != "1" {
		t.Errorf("First() = %v, %v", doc.ID, ok)
	}
	empty, _ := New(nil)
	if _, ok := empty.First(); ok {
		t.Error("empty store should have no first document")
	}
	if empty.Len() != 0 {
		t.Errorf("Len() = %d", empty.Len())
	}
}

func TestStore_DistinctValues(t *testing.T) {
	s := NewSample()
	tests := []struct {
		field Field
		want  []string
	}{
		{FieldTeam, []string{"All", "Brand", "Performance", "Social", "Content"}},
		{FieldType, []string{"All", "Brief", "Report", "Plan", "Guidelines", "Ideas"}},
		{FieldProject, []string{"All", "Q4 Brand Push", "Always-on Performance", "New Product Launch", "Global Guidelines", "Q1 Growth"}},
		{Field("title"), []string{"All"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			got := s.DistinctValues(tt.field)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DistinctValues(%s) = %v, want %v", tt.field, got, tt.want)
			}
		})
	}
}

func TestStore_Facets(t *testing.T) {
	f := NewSample().Facets()
	if len(f.Team) != 5 || len(f.Type) != 6 || len(f.Project) != 6 {
		t.Errorf("Facets() = %+v", f)
	}
}

func TestStore_CountByTeam(t *testing.T) {
	got := NewSample().CountByTeam()
	want := map[string]int{"Brand": 2, "Performance": 1, "Social": 1, "Content": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CountByTeam() = %v, want %v", got, want)
	}
}

func TestStore_TeamCounts(t *testing.T) {
	got := NewSample().TeamCounts()
	want := []models.TeamCount{
		{Team: "Brand", Count: 2},
		{Team: "Performance", Count: 1},
		{Team: "Social", Count: 1},
		{Team: "Content", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TeamCounts() = %v, want %v", got, want)
	}
}

func TestStore_Stats(t *testing.T) {
	st := NewSample().Stats()
	if st.TotalDocuments != 5 || st.Teams != 4 {
		t.Errorf("Stats() = %+v", st)
	}
	empty, _ := New(nil)
	if st := empty.Stats(); st.TotalDocuments != 0 || st.TeamCounts == nil {
		t.Errorf("empty Stats() = %+v, want zero totals and non-nil counts", st)
	}
}

func TestParseField(t *testing.T) {
	for _, name := range []string{"team", "type", "project"} {
		if _, err := ParseField(name); err != nil {
			t.Errorf("ParseField(%q) error: %v", name, err)
		}
	}
	for _, name := range []string{"", "Team", "title", "tags"} {
		if _, err := ParseField(name); !errors.Is(err, ErrUnknownField) {
			t.Errorf("ParseField(%q) error = %v, want ErrUnknownField", name, err)
		}
	}
}

func TestDistinctValues_emptyValuesKept(t *testing.T) {
	docs := []models.Document{{ID: "1", Team: ""}, {ID: "2", Team: "X"}, {ID: "3", Team: ""}}
	got := DistinctValues(docs, FieldTeam)
	want := []string{"All", "", "X"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DistinctValues() = %q, want %q", got, want)
	}
}
