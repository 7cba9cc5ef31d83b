package panels

import (
	"testing"

	"github.com/pazhonic/panel-manager/internal/model"
)

func uintPtr(v uint) *uint { return &v }

func samplePanels() []model.Panel {
	return []model.Panel{
		{ID: 1, Name: "Warehouse North", FolderID: uintPtr(10)},
		{ID: 2, Name: "Home", FolderID: nil},
		{ID: 3, Name: "Downtown Store", FolderID: uintPtr(20)},
		{ID: 4, Name: "warehouse south", FolderID: uintPtr(10)},
		{ID: 5, Name: "Office", FolderID: nil},
	}
}

func ids(panels []model.Panel) []uint {
	out := make([]uint, len(panels))
	for i, p := range panels {
		out[i] = p.ID
	}
	return out
}

func equalIDs(a, b []uint) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterByCategory(t *testing.T) {
	panels := samplePanels()

	tests := []struct {
		name     string
		category Category
		want     []uint
	}{
		{"all", CategoryAll, []uint{1, 2, 3, 4, 5}},
		{"uncategorized", CategoryUncategorized, []uint{2, 5}},
		{"folder 10", FolderCategory(10), []uint{1, 4}},
		{"folder 20", FolderCategory(20), []uint{3}},
		{"empty folder", FolderCategory(99), nil},
	}

	for _, test := range tests {
		got := ids(Filter(panels, test.category, ""))
		if !equalIDs(got, test.want) {
			t.Errorf("%s: expected %v, got %v", test.name, test.want, got)
		}
	}
}

func TestFilterBySearchQuery(t *testing.T) {
	panels := samplePanels()

	tests := []struct {
		query string
		want  []uint
	}{
		{"", []uint{1, 2, 3, 4, 5}},
		{"warehouse", []uint{1, 4}},
		{"WAREHOUSE", []uint{1, 4}},
		{"ware", []uint{1, 4}},
		{"store", []uint{3}},
		{"no such panel", nil},
	}

	for _, test := range tests {
		got := ids(Filter(panels, CategoryAll, test.query))
		if !equalIDs(got, test.want) {
			t.Errorf("query %q: expected %v, got %v", test.query, test.want, got)
		}
	}
}

func TestFilterIntersectsCategoryAndQuery(t *testing.T) {
	panels := samplePanels()

	got := ids(Filter(panels, FolderCategory(10), "north"))
	if !equalIDs(got, []uint{1}) {
		t.Errorf("Expected [1], got %v", got)
	}

	// The query matches, but the panel sits in another folder
	got = ids(Filter(panels, FolderCategory(20), "north"))
	if len(got) != 0 {
		t.Errorf("Expected no matches, got %v", got)
	}
}

func TestFilterPreservesOrderAndInput(t *testing.T) {
	panels := samplePanels()

	got := Filter(panels, CategoryAll, "")
	if !equalIDs(ids(got), []uint{1, 2, 3, 4, 5}) {
		t.Fatalf("Expected input order preserved, got %v", ids(got))
	}

	got[0].Name = "changed"
	if panels[0].Name != "Warehouse North" {
		t.Error("Filter result should not alias the input slice")
	}
}

func TestCategoryIsFolder(t *testing.T) {
	if _, ok := CategoryAll.IsFolder(); ok {
		t.Error("CategoryAll should not report a folder id")
	}
	if _, ok := CategoryUncategorized.IsFolder(); ok {
		t.Error("CategoryUncategorized should not report a folder id")
	}
	if id, ok := FolderCategory(7).IsFolder(); !ok || id != 7 {
		t.Errorf("Expected folder 7, got %d (%v)", id, ok)
	}
}
