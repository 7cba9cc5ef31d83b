package panels

import "github.com/pazhonic/panel-manager/internal/model"

type categoryKind int

const (
	categoryKindAll categoryKind = iota
	categoryKindUncategorized
	categoryKindFolder
)

// Category selects which slice of the panel list is visible: everything,
// panels without a folder, or the members of one folder.
type Category struct {
	kind     categoryKind
	folderID uint
}

var (
	CategoryAll           = Category{kind: categoryKindAll}
	CategoryUncategorized = Category{kind: categoryKindUncategorized}
)

// FolderCategory returns the category for a single folder's panels
func FolderCategory(folderID uint) Category {
	return Category{kind: categoryKindFolder, folderID: folderID}
}

// IsFolder returns the folder id when the category targets one folder
func (c Category) IsFolder() (uint, bool) {
	return c.folderID, c.kind == categoryKindFolder
}

// Matches reports whether the panel belongs to this category
func (c Category) Matches(p *model.Panel) bool {
	switch c.kind {
	case categoryKindUncategorized:
		return p.FolderID == nil
	case categoryKindFolder:
		return p.FolderID != nil && *p.FolderID == c.folderID
	default:
		return true
	}
}

// Filter returns the panels in category whose name contains query,
// case-insensitively. An empty query matches every panel. The input order
// is preserved and the input slice is never modified.
func Filter(all []model.Panel, category Category, query string) []model.Panel {
	filtered := make([]model.Panel, 0, len(all))
	for i := range all {
		if category.Matches(&all[i]) && all[i].MatchesName(query) {
			filtered = append(filtered, all[i])
		}
	}
	return filtered
}
