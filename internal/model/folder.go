package model

import "strings"

// Folder is a user-defined category grouping panels
type Folder struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	UserID    uint   `json:"userId" gorm:"index"`
	Name      string `json:"name" gorm:"not null"`
	SortOrder int    `json:"sortOrder"`
}

// ValidName reports whether the folder name is non-empty after trimming
func (f *Folder) ValidName() bool {
	return strings.TrimSpace(f.Name) != ""
}
