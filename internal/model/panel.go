package model

import (
	"strings"
	"time"
)

// Panel represents a managed remote security/alarm device record
type Panel struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	UserID       uint         `json:"userId" gorm:"index"`
	FolderID     *uint        `json:"folderId" gorm:"index"` // nil = uncategorized
	Icon         string       `json:"icon"`
	Name         string       `json:"name" gorm:"not null"`
	GSMPhone     string       `json:"gsmPhone"`
	IP           string       `json:"ip"`
	Port         int          `json:"port"`
	Code         string       `json:"code"`
	Description  string       `json:"description"`
	SerialNumber string       `json:"serialNumber"`
	IsActive     bool         `json:"isActive"`
	LocationID   *uint        `json:"locationId"`
	CodeUD       string       `json:"codeUD"` // upload/download auth code for device queries
	LastStatus   *PanelStatus `json:"lastStatus"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// InFolder returns true when the panel belongs to the given folder.
// A nil folderID matches uncategorized panels.
func (p *Panel) InFolder(folderID *uint) bool {
	if folderID == nil {
		return p.FolderID == nil
	}
	return p.FolderID != nil && *p.FolderID == *folderID
}

// MatchesName reports whether the panel name contains the query,
// case-insensitively. An empty query matches everything.
func (p *Panel) MatchesName(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), q)
}

// DisplaySubtitle returns the GSM phone if set, otherwise the IP address.
// Used as the secondary line in list rows.
func (p *Panel) DisplaySubtitle() string {
	if p.GSMPhone != "" {
		return p.GSMPhone
	}
	return p.IP
}
