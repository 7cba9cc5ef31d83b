package host

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pazhonic/panel-manager/internal/model"
)

// Host error messages surfaced verbatim to the user
const (
	errNotLoggedIn    = "not logged in"
	errPanelNotFound  = "panel not found"
	errFolderNotFound = "folder not found"
)

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// GetPanelsForUser returns every panel of the session user in insertion order
func (s *Service) GetPanelsForUser() string {
	uid, ok := s.currentUserID()
	if !ok {
		return errorReply(errNotLoggedIn)
	}

	var panels []model.Panel
	if err := s.db.Where("user_id = ?", uid).Order("id").Find(&panels).Error; err != nil {
		return errorReply(err.Error())
	}
	return reply(map[string]any{"panels": panels})
}

// GetPanelsByFolder returns panels in a folder; "null" or "" selects the
// uncategorized set
func (s *Service) GetPanelsByFolder(folderID string) string {
	uid, ok := s.currentUserID()
	if !ok {
		return errorReply(errNotLoggedIn)
	}

	query := s.db.Where("user_id = ?", uid).Order("id")
	trimmed := strings.TrimSpace(folderID)
	if trimmed == "" || trimmed == "null" {
		query = query.Where("folder_id IS NULL")
	} else {
		fid, ok := parseID(trimmed)
		if !ok {
			return errorReply("invalid folder id")
		}
		query = query.Where("folder_id = ?", fid)
	}

	var panels []model.Panel
	if err := query.Find(&panels).Error; err != nil {
		return errorReply(err.Error())
	}
	return reply(map[string]any{"panels": panels})
}

// CreatePanel inserts a new panel for the session user
func (s *Service) CreatePanel(panelJSON string) string {
	uid, ok := s.currentUserID()
	if !ok {
		return failure(errNotLoggedIn)
	}

	var panel model.Panel
	if err := json.Unmarshal([]byte(panelJSON), &panel); err != nil {
		return failure("invalid panel payload")
	}
	if strings.TrimSpace(panel.Name) == "" {
		return failure("panel name is required")
	}

	panel.ID = 0
	panel.UserID = uid
	panel.Icon = model.NormalizeIcon(panel.Icon)
	if panel.LastStatus != nil && !panel.LastStatus.Valid() {
		panel.LastStatus = nil
	}

	if err := s.db.Create(&panel).Error; err != nil {
		return failure(err.Error())
	}

	s.log.Info().Uint("panel", panel.ID).Str("name", panel.Name).Msg("panel created")
	return successWithID(panel.ID)
}

// UpdatePanel replaces the editable fields of an existing panel. Ownership
// and server-managed fields (user, creation time) are preserved.
func (s *Service) UpdatePanel(panelJSON string) string {
	uid, ok := s.currentUserID()
	if !ok {
		return failure(errNotLoggedIn)
	}

	var incoming model.Panel
	if err := json.Unmarshal([]byte(panelJSON), &incoming); err != nil {
		return failure("invalid panel payload")
	}
	if strings.TrimSpace(incoming.Name) == "" {
		return failure("panel name is required")
	}

	var panel model.Panel
	if err := s.db.Where("id = ? AND user_id = ?", incoming.ID, uid).First(&panel).Error; err != nil {
		return failure(errPanelNotFound)
	}

	panel.Name = incoming.Name
	panel.Icon = model.NormalizeIcon(incoming.Icon)
	panel.GSMPhone = incoming.GSMPhone
	panel.IP = incoming.IP
	panel.Port = incoming.Port
	panel.Code = incoming.Code
	panel.Description = incoming.Description
	panel.SerialNumber = incoming.SerialNumber
	panel.LocationID = incoming.LocationID
	panel.CodeUD = incoming.CodeUD
	panel.FolderID = incoming.FolderID
	if incoming.LastStatus != nil && incoming.LastStatus.Valid() {
		panel.LastStatus = incoming.LastStatus
	}

	if err := s.db.Save(&panel).Error; err != nil {
		return failure(err.Error())
	}
	return success()
}

// DeletePanel removes a panel by id
func (s *Service) DeletePanel(panelID string) string {
	uid, ok := s.currentUserID()
	if !ok {
		return failure(errNotLoggedIn)
	}
	id, valid := parseID(panelID)
	if !valid {
		return failure("invalid panel id")
	}

	result := s.db.Where("id = ? AND user_id = ?", id, uid).Delete(&model.Panel{})
	if result.Error != nil {
		return failure(result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return failure(errPanelNotFound)
	}

	s.log.Info().Uint("panel", id).Msg("panel deleted")
	return success()
}

// SetPanelFolder reassigns a panel; empty folderID means uncategorized
func (s *Service) SetPanelFolder(panelID, folderID string) string {
	uid, ok := s.currentUserID()
	if !ok {
		return failure(errNotLoggedIn)
	}
	id, valid := parseID(panelID)
	if !valid {
		return failure("invalid panel id")
	}

	var target *uint
	if trimmed := strings.TrimSpace(folderID); trimmed != "" && trimmed != "null" {
		fid, ok := parseID(trimmed)
		if !ok {
			return failure("invalid folder id")
		}
		var folder model.Folder
		if err := s.db.Where("id = ? AND user_id = ?", fid, uid).First(&folder).Error; err != nil {
			return failure(errFolderNotFound)
		}
		target = &fid
	}

	result := s.db.Model(&model.Panel{}).
		Where("id = ? AND user_id = ?", id, uid).
		Update("folder_id", target)
	if result.Error != nil {
		return failure(result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return failure(errPanelNotFound)
	}
	return success()
}

// SetPanelLastStatus records the ARM/DISARM status reported by a panel
func (s *Service) SetPanelLastStatus(panelID, lastStatus string) string {
	uid, ok := s.currentUserID()
	if !ok {
		return failure(errNotLoggedIn)
	}
	id, valid := parseID(panelID)
	if !valid {
		return failure("invalid panel id")
	}
	status := model.ParseStatus(lastStatus)
	if status == nil {
		return failure("invalid status")
	}

	result := s.db.Model(&model.Panel{}).
		Where("id = ? AND user_id = ?", id, uid).
		Update("last_status", status)
	if result.Error != nil {
		return failure(result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return failure(errPanelNotFound)
	}
	return success()
}
