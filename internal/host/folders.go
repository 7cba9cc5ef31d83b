package host

import (
	"strings"

	"gorm.io/gorm"

	"github.com/pazhonic/panel-manager/internal/model"
)

// GetFolders returns the session user's folders in sort order
func (s *Service) GetFolders() string {
	uid, ok := s.currentUserID()
	if !ok {
		return errorReply(errNotLoggedIn)
	}

	var folders []model.Folder
	err := s.db.Where("user_id = ?", uid).Order("sort_order, id").Find(&folders).Error
	if err != nil {
		return errorReply(err.Error())
	}
	return reply(map[string]any{"folders": folders})
}

// CreateFolder creates a folder with the given name
func (s *Service) CreateFolder(name string) string {
	uid, ok := s.currentUserID()
	if !ok {
		return failure(errNotLoggedIn)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return failure("folder name is required")
	}

	var maxOrder int
	s.db.Model(&model.Folder{}).Where("user_id = ?", uid).
		Select("COALESCE(MAX(sort_order), 0)").Scan(&maxOrder)

	folder := model.Folder{UserID: uid, Name: name, SortOrder: maxOrder + 1}
	if err := s.db.Create(&folder).Error; err != nil {
		return failure(err.Error())
	}
	return successWithID(folder.ID)
}

// UpdateFolder renames a folder
func (s *Service) UpdateFolder(folderID, name string) string {
	uid, ok := s.currentUserID()
	if !ok {
		return failure(errNotLoggedIn)
	}
	id, valid := parseID(folderID)
	if !valid {
		return failure("invalid folder id")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return failure("folder name is required")
	}

	result := s.db.Model(&model.Folder{}).
		Where("id = ? AND user_id = ?", id, uid).
		Update("name", name)
	if result.Error != nil {
		return failure(result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return failure(errFolderNotFound)
	}
	return success()
}

// DeleteFolder removes a folder and moves its panels to uncategorized.
// The reassignment happens here, inside one transaction; clients rely on
// the next refetch to observe it and never reassign locally.
func (s *Service) DeleteFolder(folderID string) string {
	uid, ok := s.currentUserID()
	if !ok {
		return failure(errNotLoggedIn)
	}
	id, valid := parseID(folderID)
	if !valid {
		return failure("invalid folder id")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Panel{}).
			Where("folder_id = ? AND user_id = ?", id, uid).
			Update("folder_id", nil).Error; err != nil {
			return err
		}

		result := tx.Where("id = ? AND user_id = ?", id, uid).Delete(&model.Folder{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err == gorm.ErrRecordNotFound {
		return failure(errFolderNotFound)
	}
	if err != nil {
		return failure(err.Error())
	}

	s.log.Info().Uint("folder", id).Msg("folder deleted, panels uncategorized")
	return success()
}
