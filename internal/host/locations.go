package host

import (
	"github.com/pazhonic/panel-manager/internal/model"
)

// GetLocationsByType returns all locations of a hierarchy level
func (s *Service) GetLocationsByType(locationType string) string {
	var locations []model.Location
	err := s.db.Where("type = ?", locationType).Order("sort_order, id").Find(&locations).Error
	if err != nil {
		return errorReply(err.Error())
	}
	return reply(map[string]any{"locations": locations})
}

// GetLocationsByParentID returns the direct children of a location
func (s *Service) GetLocationsByParentID(parentID string) string {
	pid, ok := parseID(parentID)
	if !ok {
		return errorReply("invalid parent id")
	}

	var locations []model.Location
	err := s.db.Where("parent_id = ?", pid).Order("sort_order, id").Find(&locations).Error
	if err != nil {
		return errorReply(err.Error())
	}
	return reply(map[string]any{"locations": locations})
}

// GetLocationsByTypeAndParent returns children of a parent filtered by type
func (s *Service) GetLocationsByTypeAndParent(locationType, parentID string) string {
	pid, ok := parseID(parentID)
	if !ok {
		return errorReply("invalid parent id")
	}

	var locations []model.Location
	err := s.db.Where("type = ? AND parent_id = ?", locationType, pid).
		Order("sort_order, id").Find(&locations).Error
	if err != nil {
		return errorReply(err.Error())
	}
	return reply(map[string]any{"locations": locations})
}

// GetCitiesByStateID returns every city under a state, traversing the
// state → county → city hierarchy
func (s *Service) GetCitiesByStateID(stateID string) string {
	sid, ok := parseID(stateID)
	if !ok {
		return errorReply("invalid state id")
	}

	countyIDs := s.db.Model(&model.Location{}).
		Select("id").
		Where("type = ? AND parent_id = ?", model.LocationCounty, sid)

	var cities []model.Location
	err := s.db.Where("type = ? AND parent_id IN (?)", model.LocationCity, countyIDs).
		Order("sort_order, id").Find(&cities).Error
	if err != nil {
		return errorReply(err.Error())
	}
	return reply(map[string]any{"locations": cities})
}

// SeedLocations inserts the given hierarchy if the table is empty.
// Used on first run so the province/city selects have data.
func (s *Service) SeedLocations(locations []model.Location) error {
	var count int64
	if err := s.db.Model(&model.Location{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return s.db.Create(&locations).Error
}
