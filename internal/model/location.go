package model

// LocationType identifies a level in the location hierarchy
type LocationType string

const (
	LocationCountry LocationType = "COUNTRY"
	LocationState   LocationType = "STATE"
	LocationCounty  LocationType = "COUNTY"
	LocationCity    LocationType = "CITY"
)

// Location is a node in the country/state/county/city hierarchy
type Location struct {
	ID        uint         `json:"id" gorm:"primaryKey"`
	Name      string       `json:"name" gorm:"not null"`
	Type      LocationType `json:"type" gorm:"index"`
	ParentID  *uint        `json:"parentId" gorm:"index"`
	Code      string       `json:"code"`
	SortOrder int          `json:"sortOrder"`
}
