package model

// Package model defines domain data structures used across the app: panels,
// folders, locations, users, and status enums. Structures mirror the records
// exchanged with the bridge host and carry both JSON wire tags and GORM
// column tags so the local host can persist them directly.
