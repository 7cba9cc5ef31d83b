package bridge

// Host is the native-side contract. Every method takes and returns
// JSON-encoded strings (or raw "true"/"false" flags where noted), matching
// the in-process bridge object the UI layer is built against.
//
// Asynchronous operations (LoginWithBiometric) take a callback id instead of
// returning a value; the host later delivers a JSON payload for that id
// through the callback sink it was wired with.
type Host interface {
	// Auth & session
	RegisterUser(userJSON string) string
	Login(phoneNumber, password string) string
	GetSessionToken() string
	GetLatestUser() string
	Logout()
	GetBiometricEnabled() string
	SetBiometricEnabled(enabled string)
	LoginWithBiometric(callbackID string)

	// Locations
	GetLocationsByType(locationType string) string
	GetLocationsByParentID(parentID string) string
	GetLocationsByTypeAndParent(locationType, parentID string) string
	GetCitiesByStateID(stateID string) string

	// Panels & folders (current user)
	GetPanelsForUser() string
	GetPanelsByFolder(folderID string) string
	CreatePanel(panelJSON string) string
	UpdatePanel(panelJSON string) string
	DeletePanel(panelID string) string
	SetPanelFolder(panelID, folderID string) string
	SetPanelLastStatus(panelID, lastStatus string) string
	GetFolders() string
	CreateFolder(name string) string
	UpdateFolder(folderID, name string) string
	DeleteFolder(folderID string) string

	// Device query over TCP
	GetSerialNumber(codeUD, ip, port string) string
}
