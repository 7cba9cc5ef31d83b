package bridge

import "github.com/pazhonic/panel-manager/internal/model"

// Error messages surfaced when the host itself cannot report one.
// MsgInvalidResponse matches the localized string shown by the app.
const (
	MsgBridgeUnavailable = "Bridge not available"
	MsgInvalidResponse   = "پاسخ نامعتبر"
)

// ActionResult is the outcome of a mutating bridge call
type ActionResult struct {
	Success bool
	ID      uint   // server-assigned id, set by create operations only
	Err     string // host-reported or transport error, empty on success
}

// Failed returns true when the action did not succeed
func (r ActionResult) Failed() bool {
	return !r.Success
}

// LoginResult is the outcome of a login or biometric-login call
type LoginResult struct {
	Success bool
	Token   string
	User    *model.User
	Err     string
}

// PanelsResult carries a panel list reply
type PanelsResult struct {
	Panels []model.Panel
	Err    string
}

// FoldersResult carries a folder list reply
type FoldersResult struct {
	Folders []model.Folder
	Err     string
}

// LocationsResult carries a location list reply
type LocationsResult struct {
	Locations []model.Location
	Err       string
}

// SerialResult carries a device serial-number reply
type SerialResult struct {
	SerialNumber string
	Err          string
}
