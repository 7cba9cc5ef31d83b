package bridge

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/valyala/fastjson"

	"github.com/pazhonic/panel-manager/internal/model"
)

// RegisterPayload is the request body for RegisterUser
type RegisterPayload struct {
	UserName     string `json:"userName"`
	PhoneNumber  string `json:"phoneNumber"`
	Password     string `json:"password"`
	FullName     string `json:"fullName,omitempty"`
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	NationalCode string `json:"nationalCode,omitempty"`
	AvatarURL    string `json:"avatarUrl,omitempty"`
	IPAddress    string `json:"ipAddress,omitempty"`
}

// Adapter wraps a Host with typed request/response handling.
// Query calls degrade to neutral empty results when no host is attached;
// action calls report an explicit "Bridge not available" failure.
type Adapter struct {
	host      Host
	callbacks *Registry
	log       zerolog.Logger
}

// New creates an adapter over the given host. A nil host is allowed and
// puts the adapter into its degraded mode.
func New(host Host, log zerolog.Logger) *Adapter {
	return &Adapter{
		host:      host,
		callbacks: NewRegistry(),
		log:       log.With().Str("component", "bridge").Logger(),
	}
}

// Available reports whether a host is attached
func (a *Adapter) Available() bool {
	return a.host != nil
}

// Dispatch delivers an asynchronous host payload to its pending callback.
// Wire this as the host's callback sink.
func (a *Adapter) Dispatch(callbackID, payload string) {
	if !a.callbacks.Dispatch(callbackID, payload) {
		a.log.Debug().Str("callback", callbackID).Msg("dropping reply for unknown callback")
	}
}

// --- Auth & session ---

// RegisterUser creates a new account
func (a *Adapter) RegisterUser(payload RegisterPayload) ActionResult {
	if a.host == nil {
		return ActionResult{Err: MsgBridgeUnavailable}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return ActionResult{Err: err.Error()}
	}
	return a.parseAction(a.host.RegisterUser(string(body)))
}

// Login authenticates with phone number and password
func (a *Adapter) Login(phoneNumber, password string) LoginResult {
	if a.host == nil {
		return LoginResult{Err: MsgBridgeUnavailable}
	}
	return a.parseLogin(a.host.Login(phoneNumber, password))
}

// SessionToken returns the current session token, empty when none
func (a *Adapter) SessionToken() string {
	if a.host == nil {
		return ""
	}
	v, err := fastjson.Parse(a.host.GetSessionToken())
	if err != nil {
		return ""
	}
	return string(v.GetStringBytes("token"))
}

// LatestUser returns the current user, nil when no valid session exists
func (a *Adapter) LatestUser() *model.User {
	if a.host == nil {
		return nil
	}
	var envelope struct {
		User *model.User `json:"user"`
	}
	if err := json.Unmarshal([]byte(a.host.GetLatestUser()), &envelope); err != nil {
		a.log.Warn().Err(err).Msg("malformed latest-user reply")
		return nil
	}
	return envelope.User
}

// Logout ends the session on the host
func (a *Adapter) Logout() {
	if a.host != nil {
		a.host.Logout()
	}
}

// BiometricEnabled returns whether biometric login is enabled on the host
func (a *Adapter) BiometricEnabled() bool {
	if a.host == nil {
		return false
	}
	return a.host.GetBiometricEnabled() == "true"
}

// SetBiometricEnabled toggles biometric login on the host
func (a *Adapter) SetBiometricEnabled(enabled bool) {
	if a.host == nil {
		return
	}
	a.host.SetBiometricEnabled(strconv.FormatBool(enabled))
}

// LoginWithBiometric starts an asynchronous biometric login. onResult is
// invoked exactly once with the outcome. The returned cancel func drops the
// pending callback; a reply arriving after cancel is silently ignored, so
// the caller may go away while the call is outstanding.
func (a *Adapter) LoginWithBiometric(onResult func(LoginResult)) (cancel func()) {
	if a.host == nil {
		onResult(LoginResult{Err: MsgBridgeUnavailable})
		return func() {}
	}
	id := a.callbacks.Register(func(payload string) {
		onResult(a.parseLogin(payload))
	})
	a.host.LoginWithBiometric(id)
	return func() { a.callbacks.Cancel(id) }
}

// --- Locations ---

// LocationsByType returns all locations of the given type
func (a *Adapter) LocationsByType(locationType model.LocationType) LocationsResult {
	if a.host == nil {
		return LocationsResult{Locations: []model.Location{}}
	}
	return a.parseLocations(a.host.GetLocationsByType(string(locationType)))
}

// LocationsByParentID returns the direct children of a location
func (a *Adapter) LocationsByParentID(parentID uint) LocationsResult {
	if a.host == nil {
		return LocationsResult{Locations: []model.Location{}}
	}
	return a.parseLocations(a.host.GetLocationsByParentID(formatID(parentID)))
}

// LocationsByTypeAndParent returns children of a parent filtered by type
func (a *Adapter) LocationsByTypeAndParent(locationType model.LocationType, parentID uint) LocationsResult {
	if a.host == nil {
		return LocationsResult{Locations: []model.Location{}}
	}
	return a.parseLocations(a.host.GetLocationsByTypeAndParent(string(locationType), formatID(parentID)))
}

// CitiesByStateID returns all cities under a state (state → county → city)
func (a *Adapter) CitiesByStateID(stateID uint) LocationsResult {
	if a.host == nil {
		return LocationsResult{Locations: []model.Location{}}
	}
	return a.parseLocations(a.host.GetCitiesByStateID(formatID(stateID)))
}

// --- Panels & folders ---

// PanelsForUser returns every panel of the current user
func (a *Adapter) PanelsForUser() PanelsResult {
	if a.host == nil {
		return PanelsResult{Panels: []model.Panel{}}
	}
	return a.parsePanels(a.host.GetPanelsForUser())
}

// PanelsByFolder returns panels in a folder; nil means uncategorized
func (a *Adapter) PanelsByFolder(folderID *uint) PanelsResult {
	if a.host == nil {
		return PanelsResult{Panels: []model.Panel{}}
	}
	arg := "null"
	if folderID != nil {
		arg = formatID(*folderID)
	}
	return a.parsePanels(a.host.GetPanelsByFolder(arg))
}

// CreatePanel submits a new panel record
func (a *Adapter) CreatePanel(panel model.Panel) ActionResult {
	if a.host == nil {
		return ActionResult{Err: MsgBridgeUnavailable}
	}
	body, err := json.Marshal(panel)
	if err != nil {
		return ActionResult{Err: err.Error()}
	}
	return a.parseAction(a.host.CreatePanel(string(body)))
}

// UpdatePanel submits a full replacement of an existing panel record
func (a *Adapter) UpdatePanel(panel model.Panel) ActionResult {
	if a.host == nil {
		return ActionResult{Err: MsgBridgeUnavailable}
	}
	body, err := json.Marshal(panel)
	if err != nil {
		return ActionResult{Err: err.Error()}
	}
	return a.parseAction(a.host.UpdatePanel(string(body)))
}

// DeletePanel removes a panel by id
func (a *Adapter) DeletePanel(panelID uint) ActionResult {
	if a.host == nil {
		return ActionResult{Err: MsgBridgeUnavailable}
	}
	return a.parseAction(a.host.DeletePanel(formatID(panelID)))
}

// SetPanelFolder reassigns a panel; nil folder means uncategorized
func (a *Adapter) SetPanelFolder(panelID uint, folderID *uint) ActionResult {
	if a.host == nil {
		return ActionResult{Err: MsgBridgeUnavailable}
	}
	arg := ""
	if folderID != nil {
		arg = formatID(*folderID)
	}
	return a.parseAction(a.host.SetPanelFolder(formatID(panelID), arg))
}

// SetPanelLastStatus records the status reported by a connected panel
func (a *Adapter) SetPanelLastStatus(panelID uint, status model.PanelStatus) ActionResult {
	if a.host == nil {
		return ActionResult{Err: MsgBridgeUnavailable}
	}
	return a.parseAction(a.host.SetPanelLastStatus(formatID(panelID), status.String()))
}

// Folders returns the current user's folders
func (a *Adapter) Folders() FoldersResult {
	if a.host == nil {
		return FoldersResult{Folders: []model.Folder{}}
	}
	return a.parseFolders(a.host.GetFolders())
}

// CreateFolder creates a folder with the given name
func (a *Adapter) CreateFolder(name string) ActionResult {
	if a.host == nil {
		return ActionResult{Err: MsgBridgeUnavailable}
	}
	return a.parseAction(a.host.CreateFolder(name))
}

// UpdateFolder renames a folder
func (a *Adapter) UpdateFolder(folderID uint, name string) ActionResult {
	if a.host == nil {
		return ActionResult{Err: MsgBridgeUnavailable}
	}
	return a.parseAction(a.host.UpdateFolder(formatID(folderID), name))
}

// DeleteFolder removes a folder. The host reassigns member panels to
// uncategorized; the client never does this locally.
func (a *Adapter) DeleteFolder(folderID uint) ActionResult {
	if a.host == nil {
		return ActionResult{Err: MsgBridgeUnavailable}
	}
	return a.parseAction(a.host.DeleteFolder(formatID(folderID)))
}

// --- Device query ---

// SerialNumber queries a panel's serial number over TCP using its
// upload/download code. The host blocks until the device answers or times out.
func (a *Adapter) SerialNumber(codeUD, ip, port string) SerialResult {
	if a.host == nil {
		return SerialResult{Err: MsgBridgeUnavailable}
	}
	reply := a.host.GetSerialNumber(strings.TrimSpace(codeUD), strings.TrimSpace(ip), strings.TrimSpace(port))
	v, err := fastjson.Parse(reply)
	if err != nil {
		a.log.Warn().Err(err).Msg("malformed serial-number reply")
		return SerialResult{Err: MsgInvalidResponse}
	}
	if e := v.GetStringBytes("error"); len(e) > 0 {
		return SerialResult{Err: string(e)}
	}
	serial := string(v.GetStringBytes("serialNumber"))
	if serial == "" {
		return SerialResult{Err: MsgInvalidResponse}
	}
	return SerialResult{SerialNumber: serial}
}

// --- reply parsing ---

func (a *Adapter) parseAction(reply string) ActionResult {
	v, err := fastjson.Parse(reply)
	if err != nil {
		a.log.Warn().Err(err).Msg("malformed action reply")
		return ActionResult{Err: MsgInvalidResponse}
	}
	res := ActionResult{Success: v.GetBool("success")}
	if e := v.GetStringBytes("error"); len(e) > 0 {
		res.Err = string(e)
	}
	res.ID = uint(v.GetUint("id"))
	return res
}

func (a *Adapter) parseLogin(reply string) LoginResult {
	var envelope struct {
		Success bool        `json:"success"`
		Token   string      `json:"token"`
		User    *model.User `json:"user"`
		Error   string      `json:"error"`
	}
	if err := json.Unmarshal([]byte(reply), &envelope); err != nil {
		a.log.Warn().Err(err).Msg("malformed login reply")
		return LoginResult{Err: MsgInvalidResponse}
	}
	return LoginResult{
		Success: envelope.Success,
		Token:   envelope.Token,
		User:    envelope.User,
		Err:     envelope.Error,
	}
}

func (a *Adapter) parsePanels(reply string) PanelsResult {
	var envelope struct {
		Panels []model.Panel `json:"panels"`
		Error  string        `json:"error"`
	}
	if err := json.Unmarshal([]byte(reply), &envelope); err != nil {
		a.log.Warn().Err(err).Msg("malformed panels reply")
		return PanelsResult{Panels: []model.Panel{}, Err: MsgInvalidResponse}
	}
	if envelope.Panels == nil {
		envelope.Panels = []model.Panel{}
	}
	return PanelsResult{Panels: envelope.Panels, Err: envelope.Error}
}

func (a *Adapter) parseFolders(reply string) FoldersResult {
	var envelope struct {
		Folders []model.Folder `json:"folders"`
		Error   string         `json:"error"`
	}
	if err := json.Unmarshal([]byte(reply), &envelope); err != nil {
		a.log.Warn().Err(err).Msg("malformed folders reply")
		return FoldersResult{Folders: []model.Folder{}, Err: MsgInvalidResponse}
	}
	if envelope.Folders == nil {
		envelope.Folders = []model.Folder{}
	}
	return FoldersResult{Folders: envelope.Folders, Err: envelope.Error}
}

func (a *Adapter) parseLocations(reply string) LocationsResult {
	var envelope struct {
		Locations []model.Location `json:"locations"`
		Error     string           `json:"error"`
	}
	if err := json.Unmarshal([]byte(reply), &envelope); err != nil {
		a.log.Warn().Err(err).Msg("malformed locations reply")
		return LocationsResult{Locations: []model.Location{}, Err: MsgInvalidResponse}
	}
	if envelope.Locations == nil {
		envelope.Locations = []model.Location{}
	}
	return LocationsResult{Locations: envelope.Locations, Err: envelope.Error}
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
