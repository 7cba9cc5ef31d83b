package panels

import (
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/pazhonic/panel-manager/internal/bridge"
	"github.com/pazhonic/panel-manager/internal/model"
)

// Validation and gating errors reported before the host is ever contacted
var (
	ErrNameRequired    = errors.New("panel name is required")
	ErrSerialRequired  = errors.New("serial number is required")
	ErrConfirmRequired = errors.New("delete not confirmed")
	ErrFolderName      = errors.New("folder name is required")
)

// API is the slice of the bridge adapter the store drives
type API interface {
	PanelsForUser() bridge.PanelsResult
	Folders() bridge.FoldersResult
	CreatePanel(panel model.Panel) bridge.ActionResult
	UpdatePanel(panel model.Panel) bridge.ActionResult
	DeletePanel(panelID uint) bridge.ActionResult
	SetPanelFolder(panelID uint, folderID *uint) bridge.ActionResult
	SetPanelLastStatus(panelID uint, status model.PanelStatus) bridge.ActionResult
	CreateFolder(name string) bridge.ActionResult
	UpdateFolder(folderID uint, name string) bridge.ActionResult
	DeleteFolder(folderID uint) bridge.ActionResult
}

// Store is the single source of truth for the panel list screen. Every
// mutation goes through the host first; the local snapshot only changes
// when the host reports success, so an error never leaves half-applied
// state behind.
type Store struct {
	api API
	log zerolog.Logger

	mu             sync.RWMutex
	panels         []model.Panel
	folders        []model.Folder
	confirmDeletes bool

	subMu sync.Mutex
	subs  []func()
}

// NewStore creates an empty store backed by api
func NewStore(api API, log zerolog.Logger) *Store {
	return &Store{
		api:            api,
		log:            log.With().Str("component", "panel-store").Logger(),
		confirmDeletes: true,
	}
}

// SetConfirmDeletes toggles the confirmation gate on panel deletion
func (s *Store) SetConfirmDeletes(enabled bool) {
	s.mu.Lock()
	s.confirmDeletes = enabled
	s.mu.Unlock()
}

// Subscribe registers fn to run after every successful state change
func (s *Store) Subscribe(fn func()) {
	s.subMu.Lock()
	s.subs = append(s.subs, fn)
	s.subMu.Unlock()
}

func (s *Store) notify() {
	s.subMu.Lock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.subMu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// Panels returns a copy of the current panel snapshot
func (s *Store) Panels() []model.Panel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	panels := make([]model.Panel, len(s.panels))
	copy(panels, s.panels)
	return panels
}

// Folders returns a copy of the current folder snapshot
func (s *Store) Folders() []model.Folder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	folders := make([]model.Folder, len(s.folders))
	copy(folders, s.folders)
	return folders
}

// Filtered returns the panels visible under the given category and query
func (s *Store) Filtered(category Category, query string) []model.Panel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Filter(s.panels, category, query)
}

// FolderByID looks a folder up in the current snapshot
func (s *Store) FolderByID(id uint) (model.Folder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.folders {
		if f.ID == id {
			return f, true
		}
	}
	return model.Folder{}, false
}

// RefetchPanels replaces the panel snapshot with the host's current list.
// On error the snapshot is left untouched.
func (s *Store) RefetchPanels() error {
	res := s.api.PanelsForUser()
	if res.Err != "" {
		s.log.Warn().Str("error", res.Err).Msg("panel refetch failed")
		return errors.New(res.Err)
	}
	s.mu.Lock()
	s.panels = res.Panels
	s.mu.Unlock()
	s.notify()
	return nil
}

// RefetchFolders replaces the folder snapshot with the host's current list.
// On error the snapshot is left untouched.
func (s *Store) RefetchFolders() error {
	res := s.api.Folders()
	if res.Err != "" {
		s.log.Warn().Str("error", res.Err).Msg("folder refetch failed")
		return errors.New(res.Err)
	}
	s.mu.Lock()
	s.folders = res.Folders
	s.mu.Unlock()
	s.notify()
	return nil
}

// Refetch reloads both snapshots, reporting the first failure
func (s *Store) Refetch() error {
	if err := s.RefetchPanels(); err != nil {
		return err
	}
	return s.RefetchFolders()
}

// Create validates and creates a panel. Validation failures are returned
// without contacting the host. On success the stored list is refetched so
// the new row carries its server-assigned id.
func (s *Store) Create(panel model.Panel) (uint, error) {
	if strings.TrimSpace(panel.Name) == "" {
		return 0, ErrNameRequired
	}
	if strings.TrimSpace(panel.SerialNumber) == "" {
		return 0, ErrSerialRequired
	}
	res := s.api.CreatePanel(panel)
	if res.Failed() {
		return 0, actionError(res)
	}
	if err := s.RefetchPanels(); err != nil {
		return res.ID, err
	}
	return res.ID, nil
}

// Update sends the full panel record to the host and refetches the stored
// list on success, so host-side changes made in the meantime (a
// device-reported status, say) land in the same snapshot. The record must
// carry every field, LastStatus included, or the host-side value is
// overwritten.
func (s *Store) Update(panel model.Panel) error {
	if strings.TrimSpace(panel.Name) == "" {
		return ErrNameRequired
	}
	res := s.api.UpdatePanel(panel)
	if res.Failed() {
		return actionError(res)
	}
	return s.RefetchPanels()
}

// Delete removes a panel. When delete confirmation is enabled the call is
// rejected before reaching the host unless confirmed is true. The local row
// disappears only after the host reports success.
func (s *Store) Delete(panelID uint, confirmed bool) error {
	s.mu.RLock()
	needsConfirm := s.confirmDeletes
	s.mu.RUnlock()
	if needsConfirm && !confirmed {
		return ErrConfirmRequired
	}

	res := s.api.DeletePanel(panelID)
	if res.Failed() {
		return actionError(res)
	}
	s.mu.Lock()
	for i := range s.panels {
		if s.panels[i].ID == panelID {
			s.panels = append(s.panels[:i], s.panels[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	s.notify()
	return nil
}

// MoveToFolder reassigns a panel, then refetches so the list reflects the
// host's view. A nil folderID clears the assignment.
func (s *Store) MoveToFolder(panelID uint, folderID *uint) error {
	res := s.api.SetPanelFolder(panelID, folderID)
	if res.Failed() {
		return actionError(res)
	}
	return s.RefetchPanels()
}

// SetLastStatus records a panel's reported arming state
func (s *Store) SetLastStatus(panelID uint, status model.PanelStatus) error {
	res := s.api.SetPanelLastStatus(panelID, status)
	if res.Failed() {
		return actionError(res)
	}
	s.mu.Lock()
	for i := range s.panels {
		if s.panels[i].ID == panelID {
			st := status
			s.panels[i].LastStatus = &st
			break
		}
	}
	s.mu.Unlock()
	s.notify()
	return nil
}

// CreateFolder creates a folder and refetches the folder list
func (s *Store) CreateFolder(name string) (uint, error) {
	if strings.TrimSpace(name) == "" {
		return 0, ErrFolderName
	}
	res := s.api.CreateFolder(name)
	if res.Failed() {
		return 0, actionError(res)
	}
	if err := s.RefetchFolders(); err != nil {
		return res.ID, err
	}
	return res.ID, nil
}

// RenameFolder updates a folder's name
func (s *Store) RenameFolder(folderID uint, name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrFolderName
	}
	res := s.api.UpdateFolder(folderID, name)
	if res.Failed() {
		return actionError(res)
	}
	return s.RefetchFolders()
}

// DeleteFolder removes a folder. The host reassigns the folder's panels to
// uncategorized, so both snapshots are refetched rather than patched here.
func (s *Store) DeleteFolder(folderID uint) error {
	res := s.api.DeleteFolder(folderID)
	if res.Failed() {
		return actionError(res)
	}
	return s.Refetch()
}

func actionError(res bridge.ActionResult) error {
	if res.Err == "" {
		return errors.New(bridge.MsgInvalidResponse)
	}
	return errors.New(res.Err)
}
