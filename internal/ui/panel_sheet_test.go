package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"

	"github.com/pazhonic/panel-manager/internal/bridge"
	"github.com/pazhonic/panel-manager/internal/model"
	"github.com/pazhonic/panel-manager/internal/panels"
)

// sheetAPI captures the record the sheet sends upward on save
type sheetAPI struct {
	panels  []model.Panel
	created *model.Panel
	updated *model.Panel
}

func (f *sheetAPI) PanelsForUser() bridge.PanelsResult { return bridge.PanelsResult{Panels: f.panels} }
func (f *sheetAPI) Folders() bridge.FoldersResult      { return bridge.FoldersResult{} }

func (f *sheetAPI) CreatePanel(panel model.Panel) bridge.ActionResult {
	f.created = &panel
	return bridge.ActionResult{Success: true, ID: 1}
}

func (f *sheetAPI) UpdatePanel(panel model.Panel) bridge.ActionResult {
	f.updated = &panel
	return bridge.ActionResult{Success: true}
}

func (f *sheetAPI) DeletePanel(uint) bridge.ActionResult { return bridge.ActionResult{Success: true} }

func (f *sheetAPI) SetPanelFolder(uint, *uint) bridge.ActionResult {
	return bridge.ActionResult{Success: true}
}

func (f *sheetAPI) SetPanelLastStatus(uint, model.PanelStatus) bridge.ActionResult {
	return bridge.ActionResult{Success: true}
}

func (f *sheetAPI) CreateFolder(string) bridge.ActionResult {
	return bridge.ActionResult{Success: true}
}

func (f *sheetAPI) UpdateFolder(uint, string) bridge.ActionResult {
	return bridge.ActionResult{Success: true}
}

func (f *sheetAPI) DeleteFolder(uint) bridge.ActionResult { return bridge.ActionResult{Success: true} }

func newSheet(t *testing.T, api *sheetAPI, existing *model.Panel) *PanelSheet {
	t.Helper()
	app := test.NewApp()
	window := app.NewWindow("test")
	adapter := bridge.New(nil, zerolog.Nop())
	store := panels.NewStore(api, zerolog.Nop())
	return NewPanelSheet(window, adapter, store, NewLocalization(), existing, nil)
}

func TestEditKeepsFieldsOutsideTheForm(t *testing.T) {
	folderID := uint(3)
	armed := model.StatusArm
	existing := &model.Panel{
		ID:           7,
		Name:         "Home",
		GSMPhone:     "09351112233",
		Code:         "4321",
		CodeUD:       "1234",
		IP:           "192.168.1.10",
		Port:         10000,
		SerialNumber: "SN-1000",
		FolderID:     &folderID,
		LastStatus:   &armed,
	}
	api := &sheetAPI{panels: []model.Panel{*existing}}
	ps := newSheet(t, api, existing)

	// Rename only; everything else stays as loaded
	ps.nameEntry.SetText("Home East")
	ps.submit()

	if api.updated == nil {
		t.Fatal("Expected the update to reach the host")
	}
	got := api.updated
	if got.Name != "Home East" {
		t.Errorf("Expected the new name, got %q", got.Name)
	}
	if got.GSMPhone != "09351112233" {
		t.Errorf("Expected the GSM phone to survive the edit, got %q", got.GSMPhone)
	}
	if got.Code != "4321" {
		t.Errorf("Expected the panel code to survive the edit, got %q", got.Code)
	}
	if got.FolderID == nil || *got.FolderID != folderID {
		t.Error("Expected the folder assignment to survive the edit")
	}
	if got.LastStatus == nil || *got.LastStatus != model.StatusArm {
		t.Error("Expected the last status to survive the edit")
	}
	if got.SerialNumber != "SN-1000" || got.CodeUD != "1234" {
		t.Errorf("Expected form fields loaded from the record, got serial %q udl %q",
			got.SerialNumber, got.CodeUD)
	}
}

func TestCreateSendsPhoneFromForm(t *testing.T) {
	api := &sheetAPI{}
	ps := newSheet(t, api, nil)

	ps.nameEntry.SetText("Office")
	ps.serialEntry.SetText("SN-2000")
	ps.phoneEntry.SetText("09121234567")
	ps.submit()

	if api.created == nil {
		t.Fatal("Expected the create to reach the host")
	}
	if api.created.GSMPhone != "09121234567" {
		t.Errorf("Expected the phone from the form, got %q", api.created.GSMPhone)
	}
}
