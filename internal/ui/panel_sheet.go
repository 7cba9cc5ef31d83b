package ui

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/pazhonic/panel-manager/internal/bridge"
	"github.com/pazhonic/panel-manager/internal/model"
	"github.com/pazhonic/panel-manager/internal/panels"
)

// PanelSheet is the create/edit form shown over the panel list. In edit
// mode the serial number is optional and the stored last status is carried
// through unchanged.
type PanelSheet struct {
	adapter      *bridge.Adapter
	store        *panels.Store
	localization *Localization
	window       fyne.Window

	existing *model.Panel // nil in create mode

	iconSelect  *widget.RadioGroup
	nameEntry   *widget.Entry
	udlEntry    *widget.Entry
	ipEntry     *widget.Entry
	portEntry   *widget.Entry
	serialEntry *widget.Entry
	phoneEntry  *widget.Entry
	descEntry   *widget.Entry
	provinceSel *widget.Select
	citySel     *widget.Select
	provinceIDs []uint
	cityIDs     []uint

	dialog  *dialog.CustomDialog
	onSaved func()
}

// NewPanelSheet builds the sheet. existing selects edit mode; onSaved runs
// after a successful save.
func NewPanelSheet(window fyne.Window, adapter *bridge.Adapter, store *panels.Store,
	localization *Localization, existing *model.Panel, onSaved func()) *PanelSheet {

	ps := &PanelSheet{
		adapter:      adapter,
		store:        store,
		localization: localization,
		window:       window,
		existing:     existing,
		onSaved:      onSaved,
	}
	ps.createUI()
	if existing != nil {
		ps.fillFrom(existing)
	}
	return ps
}

// Show presents the sheet
func (ps *PanelSheet) Show() {
	title := ps.localization.GetText(KeyCreatePanel)
	if ps.existing != nil {
		title = ps.localization.GetText(KeyEditPanel)
	}

	saveBtn := widget.NewButton(ps.localization.GetText(KeySave), ps.submit)
	saveBtn.Importance = widget.HighImportance

	content := container.NewVBox(ps.formBody(), saveBtn)
	scroll := container.NewVScroll(content)
	scroll.SetMinSize(fyne.NewSize(SheetWidth, SheetHeight))

	ps.dialog = dialog.NewCustom(title, ps.localization.GetText(KeyCancel), scroll, ps.window)
	ps.dialog.Show()
}

// createUI creates the form inputs
func (ps *PanelSheet) createUI() {
	icons := make([]string, len(model.PanelIcons))
	for i, key := range model.PanelIcons {
		icons[i] = PanelIconGlyph(key)
	}
	ps.iconSelect = widget.NewRadioGroup(icons, nil)
	ps.iconSelect.Horizontal = true
	ps.iconSelect.SetSelected(PanelIconGlyph(model.DefaultIcon))

	ps.nameEntry = widget.NewEntry()
	ps.nameEntry.SetPlaceHolder(ps.localization.GetText(KeyPanelNameHint))

	ps.udlEntry = widget.NewEntry()
	ps.udlEntry.SetPlaceHolder(ps.localization.GetText(KeyUDLCode))

	ps.ipEntry = widget.NewEntry()
	ps.ipEntry.SetPlaceHolder(ps.localization.GetText(KeyIPHint))
	ps.portEntry = widget.NewEntry()
	ps.portEntry.SetPlaceHolder(ps.localization.GetText(KeyPort))

	ps.serialEntry = widget.NewEntry()
	ps.serialEntry.SetPlaceHolder(ps.localization.GetText(KeySerialHint))

	ps.phoneEntry = widget.NewEntry()
	ps.phoneEntry.SetPlaceHolder(ToPersianDigits("09123456789"))

	ps.descEntry = widget.NewMultiLineEntry()

	ps.provinceSel = widget.NewSelect(nil, ps.provinceChanged)
	ps.provinceSel.PlaceHolder = ps.localization.GetText(KeyProvince)
	ps.citySel = widget.NewSelect(nil, nil)
	ps.citySel.PlaceHolder = ps.localization.GetText(KeyCity)
	ps.loadProvinces()
}

func (ps *PanelSheet) formBody() fyne.CanvasObject {
	fetchBtn := widget.NewButton(ps.localization.GetText(KeyFetchSerial), ps.fetchSerial)

	return container.NewVBox(
		ps.iconSelect,
		widget.NewLabel(ps.localization.GetText(KeyPanelName)),
		ps.nameEntry,
		widget.NewLabel(ps.localization.GetText(KeyUDLCode)),
		ps.udlEntry,
		widget.NewLabel(ps.localization.GetText(KeyIPAddress)),
		container.NewBorder(nil, nil, nil, ps.portEntry, ps.ipEntry),
		widget.NewLabel(ps.localization.GetText(KeySerialNumber)),
		container.NewBorder(nil, nil, nil, fetchBtn, ps.serialEntry),
		widget.NewLabel(ps.localization.GetText(KeyPanelPhone)),
		ps.phoneEntry,
		widget.NewLabel(ps.localization.GetText(KeyProvince)),
		ps.provinceSel,
		widget.NewLabel(ps.localization.GetText(KeyCity)),
		ps.citySel,
		widget.NewLabel(ps.localization.GetText(KeyDescription)),
		ps.descEntry,
	)
}

// loadProvinces fills the province select from the bridge
func (ps *PanelSheet) loadProvinces() {
	res := ps.adapter.LocationsByType(model.LocationState)
	if res.Err != "" {
		log.Printf("Warning: loading provinces failed: %s", res.Err)
		return
	}
	names := make([]string, len(res.Locations))
	ps.provinceIDs = make([]uint, len(res.Locations))
	for i, loc := range res.Locations {
		names[i] = loc.Name
		ps.provinceIDs[i] = loc.ID
	}
	ps.provinceSel.Options = names
	ps.provinceSel.Refresh()
}

// provinceChanged reloads the city select for the chosen province
func (ps *PanelSheet) provinceChanged(string) {
	idx := ps.provinceSel.SelectedIndex()
	if idx < 0 || idx >= len(ps.provinceIDs) {
		return
	}
	res := ps.adapter.CitiesByStateID(ps.provinceIDs[idx])
	if res.Err != "" {
		log.Printf("Warning: loading cities failed: %s", res.Err)
		return
	}
	names := make([]string, len(res.Locations))
	ps.cityIDs = make([]uint, len(res.Locations))
	for i, loc := range res.Locations {
		names[i] = loc.Name
		ps.cityIDs[i] = loc.ID
	}
	ps.citySel.ClearSelected()
	ps.citySel.Options = names
	ps.citySel.Refresh()
}

// fetchSerial queries the device for its serial number over the bridge
func (ps *PanelSheet) fetchSerial() {
	if strings.TrimSpace(ps.udlEntry.Text) == "" {
		ps.showError(ps.localization.GetText(KeyUDLRequired))
		return
	}
	if strings.TrimSpace(ps.ipEntry.Text) == "" || strings.TrimSpace(ps.portEntry.Text) == "" {
		ps.showError(ps.localization.GetText(KeyAddrRequired))
		return
	}

	res := ps.adapter.SerialNumber(ps.udlEntry.Text, ps.ipEntry.Text, ps.portEntry.Text)
	if res.Err != "" {
		ps.showError(ps.localization.LocalizeBridgeMessage(res.Err))
		return
	}
	ps.serialEntry.SetText(res.SerialNumber)
	dialog.ShowInformation(ps.localization.GetText(KeyAppTitle),
		ps.localization.GetText(KeySerialFetched), ps.window)
}

// fillFrom loads an existing panel into the form for editing
func (ps *PanelSheet) fillFrom(panel *model.Panel) {
	ps.iconSelect.SetSelected(PanelIconGlyph(panel.Icon))
	ps.nameEntry.SetText(panel.Name)
	ps.udlEntry.SetText(panel.CodeUD)
	ps.ipEntry.SetText(panel.IP)
	if panel.Port > 0 {
		ps.portEntry.SetText(strconv.Itoa(panel.Port))
	}
	ps.serialEntry.SetText(panel.SerialNumber)
	ps.phoneEntry.SetText(panel.GSMPhone)
	ps.descEntry.SetText(panel.Description)
}

// submit validates and saves through the store
func (ps *PanelSheet) submit() {
	panel := model.Panel{
		Icon:         ps.selectedIconKey(),
		Name:         strings.TrimSpace(ps.nameEntry.Text),
		CodeUD:       strings.TrimSpace(ps.udlEntry.Text),
		IP:           strings.TrimSpace(ps.ipEntry.Text),
		SerialNumber: strings.TrimSpace(ps.serialEntry.Text),
		GSMPhone:     strings.TrimSpace(ps.phoneEntry.Text),
		Description:  ps.descEntry.Text,
		IsActive:     true,
	}
	if port, err := strconv.Atoi(strings.TrimSpace(ps.portEntry.Text)); err == nil {
		panel.Port = port
	}
	if idx := ps.citySel.SelectedIndex(); idx >= 0 && idx < len(ps.cityIDs) {
		id := ps.cityIDs[idx]
		panel.LocationID = &id
	}

	var err error
	if ps.existing != nil {
		// Carry non-editable fields through unchanged; the host writes the
		// record as sent, so an omission here wipes the stored value
		panel.ID = ps.existing.ID
		panel.FolderID = ps.existing.FolderID
		panel.Code = ps.existing.Code
		panel.LastStatus = ps.existing.LastStatus
		panel.IsActive = ps.existing.IsActive
		if panel.LocationID == nil {
			panel.LocationID = ps.existing.LocationID
		}
		err = ps.store.Update(panel)
	} else {
		_, err = ps.store.Create(panel)
	}
	if err != nil {
		ps.showError(ps.errorMessage(err))
		return
	}

	if ps.dialog != nil {
		ps.dialog.Hide()
	}
	if ps.onSaved != nil {
		ps.onSaved()
	}
}

func (ps *PanelSheet) selectedIconKey() string {
	selected := ps.iconSelect.Selected
	for _, key := range model.PanelIcons {
		if PanelIconGlyph(key) == selected {
			return key
		}
	}
	return model.DefaultIcon
}

// errorMessage maps validation errors to localized text; host-reported
// messages are surfaced verbatim.
func (ps *PanelSheet) errorMessage(err error) string {
	switch {
	case errors.Is(err, panels.ErrNameRequired):
		return ps.localization.GetText(KeyNameRequired)
	case errors.Is(err, panels.ErrSerialRequired):
		return ps.localization.GetText(KeySerialRequired)
	default:
		return ps.localization.LocalizeBridgeMessage(err.Error())
	}
}

func (ps *PanelSheet) showError(message string) {
	dialog.ShowInformation(ps.localization.GetText(KeyAppTitle), message, ps.window)
}
