package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/pazhonic/panel-manager/internal/model"
)

// Panel icon glyphs keyed by the fixed icon set
var panelIconGlyphs = map[string]string{
	model.IconBuilding:  "🏢",
	model.IconHome:      "🏠",
	model.IconStore:     "🏪",
	model.IconWarehouse: "🏭",
	model.IconIndustry:  "🏗",
}

// PanelIconGlyph returns the display glyph for an icon key
func PanelIconGlyph(key string) string {
	return panelIconGlyphs[model.NormalizeIcon(key)]
}

// PanelRow renders one panel as a compact list row: a circular avatar with
// the panel's icon, the name, the phone-or-IP subtitle in Persian digits,
// and the last known arm state.
type PanelRow struct {
	widget.BaseWidget

	panel        model.Panel
	localization *Localization

	avatarCircle *canvas.Circle
	avatarGlyph  *canvas.Text
	nameLabel    *widget.Label
	subLabel     *widget.Label
	statusLabel  *widget.Label
}

// NewPanelRow creates a row for the given panel
func NewPanelRow(panel model.Panel, localization *Localization) *PanelRow {
	pr := &PanelRow{
		panel:        panel,
		localization: localization,
	}
	pr.ExtendBaseWidget(pr)
	pr.createUI()
	pr.updateFromPanel()
	return pr
}

// UpdatePanel updates the row with new panel data
func (pr *PanelRow) UpdatePanel(panel model.Panel) {
	pr.panel = panel
	pr.updateFromPanel()
	pr.Refresh()
}

// createUI creates the UI components
func (pr *PanelRow) createUI() {
	pr.avatarCircle = canvas.NewCircle(color.Transparent)
	pr.avatarCircle.StrokeWidth = 1

	pr.avatarGlyph = canvas.NewText("", theme.Color(theme.ColorNameForeground))
	pr.avatarGlyph.TextSize = 20
	pr.avatarGlyph.Alignment = fyne.TextAlignCenter

	pr.nameLabel = widget.NewLabel("")
	pr.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	pr.nameLabel.Truncation = fyne.TextTruncateEllipsis
	pr.nameLabel.Alignment = fyne.TextAlignLeading

	pr.subLabel = widget.NewLabel("")
	pr.subLabel.Alignment = fyne.TextAlignLeading

	pr.statusLabel = widget.NewLabel("")
	pr.statusLabel.Alignment = fyne.TextAlignTrailing
}

// updateFromPanel updates UI components based on panel state
func (pr *PanelRow) updateFromPanel() {
	pr.avatarGlyph.Text = PanelIconGlyph(pr.panel.Icon)
	pr.nameLabel.SetText(pr.panel.Name)

	subtitle := pr.panel.DisplaySubtitle()
	if subtitle == "" {
		subtitle = DashPlaceholder
	}
	pr.subLabel.SetText(ToPersianDigits(subtitle))

	// Status coloring: armed reads as the alert state
	switch {
	case pr.panel.LastStatus == nil:
		pr.statusLabel.Importance = widget.MediumImportance
		pr.statusLabel.SetText(pr.localization.GetText(KeyStatusUnknown))
		pr.avatarCircle.StrokeColor = theme.Color(theme.ColorNameSeparator)
	case pr.panel.LastStatus.IsArmed():
		pr.statusLabel.Importance = widget.DangerImportance
		pr.statusLabel.SetText(pr.localization.GetText(KeyStatusArmed))
		pr.avatarCircle.StrokeColor = theme.Color(theme.ColorNameError)
	default:
		pr.statusLabel.Importance = widget.SuccessImportance
		pr.statusLabel.SetText(pr.localization.GetText(KeyStatusDisarmed))
		pr.avatarCircle.StrokeColor = theme.Color(theme.ColorNameSuccess)
	}
}

// CreateRenderer creates the widget renderer
func (pr *PanelRow) CreateRenderer() fyne.WidgetRenderer {
	return &panelRowRenderer{panelRow: pr}
}

// panelRowRenderer renders the panel row widget
type panelRowRenderer struct {
	panelRow *PanelRow
	layout   *fyne.Container
}

// Layout arranges the components
func (r *panelRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *panelRowRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		return r.layout.MinSize()
	}
	return fyne.NewSize(RowMinWidth, RowMinHeight)
}

// Refresh refreshes the renderer
func (r *panelRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *panelRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *panelRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *panelRowRenderer) createLayout() {
	pr := r.panelRow

	avatarSpacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
	avatarSpacer.SetMinSize(fyne.NewSize(AvatarSize, AvatarSize))
	avatar := container.NewStack(avatarSpacer, pr.avatarCircle, container.NewCenter(pr.avatarGlyph))

	textStack := container.NewVBox(pr.nameLabel, pr.subLabel)

	mainContent := container.NewBorder(nil, nil, avatar, pr.statusLabel, textStack)

	r.layout = container.NewVBox(
		mainContent,
		widget.NewSeparator(),
	)
}
