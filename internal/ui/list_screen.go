package ui

import (
	"fmt"
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/pazhonic/panel-manager/internal/bridge"
	"github.com/pazhonic/panel-manager/internal/config"
	"github.com/pazhonic/panel-manager/internal/model"
	"github.com/pazhonic/panel-manager/internal/panels"
)

// Category bar identifiers persisted between sessions
const (
	categoryAllID           = "all"
	categoryUncategorizedID = "uncategorized"
)

// ListScreen is the main panel list: a category bar, a scroll-aware search
// entry, swipeable rows, and a floating create button. The screen owns the
// "currently open row" slot, so at most one row shows its actions.
type ListScreen struct {
	window       fyne.Window
	adapter      *bridge.Adapter
	store        *panels.Store
	settings     *config.Settings
	localization *Localization
	headerSearch *HeaderSearch

	activeCategory panels.Category
	searchQuery    string

	searchEntry *widget.Entry
	categoryBar *fyne.Container
	listBox     *fyne.Container
	scroll      *container.Scroll
	coordinator *ScrollCoordinator

	rows      map[uint]*SwipeRow
	openRowID uint

	content fyne.CanvasObject
}

// NewListScreen builds the list screen and loads the first snapshot
func NewListScreen(window fyne.Window, adapter *bridge.Adapter, store *panels.Store,
	settings *config.Settings, localization *Localization, headerSearch *HeaderSearch) *ListScreen {

	ls := &ListScreen{
		window:         window,
		adapter:        adapter,
		store:          store,
		settings:       settings,
		localization:   localization,
		headerSearch:   headerSearch,
		activeCategory: restoreCategory(settings.GetLastCategory()),
		rows:           make(map[uint]*SwipeRow),
	}
	ls.createUI()

	store.SetConfirmDeletes(settings.GetConfirmDeletes())
	store.Subscribe(ls.refresh)
	if err := store.Refetch(); err != nil {
		log.Printf("Warning: initial panel fetch failed: %v", err)
	}

	// The outer header shows the collapsed-search affordance only while
	// the inline entry is hidden
	headerSearch.Set(false, ls.scrollToTopAndExpand)

	return ls
}

// Content returns the screen's root canvas object
func (ls *ListScreen) Content() fyne.CanvasObject {
	return ls.content
}

// Teardown releases the shared header registration
func (ls *ListScreen) Teardown() {
	ls.headerSearch.Clear()
}

// createUI creates the screen layout
func (ls *ListScreen) createUI() {
	ls.searchEntry = widget.NewEntry()
	ls.searchEntry.SetPlaceHolder(ls.localization.GetText(KeySearchPlaceholder))
	ls.searchEntry.OnChanged = func(query string) {
		ls.searchQuery = query
		ls.rebuildList()
	}

	ls.categoryBar = container.NewHBox()
	ls.listBox = container.NewVBox()
	ls.scroll = container.NewVScroll(ls.listBox)

	ls.coordinator = NewScrollCoordinator(func(visible bool) {
		if visible {
			ls.searchEntry.Show()
		} else {
			ls.searchEntry.Hide()
		}
		ls.headerSearch.Set(!visible, ls.scrollToTopAndExpand)
	})
	ls.coordinator.Attach(ls.scroll)

	createBtn := widget.NewButton("+ "+ls.localization.GetText(KeyCreatePanel), ls.showCreateSheet)
	createBtn.Importance = widget.HighImportance
	floating := container.NewVBox(
		layout.NewSpacer(),
		container.NewHBox(layout.NewSpacer(), container.NewPadded(createBtn)),
	)

	header := container.NewVBox(
		ls.searchEntry,
		container.NewHScroll(ls.categoryBar),
	)

	ls.content = container.NewBorder(header, nil, nil, nil,
		container.NewStack(ls.scroll, floating))

	ls.rebuildCategories()
}

// scrollToTopAndExpand handles a tap on the collapsed header affordance
func (ls *ListScreen) scrollToTopAndExpand() {
	ls.scroll.ScrollToTop()
	ls.coordinator.OnScroll(0)
	ls.coordinator.Frame()
}

// refresh re-renders the category bar and list from the store snapshot
func (ls *ListScreen) refresh() {
	ls.rebuildCategories()
	ls.rebuildList()
}

// rebuildCategories renders the category chips: all, uncategorized, then
// one per folder.
func (ls *ListScreen) rebuildCategories() {
	ls.categoryBar.RemoveAll()

	ls.categoryBar.Add(ls.categoryChip(ls.localization.GetText(KeyCategoryAll), panels.CategoryAll))
	ls.categoryBar.Add(ls.categoryChip(ls.localization.GetText(KeyCategoryNoFolder), panels.CategoryUncategorized))
	for _, folder := range ls.store.Folders() {
		ls.categoryBar.Add(ls.categoryChip(folder.Name, panels.FolderCategory(folder.ID)))
	}
	ls.categoryBar.Refresh()
}

func (ls *ListScreen) categoryChip(label string, category panels.Category) *widget.Button {
	chip := widget.NewButton(label, func() {
		ls.activeCategory = category
		ls.settings.SetLastCategory(persistCategory(category))
		ls.rebuildList()
	})
	if category == ls.activeCategory {
		chip.Importance = widget.HighImportance
	} else {
		chip.Importance = widget.LowImportance
	}
	return chip
}

// rebuildList renders the filtered rows. Rebuilding closes any open row,
// matching the externally-imposed close contract.
func (ls *ListScreen) rebuildList() {
	ls.listBox.RemoveAll()
	ls.rows = make(map[uint]*SwipeRow)
	ls.openRowID = 0

	for _, panel := range ls.store.Filtered(ls.activeCategory, ls.searchQuery) {
		row := NewSwipeRow(panel.ID, NewPanelRow(panel, ls.localization), ls.localization)
		row.OnEdit = ls.editPanel
		row.OnDelete = ls.confirmDelete
		row.OnSelect = ls.showDetail
		row.OnOpenChanged = ls.rowOpenChanged
		ls.rows[panel.ID] = row
		ls.listBox.Add(row)
	}
	ls.listBox.Refresh()
}

// rowOpenChanged enforces the single-open policy: opening one row closes
// the previously open one.
func (ls *ListScreen) rowOpenChanged(panelID uint, open bool) {
	if !open {
		if ls.openRowID == panelID {
			ls.openRowID = 0
		}
		return
	}
	if ls.openRowID != 0 && ls.openRowID != panelID {
		if prev, ok := ls.rows[ls.openRowID]; ok {
			prev.ForceClose()
		}
	}
	ls.openRowID = panelID
}

func (ls *ListScreen) panelByID(panelID uint) (model.Panel, bool) {
	for _, panel := range ls.store.Panels() {
		if panel.ID == panelID {
			return panel, true
		}
	}
	return model.Panel{}, false
}

// showCreateSheet opens the create form
func (ls *ListScreen) showCreateSheet() {
	NewPanelSheet(ls.window, ls.adapter, ls.store, ls.localization, nil, nil).Show()
}

// editPanel opens the edit form for the row's panel id
func (ls *ListScreen) editPanel(panelID uint) {
	panel, ok := ls.panelByID(panelID)
	if !ok {
		return
	}
	NewPanelSheet(ls.window, ls.adapter, ls.store, ls.localization, &panel, nil).Show()
}

// confirmDelete gates the delete behind an explicit confirmation dialog
func (ls *ListScreen) confirmDelete(panelID uint) {
	panel, ok := ls.panelByID(panelID)
	if !ok {
		return
	}
	message := fmt.Sprintf(ls.localization.GetText(KeyDeleteConfirmBody), panel.Name)
	dialog.ShowConfirm(ls.localization.GetText(KeyDeleteConfirmTitle), message, func(confirmed bool) {
		if !confirmed {
			return
		}
		if err := ls.store.Delete(panelID, true); err != nil {
			dialog.ShowInformation(ls.localization.GetText(KeyAppTitle), err.Error(), ls.window)
		}
	}, ls.window)
}

// showDetail opens the detail sheet with a move-to-folder control
func (ls *ListScreen) showDetail(panelID uint) {
	panel, ok := ls.panelByID(panelID)
	if !ok {
		return
	}

	subtitle := panel.DisplaySubtitle()
	if subtitle == "" {
		subtitle = DashPlaceholder
	}
	info := container.NewVBox(
		widget.NewLabelWithStyle(panel.Name, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabel(ToPersianDigits(subtitle)),
		widget.NewLabel(ToPersianDigits(panel.SerialNumber)),
	)

	folders := ls.store.Folders()
	options := []string{ls.localization.GetText(KeyCategoryNoFolder)}
	for _, folder := range folders {
		options = append(options, folder.Name)
	}
	folderSel := widget.NewSelect(options, nil)
	if panel.FolderID != nil {
		if folder, ok := ls.store.FolderByID(*panel.FolderID); ok {
			folderSel.SetSelected(folder.Name)
		}
	} else {
		folderSel.SetSelectedIndex(0)
	}

	detail := dialog.NewCustom(ls.localization.GetText(KeyDetails),
		ls.localization.GetText(KeyClose),
		container.NewVBox(info, widget.NewLabel(ls.localization.GetText(KeyMoveToFolder)), folderSel),
		ls.window)

	folderSel.OnChanged = func(string) {
		var target *uint
		if idx := folderSel.SelectedIndex(); idx > 0 && idx-1 < len(folders) {
			target = &folders[idx-1].ID
		}
		if err := ls.store.MoveToFolder(panelID, target); err != nil {
			dialog.ShowInformation(ls.localization.GetText(KeyAppTitle), err.Error(), ls.window)
		}
	}

	detail.Show()
}

// restoreCategory maps the persisted category id back to a Category
func restoreCategory(saved string) panels.Category {
	switch saved {
	case "", categoryAllID:
		return panels.CategoryAll
	case categoryUncategorizedID:
		return panels.CategoryUncategorized
	default:
		id, err := strconv.ParseUint(saved, 10, 32)
		if err != nil {
			return panels.CategoryAll
		}
		return panels.FolderCategory(uint(id))
	}
}

// persistCategory maps a Category to its persisted string form
func persistCategory(category panels.Category) string {
	if id, ok := category.IsFolder(); ok {
		return strconv.FormatUint(uint64(id), 10)
	}
	if category == panels.CategoryUncategorized {
		return categoryUncategorizedID
	}
	return categoryAllID
}
