package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/pazhonic/panel-manager/internal/bridge"
	"github.com/pazhonic/panel-manager/internal/config"
	"github.com/pazhonic/panel-manager/internal/panels"
)

// Root owns the window content and switches between the login screen and
// the panel list. The shared header carries the app title, the collapsed
// search affordance, and the settings menu.
type Root struct {
	window       fyne.Window
	adapter      *bridge.Adapter
	store        *panels.Store
	settings     *config.Settings
	localization *Localization
	headerSearch *HeaderSearch

	headerSearchBtn *widget.Button
	body            *fyne.Container

	listScreen     *ListScreen
	loginScreen    *LoginScreen
	registerScreen *RegisterScreen
}

// NewRoot builds the root UI and shows the screen matching the restored
// session state.
func NewRoot(window fyne.Window, adapter *bridge.Adapter, store *panels.Store,
	settings *config.Settings, localization *Localization) *Root {

	r := &Root{
		window:       window,
		adapter:      adapter,
		store:        store,
		settings:     settings,
		localization: localization,
		headerSearch: NewHeaderSearch(),
	}
	r.createUI()

	if r.restoreSession() {
		r.showList()
	} else {
		r.showLogin()
	}
	return r
}

// createUI assembles the shared header and the switchable body
func (r *Root) createUI() {
	title := widget.NewLabelWithStyle(r.localization.GetText(KeyAppTitle),
		fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	r.headerSearchBtn = widget.NewButton("🔍", r.headerSearch.Tap)
	r.headerSearchBtn.Importance = widget.LowImportance
	r.headerSearchBtn.Hide()
	r.headerSearch.Subscribe(func(visible bool) {
		fyne.Do(func() {
			if visible {
				r.headerSearchBtn.Show()
			} else {
				r.headerSearchBtn.Hide()
			}
		})
	})

	settingsBtn := widget.NewButton("⚙", r.showSettings)
	settingsBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, r.headerSearchBtn, settingsBtn, title)

	r.body = container.NewStack()
	r.window.SetContent(container.NewBorder(header, nil, nil, nil, r.body))
}

// restoreSession checks for a still-valid host session. The stored token
// is only a fast-path hint; the bridge stays authoritative.
func (r *Root) restoreSession() bool {
	if r.settings.StoredToken() == "" {
		return false
	}
	token := r.adapter.SessionToken()
	if token == "" {
		r.settings.SetStoredToken("")
		return false
	}
	r.settings.SetStoredToken(token)
	return true
}

// showLogin swaps in the login screen
func (r *Root) showLogin() {
	if r.listScreen != nil {
		r.listScreen.Teardown()
		r.listScreen = nil
	}
	r.registerScreen = nil
	r.loginScreen = NewLoginScreen(r.window, r.adapter, r.settings, r.localization,
		r.showList, r.showRegister)
	r.setBody(r.loginScreen.Content())
}

// showRegister swaps in the registration screen
func (r *Root) showRegister() {
	if r.loginScreen != nil {
		r.loginScreen.Teardown()
		r.loginScreen = nil
	}
	r.registerScreen = NewRegisterScreen(r.window, r.adapter, r.localization, r.showLogin)
	r.setBody(r.registerScreen.Content())
}

// showList swaps in the panel list
func (r *Root) showList() {
	if r.loginScreen != nil {
		r.loginScreen.Teardown()
		r.loginScreen = nil
	}
	r.registerScreen = nil
	r.listScreen = NewListScreen(r.window, r.adapter, r.store, r.settings,
		r.localization, r.headerSearch)
	r.setBody(r.listScreen.Content())
}

func (r *Root) setBody(content fyne.CanvasObject) {
	r.body.RemoveAll()
	r.body.Add(content)
	r.body.Refresh()
}

// showSettings opens the language / confirmation / logout dialog
func (r *Root) showSettings() {
	languages := r.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(languages))
	names := make([]string, 0, len(languages))
	for _, code := range []string{"fa", "en"} {
		codes = append(codes, code)
		names = append(names, languages[code])
	}

	langSel := widget.NewSelect(names, nil)
	for i, code := range codes {
		if code == r.localization.GetCurrentLanguage() {
			langSel.SetSelectedIndex(i)
		}
	}
	langSel.OnChanged = func(string) {
		if idx := langSel.SelectedIndex(); idx >= 0 {
			r.settings.SetLanguage(codes[idx])
			r.localization.SetLanguage(codes[idx])
		}
	}

	confirmCheck := widget.NewCheck(r.localization.GetText(KeyDeleteConfirmTitle), func(on bool) {
		r.settings.SetConfirmDeletes(on)
		r.store.SetConfirmDeletes(on)
	})
	confirmCheck.SetChecked(r.settings.GetConfirmDeletes())

	logoutBtn := widget.NewButton(r.localization.GetText(KeyLogout), func() {
		r.adapter.Logout()
		r.settings.SetStoredToken("")
		r.showLogin()
	})
	logoutBtn.Importance = widget.DangerImportance

	content := container.NewVBox(
		widget.NewLabel(r.localization.GetText(KeyLanguage)),
		langSel,
		confirmCheck,
		logoutBtn,
	)
	dialog.ShowCustom(r.localization.GetText(KeySettings),
		r.localization.GetText(KeyClose), content, r.window)
}
