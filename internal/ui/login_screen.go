package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/pazhonic/panel-manager/internal/bridge"
	"github.com/pazhonic/panel-manager/internal/config"
)

// LoginScreen asks for phone number and password, with an optional
// fingerprint path when the host has biometrics enabled. The biometric
// call is asynchronous; a pending callback is cancelled on teardown so a
// late host reply never reaches a dead screen.
type LoginScreen struct {
	window       fyne.Window
	adapter      *bridge.Adapter
	settings     *config.Settings
	localization *Localization

	phoneEntry    *widget.Entry
	passwordEntry *widget.Entry
	loginBtn      *widget.Button

	cancelBiometric func()

	onLoggedIn func()
	onRegister func()
	content    fyne.CanvasObject
}

// NewLoginScreen builds the login screen; onLoggedIn runs after a
// successful login, onRegister opens the registration screen.
func NewLoginScreen(window fyne.Window, adapter *bridge.Adapter, settings *config.Settings,
	localization *Localization, onLoggedIn, onRegister func()) *LoginScreen {

	ls := &LoginScreen{
		window:       window,
		adapter:      adapter,
		settings:     settings,
		localization: localization,
		onLoggedIn:   onLoggedIn,
		onRegister:   onRegister,
	}
	ls.createUI()
	return ls
}

// Content returns the screen's root canvas object
func (ls *LoginScreen) Content() fyne.CanvasObject {
	return ls.content
}

// Teardown cancels any outstanding biometric request
func (ls *LoginScreen) Teardown() {
	if ls.cancelBiometric != nil {
		ls.cancelBiometric()
		ls.cancelBiometric = nil
	}
}

// createUI creates the screen layout
func (ls *LoginScreen) createUI() {
	title := widget.NewLabelWithStyle(ls.localization.GetText(KeyAppTitle),
		fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	ls.phoneEntry = widget.NewEntry()
	ls.phoneEntry.SetPlaceHolder(ls.localization.GetText(KeyPhoneNumber))

	ls.passwordEntry = widget.NewPasswordEntry()
	ls.passwordEntry.SetPlaceHolder(ls.localization.GetText(KeyPassword))

	ls.loginBtn = widget.NewButton(ls.localization.GetText(KeyLogin), ls.submit)
	ls.loginBtn.Importance = widget.HighImportance

	items := []fyne.CanvasObject{
		title,
		ls.phoneEntry,
		ls.passwordEntry,
		ls.loginBtn,
	}

	if ls.adapter.BiometricEnabled() {
		biometricBtn := widget.NewButton(ls.localization.GetText(KeyBiometricLogin), ls.biometricLogin)
		items = append(items, biometricBtn)
	}

	registerBtn := widget.NewButton(ls.localization.GetText(KeyRegisterLink), func() {
		if ls.onRegister != nil {
			ls.onRegister()
		}
	})
	registerBtn.Importance = widget.LowImportance
	items = append(items, container.NewBorder(nil, nil,
		widget.NewLabel(ls.localization.GetText(KeyRegisterPrompt)), registerBtn))

	ls.content = container.NewCenter(container.NewVBox(items...))
}

// submit performs a credential login
func (ls *LoginScreen) submit() {
	phone := strings.TrimSpace(ls.phoneEntry.Text)
	password := ls.passwordEntry.Text
	if phone == "" || password == "" {
		ls.showError(ls.localization.GetText(KeyCredsRequired))
		return
	}

	ls.loginBtn.Disable()
	ls.loginBtn.SetText(ls.localization.GetText(KeyLoggingIn))
	result := ls.adapter.Login(phone, password)
	ls.loginBtn.Enable()
	ls.loginBtn.SetText(ls.localization.GetText(KeyLogin))

	ls.finishLogin(result, KeyLoginFailed)
}

// biometricLogin starts the async fingerprint flow
func (ls *LoginScreen) biometricLogin() {
	if ls.cancelBiometric != nil {
		return // a request is already in flight
	}
	ls.cancelBiometric = ls.adapter.LoginWithBiometric(func(result bridge.LoginResult) {
		fyne.Do(func() {
			ls.cancelBiometric = nil
			ls.finishLogin(result, KeyBiometricFailed)
		})
	})
}

// finishLogin mirrors the token and hands off on success
func (ls *LoginScreen) finishLogin(result bridge.LoginResult, failKey string) {
	if !result.Success {
		message := ls.localization.LocalizeBridgeMessage(result.Err)
		if message == "" {
			message = ls.localization.GetText(failKey)
		}
		ls.showError(message)
		return
	}

	// Mirror the session token so the next launch restores logged-in
	// state without a bridge round trip
	ls.settings.SetStoredToken(result.Token)
	dialog.ShowInformation(ls.localization.GetText(KeyAppTitle),
		ls.localization.GetText(KeyLoginSucceeded), ls.window)
	if ls.onLoggedIn != nil {
		ls.onLoggedIn()
	}
}

func (ls *LoginScreen) showError(message string) {
	dialog.ShowInformation(ls.localization.GetText(KeyAppTitle), message, ls.window)
}
