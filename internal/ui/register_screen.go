package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/pazhonic/panel-manager/internal/bridge"
)

// RegisterScreen creates a new account over the bridge. The phone number
// doubles as the user name; registration never logs in by itself, the
// screen hands back to login on success.
type RegisterScreen struct {
	window       fyne.Window
	adapter      *bridge.Adapter
	localization *Localization

	phoneEntry     *widget.Entry
	firstNameEntry *widget.Entry
	lastNameEntry  *widget.Entry
	passwordEntry  *widget.Entry
	confirmEntry   *widget.Entry
	registerBtn    *widget.Button

	onDone  func()
	content fyne.CanvasObject
}

// NewRegisterScreen builds the registration screen; onDone returns to the
// login screen, after a successful registration or via the back link.
func NewRegisterScreen(window fyne.Window, adapter *bridge.Adapter,
	localization *Localization, onDone func()) *RegisterScreen {

	rs := &RegisterScreen{
		window:       window,
		adapter:      adapter,
		localization: localization,
		onDone:       onDone,
	}
	rs.createUI()
	return rs
}

// Content returns the screen's root canvas object
func (rs *RegisterScreen) Content() fyne.CanvasObject {
	return rs.content
}

// createUI creates the screen layout
func (rs *RegisterScreen) createUI() {
	title := widget.NewLabelWithStyle(rs.localization.GetText(KeyAppTitle),
		fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	rs.phoneEntry = widget.NewEntry()
	rs.phoneEntry.SetPlaceHolder(rs.localization.GetText(KeyPhoneNumber))

	rs.firstNameEntry = widget.NewEntry()
	rs.firstNameEntry.SetPlaceHolder(rs.localization.GetText(KeyFirstName))

	rs.lastNameEntry = widget.NewEntry()
	rs.lastNameEntry.SetPlaceHolder(rs.localization.GetText(KeyLastName))

	rs.passwordEntry = widget.NewPasswordEntry()
	rs.passwordEntry.SetPlaceHolder(rs.localization.GetText(KeyPassword))

	rs.confirmEntry = widget.NewPasswordEntry()
	rs.confirmEntry.SetPlaceHolder(rs.localization.GetText(KeyConfirmPassword))

	rs.registerBtn = widget.NewButton(rs.localization.GetText(KeyRegister), rs.submit)
	rs.registerBtn.Importance = widget.HighImportance

	backBtn := widget.NewButton(rs.localization.GetText(KeyLogin), func() {
		if rs.onDone != nil {
			rs.onDone()
		}
	})
	backBtn.Importance = widget.LowImportance
	backRow := container.NewBorder(nil, nil,
		widget.NewLabel(rs.localization.GetText(KeyHaveAccount)), backBtn)

	rs.content = container.NewCenter(container.NewVBox(
		title,
		rs.phoneEntry,
		rs.firstNameEntry,
		rs.lastNameEntry,
		rs.passwordEntry,
		rs.confirmEntry,
		rs.registerBtn,
		backRow,
	))
}

// submit validates locally and registers through the bridge
func (rs *RegisterScreen) submit() {
	phone := strings.TrimSpace(rs.phoneEntry.Text)
	password := rs.passwordEntry.Text
	if phone == "" || password == "" {
		rs.showError(rs.localization.GetText(KeyCredsRequired))
		return
	}
	if password != rs.confirmEntry.Text {
		rs.showError(rs.localization.GetText(KeyPasswordMismatch))
		return
	}

	res := rs.adapter.RegisterUser(rs.payload())
	if res.Failed() {
		message := rs.localization.LocalizeBridgeMessage(res.Err)
		if message == "" {
			message = rs.localization.GetText(KeyRegisterFailed)
		}
		rs.showError(message)
		return
	}

	dialog.ShowInformation(rs.localization.GetText(KeyAppTitle),
		rs.localization.GetText(KeyRegisterSucceeded), rs.window)
	if rs.onDone != nil {
		rs.onDone()
	}
}

// payload maps the form onto the registration request
func (rs *RegisterScreen) payload() bridge.RegisterPayload {
	phone := strings.TrimSpace(rs.phoneEntry.Text)
	first := strings.TrimSpace(rs.firstNameEntry.Text)
	last := strings.TrimSpace(rs.lastNameEntry.Text)
	return bridge.RegisterPayload{
		UserName:    phone,
		PhoneNumber: phone,
		Password:    rs.passwordEntry.Text,
		FirstName:   first,
		LastName:    last,
		FullName:    strings.TrimSpace(first + " " + last),
	}
}

func (rs *RegisterScreen) showError(message string) {
	dialog.ShowInformation(rs.localization.GetText(KeyAppTitle), message, rs.window)
}
