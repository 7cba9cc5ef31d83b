package ui

import "github.com/pazhonic/panel-manager/internal/bridge"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyPanels             = "panels"
	KeyCategoryAll        = "category_all"
	KeyCategoryNoFolder   = "category_no_folder"
	KeySearchPlaceholder  = "search_placeholder"
	KeyCreatePanel        = "create_panel"
	KeyEditPanel          = "edit_panel"
	KeyEdit               = "edit"
	KeyDelete             = "delete"
	KeyDeleteConfirmTitle = "delete_confirm_title"
	KeyDeleteConfirmBody  = "delete_confirm_body"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyClose              = "close"
	KeyPanelName          = "panel_name"
	KeyPanelNameHint      = "panel_name_hint"
	KeyUDLCode            = "udl_code"
	KeyIPAddress          = "ip_address"
	KeyIPHint             = "ip_hint"
	KeyPort               = "port"
	KeySerialNumber       = "serial_number"
	KeySerialHint         = "serial_hint"
	KeyFetchSerial        = "fetch_serial"
	KeySerialFetched      = "serial_fetched"
	KeyUDLRequired        = "udl_required"
	KeyAddrRequired       = "addr_required"
	KeyNameRequired       = "name_required"
	KeySerialRequired     = "serial_required"
	KeyProvince           = "province"
	KeyCity               = "city"
	KeyDescription        = "description"
	KeyMoveToFolder       = "move_to_folder"
	KeyDetails            = "details"
	KeyPanelPhone         = "panel_phone"
	KeyPhoneNumber        = "phone_number"
	KeyPassword           = "password"
	KeyLogin              = "login"
	KeyLoggingIn          = "logging_in"
	KeyLoginSucceeded     = "login_succeeded"
	KeyLoginFailed        = "login_failed"
	KeyBiometricLogin     = "biometric_login"
	KeyBiometricFailed    = "biometric_failed"
	KeyCredsRequired      = "creds_required"
	KeyRegister           = "register"
	KeyRegisterPrompt     = "register_prompt"
	KeyRegisterLink       = "register_link"
	KeyRegisterSucceeded  = "register_succeeded"
	KeyRegisterFailed     = "register_failed"
	KeyFirstName          = "first_name"
	KeyLastName           = "last_name"
	KeyConfirmPassword    = "confirm_password"
	KeyPasswordMismatch   = "password_mismatch"
	KeyHaveAccount        = "have_account"
	KeyLogout             = "logout"
	KeyLanguage           = "language"
	KeySettings           = "settings"
	KeyStatusArmed        = "status_armed"
	KeyStatusDisarmed     = "status_disarmed"
	KeyStatusUnknown      = "status_unknown"
	KeyInvalidResponse    = "invalid_response"
	KeyBridgeUnavailable  = "bridge_unavailable"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "fa",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to Persian
	if texts, exists := l.texts["fa"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// LocalizeBridgeMessage translates the bridge layer's fixed failure
// strings into the current language. Host-reported messages have no
// translation and are shown as received.
func (l *Localization) LocalizeBridgeMessage(message string) string {
	switch message {
	case bridge.MsgBridgeUnavailable:
		return l.GetText(KeyBridgeUnavailable)
	case bridge.MsgInvalidResponse:
		return l.GetText(KeyInvalidResponse)
	}
	return message
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"fa": "فارسی",
		"en": "English",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// Persian texts
	l.texts["fa"] = map[string]string{
		KeyAppTitle:           "پاژونیک",
		KeyPanels:             "پنل‌ها",
		KeyCategoryAll:        "همه",
		KeyCategoryNoFolder:   "بدون پوشه",
		KeySearchPlaceholder:  "جستجوی پنل...",
		KeyCreatePanel:        "افزودن پنل",
		KeyEditPanel:          "ویرایش پنل",
		KeyEdit:               "ویرایش",
		KeyDelete:             "حذف",
		KeyDeleteConfirmTitle: "حذف پنل",
		KeyDeleteConfirmBody:  "حذف پنل «%s»؟",
		KeySave:               "ذخیره",
		KeyCancel:             "انصراف",
		KeyClose:              "بستن",
		KeyPanelName:          "نام پنل",
		KeyPanelNameHint:      "نام پنل را وارد کنید",
		KeyUDLCode:            "کد UDL (کد آپلود دانلود)",
		KeyIPAddress:          "آی‌پی",
		KeyIPHint:             "مثال: 192.168.1.1",
		KeyPort:               "پورت",
		KeySerialNumber:       "شماره سریال پنل",
		KeySerialHint:         "شماره سریال را وارد کنید یا از پنل دریافت کنید",
		KeyFetchSerial:        "دریافت از پنل",
		KeySerialFetched:      "شماره سریال دریافت شد",
		KeyUDLRequired:        "کد آپلود دانلود (UDL) را وارد کنید",
		KeyAddrRequired:       "آی‌پی و پورت را وارد کنید",
		KeyNameRequired:       "نام پنل الزامی است",
		KeySerialRequired:     "شماره سریال الزامی است",
		KeyProvince:           "استان",
		KeyCity:               "شهر",
		KeyDescription:        "توضیحات",
		KeyMoveToFolder:       "انتقال به پوشه",
		KeyDetails:            "جزئیات",
		KeyPanelPhone:         "شماره تماس",
		KeyPhoneNumber:        "شماره موبایل",
		KeyPassword:           "رمز عبور",
		KeyLogin:              "ورود",
		KeyLoggingIn:          "در حال ورود...",
		KeyLoginSucceeded:     "ورود با موفقیت انجام شد",
		KeyLoginFailed:        "ورود ناموفق بود",
		KeyBiometricLogin:     "ورود با اثر انگشت",
		KeyBiometricFailed:    "ورود با اثر انگشت ناموفق بود",
		KeyCredsRequired:      "شماره موبایل و رمز عبور را وارد کنید",
		KeyRegister:           "ثبت نام",
		KeyRegisterPrompt:     "حساب کاربری در نرم افزار پاژونیک ندارید؟",
		KeyRegisterLink:       "ثبت نام کنید",
		KeyRegisterSucceeded:  "ثبت نام با موفقیت انجام شد",
		KeyRegisterFailed:     "ثبت نام ناموفق بود",
		KeyFirstName:          "نام",
		KeyLastName:           "نام خانوادگی",
		KeyConfirmPassword:    "تکرار رمز عبور",
		KeyPasswordMismatch:   "رمز عبور و تکرار آن یکسان نیستند",
		KeyHaveAccount:        "قبلا ثبت نام کرده اید؟",
		KeyLogout:             "خروج از حساب",
		KeyLanguage:           "زبان",
		KeySettings:           "تنظیمات",
		KeyStatusArmed:        "مسلح",
		KeyStatusDisarmed:     "غیرمسلح",
		KeyStatusUnknown:      "نامشخص",
		KeyInvalidResponse:    "پاسخ نامعتبر",
		KeyBridgeUnavailable:  "پل در دسترس نیست",
	}

	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Pazhonic",
		KeyPanels:             "Panels",
		KeyCategoryAll:        "All",
		KeyCategoryNoFolder:   "No folder",
		KeySearchPlaceholder:  "Search panels...",
		KeyCreatePanel:        "Add panel",
		KeyEditPanel:          "Edit panel",
		KeyEdit:               "Edit",
		KeyDelete:             "Delete",
		KeyDeleteConfirmTitle: "Delete panel",
		KeyDeleteConfirmBody:  "Delete panel \"%s\"?",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyClose:              "Close",
		KeyPanelName:          "Panel name",
		KeyPanelNameHint:      "Enter the panel name",
		KeyUDLCode:            "UDL code (upload/download code)",
		KeyIPAddress:          "IP address",
		KeyIPHint:             "e.g. 192.168.1.1",
		KeyPort:               "Port",
		KeySerialNumber:       "Panel serial number",
		KeySerialHint:         "Enter the serial number or fetch it from the panel",
		KeyFetchSerial:        "Fetch from panel",
		KeySerialFetched:      "Serial number received",
		KeyUDLRequired:        "Enter the UDL code first",
		KeyAddrRequired:       "Enter the IP address and port",
		KeyNameRequired:       "Panel name is required",
		KeySerialRequired:     "Serial number is required",
		KeyProvince:           "Province",
		KeyCity:               "City",
		KeyDescription:        "Description",
		KeyMoveToFolder:       "Move to folder",
		KeyDetails:            "Details",
		KeyPanelPhone:         "Contact number",
		KeyPhoneNumber:        "Phone number",
		KeyPassword:           "Password",
		KeyLogin:              "Log in",
		KeyLoggingIn:          "Logging in...",
		KeyLoginSucceeded:     "Logged in successfully",
		KeyLoginFailed:        "Login failed",
		KeyBiometricLogin:     "Log in with fingerprint",
		KeyBiometricFailed:    "Fingerprint login failed",
		KeyCredsRequired:      "Enter your phone number and password",
		KeyRegister:           "Sign up",
		KeyRegisterPrompt:     "Don't have a Pazhonic account?",
		KeyRegisterLink:       "Sign up",
		KeyRegisterSucceeded:  "Registered successfully",
		KeyRegisterFailed:     "Registration failed",
		KeyFirstName:          "First name",
		KeyLastName:           "Last name",
		KeyConfirmPassword:    "Confirm password",
		KeyPasswordMismatch:   "Passwords do not match",
		KeyHaveAccount:        "Already registered?",
		KeyLogout:             "Log out",
		KeyLanguage:           "Language",
		KeySettings:           "Settings",
		KeyStatusArmed:        "Armed",
		KeyStatusDisarmed:     "Disarmed",
		KeyStatusUnknown:      "Unknown",
		KeyInvalidResponse:    "Invalid response",
		KeyBridgeUnavailable:  "Bridge not available",
	}
}
