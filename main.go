package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"github.com/pazhonic/panel-manager/internal/bridge"
	"github.com/pazhonic/panel-manager/internal/config"
	"github.com/pazhonic/panel-manager/internal/host"
	"github.com/pazhonic/panel-manager/internal/model"
	"github.com/pazhonic/panel-manager/internal/panels"
	"github.com/pazhonic/panel-manager/internal/platform"
	"github.com/pazhonic/panel-manager/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.pazhonic.panel-manager"
	AppName = "Pazhonic Panel Manager"

	WindowWidth  = 400
	WindowHeight = 720
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	log.Info().Str("version", version).Msg("starting")

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	if err := platform.CreateDirectoryIfNotExists(platform.DefaultDataDir()); err != nil {
		log.Warn().Err(err).Msg("failed to ensure data dir")
	}

	localization := ui.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	// The local host stands in for the native device layer; the adapter
	// speaks the same JSON contract either way.
	var hostService bridge.Host
	service, err := host.Open(settings.GetDatabasePath())
	if err != nil {
		log.Error().Err(err).Msg("host unavailable, running degraded")
	} else {
		if err := service.SeedLocations(locationSeed()); err != nil {
			log.Warn().Err(err).Msg("location seed failed")
		}
		hostService = service
	}

	adapter := bridge.New(hostService, log)
	if service != nil {
		service.SetCallbackSink(adapter.Dispatch)
	}

	store := panels.NewStore(adapter, log)

	// Create and setup UI
	ui.NewRoot(myWindow, adapter, store, settings, localization)

	// Show and run
	myWindow.ShowAndRun()
}

// locationSeed is the bundled province/county/city hierarchy, applied only
// to a fresh database.
func locationSeed() []model.Location {
	id := func(v uint) *uint { return &v }
	return []model.Location{
		{ID: 1, Name: "ایران", Type: model.LocationCountry, Code: "IR"},

		{ID: 10, Name: "تهران", Type: model.LocationState, ParentID: id(1), SortOrder: 1},
		{ID: 11, Name: "اصفهان", Type: model.LocationState, ParentID: id(1), SortOrder: 2},
		{ID: 12, Name: "فارس", Type: model.LocationState, ParentID: id(1), SortOrder: 3},
		{ID: 13, Name: "خراسان رضوی", Type: model.LocationState, ParentID: id(1), SortOrder: 4},

		{ID: 100, Name: "شهرستان تهران", Type: model.LocationCounty, ParentID: id(10)},
		{ID: 101, Name: "شهرستان شمیرانات", Type: model.LocationCounty, ParentID: id(10)},
		{ID: 110, Name: "شهرستان اصفهان", Type: model.LocationCounty, ParentID: id(11)},
		{ID: 111, Name: "شهرستان کاشان", Type: model.LocationCounty, ParentID: id(11)},
		{ID: 120, Name: "شهرستان شیراز", Type: model.LocationCounty, ParentID: id(12)},
		{ID: 130, Name: "شهرستان مشهد", Type: model.LocationCounty, ParentID: id(13)},

		{ID: 1000, Name: "تهران", Type: model.LocationCity, ParentID: id(100)},
		{ID: 1001, Name: "ری", Type: model.LocationCity, ParentID: id(100)},
		{ID: 1002, Name: "تجریش", Type: model.LocationCity, ParentID: id(101)},
		{ID: 1010, Name: "اصفهان", Type: model.LocationCity, ParentID: id(110)},
		{ID: 1011, Name: "کاشان", Type: model.LocationCity, ParentID: id(111)},
		{ID: 1020, Name: "شیراز", Type: model.LocationCity, ParentID: id(120)},
		{ID: 1030, Name: "مشهد", Type: model.LocationCity, ParentID: id(130)},
	}
}
