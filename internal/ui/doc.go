package ui

// Package ui contains the Fyne-based mobile-first user interface for the
// application. It wires user interactions to the panel store and the native
// bridge, and renders the login screen, the swipeable panel list, and the
// create/edit sheets. All UI strings are localized via Localization.
