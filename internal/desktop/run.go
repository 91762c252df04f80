package desktop

import "fyne.io/fyne/v2/app"

const appID = "org.mostro.desktop"

// Run blocks until the login window is closed.
func Run(logoPath string) {
	NewWindow(app.NewWithID(appID), logoPath).ShowAndRun()
}
